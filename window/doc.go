/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

/*
Package window drives rolling aggregations over a column.

It owns the two pieces every rolling kernel shares: the offset policy that
turns an output position into window bounds, and the loop that feeds those
bounds to an incremental AggWindow and collects the results.

# Offsets

	DetOffsets(i, size, len)       // trailing: [i-size+1, i+1)
	DetOffsetsCenter(i, size, len) // centered: right side gets (size+1)/2 slots

Both clamp to [0, len) and only ever move forward, which AggWindow
implementations rely on. ApplyAggWindow checks that once per position and
fails with ErrInvalidBounds otherwise.

# Output validity

A position is null when its window is empty, when the window reports no
value, or when IsValid(minPeriods) is false. With minPeriods above one the
short windows at either end are cleared before the pass starts.
*/
package window
