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
Package rolling computes rolling minimum and maximum over nullable numeric
columns.

Each output position gets the extremum of its window, ignoring nulls. A
position is null when its window holds no value or fewer than MinPeriods
values. NaN loses to every number, so it is reported only for windows that
hold nothing but NaN.

# Getting started

	col := array.FromPointers([]*float64{ptr(3), nil, ptr(1), ptr(4)})

	mins, err := rolling.Min(col, rolling.WithWindowSize(2), rolling.WithMinPeriods(1))
	// mins: 3, 3, 1, 1

	r := rolling.New(rolling.WithFunction("rolling_max"), rolling.WithWindowSize(3), rolling.WithCenter(true))
	maxs, err := r.Apply(col)

# Incremental windows

The kernels never rescan a whole window per step. The window state keeps the
current extremum and, after it, the length of the run of values that are
already ordered in the window's direction. A rescan happens only when the
extremum leaves the window and the entering values do not beat it, and even
then it covers only the surviving overlap and stops at the ordered run.

# Packages

• array - nullable column backed by a validity bitmap
• compare - NaN-aware total order
• kernels - the min/max window state and its entry points
• window - offset policies and the generic sliding driver
• aggregator - name to kernel registry
• functions - rolling_min/rolling_max for expr-lang expressions
• types - configuration
• logger - logging facade
*/
package rolling
