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

// Package aggregator maps rolling aggregate names to their float64 kernels.
//
// rolling_min and rolling_max are registered at init; Register adds or
// replaces entries:
//
//	aggregator.Register("rolling_last", func(arr *array.Array[float64], c types.RollingConfig) (*array.Array[float64], error) {
//		...
//	})
//	out, err := aggregator.Apply(arr, types.RollingConfig{Function: "rolling_max", WindowSize: 5, MinPeriods: 1})
package aggregator
