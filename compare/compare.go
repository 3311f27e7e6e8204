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

// Package compare provides the total order used by the rolling extremum
// kernels. Floating point NaN is ordered explicitly so that every pair of
// values compares, which the incremental window state relies on.
package compare

import "golang.org/x/exp/constraints"

// Number is the set of element types a rolling kernel accepts.
type Number interface {
	constraints.Integer | constraints.Float
}

// IsNaN reports whether v is a floating point NaN. Always false for integers.
func IsNaN[T Number](v T) bool {
	return v != v
}

// Compare returns -1, 0 or +1 under the natural order. NaN operands must be
// handled by the caller.
func Compare[T Number](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// CompareNaNMin orders NaN after every number, so a minimum only reports NaN
// when nothing else is present.
func CompareNaNMin[T Number](a, b T) int {
	aNaN, bNaN := IsNaN(a), IsNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return 1
	case bNaN:
		return -1
	}
	return Compare(a, b)
}

// CompareNaNMax orders NaN before every number, so a maximum only reports NaN
// when nothing else is present.
func CompareNaNMax[T Number](a, b T) int {
	aNaN, bNaN := IsNaN(a), IsNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return -1
	case bNaN:
		return 1
	}
	return Compare(a, b)
}
