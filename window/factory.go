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

package window

import (
	"github.com/pkg/errors"
)

const (
	// TypeTrailing places the window so that it ends at the current position.
	TypeTrailing = "trailing"
	// TypeCentered places the current position in the middle of the window.
	TypeCentered = "centered"
)

// OffsetFn computes the [start, end) bounds of the window for output
// position i over an array of the given length.
type OffsetFn func(i, windowSize, length int) (start, end int)

// DetOffsets returns the trailing window [i-windowSize+1, i+1), clamped at 0.
func DetOffsets(i, windowSize, _ int) (int, int) {
	return max(i-(windowSize-1), 0), i + 1
}

// DetOffsetsCenter returns a window centered on i. For even sizes the extra
// slot goes to the left side.
func DetOffsetsCenter(i, windowSize, length int) (int, int) {
	right := (windowSize + 1) / 2
	return max(i-(windowSize-right), 0), min(length, i+right)
}

// OffsetsFor selects the offset policy from the center flag.
func OffsetsFor(center bool) OffsetFn {
	if center {
		return DetOffsetsCenter
	}
	return DetOffsets
}

// CreateOffsetFn resolves an offset policy by name.
func CreateOffsetFn(kind string) (OffsetFn, error) {
	switch kind {
	case TypeTrailing, "":
		return DetOffsets, nil
	case TypeCentered:
		return DetOffsetsCenter, nil
	default:
		return nil, errors.Errorf("unsupported window alignment: %s", kind)
	}
}
