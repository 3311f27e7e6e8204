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
	"github.com/bits-and-blooms/bitset"
	"github.com/pkg/errors"

	"github.com/rulego/rolling/array"
	"github.com/rulego/rolling/compare"
	"github.com/rulego/rolling/logger"
)

var (
	// ErrInvalidWindowSize is returned for window sizes below one.
	ErrInvalidWindowSize = errors.New("window size must be at least 1")
	// ErrInvalidBounds is returned when an offset function yields bounds that
	// are out of range or move backward.
	ErrInvalidBounds = errors.New("invalid window bounds")
)

// AggWindow is the incremental state of one rolling pass. It is created with
// the first window's bounds and then fed every window in order.
type AggWindow[T compare.Number] interface {
	// Update moves the state to [start, end) and returns the aggregate, or
	// false when the window holds no value.
	Update(start, end int) (T, bool)
	// IsValid reports whether the current window holds at least minPeriods values.
	IsValid(minPeriods int) bool
}

// NewAggWindowFunc creates the state for the first window [start, end).
type NewAggWindowFunc[T compare.Number] func(values []T, validity *bitset.BitSet, start, end int) AggWindow[T]

// ApplyAggWindow drives one rolling pass over values and returns one output
// per position. An output is null when its window is empty, holds no value,
// or holds fewer than minPeriods values.
func ApplyAggWindow[T compare.Number](
	values []T,
	validity *bitset.BitSet,
	windowSize, minPeriods int,
	offsetFn OffsetFn,
	newWindow NewAggWindowFunc[T],
) (*array.Array[T], error) {
	if windowSize < 1 {
		return nil, errors.Wrapf(ErrInvalidWindowSize, "got %d", windowSize)
	}
	length := len(values)
	if length == 0 {
		return array.FromValues([]T{}, nil), nil
	}
	if validity == nil {
		validity = array.AllValid(length)
	}

	start, end := offsetFn(0, windowSize, length)
	if err := checkBounds(0, start, end, start, end, length); err != nil {
		return nil, err
	}
	agg := newWindow(values, validity, start, end)

	outValidity := CreateValidity(minPeriods, length, windowSize, offsetFn)
	out := make([]T, length)
	lastStart, lastEnd := start, end
	for i := 0; i < length; i++ {
		start, end := offsetFn(i, windowSize, length)
		if err := checkBounds(i, start, end, lastStart, lastEnd, length); err != nil {
			return nil, err
		}
		lastStart, lastEnd = start, end
		if start == end {
			outValidity.Clear(uint(i))
			continue
		}
		v, ok := agg.Update(start, end)
		if ok && agg.IsValid(minPeriods) {
			out[i] = v
		} else {
			outValidity.Clear(uint(i))
		}
	}
	if logger.Enabled(logger.DEBUG) {
		logger.Debug("rolling pass done: len=%d window=%d min_periods=%d nulls=%d",
			length, windowSize, minPeriods, length-int(outValidity.Count()))
	}
	return array.FromValues(out, outValidity), nil
}

// CreateValidity returns the output validity before any value is computed.
// With minPeriods above one, leading and trailing positions whose window is
// too short to ever qualify are cleared up front.
func CreateValidity(minPeriods, length, windowSize int, offsetFn OffsetFn) *bitset.BitSet {
	validity := array.AllValid(length)
	if minPeriods <= 1 {
		return validity
	}
	for i := 0; i < length; i++ {
		start, end := offsetFn(i, windowSize, length)
		if end-start >= minPeriods {
			break
		}
		validity.Clear(uint(i))
	}
	for i := length - 1; i >= 0; i-- {
		start, end := offsetFn(i, windowSize, length)
		if end-start >= minPeriods {
			break
		}
		validity.Clear(uint(i))
	}
	return validity
}

func checkBounds(i, start, end, lastStart, lastEnd, length int) error {
	if start < 0 || start > end || end > length || start < lastStart || end < lastEnd {
		return errors.Wrapf(ErrInvalidBounds, "position %d: [%d, %d) after [%d, %d), length %d",
			i, start, end, lastStart, lastEnd, length)
	}
	return nil
}
