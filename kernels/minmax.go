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

package kernels

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/rulego/rolling/array"
	"github.com/rulego/rolling/compare"
)

// Order is the comparison direction of an extremum window.
type Order[T compare.Number] interface {
	// Beats reports whether next replaces current as the extremum.
	// Ties replace, so the most recent index wins.
	Beats(current, next T) bool
	// Breaks reports whether next ends the sorted run that last belongs to.
	Breaks(last, next T) bool
}

// MinOrder orders a minimum window. NaN loses to every number.
type MinOrder[T compare.Number] struct{}

func (MinOrder[T]) Beats(current, next T) bool { return compare.CompareNaNMin(current, next) >= 0 }
func (MinOrder[T]) Breaks(last, next T) bool   { return compare.CompareNaNMin(last, next) > 0 }

// MaxOrder orders a maximum window. NaN loses to every number.
type MaxOrder[T compare.Number] struct{}

func (MaxOrder[T]) Beats(current, next T) bool { return compare.CompareNaNMax(current, next) <= 0 }
func (MaxOrder[T]) Breaks(last, next T) bool   { return compare.CompareNaNMax(last, next) < 0 }

// ExtremumWindow tracks the minimum or maximum of a window sliding forward
// over a nullable buffer.
//
// Besides the extremum it remembers sortedTo, the end of the run of values
// after the extremum that are ordered in the window's direction. Inside that
// run the first valid value is always the run's extremum, so rescans can stop
// there instead of walking the whole overlap.
type ExtremumWindow[T compare.Number, O Order[T]] struct {
	order    O
	values   []T
	validity *bitset.BitSet

	extremum    T
	hasExtremum bool
	extremumIdx int
	sortedTo    int

	lastStart int
	lastEnd   int
	nullCount int

	scanned int
}

// NewMinWindow initializes a minimum window over [start, end).
func NewMinWindow[T compare.Number](values []T, validity *bitset.BitSet, start, end int) *ExtremumWindow[T, MinOrder[T]] {
	return newExtremumWindow[T, MinOrder[T]](values, validity, start, end)
}

// NewMaxWindow initializes a maximum window over [start, end).
func NewMaxWindow[T compare.Number](values []T, validity *bitset.BitSet, start, end int) *ExtremumWindow[T, MaxOrder[T]] {
	return newExtremumWindow[T, MaxOrder[T]](values, validity, start, end)
}

func newExtremumWindow[T compare.Number, O Order[T]](values []T, validity *bitset.BitSet, start, end int) *ExtremumWindow[T, O] {
	if validity == nil {
		validity = array.AllValid(len(values))
	}
	w := &ExtremumWindow[T, O]{
		values:    values,
		validity:  validity,
		sortedTo:  1,
		lastStart: start,
		lastEnd:   end,
	}
	idx, val, ok, nulls := w.scan(start, end, 0)
	w.nullCount = nulls
	if ok {
		w.extremum, w.extremumIdx, w.hasExtremum = val, idx, true
		w.sortedTo = w.sortedPast(idx)
	}
	return w
}

// Update slides the window to [start, end) and returns its extremum.
// Bounds must not move backward; the driver checks that.
func (w *ExtremumWindow[T, O]) Update(start, end int) (T, bool) {
	oldLastEnd := w.lastEnd
	leavingNulls := array.NullCountRange(w.validity, w.lastStart, min(start, oldLastEnd)-w.lastStart)
	w.lastStart, w.lastEnd = start, end

	enteringStart := max(oldLastEnd, start)
	var (
		eIdx   int
		eVal   T
		eOK    bool
		eNulls int
	)
	if end-enteringStart == 1 {
		// a fixed window rolling by one
		w.scanned++
		if w.validity.Test(uint(enteringStart)) {
			eIdx, eVal, eOK = enteringStart, w.values[enteringStart], true
		} else {
			eNulls = 1
		}
	} else {
		eIdx, eVal, eOK, eNulls = w.scan(enteringStart, end, w.sortedTo)
	}
	emptyOverlap := oldLastEnd <= start
	w.nullCount += eNulls - leavingNulls

	if eOK && (!w.hasExtremum || emptyOverlap || w.order.Beats(w.extremum, eVal)) {
		w.setExtremum(eIdx, eVal)
		return w.extremum, true
	}
	if emptyOverlap {
		// The entering range is the whole window and it is all null.
		w.hasExtremum = false
		return w.result()
	}
	if !w.hasExtremum || w.extremumIdx >= start {
		return w.result()
	}

	// The extremum fell off the front: the answer is the better of the
	// surviving overlap and the entering range.
	pIdx, pVal, pOK, _ := w.scan(start, oldLastEnd, w.sortedTo)
	switch {
	case pOK && eOK:
		if w.order.Beats(pVal, eVal) {
			w.setExtremum(eIdx, eVal)
		} else {
			w.setExtremum(pIdx, pVal)
		}
	case pOK:
		w.setExtremum(pIdx, pVal)
	case eOK:
		w.setExtremum(eIdx, eVal)
	default:
		w.hasExtremum = false
	}
	return w.result()
}

// IsValid reports whether the current window holds at least minPeriods values.
func (w *ExtremumWindow[T, O]) IsValid(minPeriods int) bool {
	return (w.lastEnd-w.lastStart)-w.nullCount >= minPeriods
}

// Extremum returns the current extremum and its absolute index.
func (w *ExtremumWindow[T, O]) Extremum() (T, int, bool) {
	return w.extremum, w.extremumIdx, w.hasExtremum
}

// NullCount returns the number of nulls in the current window.
func (w *ExtremumWindow[T, O]) NullCount() int {
	return w.nullCount
}

// Bounds returns the current window.
func (w *ExtremumWindow[T, O]) Bounds() (start, end int) {
	return w.lastStart, w.lastEnd
}

// SortedTo returns the exclusive end of the ordered run after the extremum.
func (w *ExtremumWindow[T, O]) SortedTo() int {
	return w.sortedTo
}

// Scanned returns how many slots the window has read while searching ranges
// for an extremum.
func (w *ExtremumWindow[T, O]) Scanned() int {
	return w.scanned
}

func (w *ExtremumWindow[T, O]) result() (T, bool) {
	if !w.hasExtremum {
		var zero T
		return zero, false
	}
	return w.extremum, true
}

func (w *ExtremumWindow[T, O]) setExtremum(idx int, val T) {
	w.extremum, w.extremumIdx, w.hasExtremum = val, idx, true
	if w.sortedTo <= idx {
		w.sortedTo = w.sortedPast(idx)
	}
}

// scan returns the extremum of [start, end) and the number of nulls in it.
// Values in (first valid, sortedTo) belong to the ordered run following an
// earlier extremum and cannot beat the first valid value, so they are only
// counted, never compared. Callers only pass ranges that start after the
// extremum the run was computed from.
func (w *ExtremumWindow[T, O]) scan(start, end, sortedTo int) (idx int, val T, ok bool, nulls int) {
	n := end - start
	lead := 0
	for lead < n && !w.validity.Test(uint(start+lead)) {
		lead++
	}
	if lead == n {
		w.scanned += n
		return 0, val, false, n
	}
	first := start + lead
	w.scanned += lead + 1
	idx, val = first, w.values[first]
	if sortedTo >= end {
		return idx, val, true, lead + array.NullCountRange(w.validity, first, end-first)
	}

	tail := max(first+1, sortedTo)
	nulls = lead + array.NullCountRange(w.validity, first, tail-first)
	for i, next := range w.values[tail:end] {
		w.scanned++
		if !w.validity.Test(uint(tail + i)) {
			nulls++
			continue
		}
		if w.order.Beats(val, next) {
			idx, val = tail+i, next
		}
	}
	return idx, val, true, nulls
}

// sortedPast walks forward from the extremum at m while valid values keep
// their order and returns the index of the first value that breaks it, or
// len(values) when the run reaches the end of the buffer. Nulls are skipped.
func (w *ExtremumWindow[T, O]) sortedPast(m int) int {
	last := w.values[m]
	for i := m + 1; i < len(w.values); i++ {
		if !w.validity.Test(uint(i)) {
			continue
		}
		next := w.values[i]
		if w.order.Breaks(last, next) {
			return i
		}
		last = next
	}
	return len(w.values)
}
