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

// Package array holds the nullable primitive column the rolling kernels read
// and produce. Values are stored densely; nulls are tracked by a validity
// bitmap where a set bit marks a present value.
package array

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/samber/lo"

	"github.com/rulego/rolling/compare"
)

// Array is an immutable view over values and their validity.
// A nil validity bitmap means every value is present.
type Array[T compare.Number] struct {
	values   []T
	validity *bitset.BitSet
}

// FromValues wraps values and validity without copying.
func FromValues[T compare.Number](values []T, validity *bitset.BitSet) *Array[T] {
	return &Array[T]{values: values, validity: validity}
}

// New builds an array from values and a parallel validity mask.
// A nil mask produces an array without nulls.
func New[T compare.Number](values []T, valid []bool) *Array[T] {
	if valid == nil {
		return FromValues(values, nil)
	}
	bs := bitset.New(uint(len(values)))
	for i := range values {
		if i < len(valid) && valid[i] {
			bs.Set(uint(i))
		}
	}
	return FromValues(values, bs)
}

// FromPointers builds an array where nil entries are nulls.
func FromPointers[T compare.Number](ptrs []*T) *Array[T] {
	values := lo.Map(ptrs, func(p *T, _ int) T {
		if p == nil {
			var zero T
			return zero
		}
		return *p
	})
	valid := lo.Map(ptrs, func(p *T, _ int) bool { return p != nil })
	return New(values, valid)
}

// AllValid returns a validity bitmap of n set bits.
func AllValid(n int) *bitset.BitSet {
	return bitset.New(uint(n)).FlipRange(0, uint(n))
}

// Len returns the number of slots, nulls included.
func (a *Array[T]) Len() int {
	return len(a.values)
}

// Values returns the backing values. Slots that are null hold the zero value.
func (a *Array[T]) Values() []T {
	return a.values
}

// Validity returns the validity bitmap, or nil when there are no nulls.
func (a *Array[T]) Validity() *bitset.BitSet {
	return a.validity
}

// IsValid reports whether slot i holds a value.
func (a *Array[T]) IsValid(i int) bool {
	if a.validity == nil {
		return true
	}
	return a.validity.Test(uint(i))
}

// Value returns the value at slot i and whether it is present.
func (a *Array[T]) Value(i int) (T, bool) {
	if !a.IsValid(i) {
		var zero T
		return zero, false
	}
	return a.values[i], true
}

// NullCount returns the number of null slots.
func (a *Array[T]) NullCount() int {
	if a.validity == nil {
		return 0
	}
	return NullCountRange(a.validity, 0, len(a.values))
}

// Pointers converts the array back into a slice where nulls are nil.
func (a *Array[T]) Pointers() []*T {
	return lo.Map(a.values, func(v T, i int) *T {
		if !a.IsValid(i) {
			return nil
		}
		return lo.ToPtr(v)
	})
}

// NullCountRange counts the unset bits of bs in [offset, offset+length).
// Bits beyond the bitmap's length count as null.
func NullCountRange(bs *bitset.BitSet, offset, length int) int {
	if length <= 0 {
		return 0
	}
	return length - validCountRange(bs, offset, length)
}

func validCountRange(bs *bitset.BitSet, offset, length int) int {
	end := offset + length
	// Rank(i) counts set bits in [0, i].
	upto := int(bs.Rank(uint(end - 1)))
	if offset == 0 {
		return upto
	}
	return upto - int(bs.Rank(uint(offset-1)))
}
