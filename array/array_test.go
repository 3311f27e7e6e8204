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

package array

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	arr := New([]float64{1, 2, 3, 4}, []bool{true, false, true, false})
	require.Equal(t, 4, arr.Len())
	assert.Equal(t, 2, arr.NullCount())

	v, ok := arr.Value(0)
	assert.True(t, ok)
	assert.Equal(t, 1.0, v)

	_, ok = arr.Value(1)
	assert.False(t, ok)
	assert.False(t, arr.IsValid(3))
}

func TestNewWithoutMask(t *testing.T) {
	arr := New([]int32{5, 6}, nil)
	assert.Nil(t, arr.Validity())
	assert.Equal(t, 0, arr.NullCount())
	assert.True(t, arr.IsValid(1))
}

func TestFromPointers(t *testing.T) {
	ptrs := []*int64{lo.ToPtr(int64(3)), nil, lo.ToPtr(int64(-1))}
	arr := FromPointers(ptrs)

	assert.Equal(t, []int64{3, 0, -1}, arr.Values())
	assert.Equal(t, 1, arr.NullCount())

	back := arr.Pointers()
	require.Len(t, back, 3)
	assert.Equal(t, int64(3), *back[0])
	assert.Nil(t, back[1])
	assert.Equal(t, int64(-1), *back[2])
}

func TestNullCountRange(t *testing.T) {
	arr := New(make([]float64, 10), []bool{true, false, false, true, true, false, true, true, true, false})
	bs := arr.Validity()

	tests := []struct {
		name           string
		offset, length int
		want           int
	}{
		{"empty", 3, 0, 0},
		{"prefix", 0, 3, 2},
		{"middle", 2, 4, 2},
		{"single_null", 5, 1, 1},
		{"single_valid", 6, 1, 0},
		{"all", 0, 10, 4},
		{"suffix", 7, 3, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NullCountRange(bs, tt.offset, tt.length))
		})
	}
}

func TestAllValid(t *testing.T) {
	bs := AllValid(70)
	assert.Equal(t, uint(70), bs.Count())
	assert.Equal(t, 0, NullCountRange(bs, 0, 70))
	assert.Equal(t, 0, NullCountRange(bs, 63, 7))
	assert.False(t, bs.Test(70))

	empty := AllValid(0)
	assert.Equal(t, uint(0), empty.Count())
}
