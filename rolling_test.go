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

package rolling

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rulego/rolling/aggregator"
	"github.com/rulego/rolling/array"
	"github.com/rulego/rolling/kernels"
	"github.com/rulego/rolling/logger"
	"github.com/rulego/rolling/types"
)

func TestNewDefaults(t *testing.T) {
	r := New()
	assert.Equal(t, types.DefaultRollingConfig(), r.Config())
}

func TestMinMax(t *testing.T) {
	col := array.New([]int64{5, 0, 1, 1, 9}, []bool{true, false, true, true, true})

	mins, err := Min(col, WithWindowSize(3), WithMinPeriods(1))
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 5, 1, 1, 1}, mins.Values())

	maxs, err := Max(col, WithWindowSize(3), WithMinPeriods(2))
	require.NoError(t, err)
	// [0,1) has one value, [0,2) still one
	assert.False(t, maxs.IsValid(0))
	assert.False(t, maxs.IsValid(1))
	assert.Equal(t, []int64{5, 1, 9}, maxs.Values()[2:])
}

func TestApply(t *testing.T) {
	col := array.New([]float64{2, 7, 1, 8}, nil)

	r := New(WithFunction(types.FuncRollingMax), WithWindowSize(2), WithMinPeriods(1), WithCenter(true))
	out, err := r.Apply(col)
	require.NoError(t, err)
	// centered size 2 covers [i-1, i+1)
	assert.Equal(t, []float64{2, 7, 7, 8}, out.Values())

	out, err = r.ApplyFunc(types.FuncRollingMin, col)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 2, 1, 1}, out.Values())

	_, err = r.ApplyFunc("rolling_mode", col)
	assert.ErrorIs(t, err, aggregator.ErrUnsupportedAggregate)
}

func TestWithConfig(t *testing.T) {
	r := New(WithConfig(types.RollingConfig{Function: types.FuncRollingMax, WindowSize: 4}))
	assert.Equal(t, 4, r.Config().MinPeriods)
}

func TestInvalidConfig(t *testing.T) {
	original := logger.GetDefault()
	defer logger.SetDefault(original)

	col := array.New([]float64{1, 2}, nil)

	_, err := Min(col, WithWindowSize(0), WithDiscardLog())
	assert.ErrorIs(t, err, types.ErrInvalidWindowSize)

	_, err = New(WithWindowSize(2), WithMinPeriods(5)).Apply(col)
	assert.ErrorIs(t, err, types.ErrInvalidMinPeriods)
}

func TestWeightsRejected(t *testing.T) {
	original := logger.GetDefault()
	defer logger.SetDefault(original)

	var buf bytes.Buffer
	col := array.New([]float64{1, 2, 3}, []bool{true, false, true})
	_, err := Max(col, WithWeights([]float64{1, 2}), WithLogOutput(&buf, logger.WARN))
	assert.ErrorIs(t, err, kernels.ErrWeightsUnsupported)
	assert.Contains(t, buf.String(), "[WARN] rolling_max: rejected 2 weights")
}

func TestDebugLogging(t *testing.T) {
	original := logger.GetDefault()
	defer logger.SetDefault(original)

	var buf bytes.Buffer
	_, err := Min(array.New([]float64{1, 2, 3}, nil), WithLogOutput(&buf, logger.INFO), WithLogLevel(logger.DEBUG))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "rolling_min: len=3 nulls=0 window=3 min_periods=1 center=false")
	assert.Contains(t, buf.String(), "rolling pass done")
}
