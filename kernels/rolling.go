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
	"github.com/pkg/errors"

	"github.com/rulego/rolling/array"
	"github.com/rulego/rolling/compare"
	"github.com/rulego/rolling/logger"
	"github.com/rulego/rolling/window"
)

// ErrWeightsUnsupported is returned when weights are passed to a rolling
// extremum over nullable data.
var ErrWeightsUnsupported = errors.New("weights not yet supported on array with null values")

// RollingMin returns the minimum of every window of arr. Positions whose
// window holds no value, or fewer than minPeriods values, are null.
func RollingMin[T compare.Number](arr *array.Array[T], windowSize, minPeriods int, center bool, weights []float64) (*array.Array[T], error) {
	return rollingExtremum(arr, windowSize, minPeriods, center, weights, "rolling_min",
		func(values []T, validity *bitset.BitSet, start, end int) window.AggWindow[T] {
			return NewMinWindow(values, validity, start, end)
		})
}

// RollingMax returns the maximum of every window of arr. Positions whose
// window holds no value, or fewer than minPeriods values, are null.
func RollingMax[T compare.Number](arr *array.Array[T], windowSize, minPeriods int, center bool, weights []float64) (*array.Array[T], error) {
	return rollingExtremum(arr, windowSize, minPeriods, center, weights, "rolling_max",
		func(values []T, validity *bitset.BitSet, start, end int) window.AggWindow[T] {
			return NewMaxWindow(values, validity, start, end)
		})
}

func rollingExtremum[T compare.Number](
	arr *array.Array[T],
	windowSize, minPeriods int,
	center bool,
	weights []float64,
	name string,
	newWindow window.NewAggWindowFunc[T],
) (*array.Array[T], error) {
	if weights != nil {
		logger.Warn("%s: rejected %d weights", name, len(weights))
		return nil, errors.Wrap(ErrWeightsUnsupported, name)
	}
	if logger.Enabled(logger.DEBUG) {
		logger.Debug("%s: len=%d nulls=%d window=%d min_periods=%d center=%t",
			name, arr.Len(), arr.NullCount(), windowSize, minPeriods, center)
	}
	out, err := window.ApplyAggWindow(arr.Values(), arr.Validity(), windowSize, minPeriods, window.OffsetsFor(center), newWindow)
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	return out, nil
}
