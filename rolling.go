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
	"github.com/pkg/errors"

	"github.com/rulego/rolling/aggregator"
	"github.com/rulego/rolling/array"
	"github.com/rulego/rolling/compare"
	"github.com/rulego/rolling/kernels"
	"github.com/rulego/rolling/logger"
	"github.com/rulego/rolling/types"
)

// Roller holds a rolling configuration and applies it to columns.
//
// 使用示例:
//
//	r := rolling.New(rolling.WithWindowSize(5), rolling.WithMinPeriods(1))
//	out, err := r.Apply(column)
type Roller struct {
	config types.RollingConfig
}

// New creates a Roller starting from types.DefaultRollingConfig.
func New(options ...Option) *Roller {
	r := &Roller{config: types.DefaultRollingConfig()}
	for _, option := range options {
		option(r)
	}
	return r
}

// Config returns the normalized configuration.
func (r *Roller) Config() types.RollingConfig {
	return r.config.Normalize()
}

// Apply runs the configured aggregate over a float64 column.
func (r *Roller) Apply(arr *array.Array[float64]) (*array.Array[float64], error) {
	config, err := r.validConfig()
	if err != nil {
		return nil, err
	}
	return aggregator.Apply(arr, config)
}

// ApplyFunc runs the aggregate registered under name, overriding the
// configured function.
func (r *Roller) ApplyFunc(name string, arr *array.Array[float64]) (*array.Array[float64], error) {
	config, err := r.validConfig()
	if err != nil {
		return nil, err
	}
	config.Function = name
	return aggregator.Apply(arr, config)
}

func (r *Roller) validConfig() (types.RollingConfig, error) {
	config := r.Config()
	if err := config.Validate(); err != nil {
		logger.Warn("invalid rolling config: %v", err)
		return types.RollingConfig{}, errors.Wrap(err, "rolling")
	}
	return config, nil
}

// Min computes the rolling minimum of arr for any numeric element type.
func Min[T compare.Number](arr *array.Array[T], options ...Option) (*array.Array[T], error) {
	config, err := New(options...).validConfig()
	if err != nil {
		return nil, err
	}
	return kernels.RollingMin(arr, config.WindowSize, config.MinPeriods, config.Center, config.Weights)
}

// Max computes the rolling maximum of arr for any numeric element type.
func Max[T compare.Number](arr *array.Array[T], options ...Option) (*array.Array[T], error) {
	config, err := New(options...).validConfig()
	if err != nil {
		return nil, err
	}
	return kernels.RollingMax(arr, config.WindowSize, config.MinPeriods, config.Center, config.Weights)
}
