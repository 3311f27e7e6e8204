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

package aggregator

import (
	"sort"
	"sync"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/rulego/rolling/array"
	"github.com/rulego/rolling/kernels"
	"github.com/rulego/rolling/types"
)

type AggregateType string

const (
	RollingMin AggregateType = types.FuncRollingMin
	RollingMax AggregateType = types.FuncRollingMax
)

// ErrUnsupportedAggregate is returned by Apply for unregistered names.
var ErrUnsupportedAggregate = errors.New("unsupported rolling aggregate")

// RollingFunc computes one output per slot of arr.
type RollingFunc func(arr *array.Array[float64], config types.RollingConfig) (*array.Array[float64], error)

var (
	aggregatorRegistry = make(map[AggregateType]RollingFunc)
	registryMutex      sync.RWMutex
)

func init() {
	Register(RollingMin, func(arr *array.Array[float64], c types.RollingConfig) (*array.Array[float64], error) {
		return kernels.RollingMin(arr, c.WindowSize, c.MinPeriods, c.Center, c.Weights)
	})
	Register(RollingMax, func(arr *array.Array[float64], c types.RollingConfig) (*array.Array[float64], error) {
		return kernels.RollingMax(arr, c.WindowSize, c.MinPeriods, c.Center, c.Weights)
	})
}

// Register 添加自定义滚动聚合到全局注册表，同名覆盖
func Register(name AggregateType, fn RollingFunc) {
	registryMutex.Lock()
	defer registryMutex.Unlock()
	aggregatorRegistry[name] = fn
}

// Get looks up a registered aggregate.
func Get(name AggregateType) (RollingFunc, bool) {
	registryMutex.RLock()
	defer registryMutex.RUnlock()
	fn, ok := aggregatorRegistry[name]
	return fn, ok
}

// List returns the registered names in order.
func List() []AggregateType {
	registryMutex.RLock()
	names := lo.Keys(aggregatorRegistry)
	registryMutex.RUnlock()
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// Apply runs the aggregate named by config.Function over arr.
func Apply(arr *array.Array[float64], config types.RollingConfig) (*array.Array[float64], error) {
	fn, ok := Get(AggregateType(config.Function))
	if !ok {
		return nil, errors.Wrap(ErrUnsupportedAggregate, config.Function)
	}
	return fn(arr, config)
}
