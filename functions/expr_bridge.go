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

package functions

import (
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/pkg/errors"
	"github.com/spf13/cast"

	"github.com/rulego/rolling/aggregator"
	"github.com/rulego/rolling/array"
	"github.com/rulego/rolling/types"
)

// ExprBridge exposes the registered rolling aggregates to expr-lang
// expressions, e.g. rolling_min(temperature, 5, 1).
//
// Every aggregate takes (values, window_size[, min_periods[, center]]).
// values is a list whose nil entries are nulls; the result is a list of the
// same length with nil for null outputs. An omitted min_periods means the
// full window size.
type ExprBridge struct {
	mutex    sync.RWMutex
	programs map[string]*vm.Program
}

// NewExprBridge creates a bridge with an empty program cache.
func NewExprBridge() *ExprBridge {
	return &ExprBridge{programs: make(map[string]*vm.Program)}
}

// Options returns one expr.Function option per registered aggregate.
func (bridge *ExprBridge) Options() []expr.Option {
	names := aggregator.List()
	options := make([]expr.Option, 0, len(names)+1)
	for _, name := range names {
		options = append(options, expr.Function(string(name), rollingFunc(string(name))))
	}
	options = append(options, expr.AllowUndefinedVariables())
	return options
}

// Compile compiles expression once and caches the program.
func (bridge *ExprBridge) Compile(expression string) (*vm.Program, error) {
	bridge.mutex.RLock()
	program, ok := bridge.programs[expression]
	bridge.mutex.RUnlock()
	if ok {
		return program, nil
	}

	program, err := expr.Compile(expression, bridge.Options()...)
	if err != nil {
		return nil, err
	}
	bridge.mutex.Lock()
	bridge.programs[expression] = program
	bridge.mutex.Unlock()
	return program, nil
}

// Evaluate runs expression against env.
func (bridge *ExprBridge) Evaluate(expression string, env map[string]interface{}) (interface{}, error) {
	program, err := bridge.Compile(expression)
	if err != nil {
		return nil, err
	}
	return expr.Run(program, env)
}

var defaultBridge = NewExprBridge()

// Evaluate runs expression with the shared bridge.
func Evaluate(expression string, env map[string]interface{}) (interface{}, error) {
	return defaultBridge.Evaluate(expression, env)
}

func rollingFunc(name string) func(params ...interface{}) (interface{}, error) {
	return func(params ...interface{}) (interface{}, error) {
		if len(params) < 2 || len(params) > 4 {
			return nil, errors.Errorf("%s expects 2 to 4 arguments, got %d", name, len(params))
		}
		column, err := ToColumn(params[0])
		if err != nil {
			return nil, errors.Wrap(err, name)
		}
		config := types.RollingConfig{Function: name}
		if config.WindowSize, err = cast.ToIntE(params[1]); err != nil {
			return nil, errors.Wrapf(err, "%s: window size", name)
		}
		if len(params) > 2 {
			if config.MinPeriods, err = cast.ToIntE(params[2]); err != nil {
				return nil, errors.Wrapf(err, "%s: min periods", name)
			}
		}
		if len(params) > 3 {
			if config.Center, err = cast.ToBoolE(params[3]); err != nil {
				return nil, errors.Wrapf(err, "%s: center", name)
			}
		}
		config = config.Normalize()
		if err := config.Validate(); err != nil {
			return nil, errors.Wrap(err, name)
		}

		out, err := aggregator.Apply(column, config)
		if err != nil {
			return nil, err
		}
		return FromColumn(out), nil
	}
}

// ToColumn converts an expression value into a float64 column.
// nil list entries become nulls.
func ToColumn(values interface{}) (*array.Array[float64], error) {
	switch v := values.(type) {
	case nil:
		return nil, errors.New("values are missing")
	case []float64:
		return array.New(v, nil), nil
	case *array.Array[float64]:
		return v, nil
	}
	items, err := cast.ToSliceE(values)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(items))
	valid := make([]bool, len(items))
	for i, item := range items {
		if item == nil {
			continue
		}
		if out[i], err = cast.ToFloat64E(item); err != nil {
			return nil, errors.Wrapf(err, "value %d", i)
		}
		valid[i] = true
	}
	return array.New(out, valid), nil
}

// FromColumn converts a column into a list with nil for nulls.
func FromColumn(column *array.Array[float64]) []interface{} {
	out := make([]interface{}, column.Len())
	for i := range out {
		if v, ok := column.Value(i); ok {
			out[i] = v
		}
	}
	return out
}
