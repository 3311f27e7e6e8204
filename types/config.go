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

package types

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/spf13/cast"

	"github.com/rulego/rolling/window"
)

const (
	// FuncRollingMin names the rolling minimum.
	FuncRollingMin = "rolling_min"
	// FuncRollingMax names the rolling maximum.
	FuncRollingMax = "rolling_max"
)

var (
	ErrInvalidWindowSize = window.ErrInvalidWindowSize
	ErrInvalidMinPeriods = errors.New("min periods must be between 0 and the window size")
	ErrInvalidParam      = errors.New("invalid rolling parameter")
)

// RollingConfig 滚动聚合配置
type RollingConfig struct {
	Function   string    `json:"function"`          // rolling_min or rolling_max
	WindowSize int       `json:"windowSize"`        // slots per window
	MinPeriods int       `json:"minPeriods"`        // values a window needs to produce output; 0 means WindowSize
	Center     bool      `json:"center"`            // center the window on each position instead of trailing it
	Weights    []float64 `json:"weights,omitempty"` // rejected by the extremum kernels
}

// DefaultRollingConfig returns a trailing rolling minimum over three slots.
func DefaultRollingConfig() RollingConfig {
	return RollingConfig{
		Function:   FuncRollingMin,
		WindowSize: 3,
		MinPeriods: 1,
	}
}

// Normalize fills defaults for unset fields.
func (c RollingConfig) Normalize() RollingConfig {
	if c.Function == "" {
		c.Function = FuncRollingMin
	}
	if c.MinPeriods == 0 {
		c.MinPeriods = c.WindowSize
	}
	return c
}

// Validate checks the window geometry. Weights are left to the kernel.
func (c RollingConfig) Validate() error {
	if c.WindowSize < 1 {
		return errors.Wrapf(ErrInvalidWindowSize, "got %d", c.WindowSize)
	}
	if c.MinPeriods < 0 || c.MinPeriods > c.WindowSize {
		return errors.Wrapf(ErrInvalidMinPeriods, "got %d for window size %d", c.MinPeriods, c.WindowSize)
	}
	return nil
}

// Alignment returns the window placement name.
func (c RollingConfig) Alignment() string {
	if c.Center {
		return window.TypeCentered
	}
	return window.TypeTrailing
}

// ParseRollingParams builds a config from loosely typed params, starting
// from DefaultRollingConfig. Recognized keys: function, windowSize (or
// window_size, size), minPeriods (or min_periods), center, alignment,
// weights.
func ParseRollingParams(params map[string]interface{}) (RollingConfig, error) {
	c := DefaultRollingConfig()
	alignment := ""
	for key, val := range params {
		var err error
		switch key {
		case "function":
			c.Function, err = cast.ToStringE(val)
		case "windowSize", "window_size", "size":
			c.WindowSize, err = cast.ToIntE(val)
		case "minPeriods", "min_periods":
			c.MinPeriods, err = cast.ToIntE(val)
		case "center":
			c.Center, err = cast.ToBoolE(val)
		case "alignment":
			if alignment, err = cast.ToStringE(val); err == nil {
				_, err = window.CreateOffsetFn(alignment)
			}
		case "weights":
			c.Weights, err = toFloat64Slice(val)
		default:
			err = errors.New("unknown key")
		}
		if err != nil {
			return RollingConfig{}, errors.Wrapf(ErrInvalidParam, "%s=%v: %v", key, val, err)
		}
	}
	// an explicit center must agree with alignment
	if alignment != "" {
		centered := alignment == window.TypeCentered
		if _, ok := params["center"]; ok && c.Center != centered {
			return RollingConfig{}, errors.Wrapf(ErrInvalidParam, "center=%t conflicts with alignment=%s", c.Center, alignment)
		}
		c.Center = centered
	}
	c = c.Normalize()
	if err := c.Validate(); err != nil {
		return RollingConfig{}, err
	}
	return c, nil
}

// ParseRollingConfigJSON decodes, normalizes and validates a JSON config.
func ParseRollingConfigJSON(data []byte) (RollingConfig, error) {
	c := DefaultRollingConfig()
	if err := json.Unmarshal(data, &c); err != nil {
		return RollingConfig{}, errors.Wrap(err, "decode rolling config")
	}
	c = c.Normalize()
	if err := c.Validate(); err != nil {
		return RollingConfig{}, err
	}
	return c, nil
}

func toFloat64Slice(val interface{}) ([]float64, error) {
	if val == nil {
		return nil, nil
	}
	if fs, ok := val.([]float64); ok {
		return fs, nil
	}
	items, err := cast.ToSliceE(val)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(items))
	for i, item := range items {
		if out[i], err = cast.ToFloat64E(item); err != nil {
			return nil, err
		}
	}
	return out, nil
}
