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
	"io"

	"github.com/rulego/rolling/logger"
	"github.com/rulego/rolling/types"
)

// Option 表示对Roller默认行为的修改配置。
// 通过函数式选项模式，用户可以灵活地配置窗口大小、最少有效值个数和日志等行为。
type Option func(*Roller)

// WithLogger 设置自定义日志记录器。
// 日志记录器是进程级的，rolling内核和驱动都通过它输出调试和告警信息。
//
// 参数:
//   - log: 实现了logger.Logger接口的日志记录器
//
// 示例:
//
//	customLogger := logger.NewLogger(logger.DEBUG, os.Stderr)
//	r := rolling.New(WithLogger(customLogger))
func WithLogger(log logger.Logger) Option {
	return func(r *Roller) {
		logger.SetDefault(log)
	}
}

// WithLogLevel 设置当前默认日志记录器的级别。
//
// 参数:
//   - level: 日志级别，可选值：DEBUG, INFO, WARN, ERROR, OFF
//
// 示例:
//
//	// 打印每次滚动计算的窗口参数和空值个数
//	r := rolling.New(WithLogLevel(logger.DEBUG))
func WithLogLevel(level logger.Level) Option {
	return func(r *Roller) {
		logger.GetDefault().SetLevel(level)
	}
}

// WithLogOutput 设置日志输出目标，并替换默认日志记录器。
//
// 参数:
//   - output: 日志输出目标，如os.Stdout、os.Stderr或文件
//   - level: 日志级别
//
// 示例:
//
//	r := rolling.New(WithLogOutput(os.Stderr, logger.WARN))
func WithLogOutput(output io.Writer, level logger.Level) Option {
	return func(r *Roller) {
		logger.SetDefault(logger.NewLogger(level, output))
	}
}

// WithDiscardLog 禁用所有日志输出。
//
// 示例:
//
//	r := rolling.New(WithDiscardLog())
func WithDiscardLog() Option {
	return func(r *Roller) {
		logger.SetDefault(logger.NewDiscardLogger())
	}
}

// WithConfig 使用完整的配置替换当前配置。
// 之后的选项仍然可以覆盖其中的单个字段。
//
// 参数:
//   - config: 滚动计算配置，通常来自types.ParseRollingParams或types.ParseRollingConfigJSON
//
// 示例:
//
//	config, _ := types.ParseRollingParams(map[string]interface{}{"size": "5", "center": true})
//	r := rolling.New(WithConfig(config))
func WithConfig(config types.RollingConfig) Option {
	return func(r *Roller) {
		r.config = config
	}
}

// WithFunction 选择Apply使用的聚合函数。
//
// 参数:
//   - name: 已注册的聚合函数名，如"rolling_min"、"rolling_max"
//
// 示例:
//
//	r := rolling.New(WithFunction("rolling_max"), WithWindowSize(3))
func WithFunction(name string) Option {
	return func(r *Roller) {
		r.config.Function = name
	}
}

// WithWindowSize 设置窗口大小，即每个输出位置覆盖的元素个数（包括空值）。
//
// 参数:
//   - size: 窗口大小，必须大于等于1
//
// 示例:
//
//	// 最近5个值的最小值
//	r := rolling.New(WithWindowSize(5))
func WithWindowSize(size int) Option {
	return func(r *Roller) {
		r.config.WindowSize = size
	}
}

// WithMinPeriods 设置窗口产生输出所需的最少有效值个数。
// 有效值不足的位置输出为null。0表示使用窗口大小。
//
// 参数:
//   - n: 最少有效值个数，取值范围为0到窗口大小
//
// 示例:
//
//	// 窗口大小为4，至少2个有效值才输出
//	r := rolling.New(WithWindowSize(4), WithMinPeriods(2))
func WithMinPeriods(n int) Option {
	return func(r *Roller) {
		r.config.MinPeriods = n
	}
}

// WithCenter 设置窗口是否以当前位置为中心。
// 默认窗口以当前位置结尾。
//
// 示例:
//
//	r := rolling.New(WithWindowSize(3), WithCenter(true))
func WithCenter(center bool) Option {
	return func(r *Roller) {
		r.config.Center = center
	}
}

// WithWeights 设置窗口内每个位置的权重。
// 最小值和最大值内核不支持权重，Apply会返回kernels.ErrWeightsUnsupported。
func WithWeights(weights []float64) Option {
	return func(r *Roller) {
		r.config.Weights = weights
	}
}
