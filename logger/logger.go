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

// Package logger is the logging facade of the rolling kernels.
// Kernels never print on their own: they report through the process-wide
// default Logger, which writes warnings and errors to stderr until replaced.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// Level defines log levels
type Level int

const (
	// DEBUG reports every rolling pass
	DEBUG Level = iota
	// INFO reports configuration changes
	INFO
	// WARN reports rejected configurations
	WARN
	// ERROR reports failed passes
	ERROR
	// OFF disables logging
	OFF
)

// String returns string representation of log level
func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	case OFF:
		return "OFF"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel parses a level name such as "debug" or "WARN".
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return DEBUG, nil
	case "INFO":
		return INFO, nil
	case "WARN", "WARNING":
		return WARN, nil
	case "ERROR":
		return ERROR, nil
	case "OFF", "NONE":
		return OFF, nil
	default:
		return OFF, errors.Errorf("unknown log level: %q", s)
	}
}

// Logger interface defines basic methods for logging
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
	SetLevel(level Level)
	// Enabled reports whether messages at level are written.
	Enabled(level Level) bool
}

type defaultLogger struct {
	mu     sync.RWMutex
	level  Level
	logger *log.Logger
}

// NewLogger creates a logger writing "[time] [LEVEL] message" lines to output.
//
// Example:
//
//	logger.SetDefault(logger.NewLogger(logger.DEBUG, os.Stdout))
func NewLogger(level Level, output io.Writer) Logger {
	return &defaultLogger{
		level:  level,
		logger: log.New(output, "", 0),
	}
}

func (l *defaultLogger) Debug(format string, args ...interface{}) {
	l.log(DEBUG, format, args...)
}

func (l *defaultLogger) Info(format string, args ...interface{}) {
	l.log(INFO, format, args...)
}

func (l *defaultLogger) Warn(format string, args ...interface{}) {
	l.log(WARN, format, args...)
}

func (l *defaultLogger) Error(format string, args ...interface{}) {
	l.log(ERROR, format, args...)
}

func (l *defaultLogger) SetLevel(level Level) {
	l.mu.Lock()
	l.level = level
	l.mu.Unlock()
}

func (l *defaultLogger) Enabled(level Level) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.level != OFF && level >= l.level
}

func (l *defaultLogger) log(level Level, format string, args ...interface{}) {
	if !l.Enabled(level) {
		return
	}
	timestamp := time.Now().Format("2006-01-02 15:04:05.000")
	l.logger.Printf("[%s] [%s] %s", timestamp, level, fmt.Sprintf(format, args...))
}

type discardLogger struct{}

// NewDiscardLogger creates a logger that drops everything.
func NewDiscardLogger() Logger {
	return discardLogger{}
}

func (discardLogger) Debug(string, ...interface{}) {}
func (discardLogger) Info(string, ...interface{})  {}
func (discardLogger) Warn(string, ...interface{})  {}
func (discardLogger) Error(string, ...interface{}) {}
func (discardLogger) SetLevel(Level)               {}
func (discardLogger) Enabled(Level) bool           { return false }

var (
	defaultMu       sync.RWMutex
	defaultInstance Logger = NewLogger(WARN, os.Stderr)
)

// SetDefault replaces the process-wide logger. A nil logger discards output.
func SetDefault(l Logger) {
	if l == nil {
		l = NewDiscardLogger()
	}
	defaultMu.Lock()
	defaultInstance = l
	defaultMu.Unlock()
}

// GetDefault returns the process-wide logger.
func GetDefault() Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultInstance
}

// Debug logs through the default logger.
func Debug(format string, args ...interface{}) {
	GetDefault().Debug(format, args...)
}

// Info logs through the default logger.
func Info(format string, args ...interface{}) {
	GetDefault().Info(format, args...)
}

// Warn logs through the default logger.
func Warn(format string, args ...interface{}) {
	GetDefault().Warn(format, args...)
}

// Error logs through the default logger.
func Error(format string, args ...interface{}) {
	GetDefault().Error(format, args...)
}

// Enabled reports whether the default logger writes messages at level.
func Enabled(level Level) bool {
	return GetDefault().Enabled(level)
}
