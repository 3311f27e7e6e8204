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

package logger

import (
	"bytes"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLevel_String 测试日志级别的字符串表示
func TestLevel_String(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{DEBUG, "DEBUG"},
		{INFO, "INFO"},
		{WARN, "WARN"},
		{ERROR, "ERROR"},
		{OFF, "OFF"},
		{Level(999), "UNKNOWN"},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, test.level.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", DEBUG, false},
		{" Info ", INFO, false},
		{"warning", WARN, false},
		{"ERROR", ERROR, false},
		{"none", OFF, false},
		{"verbose", OFF, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if tt.wantErr {
			assert.ErrorContains(t, err, "unknown log level", tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestLogFormat(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(DEBUG, &buf)

	l.Debug("rolling_min: len=%d", 10)

	pattern := `^\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\.\d{3}\] \[DEBUG\] rolling_min: len=10\n$`
	assert.Regexp(t, regexp.MustCompile(pattern), buf.String())
}

// TestDefaultLogger_LevelFiltering 测试日志级别过滤
func TestDefaultLogger_LevelFiltering(t *testing.T) {
	levels := []Level{DEBUG, INFO, WARN, ERROR}
	for _, loggerLevel := range append(levels, OFF) {
		for _, messageLevel := range levels {
			var buf bytes.Buffer
			l := NewLogger(loggerLevel, &buf)
			switch messageLevel {
			case DEBUG:
				l.Debug("test message")
			case INFO:
				l.Info("test message")
			case WARN:
				l.Warn("test message")
			case ERROR:
				l.Error("test message")
			}
			shouldLog := loggerLevel != OFF && messageLevel >= loggerLevel
			assert.Equal(t, shouldLog, strings.Contains(buf.String(), "test message"),
				"logger=%s message=%s", loggerLevel, messageLevel)
			assert.Equal(t, shouldLog, l.Enabled(messageLevel))
		}
	}
}

func TestDefaultLogger_SetLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(DEBUG, &buf)
	l.SetLevel(ERROR)

	l.Warn("warn message")
	assert.Empty(t, buf.String())

	l.Error("error message")
	assert.Contains(t, buf.String(), "[ERROR] error message")
}

func TestDiscardLogger(t *testing.T) {
	l := NewDiscardLogger()
	l.Error("dropped")
	l.SetLevel(DEBUG)
	assert.False(t, l.Enabled(ERROR))
}

func TestGlobalLogger(t *testing.T) {
	original := GetDefault()
	defer SetDefault(original)

	var buf bytes.Buffer
	SetDefault(NewLogger(INFO, &buf))

	Debug("hidden")
	Info("shown %s", "info")
	Warn("shown warn")
	Error("shown error")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown info")
	assert.Contains(t, out, "shown warn")
	assert.Contains(t, out, "shown error")
	assert.True(t, Enabled(INFO))
	assert.False(t, Enabled(DEBUG))

	SetDefault(nil)
	assert.False(t, Enabled(ERROR))
}

func TestConcurrentLogging(t *testing.T) {
	var buf syncBuffer
	l := NewLogger(DEBUG, &buf)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				l.Info("goroutine %d message %d", id, j)
				if j == 5 {
					l.SetLevel(DEBUG)
				}
			}
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 80, strings.Count(buf.String(), "\n"))
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
