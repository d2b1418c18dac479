// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logline

import "time"

// Logger emits structured log records. A Logger is immutable after
// construction: the deriving methods [Logger.Child] and [Logger.With]
// return new loggers, and a single Logger may be shared freely across
// goroutines without locking.
//
// Every record carries the logger's name, a severity level, a message, a
// UTC timestamp, and the logger's base fields merged with the call-site
// fields. Records below the minimum level are dropped before any
// formatting work happens.
type Logger struct {
	name      string
	level     Level
	formatter Formatter
	output    Output
	base      Fields
	metrics   *loggerMetrics
}

// New creates a logger. Defaults: level Info, JSON formatter, standard
// output, no base fields. Construction never fails: nil formatters or
// outputs passed through options fall back to the defaults.
func New(name string, opts ...Option) *Logger {
	l := &Logger{
		name:      name,
		level:     LevelInfo,
		formatter: NewJSON(),
		output:    NewStdoutOutput(),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.formatter == nil {
		l.formatter = NewJSON()
	}
	if l.output == nil {
		l.output = NewStdoutOutput()
	}
	return l
}

// Name returns the logger's name.
func (l *Logger) Name() string {
	return l.name
}

// Level returns the logger's minimum level.
func (l *Logger) Level() Level {
	return l.level
}

// Enabled reports whether a record at the given level would be emitted.
func (l *Logger) Enabled(level Level) bool {
	return level >= l.level
}

// Child returns a derived logger named "parent.child", or just "child"
// when the parent is unnamed. The child inherits the parent's level,
// formatter, output, metrics, and a copy of its base fields.
func (l *Logger) Child(name string) *Logger {
	c := *l
	c.base = mergeFields(l.base, nil)
	if l.name != "" {
		c.name = l.name + "." + name
	} else {
		c.name = name
	}
	return &c
}

// With returns a derived logger whose base fields are the receiver's plus
// fields. Everything else is inherited.
func (l *Logger) With(fields Fields) *Logger {
	c := *l
	c.base = mergeFields(l.base, fields)
	return &c
}

// Log emits a record at the given level with the given call-site fields.
// Base and call-site fields are merged fresh for this record, call-site
// winning on collision; neither map is mutated or retained.
func (l *Logger) Log(level Level, msg string, fields Fields) {
	l.log(level, msg, fields, time.Now())
}

func (l *Logger) log(level Level, msg string, fields Fields, timestamp time.Time) {
	if level < l.level {
		l.metrics.recordFiltered()
		return
	}
	line := l.formatter.Format(level, msg, mergeFields(l.base, fields), timestamp.UTC(), l.name)
	if line == "" {
		// The formatter dropped the record.
		return
	}
	l.output.Write(line)
	l.metrics.recordEmitted(level)
}

func (l *Logger) logWith(level Level, msg string, build func(*Builder)) {
	if level < l.level {
		l.metrics.recordFiltered()
		return
	}
	var b Builder
	if build != nil {
		build(&b)
	}
	l.log(level, msg, b.fields, time.Now())
}

// Trace logs msg at Trace level.
func (l *Logger) Trace(msg string) { l.Log(LevelTrace, msg, nil) }

// Debug logs msg at Debug level.
func (l *Logger) Debug(msg string) { l.Log(LevelDebug, msg, nil) }

// Info logs msg at Info level.
func (l *Logger) Info(msg string) { l.Log(LevelInfo, msg, nil) }

// Warn logs msg at Warn level.
func (l *Logger) Warn(msg string) { l.Log(LevelWarn, msg, nil) }

// Error logs msg at Error level.
func (l *Logger) Error(msg string) { l.Log(LevelError, msg, nil) }

// Fatal logs msg at Fatal level. It does not terminate the process.
func (l *Logger) Fatal(msg string) { l.Log(LevelFatal, msg, nil) }

// TraceWith logs at Trace level with fields collected by build. The
// builder does not run when the record is below the minimum level.
func (l *Logger) TraceWith(msg string, build func(*Builder)) { l.logWith(LevelTrace, msg, build) }

// DebugWith logs at Debug level with fields collected by build.
func (l *Logger) DebugWith(msg string, build func(*Builder)) { l.logWith(LevelDebug, msg, build) }

// InfoWith logs at Info level with fields collected by build.
func (l *Logger) InfoWith(msg string, build func(*Builder)) { l.logWith(LevelInfo, msg, build) }

// WarnWith logs at Warn level with fields collected by build.
func (l *Logger) WarnWith(msg string, build func(*Builder)) { l.logWith(LevelWarn, msg, build) }

// ErrorWith logs at Error level with fields collected by build.
func (l *Logger) ErrorWith(msg string, build func(*Builder)) { l.logWith(LevelError, msg, build) }

// FatalWith logs at Fatal level with fields collected by build. It does
// not terminate the process.
func (l *Logger) FatalWith(msg string, build func(*Builder)) { l.logWith(LevelFatal, msg, build) }
