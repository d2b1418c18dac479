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

import "io"

// Option configures a [Logger] during construction.
type Option func(*Logger)

// WithLevel sets the minimum log level.
func WithLevel(level Level) Option {
	return func(l *Logger) { l.level = level }
}

// WithFormatter sets the record formatter.
func WithFormatter(f Formatter) Option {
	return func(l *Logger) { l.formatter = f }
}

// WithOutput sets the output destination.
func WithOutput(o Output) Option {
	return func(l *Logger) { l.output = o }
}

// WithWriter sets the output destination to a plain io.Writer.
func WithWriter(w io.Writer) Option {
	return func(l *Logger) { l.output = NewWriterOutput(w) }
}

// WithField adds one base field included in every record.
func WithField(key string, value any) Option {
	return func(l *Logger) {
		l.base = mergeFields(l.base, Fields{key: value})
	}
}

// WithFields adds base fields included in every record. The map is copied;
// later options win on key collision.
func WithFields(fields Fields) Option {
	return func(l *Logger) {
		l.base = mergeFields(l.base, fields)
	}
}
