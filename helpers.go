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

// LogError logs msg at Error level with the error's message under the
// "error" key. Extra fields may be added via build, which may be nil.
//
//	if err := store.Save(user); err != nil {
//	    logger.LogError(err, "save failed", func(b *logline.Builder) {
//	        b.String("table", "users")
//	    })
//	    return err
//	}
func (l *Logger) LogError(err error, msg string, build func(*Builder)) {
	l.ErrorWith(msg, func(b *Builder) {
		b.Err(err)
		if build != nil {
			build(b)
		}
	})
}

// LogDuration logs msg at Info level with the elapsed time since start
// under two keys: duration_ms (integer milliseconds) and duration
// (human-readable). Extra fields may be added via build, which may be nil.
//
//	start := time.Now()
//	rows := importBatch(batch)
//	logger.LogDuration("batch imported", start, func(b *logline.Builder) {
//	    b.Int("rows", rows)
//	})
func (l *Logger) LogDuration(msg string, start time.Time, build func(*Builder)) {
	elapsed := time.Since(start)
	l.InfoWith(msg, func(b *Builder) {
		b.Int64("duration_ms", elapsed.Milliseconds())
		b.String("duration", elapsed.String())
		if build != nil {
			build(b)
		}
	})
}

// Timed starts a timer and returns a function that logs msg with the
// elapsed time when called. Meant for defer:
//
//	defer logger.Timed("rebuild index")()
func (l *Logger) Timed(msg string) func() {
	start := time.Now()
	return func() {
		l.LogDuration(msg, start, nil)
	}
}
