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

import (
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// RecordingOutput is an [Output] that captures rendered lines for test
// assertions. Safe for concurrent use.
type RecordingOutput struct {
	mu    sync.Mutex
	lines []string
}

// NewRecordingOutput returns an empty recording output.
func NewRecordingOutput() *RecordingOutput {
	return &RecordingOutput{}
}

// Write captures one line.
func (o *RecordingOutput) Write(line string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.lines = append(o.lines, line)
}

// Lines returns a copy of everything captured so far.
func (o *RecordingOutput) Lines() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]string, len(o.lines))
	copy(out, o.lines)
	return out
}

// LastLine returns the most recent line, or "" when nothing was captured.
func (o *RecordingOutput) LastLine() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	if len(o.lines) == 0 {
		return ""
	}
	return o.lines[len(o.lines)-1]
}

// Len returns the number of captured lines.
func (o *RecordingOutput) Len() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.lines)
}

// Reset discards captured lines.
func (o *RecordingOutput) Reset() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.lines = o.lines[:0]
}

// CountingOutput is an [Output] that counts lines and bytes without
// retaining them. Useful in benchmarks and concurrency tests.
type CountingOutput struct {
	lines atomic.Int64
	bytes atomic.Int64
}

// Write counts one line.
func (o *CountingOutput) Write(line string) {
	o.lines.Add(1)
	o.bytes.Add(int64(len(line)))
}

// Lines returns the number of lines written.
func (o *CountingOutput) Lines() int64 {
	return o.lines.Load()
}

// Bytes returns the total bytes written, excluding line terminators.
func (o *CountingOutput) Bytes() int64 {
	return o.bytes.Load()
}

// NewTestLogger returns a Trace-level logger writing JSON to a fresh
// [RecordingOutput]. Options may override any default. The captured lines
// can be decoded with [ParseJSONLogEntries].
func NewTestLogger(name string, opts ...Option) (*Logger, *RecordingOutput) {
	rec := NewRecordingOutput()
	base := []Option{
		WithLevel(LevelTrace),
		WithFormatter(NewJSON()),
		WithOutput(rec),
	}
	return New(name, append(base, opts...)...), rec
}

// LogEntry is one decoded JSON log line.
type LogEntry struct {
	Time    time.Time
	Level   int
	Name    string
	Message string
	Fields  Fields
}

// ParseJSONLogEntries decodes lines produced by the JSON formatter. The
// reserved keys populate the entry's named fields; everything else lands
// in Fields.
func ParseJSONLogEntries(lines []string) ([]LogEntry, error) {
	entries := make([]LogEntry, 0, len(lines))
	for i, line := range lines {
		var raw map[string]any
		if err := json.Unmarshal([]byte(line), &raw); err != nil {
			return nil, fmt.Errorf("parse log line %d: %w", i, err)
		}

		entry := LogEntry{Fields: make(Fields)}
		for k, v := range raw {
			switch k {
			case "level":
				if n, ok := v.(float64); ok {
					entry.Level = int(n)
				}
			case "time":
				if s, ok := v.(string); ok {
					entry.Time, _ = time.Parse(time.RFC3339Nano, s)
				}
			case "name":
				if s, ok := v.(string); ok {
					entry.Name = s
				}
			case "msg":
				if s, ok := v.(string); ok {
					entry.Message = s
				}
			default:
				entry.Fields[k] = v
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
