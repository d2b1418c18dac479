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
	"io"
	"testing"
	"time"
)

var benchTS = time.Date(2024, 3, 7, 12, 0, 0, 0, time.UTC)

// Benchmark the three formatters on the same record.

func BenchmarkJSONFormatter(b *testing.B) {
	f := NewJSON()
	fields := Fields{"key": "value", "count": 42}
	b.ResetTimer()
	b.ReportAllocs()
	for b.Loop() {
		f.Format(LevelInfo, "benchmark message", fields, benchTS, "bench")
	}
}

func BenchmarkPrettyFormatter(b *testing.B) {
	f := NewPretty()
	fields := Fields{"key": "value", "count": 42}
	b.ResetTimer()
	b.ReportAllocs()
	for b.Loop() {
		f.Format(LevelInfo, "benchmark message", fields, benchTS, "bench")
	}
}

func BenchmarkFlexibleFormatter(b *testing.B) {
	f := NewFlexible()
	fields := Fields{"key": "value", "count": 42}
	b.ResetTimer()
	b.ReportAllocs()
	for b.Loop() {
		f.Format(LevelInfo, "benchmark message", fields, benchTS, "bench")
	}
}

func BenchmarkFlexibleFormatterColored(b *testing.B) {
	f := NewFlexible().Clear().
		AddTimestamp(PositionStart, "", "[", "]").
		AddLevel(PositionAfterTimestamp, colorGreen, " ", "").
		AddMessage(PositionAfterLevel, "", " ", "").
		AddFields(PositionEnd, colorCyan, " ", "")
	fields := Fields{"key": "value", "count": 42}
	b.ResetTimer()
	b.ReportAllocs()
	for b.Loop() {
		f.Format(LevelInfo, "benchmark message", fields, benchTS, "bench")
	}
}

// Benchmark the full pipeline through a logger.

func BenchmarkLoggerJSON(b *testing.B) {
	logger := New("bench", WithWriter(io.Discard))
	b.ResetTimer()
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			logger.InfoWith("benchmark message", func(fb *Builder) {
				fb.String("key", "value").Int("count", 42)
			})
		}
	})
}

func BenchmarkLoggerFiltered(b *testing.B) {
	logger := New("bench", WithLevel(LevelError), WithWriter(io.Discard))
	b.ResetTimer()
	b.ReportAllocs()
	for b.Loop() {
		logger.DebugWith("dropped", func(fb *Builder) {
			fb.String("key", "value")
		})
	}
}

func BenchmarkLoggerBaseFields(b *testing.B) {
	logger := New("bench",
		WithWriter(io.Discard),
		WithFields(Fields{"env": "bench", "region": "local", "zone": "a"}),
	)
	b.ResetTimer()
	b.ReportAllocs()
	for b.Loop() {
		logger.Info("benchmark message")
	}
}

func BenchmarkFormatTime(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		FormatTime(benchTS, "%Y-%m-%dT%H:%M:%S%.3fZ")
	}
}
