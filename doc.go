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

// Package logline provides structured application logging with pluggable
// formatters and outputs.
//
// A log record carries a severity level, a message, a UTC timestamp, the
// logger's name, and key/value fields. Formatters turn records into text;
// outputs deliver the text. Loggers are immutable after construction and
// safe for unbounded concurrent use.
//
// # Basic Usage
//
//	logger := logline.New("api",
//	    logline.WithLevel(logline.LevelDebug),
//	)
//	logger.Info("service started")
//	logger.InfoWith("request processed", func(b *logline.Builder) {
//	    b.String("method", "GET").Int("status", 200)
//	})
//
// The default logger renders JSON to standard output. Records below the
// minimum level are dropped before any formatting work.
//
// # Formatters
//
// Three formatters ship with the package. [JSONFormatter] emits one
// compact JSON object per record. [PrettyFormatter] renders a colored
// human-readable line:
//
//	[12:00:05] (api) INFO: service started port=8080
//
// [FlexibleFormatter] builds the line from positioned components, each
// with optional color, prefix, and suffix:
//
//	f := logline.NewFlexible().
//	    Clear().
//	    AddLevel(logline.PositionStart, "", "", " |").
//	    AddMessage(logline.PositionAfterLevel, "", " ", "").
//	    AddFields(logline.PositionEnd, "", "  ", "")
//	logger := logline.New("api", logline.WithFormatter(f))
//
// Timestamps use strftime-style patterns ("%H:%M:%S", "%Y-%m-%d"); see
// [FormatTime].
//
// # Outputs
//
// Outputs append the newline and swallow write errors. [NewStdoutOutput]
// and [NewStderrOutput] wrap the process streams, [NewFileOutput] appends
// to a path, [NewMultiOutput] fans out to several destinations, and
// [NewConsoleOutput] adapts ANSI colors to the terminal's capability.
//
// # Derived Loggers
//
//	db := logger.Child("db")              // named "api.db"
//	req := logger.With(logline.Fields{"request_id": id})
//
// Children and With-derived loggers inherit level, formatter, output, and
// base fields; the originals are never mutated.
//
// # Trace Correlation
//
// [NewContextLogger] lifts OpenTelemetry trace and span IDs out of a
// context into base fields, so every record of a request carries
// trace_id and span_id.
//
// # slog Interoperability
//
// [NewSlogHandler] adapts a logger into a log/slog handler:
//
//	sl := slog.New(logline.NewSlogHandler(logger))
//	sl.Warn("cache miss", "key", key)
//
// # Metrics
//
// [WithMetrics] registers per-level emit counters and a filtered-record
// counter on a Prometheus registry.
//
// # Configuration Files
//
// The logline/config package builds loggers from YAML, TOML, or JSON
// documents, including full flexible-template definitions.
//
// # Testing
//
// [NewTestLogger], [RecordingOutput], and [ParseJSONLogEntries] support
// asserting on log output without touching the process streams.
package logline
