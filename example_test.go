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

package logline_test

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"rivaas.dev/logline"
)

// ExampleNew demonstrates the default logger: JSON records on stdout at
// Info level.
func ExampleNew() {
	logger := logline.New("api", logline.WithLevel(logline.LevelDebug))

	logger.Info("service started")
	logger.DebugWith("cache primed", func(b *logline.Builder) {
		b.Int("entries", 1024)
	})
	// Output is non-deterministic (contains timestamps)
}

// ExampleNewFlexible demonstrates building a template from scratch.
func ExampleNewFlexible() {
	f := logline.NewFlexible().
		Clear().
		AddLevel(logline.PositionStart, "", "", "").
		AddLiteral(":", logline.PositionAfterLevel, "").
		AddMessage(logline.PositionAfterLevel, "", " ", "").
		AddFields(logline.PositionEnd, "", " ", "")

	logger := logline.New("api", logline.WithFormatter(f))
	logger.Info("user created")
	logger.InfoWith("user created", func(b *logline.Builder) {
		b.String("role", "admin")
	})
	// Output:
	// INFO: user created
	// INFO: user created role=admin
}

// ExamplePrettyFormatter demonstrates human-readable colored output with
// terminal-aware color handling.
func ExamplePrettyFormatter() {
	logger := logline.New("api",
		logline.WithFormatter(logline.NewPretty()),
		logline.WithOutput(logline.NewConsoleOutput(os.Stdout)),
	)

	logger.Warn("disk usage above 80%")
	// Output is non-deterministic (contains timestamps and colors)
}

// ExampleLogger_Child demonstrates hierarchical logger names.
func ExampleLogger_Child() {
	f := logline.NewFlexible().
		Clear().
		AddLoggerName(logline.PositionStart, "", "(", ") ").
		AddMessage(logline.PositionAfterLoggerName, "", "", "")

	root := logline.New("app", logline.WithFormatter(f))
	root.Child("db").Info("connected")
	root.Child("db").Child("pool").Info("warmed")
	// Output:
	// (app.db) connected
	// (app.db.pool) warmed
}

// ExampleParseLevel demonstrates level parsing and weights.
func ExampleParseLevel() {
	level, err := logline.ParseLevel("warn")
	if err != nil {
		fmt.Println("parse error:", err)
		return
	}
	fmt.Println(level, int(level))
	// Output: WARN 40
}

// ExampleFormatTime demonstrates the strftime-style time patterns.
func ExampleFormatTime() {
	ts := time.Date(2024, 3, 7, 14, 5, 9, 123000000, time.UTC)
	fmt.Println(logline.FormatTime(ts, "%Y-%m-%d %H:%M:%S"))
	fmt.Println(logline.FormatTime(ts, "%I:%M %p"))
	fmt.Println(logline.FormatTime(ts, "%H:%M:%S%.3f"))
	// Output:
	// 2024-03-07 14:05:09
	// 02:05 PM
	// 14:05:09.123
}

// ExampleNewSlogHandler demonstrates using the logger behind log/slog.
func ExampleNewSlogHandler() {
	f := logline.NewFlexible().
		Clear().
		AddLevel(logline.PositionStart, "", "", " ").
		AddMessage(logline.PositionAfterLevel, "", "", "").
		AddFields(logline.PositionEnd, "", " ", "")

	logger := logline.New("bridge", logline.WithFormatter(f))
	sl := slog.New(logline.NewSlogHandler(logger))

	sl.Warn("cache miss", "key", "user:42")
	// Output:
	// WARN cache miss key=user:42
}
