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
	"strings"
	"time"
)

// ANSI escapes used by the default palette.
const (
	colorReset       = "\033[0m"
	colorRed         = "\033[31m"
	colorGreen       = "\033[32m"
	colorYellow      = "\033[33m"
	colorMagenta     = "\033[35m"
	colorCyan        = "\033[36m"
	colorBrightBlack = "\033[90m"
)

// DefaultPalette returns a fresh copy of the default per-level colors,
// suitable for seeding a custom formatter.
func DefaultPalette() map[Level]string {
	return map[Level]string{
		LevelTrace: colorBrightBlack,
		LevelDebug: colorCyan,
		LevelInfo:  colorGreen,
		LevelWarn:  colorYellow,
		LevelError: colorRed,
		LevelFatal: colorMagenta,
	}
}

// PrettyFormatter renders records for humans:
//
//	[12:00:00] (name) INFO: message key=value
//
// The level name is wrapped in its per-level color escape. Configuration
// happens before the formatter is handed to a logger; the With* methods
// mutate the receiver and return it for chaining.
type PrettyFormatter struct {
	timeFormat string
	colors     map[Level]string
	reset      string
}

// NewPretty returns a human-readable formatter with the default palette
// and the %H:%M:%S time pattern.
func NewPretty() *PrettyFormatter {
	return &PrettyFormatter{
		timeFormat: defaultTimeFormat,
		colors:     DefaultPalette(),
		reset:      colorReset,
	}
}

// WithTimeFormat sets the strftime-style timestamp pattern.
func (f *PrettyFormatter) WithTimeFormat(pattern string) *PrettyFormatter {
	f.timeFormat = pattern
	return f
}

// WithColor sets the color escape for one level.
func (f *PrettyFormatter) WithColor(level Level, escape string) *PrettyFormatter {
	if f.colors == nil {
		f.colors = make(map[Level]string)
	}
	f.colors[level] = escape
	return f
}

// WithoutColors clears the palette and the reset escape. Output then
// contains no escape bytes at all.
func (f *PrettyFormatter) WithoutColors() *PrettyFormatter {
	f.colors = nil
	f.reset = ""
	return f
}

// Format renders the record on one line. Fields follow the message as
// space-separated key=value pairs in key order; an empty field set adds
// nothing.
func (f *PrettyFormatter) Format(level Level, msg string, fields Fields, timestamp time.Time, name string) string {
	b := builderPool.Get().(*strings.Builder)
	defer func() {
		b.Reset()
		builderPool.Put(b)
	}()

	b.WriteByte('[')
	b.WriteString(FormatTime(timestamp, f.timeFormat))
	b.WriteString("] (")
	b.WriteString(name)
	b.WriteString(") ")
	if color := f.colors[level]; color != "" {
		b.WriteString(color)
		b.WriteString(level.String())
		b.WriteString(f.reset)
	} else {
		b.WriteString(level.String())
	}
	b.WriteString(": ")
	b.WriteString(msg)
	if rendered := formatFields(fields); rendered != "" {
		b.WriteByte(' ')
		b.WriteString(rendered)
	}
	return b.String()
}
