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
	"context"
	"log/slog"
	"strings"
	"time"
)

// slogLevelFatal is the slog level at and above which records map to
// Fatal. slog has no standard level past Error (8).
const slogLevelFatal = slog.Level(12)

// NewSlogHandler returns a [log/slog] handler that routes records through
// the logger's pipeline: its level gate, base fields, formatter, and
// output. The slog record's timestamp is preserved.
//
//	sl := slog.New(logline.NewSlogHandler(logger))
//	sl.Info("ready", "port", 8080)
func NewSlogHandler(logger *Logger) slog.Handler {
	return &slogHandler{logger: logger}
}

type slogHandler struct {
	logger *Logger
	attrs  Fields
	groups []string
}

func (h *slogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.logger.Enabled(fromSlogLevel(level))
}

func (h *slogHandler) Handle(_ context.Context, r slog.Record) error {
	fields := make(Fields, len(h.attrs)+r.NumAttrs())
	for k, v := range h.attrs {
		fields[k] = v
	}
	r.Attrs(func(a slog.Attr) bool {
		fields[h.qualify(a.Key)] = a.Value.Resolve().Any()
		return true
	})

	ts := r.Time
	if ts.IsZero() {
		ts = time.Now()
	}
	h.logger.log(fromSlogLevel(r.Level), r.Message, fields, ts)
	return nil
}

func (h *slogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	next := h.clone()
	for _, a := range attrs {
		next.attrs[next.qualify(a.Key)] = a.Value.Resolve().Any()
	}
	return next
}

func (h *slogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := h.clone()
	next.groups = append(next.groups, name)
	return next
}

func (h *slogHandler) clone() *slogHandler {
	next := &slogHandler{
		logger: h.logger,
		attrs:  make(Fields, len(h.attrs)+4),
		groups: append([]string(nil), h.groups...),
	}
	for k, v := range h.attrs {
		next.attrs[k] = v
	}
	return next
}

// qualify prefixes key with the open groups, dot-separated.
func (h *slogHandler) qualify(key string) string {
	if len(h.groups) == 0 {
		return key
	}
	return strings.Join(h.groups, ".") + "." + key
}

// fromSlogLevel maps slog levels onto the six severity levels. The
// standard bands (Debug -4, Info 0, Warn 4, Error 8) map directly; levels
// below Debug map to Trace and levels at or above 12 map to Fatal.
func fromSlogLevel(level slog.Level) Level {
	switch {
	case level < slog.LevelDebug:
		return LevelTrace
	case level < slog.LevelInfo:
		return LevelDebug
	case level < slog.LevelWarn:
		return LevelInfo
	case level < slog.LevelError:
		return LevelWarn
	case level < slogLevelFatal:
		return LevelError
	default:
		return LevelFatal
	}
}
