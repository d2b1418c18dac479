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

	"go.opentelemetry.io/otel/trace"
)

// Semantic convention field names for trace correlation.
const (
	fieldTraceID = "trace_id"
	fieldSpanID  = "span_id"
)

// NewContextLogger returns a logger carrying the trace correlation fields
// found in ctx. When ctx holds an active OpenTelemetry span, the returned
// logger adds trace_id and span_id to every record; otherwise logger is
// returned unchanged.
//
// Typical use is once per request or job, right after the span is started:
//
//	log := logline.NewContextLogger(ctx, baseLogger)
//	log.Info("handling request")
func NewContextLogger(ctx context.Context, logger *Logger) *Logger {
	span := trace.SpanFromContext(ctx)
	sc := span.SpanContext()
	if !sc.IsValid() {
		return logger
	}
	return logger.With(Fields{
		fieldTraceID: sc.TraceID().String(),
		fieldSpanID:  sc.SpanID().String(),
	})
}
