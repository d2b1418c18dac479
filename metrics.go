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
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// WithMetrics instruments the logger with Prometheus counters registered
// on reg:
//
//   - logline_records_emitted_total, labeled by level
//   - logline_records_filtered_total, records dropped by the level gate
//
// Collectors already present on reg are reused, so any number of loggers
// may share one registry. Derived loggers ([Logger.Child], [Logger.With])
// share the parent's collectors. A nil registerer leaves the logger
// uninstrumented.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(l *Logger) {
		if reg == nil {
			return
		}
		l.metrics = newLoggerMetrics(reg)
	}
}

type loggerMetrics struct {
	emitted  *prometheus.CounterVec
	filtered prometheus.Counter
}

func newLoggerMetrics(reg prometheus.Registerer) *loggerMetrics {
	emitted := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "logline_records_emitted_total",
		Help: "Total log records emitted, by level.",
	}, []string{"level"})
	filtered := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "logline_records_filtered_total",
		Help: "Total log records dropped by the level gate.",
	})

	var are prometheus.AlreadyRegisteredError
	if err := reg.Register(emitted); errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
			emitted = existing
		}
	}
	if err := reg.Register(filtered); errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
			filtered = existing
		}
	}

	return &loggerMetrics{emitted: emitted, filtered: filtered}
}

// Both recorders tolerate a nil receiver: an uninstrumented logger carries
// no metrics at all.

func (m *loggerMetrics) recordEmitted(level Level) {
	if m == nil {
		return
	}
	m.emitted.WithLabelValues(level.String()).Inc()
}

func (m *loggerMetrics) recordFiltered() {
	if m == nil {
		return
	}
	m.filtered.Inc()
}
