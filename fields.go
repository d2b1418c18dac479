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
	"sort"
	"strconv"
	"strings"
	"time"
)

// Fields holds the key/value pairs attached to a log record. Values may be
// anything encoding/json can marshal; text formatters render scalars bare
// and everything else as compact JSON.
type Fields map[string]any

// mergeFields combines logger base fields with call-site fields into a
// fresh map. Call-site values win on key collision. Neither input is
// mutated.
func mergeFields(base, extra Fields) Fields {
	merged := make(Fields, len(base)+len(extra))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range extra {
		merged[k] = v
	}
	return merged
}

// Builder collects call-site fields for the *With logging variants.
// Methods chain:
//
//	logger.InfoWith("request served", func(b *logline.Builder) {
//	    b.String("method", "GET").Int("status", 200)
//	})
type Builder struct {
	fields Fields
}

func (b *Builder) put(key string, value any) *Builder {
	if b.fields == nil {
		b.fields = make(Fields)
	}
	b.fields[key] = value
	return b
}

// Field adds a key/value pair of any type.
func (b *Builder) Field(key string, value any) *Builder {
	return b.put(key, value)
}

// String adds a string field.
func (b *Builder) String(key, value string) *Builder {
	return b.put(key, value)
}

// Int adds an int field.
func (b *Builder) Int(key string, value int) *Builder {
	return b.put(key, value)
}

// Int64 adds an int64 field.
func (b *Builder) Int64(key string, value int64) *Builder {
	return b.put(key, value)
}

// Float64 adds a float64 field.
func (b *Builder) Float64(key string, value float64) *Builder {
	return b.put(key, value)
}

// Bool adds a bool field.
func (b *Builder) Bool(key string, value bool) *Builder {
	return b.put(key, value)
}

// Dur adds a duration field. Text formatters render it human-readable
// ("1.5s"); the JSON formatter serializes nanoseconds.
func (b *Builder) Dur(key string, value time.Duration) *Builder {
	return b.put(key, value)
}

// Err adds the error's message under the "error" key. Nil errors are
// ignored.
func (b *Builder) Err(err error) *Builder {
	if err == nil {
		return b
	}
	return b.put("error", err.Error())
}

// formatValue renders a single field value for text formatters. Scalars
// render bare, nil renders "null", and composite values render as compact
// JSON. Values that cannot be marshaled render as the empty string.
func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case int8:
		return strconv.FormatInt(int64(val), 10)
	case int16:
		return strconv.FormatInt(int64(val), 10)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case uint:
		return strconv.FormatUint(uint64(val), 10)
	case uint8:
		return strconv.FormatUint(uint64(val), 10)
	case uint16:
		return strconv.FormatUint(uint64(val), 10)
	case uint32:
		return strconv.FormatUint(uint64(val), 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case time.Duration:
		return val.String()
	case time.Time:
		return val.Format(time.RFC3339)
	case error:
		return val.Error()
	default:
		encoded, err := json.Marshal(val)
		if err != nil {
			return ""
		}
		return string(encoded)
	}
}

// formatFields renders the field set as space-separated key=value pairs.
// Keys are sorted so output is deterministic. An empty set renders as the
// empty string.
func formatFields(fields Fields) string {
	if len(fields) == 0 {
		return ""
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(formatValue(fields[k]))
	}
	return b.String()
}
