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
	"time"
)

// JSONFormatter renders each record as a single compact JSON object.
//
// Reserved keys: "level" (numeric weight), "time" (RFC3339 UTC with
// sub-second precision), "name" (logger name, present even when empty),
// and "msg". Record fields are spliced in at the top level; a field using
// a reserved key silently overwrites it.
type JSONFormatter struct{}

// NewJSON returns a JSON formatter.
func NewJSON() *JSONFormatter {
	return &JSONFormatter{}
}

// Format renders the record as one JSON object. If the field set cannot
// be marshaled, the whole line is dropped and the empty string is
// returned; a partial JSON object is never emitted.
func (f *JSONFormatter) Format(level Level, msg string, fields Fields, timestamp time.Time, name string) string {
	entry := make(map[string]any, len(fields)+4)
	entry["level"] = int(level)
	entry["time"] = timestamp.UTC().Format(time.RFC3339Nano)
	entry["name"] = name
	entry["msg"] = msg
	for k, v := range fields {
		entry[k] = v
	}

	encoded, err := json.Marshal(entry)
	if err != nil {
		return ""
	}
	return string(encoded)
}
