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

package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// schemaJSON describes the shape of a logger document. Enum checks for
// level, kind, and position names live in the parse functions, which
// report the valid names; the schema catches structural mistakes such as
// misspelled keys and wrong value types.
const schemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "title": "logline logger document",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "name": {"type": "string"},
    "level": {"type": "string"},
    "format": {"type": "string", "enum": ["json", "pretty", "flexible"]},
    "time_format": {"type": "string"},
    "no_color": {"type": "boolean"},
    "reset": {"type": "string"},
    "fields": {"type": "object"},
    "colors": {
      "type": "object",
      "additionalProperties": {"type": "string"}
    },
    "outputs": {
      "type": "array",
      "items": {
        "oneOf": [
          {"type": "string"},
          {
            "type": "object",
            "additionalProperties": false,
            "properties": {
              "type": {"type": "string"},
              "path": {"type": "string"}
            },
            "required": ["type"]
          }
        ]
      }
    },
    "components": {
      "type": "array",
      "items": {
        "type": "object",
        "additionalProperties": false,
        "properties": {
          "kind": {"type": "string"},
          "position": {"type": "string"},
          "text": {"type": "string"},
          "color": {"type": "string"},
          "prefix": {"type": "string"},
          "suffix": {"type": "string"}
        },
        "required": ["kind", "position"]
      }
    }
  }
}`

const schemaName = "logline.schema.json"

var (
	schemaOnce     sync.Once
	schemaCompiled *jsonschema.Schema
	schemaErr      error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(schemaJSON))
		if err != nil {
			schemaErr = err
			return
		}
		if err := compiler.AddResource(schemaName, doc); err != nil {
			schemaErr = err
			return
		}
		schemaCompiled, schemaErr = compiler.Compile(schemaName)
	})
	return schemaCompiled, schemaErr
}

// validateDocument checks merged values against the embedded schema. The
// values pass through a JSON round trip first so that decoder-specific
// types (TOML table slices, YAML integers) validate uniformly.
func validateDocument(values map[string]any) error {
	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile config schema: %w", err)
	}
	data, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("marshal config for validation: %w", err)
	}
	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("reparse config for validation: %w", err)
	}
	if err := schema.Validate(instance); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}
