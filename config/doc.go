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

// Package config builds logline loggers from declarative documents.
//
// A document describes one logger: its name, level, format, outputs, base
// fields, and, for the flexible format, the full component template.
// Documents may be YAML, JSON, or TOML; the format is detected from the
// file extension or passed explicitly. Top-level keys are
// case-insensitive.
//
// # Quick Start
//
// Load a logger from a file:
//
//	logger, err := config.Load("logger.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	logger.Info("configured")
//
// Or from raw content:
//
//	doc := []byte(`{"level": "debug", "format": "pretty"}`)
//	logger, err := config.Parse(doc, config.FormatJSON)
//
// # Document Shape
//
// All keys are optional; omitted keys fall back to an info-level JSON
// logger writing to stdout.
//
//	name: checkout
//	level: debug
//	format: flexible
//	time_format: "%H:%M:%S"
//	fields:
//	  service: checkout
//	outputs:
//	  - stdout
//	  - type: file
//	    path: /var/log/checkout.log
//	components:
//	  - kind: timestamp
//	    position: start
//	    prefix: "["
//	    suffix: "]"
//	  - kind: message
//	    position: after_level
//	    prefix: " "
//
// Output entries are either bare strings (stdout, stderr, console) or
// maps with a type and, for file outputs, a path. Component kinds and
// positions use the snake_case names understood by [logline.ParseKind]
// and [logline.ParsePosition]. An empty components list keeps the
// default template.
//
// # Validation
//
// By default unknown keys are ignored. WithValidation checks the merged
// document against an embedded JSON schema, turning misspelled keys and
// wrongly-typed values into errors:
//
//	logger, err := config.Load("logger.yaml", config.WithValidation())
//
// # Defaults
//
// WithDefault seeds values that documents may override:
//
//	logger, err := config.Load("logger.yaml",
//	    config.WithDefault("level", "warn"),
//	    config.WithDefault("name", os.Getenv("SERVICE_NAME")),
//	)
//
// # Programmatic Specs
//
// Callers that assemble configuration themselves can skip the document
// layer and build from a [Spec] directly:
//
//	logger, err := config.Build(config.Spec{
//	    Name:   "worker",
//	    Level:  "debug",
//	    Format: "pretty",
//	})
package config
