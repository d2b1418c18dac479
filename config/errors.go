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

import "errors"

var (
	// ErrUnknownFormat is returned when a file extension or format name
	// does not match a supported encoding (yaml, json, toml).
	ErrUnknownFormat = errors.New("unknown config format")

	// ErrInvalidConfig is returned when a document decodes but cannot
	// produce a logger: an unrecognized format or output type, a bad
	// component spec, or a schema violation under WithValidation.
	ErrInvalidConfig = errors.New("invalid logger config")
)
