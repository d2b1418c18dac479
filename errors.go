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

import "errors"

var (
	// ErrInvalidLevel indicates a level name that [ParseLevel] does not
	// recognize. Valid names: TRACE, DEBUG, INFO, WARN, ERROR, FATAL
	// (case-insensitive).
	ErrInvalidLevel = errors.New("invalid log level")

	// ErrInvalidPosition indicates a position name that [ParsePosition]
	// does not recognize. Valid names: start, after_timestamp,
	// after_logger_name, after_level, after_message, end.
	ErrInvalidPosition = errors.New("invalid template position")

	// ErrInvalidComponentKind indicates a component kind name that
	// [ParseKind] does not recognize. Valid names: timestamp, logger_name,
	// level, message, fields, literal.
	ErrInvalidComponentKind = errors.New("invalid component kind")
)
