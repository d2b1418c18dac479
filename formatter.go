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
	"sync"
	"time"
)

// Formatter renders one log record into its final textual form. The
// returned line carries no trailing newline; line termination belongs to
// the [Output]. Implementations must be safe for concurrent use once
// configured.
type Formatter interface {
	Format(level Level, msg string, fields Fields, timestamp time.Time, name string) string
}

// builderPool provides pooled string builders for the render paths.
var builderPool = sync.Pool{
	New: func() any {
		return &strings.Builder{}
	},
}
