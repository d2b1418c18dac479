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
	"strconv"
	"strings"
	"time"
)

// defaultTimeFormat is the timestamp pattern used by the text formatters.
const defaultTimeFormat = "%H:%M:%S"

// FormatTime renders t according to a strftime-style pattern.
//
// Supported tokens: %Y %m %d (date), %H %M %S (24-hour time), %I %p
// (12-hour time), %f (nanoseconds, nine digits), %.3f %.6f %.9f (dot plus
// fractional digits), and %% for a literal percent. The pattern is walked
// token by token, so literal text, including digits, passes through
// untouched. Unrecognized tokens also pass through untouched, and a lone
// trailing % is kept. FormatTime never fails.
func FormatTime(t time.Time, pattern string) string {
	var b strings.Builder
	b.Grow(len(pattern) + 8)

	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '%' {
			b.WriteByte(pattern[i])
			continue
		}
		if i+1 >= len(pattern) {
			b.WriteByte('%')
			break
		}
		i++
		switch pattern[i] {
		case 'Y':
			b.WriteString(t.Format("2006"))
		case 'm':
			b.WriteString(t.Format("01"))
		case 'd':
			b.WriteString(t.Format("02"))
		case 'H':
			b.WriteString(t.Format("15"))
		case 'I':
			b.WriteString(t.Format("03"))
		case 'M':
			b.WriteString(t.Format("04"))
		case 'S':
			b.WriteString(t.Format("05"))
		case 'p':
			b.WriteString(t.Format("PM"))
		case 'f':
			b.WriteString(fracNanos(t, 9))
		case '.':
			// %.3f, %.6f, %.9f render a dot plus that many fractional
			// digits. Anything else after %. passes through untouched.
			if i+2 < len(pattern) && pattern[i+2] == 'f' &&
				(pattern[i+1] == '3' || pattern[i+1] == '6' || pattern[i+1] == '9') {
				b.WriteByte('.')
				b.WriteString(fracNanos(t, int(pattern[i+1]-'0')))
				i += 2
			} else {
				b.WriteString("%.")
			}
		case '%':
			b.WriteByte('%')
		default:
			b.WriteByte('%')
			b.WriteByte(pattern[i])
		}
	}
	return b.String()
}

// fracNanos returns the first digits of the nanosecond part, zero-padded
// to nine places.
func fracNanos(t time.Time, digits int) string {
	nanos := strconv.Itoa(t.Nanosecond())
	padded := strings.Repeat("0", 9-len(nanos)) + nanos
	return padded[:digits]
}
