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
	"fmt"
	"strings"
	"time"
)

// ComponentKind identifies what a template component renders.
type ComponentKind int

// Component kinds. Literal renders fixed text; the others pull their
// content from the record.
const (
	KindTimestamp ComponentKind = iota
	KindLoggerName
	KindLevel
	KindMessage
	KindFields
	KindLiteral
)

// String returns the canonical snake_case name of the kind.
func (k ComponentKind) String() string {
	switch k {
	case KindTimestamp:
		return "timestamp"
	case KindLoggerName:
		return "logger_name"
	case KindLevel:
		return "level"
	case KindMessage:
		return "message"
	case KindFields:
		return "fields"
	case KindLiteral:
		return "literal"
	default:
		return "unknown"
	}
}

// ParseKind converts a kind name to its [ComponentKind]. Matching is
// case-insensitive. Unknown names return [ErrInvalidComponentKind].
func ParseKind(s string) (ComponentKind, error) {
	switch strings.ToLower(s) {
	case "timestamp":
		return KindTimestamp, nil
	case "logger_name":
		return KindLoggerName, nil
	case "level":
		return KindLevel, nil
	case "message":
		return KindMessage, nil
	case "fields":
		return KindFields, nil
	case "literal":
		return KindLiteral, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidComponentKind, s)
	}
}

// Position anchors a component to one of six slots in the rendered line.
// Slots render in declaration order, Start through End; components
// sharing a slot render in the order they were added.
type Position int

// Template positions in render order.
const (
	PositionStart Position = iota
	PositionAfterTimestamp
	PositionAfterLoggerName
	PositionAfterLevel
	PositionAfterMessage
	PositionEnd
)

// String returns the canonical snake_case name of the position.
func (p Position) String() string {
	switch p {
	case PositionStart:
		return "start"
	case PositionAfterTimestamp:
		return "after_timestamp"
	case PositionAfterLoggerName:
		return "after_logger_name"
	case PositionAfterLevel:
		return "after_level"
	case PositionAfterMessage:
		return "after_message"
	case PositionEnd:
		return "end"
	default:
		return "unknown"
	}
}

// ParsePosition converts a position name to its [Position]. Matching is
// case-insensitive. Unknown names return [ErrInvalidPosition].
func ParsePosition(s string) (Position, error) {
	switch strings.ToLower(s) {
	case "start":
		return PositionStart, nil
	case "after_timestamp":
		return PositionAfterTimestamp, nil
	case "after_logger_name":
		return PositionAfterLoggerName, nil
	case "after_level":
		return PositionAfterLevel, nil
	case "after_message":
		return PositionAfterMessage, nil
	case "end":
		return PositionEnd, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidPosition, s)
	}
}

// Component is one renderable unit of a flexible template. Color, Prefix,
// and Suffix are optional decoration; the empty string means absent. Text
// is only consulted for [KindLiteral] components.
type Component struct {
	Kind     ComponentKind
	Position Position
	Text     string
	Color    string
	Prefix   string
	Suffix   string
}

// FlexibleFormatter renders records from an ordered list of positioned
// components. Every part of the line, including spacing and punctuation,
// comes from the components and their decoration; concatenation itself
// inserts nothing.
//
// Each component renders as prefix, color escape, content, reset escape,
// suffix. The reset is shared by the whole template and is emitted only
// after colored components. A Fields component whose record has no fields
// is skipped entirely, decoration included; a LoggerName component always
// renders, even around an empty name.
//
// The zero template renders the empty string. [NewFlexible] preloads the
// default template:
//
//	[12:00:00] (name) INFO: message key=value
//
// Builder methods mutate the receiver and return it for chaining, so a
// template reads as one expression:
//
//	f := logline.NewFlexible().
//	    Clear().
//	    AddLevel(logline.PositionStart, "", "", " ").
//	    AddMessage(logline.PositionAfterLevel, "", "", "")
type FlexibleFormatter struct {
	components []Component
	timeFormat string
	reset      string
}

// NewFlexible returns a formatter preloaded with the default template and
// the %H:%M:%S time pattern. The default components carry no colors.
func NewFlexible() *FlexibleFormatter {
	f := &FlexibleFormatter{
		timeFormat: defaultTimeFormat,
		reset:      colorReset,
	}
	return f.
		AddTimestamp(PositionStart, "", "[", "]").
		AddLoggerName(PositionAfterTimestamp, "", " (", ")").
		AddLevel(PositionAfterLoggerName, "", " ", "").
		AddLiteral(":", PositionAfterLevel, "").
		AddMessage(PositionAfterLevel, "", " ", "").
		AddFields(PositionEnd, "", " ", "")
}

// Clear removes every component. A cleared template renders the empty
// string until components are added back.
func (f *FlexibleFormatter) Clear() *FlexibleFormatter {
	f.components = f.components[:0]
	return f
}

// Add appends a component to the template.
func (f *FlexibleFormatter) Add(c Component) *FlexibleFormatter {
	f.components = append(f.components, c)
	return f
}

// AddTimestamp appends a timestamp component rendered with the template's
// time pattern.
func (f *FlexibleFormatter) AddTimestamp(pos Position, color, prefix, suffix string) *FlexibleFormatter {
	return f.Add(Component{Kind: KindTimestamp, Position: pos, Color: color, Prefix: prefix, Suffix: suffix})
}

// AddLoggerName appends a logger-name component.
func (f *FlexibleFormatter) AddLoggerName(pos Position, color, prefix, suffix string) *FlexibleFormatter {
	return f.Add(Component{Kind: KindLoggerName, Position: pos, Color: color, Prefix: prefix, Suffix: suffix})
}

// AddLevel appends a level-name component.
func (f *FlexibleFormatter) AddLevel(pos Position, color, prefix, suffix string) *FlexibleFormatter {
	return f.Add(Component{Kind: KindLevel, Position: pos, Color: color, Prefix: prefix, Suffix: suffix})
}

// AddMessage appends a message component.
func (f *FlexibleFormatter) AddMessage(pos Position, color, prefix, suffix string) *FlexibleFormatter {
	return f.Add(Component{Kind: KindMessage, Position: pos, Color: color, Prefix: prefix, Suffix: suffix})
}

// AddFields appends a fields component rendering the record's fields as
// key=value pairs in key order.
func (f *FlexibleFormatter) AddFields(pos Position, color, prefix, suffix string) *FlexibleFormatter {
	return f.Add(Component{Kind: KindFields, Position: pos, Color: color, Prefix: prefix, Suffix: suffix})
}

// AddLiteral appends fixed text. Literals always render.
func (f *FlexibleFormatter) AddLiteral(text string, pos Position, color string) *FlexibleFormatter {
	return f.Add(Component{Kind: KindLiteral, Position: pos, Text: text, Color: color})
}

// WithTimeFormat sets the strftime-style pattern used by timestamp
// components.
func (f *FlexibleFormatter) WithTimeFormat(pattern string) *FlexibleFormatter {
	f.timeFormat = pattern
	return f
}

// WithReset sets the escape emitted after each colored component.
func (f *FlexibleFormatter) WithReset(escape string) *FlexibleFormatter {
	f.reset = escape
	return f
}

// StripColors removes the color from every component and clears the
// shared reset. Rendered output then contains no escape bytes at all.
func (f *FlexibleFormatter) StripColors() *FlexibleFormatter {
	for i := range f.components {
		f.components[i].Color = ""
	}
	f.reset = ""
	return f
}

// Components returns a copy of the template's component list in insertion
// order.
func (f *FlexibleFormatter) Components() []Component {
	out := make([]Component, len(f.components))
	copy(out, f.components)
	return out
}

// Format renders the record by walking the six positions in order and,
// within each position, the components in insertion order.
func (f *FlexibleFormatter) Format(level Level, msg string, fields Fields, timestamp time.Time, name string) string {
	b := builderPool.Get().(*strings.Builder)
	defer func() {
		b.Reset()
		builderPool.Put(b)
	}()

	for pos := PositionStart; pos <= PositionEnd; pos++ {
		for _, c := range f.components {
			if c.Position != pos {
				continue
			}
			f.renderComponent(b, c, level, msg, fields, timestamp, name)
		}
	}
	return b.String()
}

func (f *FlexibleFormatter) renderComponent(b *strings.Builder, c Component, level Level, msg string, fields Fields, timestamp time.Time, name string) {
	var content string
	switch c.Kind {
	case KindTimestamp:
		content = FormatTime(timestamp, f.timeFormat)
	case KindLoggerName:
		content = name
	case KindLevel:
		content = level.String()
	case KindMessage:
		content = msg
	case KindFields:
		// An empty field set skips the component, decoration included.
		if len(fields) == 0 {
			return
		}
		content = formatFields(fields)
	case KindLiteral:
		content = c.Text
	default:
		return
	}

	b.WriteString(c.Prefix)
	if c.Color != "" {
		b.WriteString(c.Color)
	}
	b.WriteString(content)
	if c.Color != "" && f.reset != "" {
		b.WriteString(f.reset)
	}
	b.WriteString(c.Suffix)
}
