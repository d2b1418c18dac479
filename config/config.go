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
	"fmt"
	"os"
	"strings"

	"dario.cat/mergo"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cast"

	"rivaas.dev/logline"
)

// Spec is the decoded shape of a logger document. Zero values defer to
// the package defaults: info level, json format, stdout output.
type Spec struct {
	Name       string            `config:"name"`
	Level      string            `config:"level"`
	Format     string            `config:"format"`
	TimeFormat string            `config:"time_format"`
	NoColor    bool              `config:"no_color"`
	Reset      string            `config:"reset"`
	Fields     map[string]any    `config:"fields"`
	Colors     map[string]string `config:"colors"`
	Outputs    []OutputSpec      `config:"outputs"`
	Components []ComponentSpec   `config:"components"`
}

// OutputSpec names one log destination. Type is one of stdout, stderr,
// console, or file; Path is required for file and selects the stream for
// console (stdout unless "stderr"). In documents an entry may also be a
// bare string, shorthand for {type: <string>}.
type OutputSpec struct {
	Type string `config:"type"`
	Path string `config:"path"`
}

// ComponentSpec names one template component for the flexible format.
// Kind and Position use the snake_case names understood by
// [logline.ParseKind] and [logline.ParsePosition].
type ComponentSpec struct {
	Kind     string `config:"kind"`
	Position string `config:"position"`
	Text     string `config:"text"`
	Color    string `config:"color"`
	Prefix   string `config:"prefix"`
	Suffix   string `config:"suffix"`
}

// Option adjusts how documents are loaded.
type Option func(*loader)

type loader struct {
	validate bool
	defaults map[string]any
}

// WithValidation enables JSON-schema validation of the merged document.
// Unknown top-level keys, which are otherwise ignored, then become
// errors.
func WithValidation() Option {
	return func(l *loader) { l.validate = true }
}

// WithDefault overlays documents on top of a default value for key.
// Document values win.
func WithDefault(key string, value any) Option {
	return func(l *loader) { l.defaults[strings.ToLower(key)] = value }
}

// Load reads the file at path and builds a logger from it. The format is
// detected from the extension: .yaml, .yml, .json, or .toml.
func Load(path string, opts ...Option) (*logline.Logger, error) {
	format, err := detectFormat(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data, format, opts...)
}

// MustLoad is Load, panicking on error. For application initialization
// where a broken logger config should halt startup.
func MustLoad(path string, opts ...Option) *logline.Logger {
	logger, err := Load(path, opts...)
	if err != nil {
		panic(fmt.Sprintf("config: load %s: %v", path, err))
	}
	return logger
}

// Parse builds a logger from an in-memory document.
func Parse(data []byte, format Format, opts ...Option) (*logline.Logger, error) {
	l := &loader{defaults: defaultValues()}
	for _, opt := range opts {
		opt(l)
	}

	raw, err := decode(data, format)
	if err != nil {
		return nil, err
	}

	values := l.defaults
	if err := mergo.Map(&values, normalizeKeys(raw), mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("merge config: %w", err)
	}

	if l.validate {
		if err := validateDocument(values); err != nil {
			return nil, err
		}
	}
	if v, ok := values["outputs"]; ok {
		values["outputs"] = normalizeOutputs(v)
	}

	spec, err := decodeSpec(values)
	if err != nil {
		return nil, err
	}
	return Build(spec)
}

func defaultValues() map[string]any {
	return map[string]any{
		"level":  "info",
		"format": "json",
	}
}

// normalizeKeys lowercases top-level keys so documents merge and decode
// case-insensitively. Nested values, including field names destined for
// log records, pass through untouched.
func normalizeKeys(raw map[string]any) map[string]any {
	out := make(map[string]any, len(raw))
	for k, v := range raw {
		out[strings.ToLower(k)] = v
	}
	return out
}

// normalizeOutputs rewrites bare-string output entries into their map
// form so the decoder sees one shape.
func normalizeOutputs(v any) any {
	entries, ok := v.([]any)
	if !ok {
		return v
	}
	out := make([]any, len(entries))
	for i, entry := range entries {
		if s, err := cast.ToStringE(entry); err == nil {
			out[i] = map[string]any{"type": s}
			continue
		}
		out[i] = entry
	}
	return out
}

func decodeSpec(values map[string]any) (Spec, error) {
	var spec Spec
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "config",
		WeaklyTypedInput: true,
		Result:           &spec,
	})
	if err != nil {
		return Spec{}, fmt.Errorf("build config decoder: %w", err)
	}
	if err := decoder.Decode(values); err != nil {
		return Spec{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return spec, nil
}

// Build constructs a logger from an already-decoded Spec. Parse and Load
// call it after decoding; it is exported for callers that assemble specs
// programmatically.
func Build(spec Spec) (*logline.Logger, error) {
	opts := make([]logline.Option, 0, 4)

	if spec.Level != "" {
		level, err := logline.ParseLevel(spec.Level)
		if err != nil {
			return nil, fmt.Errorf("level: %w", err)
		}
		opts = append(opts, logline.WithLevel(level))
	}

	formatter, err := buildFormatter(spec)
	if err != nil {
		return nil, err
	}
	opts = append(opts, logline.WithFormatter(formatter))

	output, err := buildOutput(spec.Outputs)
	if err != nil {
		return nil, err
	}
	opts = append(opts, logline.WithOutput(output))

	if len(spec.Fields) > 0 {
		opts = append(opts, logline.WithFields(logline.Fields(spec.Fields)))
	}

	return logline.New(spec.Name, opts...), nil
}

func buildFormatter(spec Spec) (logline.Formatter, error) {
	switch strings.ToLower(spec.Format) {
	case "", "json":
		return logline.NewJSON(), nil

	case "pretty":
		formatter := logline.NewPretty()
		if spec.TimeFormat != "" {
			formatter.WithTimeFormat(spec.TimeFormat)
		}
		for name, escape := range spec.Colors {
			level, err := logline.ParseLevel(name)
			if err != nil {
				return nil, fmt.Errorf("colors: %w", err)
			}
			formatter.WithColor(level, escape)
		}
		if spec.NoColor {
			formatter.WithoutColors()
		}
		return formatter, nil

	case "flexible":
		formatter := logline.NewFlexible()
		if spec.TimeFormat != "" {
			formatter.WithTimeFormat(spec.TimeFormat)
		}
		if spec.Reset != "" {
			formatter.WithReset(spec.Reset)
		}
		if len(spec.Components) > 0 {
			formatter.Clear()
			for i, cs := range spec.Components {
				component, err := buildComponent(cs)
				if err != nil {
					return nil, fmt.Errorf("components[%d]: %w", i, err)
				}
				formatter.Add(component)
			}
		}
		if spec.NoColor {
			formatter.StripColors()
		}
		return formatter, nil

	default:
		return nil, fmt.Errorf("%w: format %q", ErrInvalidConfig, spec.Format)
	}
}

func buildComponent(cs ComponentSpec) (logline.Component, error) {
	kind, err := logline.ParseKind(cs.Kind)
	if err != nil {
		return logline.Component{}, err
	}
	position, err := logline.ParsePosition(cs.Position)
	if err != nil {
		return logline.Component{}, err
	}
	return logline.Component{
		Kind:     kind,
		Position: position,
		Text:     cs.Text,
		Color:    cs.Color,
		Prefix:   cs.Prefix,
		Suffix:   cs.Suffix,
	}, nil
}

func buildOutput(specs []OutputSpec) (logline.Output, error) {
	if len(specs) == 0 {
		return logline.NewStdoutOutput(), nil
	}
	outputs := make([]logline.Output, 0, len(specs))
	for i, spec := range specs {
		output, err := buildSingleOutput(spec)
		if err != nil {
			return nil, fmt.Errorf("outputs[%d]: %w", i, err)
		}
		outputs = append(outputs, output)
	}
	if len(outputs) == 1 {
		return outputs[0], nil
	}
	return logline.NewMultiOutput(outputs...), nil
}

func buildSingleOutput(spec OutputSpec) (logline.Output, error) {
	switch strings.ToLower(spec.Type) {
	case "stdout":
		return logline.NewStdoutOutput(), nil
	case "stderr":
		return logline.NewStderrOutput(), nil
	case "console":
		if strings.ToLower(spec.Path) == "stderr" {
			return logline.NewConsoleOutput(os.Stderr), nil
		}
		return logline.NewConsoleOutput(os.Stdout), nil
	case "file":
		if spec.Path == "" {
			return nil, fmt.Errorf("%w: file output requires a path", ErrInvalidConfig)
		}
		return logline.NewFileOutput(spec.Path), nil
	default:
		return nil, fmt.Errorf("%w: output type %q", ErrInvalidConfig, spec.Type)
	}
}
