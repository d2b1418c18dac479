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
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/colorprofile"
)

// Output delivers one rendered log line. Implementations append the
// trailing newline and swallow I/O errors: delivery is best-effort and
// never panics.
type Output interface {
	Write(line string)
}

// WriterOutput adapts any io.Writer. A mutex serializes writes so lines
// from concurrent goroutines never interleave.
type WriterOutput struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterOutput returns an output writing newline-terminated lines to w.
func NewWriterOutput(w io.Writer) *WriterOutput {
	return &WriterOutput{w: w}
}

// NewStdoutOutput returns an output writing to standard output.
func NewStdoutOutput() *WriterOutput {
	return NewWriterOutput(os.Stdout)
}

// NewStderrOutput returns an output writing to standard error.
func NewStderrOutput() *WriterOutput {
	return NewWriterOutput(os.Stderr)
}

// Write delivers one line. Write errors are dropped.
func (o *WriterOutput) Write(line string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, _ = io.WriteString(o.w, line+"\n")
}

// FileOutput appends lines to a file. The file is opened and closed on
// every write, so the path may be moved or removed between records.
type FileOutput struct {
	mu   sync.Mutex
	path string
}

// NewFileOutput returns an output appending to the file at path. The file
// is created on first write if it does not exist.
func NewFileOutput(path string) *FileOutput {
	return &FileOutput{path: path}
}

// Write appends one line. Open and write failures are dropped.
func (o *FileOutput) Write(line string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	f, err := os.OpenFile(o.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()
	_, _ = f.WriteString(line + "\n")
}

// MultiOutput fans each line out to several outputs in order. A failing
// destination never blocks the rest, since every destination swallows its
// own errors.
type MultiOutput struct {
	outputs []Output
}

// NewMultiOutput returns an output delivering to every destination in the
// order given.
func NewMultiOutput(outputs ...Output) *MultiOutput {
	return &MultiOutput{outputs: append([]Output(nil), outputs...)}
}

// Write delivers the line to every destination.
func (o *MultiOutput) Write(line string) {
	for _, out := range o.outputs {
		out.Write(line)
	}
}

// ConsoleOutput writes to a terminal stream, downgrading ANSI escapes to
// what the terminal supports and stripping them for non-terminal
// destinations or when NO_COLOR is set.
type ConsoleOutput struct {
	mu sync.Mutex
	w  *colorprofile.Writer
}

// NewConsoleOutput returns a terminal-aware output for f, typically
// os.Stdout or os.Stderr. Color capability is detected from f and the
// process environment.
func NewConsoleOutput(f *os.File) *ConsoleOutput {
	return &ConsoleOutput{w: colorprofile.NewWriter(f, os.Environ())}
}

// Write delivers one line through the color-profile writer. Errors are
// dropped.
func (o *ConsoleOutput) Write(line string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, _ = io.WriteString(o.w, line+"\n")
}
