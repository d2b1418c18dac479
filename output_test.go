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
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterOutput(t *testing.T) {
	t.Parallel()

	t.Run("appends newline", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		out := NewWriterOutput(&buf)
		out.Write("first")
		out.Write("second")
		assert.Equal(t, "first\nsecond\n", buf.String())
	})

	t.Run("concurrent writes stay whole lines", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		out := NewWriterOutput(&buf)

		var wg sync.WaitGroup
		for range 10 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for range 50 {
					out.Write("aaaaaaaaaa")
				}
			}()
		}
		wg.Wait()

		lines := bytes.Split(bytes.TrimRight(buf.Bytes(), "\n"), []byte("\n"))
		require.Len(t, lines, 500)
		for _, line := range lines {
			assert.Equal(t, "aaaaaaaaaa", string(line))
		}
	})
}

func TestFileOutput(t *testing.T) {
	t.Parallel()

	t.Run("creates and appends", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "app.log")
		out := NewFileOutput(path)
		out.Write("one")
		out.Write("two")

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "one\ntwo\n", string(data))
	})

	t.Run("appends to existing content", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "app.log")
		require.NoError(t, os.WriteFile(path, []byte("existing\n"), 0o644))

		NewFileOutput(path).Write("new")

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "existing\nnew\n", string(data))
	})

	t.Run("survives file removal between writes", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "app.log")
		out := NewFileOutput(path)
		out.Write("one")
		require.NoError(t, os.Remove(path))
		out.Write("two")

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "two\n", string(data))
	})

	t.Run("unwritable path is silent", func(t *testing.T) {
		t.Parallel()

		out := NewFileOutput(filepath.Join(t.TempDir(), "missing", "nested", "app.log"))
		assert.NotPanics(t, func() { out.Write("dropped") })
	})
}

func TestMultiOutput(t *testing.T) {
	t.Parallel()

	t.Run("fans out in order", func(t *testing.T) {
		t.Parallel()

		first := NewRecordingOutput()
		second := NewRecordingOutput()
		out := NewMultiOutput(first, second)

		out.Write("line")
		assert.Equal(t, []string{"line"}, first.Lines())
		assert.Equal(t, []string{"line"}, second.Lines())
	})

	t.Run("failing destination does not block the rest", func(t *testing.T) {
		t.Parallel()

		rec := NewRecordingOutput()
		broken := NewFileOutput(filepath.Join(t.TempDir(), "no", "such", "dir.log"))
		out := NewMultiOutput(broken, rec)

		out.Write("line")
		assert.Equal(t, []string{"line"}, rec.Lines())
	})

	t.Run("empty fan-out is a no-op", func(t *testing.T) {
		t.Parallel()
		assert.NotPanics(t, func() { NewMultiOutput().Write("line") })
	})
}

func TestConsoleOutput(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "console.txt")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	out := NewConsoleOutput(f)
	out.Write("plain text")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "plain text")
}
