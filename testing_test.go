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
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordingOutput(t *testing.T) {
	t.Parallel()

	rec := NewRecordingOutput()
	assert.Empty(t, rec.LastLine())
	assert.Zero(t, rec.Len())

	rec.Write("one")
	rec.Write("two")
	assert.Equal(t, []string{"one", "two"}, rec.Lines())
	assert.Equal(t, "two", rec.LastLine())
	assert.Equal(t, 2, rec.Len())

	// Lines returns a copy.
	rec.Lines()[0] = "mutated"
	assert.Equal(t, "one", rec.Lines()[0])

	rec.Reset()
	assert.Zero(t, rec.Len())
}

func TestCountingOutput(t *testing.T) {
	t.Parallel()

	var out CountingOutput

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 25 {
				out.Write("1234567890")
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(200), out.Lines())
	assert.Equal(t, int64(2000), out.Bytes())
}

func TestNewTestLoggerCapturesEverything(t *testing.T) {
	t.Parallel()

	l, rec := NewTestLogger("test")
	l.Trace("lowest")
	assert.Equal(t, 1, rec.Len())
}

func TestParseJSONLogEntriesRejectsGarbage(t *testing.T) {
	t.Parallel()

	_, err := ParseJSONLogEntries([]string{`{"msg":"ok"}`, "not json"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
}
