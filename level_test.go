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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level Level
		want  string
	}{
		{LevelTrace, "TRACE"},
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{LevelFatal, "FATAL"},
		{Level(0), "UNKNOWN"},
		{Level(35), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.level.String())
		})
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    Level
		wantErr bool
	}{
		{"uppercase", "TRACE", LevelTrace, false},
		{"lowercase", "debug", LevelDebug, false},
		{"mixed case", "Info", LevelInfo, false},
		{"warn", "warn", LevelWarn, false},
		{"error", "ERROR", LevelError, false},
		{"fatal", "Fatal", LevelFatal, false},
		{"unknown name", "verbose", 0, true},
		{"empty", "", 0, true},
		{"padded", " info ", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidLevel)
				assert.Contains(t, err.Error(), tt.input)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLevelRoundTrip(t *testing.T) {
	t.Parallel()

	levels := []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError, LevelFatal}
	for _, level := range levels {
		parsed, err := ParseLevel(level.String())
		require.NoError(t, err)
		assert.Equal(t, level, parsed)
	}
}

func TestLevelOrdering(t *testing.T) {
	t.Parallel()

	ordered := []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError, LevelFatal}
	for i := 1; i < len(ordered); i++ {
		assert.Less(t, int(ordered[i-1]), int(ordered[i]))
	}

	assert.Equal(t, 10, int(LevelTrace))
	assert.Equal(t, 20, int(LevelDebug))
	assert.Equal(t, 30, int(LevelInfo))
	assert.Equal(t, 40, int(LevelWarn))
	assert.Equal(t, 50, int(LevelError))
	assert.Equal(t, 60, int(LevelFatal))
}
