package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

// TestNewLogger_Fields verifies role, timestamp and caller fields.
func TestNewLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("test-role", &buf, "debug")
	require.NotNil(t, l)

	l.Info().Msg("hello")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "test-role", entry["role"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

func TestNewLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("lvl", &buf, "warn")

	l.Info().Msg("dropped")
	assert.Empty(t, buf.String())

	l.Warn().Msg("kept")
	assert.Equal(t, "kept", decodeLine(t, &buf)["message"])
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"", zerolog.InfoLevel},
		{"debug", zerolog.DebugLevel},
		{"error", zerolog.ErrorLevel},
		{"loud", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNewClientLogger_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "ipass.log")

	l, closeFn := NewClientLogger("client", path, "debug")
	l.Info().Msg("to file")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "to file"))
}

func TestNewClientLogger_FallbackDoesNotFail(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	l, closeFn := NewClientLogger("client", filepath.Join(blocker, "sub", "x.log"), "error")
	require.NotNil(t, l)
	assert.NoError(t, closeFn())
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("inherited-role", &buf, "debug")

	child := parent.GetChildLogger()
	assert.NotSame(t, parent, child)
	child.Info().Msg("child message")

	assert.Equal(t, "inherited-role", decodeLine(t, &buf)["role"])
}

func TestForInvocation(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("client", &buf, "debug").ForInvocation("add", "0192-abc")

	l.Info().Msg("run")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "add", entry["command"])
	assert.Equal(t, "0192-abc", entry["invocation"])
}

func TestFromContext(t *testing.T) {
	t.Run("nothing attached", func(t *testing.T) {
		require.NotNil(t, FromContext(context.Background()))
	})

	t.Run("attached", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger("ctx", &buf, "debug")
		ctx := l.WithContext(context.Background())

		FromContext(ctx).Info().Msg("from context")

		assert.Equal(t, "ctx", decodeLine(t, &buf)["role"])
	})
}
