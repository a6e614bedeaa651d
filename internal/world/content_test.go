package world

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"frontbundle/internal/logging"
	"frontbundle/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/text/encoding"
)

func newTestReader(t *testing.T) *Reader {
	t.Helper()
	r, err := NewReader("utf-8")
	require.NoError(t, err)
	return r
}

func TestNewReader_UnsupportedEncoding(t *testing.T) {
	_, err := NewReader("latin-1")
	assert.Error(t, err)
}

func TestReadContent(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"plain", "x\ny\n", "x\ny\n"},
		{"no trailing newline", "const a = 1;", "const a = 1;"},
		{"crlf folded", "a\r\nb\r\n", "a\nb\n"},
		{"lone cr folded", "a\rb", "a\nb"},
		{"utf-8 text", "const label = \"⚛️ ok\";\n", "const label = \"⚛️ ok\";\n"},
		{"empty", "", ""},
	}
	r := newTestReader(t)
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.Repeat("f", i+1)+".js")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))
			got, err := r.ReadContent(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadContent_InvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "latin1.js")
	require.NoError(t, os.WriteFile(path, []byte("caf\xe9\n"), 0644))

	_, err := newTestReader(t).ReadContent(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, encoding.ErrInvalidUTF8), "expected ErrInvalidUTF8, got %v", err)
}

func TestLoad_InvalidUTF8UsesPlaceholder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "binary.js")
	require.NoError(t, os.WriteFile(path, []byte{0xff, 0xfe, 'a', '\n'}, 0644))

	entry := newTestReader(t).Load(types.Candidate{Path: "binary.js", FullPath: path})
	assert.True(t, entry.ReadFailed)
	assert.Equal(t, "binary.js", entry.Path)
	assert.True(t, strings.HasPrefix(entry.Content, PlaceholderPrefix), "got %q", entry.Content)
	assert.Contains(t, entry.Content, "invalid UTF-8")
}

func TestLoad_MissingFileUsesPlaceholder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gone.jsx")

	entry := newTestReader(t).Load(types.Candidate{Path: "gone.jsx", FullPath: path})
	assert.True(t, entry.ReadFailed)
	assert.True(t, strings.HasPrefix(entry.Content, PlaceholderPrefix))
	assert.Contains(t, entry.Content, "gone.jsx")
}

func TestLoad_DirectoryUsesPlaceholder(t *testing.T) {
	dir := t.TempDir()

	entry := newTestReader(t).Load(types.Candidate{Path: "src/App.jsx", FullPath: dir})
	assert.True(t, entry.ReadFailed)
	assert.True(t, strings.HasPrefix(entry.Content, PlaceholderPrefix))
}

func TestLoad_PermissionDenied(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores file permissions")
	}
	path := filepath.Join(t.TempDir(), "secret.jsx")
	require.NoError(t, os.WriteFile(path, []byte("x\n"), 0000))

	entry := newTestReader(t).Load(types.Candidate{Path: "secret.jsx", FullPath: path})
	assert.True(t, entry.ReadFailed)
	assert.Contains(t, entry.Content, "permission denied")
}

func TestLoadAll_PreservesOrder(t *testing.T) {
	dir := t.TempDir()
	var candidates []types.Candidate
	for _, name := range []string{"b.js", "a.js", "missing.js", "c.js"} {
		full := filepath.Join(dir, name)
		if name != "missing.js" {
			require.NoError(t, os.WriteFile(full, []byte(name), 0644))
		}
		candidates = append(candidates, types.Candidate{Path: name, FullPath: full})
	}

	entries := newTestReader(t).LoadAll(candidates)
	require.Len(t, entries, 4)
	for i, e := range entries {
		assert.Equal(t, candidates[i].Path, e.Path)
	}
	assert.Equal(t, "b.js", entries[0].Content)
	assert.True(t, entries[2].ReadFailed)
	assert.False(t, entries[3].ReadFailed)
}

func TestLoad_LogsReadAndFailure(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logging.UseLogger(zap.New(core))
	t.Cleanup(func() { logging.UseLogger(nil) })

	dir := t.TempDir()
	ok := filepath.Join(dir, "ok.js")
	require.NoError(t, os.WriteFile(ok, []byte("ok\n"), 0644))

	r := newTestReader(t)
	r.Load(types.Candidate{Path: "ok.js", FullPath: ok})
	r.Load(types.Candidate{Path: "gone.js", FullPath: filepath.Join(dir, "gone.js")})

	entries := logs.FilterLoggerName(string(logging.CategoryRead)).All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "read ok.js (3 bytes)", entries[0].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Contains(t, entries[1].Message, "read failed for gone.js")
}
