package envfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePreservesUnrecognizedContent(t *testing.T) {
	input := "# database settings\nFOO=bar\n\nexport BAZ=qux\nnot a valid line\n"
	f := Parse([]byte(input))

	assert.Equal(t, input, string(f.Bytes()), "unrelated lines must round-trip byte-for-byte")

	value, ok := f.Get("FOO")
	require.True(t, ok)
	assert.Equal(t, "bar", value)

	value, ok = f.Get("BAZ")
	require.True(t, ok)
	assert.Equal(t, "qux", value)
}

func TestParseQuotedValues(t *testing.T) {
	f := Parse([]byte(`TOKEN="se cret#1"` + "\n"))

	value, ok := f.Get("TOKEN")
	require.True(t, ok)
	assert.Equal(t, "se cret#1", value)
}

func TestGetLastWinsOnDuplicates(t *testing.T) {
	f := Parse([]byte("KEY=first\nKEY=second\n"))

	value, ok := f.Get("KEY")
	require.True(t, ok)
	assert.Equal(t, "second", value)
}

func TestSetUpdatesInPlace(t *testing.T) {
	f := Parse([]byte("FOO=bar\nRICE_STORAGE_URL=old\nBAZ=qux\n"))
	f.Set("RICE_STORAGE_URL", "new")

	lines := strings.Split(strings.TrimSuffix(string(f.Bytes()), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "FOO=bar", lines[0])
	assert.Equal(t, "RICE_STORAGE_URL=new", lines[1], "recognized key must keep its position")
	assert.Equal(t, "BAZ=qux", lines[2])
}

func TestSetAppendsNewKey(t *testing.T) {
	f := Parse([]byte("FOO=bar\n"))
	f.Set("RICE_STATE_URL", "https://state.example.com")

	assert.Equal(t, "FOO=bar\nRICE_STATE_URL=https://state.example.com\n", string(f.Bytes()))
}

func TestSetQuotesValuesThatNeedIt(t *testing.T) {
	f := New()
	f.Set("RICE_STORAGE_TOKEN", "se cret#1")

	// The written form must read back to the same value.
	reparsed := Parse(f.Bytes())
	value, ok := reparsed.Get("RICE_STORAGE_TOKEN")
	require.True(t, ok)
	assert.Equal(t, "se cret#1", value)
}

func TestUnsetRemovesAllOccurrences(t *testing.T) {
	f := Parse([]byte("KEY=a\nFOO=bar\nKEY=b\n"))
	f.Unset("KEY")

	assert.Equal(t, "FOO=bar\n", string(f.Bytes()))
	_, ok := f.Get("KEY")
	assert.False(t, ok)
}

func TestLoadAbsentFile(t *testing.T) {
	f, status, err := Load(filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)
	assert.Equal(t, StatusAbsent, status)
	assert.Equal(t, 0, f.Len())
}

func TestLoadPresentFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("FOO=bar\n"), 0600))

	f, status, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, StatusPresent, status)

	value, ok := f.Get("FOO")
	require.True(t, ok)
	assert.Equal(t, "bar", value)
}

func TestWriteFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")

	f := New()
	f.Set("RICE_STORAGE_URL", "localhost:50051")
	f.Set("RICE_STORAGE_TOKEN", "secret")
	require.NoError(t, f.WriteFile(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, status, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, StatusPresent, status)
	assert.Equal(t, string(f.Bytes()), string(loaded.Bytes()))
}

func TestWriteFileReplacesAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("OLD=1\n"), 0600))

	f := Parse([]byte("NEW=2\n"))
	require.NoError(t, f.WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "NEW=2\n", string(data))

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}
