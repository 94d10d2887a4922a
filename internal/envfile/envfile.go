package envfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Status reports what Load found on disk, keeping the "missing vs.
// corrupted" distinction visible to callers.
type Status int

const (
	// StatusPresent means the file existed and parsed cleanly.
	StatusPresent Status = iota

	// StatusAbsent means the file does not exist. An empty File is
	// returned so callers can treat it as an empty baseline.
	StatusAbsent

	// StatusMalformed means the file exists but contains lines godotenv
	// cannot make sense of. The returned File still carries every line
	// verbatim, so a later write never drops unrecognized content.
	StatusMalformed
)

// line is one physical line of the file. key is empty for comments, blank
// lines, and anything that didn't parse as an assignment; such lines are
// reproduced byte-for-byte on write.
type line struct {
	raw   string
	key   string
	value string
}

// File is an ordered view of a KEY=value environment file. Unlike a plain
// map it remembers line order, comments, and unrecognized lines, so merging
// our keys into an existing file disturbs nothing else.
type File struct {
	lines []line
}

// New returns an empty File.
func New() *File {
	return &File{}
}

// Parse builds a File from raw env-file content. Each line is decoded
// independently with godotenv semantics (quoting, export prefix); lines
// that don't decode are kept as opaque text.
func Parse(data []byte) *File {
	f := &File{}
	content := strings.TrimSuffix(string(data), "\n")
	if content == "" {
		return f
	}
	for _, raw := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			f.lines = append(f.lines, line{raw: raw})
			continue
		}
		kv, err := godotenv.Unmarshal(raw)
		if err != nil || len(kv) != 1 {
			f.lines = append(f.lines, line{raw: raw})
			continue
		}
		for k, v := range kv {
			f.lines = append(f.lines, line{raw: raw, key: k, value: v})
		}
	}
	return f
}

// Load reads and parses the environment file at path.
func Load(path string) (*File, Status, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return New(), StatusAbsent, nil
	}
	if err != nil {
		return nil, StatusAbsent, fmt.Errorf("reading %s: %w", path, err)
	}

	f := Parse(data)

	// The per-line parse above is deliberately tolerant. Run the whole
	// content through godotenv once so callers can warn about files that
	// are not clean env syntax, without losing any of their lines.
	if _, err := godotenv.Unmarshal(string(data)); err != nil {
		return f, StatusMalformed, nil
	}
	return f, StatusPresent, nil
}

// Get returns the value for key. With duplicate keys the last wins.
func (f *File) Get(key string) (string, bool) {
	value, found := "", false
	for _, l := range f.lines {
		if l.key == key {
			value, found = l.value, true
		}
	}
	return value, found
}

// Set upserts key to value: the last existing assignment is rewritten in
// place, otherwise a new line is appended.
func (f *File) Set(key, value string) {
	for i := len(f.lines) - 1; i >= 0; i-- {
		if f.lines[i].key == key {
			f.lines[i] = line{raw: formatLine(key, value), key: key, value: value}
			return
		}
	}
	f.lines = append(f.lines, line{raw: formatLine(key, value), key: key, value: value})
}

// Unset removes every assignment of key. Lines for other keys keep their
// positions.
func (f *File) Unset(key string) {
	kept := f.lines[:0]
	for _, l := range f.lines {
		if l.key != key {
			kept = append(kept, l)
		}
	}
	f.lines = kept
}

// Len returns the number of physical lines.
func (f *File) Len() int {
	return len(f.lines)
}

// Bytes serializes the file. Unrecognized lines come out exactly as they
// went in.
func (f *File) Bytes() []byte {
	if len(f.lines) == 0 {
		return nil
	}
	var b strings.Builder
	for _, l := range f.lines {
		b.WriteString(l.raw)
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// WriteFile writes the file atomically: content goes to a temp file in the
// same directory which then replaces path, so an interrupted write leaves
// the previous content intact. Mode is 0600 since the file may hold tokens.
func (f *File) WriteFile(path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", path, err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(f.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		return fmt.Errorf("setting permissions on %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}

// formatLine renders an assignment, quoting the value when it would not
// survive a round trip as bare text.
func formatLine(key, value string) string {
	if strings.ContainsAny(value, " \t\n#'\"\\") {
		return key + "=" + strconv.Quote(value)
	}
	return key + "=" + value
}
