package configs

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ModuleStatus reports what LoadModule found on disk.
type ModuleStatus int

const (
	// ModulePresent means rice.config.toml existed and parsed cleanly.
	ModulePresent ModuleStatus = iota

	// ModuleAbsent means the file does not exist.
	ModuleAbsent

	// ModuleMalformed means the file exists but is not valid TOML. Since
	// the module is tool-owned and regenerated in full on every save,
	// this degrades to an empty baseline with a warning, never an error.
	ModuleMalformed
)

const moduleHeader = "# Generated by rice-cli. Edit with `rice-cli setup`.\n# Auth tokens are kept in .env, never in this file.\n\n"

// LoadModule parses the generated configuration module at path.
func LoadModule(path string) (*Config, ModuleStatus, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ModuleAbsent, nil
	}
	if err != nil {
		return nil, ModuleAbsent, fmt.Errorf("reading %s: %w", path, err)
	}

	config := &Config{}
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, ModuleMalformed, nil
	}
	return config, ModulePresent, nil
}

// SaveModule regenerates the configuration module from cfg. The file is
// tool-owned, so prior content is fully replaced; the write is atomic so
// an interrupted save leaves the old file intact.
func SaveModule(path string, cfg *Config) error {
	var buf bytes.Buffer
	buf.WriteString(moduleHeader)
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("encoding config module: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", path, err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Chmod(0644); err != nil {
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
