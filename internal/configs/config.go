package configs

import (
	"fmt"
	"path/filepath"

	"github.com/ricelabs/rice-cli/internal/envfile"
)

// File names written into the project's working directory.
const (
	EnvFileName    = ".env"
	ModuleFileName = "rice.config.toml"
)

// Recognized environment keys. Everything else in the env file belongs to
// other tools and is never touched.
const (
	EnvStorageURL   = "RICE_STORAGE_URL"
	EnvStorageUser  = "RICE_STORAGE_USER"
	EnvStorageToken = "RICE_STORAGE_TOKEN"
	EnvStateURL     = "RICE_STATE_URL"
	EnvStateToken   = "RICE_STATE_TOKEN"
	EnvStateRunID   = "RICE_STATE_RUN_ID"
)

// StorageConfig holds the connection settings for the Rice Storage service.
// Token is excluded from TOML serialization: secrets live only in the env
// file, never in the generated module.
type StorageConfig struct {
	Enabled bool   `toml:"enabled"`
	URL     string `toml:"url,omitempty"`
	User    string `toml:"user,omitempty"`
	Token   string `toml:"-"`
}

// StateConfig holds the connection settings for the Rice State service
// (AI agent memory). RunID namespaces the agent's memory between runs.
type StateConfig struct {
	Enabled bool   `toml:"enabled"`
	URL     string `toml:"url,omitempty"`
	RunID   string `toml:"run_id,omitempty"`
	Token   string `toml:"-"`
}

// Config is the single unit of truth passed between the wizard, the
// writers, and the health checks. It is constructed fresh per invocation.
type Config struct {
	Storage StorageConfig `toml:"storage"`
	State   StateConfig   `toml:"state"`
}

// AnyEnabled reports whether at least one service is enabled.
func (c *Config) AnyEnabled() bool {
	return c.Storage.Enabled || c.State.Enabled
}

// State is the result of reading the working directory: the reconstructed
// Config plus the parsed env file (kept so a later save can merge into it)
// and the load status of both sources.
type State struct {
	Config       Config
	Env          *envfile.File
	EnvStatus    envfile.Status
	ModuleStatus ModuleStatus
}

// LoadState reconstructs configuration from any existing env file and
// config module under dir. Missing files are an empty baseline, not an
// error; malformed files degrade to empty with a status the caller can
// warn about. Only real I/O failures (permission denied and the like)
// return an error.
func LoadState(dir string) (*State, error) {
	env, envStatus, err := envfile.Load(filepath.Join(dir, EnvFileName))
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", EnvFileName, err)
	}

	module, moduleStatus, err := LoadModule(filepath.Join(dir, ModuleFileName))
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", ModuleFileName, err)
	}

	return &State{
		Config:       reconcile(module, env),
		Env:          env,
		EnvStatus:    envStatus,
		ModuleStatus: moduleStatus,
	}, nil
}

// reconcile merges the config module and the env file into a Config. The
// env file's key/value pairs take precedence as the more authoritative
// runtime source; enable flags follow the presence of a non-empty URL key
// when the env file has one.
func reconcile(module *Config, env *envfile.File) Config {
	cfg := Config{}
	if module != nil {
		cfg = *module
	}

	if url, ok := env.Get(EnvStorageURL); ok {
		cfg.Storage.URL = url
		cfg.Storage.Enabled = url != ""
	}
	if user, ok := env.Get(EnvStorageUser); ok {
		cfg.Storage.User = user
	}
	if token, ok := env.Get(EnvStorageToken); ok {
		cfg.Storage.Token = token
	}

	if url, ok := env.Get(EnvStateURL); ok {
		cfg.State.URL = url
		cfg.State.Enabled = url != ""
	}
	if runID, ok := env.Get(EnvStateRunID); ok {
		cfg.State.RunID = runID
	}
	if token, ok := env.Get(EnvStateToken); ok {
		cfg.State.Token = token
	}

	// A service cannot be enabled without a URL, wherever the flag came from.
	if cfg.Storage.URL == "" {
		cfg.Storage.Enabled = false
	}
	if cfg.State.URL == "" {
		cfg.State.Enabled = false
	}

	// Disabled services carry no stale connection details.
	if !cfg.Storage.Enabled {
		cfg.Storage = StorageConfig{}
	}
	if !cfg.State.Enabled {
		cfg.State = StateConfig{}
	}

	return cfg
}

// Save flushes cfg to both persisted forms under dir: the recognized keys
// are merged into the env file (unrelated lines untouched), and the config
// module is regenerated in full. Both writes are atomic; the first failure
// aborts and is returned with the affected file named.
func Save(dir string, cfg *Config, env *envfile.File) error {
	if env == nil {
		env = envfile.New()
	}
	applyToEnv(cfg, env)

	envPath := filepath.Join(dir, EnvFileName)
	if err := env.WriteFile(envPath); err != nil {
		return fmt.Errorf("writing %s: %w", EnvFileName, err)
	}

	modulePath := filepath.Join(dir, ModuleFileName)
	if err := SaveModule(modulePath, cfg); err != nil {
		return fmt.Errorf("writing %s: %w", ModuleFileName, err)
	}
	return nil
}

// applyToEnv upserts each recognized key whose field is set and removes
// those whose field is empty or whose service is disabled.
func applyToEnv(cfg *Config, env *envfile.File) {
	setOrUnset := func(key, value string, enabled bool) {
		if enabled && value != "" {
			env.Set(key, value)
		} else {
			env.Unset(key)
		}
	}

	setOrUnset(EnvStorageURL, cfg.Storage.URL, cfg.Storage.Enabled)
	setOrUnset(EnvStorageUser, cfg.Storage.User, cfg.Storage.Enabled)
	setOrUnset(EnvStorageToken, cfg.Storage.Token, cfg.Storage.Enabled)
	setOrUnset(EnvStateURL, cfg.State.URL, cfg.State.Enabled)
	setOrUnset(EnvStateRunID, cfg.State.RunID, cfg.State.Enabled)
	setOrUnset(EnvStateToken, cfg.State.Token, cfg.State.Enabled)
}
