package configs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ricelabs/rice-cli/internal/envfile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullConfig() Config {
	return Config{
		Storage: StorageConfig{
			Enabled: true,
			URL:     "localhost:50051",
			User:    "admin",
			Token:   "storage-secret",
		},
		State: StateConfig{
			Enabled: true,
			URL:     "https://state.example.com",
			RunID:   "run-42",
			Token:   "state-secret",
		},
	}
}

func TestLoadStateEmptyDirectory(t *testing.T) {
	state, err := LoadState(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, envfile.StatusAbsent, state.EnvStatus)
	assert.Equal(t, ModuleAbsent, state.ModuleStatus)
	assert.False(t, state.Config.Storage.Enabled)
	assert.False(t, state.Config.State.Enabled)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"both services enabled", fullConfig()},
		{
			"storage only, no token",
			Config{Storage: StorageConfig{Enabled: true, URL: "http://10.0.0.1:3000"}},
		},
		{
			"state only",
			Config{State: StateConfig{Enabled: true, URL: "state.internal:50051", Token: "tok-12345"}},
		},
		{"both disabled", Config{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			cfg := tt.cfg
			require.NoError(t, Save(dir, &cfg, nil))

			state, err := LoadState(dir)
			require.NoError(t, err)
			assert.Equal(t, tt.cfg, state.Config)
		})
	}
}

func TestSaveIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	cfg := fullConfig()
	require.NoError(t, Save(dir, &cfg, nil))

	firstEnv, err := os.ReadFile(filepath.Join(dir, EnvFileName))
	require.NoError(t, err)
	firstModule, err := os.ReadFile(filepath.Join(dir, ModuleFileName))
	require.NoError(t, err)

	state, err := LoadState(dir)
	require.NoError(t, err)
	require.NoError(t, Save(dir, &state.Config, state.Env))

	secondEnv, err := os.ReadFile(filepath.Join(dir, EnvFileName))
	require.NoError(t, err)
	secondModule, err := os.ReadFile(filepath.Join(dir, ModuleFileName))
	require.NoError(t, err)

	assert.Equal(t, string(firstEnv), string(secondEnv))
	assert.Equal(t, string(firstModule), string(secondModule))
}

func TestSavePreservesUnrelatedKeys(t *testing.T) {
	dir := t.TempDir()
	existing := "# app settings\nFOO=bar\nRICE_STORAGE_URL=old:50051\nDATABASE_URL=postgres://db\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, EnvFileName), []byte(existing), 0600))

	state, err := LoadState(dir)
	require.NoError(t, err)

	cfg := Config{Storage: StorageConfig{Enabled: true, URL: "new:50051"}}
	require.NoError(t, Save(dir, &cfg, state.Env))

	data, err := os.ReadFile(filepath.Join(dir, EnvFileName))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")

	require.Len(t, lines, 4)
	assert.Equal(t, "# app settings", lines[0])
	assert.Equal(t, "FOO=bar", lines[1], "unrelated key must keep its relative position")
	assert.Equal(t, "RICE_STORAGE_URL=new:50051", lines[2], "recognized key updated in place")
	assert.Equal(t, "DATABASE_URL=postgres://db", lines[3])
}

func TestSaveRemovesKeysForDisabledService(t *testing.T) {
	dir := t.TempDir()
	cfg := fullConfig()
	require.NoError(t, Save(dir, &cfg, nil))

	state, err := LoadState(dir)
	require.NoError(t, err)

	// Disable storage; its stored fields are discarded.
	state.Config.Storage = StorageConfig{}
	require.NoError(t, Save(dir, &state.Config, state.Env))

	data, err := os.ReadFile(filepath.Join(dir, EnvFileName))
	require.NoError(t, err)
	content := string(data)

	assert.NotContains(t, content, "RICE_STORAGE_")
	assert.Contains(t, content, "RICE_STATE_URL=https://state.example.com")

	reloaded, err := LoadState(dir)
	require.NoError(t, err)
	assert.Equal(t, StorageConfig{}, reloaded.Config.Storage)
	assert.True(t, reloaded.Config.State.Enabled)
}

func TestEnvFileTakesPrecedenceOverModule(t *testing.T) {
	dir := t.TempDir()

	module := &Config{Storage: StorageConfig{Enabled: true, URL: "from-module:50051"}}
	require.NoError(t, SaveModule(filepath.Join(dir, ModuleFileName), module))

	env := "RICE_STORAGE_URL=from-env:50051\nRICE_STORAGE_TOKEN=envtoken\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, EnvFileName), []byte(env), 0600))

	state, err := LoadState(dir)
	require.NoError(t, err)

	assert.True(t, state.Config.Storage.Enabled)
	assert.Equal(t, "from-env:50051", state.Config.Storage.URL)
	assert.Equal(t, "envtoken", state.Config.Storage.Token)
}

func TestModuleAloneEnablesService(t *testing.T) {
	dir := t.TempDir()
	module := &Config{State: StateConfig{Enabled: true, URL: "state:50051", RunID: "r1"}}
	require.NoError(t, SaveModule(filepath.Join(dir, ModuleFileName), module))

	state, err := LoadState(dir)
	require.NoError(t, err)

	assert.True(t, state.Config.State.Enabled)
	assert.Equal(t, "state:50051", state.Config.State.URL)
	assert.Equal(t, "r1", state.Config.State.RunID)
	assert.Empty(t, state.Config.State.Token, "module never carries tokens")
}

func TestEnabledWithoutURLIsForcedOff(t *testing.T) {
	dir := t.TempDir()
	// Hand-edited module claiming enabled without a URL.
	module := "[storage]\nenabled = true\n\n[state]\nenabled = false\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ModuleFileName), []byte(module), 0644))

	state, err := LoadState(dir)
	require.NoError(t, err)
	assert.False(t, state.Config.Storage.Enabled)
}

func TestMalformedModuleDegradesToEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ModuleFileName), []byte("{not toml"), 0644))

	state, err := LoadState(dir)
	require.NoError(t, err, "a corrupted module must not block setup")
	assert.Equal(t, ModuleMalformed, state.ModuleStatus)
	assert.False(t, state.Config.Storage.Enabled)
	assert.False(t, state.Config.State.Enabled)
}

func TestModuleContainsNoSecrets(t *testing.T) {
	dir := t.TempDir()
	cfg := fullConfig()
	require.NoError(t, Save(dir, &cfg, nil))

	data, err := os.ReadFile(filepath.Join(dir, ModuleFileName))
	require.NoError(t, err)

	assert.NotContains(t, string(data), "storage-secret")
	assert.NotContains(t, string(data), "state-secret")
}
