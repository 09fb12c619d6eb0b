package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateXDG(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("ENV", "")
	return filepath.Join(dir, appName)
}

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, 120, mgr.viper.GetInt("input.throttle_ms"))
	assert.Equal(t, "generic", mgr.viper.GetString("input.platform"))
	assert.True(t, mgr.viper.GetBool("history.back_guard"))
	assert.Equal(t, "info", mgr.viper.GetString("logging.level"))
}

func TestLoad_CreatesDefaultConfigAndSchema(t *testing.T) {
	configDir := isolateXDG(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	assert.FileExists(t, filepath.Join(configDir, configFileName))
	assert.FileExists(t, filepath.Join(configDir, schemaFileName))
	assert.Equal(t, DefaultConfig(), mgr.Get())
}

func TestLoad_ReadsFileValues(t *testing.T) {
	configDir := isolateXDG(t)
	require.NoError(t, os.MkdirAll(configDir, dirPerm))
	content := `
[input]
throttle_ms = 250
platform = "Tizen"

[input.key_map]
"461" = "back"
info = "menu"

[history]
back_guard = false
`
	require.NoError(t, os.WriteFile(filepath.Join(configDir, configFileName), []byte(content), filePerm))

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, 250, cfg.Input.ThrottleMs)
	assert.Equal(t, "tizen", cfg.Input.Platform)
	assert.Equal(t, map[string]string{"461": "back", "info": "menu"}, cfg.Input.KeyMap)
	assert.False(t, cfg.History.BackGuard)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	isolateXDG(t)
	t.Setenv("REMOTENAV_INPUT_THROTTLE_MS", "40")
	t.Setenv("REMOTENAV_LOG_LEVEL", "debug")

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	assert.Equal(t, 40, mgr.Get().Input.ThrottleMs)
	assert.Equal(t, "debug", mgr.Get().Logging.Level)
}

func TestLoad_InvalidValuesAreReported(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "remote.toml")
	content := `
[input]
throttle_ms = -1
platform = "amiga"
`
	require.NoError(t, os.WriteFile(path, []byte(content), filePerm))

	mgr, err := NewManagerForFile(path)
	require.NoError(t, err)
	err = mgr.Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "input.throttle_ms")
	assert.Contains(t, err.Error(), "input.platform")
}

func TestNewManagerForFile_MissingFileIsAnError(t *testing.T) {
	mgr, err := NewManagerForFile(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)

	assert.Error(t, mgr.Load())

	_, err = NewManagerForFile("")
	assert.Error(t, err)
}

func TestNewManagerForFile_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "remote.yaml")
	content := "input:\n  platform: xbox\n  handle_all_inputs: true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), filePerm))

	mgr, err := NewManagerForFile(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "xbox", cfg.Input.Platform)
	assert.True(t, cfg.Input.HandleAllInputs)
	assert.Equal(t, 120, cfg.Input.ThrottleMs)
}

func TestGet_ReturnsIndependentCopy(t *testing.T) {
	isolateXDG(t)
	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Input.ThrottleMs = 999
	cfg.Input.KeyMap["13"] = "back"

	assert.Equal(t, 120, mgr.Get().Input.ThrottleMs)
	assert.Empty(t, mgr.Get().Input.KeyMap)
}

func TestSave_WritesAndNotifies(t *testing.T) {
	configDir := isolateXDG(t)
	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	var notified *Config
	mgr.OnConfigChange(func(c *Config) { notified = c })

	cfg := mgr.Get()
	cfg.Input.ThrottleMs = 80
	cfg.Input.Platform = "webos"
	require.NoError(t, mgr.Save(cfg))

	require.NotNil(t, notified)
	assert.Equal(t, 80, notified.Input.ThrottleMs)
	assert.Equal(t, "webos", mgr.Get().Input.Platform)

	reloaded, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, reloaded.Load())
	assert.Equal(t, 80, reloaded.Get().Input.ThrottleMs)
	assert.Equal(t, filepath.Join(configDir, configFileName), reloaded.GetConfigFile())
}

func TestSave_RejectsInvalidConfig(t *testing.T) {
	isolateXDG(t)
	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Logging.Format = "xml"

	err = mgr.Save(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.format")
	assert.Equal(t, "console", mgr.Get().Logging.Format)

	assert.Error(t, mgr.Save(nil))
}
