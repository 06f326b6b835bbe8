package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, ">> ", cfg.Prompt)
	assert.Equal(t, "%g", cfg.Format)
	assert.True(t, cfg.Banner)
	assert.False(t, cfg.Echo)
	assert.NotEmpty(t, cfg.History)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("PCALC_FORMAT", "%.2f")
	t.Setenv("PCALC_PROMPT", "calc> ")

	cfg, err := loadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, "%.2f", cfg.Format)
	assert.Equal(t, "calc> ", cfg.Prompt)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pcalc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("prompt: \"? \"\nbanner: false\n"), 0o644))

	cfg, err := loadConfig(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "? ", cfg.Prompt)
	assert.False(t, cfg.Banner)
	// Untouched keys keep their defaults.
	assert.Equal(t, "%g", cfg.Format)
}

func TestLoadConfigFlagOverride(t *testing.T) {
	t.Setenv("PCALC_FORMAT", "%.2f")

	cmd := NewRootCmd()
	require.NoError(t, cmd.Flags().Set("format", "%e"))
	require.NoError(t, cmd.Flags().Set("echo", "true"))

	cfg, err := loadConfig("", cmd.Flags())
	require.NoError(t, err)

	// Changed flags win over the environment; unchanged ones don't.
	assert.Equal(t, "%e", cfg.Format)
	assert.True(t, cfg.Echo)
	assert.Equal(t, ">> ", cfg.Prompt)
}

func TestFindConfigFileExplicit(t *testing.T) {
	assert.Equal(t, "whatever.yaml", findConfigFile("whatever.yaml"))
}
