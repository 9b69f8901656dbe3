package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	return dir
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "medium", cfg.Game.Difficulty)
	assert.Equal(t, 5.0, cfg.Game.HintPenalty)
	assert.Equal(t, 2, cfg.Game.RevealsPerHint)
	assert.Len(t, cfg.Game.AutoReveal, 8)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 30*time.Minute, cfg.Server.SessionTTL)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.IsProduction())

	assert.Equal(t, []string{"easy", "medium", "hard"}, cfg.Difficulties().Names())
	assert.True(t, cfg.EngineConfig().AutoReveal.Contains("Beef Patty"))
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := chdirTemp(t)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
dataset: menu.yaml
game:
  difficulty: expert
  max_rounds: 5
  difficulties:
    expert:
      hints_allowed: 0
      prefill_count: 0
      score_value: 50
    easy:
      hints_allowed: 4
      prefill_count: 2
      score_value: 10
log:
  level: debug
`), 0o644))
	t.Setenv("MENUQUIZ_SERVER_ADDR", ":9090")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "menu.yaml", cfg.Dataset)
	assert.Equal(t, 5, cfg.Game.MaxRounds)
	assert.Equal(t, ":9090", cfg.Server.Addr)

	ds := cfg.Difficulties()
	assert.Equal(t, []string{"easy", "medium", "hard", "expert"}, ds.Names())
	easy, _ := ds.Get("easy")
	assert.Equal(t, 4, easy.HintsAllowed)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	dir := chdirTemp(t)
	_, err := Load(filepath.Join(dir, "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown difficulty", func(c *Config) { c.Game.Difficulty = "legendary" }},
		{"negative rounds", func(c *Config) { c.Game.MaxRounds = -1 }},
		{"negative penalty", func(c *Config) { c.Game.HintPenalty = -1 }},
		{"zero reveals", func(c *Config) { c.Game.RevealsPerHint = 0 }},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }},
		{"zero ttl", func(c *Config) { c.Server.SessionTTL = 0 }},
		{"zero sweep interval", func(c *Config) { c.Server.SweepInterval = 0 }},
		{"negative sweep interval", func(c *Config) { c.Server.SweepInterval = -time.Second }},
		{"new profile without score", func(c *Config) {
			hints := 1
			c.Game.Difficulties = map[string]DifficultyProfile{"expert": {HintsAllowed: &hints}}
		}},
		{"bad profile", func(c *Config) {
			zero := 0.0
			c.Game.Difficulties = map[string]DifficultyProfile{"easy": {ScoreValue: &zero}}
		}},
	}

	require.NoError(t, Default().Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadRejectsZeroSweepInterval(t *testing.T) {
	chdirTemp(t)
	t.Setenv("MENUQUIZ_SERVER_SWEEP_INTERVAL", "0s")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.sweep_interval")
}

func TestPartialProfileKeepsBuiltins(t *testing.T) {
	dir := chdirTemp(t)
	path := filepath.Join(dir, "menuquiz.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
game:
  difficulties:
    hard:
      score_value: 50
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	hard, ok := cfg.Difficulties().Get("hard")
	require.True(t, ok)
	assert.Equal(t, 50.0, hard.ScoreValue)
	assert.Equal(t, 1, hard.HintsAllowed)
	assert.Equal(t, 0, hard.PrefillCount)

	medium, _ := cfg.Difficulties().Get("medium")
	assert.Equal(t, 2, medium.HintsAllowed)
}
