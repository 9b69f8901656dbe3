package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/menuquiz/internal/config"
)

func TestNewWritesToFile(t *testing.T) {
	cfg := config.Default()
	cfg.Env = "production"
	cfg.Log.File = filepath.Join(t.TempDir(), "menuquiz.log")

	log, err := New(cfg)
	require.NoError(t, err)
	log.Info("hello")
	_ = log.Sync()

	data, err := os.ReadFile(cfg.Log.File)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
}

func TestNewRejectsBadLevel(t *testing.T) {
	cfg := config.Default()
	cfg.Log.Level = "shouty"
	_, err := New(cfg)
	assert.Error(t, err)
}

func TestNewForTUIWithoutFileIsNop(t *testing.T) {
	log, err := NewForTUI(config.Default())
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(-1))
}
