// Package config loads application settings from menuquiz.yaml, a .env file
// and MENUQUIZ_* environment variables.
package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/abhisek/menuquiz/internal/quiz"
)

// EnvPrefix namespaces environment overrides, e.g. MENUQUIZ_GAME_DIFFICULTY.
const EnvPrefix = "MENUQUIZ"

// Config holds application configuration.
type Config struct {
	Env     string `mapstructure:"env"`     // local, production
	Dataset string `mapstructure:"dataset"` // path to a .json/.yaml menu; empty uses the embedded one
	Seed    uint64 `mapstructure:"seed"`    // 0 picks a random seed

	Game   Game   `mapstructure:"game"`
	Log    Log    `mapstructure:"log"`
	Server Server `mapstructure:"server"`
	LLM    LLM    `mapstructure:"llm"`
}

// Game holds the quiz rules.
type Game struct {
	Difficulty     string                       `mapstructure:"difficulty"`
	MaxRounds      int                          `mapstructure:"max_rounds"`
	AutoReveal     []string                     `mapstructure:"auto_reveal"`
	HintPenalty    float64                      `mapstructure:"hint_penalty"`
	RevealsPerHint int                          `mapstructure:"reveals_per_hint"`
	Difficulties   map[string]DifficultyProfile `mapstructure:"difficulties"`
}

// DifficultyProfile overrides or adds a named difficulty. Unset fields keep
// the built-in profile's value, or zero for a new profile.
type DifficultyProfile struct {
	HintsAllowed *int     `mapstructure:"hints_allowed"`
	PrefillCount *int     `mapstructure:"prefill_count"`
	ScoreValue   *float64 `mapstructure:"score_value"`
}

// Log configures the zap logger.
type Log struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// Server configures the HTTP API.
type Server struct {
	Addr          string        `mapstructure:"addr"`
	SessionTTL    time.Duration `mapstructure:"session_ttl"`
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
	CORSOrigins   []string      `mapstructure:"cors_origins"`
	MaxSessions   int           `mapstructure:"max_sessions"`
}

// LLM configures the menu drafting provider. API keys are read from the
// provider-specific environment variables.
type LLM struct {
	Provider    string        `mapstructure:"provider"`
	Model       string        `mapstructure:"model"`
	MaxTokens   int           `mapstructure:"max_tokens"`
	Temperature float64       `mapstructure:"temperature"`
	Timeout     time.Duration `mapstructure:"timeout"`
	MaxRetries  int           `mapstructure:"max_retries"`
}

// Load reads configuration. An explicit path must exist; otherwise
// menuquiz.yaml is optional.
func Load(path string) (*Config, error) {
	// A missing .env is normal outside development.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("menuquiz")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		for _, dir := range configDirs() {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	// Defaults always decode.
	_ = v.Unmarshal(&cfg)
	return &cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "local")
	v.SetDefault("dataset", "")
	v.SetDefault("seed", 0)

	v.SetDefault("game.difficulty", quiz.DefaultDifficulty)
	v.SetDefault("game.max_rounds", 0)
	v.SetDefault("game.auto_reveal", quiz.DefaultAutoReveal().Names())
	v.SetDefault("game.hint_penalty", 5.0)
	v.SetDefault("game.reveals_per_hint", 2)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.session_ttl", "30m")
	v.SetDefault("server.sweep_interval", "1m")
	v.SetDefault("server.cors_origins", []string{"*"})
	v.SetDefault("server.max_sessions", 1000)

	v.SetDefault("llm.provider", "")
	v.SetDefault("llm.model", "")
	v.SetDefault("llm.max_tokens", 1024)
	v.SetDefault("llm.temperature", 0.3)
	v.SetDefault("llm.timeout", "30s")
	v.SetDefault("llm.max_retries", 3)
}

func configDirs() []string {
	var dirs []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		dirs = append(dirs, filepath.Join(xdg, "menuquiz"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config", "menuquiz"))
	}
	return dirs
}

// Difficulties merges configured profiles over the built-in ones.
func (c *Config) Difficulties() quiz.Difficulties {
	ds := quiz.DefaultDifficulties()
	for _, name := range sortedKeys(c.Game.Difficulties) {
		p := c.Game.Difficulties[name]
		d, ok := ds.Get(name)
		if !ok {
			d = quiz.Difficulty{Name: name}
		}
		if p.HintsAllowed != nil {
			d.HintsAllowed = *p.HintsAllowed
		}
		if p.PrefillCount != nil {
			d.PrefillCount = *p.PrefillCount
		}
		if p.ScoreValue != nil {
			d.ScoreValue = *p.ScoreValue
		}
		ds = ds.With(d)
	}
	return ds
}

// EngineConfig returns the quiz rules.
func (c *Config) EngineConfig() quiz.Config {
	return quiz.Config{
		AutoReveal:     quiz.NewAutoRevealSet(c.Game.AutoReveal...),
		HintPenalty:    c.Game.HintPenalty,
		RevealsPerHint: c.Game.RevealsPerHint,
	}
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	ds := c.Difficulties()
	for _, d := range ds {
		if err := d.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
	}
	if _, ok := ds.Get(c.Game.Difficulty); !ok {
		return fmt.Errorf("invalid config: unknown game.difficulty %q (have %s)",
			c.Game.Difficulty, strings.Join(ds.Names(), ", "))
	}
	if c.Game.MaxRounds < 0 {
		return fmt.Errorf("invalid config: game.max_rounds must be >= 0, got %d", c.Game.MaxRounds)
	}
	if c.Game.HintPenalty < 0 {
		return fmt.Errorf("invalid config: game.hint_penalty must be >= 0, got %g", c.Game.HintPenalty)
	}
	if c.Game.RevealsPerHint < 1 {
		return fmt.Errorf("invalid config: game.reveals_per_hint must be >= 1, got %d", c.Game.RevealsPerHint)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid config: log.level: %w", err)
	}
	if c.Server.SessionTTL <= 0 {
		return fmt.Errorf("invalid config: server.session_ttl must be positive")
	}
	if c.Server.SweepInterval <= 0 {
		return fmt.Errorf("invalid config: server.sweep_interval must be positive")
	}
	if c.Server.MaxSessions < 1 {
		return fmt.Errorf("invalid config: server.max_sessions must be >= 1, got %d", c.Server.MaxSessions)
	}
	return nil
}

// IsProduction reports whether env is "production".
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}
