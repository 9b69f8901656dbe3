package cmd

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/abhisek/menuquiz/internal/config"
	"github.com/abhisek/menuquiz/internal/game"
	"github.com/abhisek/menuquiz/internal/menu"
	"github.com/abhisek/menuquiz/internal/quiz"
)

var rootCmd = &cobra.Command{
	Use:   "menuquiz",
	Short: "Guess the ingredients of deli menu items",
	Long:  "MenuQuiz: a terminal trivia game where you name what goes into each item on the menu.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default: menuquiz.yaml in . or ~/.config/menuquiz)")
	rootCmd.PersistentFlags().String("dataset", "", "Path to a .json/.yaml menu dataset (overrides MENUQUIZ_DATASET)")
	rootCmd.PersistentFlags().Uint64("seed", 0, "Shuffle seed, 0 for random (overrides MENUQUIZ_SEED)")
	rootCmd.PersistentFlags().String("difficulty", "", "Initial difficulty (overrides MENUQUIZ_GAME_DIFFICULTY)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(draftCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the config file and environment, then applies the
// persistent flags, which take priority.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("dataset") {
		cfg.Dataset, _ = cmd.Flags().GetString("dataset")
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed, _ = cmd.Flags().GetUint64("seed")
	}
	if cmd.Flags().Changed("difficulty") {
		cfg.Game.Difficulty, _ = cmd.Flags().GetString("difficulty")
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// newRand returns a source seeded from cfg.Seed, or a random one when the
// seed is zero. stream separates sources that share a seed.
func newRand(cfg *config.Config, stream uint64) *rand.Rand {
	if cfg.Seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(cfg.Seed, stream))
}

// newController builds a game controller from the config. A nil newID
// gives each restart a fresh random ID.
func newController(cfg *config.Config, ds *menu.Dataset, rng *rand.Rand, rec game.Recorder, newID func() string) (*game.Controller, error) {
	ctrl, err := game.New(game.Options{
		Dataset:      ds,
		Engine:       quiz.NewEngine(cfg.EngineConfig(), rng),
		Difficulties: cfg.Difficulties(),
		Difficulty:   cfg.Game.Difficulty,
		MaxRounds:    cfg.Game.MaxRounds,
		Rand:         rng,
		Recorder:     rec,
		NewID:        newID,
	})
	if err != nil {
		return nil, fmt.Errorf("create game: %w", err)
	}
	return ctrl, nil
}
