package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/menuquiz/internal/app"
	"github.com/abhisek/menuquiz/internal/game"
	"github.com/abhisek/menuquiz/internal/logger"
	"github.com/abhisek/menuquiz/internal/menu"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

func init() {
	playCmd.Flags().Bool("no-splash", false, "Skip the welcome screen")
}

// runPlay loads the dataset, builds the controller and launches the TUI.
func runPlay(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log, err := logger.NewForTUI(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ds, err := menu.Load(cfg.Dataset)
	if err != nil {
		return err
	}
	log.Info("dataset loaded",
		zap.String("path", cfg.Dataset),
		zap.Int("categories", len(ds.Categories())),
		zap.Int("items", ds.Len()))

	ctrl, err := newController(cfg, ds, newRand(cfg, 0), game.NewLogRecorder(log), nil)
	if err != nil {
		return err
	}

	skip, _ := cmd.Flags().GetBool("no-splash")
	return app.Run(app.Options{
		Controller: ctrl,
		Logger:     log,
		SkipSplash: skip,
	})
}
