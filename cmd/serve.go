package cmd

import (
	"context"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/menuquiz/internal/game"
	"github.com/abhisek/menuquiz/internal/logger"
	"github.com/abhisek/menuquiz/internal/menu"
	"github.com/abhisek/menuquiz/internal/metrics"
	"github.com/abhisek/menuquiz/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the game over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Server.Addr = addr
		}

		log, err := logger.New(cfg)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		ds, err := menu.Load(cfg.Dataset)
		if err != nil {
			log.Error("failed to load dataset", zap.Error(err))
			return err
		}

		collector := metrics.New()
		rec := game.Recorders{game.NewLogRecorder(log), collector}

		var stream atomic.Uint64
		// Session IDs are routing keys, so restarts keep them.
		sessions := server.NewManager(func(id string) (*game.Controller, error) {
			return newController(cfg, ds, newRand(cfg, stream.Add(1)), rec, func() string { return id })
		}, cfg.Server.SessionTTL, cfg.Server.MaxSessions, log)

		srv := server.New(server.Config{
			Addr:          cfg.Server.Addr,
			CORSOrigins:   cfg.Server.CORSOrigins,
			SweepInterval: cfg.Server.SweepInterval,
		}, ds, cfg.Difficulties(), sessions, collector, log)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		log.Info("starting menuquiz server",
			zap.String("env", cfg.Env),
			zap.Int("items", ds.Len()))
		return srv.Run(ctx)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides server.addr)")
}
