// cmd/linkmaze/main.go
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/nkxxll/rget/internal/config"
	"github.com/nkxxll/rget/internal/logger"
	"github.com/nkxxll/rget/internal/maze"
)

var (
	configFile = flag.String("config", "", "path to optional YAML config file")
	verbose    = flag.Bool("verbose", false, "enable debug output")
	quiet      = flag.Bool("quiet", false, "errors only")
)

func main() {
	flag.Parse()
	log := logger.New(*verbose, *quiet)

	// A missing .env is fine; plain env vars still apply.
	_ = godotenv.Load()

	cfg := config.Default()
	var err error
	if *configFile != "" {
		cfg, err = config.LoadFile(cfg, *configFile)
		if err != nil {
			log.Fatal().Err(err).Msg("loading config file")
		}
	}
	cfg, err = config.FromEnv(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("reading environment")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	responder := maze.NewResponder(maze.Config{
		MaxDepth:        cfg.MaxDepth,
		ChildrenPerPage: cfg.ChildrenPerPage,
		BaseURL:         cfg.BaseURL(),
	})
	app := maze.NewServer(responder, log).App()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown failed")
		}
	}()

	log.Info().
		Str("addr", cfg.Addr()).
		Int("max_depth", cfg.MaxDepth).
		Int("children_per_page", cfg.ChildrenPerPage).
		Msg("link maze listening")
	if err := app.Listen(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
	log.Info().Msg("server stopped")
}
