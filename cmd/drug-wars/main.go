package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/appengine-ltd/drug-wars/internal/config"
	"github.com/appengine-ltd/drug-wars/internal/game"
	"github.com/appengine-ltd/drug-wars/internal/logger"
	"github.com/appengine-ltd/drug-wars/internal/session"
	"github.com/appengine-ltd/drug-wars/internal/terminal"
	"github.com/appengine-ltd/drug-wars/internal/window"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var (
		showVersion bool
		useWindow   bool
		configPath  string
		logPath     string
		seed        int64
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.BoolVar(&useWindow, "window", false, "play in a window instead of the terminal")
	flag.StringVar(&configPath, "config", "", "path to a YAML config file")
	flag.StringVar(&logPath, "log", "", "write JSON logs to this file")
	flag.Int64Var(&seed, "seed", 0, "seed for the price sequence (0 uses the clock)")
	flag.Parse()

	if showVersion {
		fmt.Printf("Drug Wars %s (%s) %s\n", version, commit, date)
		return
	}

	if err := run(configPath, logPath, seed, useWindow); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath, logPath string, seed int64, useWindow bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if logPath != "" {
		cfg.Log.Path = logPath
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	baseLogger, err := logger.New(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer func() { _ = baseLogger.Sync() }()

	state := game.New(game.NewSeededRandom(cfg.Seed), cfg.Prices)
	loop := session.NewLoop(state, cfg.Keys, logger.Named(baseLogger, "session"))

	open := openTerminal(logger.Named(baseLogger, "terminal"))
	if useWindow {
		open = openWindow(logger.Named(baseLogger, "window"))
	}

	err = session.Run(open, loop.Run)
	if err != nil {
		baseLogger.Error("session failed", zap.Error(err))
	}
	return err
}

func openTerminal(l *zap.Logger) session.Opener {
	return func() (session.Display, session.EventSource, error) {
		t, err := terminal.Open(l)
		if err != nil {
			return nil, nil, err
		}
		return t, t, nil
	}
}

func openWindow(l *zap.Logger) session.Opener {
	return func() (session.Display, session.EventSource, error) {
		w, err := window.Open(l)
		if err != nil {
			return nil, nil, err
		}
		return w, w, nil
	}
}
