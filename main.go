package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"mazerunner/pkg/engine/input"
	"mazerunner/pkg/engine/terminal"
	"mazerunner/pkg/game/config"
	"mazerunner/pkg/game/devtools"
	"mazerunner/pkg/game/gameplay"
	"mazerunner/pkg/game/locale"
	"mazerunner/pkg/game/logging"
	ebitenrenderer "mazerunner/pkg/game/renderer/ebiten"
	"mazerunner/pkg/game/renderer/tui"
	"mazerunner/pkg/game/setup"
	"mazerunner/pkg/game/state"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Load(args)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	log, closer, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer closer.Close()

	if err := locale.Configure(cfg.LocaleDir, cfg.Lang); err != nil {
		log.WithError(err).Warn("falling back to the built-in catalog")
		_ = locale.Configure("", cfg.Lang)
	}

	g, err := setup.NewGame(cfg.Rows, cfg.Cols, cfg.Seed, cfg.MaxAttempts, log)
	if err != nil {
		log.WithError(err).Error("could not build a maze")
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if cfg.Dump {
		if err := devtools.DumpMaze(os.Stdout, g); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		return 0
	}

	gameplay.Welcome(g)

	if err := play(cfg, g, log); err != nil {
		log.WithError(err).Error("renderer failed")
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// play runs the session on the configured backend
func play(cfg config.Config, g *state.Game, log *logrus.Logger) error {
	switch cfg.Renderer {
	case config.RendererEbiten:
		r := ebitenrenderer.New(cfg.Rows, cfg.Cols)
		r.Init()
		return r.Run(func() { gameplay.Run(g, r) })
	default:
		if !terminal.IsInteractive() {
			log.Warn("stdin or stdout is not a terminal; keys are read as plain bytes")
		}
		r := tui.New(os.Stdout, input.NewTerminal(os.Stdin))
		r.SetLogger(log)
		r.Init()
		gameplay.Run(g, r)
		return nil
	}
}
