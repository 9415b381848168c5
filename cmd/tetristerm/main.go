package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"golang.org/x/term"

	"github.com/qnkhuat/tetristerm/pkg"
	"github.com/qnkhuat/tetristerm/pkg/event"
	"github.com/qnkhuat/tetristerm/pkg/game"
	"github.com/qnkhuat/tetristerm/pkg/gui"
)

func main() {
	logPath := flag.String("log", "./log", "path to log file")
	seed := flag.Int64("seed", 0, "piece sequence seed (0 picks one at random)")
	nick := flag.String("nick", "", "nickname")
	themeName := flag.String("theme", gui.ThemeBasic.Name, "color theme")
	themesPath := flag.String("themes", "", "path to a JSON file with extra themes")
	logDebug := flag.Bool("debug", false, "enable debug logging")
	logVerbose := flag.Bool("verbose", false, "enable verbose logging")
	flag.Parse()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "failed to start tetristerm: non-interactive terminals are not supported")
		os.Exit(1)
	}

	f, err := pkg.InitLog(*logPath, "CLIENT: ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer f.Close()

	var themes []gui.ThemeHex
	if *themesPath != "" {
		if themes, err = gui.LoadThemes(*themesPath); err != nil {
			log.Fatal(err)
		}
	}

	theme, err := gui.ImportThemes(*themeName, themes)
	if err != nil {
		log.Fatalf("%s: %q", err, *themeName)
	}

	logLevel := game.LogStandard
	if *logVerbose {
		logLevel = game.LogVerbose
	} else if *logDebug {
		logLevel = game.LogDebug
	}

	draw := make(chan event.DrawObject, game.CommandQueueSize)
	logger := make(chan string, game.LogQueueSize)

	g := game.NewGame(pkg.Nickname(*nick), *seed, logger, draw)
	g.LogLevel = logLevel

	log.Printf("New game %s for %s (seed %d)", g.ID, g.Name, g.Seed)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	ui := gui.NewGUI(g, theme, draw, logger)

	defer func() {
		if r := recover(); r != nil {
			ui.App.Stop()

			log.Printf("panic: %+v\n%s", r, debug.Stack())
			fmt.Fprintf(os.Stderr, "panic: %+v\n", r)
			os.Exit(1)
		}
	}()

	go func() {
		if err := g.Run(ctx); err != nil && err != context.Canceled {
			log.Printf("game stopped: %s", err)
		}
	}()

	if err := ui.Run(ctx); err != nil {
		log.Fatalf("failed to run application: %s", err)
	}

	s := g.Snapshot()
	log.Printf("Game %s closed: score %d, level %d, lines %d", g.ID, s.Score, s.Level, s.Lines)
}
