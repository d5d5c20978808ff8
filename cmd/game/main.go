package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"golang.org/x/term"

	"github.com/tomz197/splitfleet/internal/config"
	"github.com/tomz197/splitfleet/internal/loop"
	"github.com/tomz197/splitfleet/internal/sfx"
)

func main() {
	app := cli.NewApp()
	app.Name = "splitfleet"
	app.Usage = "two fleets of splitting spaceships in your terminal"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "config", EnvVar: "SPLITFLEET_CONFIG", Usage: "JSON settings file"},
		cli.BoolFlag{Name: "two-player", Usage: "Player 2 on the same keyboard instead of the computer"},
		cli.BoolFlag{Name: "sound", Usage: "Play sound effects"},
		cli.BoolFlag{Name: "debug", Usage: "Enable debug logging"},
		cli.StringFlag{Name: "log-file", EnvVar: "SPLITFLEET_LOG", Usage: "Write logs to this file"},
	}
	app.Action = run

	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	settings, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}

	// The terminal is the game screen, so logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if path := c.String("log-file"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return errors.Wrap(err, "open log file")
		}
		defer f.Close()
		logOut = f
	}
	logger := log.NewWithOptions(logOut, log.Options{ReportTimestamp: true, Prefix: "splitfleet"})
	if c.Bool("debug") {
		logger.SetLevel(log.DebugLevel)
	}

	opts := loop.Options{
		Settings:  settings,
		Logger:    logger,
		TwoPlayer: c.Bool("two-player"),
	}
	if c.Bool("sound") {
		player := sfx.NewPlayer(0.5)
		if err := player.Init(); err != nil {
			logger.Warn("sound disabled", "err", err)
		} else {
			defer player.Close()
			opts.Sound = player
		}
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return errors.Wrap(err, "enable raw mode")
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("session started", "twoPlayer", opts.TwoPlayer)
	reader := bufio.NewReader(os.Stdin)
	if err := loop.Run(ctx, reader, os.Stdout, opts); err != nil {
		return errors.Wrap(err, "run session")
	}
	logger.Info("session ended")
	return nil
}
