package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli"

	"github.com/tomz197/splitfleet/internal/config"
	"github.com/tomz197/splitfleet/internal/desktop"
	"github.com/tomz197/splitfleet/internal/sfx"
)

func main() {
	app := cli.NewApp()
	app.Name = "splitfleet-desktop"
	app.Usage = "two fleets of splitting spaceships in a window"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "config", EnvVar: "SPLITFLEET_CONFIG", Usage: "JSON settings file"},
		cli.BoolFlag{Name: "two-player", Usage: "Player 2 on the same keyboard instead of the computer"},
		cli.BoolFlag{Name: "sound", Usage: "Play sound effects"},
		cli.BoolFlag{Name: "debug", Usage: "Enable debug logging"},
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

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "splitfleet"})
	if c.Bool("debug") {
		logger.SetLevel(log.DebugLevel)
	}

	opts := desktop.Options{
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

	return desktop.Run(opts)
}
