package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

func run(args []string) error {
	return newApp().Run(args)
}

func newApp() *cli.App {
	app := cli.App{
		Name:    "nbnurn",
		Usage:   "informal CLI tool for NBN-URN syntax",
		Version: versioninfo.Short(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log verbosity level (eg: warn, info, debug)",
				Value:   "info",
				EnvVars: []string{"NBNURN_LOG_LEVEL"},
			},
		},
		Before: configLogger,
	}
	app.Commands = []*cli.Command{
		cmdCheck,
		cmdInspect,
		cmdBuild,
		cmdNormalize,
		cmdCheckFile,
	}
	return &app
}

func configLogger(cctx *cli.Context) error {
	var level slog.Level
	switch strings.ToLower(cctx.String("log-level")) {
	case "error":
		level = slog.LevelError
	case "warn":
		level = slog.LevelWarn
	case "info":
		level = slog.LevelInfo
	case "debug":
		level = slog.LevelDebug
	default:
		return fmt.Errorf("unknown log level: %s", cctx.String("log-level"))
	}
	h := slog.NewTextHandler(cctx.App.ErrWriter, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(h))
	return nil
}
