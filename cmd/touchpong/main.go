package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/diegok/touchpong/internal/app"
	"github.com/diegok/touchpong/internal/config"
	"github.com/diegok/touchpong/internal/logging"
)

func main() {
	cfg, err := config.ParseArgs(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		printUsage()
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	logger, err := logging.ForMode(cfg.LogLevel, cfg.LogFile, cfg.Headless)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	application := app.NewApp(cfg, logger)
	err = application.Run(context.Background())
	_ = logger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if cfg.Headless {
		final := application.Snapshot()
		fmt.Printf("P1 %d - %d P2 after %d frames\n", final.Player1.Score, final.Player2.Score, final.Tick)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  touchpong [options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  --config <file>         YAML config, overridden by flags")
	fmt.Fprintln(os.Stderr, "  --width, --height <n>   Arena size (default: 800x600)")
	fmt.Fprintln(os.Stderr, "  --ball-size <n>         Ball width and height (default: 50)")
	fmt.Fprintln(os.Stderr, "  --paddle-width <n>      Paddle width (default: 25)")
	fmt.Fprintln(os.Stderr, "  --paddle-height <n>     Paddle height (default: 200)")
	fmt.Fprintln(os.Stderr, "  --tick-rate <n>         Updates per second (default: 60)")
	fmt.Fprintln(os.Stderr, "  --seed <n>              Serve random seed (default: random)")
	fmt.Fprintln(os.Stderr, "  --headless              Simulate without a terminal")
	fmt.Fprintln(os.Stderr, "  --frames <n>            Stop after n updates")
	fmt.Fprintln(os.Stderr, "  --trace <file>          Record every frame")
	fmt.Fprintln(os.Stderr, "  --log-level <level>     debug, info, warn, error (default: info)")
	fmt.Fprintln(os.Stderr, "  --log-file <file>       Log destination")
	fmt.Fprintln(os.Stderr, "  --mute                  Disable sound")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Drag with the mouse in the left or right quarter of the court")
	fmt.Fprintln(os.Stderr, "to move that side's paddle. Press q to quit.")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Examples:")
	fmt.Fprintln(os.Stderr, "  touchpong")
	fmt.Fprintln(os.Stderr, "  touchpong --seed 42 --log-file pong.log")
	fmt.Fprintln(os.Stderr, "  touchpong --headless --frames 3600 --seed 42 --trace run.gob")
}
