package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/tessera/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	layoutPath := flag.String("layout", "", "layout definition file, .toml or .yaml (optional)")
	prefsPath := flag.String("prefs", "", "override prefs path (optional)")
	width := flag.Float64("width", 0, "print the layout resolved at this viewport width in px and exit")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		LayoutPath: *layoutPath,
		PrefsPath:  *prefsPath,
		Output:     os.Stdout,
	}
	if w := *width; w > 0 {
		opts.PrintWidth = w
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "tessera: %v\n", err)
		return 1
	}
	return 0
}
