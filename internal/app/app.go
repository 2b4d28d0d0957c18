package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/five82/tessera/internal/config"
	"github.com/five82/tessera/internal/grid"
	"github.com/five82/tessera/internal/layout"
	"github.com/five82/tessera/internal/prefs"
	"github.com/five82/tessera/internal/state"
	"github.com/five82/tessera/internal/ui"
	"github.com/five82/tessera/internal/watcher"
)

// Options configure the Tessera application.
type Options struct {
	ConfigPath string
	LayoutPath string // overrides the config's layout path
	PrefsPath  string // empty uses default ~/.config/tessera/prefs.toml

	// PrintWidth, when positive, resolves the layout at this viewport width
	// in pixels, writes a table to Output and returns without starting the UI.
	PrintWidth float64
	Output     io.Writer
}

const reloadDebounce = 250 * time.Millisecond

// Run boots Tessera until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.LayoutPath != "" {
		cfg.LayoutPath = opts.LayoutPath
	}

	classifier, err := cfg.Classifier()
	if err != nil {
		return fmt.Errorf("build classifier: %w", err)
	}

	def, err := layout.Load(cfg.LayoutPath)
	if err != nil {
		return fmt.Errorf("load layout: %w", err)
	}

	if opts.PrintWidth > 0 {
		return Print(opts.Output, def, classifier, grid.DefaultResolver(), opts.PrintWidth)
	}

	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "tessera")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	store := &state.Store{}
	store.Update(def, nil)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	if cfg.LayoutPath != "" {
		g.Go(func() error {
			return watcher.Watch(ctx, cfg.LayoutPath, reloadDebounce, func() {
				reload(store, cfg.LayoutPath)
			})
		})
	}

	g.Go(func() error {
		// The watcher only stops with the context, so quitting the UI ends the group.
		defer cancel()
		return ui.Run(ui.Options{
			Context:    ctx,
			Store:      store,
			Config:     cfg,
			Classifier: classifier,
			Resolver:   grid.DefaultResolver(),
			Prefs:      userPrefs,
			PrefsPath:  opts.PrefsPath,
		})
	})

	return g.Wait()
}

// reload re-reads the layout file into the store. A failed load keeps the
// previous layout on screen.
func reload(store *state.Store, path string) {
	def, err := layout.Load(path)
	if err != nil {
		log.Printf("layout reload failed: %v", err)
		store.Update(layout.Definition{}, err)
		return
	}
	log.Printf("layout reloaded: %s (%d items)", path, len(def.Entries))
	store.Update(def, nil)
}
