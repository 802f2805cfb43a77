package app

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/five82/coverflow/internal/config"
	"github.com/five82/coverflow/internal/deck"
	"github.com/five82/coverflow/internal/prefs"
	"github.com/five82/coverflow/internal/state"
	"github.com/five82/coverflow/internal/ui"
)

// uiRefresh bounds how often the UI checks the store for a new revision.
const uiRefresh = 500 * time.Millisecond

// Options configure the coverflow application. Zero values keep what the
// config file says.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/coverflow/prefs.toml
	Deck       string // file path or http(s) URL
	PollEvery  time.Duration
	Paging     bool
	LogLevel   string
}

// Run boots the coverflow TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg = applyOptions(cfg, opts)

	logger, closeLog, err := openLogger(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	fetcher, err := deck.Open(cfg.Deck)
	if err != nil {
		return fmt.Errorf("open deck: %w", err)
	}
	logger.Info("starting", "deck", cfg.Deck, "remote", cfg.IsRemote(), "paging", cfg.Paging)

	store := &state.Store{}

	// Do initial refresh to populate store before UI starts
	refresh(ctx, store, fetcher, logger)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return follow(gctx, store, fetcher, cfg.PollInterval, logger)
	})
	g.Go(func() error {
		// Quitting the UI stops the background loops.
		defer cancel()
		return ui.Run(ui.Options{
			Context:   gctx,
			Store:     store,
			Config:    cfg,
			DeckName:  deckLabel(cfg.Deck),
			PollTick:  min(cfg.PollInterval, uiRefresh),
			ThemeName: userPrefs.Theme,
			CardWidth: userPrefs.CardWidth,
			PrefsPath: opts.PrefsPath,
			Logger:    logger.WithPrefix("ui"),
		})
	})

	err = g.Wait()
	logger.Info("stopped", "err", err)
	return err
}

func applyOptions(cfg config.Config, opts Options) config.Config {
	if d := strings.TrimSpace(opts.Deck); d != "" {
		cfg.Deck = d
	}
	if opts.PollEvery > 0 {
		cfg.PollInterval = opts.PollEvery
	}
	if opts.Paging {
		cfg.Paging = true
	}
	if l := strings.TrimSpace(opts.LogLevel); l != "" {
		cfg.LogLevel = l
	}
	return cfg
}

// deckLabel is the short deck name shown in the header.
func deckLabel(location string) string {
	if u, err := url.Parse(location); err == nil && u.Host != "" {
		return u.Host + u.Path
	}
	return filepath.Base(location)
}
