package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/five82/coverflow/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "coverflow: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var opts app.Options
	var pollSeconds float64

	cmd := &cobra.Command{
		Use:   "coverflow [deck]",
		Short: "Browse a deck of cards in a coverflow carousel",
		Long: `Browse a deck of cards in a terminal coverflow carousel.

The deck is a TOML, YAML or JSON file, a plain text file with one
"title | body" card per line, or an http(s) URL serving any of those.
File decks reload when they change; URL decks are polled.`,
		Example: `
# Open the deck from the config file (default ~/.config/coverflow/deck.toml)
coverflow

# Open a local file and page through it one card per gesture
coverflow --paging ./films.yaml

# Follow a deck served over HTTP, polling every 10 seconds
coverflow --poll 10 https://example.com/deck.json
  `,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.Deck = args[0]
			}
			if pollSeconds < 0 {
				return fmt.Errorf("--poll must not be negative")
			}
			opts.PollEvery = time.Duration(pollSeconds * float64(time.Second))
			return app.Run(cmd.Context(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.ConfigPath, "config", "", "config file path (default ~/.config/coverflow/config.toml)")
	flags.StringVar(&opts.PrefsPath, "prefs", "", "preferences file path (default ~/.config/coverflow/prefs.toml)")
	flags.Float64Var(&pollSeconds, "poll", 0, "refresh interval in seconds for URL decks (default from config, 2s)")
	flags.BoolVar(&opts.Paging, "paging", false, "move one card per drag instead of scrubbing")
	flags.StringVar(&opts.LogLevel, "log-level", "", "log level: debug, info, warn or error")
	return cmd
}
