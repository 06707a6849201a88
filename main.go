package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"coinwatch/internal/config"
	"coinwatch/internal/market"
	"coinwatch/internal/util"
	"coinwatch/ui/tui"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger := util.NewLogger(cfg.Logging.File, cfg.Logging.Level)
	util.SetDefault(logger)

	// Use the interface to allow for different provider implementations
	var provider market.PriceProvider = market.NewClient(cfg.Exchange, logger)

	// The dashboard starts from a complete unfiltered snapshot. If the
	// exchange is unreachable even after retries there is nothing to show,
	// so bail out before touching the terminal.
	budget := cfg.Exchange.RequestTimeout.Std() * time.Duration(cfg.Exchange.RetryAttempts+1)
	ctx, cancel := context.WithTimeout(context.Background(), budget)
	rows, err := provider.Prices(ctx, "")
	cancel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching initial prices: %v\n", err)
		os.Exit(1)
	}

	if err := tui.Start(provider, cfg, rows); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
