package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/azrlmaster/sleeper-fan-helper/config"
	"github.com/azrlmaster/sleeper-fan-helper/controller"
	"github.com/azrlmaster/sleeper-fan-helper/db"
	"github.com/azrlmaster/sleeper-fan-helper/sleeper"
	"github.com/itbasis/go-clock"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sleeper-fan-helper",
	Short: "Rank the NFL teams a Sleeper user has the most riding on",
	Long: `sleeper-fan-helper collects a Sleeper user's rosters from every league they
play in and ranks the real NFL teams by how many of the user's starters and
bench players they employ.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// app holds the dependencies shared by every command.
type app struct {
	cfg  *config.Config
	db   db.DB
	ctrl controller.C
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	cfg.ConfigureLogging()

	clock := clock.New()
	store, err := db.New(ctx, cfg.DatabaseURL, clock)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to DB: %w", err)
	}

	sleeperClient, err := sleeper.New(cfg.SleeperURL, cfg.SleeperTimeout)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("error creating sleeper client: %w", err)
	}

	ctrl, err := controller.New(clock, sleeperClient, store,
		controller.WithWeights(cfg.Weights()),
		controller.WithLeagueConcurrency(cfg.LeagueConcurrency))
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("error creating a new controller: %w", err)
	}

	return &app{cfg: cfg, db: store, ctrl: ctrl}, nil
}

func (a *app) Close() {
	a.db.Close()
}

func waitTimeout(wg *sync.WaitGroup, timeout time.Duration) error {
	c := make(chan any)
	go func() {
		defer close(c)
		wg.Wait()
	}()

	select {
	case <-c:
		return nil // completed normally
	case <-time.After(timeout):
		return errors.New("timed out waiting")
	}
}
