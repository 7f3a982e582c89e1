package controller

import (
	"context"
	"fmt"

	"github.com/azrlmaster/sleeper-fan-helper/db"
	"github.com/azrlmaster/sleeper-fan-helper/model"
	"github.com/azrlmaster/sleeper-fan-helper/sleeper"
	"github.com/itbasis/go-clock"
)

const defaultLeagueConcurrency = 4

// C encapsulates business logic without worrying about any web layers
type C interface {
	// Build the aggregated roster and NFL team ranking for a sleeper user in
	// the given season and week.
	GetRosterReport(ctx context.Context, username, season string, week int) (*model.RosterReport, error)
	// Resolve a sleeper username to its user id.
	FindUser(ctx context.Context, username string) (*model.User, error)
	GetPlayer(ctx context.Context, id string) (*model.Player, error)
	// Reload every NFL player from sleeper into the local player table.
	UpdatePlayers(ctx context.Context) error
}

type controller struct {
	clock       clock.Clock
	sleeper     sleeper.Client
	db          db.DB
	weights     model.RankingWeights
	concurrency int
}

type Option func(*controller)

// WithWeights sets the points starters and bench players add to their team.
func WithWeights(w model.RankingWeights) Option {
	return func(c *controller) {
		c.weights = w
	}
}

// WithLeagueConcurrency bounds how many leagues are fetched from sleeper at once.
func WithLeagueConcurrency(n int) Option {
	return func(c *controller) {
		c.concurrency = n
	}
}

func New(clock clock.Clock, sleeper sleeper.Client, db db.DB, opts ...Option) (C, error) {
	c := &controller{
		clock:       clock,
		sleeper:     sleeper,
		db:          db,
		weights:     model.DefaultRankingWeights,
		concurrency: defaultLeagueConcurrency,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.weights.Starter < 0 || c.weights.Bench < 0 {
		return nil, fmt.Errorf("ranking weights must not be negative: %+v", c.weights)
	}
	if c.concurrency < 1 {
		return nil, fmt.Errorf("league concurrency must be at least 1, got %d", c.concurrency)
	}
	return c, nil
}
