package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/azrlmaster/sleeper-fan-helper/controller"
	"github.com/go-co-op/gocron/v2"
	log "github.com/sirupsen/logrus"
)

const playerSyncJob = "player-sync"

// The full player list is a large download, give it plenty of time.
const playerSyncTimeout = 5 * time.Minute

// Scheduler periodically reloads the player table from sleeper.
type Scheduler struct {
	s        gocron.Scheduler
	ctrl     controller.C
	interval time.Duration
	onStart  bool
}

func New(ctrl controller.C, interval time.Duration, runOnStart bool) (*Scheduler, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("player sync interval must be positive, got %v", interval)
	}

	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Scheduler{
		s:        s,
		ctrl:     ctrl,
		interval: interval,
		onStart:  runOnStart,
	}, nil
}

func (s *Scheduler) Start() error {
	opts := []gocron.JobOption{
		gocron.WithName(playerSyncJob),
		// a slow sync should never overlap with the next one
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	}
	if s.onStart {
		opts = append(opts, gocron.WithStartAt(gocron.WithStartImmediately()))
	}

	_, err := s.s.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(s.syncPlayers),
		opts...,
	)
	if err != nil {
		return fmt.Errorf("failed to create player sync job: %w", err)
	}

	log.WithFields(log.Fields{
		"interval": s.interval,
		"on_start": s.onStart,
	}).Info("starting player sync schedule")
	s.s.Start()
	return nil
}

func (s *Scheduler) Stop() error {
	return s.s.Shutdown()
}

func (s *Scheduler) syncPlayers() {
	ctx, cancel := context.WithTimeout(context.Background(), playerSyncTimeout)
	defer cancel()

	if err := s.ctrl.UpdatePlayers(ctx); err != nil {
		log.WithError(err).Error("scheduled player sync failed")
	}
}
