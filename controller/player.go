package controller

import (
	"context"
	"fmt"
	"time"

	"github.com/azrlmaster/sleeper-fan-helper/model"
	log "github.com/sirupsen/logrus"
)

func (c *controller) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	return c.db.GetPlayer(ctx, id)
}

func (c *controller) UpdatePlayers(ctx context.Context) error {
	start := c.clock.Now()
	log.Infof("update players starting at %v", start.Format(time.DateTime))

	players, err := c.sleeper.LoadPlayers(ctx)
	if err != nil {
		return fmt.Errorf("error loading players from sleeper: %w", err)
	}

	n, err := c.db.SavePlayers(ctx, players)
	if err != nil {
		return fmt.Errorf("error saving players: %w", err)
	}

	log.WithField("players", n).Infof("update players finished, took %v", c.clock.Now().Sub(start))
	return nil
}
