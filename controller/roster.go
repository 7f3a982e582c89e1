package controller

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/azrlmaster/sleeper-fan-helper/model"
	log "github.com/sirupsen/logrus"
)

const (
	yearOnlyFormat = "2006"

	minWeek = 1
	maxWeek = 18
)

var (
	// ErrUserNotFound is returned when a username can not be resolved to a
	// sleeper user, for any reason.
	ErrUserNotFound = errors.New("user not found")
	// ErrLeaguesUnavailable is returned when the list of leagues for a user
	// could not be loaded from sleeper.
	ErrLeaguesUnavailable = errors.New("leagues unavailable")
	ErrInvalidRequest     = errors.New("invalid request")
)

func (c *controller) FindUser(ctx context.Context, username string) (*model.User, error) {
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", ErrInvalidRequest)
	}

	userID, err := c.sleeper.GetUserID(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUserNotFound, username, err)
	}
	return &model.User{Username: username, UserID: userID}, nil
}

func (c *controller) GetRosterReport(ctx context.Context, username, season string, week int) (*model.RosterReport, error) {
	if err := validateSeasonAndWeek(season, week); err != nil {
		return nil, err
	}

	user, err := c.FindUser(ctx, username)
	if err != nil {
		return nil, err
	}

	roster, skipped, err := c.aggregateRosters(ctx, user.UserID, season, week)
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"username": username,
		"season":   season,
		"week":     week,
		"players":  roster.Len(),
		"skipped":  len(skipped),
	}).Info("aggregated rosters")

	return &model.RosterReport{
		User:        *user,
		Roster:      c.enrichRoster(ctx, roster),
		TeamRanking: c.rankTeams(ctx, roster),
	}, nil
}

// enrichRoster attaches the stored player details to every rostered player.
// Players that can not be found, or every player if the lookup fails, get the
// "Unknown Player" placeholder.
func (c *controller) enrichRoster(ctx context.Context, roster *model.AggregatedRoster) []model.RosterPlayer {
	ids := roster.PlayerIDs()
	result := make([]model.RosterPlayer, 0, len(ids))
	if len(ids) == 0 {
		return result
	}

	players, err := c.db.GetPlayers(ctx, ids)
	if err != nil {
		log.WithError(err).Warn("error looking up roster players, using placeholders")
		players = nil
	}

	for _, id := range ids {
		var p *model.Player
		if found, ok := players[id]; ok {
			p = &found
		}
		result = append(result, model.NewRosterPlayer(id, p, roster.Leagues(id)))
	}
	return result
}

func validateSeasonAndWeek(season string, week int) error {
	if _, err := time.Parse(yearOnlyFormat, season); err != nil {
		return fmt.Errorf("%w: season must be a four digit year, got '%s'", ErrInvalidRequest, season)
	}
	if week < minWeek || week > maxWeek {
		return fmt.Errorf("%w: week must be between %d and %d, got %d", ErrInvalidRequest, minWeek, maxWeek, week)
	}
	return nil
}
