package controller

import (
	"context"
	"fmt"

	"github.com/azrlmaster/sleeper-fan-helper/model"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const reasonNoRoster = "no roster for user"

// leagueData is what was fetched for a single league. Each fetch goroutine
// writes only to its own leagueData.
type leagueData struct {
	rosters  []model.Roster
	matchups []model.Matchup
	err      error
}

// aggregateRosters collects every player the user has rostered in the season,
// along with whether they start in each league for the week. Only a failure to
// load the league list is returned as an error; leagues that cannot be loaded
// are skipped.
func (c *controller) aggregateRosters(ctx context.Context, userID, season string, week int) (*model.AggregatedRoster, []model.SkippedLeague, error) {
	leagues, err := c.sleeper.GetLeaguesForUser(ctx, userID, season)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrLeaguesUnavailable, err)
	}

	data := c.fetchLeagues(ctx, leagues, week)

	roster := model.NewAggregatedRoster()
	skipped := make([]model.SkippedLeague, 0)
	for i, l := range leagues {
		if s := foldLeague(roster, l, userID, data[i]); s != nil {
			log.WithFields(log.Fields{
				"league_id": l.LeagueID,
				"user_id":   userID,
				"reason":    s.Reason,
			}).Warn("skipping league")
			skipped = append(skipped, *s)
		}
	}

	return roster, skipped, nil
}

// fetchLeagues loads the rosters and matchups for every league. The results are
// in the same order as leagues, whatever order the requests finish in.
func (c *controller) fetchLeagues(ctx context.Context, leagues []model.League, week int) []leagueData {
	data := make([]leagueData, len(leagues))

	var g errgroup.Group
	g.SetLimit(c.concurrency)
	for i, l := range leagues {
		g.Go(func() error {
			data[i] = c.fetchLeague(ctx, l.LeagueID, week)
			// never fail the group, one bad league should not cancel the rest
			return nil
		})
	}
	g.Wait()

	return data
}

func (c *controller) fetchLeague(ctx context.Context, leagueID string, week int) leagueData {
	rosters, err := c.sleeper.GetRosters(ctx, leagueID)
	if err != nil {
		return leagueData{err: fmt.Errorf("error getting rosters: %w", err)}
	}
	matchups, err := c.sleeper.GetMatchups(ctx, leagueID, week)
	if err != nil {
		return leagueData{err: fmt.Errorf("error getting matchups for week %d: %w", week, err)}
	}
	return leagueData{rosters: rosters, matchups: matchups}
}

// foldLeague adds the user's players in a league to the aggregated roster. It
// returns the reason the league was skipped, or nil if it was added.
func foldLeague(roster *model.AggregatedRoster, l model.League, userID string, d leagueData) *model.SkippedLeague {
	if d.err != nil {
		return &model.SkippedLeague{LeagueID: l.LeagueID, Reason: d.err.Error()}
	}

	r := model.FindRoster(d.rosters, userID)
	if r == nil {
		return &model.SkippedLeague{LeagueID: l.LeagueID, Reason: reasonNoRoster}
	}

	// No matchup means no starters this week, everyone is on the bench.
	starters := make(map[string]bool)
	if m := model.FindMatchup(d.matchups, r.RosterID); m != nil {
		for _, id := range m.Starters {
			starters[id] = true
		}
	}

	seen := make(map[string]bool, len(r.PlayerIDs))
	for _, id := range r.PlayerIDs {
		// a player counts once per league, even if sleeper lists them twice
		if seen[id] {
			continue
		}
		seen[id] = true

		status := model.StatusBench
		if starters[id] {
			status = model.StatusStarter
		}
		roster.Add(id, model.LeagueAppearance{
			LeagueID:   l.LeagueID,
			LeagueName: l.Name,
			Status:     status,
		})
	}
	return nil
}
