package controller

import (
	"cmp"
	"context"
	"slices"

	"github.com/azrlmaster/sleeper-fan-helper/model"
	log "github.com/sirupsen/logrus"
)

// rankTeams scores every NFL team the user has players on. Failing to look up
// the players is logged and results in an empty ranking, the rest of the
// report is still useful without it.
func (c *controller) rankTeams(ctx context.Context, roster *model.AggregatedRoster) []model.TeamScore {
	if roster.Len() == 0 {
		return []model.TeamScore{}
	}

	players, err := c.db.GetPlayers(ctx, roster.PlayerIDs())
	if err != nil {
		log.WithError(err).Warn("error looking up players for team ranking")
		return []model.TeamScore{}
	}

	return scoreTeams(roster, players, c.weights)
}

// scoreTeams adds up the weight of each player on their NFL team. A player counts
// as a starter if they start in any league. Players that are not in players, or
// that are not on a team, don't count towards any team.
func scoreTeams(roster *model.AggregatedRoster, players map[string]model.Player, weights model.RankingWeights) []model.TeamScore {
	scores := make(map[string]*model.TeamScore)
	for _, id := range roster.PlayerIDs() {
		p, found := players[id]
		if !found || p.Team.IsFreeAgent() {
			continue
		}

		team := p.Team.Code()
		s, found := scores[team]
		if !found {
			s = &model.TeamScore{Team: team}
			scores[team] = s
		}

		if roster.IsStarter(id) {
			s.Score += weights.Starter
			s.Starters++
		} else {
			s.Score += weights.Bench
			s.Bench++
		}
	}

	result := make([]model.TeamScore, 0, len(scores))
	for _, s := range scores {
		result = append(result, *s)
	}

	// Highest score first, equal scores by team code so the order is stable
	// between requests.
	slices.SortStableFunc(result, func(a, b model.TeamScore) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(a.Team, b.Team)
	})
	return result
}
