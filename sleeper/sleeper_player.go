package sleeper

import (
	"strings"

	"github.com/azrlmaster/sleeper-fan-helper/model"
)

type sleeperUser struct {
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
}

type sleeperLeague struct {
	LeagueID     string `json:"league_id"`
	Name         string `json:"name"`
	Season       string `json:"season"`
	Status       string `json:"status"`
	TotalRosters int    `json:"total_rosters"`
}

func (l *sleeperLeague) toLeague() model.League {
	return model.League{
		LeagueID: l.LeagueID,
		Name:     l.Name,
		Season:   l.Season,
	}
}

type sleeperRoster struct {
	RosterID int      `json:"roster_id"`
	OwnerID  string   `json:"owner_id"`
	LeagueID string   `json:"league_id"`
	Players  []string `json:"players"`
	Starters []string `json:"starters"`
}

func (r *sleeperRoster) toRoster() model.Roster {
	return model.Roster{
		RosterID:  r.RosterID,
		OwnerID:   r.OwnerID,
		PlayerIDs: nonNil(r.Players),
		Starters:  nonNil(r.Starters),
	}
}

type sleeperMatchup struct {
	RosterID  int      `json:"roster_id"`
	MatchupID int      `json:"matchup_id"`
	Starters  []string `json:"starters"`
	Players   []string `json:"players"`
	Points    float64  `json:"points"`
}

func (m *sleeperMatchup) toMatchup(week int) model.Matchup {
	return model.Matchup{
		RosterID:  m.RosterID,
		MatchupID: m.MatchupID,
		Week:      week,
		Starters:  nonNil(m.Starters),
		Points:    m.Points,
	}
}

type sleeperPlayer struct {
	ID        string  `json:"player_id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	FullName  string  `json:"full_name"`
	Position  string  `json:"position"`
	Team      *string `json:"team"`
	YearsExp  *int    `json:"years_exp"`
	Status    *string `json:"status"`
	Active    bool    `json:"active"`
}

// Sleeper keeps some placeholder records in the players list, they are all
// named "Player Invalid".
func (p *sleeperPlayer) isInvalid() bool {
	return p.FirstName == "Player" && p.LastName == "Invalid"
}

func (p *sleeperPlayer) toPlayer() *model.Player {
	return &model.Player{
		ID:        p.ID,
		FullName:  strings.TrimSpace(p.FullName),
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Position:  model.ParsePosition(p.Position),
		Team:      model.ParseTeam(valueOrEmpty(p.Team)),
		YearsExp:  p.YearsExp,
		Status:    valueOrEmpty(p.Status),
		Active:    p.Active,
	}
}

func valueOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Sleeper sends null for empty lists, e.g. the players on a roster before the draft.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
