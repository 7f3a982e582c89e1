package model

import "time"

// RankingWeights are the points a player adds to their NFL team's score.
type RankingWeights struct {
	Starter float64
	Bench   float64
}

var DefaultRankingWeights = RankingWeights{Starter: 2.0, Bench: 1.0}

// TeamScore is how much stake a user has in a real-world NFL team.
type TeamScore struct {
	Team     string  `json:"team"`
	Score    float64 `json:"score"`
	Starters int     `json:"starters"`
	Bench    int     `json:"bench"`
}

type User struct {
	Username string `json:"username"`
	UserID   string `json:"user_id"`
}

// RosterPlayer is a player from the aggregated roster, enriched with the data
// in the local player table.
type RosterPlayer struct {
	PlayerID    string             `json:"player_id"`
	FullName    string             `json:"full_name"`
	Team        string             `json:"team,omitempty"`
	Position    Position           `json:"position,omitempty"`
	YearsExp    *int               `json:"years_exp,omitempty"`
	Status      string             `json:"status,omitempty"`
	LastUpdated *time.Time         `json:"last_updated,omitempty"`
	Leagues     []LeagueAppearance `json:"leagues"`
}

// NewRosterPlayer builds the roster entry for a player. p may be nil when the
// player is not in the local player table.
func NewRosterPlayer(playerID string, p *Player, leagues []LeagueAppearance) RosterPlayer {
	if p == nil {
		return RosterPlayer{
			PlayerID: playerID,
			FullName: UnknownPlayerName,
			Leagues:  leagues,
		}
	}

	rp := RosterPlayer{
		PlayerID: playerID,
		FullName: p.Name(),
		Team:     p.TeamCode(),
		Position: p.Position,
		YearsExp: p.YearsExp,
		Status:   p.Status,
		Leagues:  leagues,
	}
	if !p.Updated.IsZero() {
		updated := p.Updated.UTC()
		rp.LastUpdated = &updated
	}
	return rp
}

// RosterReport is the full response for a user: every rostered player across
// their leagues, and the NFL teams ranked by how much the user has riding on them.
type RosterReport struct {
	User        User           `json:"user"`
	Roster      []RosterPlayer `json:"roster"`
	TeamRanking []TeamScore    `json:"team_ranking"`
}
