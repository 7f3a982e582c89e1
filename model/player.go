package model

import (
	"strings"
	"time"
)

// UnknownPlayerName is shown for roster players that are not in the local
// player table, usually because the player sync has not run since they were added.
const UnknownPlayerName = "Unknown Player"

type Player struct {
	ID        string
	FullName  string
	FirstName string
	LastName  string
	Position  Position
	Team      *NFLTeam
	YearsExp  *int // nil when sleeper does not know it
	Status    string
	Active    bool
	Updated   time.Time
}

// Name returns the full name of the player, building it from the first and
// last names when sleeper did not provide one (team defenses, mostly).
func (p *Player) Name() string {
	if p.FullName != "" {
		return p.FullName
	}
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// TeamCode is the sleeper abbreviation for the player's team, or "" if the player
// is not on a team.
func (p *Player) TeamCode() string {
	if p.Team.IsFreeAgent() {
		return ""
	}
	return p.Team.Code()
}

func (p *Player) FormattedUpdatedTime() string {
	if p.Updated.IsZero() {
		return "unknown"
	}
	return p.Updated.Format(time.DateTime)
}
