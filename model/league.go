package model

type League struct {
	LeagueID string
	Name     string
	Season   string
}

// Roster is one team within a league. PlayerIDs holds every player on the
// team, starters and bench combined.
type Roster struct {
	RosterID  int
	OwnerID   string
	PlayerIDs []string
	Starters  []string
}

// Matchup is a single roster's side of a weekly matchup. Starters holds the
// players in the active lineup for that week.
type Matchup struct {
	RosterID  int
	MatchupID int
	Week      int
	Starters  []string
	Points    float64
}

// FindRoster returns the roster owned by ownerID, or nil if there is none.
func FindRoster(rosters []Roster, ownerID string) *Roster {
	for i := range rosters {
		if rosters[i].OwnerID == ownerID {
			return &rosters[i]
		}
	}
	return nil
}

// FindMatchup returns the matchup for rosterID, or nil if the roster has no
// matchup that week (bye week, or the league has not set the schedule yet).
func FindMatchup(matchups []Matchup, rosterID int) *Matchup {
	for i := range matchups {
		if matchups[i].RosterID == rosterID {
			return &matchups[i]
		}
	}
	return nil
}
