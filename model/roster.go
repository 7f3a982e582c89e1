package model

type LineupStatus string

const (
	StatusStarter LineupStatus = "starter"
	StatusBench   LineupStatus = "bench"
)

// LeagueAppearance records that a player is on the user's roster in a league,
// and whether they are in the starting lineup there.
type LeagueAppearance struct {
	LeagueID   string       `json:"league_id"`
	LeagueName string       `json:"league_name"`
	Status     LineupStatus `json:"status"`
}

// AggregatedRoster maps player ids to every league the player appears in for
// a single user. Player ids are kept in the order they were first added.
type AggregatedRoster struct {
	order   []string
	entries map[string][]LeagueAppearance
}

func NewAggregatedRoster() *AggregatedRoster {
	return &AggregatedRoster{
		order:   make([]string, 0, 32),
		entries: make(map[string][]LeagueAppearance),
	}
}

// Add appends a league appearance to the player's entry, creating the entry if
// this is the first time the player has been seen.
func (r *AggregatedRoster) Add(playerID string, a LeagueAppearance) {
	existing, found := r.entries[playerID]
	if !found {
		r.order = append(r.order, playerID)
	}
	r.entries[playerID] = append(existing, a)
}

// PlayerIDs returns the player ids in first-seen order.
func (r *AggregatedRoster) PlayerIDs() []string {
	ids := make([]string, len(r.order))
	copy(ids, r.order)
	return ids
}

func (r *AggregatedRoster) Leagues(playerID string) []LeagueAppearance {
	return r.entries[playerID]
}

func (r *AggregatedRoster) Len() int {
	return len(r.order)
}

// IsStarter reports whether the player starts in at least one league. Starting
// anywhere wins over being on the bench elsewhere.
func (r *AggregatedRoster) IsStarter(playerID string) bool {
	for _, a := range r.entries[playerID] {
		if a.Status == StatusStarter {
			return true
		}
	}
	return false
}

// SkippedLeague is a league that was left out of the aggregation, along with
// the reason it was skipped.
type SkippedLeague struct {
	LeagueID string
	Reason   string
}
