package testutils

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/azrlmaster/sleeper-fan-helper/db"
	"github.com/azrlmaster/sleeper-fan-helper/model"
	"github.com/itbasis/go-clock"
)

var (
	TylerLockett = model.Player{
		ID:        "2374",
		FullName:  "Tyler Lockett",
		FirstName: "Tyler",
		LastName:  "Lockett",
		Position:  model.POS_WR,
		Team:      model.TEAM_SEA,
		YearsExp:  YearsExp(9),
		Status:    "Active",
		Active:    true,
	}
	AlvinKamara = model.Player{
		ID:        "4035",
		FullName:  "Alvin Kamara",
		FirstName: "Alvin",
		LastName:  "Kamara",
		Position:  model.POS_RB,
		Team:      model.TEAM_NOS,
		YearsExp:  YearsExp(7),
		Status:    "Active",
		Active:    true,
	}
	JalenHurts = model.Player{
		ID:        "6904",
		FullName:  "Jalen Hurts",
		FirstName: "Jalen",
		LastName:  "Hurts",
		Position:  model.POS_QB,
		Team:      model.TEAM_PHI,
		YearsExp:  YearsExp(4),
		Status:    "Active",
		Active:    true,
	}
	CeeDeeLamb = model.Player{
		ID:        "6786",
		FullName:  "CeeDee Lamb",
		FirstName: "CeeDee",
		LastName:  "Lamb",
		Position:  model.POS_WR,
		Team:      model.TEAM_DAL,
		YearsExp:  YearsExp(4),
		Status:    "Active",
		Active:    true,
	}
	BreeceHall = model.Player{
		ID:        "8155",
		FullName:  "Breece Hall",
		FirstName: "Breece",
		LastName:  "Hall",
		Position:  model.POS_RB,
		Team:      model.TEAM_NYJ,
		YearsExp:  YearsExp(2),
		Status:    "Active",
		Active:    true,
	}
	// A free agent, sleeper sends a null team for him.
	LoganThomas = model.Player{
		ID:        "1234",
		FullName:  "Logan Thomas",
		FirstName: "Logan",
		LastName:  "Thomas",
		Position:  model.POS_TE,
		YearsExp:  YearsExp(10),
		Status:    "Inactive",
	}
)

// TestPlayers are the players in sleeperdata/players.json that are stored by
// InsertTestPlayers. Player 9999 from the rosters is deliberately missing.
func TestPlayers() []model.Player {
	return []model.Player{TylerLockett, AlvinKamara, JalenHurts, CeeDeeLamb, BreeceHall, LoganThomas}
}

// YearsExp returns a pointer to n, for building players in tests.
func YearsExp(n int) *int {
	return &n
}

// SyncTime is the time the test clock is fixed at.
var SyncTime = time.Date(2024, time.September, 8, 12, 0, 0, 0, time.UTC)

type TestDB struct {
	DB    db.DB
	Clock *clock.Mock
}

// NewTestDB opens a sqlite store in a temp directory that is removed when
// the test finishes. The store is populated with TestPlayers.
func NewTestDB(t testing.TB) *TestDB {
	t.Helper()

	clock := clock.NewMock()
	clock.Set(SyncTime)

	path := filepath.Join(t.TempDir(), "players.db")
	d, err := db.New(context.Background(), "sqlite://"+path, clock)
	if err != nil {
		t.Fatalf("error opening test db: %v", err)
	}
	t.Cleanup(d.Close)

	if err := InsertTestPlayers(d); err != nil {
		t.Fatalf("error populating test db: %v", err)
	}

	return &TestDB{
		DB:    d,
		Clock: clock,
	}
}

func InsertTestPlayers(d db.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := d.SavePlayers(ctx, TestPlayers())
	return err
}
