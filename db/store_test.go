package db

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync/atomic"
	"testing"
	"time"

	"github.com/azrlmaster/sleeper-fan-helper/model"
	"github.com/itbasis/go-clock"
)

// a counter to generate new player ids for each test. To help keep them separated
// when the tests share a database.
var idCtr = int32(0)

type storeFactory func(t *testing.T, clock clock.Clock) DB

// runStoreTests runs the same behaviour checks against every DB implementation.
func runStoreTests(t *testing.T, newStore storeFactory) {
	t.Run("save and load", func(t *testing.T) {
		testSaveAndLoad(t, newStore)
	})
	t.Run("batch lookup", func(t *testing.T) {
		testGetPlayers(t, newStore)
	})
	t.Run("resync replaces", func(t *testing.T) {
		testResync(t, newStore)
	})
	t.Run("not found", func(t *testing.T) {
		testNotFound(t, newStore)
	})
}

func testSaveAndLoad(t *testing.T, newStore storeFactory) {
	ctx := context.Background()
	clock := clock.NewMock()
	now := time.Date(2024, time.August, 12, 10, 30, 0, 0, time.UTC)
	clock.Set(now)
	store := newStore(t, clock)

	players := []model.Player{
		getPlayer(),
		getPlayerWithTeam("Free", "Agent", nil),
		getDefense(model.TEAM_SFO),
		// a code the team table does not know, it is stored as is
		getPlayerWithTeam("Expansion", "Player", model.ParseTeam("XYZ")),
	}

	n, err := store.SavePlayers(ctx, players)
	assertFatalf(t, err == nil, "error saving players: %v", err)
	assertEquals(t, "saved", len(players), n)

	for _, p := range players {
		res, err := store.GetPlayer(ctx, p.ID)
		assertFatalf(t, err == nil, "error retrieving player %s: %v", p.ID, err)

		// Make sure that after saving and retrieving the player, all the fields
		// are the same.
		assertEquals(t, "ID", p.ID, res.ID)
		assertEquals(t, "FullName", p.FullName, res.FullName)
		assertEquals(t, "FirstName", p.FirstName, res.FirstName)
		assertEquals(t, "LastName", p.LastName, res.LastName)
		assertEquals(t, "Position", p.Position, res.Position)
		assertEquals(t, "Team", p.Team, res.Team)
		assertEquals(t, "YearsExp", p.YearsExp, res.YearsExp)
		assertEquals(t, "Status", p.Status, res.Status)
		assertEquals(t, "Active", p.Active, res.Active)
		assertTrue(t, "Updated", now.Equal(res.Updated))
	}
}

func testGetPlayers(t *testing.T, newStore storeFactory) {
	ctx := context.Background()
	store := newStore(t, clock.New())

	p1 := getPlayer()
	p2 := getPlayerWithTeam("Second", "Player", model.TEAM_KCC)
	_, err := store.SavePlayers(ctx, []model.Player{p1, p2})
	assertFatalf(t, err == nil, "error saving players: %v", err)

	missing := nextID()
	res, err := store.GetPlayers(ctx, []string{p1.ID, missing, p2.ID})
	assertFatalf(t, err == nil, "error looking up players: %v", err)
	assertEquals(t, "found", 2, len(res))

	_, found := res[missing]
	assertTrue(t, "missing player left out", !found)
	assertEquals(t, "p1 name", p1.FullName, res[p1.ID].FullName)
	assertEquals(t, "p2 team", model.TEAM_KCC, res[p2.ID].Team)

	res, err = store.GetPlayers(ctx, nil)
	assertFatalf(t, err == nil, "error looking up no players: %v", err)
	assertEquals(t, "empty lookup", 0, len(res))
}

func testResync(t *testing.T, newStore storeFactory) {
	ctx := context.Background()
	clock := clock.NewMock()
	first := time.Date(2024, time.August, 12, 10, 30, 0, 0, time.UTC)
	clock.Set(first)
	store := newStore(t, clock)

	p := getPlayer()
	_, err := store.SavePlayers(ctx, []model.Player{p})
	assertFatalf(t, err == nil, "error saving player: %v", err)

	clock.Add(24 * time.Hour)
	p.Team = model.TEAM_CHI
	p.Status = "Injured Reserve"
	p.YearsExp = yearsExp(*p.YearsExp + 1)
	_, err = store.SavePlayers(ctx, []model.Player{p})
	assertFatalf(t, err == nil, "error re-saving player: %v", err)

	res, err := store.GetPlayer(ctx, p.ID)
	assertFatalf(t, err == nil, "error retrieving player: %v", err)
	assertEquals(t, "Team", model.TEAM_CHI, res.Team)
	assertEquals(t, "Status", "Injured Reserve", res.Status)
	assertEquals(t, "YearsExp", p.YearsExp, res.YearsExp)
	assertTrue(t, "Updated", first.Add(24*time.Hour).Equal(res.Updated))
}

func testNotFound(t *testing.T, newStore storeFactory) {
	store := newStore(t, clock.New())

	_, err := store.GetPlayer(context.Background(), nextID())
	if !errors.Is(err, ErrPlayerNotFound) {
		t.Errorf("expected ErrPlayerNotFound, got %v", err)
	}
}

func nextID() string {
	return fmt.Sprintf("%d", atomic.AddInt32(&idCtr, 1))
}

func getPlayer() model.Player {
	return model.Player{
		ID:        nextID(),
		FullName:  "Justin Jefferson",
		FirstName: "Justin",
		LastName:  "Jefferson",
		Position:  model.POS_WR,
		Team:      model.TEAM_MIN,
		YearsExp:  yearsExp(4),
		Status:    "Active",
		Active:    true,
	}
}

func getPlayerWithTeam(first, last string, team *model.NFLTeam) model.Player {
	p := getPlayer()
	p.FirstName = first
	p.LastName = last
	p.FullName = first + " " + last
	p.Team = team
	p.Status = ""
	p.Active = false
	return p
}

func getDefense(team *model.NFLTeam) model.Player {
	return model.Player{
		ID:        team.Code() + nextID(),
		FirstName: team.Friendly(),
		Position:  model.POS_DEF,
		Team:      team,
		Active:    true,
	}
}

func assertFatalf(t *testing.T, c bool, f string, args ...any) {
	t.Helper()
	if !c {
		t.Fatalf(f, args...)
	}
}

func assertEquals(t *testing.T, field string, expected, actual any) {
	t.Helper()
	if !reflect.DeepEqual(expected, actual) {
		t.Errorf("%s - expected: '%v', got: '%v'", field, expected, actual)
	}
}

func assertTrue(t *testing.T, field string, cond bool) {
	t.Helper()
	if !cond {
		t.Errorf("%s - expected to be true but it was false", field)
	}
}

func errFromPanic(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("%v", r)
}

func yearsExp(n int) *int {
	return &n
}
