package db

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/azrlmaster/sleeper-fan-helper/model"
	"github.com/itbasis/go-clock"
)

func newSQLiteStore(t *testing.T, clock clock.Clock) DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "players.db")
	store, err := New(context.Background(), sqliteScheme+path, clock)
	if err != nil {
		t.Fatalf("error opening sqlite store: %v", err)
	}
	t.Cleanup(store.Close)
	return store
}

func TestSQLite(t *testing.T) {
	runStoreTests(t, newSQLiteStore)
}

func TestSQLite_createsDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "instance", "nested", "sleeper.db")

	store, err := New(context.Background(), sqliteScheme+path, clock.New())
	if err != nil {
		t.Fatalf("error opening sqlite store: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected database file at %s: %v", path, err)
	}
}

func TestSQLite_reopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "players.db")

	store, err := New(ctx, sqliteScheme+path, clock.New())
	assertFatalf(t, err == nil, "error opening sqlite store: %v", err)
	p := getPlayer()
	_, err = store.SavePlayers(ctx, []model.Player{p})
	assertFatalf(t, err == nil, "error saving player: %v", err)
	store.Close()

	// Opening an existing file must not wipe the players table.
	store, err = New(ctx, sqliteScheme+path, clock.New())
	assertFatalf(t, err == nil, "error reopening sqlite store: %v", err)
	defer store.Close()

	res, err := store.GetPlayer(ctx, p.ID)
	assertFatalf(t, err == nil, "error retrieving player after reopen: %v", err)
	assertEquals(t, "FullName", p.FullName, res.FullName)
}

func TestSQLite_largeLookup(t *testing.T) {
	ctx := context.Background()
	store := newSQLiteStore(t, clock.New())

	players := make([]model.Player, 0, 1200)
	ids := make([]string, 0, 1200)
	for i := 0; i < 1200; i++ {
		p := getPlayer()
		players = append(players, p)
		ids = append(ids, p.ID)
	}
	_, err := store.SavePlayers(ctx, players)
	assertFatalf(t, err == nil, "error saving players: %v", err)

	res, err := store.GetPlayers(ctx, ids)
	assertFatalf(t, err == nil, "error looking up players: %v", err)
	assertEquals(t, "found", len(ids), len(res))
}

func TestNew_emptySQLitePath(t *testing.T) {
	if _, err := New(context.Background(), sqliteScheme, clock.New()); err == nil {
		t.Errorf("expected an error for an empty sqlite path")
	}
}
