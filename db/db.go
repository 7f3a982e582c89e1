package db

import (
	"context"
	"embed"
	"errors"
	"strings"

	"github.com/azrlmaster/sleeper-fan-helper/model"
	"github.com/itbasis/go-clock"
)

var (
	ErrPlayerNotFound error = errors.New("player not found")
)

//go:embed schema
var schema embed.FS

// DB is the local copy of the sleeper player list. It is written by the
// player sync and read when building roster reports.
type DB interface {
	GetPlayer(ctx context.Context, id string) (*model.Player, error)
	// Look up many players with a single query. Players that are not found are
	// left out of the result, it is not an error.
	GetPlayers(ctx context.Context, ids []string) (map[string]model.Player, error)
	// Insert or replace all of the players in a single transaction. The
	// last updated time of every player is set to the current time. Returns
	// the number of players saved.
	SavePlayers(ctx context.Context, players []model.Player) (int, error)
	Close()
}

const sqliteScheme = "sqlite://"

// New connects to the database in connString. Connection strings starting with
// sqlite:// open a SQLite file, anything else is handed to postgres.
func New(ctx context.Context, connString string, clock clock.Clock) (DB, error) {
	if path, ok := strings.CutPrefix(connString, sqliteScheme); ok {
		return newSQLite(ctx, path, clock)
	}
	return newPostgres(ctx, connString, clock)
}

func schemaFor(name string) (string, error) {
	b, err := schema.ReadFile("schema/" + name)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
