package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/azrlmaster/sleeper-fan-helper/model"
	"github.com/itbasis/go-clock"
	log "github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

const (
	sqliteTimeFormat = time.RFC3339Nano

	// Keeps each lookup well under the sqlite bound parameter limit.
	sqliteLookupChunk = 500
)

type sqliteDB struct {
	db    *sql.DB
	clock clock.Clock
}

func newSQLite(ctx context.Context, path string, clock clock.Clock) (DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("sqlite path is required")
	}

	cleanPath := filepath.Clean(path)
	if dir := filepath.Dir(cleanPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("error creating database directory: %w", err)
		}
	}

	dsn := cleanPath + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("error opening sqlite db: %w", err)
	}
	// sqlite allows a single writer
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("error connecting to sqlite db: %w", err)
	}

	ddl, err := schemaFor("sqlite.sql")
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("error reading sqlite schema: %w", err)
	}
	if _, err := sqlDB.ExecContext(ctx, ddl); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("error applying sqlite schema: %w", err)
	}

	return &sqliteDB{db: sqlDB, clock: clock}, nil
}

func (db *sqliteDB) Close() {
	if err := db.db.Close(); err != nil {
		log.Warnf("error closing sqlite db: %v", err)
	}
}

func (db *sqliteDB) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	const query = `SELECT ` + playerColumns + ` FROM players WHERE player_id = ?`

	p, err := scanSQLitePlayer(db.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("error scanning player %s: %w", id, err)
	}
	return p, nil
}

func (db *sqliteDB) GetPlayers(ctx context.Context, ids []string) (map[string]model.Player, error) {
	results := make(map[string]model.Player, len(ids))

	for start := 0; start < len(ids); start += sqliteLookupChunk {
		end := min(start+sqliteLookupChunk, len(ids))
		if err := db.getPlayersChunk(ctx, ids[start:end], results); err != nil {
			return nil, err
		}
	}

	return results, nil
}

func (db *sqliteDB) getPlayersChunk(ctx context.Context, ids []string, results map[string]model.Player) error {
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	query := `SELECT ` + playerColumns + ` FROM players WHERE player_id IN (` + placeholders + `)`

	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := db.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error running player lookup query: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		p, err := scanSQLitePlayer(rows)
		if err != nil {
			return fmt.Errorf("error scanning player: %w", err)
		}
		results[p.ID] = *p
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error reading players: %w", err)
	}
	return nil
}

func (db *sqliteDB) SavePlayers(ctx context.Context, players []model.Player) (int, error) {
	const query = `INSERT OR REPLACE INTO players (` + playerColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	tx, err := db.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("error preparing player insert: %w", err)
	}
	defer stmt.Close()

	now := db.clock.Now().UTC().Format(sqliteTimeFormat)
	for i := range players {
		p := &players[i]
		var team sql.NullString
		if !p.Team.IsFreeAgent() {
			team = nullString(p.Team.Code())
		}
		_, err := stmt.ExecContext(ctx,
			p.ID,
			nullString(p.FullName),
			nullString(p.FirstName),
			nullString(p.LastName),
			team,
			string(p.Position),
			nullInt(p.YearsExp),
			nullString(p.Status),
			p.Active,
			now)
		if err != nil {
			return 0, fmt.Errorf("error saving player %s: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("error committing players: %w", err)
	}
	return len(players), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSQLitePlayer(row rowScanner) (*model.Player, error) {
	var result model.Player
	var fullName, firstName, lastName, team, status sql.NullString
	var yearsExp sql.NullInt64
	var pos, updated string
	err := row.Scan(
		&result.ID,
		&fullName,
		&firstName,
		&lastName,
		&team,
		&pos,
		&yearsExp,
		&status,
		&result.Active,
		&updated)
	if err != nil {
		return nil, err
	}

	result.FullName = valueOrEmpty(fullName)
	result.FirstName = valueOrEmpty(firstName)
	result.LastName = valueOrEmpty(lastName)
	result.Status = valueOrEmpty(status)
	result.Position = model.ParsePosition(pos)
	if yearsExp.Valid {
		y := int(yearsExp.Int64)
		result.YearsExp = &y
	}
	if team.Valid {
		result.Team = model.ParseTeam(team.String)
	}

	t, err := time.Parse(sqliteTimeFormat, updated)
	if err != nil {
		return nil, fmt.Errorf("error parsing last_updated %q: %w", updated, err)
	}
	result.Updated = t

	return &result, nil
}
