package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/azrlmaster/sleeper-fan-helper/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const playerColumns = `player_id, full_name, first_name, last_name, team, position, years_exp, status, active, last_updated`

func (db *postgresDB) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	const query = `SELECT ` + playerColumns + ` FROM players WHERE player_id=@id`

	args := pgx.NamedArgs{
		"id": id,
	}
	p, err := scanPlayer(db.pool.QueryRow(ctx, query, args))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("error scanning player %s: %w", id, err)
	}
	return p, nil
}

func (db *postgresDB) GetPlayers(ctx context.Context, ids []string) (map[string]model.Player, error) {
	const query = `SELECT ` + playerColumns + ` FROM players WHERE player_id = ANY(@ids)`

	results := make(map[string]model.Player, len(ids))
	if len(ids) == 0 {
		return results, nil
	}

	args := pgx.NamedArgs{
		"ids": ids,
	}
	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("error running player lookup query: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning player: %w", err)
		}
		results[p.ID] = *p
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading players: %w", err)
	}

	return results, nil
}

func (db *postgresDB) SavePlayers(ctx context.Context, players []model.Player) (int, error) {
	const query = `INSERT INTO players (` + playerColumns + `)
		VALUES (@id, @fullName, @firstName, @lastName, @team, @position, @yearsExp, @status, @active, @updated)
		ON CONFLICT (player_id) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			team = EXCLUDED.team,
			position = EXCLUDED.position,
			years_exp = EXCLUDED.years_exp,
			status = EXCLUDED.status,
			active = EXCLUDED.active,
			last_updated = EXCLUDED.last_updated`

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	now := db.clock.Now().UTC()
	batch := &pgx.Batch{}
	for i := range players {
		batch.Queue(query, namedArgsForPlayer(&players[i], now))
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return 0, fmt.Errorf("error saving players: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("error committing players: %w", err)
	}

	return len(players), nil
}

func scanPlayer(row pgx.Row) (*model.Player, error) {
	var result model.Player
	var pos DBPosition
	var team DBNFLTeam
	var fullName, firstName, lastName, status sql.NullString
	var yearsExp pgtype.Int4
	var updated pgtype.Timestamptz
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
	result.Position = pos.position
	result.Team = team.team
	if yearsExp.Valid {
		y := int(yearsExp.Int32)
		result.YearsExp = &y
	}
	result.Updated = updated.Time

	return &result, nil
}

func namedArgsForPlayer(p *model.Player, now time.Time) pgx.NamedArgs {
	return pgx.NamedArgs{
		"id":        p.ID,
		"fullName":  nullString(p.FullName),
		"firstName": nullString(p.FirstName),
		"lastName":  nullString(p.LastName),
		"team":      &DBNFLTeam{team: p.Team},
		"position":  &DBPosition{position: p.Position},
		"yearsExp":  nullInt(p.YearsExp),
		"status":    nullString(p.Status),
		"active":    p.Active,
		"updated":   now,
	}
}

func valueOrEmpty(v sql.NullString) string {
	if v.Valid {
		return v.String
	}
	return ""
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullInt(i *int) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*i), Valid: true}
}

// DBPosition maps a model.Position to and from a text column.
type DBPosition struct {
	position model.Position
}

func (p *DBPosition) ScanText(v pgtype.Text) error {
	p.position = model.ParsePosition(v.String)
	return nil
}

func (p *DBPosition) TextValue() (pgtype.Text, error) {
	return pgtype.Text{
		String: string(p.position),
		Valid:  true,
	}, nil
}

// DBNFLTeam stores the sleeper code of a team. Players without a team are
// stored as NULL.
type DBNFLTeam struct {
	team *model.NFLTeam
}

func (t *DBNFLTeam) ScanText(v pgtype.Text) error {
	if !v.Valid {
		t.team = nil
		return nil
	}
	t.team = model.ParseTeam(v.String)
	return nil
}

func (t *DBNFLTeam) TextValue() (pgtype.Text, error) {
	if t.team.IsFreeAgent() {
		return pgtype.Text{}, nil
	}
	return pgtype.Text{
		String: t.team.Code(),
		Valid:  true,
	}, nil
}
