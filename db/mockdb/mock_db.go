package mockdb

import (
	"context"

	"github.com/azrlmaster/sleeper-fan-helper/model"
	"github.com/stretchr/testify/mock"
)

type DB struct {
	mock.Mock
}

func (db *DB) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	args := db.Called(ctx, id)

	var p *model.Player
	if args.Get(0) != nil {
		p = args.Get(0).(*model.Player)
	}

	return p, args.Error(1)
}

func (db *DB) GetPlayers(ctx context.Context, ids []string) (map[string]model.Player, error) {
	args := db.Called(ctx, ids)

	var r map[string]model.Player
	if args.Get(0) != nil {
		r = args.Get(0).(map[string]model.Player)
	}
	return r, args.Error(1)
}

func (db *DB) SavePlayers(ctx context.Context, players []model.Player) (int, error) {
	args := db.Called(ctx, players)
	return args.Int(0), args.Error(1)
}

func (db *DB) Close() {
	db.Called()
}
