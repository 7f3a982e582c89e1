package mockcontroller

import (
	"context"

	"github.com/azrlmaster/sleeper-fan-helper/model"
	"github.com/stretchr/testify/mock"
)

type C struct {
	mock.Mock
}

func (c *C) GetRosterReport(ctx context.Context, username, season string, week int) (*model.RosterReport, error) {
	args := c.Called(ctx, username, season, week)

	var r *model.RosterReport
	if args.Get(0) != nil {
		r = args.Get(0).(*model.RosterReport)
	}

	return r, args.Error(1)
}

func (c *C) FindUser(ctx context.Context, username string) (*model.User, error) {
	args := c.Called(ctx, username)

	var u *model.User
	if args.Get(0) != nil {
		u = args.Get(0).(*model.User)
	}

	return u, args.Error(1)
}

func (c *C) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	args := c.Called(ctx, id)

	var p *model.Player
	if args.Get(0) != nil {
		p = args.Get(0).(*model.Player)
	}

	return p, args.Error(1)
}

func (c *C) UpdatePlayers(ctx context.Context) error {
	args := c.Called(ctx)
	return args.Error(0)
}
