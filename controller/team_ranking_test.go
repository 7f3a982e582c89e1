package controller

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/azrlmaster/sleeper-fan-helper/db/mockdb"
	"github.com/azrlmaster/sleeper-fan-helper/model"
	"github.com/stretchr/testify/mock"
)

var (
	l1Starter = model.LeagueAppearance{LeagueID: "L1", LeagueName: "League One", Status: model.StatusStarter}
	l1Bench   = model.LeagueAppearance{LeagueID: "L1", LeagueName: "League One", Status: model.StatusBench}
	l2Starter = model.LeagueAppearance{LeagueID: "L2", LeagueName: "League Two", Status: model.StatusStarter}
	l2Bench   = model.LeagueAppearance{LeagueID: "L2", LeagueName: "League Two", Status: model.StatusBench}
)

func player(id string, team *model.NFLTeam) model.Player {
	return model.Player{ID: id, FullName: "Player " + id, Team: team}
}

func TestScoreTeams(t *testing.T) {
	type appearance struct {
		id string
		a  model.LeagueAppearance
	}

	tests := map[string]struct {
		roster   []appearance
		players  map[string]model.Player
		weights  model.RankingWeights
		expected []model.TeamScore
	}{
		"starter and bench on one team": {
			roster: []appearance{{"P1", l1Starter}, {"P2", l1Bench}},
			players: map[string]model.Player{
				"P1": player("P1", model.TEAM_DAL),
				"P2": player("P2", model.TEAM_DAL),
			},
			weights:  model.DefaultRankingWeights,
			expected: []model.TeamScore{{Team: "DAL", Score: 3.0, Starters: 1, Bench: 1}},
		},
		"starter in any league wins": {
			roster: []appearance{{"P1", l1Bench}, {"P1", l2Starter}},
			players: map[string]model.Player{
				"P1": player("P1", model.TEAM_SFO),
			},
			weights:  model.DefaultRankingWeights,
			expected: []model.TeamScore{{Team: "SF", Score: 2.0, Starters: 1, Bench: 0}},
		},
		"player counted once across leagues": {
			roster: []appearance{{"P1", l1Bench}, {"P1", l2Bench}},
			players: map[string]model.Player{
				"P1": player("P1", model.TEAM_KCC),
			},
			weights:  model.DefaultRankingWeights,
			expected: []model.TeamScore{{Team: "KC", Score: 1.0, Starters: 0, Bench: 1}},
		},
		"missing and teamless players skipped": {
			roster: []appearance{{"P1", l1Starter}, {"P2", l1Starter}, {"P3", l1Starter}, {"P4", l1Bench}},
			players: map[string]model.Player{
				"P1": player("P1", model.TEAM_SEA),
				"P2": player("P2", nil),
				"P3": player("P3", model.TEAM_FA),
			},
			weights:  model.DefaultRankingWeights,
			expected: []model.TeamScore{{Team: "SEA", Score: 2.0, Starters: 1, Bench: 0}},
		},
		"unknown team code still ranked": {
			roster: []appearance{{"P1", l1Starter}, {"P2", l1Bench}},
			players: map[string]model.Player{
				"P1": player("P1", model.ParseTeam("XYZ")),
				"P2": player("P2", model.TEAM_SEA),
			},
			weights: model.DefaultRankingWeights,
			expected: []model.TeamScore{
				{Team: "XYZ", Score: 2.0, Starters: 1, Bench: 0},
				{Team: "SEA", Score: 1.0, Starters: 0, Bench: 1},
			},
		},
		"sorted by score then team": {
			roster: []appearance{
				{"P1", l1Bench}, {"P2", l1Starter}, {"P3", l1Bench},
				{"P4", l1Starter}, {"P5", l2Starter}, {"P6", l2Bench},
			},
			players: map[string]model.Player{
				"P1": player("P1", model.TEAM_NYJ),
				"P2": player("P2", model.TEAM_SEA),
				"P3": player("P3", model.TEAM_NOS),
				"P4": player("P4", model.TEAM_DAL),
				"P5": player("P5", model.TEAM_PHI),
				"P6": player("P6", model.TEAM_PHI),
			},
			weights: model.DefaultRankingWeights,
			expected: []model.TeamScore{
				{Team: "PHI", Score: 3.0, Starters: 1, Bench: 1},
				{Team: "DAL", Score: 2.0, Starters: 1, Bench: 0},
				{Team: "SEA", Score: 2.0, Starters: 1, Bench: 0},
				{Team: "NO", Score: 1.0, Starters: 0, Bench: 1},
				{Team: "NYJ", Score: 1.0, Starters: 0, Bench: 1},
			},
		},
		"custom weights": {
			roster: []appearance{{"P1", l1Starter}, {"P2", l1Bench}, {"P3", l1Bench}},
			players: map[string]model.Player{
				"P1": player("P1", model.TEAM_GBP),
				"P2": player("P2", model.TEAM_GBP),
				"P3": player("P3", model.TEAM_DET),
			},
			weights: model.RankingWeights{Starter: 5, Bench: 0.5},
			expected: []model.TeamScore{
				{Team: "GB", Score: 5.5, Starters: 1, Bench: 1},
				{Team: "DET", Score: 0.5, Starters: 0, Bench: 1},
			},
		},
		"empty roster": {
			players:  map[string]model.Player{},
			weights:  model.DefaultRankingWeights,
			expected: []model.TeamScore{},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			roster := model.NewAggregatedRoster()
			for _, a := range tc.roster {
				roster.Add(a.id, a.a)
			}

			res := scoreTeams(roster, tc.players, tc.weights)
			if !reflect.DeepEqual(tc.expected, res) {
				t.Errorf("wrong ranking, expected: %+v, got: %+v", tc.expected, res)
			}

			// starters + bench can never be more than the distinct players on the roster
			for _, s := range res {
				if s.Starters+s.Bench > roster.Len() {
					t.Errorf("team %s has %d players counted, roster only has %d", s.Team, s.Starters+s.Bench, roster.Len())
				}
			}
			for i := 1; i < len(res); i++ {
				if res[i].Score > res[i-1].Score {
					t.Errorf("ranking not sorted at %d: %+v", i, res)
				}
			}
		})
	}
}

func TestRankTeams(t *testing.T) {
	t.Run("empty roster skips lookup", func(t *testing.T) {
		mockDB := &mockdb.DB{}
		ctrl := &controller{db: mockDB, weights: model.DefaultRankingWeights}

		res := ctrl.rankTeams(context.Background(), model.NewAggregatedRoster())
		if res == nil || len(res) != 0 {
			t.Errorf("expected an empty, non-nil ranking, got %v", res)
		}
		mockDB.AssertNotCalled(t, "GetPlayers", mock.Anything, mock.Anything)
	})

	t.Run("lookup error gives empty ranking", func(t *testing.T) {
		mockDB := &mockdb.DB{}
		mockDB.On("GetPlayers", mock.Anything, []string{"P1"}).Return(nil, errors.New("db is down"))
		ctrl := &controller{db: mockDB, weights: model.DefaultRankingWeights}

		roster := model.NewAggregatedRoster()
		roster.Add("P1", l1Starter)

		res := ctrl.rankTeams(context.Background(), roster)
		if res == nil || len(res) != 0 {
			t.Errorf("expected an empty, non-nil ranking, got %v", res)
		}
		mockDB.AssertExpectations(t)
	})

	t.Run("single batched lookup", func(t *testing.T) {
		mockDB := &mockdb.DB{}
		mockDB.On("GetPlayers", mock.Anything, []string{"P1", "P2"}).Return(map[string]model.Player{
			"P1": player("P1", model.TEAM_DAL),
			"P2": player("P2", model.TEAM_DAL),
		}, nil).Once()
		ctrl := &controller{db: mockDB, weights: model.DefaultRankingWeights}

		roster := model.NewAggregatedRoster()
		roster.Add("P1", l1Starter)
		roster.Add("P2", l1Bench)
		roster.Add("P1", l2Bench)

		res := ctrl.rankTeams(context.Background(), roster)
		expected := []model.TeamScore{{Team: "DAL", Score: 3.0, Starters: 1, Bench: 1}}
		if !reflect.DeepEqual(expected, res) {
			t.Errorf("expected %+v, got %+v", expected, res)
		}
		mockDB.AssertExpectations(t)
	})
}
