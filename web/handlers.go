package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/azrlmaster/sleeper-fan-helper/controller"
	"github.com/azrlmaster/sleeper-fan-helper/db"
	"github.com/azrlmaster/sleeper-fan-helper/model"
	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"
	"github.com/unrolled/render"
)

const leaguesUnavailableMessage = "Failed to fetch leagues for user. The Sleeper API may be down."

type errorResponse struct {
	Error string `json:"error"`
}

type statusResponse struct {
	Status string `json:"status"`
}

type playerResponse struct {
	PlayerID    string         `json:"player_id"`
	FullName    string         `json:"full_name"`
	FirstName   string         `json:"first_name,omitempty"`
	LastName    string         `json:"last_name,omitempty"`
	Team        string         `json:"team,omitempty"`
	Position    model.Position `json:"position"`
	YearsExp    *int           `json:"years_exp"`
	Status      string         `json:"status,omitempty"`
	Active      bool           `json:"active"`
	LastUpdated time.Time      `json:"last_updated"`
}

func newPlayerResponse(p *model.Player) playerResponse {
	return playerResponse{
		PlayerID:    p.ID,
		FullName:    p.Name(),
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Team:        p.TeamCode(),
		Position:    p.Position,
		YearsExp:    p.YearsExp,
		Status:      p.Status,
		Active:      p.Active,
		LastUpdated: p.Updated.UTC(),
	}
}

func healthHandler(_ controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, http.StatusOK, statusResponse{Status: "ok"})
	}
}

func rosterHandler(ctrl controller.C, render *render.Render, opts Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := chi.URLParam(r, "username")

		season := r.URL.Query().Get("season")
		if season == "" {
			season = opts.DefaultSeason
		}

		week := opts.DefaultWeek
		if q := r.URL.Query().Get("week"); q != "" {
			var err error
			week, err = strconv.Atoi(q)
			if err != nil {
				render.JSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("week must be a number, got '%s'", q)})
				return
			}
		}

		report, err := ctrl.GetRosterReport(r.Context(), username, season, week)
		if err != nil {
			switch {
			case errors.Is(err, controller.ErrInvalidRequest):
				render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			case errors.Is(err, controller.ErrUserNotFound):
				render.JSON(w, http.StatusNotFound, errorResponse{Error: fmt.Sprintf("User '%s' not found", username)})
			case errors.Is(err, controller.ErrLeaguesUnavailable):
				log.WithError(err).WithField("username", username).Warn("error loading leagues")
				render.JSON(w, http.StatusBadGateway, errorResponse{Error: leaguesUnavailableMessage})
			default:
				log.WithError(err).WithField("username", username).Error("error building roster report")
				render.JSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
			}
			return
		}

		render.JSON(w, http.StatusOK, report)
	}
}

func getPlayerHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := chi.URLParam(r, "playerID")
		p, err := ctrl.GetPlayer(r.Context(), playerID)
		if err != nil {
			if errors.Is(err, db.ErrPlayerNotFound) {
				render.JSON(w, http.StatusNotFound, errorResponse{Error: fmt.Sprintf("Player '%s' not found", playerID)})
			} else {
				render.JSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
			}
			return
		}

		render.JSON(w, http.StatusOK, newPlayerResponse(p))
	}
}

func forceUpdatePlayers(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ctrl.UpdatePlayers(r.Context()); err != nil {
			render.JSON(w, http.StatusInternalServerError, errorResponse{Error: fmt.Sprintf("error updating players: %v", err)})
			return
		}

		render.JSON(w, http.StatusOK, statusResponse{Status: "update players completed successfully"})
	}
}
