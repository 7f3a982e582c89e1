package testutils

import (
	"embed"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"
)

//go:embed sleeperdata
var sleeperdata embed.FS

const (
	// SleeperUserID is the sleeper id of the "sleeperuser" account.
	SleeperUserID = "12345678"
	// EmptyUserID belongs to "emptyuser", who is in no leagues.
	EmptyUserID = "87654321"
	// BrokenUserID belongs to "brokenuser", whose leagues can never be loaded.
	BrokenUserID = "55555555"

	// Leagues returned for sleeperuser in the 2024 season.
	LeagueDynasty   = "1001"
	LeagueBroken    = "1002" // rosters endpoint always fails
	LeagueByeWeek   = "1003" // no matchups for any week
	LeagueSpectator = "1004" // sleeperuser has no roster here
)

var users = map[string]string{
	"sleeperuser": "sleeperuser.json",
	"emptyuser":   "emptyuser.json",
	"brokenuser":  "brokenuser.json",
}

type FakeSleeperServer struct {
	s *httptest.Server
}

func NewFakeSleeperServer() *FakeSleeperServer {
	return NewSlowFakeSleeperServer(0)
}

// NewSlowFakeSleeperServer waits for delay before answering every request,
// like sleeper does on a bad day.
func NewSlowFakeSleeperServer(delay time.Duration) *FakeSleeperServer {
	r := chi.NewRouter()
	if delay > 0 {
		r.Use(delayed(delay))
	}
	r.Route("/v1", func(r chi.Router) {
		r.Get("/players/nfl", nflPlayersHandler)

		r.Route("/user", func(r chi.Router) {
			r.Get("/{userID}/leagues/nfl/{year}", userLeaguesHandler)
			r.Get("/{username}", sleeperUserHandler)
		})

		r.Route("/league/{leagueID}", func(r chi.Router) {
			r.Get("/rosters", leagueRostersHandler)
			r.Get("/matchups/{week}", leagueMatchupsHandler)
		})
	})

	return &FakeSleeperServer{
		s: httptest.NewServer(r),
	}
}

func delayed(delay time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-time.After(delay):
				next.ServeHTTP(w, r)
			case <-r.Context().Done():
			}
		})
	}
}

func (f *FakeSleeperServer) Close() {
	f.s.Close()
}

func (f *FakeSleeperServer) URL() string {
	return f.s.URL
}

func nflPlayersHandler(w http.ResponseWriter, r *http.Request) {
	serveFile(w, "players.json")
}

func userLeaguesHandler(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	year := chi.URLParam(r, "year")

	switch {
	case userID == SleeperUserID && year == "2024":
		serveFile(w, "user_leagues.json")
	case userID == BrokenUserID:
		w.WriteHeader(http.StatusInternalServerError)
	default:
		writeBody(w, "[]")
	}
}

func sleeperUserHandler(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if file, ok := users[username]; ok {
		serveFile(w, file)
	} else {
		// requesting a user that doesn't exist seems to return a 200 with "null" as the response body as of 2024-08-12
		writeBody(w, "null")
	}
}

func leagueRostersHandler(w http.ResponseWriter, r *http.Request) {
	leagueID := chi.URLParam(r, "leagueID")
	switch leagueID {
	case LeagueDynasty, LeagueByeWeek, LeagueSpectator:
		serveFile(w, fmt.Sprintf("rosters_%s.json", leagueID))
	case LeagueBroken:
		w.WriteHeader(http.StatusServiceUnavailable)
	default:
		// unknown leagues come back as null, same as unknown users
		writeBody(w, "null")
	}
}

func leagueMatchupsHandler(w http.ResponseWriter, r *http.Request) {
	leagueID := chi.URLParam(r, "leagueID")
	week := chi.URLParam(r, "week")
	name := fmt.Sprintf("matchups_%s_%s.json", leagueID, week)
	if _, err := sleeperdata.ReadFile("sleeperdata/" + name); err != nil {
		writeBody(w, "[]")
		return
	}
	serveFile(w, name)
}

func serveFile(w http.ResponseWriter, name string) {
	b, err := sleeperdata.ReadFile(fmt.Sprintf("sleeperdata/%s", name))
	if err != nil {
		log.Errorf("error reading sleeperdata/%s: %v", name, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

func writeBody(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(body))
}
