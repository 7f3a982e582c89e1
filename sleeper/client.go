package sleeper

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/azrlmaster/sleeper-fan-helper/model"
	log "github.com/sirupsen/logrus"
)

const (
	SleeperURL     = "https://api.sleeper.app"
	DefaultTimeout = 10 * time.Second
)

var (
	// ErrUnavailable is wrapped by every error the client returns. Connection
	// errors, timeouts, non-200 responses and bodies that cannot be parsed are
	// all treated the same way.
	ErrUnavailable = errors.New("sleeper data unavailable")
	// ErrUserNotFound is returned, along with ErrUnavailable, when sleeper has no
	// user for the username.
	ErrUserNotFound = errors.New("user not found")
)

type Client interface {
	// Look up the stable sleeper user id for a username.
	GetUserID(ctx context.Context, username string) (string, error)
	GetLeaguesForUser(ctx context.Context, userID, season string) ([]model.League, error)
	GetRosters(ctx context.Context, leagueID string) ([]model.Roster, error)
	GetMatchups(ctx context.Context, leagueID string, week int) ([]model.Matchup, error)
	// Load every NFL player that sleeper knows about. This is a large (~5MB) response.
	LoadPlayers(ctx context.Context) ([]model.Player, error)
}

type client struct {
	url        string
	httpClient *http.Client
}

func New(baseURL string, timeout time.Duration) (Client, error) {
	if baseURL == "" {
		baseURL = SleeperURL
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("error parsing sleeper url: %w", err)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	c := &client{
		url: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
	return c, nil
}

func NewForTest(url string) Client {
	c, _ := New(url, 5*time.Second)
	return c
}

func (c *client) GetUserID(ctx context.Context, username string) (string, error) {
	var user sleeperUser
	if err := c.get(ctx, &user, "/v1/user/%s", url.PathEscape(username)); err != nil {
		return "", err
	}
	// sleeper responds with a 200 and a body of "null" for unknown users.
	if user.UserID == "" {
		return "", fmt.Errorf("%w: %w: %s", ErrUnavailable, ErrUserNotFound, username)
	}
	return user.UserID, nil
}

func (c *client) GetLeaguesForUser(ctx context.Context, userID, season string) ([]model.League, error) {
	var leagues []sleeperLeague
	if err := c.get(ctx, &leagues, "/v1/user/%s/leagues/nfl/%s", url.PathEscape(userID), url.PathEscape(season)); err != nil {
		return nil, err
	}
	if leagues == nil {
		return nil, fmt.Errorf("%w: no league list returned for user %s", ErrUnavailable, userID)
	}

	result := make([]model.League, 0, len(leagues))
	for _, l := range leagues {
		result = append(result, l.toLeague())
	}
	return result, nil
}

func (c *client) GetRosters(ctx context.Context, leagueID string) ([]model.Roster, error) {
	var rosters []sleeperRoster
	if err := c.get(ctx, &rosters, "/v1/league/%s/rosters", url.PathEscape(leagueID)); err != nil {
		return nil, err
	}
	if rosters == nil {
		return nil, fmt.Errorf("%w: no rosters returned for league %s", ErrUnavailable, leagueID)
	}

	result := make([]model.Roster, 0, len(rosters))
	for _, r := range rosters {
		result = append(result, r.toRoster())
	}
	return result, nil
}

func (c *client) GetMatchups(ctx context.Context, leagueID string, week int) ([]model.Matchup, error) {
	var matchups []sleeperMatchup
	if err := c.get(ctx, &matchups, "/v1/league/%s/matchups/%d", url.PathEscape(leagueID), week); err != nil {
		return nil, err
	}

	if matchups == nil {
		return nil, fmt.Errorf("%w: no matchups returned for league %s week %d", ErrUnavailable, leagueID, week)
	}

	// An empty list is fine, the league just doesn't have a schedule for the week.
	result := make([]model.Matchup, 0, len(matchups))
	for _, m := range matchups {
		result = append(result, m.toMatchup(week))
	}
	return result, nil
}

func (c *client) LoadPlayers(ctx context.Context) ([]model.Player, error) {
	var parsed map[string]sleeperPlayer
	if err := c.get(ctx, &parsed, "/v1/players/nfl"); err != nil {
		return nil, err
	}
	if len(parsed) == 0 {
		return nil, fmt.Errorf("%w: no players returned", ErrUnavailable)
	}

	// Convert the players into model.Players
	result := make([]model.Player, 0, len(parsed))
	for id, p := range parsed {
		if p.isInvalid() {
			continue
		}
		if p.ID == "" {
			p.ID = id
		}
		result = append(result, *p.toPlayer())
	}

	return result, nil
}

// get sends a GET request for the path and decodes the JSON response into target.
// All failures are wrapped with ErrUnavailable.
func (c *client) get(ctx context.Context, target any, format string, args ...any) error {
	u := c.url + fmt.Sprintf(format, args...)

	err := c.doGet(ctx, u, target)
	if err != nil {
		log.WithError(err).WithField("url", u).Debug("sleeper request failed")
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return nil
}

func (c *client) doGet(ctx context.Context, u string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("error creating http request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error sending http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("error parsing response from sleeper: %w", err)
	}
	return nil
}
