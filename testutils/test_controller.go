package testutils

import (
	"testing"
	"time"

	"github.com/azrlmaster/sleeper-fan-helper/db"
	"github.com/itbasis/go-clock"
)

// TestController bundles the dependencies a real controller needs for an
// end to end test: a fake sleeper api, a populated store and a fixed clock.
type TestController struct {
	Clock       *clock.Mock
	DB          db.DB
	fakeSleeper *FakeSleeperServer
}

func (c *TestController) Close() {
	c.fakeSleeper.Close()
}

func (c *TestController) SleeperURL() string {
	return c.fakeSleeper.URL()
}

func NewTestController(t testing.TB) *TestController {
	t.Helper()
	return NewSlowTestController(t, 0)
}

// NewSlowTestController is NewTestController with a fake sleeper api that
// takes delay to answer each request.
func NewSlowTestController(t testing.TB, delay time.Duration) *TestController {
	t.Helper()

	testDB := NewTestDB(t)
	c := &TestController{
		Clock:       testDB.Clock,
		DB:          testDB.DB,
		fakeSleeper: NewSlowFakeSleeperServer(delay),
	}
	t.Cleanup(c.Close)
	return c
}
