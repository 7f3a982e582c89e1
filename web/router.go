package web

import (
	"time"

	"github.com/azrlmaster/sleeper-fan-helper/controller"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/unrolled/render"
)

// A full player sync downloads and stores every NFL player.
const adminTimeout = 5 * time.Minute

// requestTimeout bounds the requests that only read the local store.
var requestTimeout = 10 * time.Second

func getRouter(ctrl controller.C, render *render.Render, opts Options) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Group(func(r chi.Router) {
		// Set a timeout value on the request context (ctx), that will signal
		// through ctx.Done() that the request has timed out and further
		// processing should be stopped.
		r.Use(middleware.Timeout(requestTimeout))

		r.Get("/health", healthHandler(ctrl, render))
		r.Get("/api/players/{playerID}", getPlayerHandler(ctrl, render))
	})

	// A roster makes two sleeper calls per league, each bounded by the sleeper
	// client timeout, so the request as a whole has no deadline of its own.
	r.Get("/api/roster/{username}", rosterHandler(ctrl, render, opts))

	// The admin routes are only served when a password has been configured.
	if opts.AdminPassword != "" {
		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.BasicAuth("sleeper-fan-helper", map[string]string{opts.AdminUser: opts.AdminPassword}))
			r.Use(middleware.Timeout(adminTimeout))

			r.Post("/players", forceUpdatePlayers(ctrl, render))
		})
	}

	return r
}
