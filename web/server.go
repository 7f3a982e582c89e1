package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/azrlmaster/sleeper-fan-helper/controller"
	log "github.com/sirupsen/logrus"
	"github.com/unrolled/render"
)

// Options holds the request defaults and credentials the web layer needs.
type Options struct {
	// Used when a roster request has no season or week query parameter.
	DefaultSeason string
	DefaultWeek   int

	AdminUser     string
	AdminPassword string
}

type Server struct {
	server *http.Server
}

func NewServer(port int, ctrl controller.C, opts Options) (*Server, error) {
	if opts.DefaultSeason == "" {
		return nil, errors.New("a default season is required")
	}
	if opts.DefaultWeek < 1 {
		return nil, fmt.Errorf("default week must be at least 1, got %d", opts.DefaultWeek)
	}

	render := newRender()
	router := getRouter(ctrl, render, opts)

	s := &Server{
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
	return s, nil
}

func (s *Server) ListenAndServe(shutdown chan bool, wg *sync.WaitGroup) {
	go func() {
		defer wg.Done()

		// Wait for the shutdown signal and safely close the server.
		<-shutdown

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.server.Shutdown(ctx); err != nil {
			log.Fatalf("fatal error shutting down server: %v", err)
		}
	}()

	log.Infof("web server is listening on %s", s.server.Addr)
	err := s.server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("fatal error with server: %v", err)
	}
}

func newRender() *render.Render {
	return render.New(render.Options{
		UnEscapeHTML: true,
	})
}
