package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/azrlmaster/sleeper-fan-helper/scheduler"
	"github.com/azrlmaster/sleeper-fan-helper/web"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web server and the periodic player sync",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	app, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer app.Close()

	server, err := web.NewServer(app.cfg.Port, app.ctrl, web.Options{
		DefaultSeason: app.cfg.Season,
		DefaultWeek:   app.cfg.Week,
		AdminUser:     app.cfg.AdminUser,
		AdminPassword: app.cfg.AdminPassword,
	})
	if err != nil {
		return err
	}

	// Setup a job that updates the players database from sleeper
	sched, err := scheduler.New(app.ctrl, app.cfg.PlayerSyncInterval, app.cfg.PlayerSyncOnStart)
	if err != nil {
		return err
	}
	if err := sched.Start(); err != nil {
		return err
	}

	shutdown := make(chan bool)
	wg := &sync.WaitGroup{}

	// Setup a handler to catch ctrl-c signals and properly shutdown everything.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()

		// stop the scheduler first so a running sync finishes before the db is closed
		if err := sched.Stop(); err != nil {
			log.WithError(err).Warn("error stopping scheduler")
		}
		close(shutdown)

		if err := waitTimeout(wg, 10*time.Second); err != nil {
			log.Errorf("timed out waiting for proper shutdown")
			os.Exit(255)
		}
	}()

	// Start the web server
	wg.Add(1)
	go server.ListenAndServe(shutdown, wg)

	// Wait for everything to stop.
	wg.Wait()
	log.Info("server shutdown")
	return nil
}
