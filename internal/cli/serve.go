package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"bridgecrew/internal/logger"
	"bridgecrew/internal/server"
	"bridgecrew/internal/shiplog"
)

const watchReportInterval = 60 * time.Minute

func newServeCmd(app App) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(app)
		},
	}
}

func runServe(app App) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.NewServer(app.Settings, app.Service, app.Store, server.WithLogger(logger.Log))
	if err := srv.Start(ctx); err != nil {
		return err
	}

	backend := "fallback only"
	if app.Gateway.Available() {
		backend = "remote agents"
	}
	app.Store.Append(shiplog.Entry{
		Type:       shiplog.TypeSystem,
		Author:     "bridgecrew",
		Transcript: fmt.Sprintf("Voyage log opened. Deliberations served via %s.", backend),
		Metadata:   map[string]any{shiplog.MetaSource: "serve"},
	})
	fmt.Printf("bridgecrew listening on %s (%s)\n", srv.Addr(), backend)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		<-gctx.Done()
		return srv.Shutdown(context.Background())
	})
	g.Go(func() error {
		// Periodic watch reports keep the narrative anchored even on
		// quiet voyages.
		ticker := time.NewTicker(watchReportInterval)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-ticker.C:
				app.Store.Append(shiplog.Entry{
					Type:       shiplog.TypeSystem,
					Author:     "bridgecrew",
					Transcript: "Watch report. All stations steady.",
					Metadata:   map[string]any{shiplog.MetaSource: "watch"},
				})
			}
		}
	})
	err := g.Wait()
	logger.Log.Printf("[Serve] stopped: %v", err)
	return err
}
