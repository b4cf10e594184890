package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	httpDelivery "github.com/chemaware/catalog/internal/delivery/http"
	"github.com/chemaware/catalog/internal/logging"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newServeCmd(opts *options) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the catalog HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.cfg
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
			}

			log := logging.Component("server")
			log.Info("Starting ChemAware catalog v1.0.0")
			log.Infof("Environment: %s", cfg.Server.Environment)
			log.Infof("Favorites: %s %s", cfg.Favorites.Driver, cfg.Favorites.Path)
			if cfg.Remote.Enabled {
				log.Infof("Remote source: %s", cfg.Remote.BaseURL)
			} else {
				log.Info("Remote source disabled, serving the seed catalog only")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a, err := newApp(ctx, cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			router := httpDelivery.SetupRouter(cfg, httpDelivery.NewHandler(a.browser))
			srv := &http.Server{
				Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
				Handler: router,
				BaseContext: func(_ net.Listener) context.Context {
					return ctx
				},
				ReadHeaderTimeout: 10 * time.Second,
			}

			eg, egctx := errgroup.WithContext(ctx)
			eg.Go(func() error {
				log.Infof("Server listening on %s", srv.Addr)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("server error: %w", err)
				}
				return nil
			})
			eg.Go(func() error {
				<-egctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()

				log.Info("shutting down server...")
				return srv.Shutdown(shutdownCtx)
			})
			return eg.Wait()
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "HTTP port (overrides server.port)")
	return cmd
}
