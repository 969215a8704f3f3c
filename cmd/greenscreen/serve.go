package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	greenscreen "github.com/greenscreenhq/greenscreen"
	httpAdapter "github.com/greenscreenhq/greenscreen/internal/adapters/http"
	"github.com/greenscreenhq/greenscreen/internal/metrics"
	"github.com/greenscreenhq/greenscreen/pkg/ports"
	"github.com/greenscreenhq/greenscreen/pkg/session"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Starts the screen automation engine in server mode, exposing screen
management and flow execution as a JSON API over HTTP.`,
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetString("port")

		logger := newLogger(cmd)
		store := openStore(cmd)

		reg := prometheus.NewRegistry()
		collector := metrics.NewCollector(reg)

		eng := greenscreen.New(
			greenscreen.WithLogger(logger),
			greenscreen.WithStore(store),
			greenscreen.WithHooks(collector.Hooks()),
		)

		api := httpAdapter.NewHandler(httpAdapter.Config{
			Store:    store,
			Engine:   eng,
			Sessions: hostSessionFactory(cmd),
			Locks:    session.NewManager(),
			Logger:   logger,
		})

		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		mux.Handle("/", api)

		srv := &http.Server{
			Addr:    ":" + port,
			Handler: mux,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting Greenscreen Server on %s\n", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("Greenscreen Server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", envOr("GREENSCREEN_HTTP_PORT", "8080"), "Port to listen on")
	addHostFlags(serveCmd)
}

// hostSessionFactory opens one terminal connection per processed flow.
// When no host is configured the API still serves screen management;
// process requests get a 503.
func hostSessionFactory(cmd *cobra.Command) httpAdapter.SessionFactory {
	host, _ := cmd.Flags().GetString("host")
	if host == "" {
		return nil
	}
	logger := newLogger(cmd)
	return func(ctx context.Context) (ports.Session, func(), error) {
		client, err := connectHost(cmd, logger)
		if err != nil {
			return nil, nil, err
		}
		return client, func() { _ = client.Close() }, nil
	}
}
