package cli

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgallion1/workflowdoc/internal/api"
	"github.com/spf13/cobra"
)

func init() {
	f := serveCmd.Flags()
	f.StringVarP(&cfg.Port, "port", "p", cfg.Port, "Port to listen on")
	f.StringVarP(&cfg.ServeRoot, "root", "r", cfg.ServeRoot, "Directory to serve")
	f.StringVar(&cfg.ServeGraphDB, "graph-db", cfg.ServeGraphDB, "SQLite database backing /api/graph")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a directory over HTTP with permissive CORS",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger(cmd.ErrOrStderr())

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		httpServer := &http.Server{
			Addr:         ":" + cfg.Port,
			Handler:      api.NewServer(log, cfg),
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 120 * time.Second,
			IdleTimeout:  60 * time.Second,
		}

		ln, err := net.Listen("tcp", httpServer.Addr)
		if err != nil {
			return err
		}

		errCh := make(chan error, 1)
		go func() {
			errCh <- httpServer.Serve(ln)
		}()
		log.Info("serving", "root", cfg.ServeRoot, "url", "http://localhost:"+cfg.Port)

		select {
		case err := <-errCh:
			if !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		case <-ctx.Done():
		}

		log.Info("shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	},
}
