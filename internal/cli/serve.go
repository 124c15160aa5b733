package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/crossgen/internal/server"
	apperrors "github.com/matzehuels/crossgen/pkg/errors"
	"github.com/matzehuels/crossgen/pkg/pipeline"
	"github.com/matzehuels/crossgen/pkg/store"
)

// Store backends accepted by --store.
const (
	storeMemory = "memory"
	storeRedis  = "redis"
	storeMongo  = "mongo"
)

// shutdownTimeout bounds graceful shutdown after the context is cancelled.
const shutdownTimeout = 5 * time.Second

// newServeCmd creates the serve command for running the HTTP API.
func newServeCmd() *cobra.Command {
	var (
		addr     string
		size     int
		limit    int
		backend  string
		redisCfg store.RedisConfig
		mongoURI string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the puzzle generation HTTP API",
		Long: `Run the puzzle generation HTTP API.

Puzzles are generated on demand from posted word banks and retrieved later
by ID, as JSON or as a playable HTML page. Finished puzzles live in the
chosen store: an in-process map (default), Redis, or MongoDB.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), addr, size, limit, backend, redisCfg, mongoURI)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().IntVarP(&size, "size", "n", pipeline.DefaultSize, "default grid dimension for requests that omit one")
	cmd.Flags().IntVar(&limit, "limit", 0, "generation requests per minute per client IP (0 disables)")
	cmd.Flags().StringVar(&backend, "store", storeMemory, "puzzle store: memory, redis, mongo")
	cmd.Flags().StringVar(&redisCfg.Addr, "redis-addr", "localhost:6379", "redis address (with --store redis)")
	cmd.Flags().StringVar(&redisCfg.Password, "redis-password", "", "redis password (with --store redis)")
	cmd.Flags().IntVar(&redisCfg.DB, "redis-db", 0, "redis database number (with --store redis)")
	cmd.Flags().DurationVar(&redisCfg.TTL, "redis-ttl", 24*time.Hour, "puzzle expiry in redis (with --store redis)")
	cmd.Flags().StringVar(&mongoURI, "mongo-uri", "mongodb://localhost:27017", "mongodb connection URI (with --store mongo)")

	return cmd
}

// runServe builds the store and serves until the context is cancelled.
func runServe(ctx context.Context, addr string, size, limit int, backend string, redisCfg store.RedisConfig, mongoURI string) error {
	logger := loggerFromContext(ctx)

	st, err := newStore(ctx, backend, redisCfg, mongoURI)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := st.Close(closeCtx); err != nil {
			logger.Warnf("close store: %v", err)
		}
	}()

	srv := &http.Server{
		Addr: addr,
		Handler: server.New(st, logger, server.Options{
			DefaultSize:   size,
			GenerateLimit: limit,
		}),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	printInfo("Serving puzzles on %s (store: %s)", addr, backend)

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// newStore builds the puzzle store for the chosen backend.
func newStore(ctx context.Context, backend string, redisCfg store.RedisConfig, mongoURI string) (store.Store, error) {
	switch backend {
	case storeMemory:
		return store.NewMemory(), nil
	case storeRedis:
		return store.NewRedis(ctx, redisCfg)
	case storeMongo:
		return store.NewMongo(ctx, mongoURI)
	default:
		return nil, apperrors.New(apperrors.ErrCodeInvalidInput, "unknown store %q", backend)
	}
}
