package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sujeonghan78-lgtm/CargoLoading/internal/adapters/cache"
	"github.com/sujeonghan78-lgtm/CargoLoading/internal/adapters/repositories"
	"github.com/sujeonghan78-lgtm/CargoLoading/internal/api"
	"github.com/sujeonghan78-lgtm/CargoLoading/internal/config"
	"github.com/sujeonghan78-lgtm/CargoLoading/internal/domain"
	"github.com/sujeonghan78-lgtm/CargoLoading/internal/platform/db"
	"github.com/sujeonghan78-lgtm/CargoLoading/internal/platform/logging"
	"github.com/sujeonghan78-lgtm/CargoLoading/internal/platform/metrics"
	"github.com/sujeonghan78-lgtm/CargoLoading/internal/ports"
)

// main is the application composition root.
// It wires concrete adapters (SQL, Redis) behind ports and starts the HTTP server.
func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	conn, err := db.Connect(cfg.DBDriver, cfg.DSN())
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := db.Migrate(conn, cfg.DBDriver); err != nil {
		return err
	}

	boxes, vehicles := repositories.ForDriver(conn, cfg.DBDriver)
	if err := initAndSeed(ctx, cfg.SeedPath, boxes, vehicles); err != nil {
		return err
	}

	planCache, closeCache, err := openPlanCache(ctx, cfg, conn)
	if err != nil {
		return err
	}
	defer closeCache()

	opts := domain.DefaultPlanOptions()
	opts.MaxBinsPerType = cfg.MaxBinsPerType

	router := api.NewRouter(api.Deps{
		Boxes:          boxes,
		Vehicles:       vehicles,
		Cache:          planCache,
		Metrics:        metrics.New(),
		DefaultMode:    cfg.VehicleMode,
		DefaultOptions: opts,
		Concurrency:    cfg.PlanConcurrency,
	})

	// Large catalogs with stacking disabled can take a while to plan.
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", srv.Addr, "driver", cfg.DBDriver, "mode", cfg.VehicleMode)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// initAndSeed stores the preset catalogs and, when a seed path is set,
// replaces the packing list. A .json seed may also carry catalogs.
func initAndSeed(ctx context.Context, seedPath string, boxes ports.BoxRepository, vehicles ports.VehicleCatalog) error {
	if err := repositories.SeedVehicles(ctx, vehicles); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}
	if seedPath == "" {
		return nil
	}

	var err error
	if strings.EqualFold(filepath.Ext(seedPath), ".json") {
		err = repositories.SeedFromJSON(ctx, seedPath, boxes, vehicles)
	} else {
		err = repositories.SeedBoxes(ctx, seedPath, boxes)
	}
	if err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}
	return nil
}

// openPlanCache prefers Redis when configured and falls back to the database.
func openPlanCache(ctx context.Context, cfg *config.Config, conn *sql.DB) (ports.PlanCache, func(), error) {
	if cfg.RedisAddr == "" {
		return cache.ForDriver(conn, cfg.DBDriver), func() {}, nil
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("open plan cache: ping redis %q: %w", cfg.RedisAddr, err)
	}
	slog.Info("plan cache", "backend", "redis", "addr", cfg.RedisAddr, "ttl", cfg.PlanCacheTTL)
	return cache.NewRedisPlanCache(client, cfg.PlanCacheTTL), func() { _ = client.Close() }, nil
}
