package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/config"
	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/repositories"
	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/utils"
)

const (
	maxRetries     = 5
	connectTimeout = 5 * time.Second
	initialBackoff = 500 * time.Millisecond
	schemaTimeout  = 30 * time.Second
)

// App owns the store the repositories run against. DB is nil when the
// memory driver is selected.
type App struct {
	Config *config.Config
	DB     *pgxpool.Pool

	HouseRepo repositories.HouseRepository
	NoteRepo  repositories.NoteRepository
}

func NewApp(cfg *config.Config) (*App, error) {
	if cfg.StoreDriver == config.StoreDriverMemory {
		utils.Logger.Info("housekeeping-service using in-memory store")
		return NewMemoryApp(cfg), nil
	}

	var (
		dbPool  *pgxpool.Pool
		err     error
		backoff = initialBackoff
	)

	for i := 1; i <= maxRetries; i++ {
		dbPool, err = connectOnce(cfg.DBUrl)
		if err == nil {
			utils.Logger.Infof("housekeeping-service connected to DB on attempt %d", i)
			break
		}

		utils.Logger.WithError(err).Warnf(
			"Failed DB connect on attempt %d/%d. Retrying in %v...",
			i, maxRetries, backoff,
		)

		if i == maxRetries {
			return nil, fmt.Errorf("unable to connect after %d attempts: %w", maxRetries, err)
		}
		time.Sleep(backoff)
		backoff *= 2
	}

	ctx, cancel := context.WithTimeout(context.Background(), schemaTimeout)
	defer cancel()
	if err := repositories.EnsureSchema(ctx, dbPool); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return &App{
		Config:    cfg,
		DB:        dbPool,
		HouseRepo: repositories.NewHouseRepository(dbPool),
		NoteRepo:  repositories.NewNoteRepository(dbPool),
	}, nil
}

// NewMemoryApp wires the repositories to a fresh in-memory store.
func NewMemoryApp(cfg *config.Config) *App {
	store := repositories.NewMemoryStore()
	return &App{
		Config:    cfg,
		HouseRepo: store.Houses(),
		NoteRepo:  store.Notes(),
	}
}

// Ping reports whether the backing store is reachable.
func (a *App) Ping(ctx context.Context) error {
	if a.DB == nil {
		return nil
	}
	return a.DB.Ping(ctx)
}

func (a *App) Close() {
	if a.DB != nil {
		a.DB.Close()
		utils.Logger.Info("housekeeping-service DB connection closed.")
	}
}

func connectOnce(databaseURL string) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	return newDBPool(ctx, databaseURL)
}

func newDBPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, err
	}
	cfg.MaxConnIdleTime = 2 * time.Minute
	cfg.HealthCheckPeriod = 30 * time.Second
	return pgxpool.ConnectConfig(ctx, cfg)
}
