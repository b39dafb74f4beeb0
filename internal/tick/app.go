// Package tick wires configuration, storage and the event bus into the
// objects the CLI and TUI consume.
package tick

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/colonyops/tick/internal/core/config"
	"github.com/colonyops/tick/internal/core/eventbus"
	"github.com/colonyops/tick/internal/core/task"
	"github.com/colonyops/tick/internal/data/db"
	"github.com/colonyops/tick/internal/data/stores"
	"github.com/colonyops/tick/internal/store/jsonfile"
	"github.com/colonyops/tick/internal/store/memory"
	"github.com/colonyops/tick/pkg/kv"
)

// App is the central entry point for tick operations.
// Commands and TUI consume App instead of cherry-picking raw dependencies.
type App struct {
	Config *config.Config
	Slot   task.Slot
	Bus    *eventbus.EventBus
	DB     *db.DB // nil unless the sqlite backend is active
	Log    zerolog.Logger
	Clock  func() time.Time
}

// Open builds an App for cfg, creating the data directory and opening the
// configured storage backend.
func Open(cfg *config.Config, log zerolog.Logger) (*App, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	app := &App{
		Config: cfg,
		Bus:    eventbus.New(),
		Log:    log,
		Clock:  time.Now,
	}

	// Logs delivered events at debug and subscriber panics at error.
	eventbus.RegisterDebugLogger(app.Bus, log)

	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		database, err := openDatabase(cfg, log)
		if err != nil {
			return nil, err
		}
		app.DB = database
		app.Slot = stores.NewTaskSlot(stores.NewKVStore(database), cfg.Storage.Key, log)
	case config.BackendJSON:
		app.Slot = jsonfile.NewTaskSlot(cfg.DataDir, cfg.Storage.Key, log)
	case config.BackendMemory:
		app.Slot = memory.NewTaskSlot(kv.New[string, []byte](), cfg.Storage.Key)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}

	log.Debug().
		Str("backend", cfg.Storage.Backend).
		Str("key", cfg.Storage.Key).
		Msg("storage opened")

	return app, nil
}

// NewController returns a controller bound to the app's slot and bus with
// its task list already loaded.
func (a *App) NewController(ctx context.Context, opts ...task.Option) *task.Controller {
	base := []task.Option{
		task.WithClock(a.Clock),
		task.WithBus(a.Bus),
		task.WithLogger(a.Log),
		task.WithTimeFormat(a.Config.TimeFormat),
	}

	c := task.NewController(a.Slot, append(base, opts...)...)
	c.Initialize(ctx)
	return c
}

// Close releases the database connection, if any.
func (a *App) Close() error {
	if a.DB == nil {
		return nil
	}
	return a.DB.Close()
}

// openDatabase opens tick.db, moving a corrupt file aside and retrying once.
func openDatabase(cfg *config.Config, log zerolog.Logger) (*db.DB, error) {
	opts := db.OpenOptions{
		MaxOpenConns: cfg.Database.MaxOpenConns,
		MaxIdleConns: cfg.Database.MaxIdleConns,
		BusyTimeout:  cfg.Database.BusyTimeout,
	}

	database, err := db.Open(cfg.DataDir, opts)
	if err == nil {
		return database, nil
	}

	if !stores.IsCorruptionError(err) {
		return nil, fmt.Errorf("open database: %w", err)
	}

	log.Warn().Err(err).Str("dir", cfg.DataDir).Msg("database is corrupt, moving it aside")
	if recoverErr := stores.RecoverFromCorruption(cfg.DataDir); recoverErr != nil {
		return nil, errors.Join(fmt.Errorf("open database: %w", err), recoverErr)
	}

	database, err = db.Open(cfg.DataDir, opts)
	if err != nil {
		return nil, fmt.Errorf("open database after recovery: %w", err)
	}
	return database, nil
}
