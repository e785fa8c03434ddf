package cli

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/tgienger/todo/internal/config"
	"github.com/tgienger/todo/internal/db"
	"github.com/tgienger/todo/internal/logging"
	"github.com/tgienger/todo/internal/storage"
	"github.com/tgienger/todo/internal/store"
	"github.com/tgienger/todo/internal/ui/views"
)

// Session is everything a command needs: the loaded store and the
// resources behind it
type Session struct {
	Config   config.Config
	Log      *zap.Logger
	Store    *store.Store
	Settings views.Settings // nil when no settings database is open

	closers []func()
}

// NewSession wraps an already loaded store, used by tests and embedders
func NewSession(st *store.Store, settings views.Settings) *Session {
	return &Session{Log: zap.NewNop(), Store: st, Settings: settings}
}

// OpenSession loads configuration, starts logging, opens the configured
// slot backend and loads the store from it
func OpenSession(configPath string) (*Session, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return nil, err
	}
	s := &Session{Config: cfg, Log: logger}
	s.closers = append(s.closers, logging.Install(logger))

	database, err := db.Open(cfg.DBPath())
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	s.closers = append(s.closers, func() {
		if err := database.Close(); err != nil {
			logger.Warn("failed to close database", zap.Error(err))
		}
	})
	s.Settings = database

	slot, err := s.openSlot(database)
	if err != nil {
		s.Close()
		return nil, err
	}

	s.Store = store.Open(slot, logger.Named("store"))
	logger.Info("tasks loaded",
		zap.String("backend", cfg.Backend),
		zap.String("slot", slot.Name()),
		zap.Int("tasks", s.Store.Stats().Total),
	)
	return s, nil
}

func (s *Session) openSlot(database *db.DB) (store.Slot, error) {
	cfg := s.Config
	switch cfg.Backend {
	case config.BackendSQLite:
		return database.Slot(cfg.SlotKey), nil

	case config.BackendFile:
		slot, err := storage.NewFileSlot(cfg.FilePath)
		if err != nil {
			return nil, err
		}
		return slot, nil

	case config.BackendRedis:
		ctx, cancel := context.WithTimeout(context.Background(), cfg.RedisTimeout)
		defer cancel()
		client, err := storage.DialRedis(ctx, cfg.RedisAddr)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, func() {
			if err := client.Close(); err != nil {
				s.Log.Warn("failed to close redis client", zap.Error(err))
			}
		})
		return storage.NewRedisSlot(client, cfg.SlotKey, cfg.RedisTimeout), nil

	case config.BackendMemory:
		return storage.NewMemorySlot(nil), nil
	}
	return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
}

// Close releases resources in reverse order of acquisition
func (s *Session) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
	s.closers = nil
}
