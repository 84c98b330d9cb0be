package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/undoapp/tracker/internal/categories"
	"github.com/undoapp/tracker/internal/config"
	"github.com/undoapp/tracker/internal/infrastructure/storage"
	"github.com/undoapp/tracker/internal/ui"
	"github.com/undoapp/tracker/pkg/logger"
	"github.com/undoapp/tracker/repository/kv"
	authUC "github.com/undoapp/tracker/usecase/auth"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
		Path:     cfg.Logger.Path,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	store, err := storage.OpenBolt(cfg.Storage.Path, cfg.Storage.Bucket)
	if err != nil {
		zapLogger.Fatal("failed to open store", zap.Error(err))
	}
	defer store.Close()

	catSet, err := categories.Load(cfg.Categories.Path)
	if err != nil {
		zapLogger.Fatal("failed to load categories", zap.Error(err))
	}

	accountRepo := kv.NewAccountRepository(store)
	sessionRepo := kv.NewSessionRepository(store)
	taskRepo := kv.NewTaskRepository(store)

	authUseCase := authUC.New(accountRepo, sessionRepo, logger.Named(zapLogger, "auth"))
	if cfg.Session.AutoRestore {
		if _, err := authUseCase.Restore(appCtx); err != nil {
			zapLogger.Warn("session restore failed", zap.Error(err))
		}
	}

	deps := ui.Deps{
		Auth:       authUseCase,
		Tasks:      taskRepo,
		Categories: catSet,
		Logger:     logger.Named(zapLogger, "tasks"),
	}
	if err := ui.Run(appCtx, deps); err != nil {
		zapLogger.Fatal("ui error", zap.Error(err))
	}
}
