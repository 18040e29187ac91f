package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/picolepixel/rank-day-bot/internal/config"
	"github.com/picolepixel/rank-day-bot/internal/database"
	"github.com/picolepixel/rank-day-bot/internal/domain/service"
	"github.com/picolepixel/rank-day-bot/internal/logger"
	"github.com/picolepixel/rank-day-bot/internal/telegram"
	"github.com/picolepixel/rank-day-bot/migrator/sqlite"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		zlog.Fatal("invalid timezone", zap.String("tz", cfg.Timezone), zap.Error(err))
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		zlog.Fatal("failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	zlog.Info("running migrations")
	if err := sqlite.Migrate(db.DB()); err != nil {
		zlog.Fatal("failed to run migrations", zap.Error(err))
	}

	dm := database.NewInstance(db)

	// The router needs the services and the services need the dispatcher,
	// which wraps the bot; the default handler closes over the router set
	// below, before any update can arrive.
	var router *telegram.Router
	b, err := bot.New(cfg.BotToken, bot.WithDefaultHandler(
		func(ctx context.Context, b *bot.Bot, update *models.Update) {
			router.HandleUpdate(ctx, b, update)
		},
	))
	if err != nil {
		zlog.Fatal("failed to create telegram bot", zap.Error(err))
	}

	dispatcher := telegram.NewDispatcher(b)

	services := service.NewInstance(dm, dispatcher, zlog, service.Params{
		Location:        loc,
		TickInterval:    cfg.TickInterval,
		DispatchTimeout: cfg.DispatchTimeout,
	})
	router = telegram.NewRouter(services, zlog)

	services.Scheduler.Start()
	defer services.Scheduler.Stop()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	zlog.Info("bot starting", zap.String("tz", cfg.Timezone))
	b.Start(ctx)
	zlog.Info("bot stopped")
}
