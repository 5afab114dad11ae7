package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/V205Arduino/slack-ups-and-downs/internal/config"
	"github.com/V205Arduino/slack-ups-and-downs/internal/notify"
	"github.com/V205Arduino/slack-ups-and-downs/internal/repository/postgres"
	"github.com/V205Arduino/slack-ups-and-downs/internal/scheduler"
	"github.com/V205Arduino/slack-ups-and-downs/internal/service"
	httptransport "github.com/V205Arduino/slack-ups-and-downs/internal/transport/http"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres" // driver
	_ "github.com/golang-migrate/migrate/v4/source/file"       // driver
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := run(logger); err != nil {
		logger.Error("application startup error", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	logger.Info("connecting to database...")
	retrier := postgres.NewPostgresRetrier(cfg.DBRetries, 2*time.Second, postgres.NewPsqlConnection)
	dbPool, err := postgres.NewPsqlConnectionWithRetrier(postgres.Config{DSN: cfg.DatabaseDSN}, retrier)
	if err != nil {
		return err
	}
	defer dbPool.Close()
	logger.Info("database connection established")

	logger.Info("running database migrations...")
	m, err := migrate.New("file://migrations", cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	logger.Info("database migrations complete")

	var notifier service.Notifier = notify.NewLogNotifier(logger)
	if cfg.NATSURL != "" {
		nc, err := notify.BrokerConnect(cfg.NATSURL)
		if err != nil {
			return err
		}
		defer nc.Drain()

		notifier = notify.NewPublisher(nc, cfg.ChannelID, logger)
		logger.Info("announcements go to nats", "url", cfg.NATSURL)
	}

	gameRepo := postgres.NewGameRepo(dbPool)
	userRepo := postgres.NewUserRepo(dbPool)

	bootCtx, cancelBoot := context.WithTimeout(context.Background(), 10*time.Second)
	state, err := service.NewGameState(bootCtx, gameRepo, userRepo)
	cancelBoot()
	if err != nil {
		return err
	}
	game := state.Snapshot()
	logger.Info("game loaded", "counter", game.Counter, "up_wins", game.UpWins, "down_wins", game.DownWins)

	teamService := service.NewTeamService(state, notifier, nil, logger)
	infractions := service.NewInfractionPolicy(logger)
	turnService := service.NewTurnService(state, teamService, infractions, notifier, logger)
	leaderboardService := service.NewLeaderboardService(state, notifier, logger)

	monthly, err := scheduler.NewMonthlyReset(cfg.ResetSchedule, loc, leaderboardService, logger)
	if err != nil {
		return err
	}
	monthly.Start()
	logger.Info("leaderboard reset scheduled", "schedule", cfg.ResetSchedule, "next", monthly.Next())

	httpHandler := httptransport.NewHandler(turnService, teamService, leaderboardService, cfg.ChannelID, logger)

	router := httpHandler.RegisterRoutes()

	srv := &http.Server{
		Addr:         cfg.ServerAddr(),
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		logger.Info("server starting", "addr", cfg.ServerAddr())
		serverErrors <- srv.ListenAndServe()
	}()

	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return err
	case sig := <-stopChan:
		logger.Info("shutdown signal received", "signal", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	monthly.Stop(ctx)

	if err := srv.Shutdown(ctx); err != nil {
		return err
	}

	logger.Info("server shut down gracefully")
	return nil
}
