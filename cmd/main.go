package main

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cooling_calculator/internal/handlers"
	"cooling_calculator/internal/logger"
	"cooling_calculator/internal/repository"
	"cooling_calculator/internal/repository/db"
	"cooling_calculator/internal/service"
	"cooling_calculator/internal/session"

	"github.com/spf13/viper"
)

const (
	defaultLogFile   = "cooling_log.txt"
	defaultHistoryDB = "cooling_history.db"
	defaultPacing    = 300 * time.Millisecond

	// how long an interrupted action may take to finish before resources close
	shutdownGrace = 2 * time.Second
)

func main() {
	if err := loadConfig(); err != nil {
		// logger level comes from config, so report with the default one
		logger.Get(viper.GetString("log_level")).Fatalw("error reading config", "err", err)
	}
	log := logger.Get(viper.GetString("log_level"))
	defer func() { _ = log.Sync() }()

	history, err := openHistory(log)
	if err != nil {
		log.Fatalw("failed to init history database", "err", err)
	}
	if history != nil {
		defer func() {
			if cerr := history.Close(); cerr != nil {
				log.Errorw("failed to close history database", "err", cerr)
			}
		}()
	}

	// wire dependencies
	repos := repository.NewRepository(viper.GetString("log_file"), history)
	services := service.NewService(repos)

	if err := services.Journal.Init(); err != nil {
		log.Errorw("failed to create log file", "path", viper.GetString("log_file"), "err", err)
	}

	ui := handlers.NewPresenter(os.Stdout, viper.GetString("ui.color"), viper.GetDuration("ui.pacing"))
	console := handlers.NewHandler(services, log, handlers.NewInput(os.Stdin), ui)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runSession(ctx, session.New(log), console, log, shutdownGrace)
}

// loadConfig reads configs/config.yml when present; defaults cover every key.
func loadConfig() error {
	viper.SetDefault("log_level", logger.WarnLevel)
	viper.SetDefault("log_file", defaultLogFile)
	viper.SetDefault("history.enabled", false)
	viper.SetDefault("history.db_path", defaultHistoryDB)
	viper.SetDefault("ui.color", handlers.ColorAuto)
	viper.SetDefault("ui.pacing", defaultPacing)

	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}
	return nil
}

// openHistory opens the SQLite history when enabled; nil means disabled.
func openHistory(log *logger.Logger) (*sql.DB, error) {
	if !viper.GetBool("history.enabled") {
		return nil, nil
	}
	path := viper.GetString("history.db_path")
	if path == "" {
		log.Infow("history.db_path not set in config; using default file", "default", defaultHistoryDB)
		path = defaultHistoryDB
	}
	return db.InitDB(path)
}

// runSession drives the menu until it ends or a termination signal arrives.
// After a signal the running action gets up to grace to finish, so deferred
// cleanup never races a write. A blocked terminal read cannot be interrupted,
// so past grace we return without it.
func runSession(ctx context.Context, s *session.Session, m session.Menu, log *logger.Logger, grace time.Duration) {
	done := make(chan error, 1)
	go func() {
		done <- s.Run(ctx, m)
	}()

	select {
	case err := <-done:
		if err != nil {
			log.Errorw("session ended with error", "err", err)
		}
		return
	case <-ctx.Done():
		log.Infow("interrupted; shutting down")
	}

	timer := time.NewTimer(grace)
	defer timer.Stop()
	select {
	case <-done:
	case <-timer.C:
		log.Warnw("session still busy after shutdown grace; exiting", "grace", grace)
	}
}
