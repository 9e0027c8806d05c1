package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/boardnet/internal/config"
	"github.com/rocketscienceinc/boardnet/internal/entity"
	"github.com/rocketscienceinc/boardnet/internal/othello"
	"github.com/rocketscienceinc/boardnet/internal/repository"
	"github.com/rocketscienceinc/boardnet/internal/repository/storage"
	"github.com/rocketscienceinc/boardnet/internal/tictactoe"
	"github.com/rocketscienceinc/boardnet/internal/usecase"
	"github.com/rocketscienceinc/boardnet/transport/rest"
	"github.com/rocketscienceinc/boardnet/transport/tcp"
)

var (
	ErrAddrNotFound    = errors.New("redis address string is empty")
	ErrUnknownGameKind = errors.New("unknown game kind")
)

// NewRules - game rules by kind.
func NewRules(kind string) (usecase.Rules, error) {
	switch kind {
	case entity.KindTicTacToe:
		return tictactoe.NewGameController(), nil
	case entity.KindOthello:
		return othello.NewGameController(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownGameKind, kind)
	}
}

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	gameRules, err := NewRules(conf.Game.Kind)
	if err != nil {
		return err
	}

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	sqliteStorage, err := storage.NewSQLiteStorage(conf.SQLiteStoragePath)
	if err != nil {
		return fmt.Errorf("could not open sqlite storage: %w", err)
	}

	defer func() {
		if err = sqliteStorage.Close(); err != nil {
			log.Error("could not close sqlite storage", "error", err)
		}
	}()

	if err = sqliteStorage.Init(ctx); err != nil {
		return fmt.Errorf("could not init sqlite storage: %w", err)
	}

	gameRepo := repository.NewGameRepository(redisStorage.Connection)
	matchRepo := repository.NewMatchRepository(sqliteStorage.Connection)
	gameManager := usecase.NewGameManager(logger, gameRules, gameRepo, matchRepo, conf.Game.Tick)

	// run game session
	sessionErrCh := make(chan error, 1)
	go func() {
		sessionErrCh <- gameManager.Run(ctx)
	}()

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		handlers := rest.NewHandlers(logger, gameManager, gameRepo, matchRepo)
		if httpErr := rest.Start(ctx, conf.HTTPPort, handlers); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run TCP server
	tcpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting TCP server", "port", conf.Game.Port, "kind", gameRules.Kind())
		tcpServer := tcp.New(logger, gameManager, tcp.Options{
			MaxFrameSize:  conf.Game.MaxFrameSize,
			SendQueueSize: conf.Game.SendQueueSize,
			WriteTimeout:  conf.Game.WriteTimeout,
		})
		if tcpErr := tcpServer.Start(ctx, conf.Game.Port); tcpErr != nil {
			log.Error("TCP server error", "error", tcpErr)
			tcpErrCh <- tcpErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err = <-tcpErrCh:
		return fmt.Errorf("TCP server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		<-sessionErrCh
		return nil
	}
}
