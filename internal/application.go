package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe/internal/config"
	"github.com/rocketscienceinc/tictactoe/internal/engine"
	"github.com/rocketscienceinc/tictactoe/internal/repository"
	"github.com/rocketscienceinc/tictactoe/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe/internal/service"
	"github.com/rocketscienceinc/tictactoe/internal/telemetry"
	"github.com/rocketscienceinc/tictactoe/internal/usecase"
	"github.com/rocketscienceinc/tictactoe/transport/cli"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs one terminal session for playerID.
func RunApp(logger *slog.Logger, conf *config.Config, playerID string) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	shutdownTracing, err := telemetry.InitTracing(conf.Tracing)
	if err != nil {
		return fmt.Errorf("could not init tracing: %w", err)
	}

	defer func() {
		if err = shutdownTracing(context.Background()); err != nil {
			log.Error("could not shutdown tracing", "error", err)
		}
	}()

	playerRepo, gameRepo, closeStorage, err := initRepositories(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err = closeStorage(); err != nil {
			log.Error("could not close storage", "error", err)
		}
	}()

	botMark, err := engine.ParseMark(conf.Bot.Mark)
	if err != nil {
		return fmt.Errorf("invalid bot mark: %w", err)
	}

	var searchOpts []engine.Option
	if conf.Bot.FasterWins {
		searchOpts = append(searchOpts, engine.WithFasterWins())
	}

	playerService := service.NewPlayerService(playerRepo)
	gameService := service.NewGameService(gameRepo, botMark)
	botService := service.NewBotService(logger, searchOpts...)
	gameManager := usecase.NewGameManager(logger, playerService, gameService, botService)

	session := cli.NewSession(logger, gameManager, os.Stdin, termenv.NewOutput(os.Stdout), cli.Options{
		Mode:          conf.Mode,
		PlayerID:      playerID,
		TurnTimeout:   conf.Turn.Timeout,
		ThinkingDelay: conf.Bot.ThinkingDelay,
	})

	log.Info("Starting session", "mode", conf.Mode, "storage", conf.Storage)

	if err = session.Run(ctx); err != nil {
		return fmt.Errorf("session failed: %w", err)
	}

	return nil
}

func initRepositories(ctx context.Context, conf *config.Config) (repository.PlayerRepository, repository.GameRepository, func() error, error) {
	redisStorage, err := initStorage(ctx, conf)
	if err != nil {
		return nil, nil, nil, err
	}

	ttl := conf.Redis.SessionTTL
	playerRepo := repository.NewPlayerRepository(redisStorage.Connection, ttl)
	gameRepo := repository.NewGameRepository(redisStorage.Connection, ttl)

	return playerRepo, gameRepo, redisStorage.Close, nil
}

// initStorage connects to the configured Redis, or starts an embedded one for memory storage.
func initStorage(ctx context.Context, conf *config.Config) (*storage.RedisStorage, error) {
	if conf.Storage != config.StorageRedis {
		redisStorage, err := storage.NewEmbeddedStorage(ctx)
		if err != nil {
			return nil, fmt.Errorf("could not start memory storage: %w", err)
		}
		return redisStorage, nil
	}

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return nil, ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	return redisStorage, nil
}
