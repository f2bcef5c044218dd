package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/engine"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/rocketscienceinc/tictactoe/internal/service"

var (
	ErrBotNotFound      = errors.New("bot player not found")
	ErrNoAvailableMoves = errors.New("no available moves")
)

type BotService interface {
	// MakeTurn plays the optimal move for the game's bot player and returns it.
	MakeTurn(ctx context.Context, game *entity.Game) (engine.Move, error)
}

type botService struct {
	logger *slog.Logger
	tracer trace.Tracer
	opts   []engine.Option
}

func NewBotService(logger *slog.Logger, opts ...engine.Option) BotService {
	return &botService{
		logger: logger.With("component", "bot"),
		tracer: otel.Tracer(tracerName),
		opts:   opts,
	}
}

func (that *botService) MakeTurn(ctx context.Context, game *entity.Game) (engine.Move, error) {
	_, span := that.tracer.Start(ctx, "BotService.MakeTurn", trace.WithAttributes(
		attribute.String("game.id", game.ID),
	))
	defer span.End()

	move, err := that.makeTurn(game)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return move, err
	}

	span.SetAttributes(
		attribute.Int("bot.cell", move.Index),
		attribute.Int("bot.score", move.Score),
	)

	return move, nil
}

func (that *botService) makeTurn(game *entity.Game) (engine.Move, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", game.ID)

	botPlayer := game.BotPlayer()
	if botPlayer == nil {
		return engine.Move{Index: engine.NoMove}, ErrBotNotFound
	}

	if err := game.ConfirmOngoingState(); err != nil {
		return engine.Move{Index: engine.NoMove}, err
	}

	if game.Turn != botPlayer.Mark {
		return engine.Move{Index: engine.NoMove}, apperror.ErrNotYourTurn
	}

	searcher, err := engine.NewSearcher(botPlayer.Mark, that.opts...)
	if err != nil {
		return engine.Move{Index: engine.NoMove}, fmt.Errorf("failed to create searcher: %w", err)
	}

	move, err := searcher.BestMove(game.Board, botPlayer.Mark)
	if err != nil {
		return move, fmt.Errorf("failed to search best move: %w", err)
	}

	if move.Index == engine.NoMove {
		return move, ErrNoAvailableMoves
	}

	if err = game.MakeTurn(botPlayer.Mark, move.Index); err != nil {
		return move, fmt.Errorf("bot failed to make turn: %w", err)
	}

	log.Debug("bot moved", "cell", move.Index, "score", move.Score)

	return move, nil
}
