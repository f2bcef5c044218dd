package usecase

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

const tracerName = "github.com/rocketscienceinc/tictactoe/internal/usecase"

var ErrNotBotGame = errors.New("game has no bot player")

type playerServiceDep interface {
	CreatePlayer(ctx context.Context, id string) (*entity.Player, error)
	UpdatePlayer(ctx context.Context, player *entity.Player) error
	GetPlayerByID(ctx context.Context, id string) (*entity.Player, error)
}

type gameServiceDep interface {
	CreateGame(ctx context.Context, player *entity.Player, mode string) (*entity.Game, error)
	UpdateGame(ctx context.Context, game *entity.Game) error
	DeleteGame(ctx context.Context, gameID string) error
	GetGameByID(ctx context.Context, id string) (*entity.Game, error)
}

type botServiceDep interface {
	MakeTurn(ctx context.Context, game *entity.Game) (engine.Move, error)
}

// GameManager drives one session: it loads the game, applies a move through the entity
// and stores the result.
type GameManager struct {
	logger *slog.Logger
	tracer trace.Tracer

	playerService playerServiceDep
	gameService   gameServiceDep
	botService    botServiceDep
}

func NewGameManager(logger *slog.Logger, playerService playerServiceDep, gameService gameServiceDep, botService botServiceDep) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game-manager"),
		tracer: otel.Tracer(tracerName),

		playerService: playerService,
		gameService:   gameService,
		botService:    botService,
	}
}

// GetOrCreatePlayer returns the player stored under id, creating it when missing.
// An empty id always creates an anonymous player.
func (that *GameManager) GetOrCreatePlayer(ctx context.Context, id string) (*entity.Player, error) {
	ctx, span := that.startSpan(ctx, "GetOrCreatePlayer", attribute.String("player.id", id))
	defer span.End()

	if id != "" {
		player, err := that.playerService.GetPlayerByID(ctx, id)
		if err == nil {
			return player, nil
		}

		if !errors.Is(err, apperror.ErrNotFound) {
			return nil, that.fail(span, fmt.Errorf("failed to get player by id: %w", err))
		}
	}

	player, err := that.playerService.CreatePlayer(ctx, id)
	if err != nil {
		return nil, that.fail(span, fmt.Errorf("failed to create new player: %w", err))
	}

	return player, nil
}

// StartGame seats the player in a new game of the given mode. A game the player
// was still attached to is closed first.
func (that *GameManager) StartGame(ctx context.Context, playerID, mode string) (*entity.Game, error) {
	ctx, span := that.startSpan(ctx, "StartGame", attribute.String("player.id", playerID), attribute.String("game.mode", mode))
	defer span.End()

	log := that.logger.With("method", "StartGame", "playerID", playerID)

	if err := entity.ValidateMode(mode); err != nil {
		return nil, that.fail(span, err)
	}

	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, that.fail(span, fmt.Errorf("failed to get player by id: %w", err))
	}

	if player.GameID != "" {
		that.cleanupGame(ctx, player.GameID)
		player.Leave()
	}

	game, err := that.gameService.CreateGame(ctx, player, mode)
	if err != nil {
		return nil, that.fail(span, fmt.Errorf("failed to create game: %w", err))
	}

	if err = that.playerService.UpdatePlayer(ctx, player); err != nil {
		return nil, that.fail(span, fmt.Errorf("failed to update player: %w", err))
	}

	log.Info("game started", "gameID", game.ID, "mode", mode, "mark", player.Mark.String())

	return game, nil
}

// ResumeGame returns the game the player is attached to.
func (that *GameManager) ResumeGame(ctx context.Context, playerID string) (*entity.Game, error) {
	ctx, span := that.startSpan(ctx, "ResumeGame", attribute.String("player.id", playerID))
	defer span.End()

	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, that.fail(span, fmt.Errorf("failed to get player by id: %w", err))
	}

	if player.GameID == "" {
		return nil, that.fail(span, fmt.Errorf("player %s has no game: %w", playerID, apperror.ErrNotFound))
	}

	game, err := that.gameService.GetGameByID(ctx, player.GameID)
	if err != nil {
		return nil, that.fail(span, fmt.Errorf("failed to get game: %w", err))
	}

	return game, nil
}

// MakeTurn places the mark of the side to move at cell. In bot games only the human side may call it.
func (that *GameManager) MakeTurn(ctx context.Context, gameID string, cell int) (*entity.Game, error) {
	ctx, span := that.startSpan(ctx, "MakeTurn", attribute.String("game.id", gameID), attribute.Int("game.cell", cell))
	defer span.End()

	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, that.fail(span, fmt.Errorf("failed to get game by id: %w", err))
	}

	if game.IsBotTurn() {
		return game, that.fail(span, apperror.ErrNotYourTurn)
	}

	if err = game.MakeTurn(game.Turn, cell); err != nil {
		return game, that.fail(span, fmt.Errorf("failed to make turn: %w", err))
	}

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, that.fail(span, fmt.Errorf("failed to update game: %w", err))
	}

	that.logOutcome(game)

	return game, nil
}

// BotTurn lets the bot answer. It fails with ErrNotYourTurn while the human is to move.
func (that *GameManager) BotTurn(ctx context.Context, gameID string) (*entity.Game, error) {
	ctx, span := that.startSpan(ctx, "BotTurn", attribute.String("game.id", gameID))
	defer span.End()

	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, that.fail(span, fmt.Errorf("failed to get game by id: %w", err))
	}

	if !game.IsWithBot() {
		return game, that.fail(span, ErrNotBotGame)
	}

	if _, err = that.botService.MakeTurn(ctx, game); err != nil {
		return game, that.fail(span, fmt.Errorf("bot failed to make turn: %w", err))
	}

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, that.fail(span, fmt.Errorf("failed to update game: %w", err))
	}

	that.logOutcome(game)

	return game, nil
}

// SkipTurn passes the move to the other side, used when the turn countdown runs out.
func (that *GameManager) SkipTurn(ctx context.Context, gameID string) (*entity.Game, error) {
	ctx, span := that.startSpan(ctx, "SkipTurn", attribute.String("game.id", gameID))
	defer span.End()

	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, that.fail(span, fmt.Errorf("failed to get game by id: %w", err))
	}

	if err = game.SkipTurn(); err != nil {
		return game, that.fail(span, fmt.Errorf("failed to skip turn: %w", err))
	}

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, that.fail(span, fmt.Errorf("failed to update game: %w", err))
	}

	that.logger.Info("turn skipped", "method", "SkipTurn", "gameID", game.ID, "turn", game.Turn.String())

	return game, nil
}

// Restart clears the board of the game and keeps its players.
func (that *GameManager) Restart(ctx context.Context, gameID string) (*entity.Game, error) {
	ctx, span := that.startSpan(ctx, "Restart", attribute.String("game.id", gameID))
	defer span.End()

	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, that.fail(span, fmt.Errorf("failed to get game by id: %w", err))
	}

	game.Restart()

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, that.fail(span, fmt.Errorf("failed to update game: %w", err))
	}

	return game, nil
}

// CloseGame removes the game and detaches its human players.
func (that *GameManager) CloseGame(ctx context.Context, gameID string) error {
	ctx, span := that.startSpan(ctx, "CloseGame", attribute.String("game.id", gameID))
	defer span.End()

	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return that.fail(span, fmt.Errorf("failed to get game by id: %w", err))
	}

	if err = that.gameService.DeleteGame(ctx, game.ID); err != nil {
		return that.fail(span, fmt.Errorf("failed to delete game: %w", err))
	}

	that.detachPlayers(ctx, game)

	return nil
}

func (that *GameManager) GetGame(ctx context.Context, gameID string) (*entity.Game, error) {
	ctx, span := that.startSpan(ctx, "GetGame", attribute.String("game.id", gameID))
	defer span.End()

	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, that.fail(span, fmt.Errorf("failed to get game by id: %w", err))
	}

	return game, nil
}

// cleanupGame drops a stale game. Failures are logged only.
func (that *GameManager) cleanupGame(ctx context.Context, gameID string) {
	log := that.logger.With("method", "cleanupGame", "gameID", gameID)

	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		log.Warn("stale game not loaded", "error", err)
		return
	}

	if err = that.gameService.DeleteGame(ctx, gameID); err != nil {
		log.Error("failed to delete game", "error", err)
	}

	that.detachPlayers(ctx, game)
}

func (that *GameManager) detachPlayers(ctx context.Context, game *entity.Game) {
	log := that.logger.With("method", "detachPlayers", "gameID", game.ID)

	for _, player := range game.Players {
		if player.IsBot() {
			continue
		}

		player.Leave()
		if err := that.playerService.UpdatePlayer(ctx, player); err != nil {
			log.Error("failed to update", "player", player.ID, "error", err)
		}
	}

	log.Info("game closed")
}

func (that *GameManager) logOutcome(game *entity.Game) {
	if !game.IsFinished() {
		return
	}

	log := that.logger.With("gameID", game.ID)
	if game.IsDraw() {
		log.Info("game finished", "result", "draw")
		return
	}

	log.Info("game finished", "result", "win", "winner", game.Winner.String())
}

func (that *GameManager) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return that.tracer.Start(ctx, "GameManager."+name, trace.WithAttributes(attrs...))
}

func (that *GameManager) fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
