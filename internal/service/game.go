package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe/internal/engine"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

type GameService interface {
	// CreateGame seats player in a new started game. In bot mode the bot takes botMark.
	CreateGame(ctx context.Context, player *entity.Player, mode string) (*entity.Game, error)
	UpdateGame(ctx context.Context, game *entity.Game) error
	DeleteGame(ctx context.Context, gameID string) error

	GetGameByID(ctx context.Context, id string) (*entity.Game, error)
}

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type gameService struct {
	gameRepo gameRepo
	botMark  engine.Mark
}

func NewGameService(gameRepo gameRepo, botMark engine.Mark) GameService {
	return &gameService{
		gameRepo: gameRepo,
		botMark:  botMark,
	}
}

func (that *gameService) CreateGame(ctx context.Context, player *entity.Player, mode string) (*entity.Game, error) {
	if err := entity.ValidateMode(mode); err != nil {
		return nil, err
	}

	game := entity.NewGame(uuid.NewString(), mode)

	player.GameID = game.ID
	player.Mark = engine.PlayerX
	game.Players = []*entity.Player{player}

	if game.IsWithBot() {
		player.Mark = that.botMark.Opponent()
		game.Players = append(game.Players, entity.NewBotPlayer(game.ID, that.botMark))
	}

	game.Start()

	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game in storage: %w", err)
	}

	return game, nil
}

func (that *gameService) GetGameByID(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve game from storage: %w", err)
	}
	return game, nil
}

func (that *gameService) UpdateGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}
	return nil
}

func (that *gameService) DeleteGame(ctx context.Context, gameID string) error {
	if err := that.gameRepo.DeleteByID(ctx, gameID); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}
	return nil
}
