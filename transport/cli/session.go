package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

type gameManager interface {
	GetOrCreatePlayer(ctx context.Context, id string) (*entity.Player, error)
	StartGame(ctx context.Context, playerID, mode string) (*entity.Game, error)
	ResumeGame(ctx context.Context, playerID string) (*entity.Game, error)

	MakeTurn(ctx context.Context, gameID string, cell int) (*entity.Game, error)
	BotTurn(ctx context.Context, gameID string) (*entity.Game, error)
	SkipTurn(ctx context.Context, gameID string) (*entity.Game, error)

	Restart(ctx context.Context, gameID string) (*entity.Game, error)
	CloseGame(ctx context.Context, gameID string) error
}

type Options struct {
	Mode     string
	PlayerID string

	// TurnTimeout is the countdown for a human move. Zero or negative disables it.
	TurnTimeout time.Duration
	// ThinkingDelay is shown before each computer move.
	ThinkingDelay time.Duration
}

// Session plays one game on a terminal until the player quits or the input ends.
type Session struct {
	logger   *slog.Logger
	manager  gameManager
	renderer *Renderer
	in       io.Reader
	opts     Options
}

func NewSession(logger *slog.Logger, manager gameManager, in io.Reader, out *termenv.Output, opts Options) *Session {
	return &Session{
		logger:   logger.With("component", "cli"),
		manager:  manager,
		renderer: NewRenderer(out),
		in:       in,
		opts:     opts,
	}
}

// Run blocks until the session ends. An unfinished game stays stored when the input
// ends or ctx is cancelled, so the same player can resume it later.
func (that *Session) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	player, err := that.manager.GetOrCreatePlayer(ctx, that.opts.PlayerID)
	if err != nil {
		return fmt.Errorf("failed to get player: %w", err)
	}

	game, err := that.openGame(ctx, player)
	if err != nil {
		return err
	}

	log = log.With("playerID", player.ID, "gameID", game.ID)
	log.Info("session started", "mode", game.Mode)

	lines := readLines(ctx, that.in)

	for {
		if ctx.Err() != nil {
			log.Info("session interrupted")
			return nil
		}

		that.renderer.Board(game)
		that.renderer.Status(game)

		var done bool

		switch {
		case game.IsFinished():
			game, done, err = that.askRestart(ctx, game, lines)
		case game.IsBotTurn():
			game, err = that.botTurn(ctx, game)
		default:
			game, done, err = that.humanTurn(ctx, game, lines)
		}

		if err != nil {
			return err
		}

		if done {
			log.Info("session finished")
			return nil
		}
	}
}

// openGame resumes the player's unfinished game of the requested mode or starts a new one.
func (that *Session) openGame(ctx context.Context, player *entity.Player) (*entity.Game, error) {
	game, err := that.manager.ResumeGame(ctx, player.ID)
	switch {
	case err == nil && game.Mode == that.opts.Mode && !game.IsFinished():
		that.renderer.Line("Resuming your game.")
		return game, nil
	case err != nil && !errors.Is(err, apperror.ErrNotFound):
		return nil, fmt.Errorf("failed to resume game: %w", err)
	}

	game, err = that.manager.StartGame(ctx, player.ID, that.opts.Mode)
	if err != nil {
		return nil, fmt.Errorf("failed to start game: %w", err)
	}

	return game, nil
}

func (that *Session) botTurn(ctx context.Context, game *entity.Game) (*entity.Game, error) {
	that.renderer.Line("Computer is thinking...")

	if that.opts.ThinkingDelay > 0 {
		timer := time.NewTimer(that.opts.ThinkingDelay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return game, nil
		case <-timer.C:
		}
	}

	updated, err := that.manager.BotTurn(ctx, game.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to make bot turn: %w", err)
	}

	return updated, nil
}

// humanTurn waits for one command. It reports done when the player quits or the input is gone.
func (that *Session) humanTurn(ctx context.Context, game *entity.Game, lines <-chan string) (*entity.Game, bool, error) {
	that.renderer.Prompt(that.turnPrompt())

	var expired <-chan time.Time
	if that.opts.TurnTimeout > 0 {
		timer := time.NewTimer(that.opts.TurnTimeout)
		defer timer.Stop()
		expired = timer.C
	}

	for {
		select {
		case <-ctx.Done():
			return game, true, nil

		case <-expired:
			that.renderer.Warn("\nTime is up, the turn passes.")

			updated, err := that.manager.SkipTurn(ctx, game.ID)
			if err != nil {
				return nil, false, fmt.Errorf("failed to skip turn: %w", err)
			}
			return updated, false, nil

		case line, ok := <-lines:
			if !ok {
				return game, true, nil
			}

			cmd, cell, err := parseCommand(line)
			if err != nil {
				that.renderer.Warn(that.userMessage(err))
				that.renderer.Prompt(that.turnPrompt())
				continue
			}

			if cmd == commandQuit {
				return game, true, that.closeGame(ctx, game)
			}

			updated, err := that.manager.MakeTurn(ctx, game.ID, cell)
			if err != nil {
				if !isPlayerMistake(err) {
					return nil, false, fmt.Errorf("failed to make turn: %w", err)
				}

				that.renderer.Warn(that.userMessage(err))
				that.renderer.Prompt(that.turnPrompt())
				continue
			}

			return updated, false, nil
		}
	}
}

func (that *Session) askRestart(ctx context.Context, game *entity.Game, lines <-chan string) (*entity.Game, bool, error) {
	that.renderer.Prompt("Play again? [y/N]")

	var answer string
	select {
	case <-ctx.Done():
		return game, true, nil
	case answer = <-lines:
	}

	if !isYes(answer) {
		return game, true, that.closeGame(ctx, game)
	}

	updated, err := that.manager.Restart(ctx, game.ID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to restart game: %w", err)
	}

	that.renderer.Line("New round.")

	return updated, false, nil
}

func (that *Session) closeGame(ctx context.Context, game *entity.Game) error {
	if err := that.manager.CloseGame(ctx, game.ID); err != nil {
		return fmt.Errorf("failed to close game: %w", err)
	}

	that.renderer.Line("Bye!")

	return nil
}

func (that *Session) turnPrompt() string {
	if that.opts.TurnTimeout > 0 {
		return fmt.Sprintf("Choose a cell 1-9 or q to quit (%s):", that.opts.TurnTimeout)
	}
	return "Choose a cell 1-9 or q to quit:"
}

func isPlayerMistake(err error) bool {
	return errors.Is(err, apperror.ErrCellOccupied) ||
		errors.Is(err, apperror.ErrInvalidCell) ||
		errors.Is(err, apperror.ErrNotYourTurn) ||
		errors.Is(err, apperror.ErrGameFinished)
}

func (that *Session) userMessage(err error) string {
	switch {
	case errors.Is(err, apperror.ErrCellOccupied):
		return "That cell is already taken."
	case errors.Is(err, apperror.ErrInvalidCell):
		return "Pick a cell from 1 to 9."
	case errors.Is(err, apperror.ErrNotYourTurn):
		return "Wait for your turn."
	case errors.Is(err, apperror.ErrGameFinished):
		return "The game is over."
	default:
		that.logger.Error("unexpected error", "error", err)
		return "Something went wrong."
	}
}
