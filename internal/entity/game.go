package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/engine"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
	StatusWaiting  = "waiting"
)

const (
	// ModePvP is a hot-seat game: one terminal, both marks played by humans.
	ModePvP = "pvp"
	// ModeBot is a human against the minimax bot.
	ModeBot = "bot"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

type Game struct {
	ID      string       `json:"id"`
	Mode    string       `json:"mode"`
	Board   engine.Board `json:"board"`
	Turn    engine.Mark  `json:"player_turn"`
	Status  string       `json:"status"`
	Winner  engine.Mark  `json:"winner"`
	WinLine *engine.Line `json:"win_line,omitempty"`
	Players []*Player    `json:"players,omitempty"`
}

func ValidateMode(mode string) error {
	switch mode {
	case ModePvP, ModeBot:
		return nil
	default:
		return fmt.Errorf("%w: %q", apperror.ErrUnknownMode, mode)
	}
}

// NewGame returns a waiting game with an empty board and X to move.
func NewGame(id, mode string) *Game {
	return &Game{
		ID:     id,
		Mode:   mode,
		Turn:   engine.PlayerX,
		Status: StatusWaiting,
	}
}

func (that *Game) Start() {
	that.Status = StatusOngoing
}

// Outcome evaluates the current board.
func (that *Game) Outcome() (engine.Outcome, error) {
	outcome, err := engine.Evaluate(that.Board)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate board: %w", err)
	}

	return outcome, nil
}

func (that *Game) UpdateGameState() error {
	outcome, err := that.Outcome()
	if err != nil {
		return err
	}

	switch result := outcome.(type) {
	// one player wins
	case engine.Win:
		line := result.Line
		that.Winner = result.Mark
		that.WinLine = &line
		that.Status = StatusFinished
		that.Turn = engine.Empty
	// tie
	case engine.Draw:
		that.Winner = engine.Empty
		that.WinLine = nil
		that.Status = StatusFinished
		that.Turn = engine.Empty
	// game continue
	default:
		that.Status = StatusOngoing
	}

	return nil
}

func (that *Game) MakeTurn(mark engine.Mark, cell int) error {
	if err := that.ConfirmOngoingState(); err != nil {
		return err
	}

	if cell < 0 || cell >= len(that.Board) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if that.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	if that.Board[cell] != engine.Empty {
		return apperror.ErrCellOccupied
	}

	that.Board[cell] = mark
	that.Turn = mark.Opponent()

	return that.UpdateGameState()
}

// SkipTurn passes the move to the opponent without touching the board.
func (that *Game) SkipTurn() error {
	if err := that.ConfirmOngoingState(); err != nil {
		return err
	}

	that.Turn = that.Turn.Opponent()

	return nil
}

// Restart clears the board and starts a new round with X to move. Players keep their marks.
func (that *Game) Restart() {
	that.Board = engine.Board{}
	that.Turn = engine.PlayerX
	that.Winner = engine.Empty
	that.WinLine = nil
	that.Status = StatusOngoing
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}

// IsDraw reports a finished game without a winner.
func (that *Game) IsDraw() bool {
	return that.IsFinished() && that.Winner == engine.Empty
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsWaiting():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

func (that *Game) IsWithBot() bool {
	return that.Mode == ModeBot
}

func (that *Game) BotPlayer() *Player {
	for _, player := range that.Players {
		if player.IsBot() {
			return player
		}
	}
	return nil
}

// IsBotTurn reports whether the game is ongoing and the bot holds the turn.
func (that *Game) IsBotTurn() bool {
	bot := that.BotPlayer()
	return bot != nil && that.IsOngoing() && that.Turn == bot.Mark
}
