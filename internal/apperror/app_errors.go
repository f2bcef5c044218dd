package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrGameIsNotStarted = errors.New("game is not started")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrInvalidCell      = errors.New("invalid cell index")
	ErrUnknownMode      = errors.New("unknown game mode")
	ErrNotFound         = errors.New("not found")

	// ErrInvalidBoard is returned for a board of the wrong size or one holding an unknown mark.
	ErrInvalidBoard = errors.New("invalid board")
	// ErrIllegalState is returned when a search is asked for a move on a full board that is not terminal.
	ErrIllegalState = errors.New("illegal board state")
	ErrInvalidMark  = errors.New("invalid mark")
)
