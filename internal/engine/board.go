// Package engine holds the game-outcome core: the board, win/draw detection
// and the minimax search used by the computer player. Nothing here does I/O.
package engine

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
)

// BoardSize is the number of cells on a 3x3 board.
const BoardSize = 9

// Mark is the content of a single cell.
type Mark uint8

const (
	Empty Mark = iota
	PlayerX
	PlayerO
)

func (m Mark) String() string {
	switch m {
	case Empty:
		return ""
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return fmt.Sprintf("Mark(%d)", uint8(m))
	}
}

// IsPlayer reports whether m is PlayerX or PlayerO.
func (m Mark) IsPlayer() bool {
	return m == PlayerX || m == PlayerO
}

// Opponent returns the other player's mark. Empty stays Empty.
func (m Mark) Opponent() Mark {
	switch m {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return m
	}
}

func (m Mark) valid() bool {
	return m == Empty || m.IsPlayer()
}

func (m Mark) MarshalText() ([]byte, error) {
	if !m.valid() {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidMark, uint8(m))
	}
	return []byte(m.String()), nil
}

func (m *Mark) UnmarshalText(text []byte) error {
	parsed, err := ParseMark(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ParseMark converts "", "X" or "O" (case-insensitive) into a Mark.
func ParseMark(s string) (Mark, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "":
		return Empty, nil
	case "X":
		return PlayerX, nil
	case "O":
		return PlayerO, nil
	default:
		return Empty, fmt.Errorf("%w: %q", apperror.ErrInvalidBoard, s)
	}
}

// Board is a 3x3 grid stored row-major: index 3*row + col.
type Board [BoardSize]Mark

// Line is a triple of board indices.
type Line [3]int

// lines are the 8 winning lines in the order they are checked:
// rows top to bottom, columns left to right, then the two diagonals.
var lines = [8]Line{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Lines returns a copy of the winning lines in evaluation order.
func Lines() [8]Line {
	return lines
}

// ParseBoard builds a Board from a slice of exactly BoardSize valid marks.
func ParseBoard(cells []Mark) (Board, error) {
	var board Board

	if len(cells) != BoardSize {
		return board, fmt.Errorf("%w: expected %d cells, got %d", apperror.ErrInvalidBoard, BoardSize, len(cells))
	}

	copy(board[:], cells)
	if err := board.Validate(); err != nil {
		return Board{}, err
	}

	return board, nil
}

// Validate checks that every cell holds Empty, PlayerX or PlayerO.
func (b *Board) Validate() error {
	for i, cell := range b {
		if !cell.valid() {
			return fmt.Errorf("%w: cell %d holds %s", apperror.ErrInvalidBoard, i, cell)
		}
	}
	return nil
}

// EmptyCells returns the indices of the empty cells in ascending order.
func (b *Board) EmptyCells() []int {
	cells := make([]int, 0, BoardSize)
	for i, cell := range b {
		if cell == Empty {
			cells = append(cells, i)
		}
	}
	return cells
}

func (b *Board) IsFull() bool {
	for _, cell := range b {
		if cell == Empty {
			return false
		}
	}
	return true
}

// Count returns how many cells hold mark.
func (b *Board) Count(mark Mark) int {
	n := 0
	for _, cell := range b {
		if cell == mark {
			n++
		}
	}
	return n
}

// String renders the board as three rows, empty cells shown as '.'.
func (b Board) String() string {
	var sb strings.Builder
	for i, cell := range b {
		if cell == Empty {
			sb.WriteByte('.')
		} else {
			sb.WriteString(cell.String())
		}
		if i%3 == 2 && i != BoardSize-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
