package engine

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
)

// Leaf scores, seen from the maximizer.
const (
	WinScore  = 10
	LossScore = -10
	DrawScore = 0
)

// NoMove is the index reported when the board is already terminal.
const NoMove = -1

// Move is a board index together with its minimax score.
type Move struct {
	Index int `json:"index"`
	Score int `json:"score"`
}

type Option func(*Searcher)

// WithFasterWins discounts leaf scores by search depth, so a sooner win
// (or a later loss) scores better than an equivalent one further away.
func WithFasterWins() Option {
	return func(s *Searcher) {
		s.fasterWins = true
	}
}

// Searcher runs an exhaustive minimax search. It holds no mutable state
// and can be shared between goroutines.
type Searcher struct {
	maximizer  Mark
	fasterWins bool
}

func NewSearcher(maximizer Mark, opts ...Option) (*Searcher, error) {
	if !maximizer.IsPlayer() {
		return nil, fmt.Errorf("%w: maximizer %s", apperror.ErrInvalidMark, maximizer)
	}

	searcher := &Searcher{maximizer: maximizer}
	for _, opt := range opts {
		opt(searcher)
	}

	return searcher, nil
}

var defaultSearcher = &Searcher{maximizer: PlayerO}

// BestMove searches with PlayerO as the maximizing side.
func BestMove(board Board, side Mark) (Move, error) {
	return defaultSearcher.BestMove(board, side)
}

func (that *Searcher) Maximizer() Mark {
	return that.maximizer
}

// BestMove returns the optimal move for side. Ties go to the lowest index.
// The board is taken by value; the caller's copy is never touched.
// On a terminal board the result has Index NoMove and the leaf score.
func (that *Searcher) BestMove(board Board, side Mark) (Move, error) {
	if err := board.Validate(); err != nil {
		return Move{Index: NoMove}, err
	}

	if !side.IsPlayer() {
		return Move{Index: NoMove}, fmt.Errorf("%w: side to move %s", apperror.ErrInvalidMark, side)
	}

	return that.search(&board, side, 0)
}

func (that *Searcher) search(board *Board, side Mark, depth int) (Move, error) {
	if outcome := evaluate(board); outcome.Terminal() {
		return Move{Index: NoMove, Score: that.leafScore(outcome, depth)}, nil
	}

	best := Move{Index: NoMove}
	for cell := range board {
		if board[cell] != Empty {
			continue
		}

		score, err := that.probe(board, cell, side, depth)
		if err != nil {
			return Move{Index: NoMove}, err
		}

		if best.Index == NoMove || that.prefers(side, score, best.Score) {
			best = Move{Index: cell, Score: score}
		}
	}

	if best.Index == NoMove {
		return best, fmt.Errorf("%w: no empty cell on a non-terminal board", apperror.ErrIllegalState)
	}

	return best, nil
}

// probe plays side at cell, scores the reply and always clears the cell again.
func (that *Searcher) probe(board *Board, cell int, side Mark, depth int) (int, error) {
	board[cell] = side
	defer func() {
		board[cell] = Empty
	}()

	reply, err := that.search(board, side.Opponent(), depth+1)
	if err != nil {
		return 0, err
	}

	return reply.Score, nil
}

func (that *Searcher) prefers(side Mark, score, best int) bool {
	if side == that.maximizer {
		return score > best
	}
	return score < best
}

func (that *Searcher) leafScore(outcome Outcome, depth int) int {
	win, ok := outcome.(Win)
	if !ok {
		return DrawScore
	}

	if !that.fasterWins {
		depth = 0
	}

	if win.Mark == that.maximizer {
		return WinScore - depth
	}
	return LossScore + depth
}
