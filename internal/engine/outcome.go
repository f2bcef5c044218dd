package engine

// Outcome is the result of evaluating a board. It is one of InProgress, Win or Draw.
type Outcome interface {
	// Terminal reports whether the game is over.
	Terminal() bool

	outcome()
}

// InProgress means no line is complete and at least one cell is empty.
type InProgress struct{}

// Win means Mark occupies every cell of Line.
type Win struct {
	Mark Mark
	Line Line
}

// Draw means the board is full and no line is complete.
type Draw struct{}

func (InProgress) Terminal() bool { return false }
func (Win) Terminal() bool        { return true }
func (Draw) Terminal() bool       { return true }

func (InProgress) outcome() {}
func (Win) outcome()        {}
func (Draw) outcome()       {}

// Evaluate reports the outcome of board. The first complete line in Lines() order wins.
func Evaluate(board Board) (Outcome, error) {
	if err := board.Validate(); err != nil {
		return nil, err
	}

	return evaluate(&board), nil
}

// evaluate assumes a validated board.
func evaluate(board *Board) Outcome {
	for _, line := range lines {
		a, b, c := board[line[0]], board[line[1]], board[line[2]]
		if a != Empty && a == b && b == c {
			return Win{Mark: a, Line: line}
		}
	}

	if board.IsFull() {
		return Draw{}
	}

	return InProgress{}
}
