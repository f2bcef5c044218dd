package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe/internal/engine"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

const (
	colorX    = "#E88388"
	colorO    = "#66C2CD"
	colorHint = "#5C5C5C"
	colorWarn = "#DBAB79"
)

// Renderer draws the game on a terminal. Colours degrade with the output's profile.
type Renderer struct {
	out *termenv.Output
}

func NewRenderer(out *termenv.Output) *Renderer {
	return &Renderer{out: out}
}

// Board prints the grid. Empty cells show the key that selects them.
func (that *Renderer) Board(game *entity.Game) {
	winning := make(map[int]bool, 3)
	if game.WinLine != nil {
		for _, cell := range game.WinLine {
			winning[cell] = true
		}
	}

	var sb strings.Builder
	sb.WriteByte('\n')
	for row := 0; row < 3; row++ {
		cells := make([]string, 0, 3)
		for col := 0; col < 3; col++ {
			index := row*3 + col
			cells = append(cells, " "+that.cell(game.Board[index], index, winning[index])+" ")
		}
		sb.WriteString(strings.Join(cells, "|"))
		sb.WriteByte('\n')
		if row < 2 {
			sb.WriteString("---+---+---\n")
		}
	}

	_, _ = fmt.Fprint(that.out, sb.String())
}

func (that *Renderer) cell(mark engine.Mark, index int, winning bool) string {
	switch mark {
	case engine.PlayerX, engine.PlayerO:
		style := that.out.String(mark.String()).Foreground(that.markColor(mark)).Bold()
		if winning {
			style = style.Reverse()
		}
		return style.String()
	default:
		return that.out.String(strconv.Itoa(index + 1)).Foreground(that.out.Color(colorHint)).Faint().String()
	}
}

func (that *Renderer) markColor(mark engine.Mark) termenv.Color {
	if mark == engine.PlayerX {
		return that.out.Color(colorX)
	}
	return that.out.Color(colorO)
}

func (that *Renderer) mark(mark engine.Mark) string {
	return that.out.String(mark.String()).Foreground(that.markColor(mark)).Bold().String()
}

// Status prints whose turn it is or how the game ended.
func (that *Renderer) Status(game *entity.Game) {
	switch {
	case game.IsDraw():
		that.Line("It's a draw.")
	case game.IsFinished():
		that.Line(fmt.Sprintf("%s wins!", that.side(game, game.Winner)))
	default:
		that.Line(fmt.Sprintf("%s to move.", that.side(game, game.Turn)))
	}
}

// side names a mark, telling the human and the computer apart in bot games.
func (that *Renderer) side(game *entity.Game, mark engine.Mark) string {
	bot := game.BotPlayer()
	switch {
	case bot == nil:
		return that.mark(mark)
	case bot.Mark == mark:
		return "Computer (" + that.mark(mark) + ")"
	default:
		return "You (" + that.mark(mark) + ")"
	}
}

func (that *Renderer) Prompt(text string) {
	_, _ = fmt.Fprint(that.out, text+" ")
}

func (that *Renderer) Line(text string) {
	_, _ = fmt.Fprintln(that.out, text)
}

func (that *Renderer) Warn(text string) {
	that.Line(that.out.String(text).Foreground(that.out.Color(colorWarn)).String())
}
