package cli

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/rocketscienceinc/tictactoe/internal/engine"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

func plainRenderer() (*Renderer, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewRenderer(termenv.NewOutput(&buf, termenv.WithProfile(termenv.Ascii))), &buf
}

func TestRenderer_Board(t *testing.T) {
	// Given: a game in progress
	renderer, buf := plainRenderer()
	game := entity.NewGame("g1", entity.ModePvP)
	game.Board = engine.Board{engine.PlayerX, engine.Empty, engine.Empty, engine.Empty, engine.PlayerO}

	// When: rendering the board
	renderer.Board(game)

	// Then: marks and free cell keys are shown
	want := "\n" +
		" X | 2 | 3 \n" +
		"---+---+---\n" +
		" 4 | O | 6 \n" +
		"---+---+---\n" +
		" 7 | 8 | 9 \n"
	assert.Equal(t, want, buf.String())
}

func TestRenderer_Status(t *testing.T) {
	t.Run("Hot-seat turn", func(t *testing.T) {
		renderer, buf := plainRenderer()
		game := entity.NewGame("g1", entity.ModePvP)
		game.Start()

		renderer.Status(game)

		assert.Equal(t, "X to move.\n", buf.String())
	})

	t.Run("Computer wins", func(t *testing.T) {
		renderer, buf := plainRenderer()
		game := entity.NewGame("g1", entity.ModeBot)
		game.Players = []*entity.Player{{ID: "p1", Mark: engine.PlayerX}, entity.NewBotPlayer("g1", engine.PlayerO)}
		game.Status = entity.StatusFinished
		game.Winner = engine.PlayerO

		renderer.Status(game)

		assert.Equal(t, "Computer (O) wins!\n", buf.String())
	})

	t.Run("Human to move against the computer", func(t *testing.T) {
		renderer, buf := plainRenderer()
		game := entity.NewGame("g1", entity.ModeBot)
		game.Players = []*entity.Player{{ID: "p1", Mark: engine.PlayerX}, entity.NewBotPlayer("g1", engine.PlayerO)}
		game.Start()

		renderer.Status(game)

		assert.Equal(t, "You (X) to move.\n", buf.String())
	})

	t.Run("Draw", func(t *testing.T) {
		renderer, buf := plainRenderer()
		game := &entity.Game{Status: entity.StatusFinished}

		renderer.Status(game)

		assert.Equal(t, "It's a draw.\n", buf.String())
	})
}
