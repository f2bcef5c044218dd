package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/engine"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/repository"
	"github.com/rocketscienceinc/tictactoe/internal/service"
	"github.com/rocketscienceinc/tictactoe/internal/usecase"
	"github.com/rocketscienceinc/tictactoe/testing/suite"
)

func newManager(t *testing.T) *usecase.GameManager {
	t.Helper()

	_, st := suite.NewEmbedded(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return usecase.NewGameManager(
		logger,
		service.NewPlayerService(repository.NewPlayerRepository(st.Storage, 0)),
		service.NewGameService(repository.NewGameRepository(st.Storage, 0), engine.PlayerO),
		service.NewBotService(logger),
	)
}

func runSession(t *testing.T, ctx context.Context, manager *usecase.GameManager, in io.Reader, opts Options) string {
	t.Helper()

	var buf bytes.Buffer
	out := termenv.NewOutput(&buf, termenv.WithProfile(termenv.Ascii))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	require.NoError(t, NewSession(logger, manager, in, out, opts).Run(ctx))

	return buf.String()
}

func TestSession_HotSeatWin(t *testing.T) {
	// Given: a hot-seat game where X takes the top row
	manager := newManager(t)
	input := strings.NewReader("1\n4\n2\n5\n3\nn\n")

	// When: the session runs
	output := runSession(t, context.Background(), manager, input, Options{Mode: entity.ModePvP, PlayerID: "alice"})

	// Then: X wins, the game is closed on "n"
	assert.Contains(t, output, "X wins!")
	assert.Contains(t, output, "Play again? [y/N]")
	assert.Contains(t, output, "Bye!")

	_, err := manager.ResumeGame(context.Background(), "alice")
	require.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestSession_PlayerMistakes(t *testing.T) {
	// Given: input with an occupied cell and a bad key before quitting
	manager := newManager(t)
	input := strings.NewReader("5\n5\nabc\nq\n")

	// When: the session runs
	output := runSession(t, context.Background(), manager, input, Options{Mode: entity.ModePvP, PlayerID: "alice"})

	// Then: both mistakes are reported and q closes the game
	assert.Contains(t, output, "That cell is already taken.")
	assert.Contains(t, output, "Pick a cell from 1 to 9.")
	assert.Contains(t, output, "Bye!")
}

func TestSession_Restart(t *testing.T) {
	manager := newManager(t)
	input := strings.NewReader("1\n4\n2\n5\n3\ny\nq\n")

	output := runSession(t, context.Background(), manager, input, Options{Mode: entity.ModePvP, PlayerID: "alice"})

	assert.Contains(t, output, "New round.")
	assert.Equal(t, 1, strings.Count(output, "X wins!"))
	assert.Contains(t, output, "Bye!")
}

func TestSession_BotNeverLoses(t *testing.T) {
	// Given: a human trying every cell in order against the computer
	manager := newManager(t)
	input := strings.NewReader("1\n2\n3\n4\n5\n6\n7\n8\n9\n")

	// When: the session runs until the input ends
	output := runSession(t, context.Background(), manager, input, Options{Mode: entity.ModeBot, PlayerID: "alice"})

	// Then: the computer moved and the human did not win
	assert.Contains(t, output, "Computer is thinking...")
	assert.NotContains(t, output, "You (X) wins!")
}

func TestSession_ResumesUnfinishedGame(t *testing.T) {
	ctx := context.Background()
	manager := newManager(t)

	// Given: a session that stops after the first move
	runSession(t, ctx, manager, strings.NewReader("5\n"), Options{Mode: entity.ModePvP, PlayerID: "alice"})

	// When: the same player comes back
	output := runSession(t, ctx, manager, strings.NewReader(""), Options{Mode: entity.ModePvP, PlayerID: "alice"})

	// Then: the stored game is shown again
	assert.Contains(t, output, "Resuming your game.")
	assert.Contains(t, output, " 4 | X | 6 ")
}

func TestSession_TurnTimeout(t *testing.T) {
	// Given: a bot game with a short countdown and a player who never answers
	manager := newManager(t)
	reader, writer := io.Pipe()
	t.Cleanup(func() { _ = writer.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	// When: the session runs until the context ends
	output := runSession(t, ctx, manager, reader, Options{
		Mode:        entity.ModeBot,
		PlayerID:    "alice",
		TurnTimeout: 50 * time.Millisecond,
	})

	// Then: the turn passed to the computer, which moved
	assert.Contains(t, output, "Time is up, the turn passes.")
	assert.Contains(t, output, "Computer is thinking...")

	game, err := manager.ResumeGame(context.Background(), "alice")
	require.NoError(t, err)
	assert.Positive(t, game.Board.Count(engine.PlayerO))
}
