package cli

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
)

func TestParseCommand(t *testing.T) {
	t.Run("Cell keys map to board indices", func(t *testing.T) {
		for key, index := range map[string]int{"1": 0, "5": 4, "9": 8} {
			cmd, cell, err := parseCommand(key)

			require.NoError(t, err)
			assert.Equal(t, commandCell, cmd)
			assert.Equal(t, index, cell)
		}
	})

	t.Run("Quit", func(t *testing.T) {
		for _, line := range []string{"q", "Q", "quit"} {
			cmd, _, err := parseCommand(line)

			require.NoError(t, err)
			assert.Equal(t, commandQuit, cmd)
		}
	})

	t.Run("Anything else is an invalid cell", func(t *testing.T) {
		for _, line := range []string{"", "0", "10", "x", "-1"} {
			_, _, err := parseCommand(line)

			require.ErrorIs(t, err, apperror.ErrInvalidCell, line)
		}
	})
}

func TestReadLines(t *testing.T) {
	// Given: three lines with stray spaces
	lines := readLines(context.Background(), strings.NewReader(" 1 \n\nq\n"))

	// When: draining the channel
	var got []string
	for line := range lines {
		got = append(got, line)
	}

	// Then: lines arrive trimmed and the channel closes at EOF
	assert.Equal(t, []string{"1", "", "q"}, got)
}

func TestReadLines_ClosesReaderOnCancel(t *testing.T) {
	// Given: a pipe nobody writes to
	reader, writer := io.Pipe()
	t.Cleanup(func() { _ = writer.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	lines := readLines(ctx, reader)

	// When: the context is cancelled
	cancel()

	// Then: the pending read is released and the channel closes
	select {
	case _, ok := <-lines:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("lines channel was not closed after cancel")
	}

	// Then: the reader is closed
	_, err := writer.Write([]byte("1\n"))
	require.ErrorIs(t, err, io.ErrClosedPipe)
}
