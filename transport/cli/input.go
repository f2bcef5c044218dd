package cli

import (
	"bufio"
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
)

// readLines feeds trimmed input lines into the returned channel until EOF or ctx is done.
// A reader that is also an io.Closer is closed once ctx is done, which unblocks a pending read.
// Plain readers keep the scanning goroutine parked until their next line.
func readLines(ctx context.Context, in io.Reader) <-chan string {
	lines := make(chan string)

	if closer, ok := in.(io.Closer); ok {
		go func() {
			<-ctx.Done()
			_ = closer.Close()
		}()
	}

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- strings.TrimSpace(scanner.Text()):
			case <-ctx.Done():
				return
			}
		}
	}()

	return lines
}

type command int

const (
	commandCell command = iota
	commandQuit
)

// parseCommand accepts "q"/"quit" or a cell key from 1 to 9 and returns the board index.
func parseCommand(line string) (command, int, error) {
	switch strings.ToLower(line) {
	case "q", "quit", "exit":
		return commandQuit, 0, nil
	}

	key, err := strconv.Atoi(line)
	if err != nil || key < 1 || key > 9 {
		return commandCell, 0, apperror.ErrInvalidCell
	}

	return commandCell, key - 1, nil
}

func isYes(line string) bool {
	switch strings.ToLower(line) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
