package console

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-console/internal/mines"
)

const (
	movePrompt  = `Next move (O = open, F = flag e.g. "F 1 2"): `
	lostMessage = "\nBOOM!!! Game Over:(\n\n"
	wonMessage  = "\n You won!\n"
)

// Session plays a single game on the board it owns.
type Session struct {
	board    *mines.Board
	prompter *prompter
	out      io.Writer
	renderer Renderer
	handler  Handler
	logger   logrus.FieldLogger
}

// Play runs moves until the game is won or lost. Lines that do not parse as
// a command are skipped.
func (s *Session) Play(ctx context.Context) (mines.Status, error) {
	for {
		if err := ctx.Err(); err != nil {
			return s.board.Status(), err
		}
		if err := s.renderer.Render(s.out, s.board, false); err != nil {
			return s.board.Status(), err
		}

		line, err := s.prompter.ask(ctx, movePrompt)
		if err != nil {
			return s.board.Status(), err
		}

		cmd, err := ParseCommand(line)
		if err != nil {
			s.logger.WithError(err).WithField("line", line).Debug("ignoring input")
			continue
		}

		switch status := s.handler.Handle(s.board, cmd); status {
		case mines.Lost:
			if _, err := io.WriteString(s.out, lostMessage); err != nil {
				return status, err
			}
			return status, s.renderer.Render(s.out, s.board, true)
		case mines.Won:
			if _, err := io.WriteString(s.out, wonMessage); err != nil {
				return status, err
			}
			return status, s.renderer.Render(s.out, s.board, false)
		}
	}
}
