package console

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-console/internal/mines"
)

// Handler applies a command to a board and reports the resulting status.
type Handler interface {
	Handle(b *mines.Board, c Command) mines.Status
}

type HandlerFunc func(b *mines.Board, c Command) mines.Status

func (f HandlerFunc) Handle(b *mines.Board, c Command) mines.Status {
	return f(b, c)
}

type Middleware func(Handler) Handler

func Wrap(h Handler, mws ...Middleware) Handler {
	for _, mw := range mws {
		h = mw(h)
	}
	return h
}

// Dispatch applies a command to the board. Already revealed cells are not
// opened again.
func Dispatch(b *mines.Board, c Command) mines.Status {
	switch c.Action {
	case Open:
		if !b.Revealed(c.Row, c.Col) {
			b.Reveal(c.Row, c.Col)
		}
	case Flag:
		b.Flag(c.Row, c.Col)
	}
	return b.Status()
}

func Logging(logger logrus.FieldLogger) Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(b *mines.Board, c Command) mines.Status {
			start := time.Now()

			status := next.Handle(b, c)

			logger.WithFields(logrus.Fields{
				"action":   c.Action,
				"row":      c.Row,
				"col":      c.Col,
				"status":   status.String(),
				"revealed": b.RevealedCount(),
				"flags":    b.FlagCount(),
				"duration": time.Since(start),
			}).Debug("handled command")

			return status
		})
	}
}
