package console

import (
	"context"
	"errors"
	"io"
	"math/rand/v2"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-console/internal/mines"
)

const (
	newGamePrompt = "\nNew game?(Y/N): "
	sizePrompt    = "Choose board size (S/M/L): "
	goodbye       = "Thanks for playing, goodbye!\n"
)

// Shell offers new games until the player declines or the input ends.
// Input is read from the moment the shell is created until Close.
type Shell struct {
	prompter *prompter
	out      io.Writer
	rnd      *rand.Rand
	renderer Renderer
	handler  Handler
	logger   logrus.FieldLogger
}

func NewShell(
	in io.Reader, out io.Writer,
	rnd *rand.Rand,
	renderer Renderer,
	logger logrus.FieldLogger,
) *Shell {
	return &Shell{
		prompter: newPrompter(in, out),
		out:      out,
		rnd:      rnd,
		renderer: renderer,
		handler:  Wrap(HandlerFunc(Dispatch), Logging(logger)),
		logger:   logger,
	}
}

// Run returns nil when the player quits or the input is exhausted, and
// ErrClosed when the shell is closed while waiting for an answer.
func (s *Shell) Run(ctx context.Context) error {
	p := s.prompter
	for {
		answer, err := p.ask(ctx, newGamePrompt)
		if err != nil {
			return ignoreEOF(err)
		}

		switch answer {
		case "Y":
			size, err := p.ask(ctx, sizePrompt)
			if err != nil {
				return ignoreEOF(err)
			}
			if err := s.play(ctx, p, mines.ParsePreset(size)); err != nil {
				return ignoreEOF(err)
			}
		case "N":
			_, err := io.WriteString(s.out, goodbye)
			return err
		}
	}
}

func (s *Shell) play(ctx context.Context, p *prompter, preset mines.Preset) error {
	board := mines.NewGame(preset, s.rnd)
	logger := s.logger.WithFields(logrus.Fields{
		"preset": preset.String(),
		"params": board.Params().String(),
	})
	logger.Info("new game")

	session := &Session{
		board:    board,
		prompter: p,
		out:      s.out,
		renderer: s.renderer,
		handler:  s.handler,
		logger:   logger,
	}
	status, err := session.Play(ctx)
	if err != nil {
		logger.WithError(err).Info("game abandoned")
		return err
	}

	logger.WithFields(logrus.Fields{
		"status":   status.String(),
		"revealed": board.RevealedCount(),
		"flags":    board.FlagCount(),
	}).Info("game finished")
	return nil
}

// Close stops reading input. A pending Run returns ErrClosed.
func (s *Shell) Close() error {
	s.prompter.close()
	return nil
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
