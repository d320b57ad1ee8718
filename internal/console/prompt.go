package console

import (
	"bufio"
	"context"
	"errors"
	"io"
	"sync"
)

// ErrClosed is returned by a pending or later question once the shell has
// been closed.
var ErrClosed = errors.New("console closed")

// prompter asks questions on out and reads the answers from in. Lines are
// read in the background so a pending question can be abandoned when the
// context ends or the prompter is closed.
type prompter struct {
	out       io.Writer
	lines     chan string
	done      chan struct{}
	closeOnce sync.Once
	err       error /* set before lines is closed */
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	p := &prompter{
		out:   out,
		lines: make(chan string),
		done:  make(chan struct{}),
	}
	go p.scan(in)
	return p
}

func (p *prompter) scan(in io.Reader) {
	defer close(p.lines)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		select {
		case p.lines <- scanner.Text():
		case <-p.done:
			return
		}
	}
	p.err = scanner.Err()
}

// ask prints the prompt and waits for the next line, returned as typed.
// io.EOF is returned once the input is exhausted.
func (p *prompter) ask(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if p.closed() {
		return "", ErrClosed
	}
	if _, err := io.WriteString(p.out, prompt); err != nil {
		return "", err
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-p.done:
		return "", ErrClosed
	case line, ok := <-p.lines:
		if !ok {
			if p.closed() {
				return "", ErrClosed
			}
			if p.err != nil {
				return "", p.err
			}
			return "", io.EOF
		}
		return line, nil
	}
}

func (p *prompter) closed() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}

func (p *prompter) close() {
	p.closeOnce.Do(func() {
		close(p.done)
	})
}
