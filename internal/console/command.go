package console

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gorilla/schema"
)

type Action string

const (
	Open Action = "O"
	Flag Action = "F"
)

// Command is a player move with 0-indexed coordinates.
type Command struct {
	Action Action
	Row    int
	Col    int
}

var (
	ErrMalformedCommand = errors.New("malformed command")
	ErrUnknownAction    = errors.New("unknown action")
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

type commandParams struct {
	Action string `schema:"action,required"`
	Row    int    `schema:"row,required"`
	Col    int    `schema:"col,required"`
}

// order of the words in a command line
var commandFields = [...]string{"action", "row", "col"}

// ParseCommand reads a line such as "O 3 4", where coordinates are
// 1-indexed as typed by the player.
func ParseCommand(line string) (Command, error) {
	words := strings.Fields(line)
	if len(words) != len(commandFields) {
		return Command{}, fmt.Errorf(
			"%w: want %d words, have %d", ErrMalformedCommand, len(commandFields), len(words),
		)
	}

	src := make(map[string][]string, len(commandFields))
	for i, name := range commandFields {
		src[name] = []string{words[i]}
	}

	var params commandParams
	if err := decoder.Decode(&params, src); err != nil {
		return Command{}, fmt.Errorf("%w: %w", ErrMalformedCommand, err)
	}

	action := Action(params.Action)
	if action != Open && action != Flag {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownAction, params.Action)
	}

	return Command{Action: action, Row: params.Row - 1, Col: params.Col - 1}, nil
}

func (c Command) String() string {
	return fmt.Sprintf("%s %d %d", c.Action, c.Row+1, c.Col+1)
}
