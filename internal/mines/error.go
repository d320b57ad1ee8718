package mines

import "errors"

var (
	ErrInvalidParams   = errors.New("invalid board params")
	ErrMineCount       = errors.New("wrong number of mines")
	ErrMineOutOfBounds = errors.New("mine out of bounds")
	ErrDuplicateMine   = errors.New("duplicate mine")
)
