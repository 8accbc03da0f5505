package game

import (
	"errors"
	"fmt"
)

// Precondition failures are fatal to the operation that hit them and leave
// the game untouched.
var (
	ErrPrecondition   = errors.New("precondition failed")
	ErrNotStarted     = fmt.Errorf("%w: game has not started", ErrPrecondition)
	ErrAlreadyStarted = fmt.Errorf("%w: game has already been started", ErrPrecondition)
	ErrGameOver       = fmt.Errorf("%w: game is over", ErrPrecondition)
	ErrReentrant      = fmt.Errorf("%w: game cannot be mutated from a listener", ErrPrecondition)
	ErrNilArgument    = fmt.Errorf("%w: missing argument", ErrPrecondition)
	ErrInvalidColor   = fmt.Errorf("%w: invalid color", ErrPrecondition)
)

// Invalid moves are recoverable: the caller may ask for another move.
var (
	ErrInvalidMove       = errors.New("invalid move")
	ErrOutOfBounds       = fmt.Errorf("%w: coordinates out of bounds", ErrInvalidMove)
	ErrOccupied          = fmt.Errorf("%w: cell already holds a card", ErrInvalidMove)
	ErrInsufficientPawns = fmt.Errorf("%w: not enough pawns for card cost", ErrInvalidMove)
	ErrOwnershipConflict = fmt.Errorf("%w: cell is owned by the other color", ErrInvalidMove)
	ErrCapacity          = fmt.Errorf("%w: cell already holds three pawns", ErrInvalidMove)
	ErrCardNotInHand     = fmt.Errorf("%w: card is not in hand", ErrInvalidMove)
)

var (
	ErrInvalidDeck       = errors.New("invalid deck")
	ErrInvalidCard       = errors.New("invalid card")
	ErrInvalidDimensions = errors.New("invalid board dimensions")
)
