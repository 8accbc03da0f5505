package game

import "fmt"

// MoveError reports a rejected placement. It unwraps to one of the
// ErrInvalidMove family so callers can branch with errors.Is.
type MoveError struct {
	Row, Col int
	Card     string
	Err      error
}

func (e *MoveError) Error() string {
	if e.Card == "" {
		return fmt.Sprintf("cannot place at (%d,%d): %v", e.Row, e.Col, e.Err)
	}
	return fmt.Sprintf("cannot place %s at (%d,%d): %v", e.Card, e.Row, e.Col, e.Err)
}

func (e *MoveError) Unwrap() error {
	return e.Err
}

func moveError(row, col int, card Card, err error) *MoveError {
	return &MoveError{Row: row, Col: col, Card: card.Name(), Err: err}
}
