package game

import "fmt"

// Board is a fixed rows x cols grid of cells. The number of columns is odd
// so the board has a center column.
type Board struct {
	rows  int
	cols  int
	cells [][]Cell
}

func NewBoard(rows, cols int) (*Board, error) {
	if rows < 1 {
		return nil, fmt.Errorf("%w: rows %d must be at least 1", ErrInvalidDimensions, rows)
	}
	if cols < 3 || cols%2 == 0 {
		return nil, fmt.Errorf("%w: cols %d must be odd and at least 3", ErrInvalidDimensions, cols)
	}
	cells := make([][]Cell, rows)
	for r := range cells {
		cells[r] = make([]Cell, cols)
	}
	return &Board{rows: rows, cols: cols, cells: cells}, nil
}

func (b *Board) Rows() int { return b.rows }
func (b *Board) Cols() int { return b.cols }
func (b *Board) Area() int { return b.rows * b.cols }

func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

func (b *Board) checkBounds(row, col int) error {
	if !b.InBounds(row, col) {
		return &MoveError{Row: row, Col: col, Err: ErrOutOfBounds}
	}
	return nil
}

// CellAt returns a copy of the cell.
func (b *Board) CellAt(row, col int) (Cell, error) {
	if err := b.checkBounds(row, col); err != nil {
		return Cell{}, err
	}
	return b.cells[row][col], nil
}

func (b *Board) PlacePawn(row, col int, color Color) error {
	if err := b.checkBounds(row, col); err != nil {
		return err
	}
	if err := b.cells[row][col].PlacePawn(color); err != nil {
		return &MoveError{Row: row, Col: col, Err: err}
	}
	return nil
}

func (b *Board) PlaceCard(row, col int, card Card, color Color) error {
	if err := b.checkBounds(row, col); err != nil {
		return err
	}
	if err := b.cells[row][col].PlaceCard(card, color); err != nil {
		return moveError(row, col, card, err)
	}
	return nil
}

// RowScore sums the values of the cards color owns in row.
func (b *Board) RowScore(color Color, row int) (int, error) {
	if row < 0 || row >= b.rows {
		return 0, fmt.Errorf("row %d: %w", row, ErrOutOfBounds)
	}
	score := 0
	for _, cell := range b.cells[row] {
		if cell.HasCard() && cell.Owner() == color {
			score += cell.Value()
		}
	}
	return score, nil
}

// RowLeader returns the color with the strictly greater row score, or
// NoColor when the row is tied.
func (b *Board) RowLeader(row int) (Color, error) {
	red, err := b.RowScore(Red, row)
	if err != nil {
		return NoColor, err
	}
	blue, _ := b.RowScore(Blue, row)
	switch {
	case red > blue:
		return Red, nil
	case blue > red:
		return Blue, nil
	default:
		return NoColor, nil
	}
}

// Count returns how many cells color currently owns.
func (b *Board) Count(color Color) int {
	n := 0
	for _, row := range b.cells {
		for _, cell := range row {
			if cell.Owner() == color {
				n++
			}
		}
	}
	return n
}

// Snapshot returns a deep copy that shares no state with b.
func (b *Board) Snapshot() *Board {
	cells := make([][]Cell, b.rows)
	for r := range b.cells {
		cells[r] = make([]Cell, b.cols)
		copy(cells[r], b.cells[r])
	}
	return &Board{rows: b.rows, cols: b.cols, cells: cells}
}
