package game

import (
	"fmt"
	"strings"
)

// GridSize is the width and height of a card's influence grid.
const GridSize = 5

const center = GridSize / 2

type Symbol byte

const (
	Origin    Symbol = 'C'
	Influence Symbol = 'I'
	Blank     Symbol = 'X'
)

const (
	MinCost = 1
	MaxCost = 3
)

// Offset is a position relative to the center of an influence grid.
type Offset struct {
	Row, Col int
}

// Card is an immutable value. Two cards are equal exactly when their
// textual renderings are equal, so == compares them structurally.
type Card struct {
	name  string
	cost  int
	value int
	grid  [GridSize]string
}

// NewCard validates the card and its influence grid.
func NewCard(name string, cost, value int, grid []string) (Card, error) {
	if name == "" || strings.ContainsAny(name, " \t\r\n") {
		return Card{}, fmt.Errorf("%w: name %q must be a single non-empty word", ErrInvalidCard, name)
	}
	if cost < MinCost || cost > MaxCost {
		return Card{}, fmt.Errorf("%w: cost %d of %s not in [%d,%d]", ErrInvalidCard, cost, name, MinCost, MaxCost)
	}
	if value <= 0 {
		return Card{}, fmt.Errorf("%w: value %d of %s must be positive", ErrInvalidCard, value, name)
	}
	if len(grid) != GridSize {
		return Card{}, fmt.Errorf("%w: %s has %d grid rows, want %d", ErrInvalidCard, name, len(grid), GridSize)
	}

	c := Card{name: name, cost: cost, value: value}
	origins := 0
	for r, row := range grid {
		if len(row) != GridSize {
			return Card{}, fmt.Errorf("%w: %s grid row %d is %q, want %d symbols", ErrInvalidCard, name, r, row, GridSize)
		}
		for col := 0; col < GridSize; col++ {
			switch Symbol(row[col]) {
			case Origin:
				if r != center || col != center {
					return Card{}, fmt.Errorf("%w: %s has origin off center at (%d,%d)", ErrInvalidCard, name, r, col)
				}
				origins++
			case Influence, Blank:
			default:
				return Card{}, fmt.Errorf("%w: %s has unknown symbol %q", ErrInvalidCard, name, row[col])
			}
		}
		c.grid[r] = row
	}
	if origins != 1 {
		return Card{}, fmt.Errorf("%w: %s needs exactly one origin, found %d", ErrInvalidCard, name, origins)
	}
	return c, nil
}

// MustCard is NewCard for statically known cards; it panics on error.
func MustCard(name string, cost, value int, grid ...string) Card {
	c, err := NewCard(name, cost, value, grid)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Card) Name() string { return c.name }
func (c Card) Cost() int    { return c.cost }
func (c Card) Value() int   { return c.value }

// IsZero reports whether c is the zero Card, i.e. no card at all.
func (c Card) IsZero() bool {
	return c.name == ""
}

// Grid returns the influence rows.
func (c Card) Grid() []string {
	return c.grid[:]
}

func (c Card) Symbol(row, col int) Symbol {
	return Symbol(c.grid[row][col])
}

// Influence lists the offsets of every influenced cell in grid row-major
// order.
func (c Card) Influence() []Offset {
	var offsets []Offset
	for r := 0; r < GridSize; r++ {
		for col := 0; col < GridSize; col++ {
			if c.Symbol(r, col) == Influence {
				offsets = append(offsets, Offset{Row: r - center, Col: col - center})
			}
		}
	}
	return offsets
}

// String renders the card in deck file format, one line per row.
func (c Card) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %d %d\n", c.name, c.cost, c.value)
	for _, row := range c.grid {
		sb.WriteString(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}
