package game

// MaxPawns is the most pawns a single cell can hold.
const MaxPawns = 3

// Cell holds either up to three pawns of one color or a single card. The
// zero value is an empty cell.
type Cell struct {
	pawns     int
	pawnColor Color
	card      Card
	cardColor Color
}

func (c *Cell) PlacePawn(color Color) error {
	switch {
	case c.HasCard():
		return ErrOwnershipConflict
	case c.pawns == 0:
		c.pawns = 1
		c.pawnColor = color
		return nil
	case c.pawnColor != color:
		return ErrOwnershipConflict
	case c.pawns >= MaxPawns:
		return ErrCapacity
	}
	c.pawns++
	return nil
}

// CanPlace reports why card could not be placed by color, or nil.
func (c *Cell) CanPlace(card Card, color Color) error {
	if c.HasCard() {
		return ErrOccupied
	}
	if c.pawns < card.Cost() {
		return ErrInsufficientPawns
	}
	if c.pawnColor != color {
		return ErrOwnershipConflict
	}
	return nil
}

func (c *Cell) PlaceCard(card Card, color Color) error {
	if err := c.CanPlace(card, color); err != nil {
		return err
	}
	c.pawns = 0
	c.pawnColor = NoColor
	c.card = card
	c.cardColor = color
	return nil
}

// ConvertPawns applies influence: cards are untouched, pawns change color
// keeping their count, and an empty cell receives its first pawn.
func (c *Cell) ConvertPawns(color Color) {
	if c.HasCard() {
		return
	}
	if c.pawns == 0 {
		c.pawns = 1
	}
	c.pawnColor = color
}

func (c Cell) Owner() Color {
	if c.pawns > 0 {
		return c.pawnColor
	}
	if c.HasCard() {
		return c.cardColor
	}
	return NoColor
}

func (c Cell) Pawns() int {
	return c.pawns
}

func (c Cell) HasCard() bool {
	return !c.card.IsZero()
}

func (c Cell) Card() (Card, bool) {
	return c.card, c.HasCard()
}

// Value is the value of the placed card, or 0.
func (c Cell) Value() int {
	if !c.HasCard() {
		return 0
	}
	return c.card.Value()
}

func (c Cell) IsEmpty() bool {
	return c.pawns == 0 && !c.HasCard()
}
