package game

// Legal reports whether color may place card at (row, col): in bounds, no
// card there yet, and at least card.Cost() pawns of color.
func (b *Board) Legal(row, col int, card Card, color Color) bool {
	return b.check(row, col, card, color) == nil
}

func (b *Board) check(row, col int, card Card, color Color) error {
	if card.IsZero() {
		return moveError(row, col, card, ErrNilArgument)
	}
	if err := b.checkBounds(row, col); err != nil {
		return err
	}
	if err := b.cells[row][col].CanPlace(card, color); err != nil {
		return moveError(row, col, card, err)
	}
	return nil
}

// Apply places card for color and propagates its influence. Nothing is
// mutated when the placement is illegal.
func (b *Board) Apply(row, col int, card Card, color Color) error {
	if err := b.check(row, col, card, color); err != nil {
		return err
	}
	_ = b.cells[row][col].PlaceCard(card, color)

	for _, target := range b.influenced(row, col, card) {
		b.cells[target.Row][target.Col].ConvertPawns(color)
	}
	return nil
}

// influenced maps the card's influence offsets onto absolute in-bounds
// coordinates around (row, col).
func (b *Board) influenced(row, col int, card Card) []Offset {
	var targets []Offset
	for _, off := range card.Influence() {
		r, c := row+off.Row, col+off.Col
		if !b.InBounds(r, c) {
			continue
		}
		targets = append(targets, Offset{Row: r, Col: c})
	}
	return targets
}
