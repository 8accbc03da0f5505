package game

import (
	"fmt"
	"sanguine/utils"

	"golang.org/x/exp/rand"
)

// Player is one side's deck and hand. The hand never grows past maxHand.
type Player struct {
	color   Color
	deck    []Card
	hand    []Card
	maxHand int
}

// NewPlayer copies deck; the hand starts empty.
func NewPlayer(color Color, deck []Card, maxHand int) (*Player, error) {
	if !color.valid() {
		return nil, ErrInvalidColor
	}
	if len(deck) == 0 {
		return nil, fmt.Errorf("%w: %s deck is empty", ErrInvalidDeck, color)
	}
	if maxHand <= 0 {
		return nil, fmt.Errorf("%w: hand size %d must be positive", ErrPrecondition, maxHand)
	}
	return &Player{
		color:   color,
		deck:    append([]Card(nil), deck...),
		hand:    make([]Card, 0, maxHand),
		maxHand: maxHand,
	}, nil
}

func (p *Player) Color() Color { return p.color }
func (p *Player) MaxHand() int { return p.maxHand }

func (p *Player) Hand() []Card {
	return append([]Card(nil), p.hand...)
}

// Shuffle reorders the remaining deck.
func (p *Player) Shuffle(r *rand.Rand) {
	r.Shuffle(len(p.deck), func(i, j int) {
		p.deck[i], p.deck[j] = p.deck[j], p.deck[i]
	})
}

// Draw moves n cards from the top of the deck into the hand.
func (p *Player) Draw(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: cannot draw %d cards", ErrPrecondition, n)
	}
	if n > len(p.deck) {
		return fmt.Errorf("%w: cannot draw %d cards from a deck of %d", ErrPrecondition, n, len(p.deck))
	}
	if len(p.hand)+n > p.maxHand {
		return fmt.Errorf("%w: drawing %d would exceed hand size %d", ErrPrecondition, n, p.maxHand)
	}
	p.hand = append(p.hand, p.deck[:n]...)
	p.deck = p.deck[n:]
	return nil
}

// HasCard reports whether card is in the hand.
func (p *Player) HasCard(card Card) bool {
	return p.indexOf(card) >= 0
}

// Discard removes the first copy of card from the hand.
func (p *Player) Discard(card Card) error {
	i := p.indexOf(card)
	if i < 0 {
		return ErrCardNotInHand
	}
	p.hand = append(p.hand[:i], p.hand[i+1:]...)
	return nil
}

func (p *Player) indexOf(card Card) int {
	return utils.FindIndex(p.hand, card)
}
