package game

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
)

// LinesPerCard is the size of one card block in a deck file: a
// "<name> <cost> <value>" header followed by the five grid rows.
const LinesPerCard = 1 + GridSize

// MaxCopies is how many times the same card may appear in one deck.
const MaxCopies = 2

//go:embed decks/default.deck
var defaultDeckSource string

var defaultDeck = sync.OnceValue(func() []Card {
	cards, err := ParseDeck(strings.NewReader(defaultDeckSource))
	if err != nil {
		panic(fmt.Sprintf("embedded default deck: %v", err))
	}
	return cards
})

// DefaultDeck returns a fresh copy of the built-in 30 card deck.
func DefaultDeck() []Card {
	return append([]Card(nil), defaultDeck()...)
}

// LoadDeck parses the deck file at path.
func LoadDeck(path string) ([]Card, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open deck: %w", err)
	}
	defer f.Close()

	cards, err := ParseDeck(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cards, nil
}

// ParseDeck reads cards in blocks of LinesPerCard lines and validates the
// result with ValidateDeck.
func ParseDeck(r io.Reader) ([]Card, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read deck: %w", err)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: no cards", ErrInvalidDeck)
	}
	if len(lines)%LinesPerCard != 0 {
		return nil, fmt.Errorf("%w: %d lines is not a multiple of %d", ErrInvalidDeck, len(lines), LinesPerCard)
	}

	cards := make([]Card, 0, len(lines)/LinesPerCard)
	for i := 0; i < len(lines); i += LinesPerCard {
		card, err := parseCard(lines[i], lines[i+1:i+LinesPerCard])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrInvalidDeck, i+1, err)
		}
		cards = append(cards, card)
	}

	if err := ValidateDeck(cards); err != nil {
		return nil, err
	}
	return cards, nil
}

func parseCard(header string, grid []string) (Card, error) {
	fields := strings.Split(header, " ")
	if len(fields) != 3 {
		return Card{}, fmt.Errorf("header %q must have 3 space separated fields", header)
	}
	cost, err := parseNumber(fields[1])
	if err != nil {
		return Card{}, fmt.Errorf("cost in header %q: %w", header, err)
	}
	value, err := parseNumber(fields[2])
	if err != nil {
		return Card{}, fmt.Errorf("value in header %q: %w", header, err)
	}
	return NewCard(fields[0], cost, value, grid)
}

// parseNumber accepts only the digits Card.String writes back: no sign and
// no leading zero.
func parseNumber(field string) (int, error) {
	if strings.TrimLeft(field, "0123456789") != "" || (len(field) > 1 && field[0] == '0') {
		return 0, fmt.Errorf("%q is not a plain number", field)
	}
	return strconv.Atoi(field)
}

// ValidateDeck rejects decks holding more than MaxCopies of any card.
func ValidateDeck(cards []Card) error {
	seen := make(map[Card]int, len(cards))
	for _, c := range cards {
		if c.IsZero() {
			return fmt.Errorf("%w: deck holds an empty card", ErrInvalidDeck)
		}
		seen[c]++
		if seen[c] > MaxCopies {
			return fmt.Errorf("%w: more than %d copies of %s", ErrInvalidDeck, MaxCopies, c.Name())
		}
	}
	return nil
}

// WriteDeck writes cards in the format ParseDeck reads.
func WriteDeck(w io.Writer, cards []Card) error {
	bw := bufio.NewWriter(w)
	for _, c := range cards {
		if _, err := bw.WriteString(c.String()); err != nil {
			return fmt.Errorf("failed to write card %s: %w", c.Name(), err)
		}
	}
	return bw.Flush()
}
