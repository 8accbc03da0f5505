package game

import (
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"
)

type Option func(g *Game)

// WithSeed shuffles both decks at start with a source seeded by seed.
// Without it the decks are dealt in the order given.
func WithSeed(seed uint64) Option {
	return func(g *Game) {
		g.shuffle = true
		g.seed = seed
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(g *Game) {
		g.log = logger
	}
}

// Game is the rules engine. It is the sole owner and mutator of the board
// and both players; everything else reads it through View.
type Game struct {
	board   *Board
	players map[Color]*Player
	turn    Color
	passes  int // consecutive passes, never negative
	started bool

	shuffle bool
	seed    uint64
	log     zerolog.Logger

	listeners    []Listener
	notifying    bool
	overNotified bool
}

var _ View = (*Game)(nil)

func NewGame(options ...Option) *Game {
	g := &Game{log: zerolog.Nop()}
	for _, option := range options {
		option(g)
	}
	return g
}

// StartGame validates the setup, builds the board, seeds each side's edge
// column with one pawn per row and deals the opening hands. Empty decks are
// replaced by DefaultDeck.
func (g *Game) StartGame(rows, cols int, deck1, deck2 []Card, handSize int) error {
	if g.started {
		return ErrAlreadyStarted
	}

	board, err := NewBoard(rows, cols)
	if err != nil {
		return err
	}
	if len(deck1) == 0 {
		deck1 = DefaultDeck()
	}
	if len(deck2) == 0 {
		deck2 = DefaultDeck()
	}

	players := make(map[Color]*Player, len(Colors))
	for i, deck := range [][]Card{deck1, deck2} {
		color := Colors[i]
		if len(deck) < board.Area() {
			return fmt.Errorf("%w: %s deck has %d cards, board needs %d", ErrInvalidDeck, color, len(deck), board.Area())
		}
		if err := ValidateDeck(deck); err != nil {
			return fmt.Errorf("%s deck: %w", color, err)
		}
		if handSize <= 0 || handSize > len(deck)/3 {
			return fmt.Errorf("%w: hand size %d must be in [1,%d] for the %s deck", ErrInvalidDeck, handSize, len(deck)/3, color)
		}
		p, err := NewPlayer(color, deck, handSize)
		if err != nil {
			return err
		}
		players[color] = p
	}

	if g.shuffle {
		r := rand.New(rand.NewSource(g.seed))
		for _, color := range Colors {
			players[color].Shuffle(r)
		}
	}
	for _, color := range Colors {
		if err := players[color].Draw(handSize); err != nil {
			return err
		}
	}

	for row := 0; row < rows; row++ {
		_ = board.PlacePawn(row, 0, Red)
		_ = board.PlacePawn(row, cols-1, Blue)
	}

	g.board = board
	g.players = players
	g.turn = Red
	g.passes = 0
	g.started = true

	g.log.Debug().Int("rows", rows).Int("cols", cols).Int("hand", handSize).Msg("game started")
	return nil
}

// PlayTurn places card from the current player's hand at (row, col),
// propagates its influence, refills the hand by one and passes the turn.
// On any error the game is unchanged.
func (g *Game) PlayTurn(row, col int, card Card) error {
	if err := g.checkMutable(); err != nil {
		return err
	}
	current := g.players[g.turn]
	if !card.IsZero() && !current.HasCard(card) {
		return moveError(row, col, card, ErrCardNotInHand)
	}
	if err := g.board.Apply(row, col, card, g.turn); err != nil {
		return err
	}

	_ = current.Discard(card)
	if len(current.deck) > 0 && len(current.hand) < current.MaxHand() {
		_ = current.Draw(1)
	}

	g.log.Debug().
		Stringer("player", g.turn).
		Str("card", card.Name()).
		Int("row", row).
		Int("col", col).
		Msg("card placed")

	g.turn = g.turn.Opponent()
	g.passes = 0
	g.notify()
	return nil
}

// PassTurn hands the turn to the opponent. Two passes in a row end the game.
func (g *Game) PassTurn() error {
	if err := g.checkMutable(); err != nil {
		return err
	}

	g.log.Debug().Stringer("player", g.turn).Int("passes", g.passes+1).Msg("turn passed")

	g.turn = g.turn.Opponent()
	g.passes++
	g.notify()
	return nil
}

func (g *Game) checkMutable() error {
	switch {
	case !g.started:
		return ErrNotStarted
	case g.notifying:
		return ErrReentrant
	case g.passes >= 2:
		return ErrGameOver
	}
	return nil
}

func (g *Game) checkStarted() error {
	if !g.started {
		return ErrNotStarted
	}
	return nil
}

func (g *Game) player(color Color) (*Player, error) {
	if err := g.checkStarted(); err != nil {
		return nil, err
	}
	p, ok := g.players[color]
	if !ok {
		return nil, ErrInvalidColor
	}
	return p, nil
}

func (g *Game) IsGameOver() (bool, error) {
	if err := g.checkStarted(); err != nil {
		return false, err
	}
	return g.passes >= 2, nil
}

// ConsecutivePasses is the current pass streak.
func (g *Game) ConsecutivePasses() int {
	return g.passes
}

func (g *Game) Turn() (Color, error) {
	if err := g.checkStarted(); err != nil {
		return NoColor, err
	}
	return g.turn, nil
}

// Hand returns a copy of color's hand.
func (g *Game) Hand(color Color) ([]Card, error) {
	p, err := g.player(color)
	if err != nil {
		return nil, err
	}
	return p.Hand(), nil
}

// DeckSize is the number of cards color has left to draw.
func (g *Game) DeckSize(color Color) (int, error) {
	p, err := g.player(color)
	if err != nil {
		return 0, err
	}
	return len(p.deck), nil
}

func (g *Game) CellAt(row, col int) (Cell, error) {
	if err := g.checkStarted(); err != nil {
		return Cell{}, err
	}
	return g.board.CellAt(row, col)
}

func (g *Game) Owner(row, col int) (Color, error) {
	cell, err := g.CellAt(row, col)
	if err != nil {
		return NoColor, err
	}
	return cell.Owner(), nil
}

func (g *Game) RowScore(color Color, row int) (int, error) {
	if err := g.checkStarted(); err != nil {
		return 0, err
	}
	if !color.valid() {
		return 0, ErrInvalidColor
	}
	return g.board.RowScore(color, row)
}

func (g *Game) Dimensions() (int, int, error) {
	if err := g.checkStarted(); err != nil {
		return 0, 0, err
	}
	return g.board.Rows(), g.board.Cols(), nil
}

// IsLegal is the side-effect free legality predicate. It is false before
// the game starts.
func (g *Game) IsLegal(row, col int, card Card, color Color) bool {
	if !g.started || !color.valid() {
		return false
	}
	return g.board.Legal(row, col, card, color)
}

// Board returns a snapshot of the live board.
func (g *Game) Board() (*Board, error) {
	if err := g.checkStarted(); err != nil {
		return nil, err
	}
	return g.board.Snapshot(), nil
}
