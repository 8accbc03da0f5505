package player

import (
	"fmt"
	"sanguine/game"
	"sanguine/strategy"
)

// Action is what a seat does on its turn: pass, or play Move.
type Action struct {
	Pass bool
	Move strategy.Move
}

func (a Action) String() string {
	if a.Pass {
		return "pass"
	}
	return a.Move.String()
}

// Player is a seat at the table.
type Player interface {
	Color() game.Color
	// TakeTurn decides on an action from a read-only view of the game.
	TakeTurn(view game.View) (Action, error)
}

// AI plays the moves its strategy recommends.
type AI struct {
	color    game.Color
	strategy strategy.Strategy
}

func NewAI(color game.Color, s strategy.Strategy) *AI {
	return &AI{color: color, strategy: s}
}

func (p *AI) Color() game.Color {
	return p.color
}

func (p *AI) TakeTurn(view game.View) (Action, error) {
	move, ok, err := p.strategy.Choose(view, p.color)
	if err != nil {
		return Action{}, fmt.Errorf("%s failed to choose a move: %w", p.color, err)
	}
	if !ok {
		return Action{Pass: true}, nil
	}
	return Action{Move: move}, nil
}

// Scripted replays a fixed list of actions and passes once it runs out.
type Scripted struct {
	color   game.Color
	actions []Action
}

func NewScripted(color game.Color, actions ...Action) *Scripted {
	return &Scripted{color: color, actions: actions}
}

func (p *Scripted) Color() game.Color {
	return p.color
}

func (p *Scripted) TakeTurn(game.View) (Action, error) {
	if len(p.actions) == 0 {
		return Action{Pass: true}, nil
	}
	next := p.actions[0]
	p.actions = p.actions[1:]
	return next, nil
}

// Remaining is the number of scripted actions not yet played.
func (p *Scripted) Remaining() int {
	return len(p.actions)
}
