package game

// Listener is notified synchronously after every successful mutation.
// Listeners may query the game but must not mutate it; mutating calls made
// during a notification fail with ErrReentrant.
type Listener interface {
	// TurnChanged receives the color whose turn it now is.
	TurnChanged(turn Color)
	// GameOver is called once, when the second consecutive pass ends the game.
	GameOver(result Result)
}

// ListenerFuncs adapts plain functions to Listener. Nil funcs are skipped.
type ListenerFuncs struct {
	OnTurn     func(turn Color)
	OnGameOver func(result Result)
}

func (l ListenerFuncs) TurnChanged(turn Color) {
	if l.OnTurn != nil {
		l.OnTurn(turn)
	}
}

func (l ListenerFuncs) GameOver(result Result) {
	if l.OnGameOver != nil {
		l.OnGameOver(result)
	}
}

// Subscribe registers l. Listeners are called in registration order.
func (g *Game) Subscribe(l Listener) {
	if l == nil {
		return
	}
	g.listeners = append(g.listeners, l)
}

func (g *Game) notify() {
	g.notifying = true
	defer func() { g.notifying = false }()

	turn := g.turn
	for _, l := range g.listeners {
		l.TurnChanged(turn)
	}

	if g.passes < 2 || g.overNotified {
		return
	}
	g.overNotified = true
	result := g.result()
	for _, l := range g.listeners {
		l.GameOver(result)
	}
}
