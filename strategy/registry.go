package strategy

import (
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownStrategy = errors.New("unknown strategy")

var registry = map[string]Strategy{
	"first":     FirstLegal{},
	"ownership": MaxOwnership{},
	"rowscore":  MaxRowScore{},
	"counter":   Counter{},
}

// ByName looks up one of the built-in strategies.
func ByName(name string) (Strategy, error) {
	s, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %v)", ErrUnknownStrategy, name, Names())
	}
	return s, nil
}

// Names lists the registered strategy names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
