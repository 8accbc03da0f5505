package config

import (
	"errors"
	"fmt"
	"os"
	"sanguine/engine"
	"sanguine/game"
	"sanguine/strategy"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Rows       int      `yaml:"rows"`
	Cols       int      `yaml:"cols"`
	HandSize   int      `yaml:"hand_size"`
	Seed       uint64   `yaml:"seed"`
	Games      int      `yaml:"games"`      // per match up
	MaxTurns   int      `yaml:"max_turns"`  // per game
	Strategies []string `yaml:"strategies"` // every ordered pair is played
	DeckPath   string   `yaml:"deck"`       // empty means the built-in deck
	OutputDir  string   `yaml:"output_dir"` // empty disables the csv output
	LogLevel   string   `yaml:"log_level"`
}

func Default() Config {
	return Config{
		Rows:       3,
		Cols:       5,
		HandSize:   5,
		Seed:       42,
		Games:      10,
		MaxTurns:   engine.MaxTurns,
		Strategies: strategy.Names(),
		LogLevel:   "info",
	}
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getenvUint(key string, def uint64) uint64 {
	if v := os.Getenv(key); v != "" {
		if u, err := strconv.ParseUint(v, 10, 64); err == nil {
			return u
		}
	}
	return def
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Load starts from Default, applies the YAML file at path when path is not
// empty and then the SANGUINE_* environment variables.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	cfg.Rows = getenvInt("SANGUINE_ROWS", cfg.Rows)
	cfg.Cols = getenvInt("SANGUINE_COLS", cfg.Cols)
	cfg.HandSize = getenvInt("SANGUINE_HAND_SIZE", cfg.HandSize)
	cfg.Seed = getenvUint("SANGUINE_SEED", cfg.Seed)
	cfg.Games = getenvInt("SANGUINE_GAMES", cfg.Games)
	cfg.MaxTurns = getenvInt("SANGUINE_MAX_TURNS", cfg.MaxTurns)
	cfg.DeckPath = getenv("SANGUINE_DECK", cfg.DeckPath)
	cfg.OutputDir = getenv("SANGUINE_OUTPUT_DIR", cfg.OutputDir)
	cfg.LogLevel = getenv("SANGUINE_LOG_LEVEL", cfg.LogLevel)
	if v := os.Getenv("SANGUINE_STRATEGIES"); v != "" {
		cfg.Strategies = strings.Split(v, ",")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := game.NewBoard(c.Rows, c.Cols); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.HandSize < 1 {
		return fmt.Errorf("%w: hand_size %d must be positive", ErrInvalidConfig, c.HandSize)
	}
	if c.Games < 1 {
		return fmt.Errorf("%w: games %d must be positive", ErrInvalidConfig, c.Games)
	}
	if c.MaxTurns < 1 {
		return fmt.Errorf("%w: max_turns %d must be positive", ErrInvalidConfig, c.MaxTurns)
	}
	if len(c.Strategies) == 0 {
		return fmt.Errorf("%w: no strategies", ErrInvalidConfig)
	}
	for _, name := range c.Strategies {
		if _, err := strategy.ByName(name); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

func (c Config) Level() (zerolog.Level, error) {
	return zerolog.ParseLevel(c.LogLevel)
}

// Deck loads DeckPath. A nil deck tells the game to use its default.
func (c Config) Deck() ([]game.Card, error) {
	if c.DeckPath == "" {
		return nil, nil
	}
	return game.LoadDeck(c.DeckPath)
}
