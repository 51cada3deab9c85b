package game

import (
	"fmt"
	"io/ioutil"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

type GameConfig struct {
	// Distinct ids; the board holds two cards for each
	PairIDs []string `yaml:"pairs"`
	// Alternative to PairIDs: every id listed twice
	Deck []string `yaml:"deck"`

	// How long a mismatched pair stays revealed
	RevertDelay time.Duration `yaml:"revert_delay"`
	// Interval between render passes
	RedrawInterval time.Duration `yaml:"redraw_interval"`
	// Interval between director selections
	DirectorInterval time.Duration `yaml:"director_interval"`

	// Shuffle seed; 0 picks one from the clock
	Seed int64 `yaml:"seed"`

	// Cards per row, used by the front ends
	Columns int `yaml:"columns"`

	Scheduler Scheduler          `yaml:"-"`
	Director  Director           `yaml:"-"`
	Logger    logrus.FieldLogger `yaml:"-"`
}

func NewGameConfig() GameConfig {
	return GameConfig{
		PairIDs:          append([]string(nil), DefaultPairIDs...),
		RevertDelay:      DefaultRevertDelay,
		RedrawInterval:   DefaultRedrawInterval,
		DirectorInterval: DefaultDirectorInterval,
		Columns:          DefaultColumns,
		Scheduler:        RealtimeScheduler{},
		Director:         nil,
	}
}

// LoadConfig reads a YAML config file over the defaults.
func LoadConfig(path string) (GameConfig, error) {
	in, err := ioutil.ReadFile(path)
	if err != nil {
		return GameConfig{}, err
	}

	config, err := ParseConfig(in)
	if err != nil {
		return GameConfig{}, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}

func ParseConfig(in []byte) (GameConfig, error) {
	config := NewGameConfig()
	config.PairIDs = nil
	if err := yaml.UnmarshalStrict(in, &config); err != nil {
		return GameConfig{}, err
	}

	if len(config.Deck) > 0 {
		if len(config.PairIDs) > 0 {
			return GameConfig{}, fmt.Errorf("only one of pairs and deck may be set")
		}
		pairIDs, err := PairsFromDeck(config.Deck)
		if err != nil {
			return GameConfig{}, fmt.Errorf("deck: %w", err)
		}
		config.PairIDs = pairIDs
		config.Deck = nil
	}
	if len(config.PairIDs) == 0 {
		config.PairIDs = append([]string(nil), DefaultPairIDs...)
	}

	if err := config.Validate(); err != nil {
		return GameConfig{}, err
	}
	return config, nil
}

func (config GameConfig) Validate() error {
	if err := validatePairIDs(config.PairIDs); err != nil {
		return fmt.Errorf("pairs: %w", err)
	}
	if config.RevertDelay <= 0 {
		return fmt.Errorf("revert_delay must be positive, got %s", config.RevertDelay)
	}
	if config.RedrawInterval <= 0 {
		return fmt.Errorf("redraw_interval must be positive, got %s", config.RedrawInterval)
	}
	if config.DirectorInterval <= 0 {
		return fmt.Errorf("director_interval must be positive, got %s", config.DirectorInterval)
	}
	if config.Columns <= 0 {
		return fmt.Errorf("columns must be positive, got %d", config.Columns)
	}
	return nil
}
