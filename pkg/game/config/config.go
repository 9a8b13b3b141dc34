// Package config loads the game configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"tangrin/pkg/engine/logger"
	"tangrin/pkg/game/entities"
	"tangrin/pkg/game/state"
)

// ErrInvalid is returned when a configuration value is out of range.
var ErrInvalid = errors.New("invalid configuration")

// GameConfig holds every setting of a game run.
type GameConfig struct {
	// Seed fixes the random source; 0 picks a seed from the clock.
	Seed int64 `yaml:"seed"`

	// ContentFile overrides the built-in world text; empty uses the built-in text.
	ContentFile string `yaml:"content_file"`

	Rules   RulesConfig   `yaml:"rules"`
	Pacing  PacingConfig  `yaml:"pacing"`
	Locale  LocaleConfig  `yaml:"locale"`
	Logging logger.Config `yaml:"logging"`
}

// RulesConfig holds the tunable game rules.
type RulesConfig struct {
	// TideOutDuration is the tide clock at the start of each game.
	TideOutDuration int `yaml:"tide_out_duration"`

	// FullStamina is the stamina of a rested player.
	FullStamina int `yaml:"full_stamina"`

	// EncounterThreshold is the draw a turn must exceed for the ghost to appear.
	EncounterThreshold float64 `yaml:"encounter_threshold"`

	// TheftChance is the chance the ghost steals something once met.
	TheftChance float64 `yaml:"theft_chance"`
}

// PacingConfig holds the narrative pause settings.
type PacingConfig struct {
	Enabled bool    `yaml:"enabled"`
	Scale   float64 `yaml:"scale"`
}

// LocaleConfig selects the message catalogue.
type LocaleConfig struct {
	Dir      string `yaml:"dir"`
	Language string `yaml:"language"`
	Domain   string `yaml:"domain"`
}

// DefaultConfig returns the classic game settings.
func DefaultConfig() *GameConfig {
	return &GameConfig{
		Rules: RulesConfig{
			TideOutDuration:    state.TideOutDuration,
			FullStamina:        entities.FullStamina,
			EncounterThreshold: 0.9857,
			TheftChance:        0.3,
		},
		Pacing: PacingConfig{
			Enabled: true,
			Scale:   1,
		},
		Locale: LocaleConfig{
			Dir:      "locales",
			Language: "en_GB",
			Domain:   "default",
		},
		Logging: logger.DefaultConfig(),
	}
}

// LoadConfig reads path over the defaults. A missing file yields the defaults.
func LoadConfig(path string) (*GameConfig, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return config, err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return DefaultConfig(), err
	}
	return config, nil
}

// Validate checks that every rule is within range
func (c *GameConfig) Validate() error {
	r := c.Rules
	switch {
	case r.TideOutDuration <= 0:
		return fmt.Errorf("%w: tide_out_duration must be positive, got %d", ErrInvalid, r.TideOutDuration)
	case r.FullStamina < entities.DeathThreshold:
		return fmt.Errorf("%w: full_stamina must be at least %d, got %d", ErrInvalid, entities.DeathThreshold, r.FullStamina)
	case r.EncounterThreshold < 0 || r.EncounterThreshold > 1:
		return fmt.Errorf("%w: encounter_threshold must be within [0,1], got %v", ErrInvalid, r.EncounterThreshold)
	case r.TheftChance < 0 || r.TheftChance > 1:
		return fmt.Errorf("%w: theft_chance must be within [0,1], got %v", ErrInvalid, r.TheftChance)
	case c.Pacing.Scale < 0:
		return fmt.Errorf("%w: pacing scale must not be negative, got %v", ErrInvalid, c.Pacing.Scale)
	}
	return nil
}
