package config

import (
	"bytes"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/mcoot/tilegame-go/internal/model"
)

//go:embed defaults/rules.yaml
var defaultRulesYAML []byte

// RulesFile is the YAML layout of a rules file
type RulesFile struct {
	Grid     model.GridTopology `yaml:"grid"`
	Tiles    TilesSection       `yaml:"tiles"`
	HandSize int                `yaml:"hand_size"`
}

// TilesSection describes the tiles and how many of each go in the bag
type TilesSection struct {
	MaxValues    []int `yaml:"max_values"`
	Clones       int   `yaml:"clones"`
	BonusPercent int   `yaml:"bonus_percent"`
}

// GameConfig converts the file into a validated game configuration
func (f RulesFile) GameConfig() (model.GameConfig, error) {
	rules, err := model.NewRules(f.Grid, model.TileRules{MaxValues: f.Tiles.MaxValues})
	if err != nil {
		return model.GameConfig{}, err
	}
	cfg := model.GameConfig{
		Rules:        rules,
		HandSize:     f.HandSize,
		Clones:       f.Tiles.Clones,
		BonusPercent: f.Tiles.BonusPercent,
	}
	if err := cfg.Validate(); err != nil {
		return model.GameConfig{}, err
	}
	return cfg, nil
}

// FromGameConfig is the inverse of GameConfig
func FromGameConfig(cfg model.GameConfig) RulesFile {
	return RulesFile{
		Grid: cfg.Rules.Grid,
		Tiles: TilesSection{
			MaxValues:    cfg.Rules.Tiles.MaxValues,
			Clones:       cfg.Clones,
			BonusPercent: cfg.BonusPercent,
		},
		HandSize: cfg.HandSize,
	}
}

// ParseRules decodes and validates a rules file. Unknown keys are an error
// so that typos do not silently fall back to defaults.
func ParseRules(data []byte) (model.GameConfig, error) {
	var f RulesFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return model.GameConfig{}, fmt.Errorf("parsing rules: %w", err)
	}
	return f.GameConfig()
}

// MarshalRules encodes a game configuration as a rules file
func MarshalRules(cfg model.GameConfig) ([]byte, error) {
	return yaml.Marshal(FromGameConfig(cfg))
}

// DefaultRulesYAML returns the embedded default rules file
func DefaultRulesYAML() []byte {
	return bytes.Clone(defaultRulesYAML)
}
