package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/mcoot/tilegame-go/internal/model"
)

// LocalRulesPath is checked when no custom path is given
const LocalRulesPath = "configs/rules.yaml"

// Source names where a configuration came from
type Source string

const (
	SourceCustom   Source = "custom"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
)

// LoadRules loads the game configuration.
// Search order: customPath -> ./configs/rules.yaml -> embedded default
func LoadRules(customPath string) (*Loaded, error) {
	// A custom path must work, it is never skipped
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return nil, err
		}
		return &Loaded{Config: cfg, Source: SourceCustom, Path: customPath}, nil
	}

	cfg, err := loadFile(LocalRulesPath)
	switch {
	case err == nil:
		return &Loaded{Config: cfg, Source: SourceLocal, Path: LocalRulesPath}, nil
	case !errors.Is(err, fs.ErrNotExist):
		// A local file that exists but is broken is reported, not skipped
		return nil, err
	}

	cfg, err = ParseRules(defaultRulesYAML)
	if err != nil {
		return nil, fmt.Errorf("embedded rules: %w", err)
	}
	return &Loaded{Config: cfg, Source: SourceEmbedded}, nil
}

// Loaded is a configuration together with where it was found
type Loaded struct {
	Config model.GameConfig
	Source Source
	Path   string // Empty for the embedded default
}

func loadFile(path string) (model.GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.GameConfig{}, fmt.Errorf("failed to read rules %s: %w", path, err)
	}
	cfg, err := ParseRules(data)
	if err != nil {
		return model.GameConfig{}, fmt.Errorf("rules %s: %w", path, err)
	}
	return cfg, nil
}
