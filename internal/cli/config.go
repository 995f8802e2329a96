package cli

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
)

// Output formats accepted by --output
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config is what the persistent flags and TILEGAME_* variables resolve to
type Config struct {
	ServerURL string
	Player    string
	Output    string
}

// DefaultConfig reads TILEGAME_SERVER and TILEGAME_PLAYER
func DefaultConfig() *Config {
	server := os.Getenv("TILEGAME_SERVER")
	if server == "" {
		server = "http://localhost:8080"
	}
	return &Config{
		ServerURL: server,
		Player:    os.Getenv("TILEGAME_PLAYER"),
		Output:    OutputText,
	}
}

// Validate normalises the output format and checks the server URL has a scheme
func (c *Config) Validate() error {
	c.Output = strings.ToLower(c.Output)
	if !slices.Contains([]string{OutputText, OutputJSON}, c.Output) {
		return fmt.Errorf("unknown output format %q: want text or json", c.Output)
	}
	if !strings.HasPrefix(c.ServerURL, "http://") && !strings.HasPrefix(c.ServerURL, "https://") {
		return fmt.Errorf("server URL %q must start with http:// or https://", c.ServerURL)
	}
	return nil
}

// RequirePlayer returns the player to act as, or an error if none was given
func (c *Config) RequirePlayer() (string, error) {
	if c.Player == "" {
		return "", errors.New("no player given: use --player or TILEGAME_PLAYER")
	}
	return c.Player, nil
}
