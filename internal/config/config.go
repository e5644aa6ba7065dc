package config

import (
	"errors"
	"fmt"
	"os"
)

// NoDepthLimit disables the dependency traversal depth cap.
const NoDepthLimit = -1

// Config is the top-level configuration struct for ccc.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Roots       []string `mapstructure:"roots"`
	DepDepthMax int      `mapstructure:"dep_depth_max"`
	SigTokens   int      `mapstructure:"sig_tokens"`
	Output      string   `mapstructure:"output"`
	FindBy      string   `mapstructure:"find_by"`
	SigOnly     bool     `mapstructure:"sig_only"`
	SigDetailed bool     `mapstructure:"sig_detailed"`
	Verbose     bool     `mapstructure:"verbose"`
}

// Sentinel errors for configuration validation.
var (
	// ErrInvalidDepDepthMax indicates the depth cap is below the
	// unlimited sentinel.
	ErrInvalidDepDepthMax = errors.New("dep_depth_max must be -1 (unlimited) or non-negative")
	// ErrInvalidSigTokens indicates the signature token budget is negative.
	ErrInvalidSigTokens = errors.New("sig_tokens must be non-negative")
	// ErrRootNotFound indicates a configured import root does not exist.
	ErrRootNotFound = errors.New("root path does not exist")
)

// Validate checks configured values against their allowed ranges.
func (c *Config) Validate() error {
	if c.DepDepthMax < NoDepthLimit {
		return ErrInvalidDepDepthMax
	}

	if c.SigTokens < 0 {
		return ErrInvalidSigTokens
	}

	for _, root := range c.Roots {
		if _, err := os.Stat(root); err != nil {
			return fmt.Errorf("%w: %s", ErrRootNotFound, root)
		}
	}

	return nil
}
