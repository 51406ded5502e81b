// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

package recommend

import "fmt"

// Career path limits.
const (
	AdvancementRatio  = 1.2
	PreviousStepRatio = 0.8
	MaxAdvancement    = 3
	MaxPreviousSteps  = 2
)

// Config contains the tunable parts of the assembler. The scoring weights
// are fixed and not configurable.
type Config struct {
	// RelatedLimit is used when the caller does not pass a limit.
	RelatedLimit int `koanf:"related_limit"`

	// CareerPathPool is how many related careers the career path is
	// selected from.
	CareerPathPool int `koanf:"career_path_pool"`
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		RelatedLimit:   3,
		CareerPathPool: 10,
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.RelatedLimit < 1 {
		return fmt.Errorf("related_limit must be at least 1, got %d", c.RelatedLimit)
	}
	if c.CareerPathPool < 1 {
		return fmt.Errorf("career_path_pool must be at least 1, got %d", c.CareerPathPool)
	}
	return nil
}
