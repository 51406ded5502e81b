// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

package catalog

import (
	"errors"
	"fmt"

	"github.com/tomtom215/careercanvas/internal/models"
)

// FirstGeneratedID is the id given to the first generated career.
const FirstGeneratedID = 7

// DefaultSeed drives the generator when no seed is configured.
const DefaultSeed uint64 = 20240501

var (
	// ErrInvalidID is returned by New for a non-positive career id.
	ErrInvalidID = errors.New("catalog: career id must be positive")

	// ErrDuplicateID is returned by New when two careers share an id.
	ErrDuplicateID = errors.New("catalog: duplicate career id")
)

// Config controls how Build assembles the catalog.
type Config struct {
	// Seed for the descriptive attributes of generated careers.
	Seed uint64 `koanf:"seed"`

	// IncludeGenerated appends the generated careers after the featured ones.
	IncludeGenerated bool `koanf:"generated"`
}

// Catalog is the read-only career collection. It is safe for concurrent
// use because nothing mutates it after New returns.
type Catalog struct {
	careers []*models.Career
	byID    map[int]int
}

// New builds a catalog in the given order. Ids must be positive and unique.
func New(careers []models.Career) (*Catalog, error) {
	c := &Catalog{
		careers: make([]*models.Career, 0, len(careers)),
		byID:    make(map[int]int, len(careers)),
	}
	for i := range careers {
		career := careers[i]
		if career.ID <= 0 {
			return nil, fmt.Errorf("%w: %d (%s)", ErrInvalidID, career.ID, career.Title)
		}
		if _, ok := c.byID[career.ID]; ok {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, career.ID)
		}
		c.byID[career.ID] = len(c.careers)
		c.careers = append(c.careers, &career)
	}
	return c, nil
}

// Build returns the featured careers, optionally followed by the generated
// ones.
func Build(cfg Config) (*Catalog, error) {
	careers := make([]models.Career, len(featuredCareers))
	copy(careers, featuredCareers)
	if cfg.IncludeGenerated {
		seed := cfg.Seed
		if seed == 0 {
			seed = DefaultSeed
		}
		careers = append(careers, newGenerator(seed).generate(FirstGeneratedID)...)
	}
	return New(careers)
}

// ListAll returns every career in catalog order. The slice is a copy; the
// records it points to must not be modified.
func (c *Catalog) ListAll() []*models.Career {
	out := make([]*models.Career, len(c.careers))
	copy(out, c.careers)
	return out
}

// GetByID looks up one career.
func (c *Catalog) GetByID(id int) (*models.Career, bool) {
	i, ok := c.byID[id]
	if !ok {
		return nil, false
	}
	return c.careers[i], true
}

// Len is the number of careers.
func (c *Catalog) Len() int {
	return len(c.careers)
}
