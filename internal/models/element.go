// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

var (
	// ErrUnknownElementType is returned when a tag does not name an ElementType.
	ErrUnknownElementType = errors.New("unknown element type")

	// ErrInvalidElement wraps every ElementKey validation failure.
	ErrInvalidElement = errors.New("invalid liked element")
)

// ElementType is the attribute kind a user liked on a career. The same
// values are used by the like endpoint and by the scorer, so a tag that
// parses is always one the scorer understands.
type ElementType int

const (
	ElementSkill ElementType = iota + 1
	ElementField
	ElementResponsibility
	ElementWorkSetting
	ElementTechnicalSkill
	ElementSoftSkill
)

// ElementTypes lists every valid ElementType in declaration order.
var ElementTypes = []ElementType{
	ElementSkill,
	ElementField,
	ElementResponsibility,
	ElementWorkSetting,
	ElementTechnicalSkill,
	ElementSoftSkill,
}

// String returns the canonical wire tag.
func (t ElementType) String() string {
	switch t {
	case ElementSkill:
		return "skill"
	case ElementField:
		return "field"
	case ElementResponsibility:
		return "responsibility"
	case ElementWorkSetting:
		return "workSetting"
	case ElementTechnicalSkill:
		return "technicalSkill"
	case ElementSoftSkill:
		return "softSkill"
	default:
		return "unknown"
	}
}

// Valid reports whether t is one of the declared element types.
func (t ElementType) Valid() bool {
	return t >= ElementSkill && t <= ElementSoftSkill
}

// ParseElementType accepts the canonical tags plus the snake_case spellings
// older clients send (work_setting, technical_skill, soft_skill).
func ParseElementType(s string) (ElementType, error) {
	switch strings.TrimSpace(s) {
	case "skill":
		return ElementSkill, nil
	case "field":
		return ElementField, nil
	case "responsibility":
		return ElementResponsibility, nil
	case "workSetting", "work_setting":
		return ElementWorkSetting, nil
	case "technicalSkill", "technical_skill":
		return ElementTechnicalSkill, nil
	case "softSkill", "soft_skill":
		return ElementSoftSkill, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownElementType, s)
	}
}

// MarshalJSON encodes the canonical tag.
func (t ElementType) MarshalJSON() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownElementType, int(t))
	}
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes any tag accepted by ParseElementType.
func (t *ElementType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseElementType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// LikedElement records that a user liked one attribute value of a career.
// At most one row exists per (UserID, CareerID, ElementType, ElementValue).
type LikedElement struct {
	ID           int64       `json:"id"`
	UserID       int         `json:"userId"`
	CareerID     int         `json:"careerId"`
	ElementType  ElementType `json:"elementType"`
	ElementValue string      `json:"elementValue"`
	Timestamp    time.Time   `json:"timestamp"`
}

// ElementKey identifies a liked element independently of its row ID.
type ElementKey struct {
	UserID       int
	CareerID     int
	ElementType  ElementType
	ElementValue string
}

// Key returns the uniqueness key of e.
func (e *LikedElement) Key() ElementKey {
	return ElementKey{
		UserID:       e.UserID,
		CareerID:     e.CareerID,
		ElementType:  e.ElementType,
		ElementValue: e.ElementValue,
	}
}

// Validate checks the fields a caller must supply.
func (k ElementKey) Validate() error {
	switch {
	case k.UserID <= 0:
		return fmt.Errorf("%w: user id must be positive", ErrInvalidElement)
	case k.CareerID <= 0:
		return fmt.Errorf("%w: career id must be positive", ErrInvalidElement)
	case !k.ElementType.Valid():
		return fmt.Errorf("%w: %w", ErrInvalidElement, ErrUnknownElementType)
	case strings.TrimSpace(k.ElementValue) == "":
		return fmt.Errorf("%w: element value must not be empty", ErrInvalidElement)
	}
	return nil
}
