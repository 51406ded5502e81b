// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

package recommend

import (
	"slices"

	"github.com/goccy/go-json"

	"github.com/tomtom215/careercanvas/internal/models"
)

// Snapshot is the projection of a user's liked elements that the feed
// scorer reads. DirectlyLiked holds the career of every element row, so it
// is empty exactly when the user has no liked elements. It is derived on
// demand and never persisted except in the snapshot cache.
type Snapshot struct {
	DirectlyLiked map[int]struct{}
	LikedValues   map[models.ElementType]map[string]struct{}
}

// NewSnapshot returns an empty snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		DirectlyLiked: make(map[int]struct{}),
		LikedValues:   make(map[models.ElementType]map[string]struct{}),
	}
}

// BuildSnapshot projects liked element rows. Every row marks its career as
// directly liked; rows with an invalid type add no liked value.
func BuildSnapshot(elements []models.LikedElement) *Snapshot {
	s := NewSnapshot()
	for i := range elements {
		e := &elements[i]
		s.DirectlyLiked[e.CareerID] = struct{}{}
		if !e.ElementType.Valid() {
			continue
		}
		s.addValue(e.ElementType, e.ElementValue)
	}
	return s
}

func (s *Snapshot) addValue(t models.ElementType, v string) {
	values, ok := s.LikedValues[t]
	if !ok {
		values = make(map[string]struct{})
		s.LikedValues[t] = values
	}
	values[v] = struct{}{}
}

// Empty reports whether the snapshot was built from zero element rows.
func (s *Snapshot) Empty() bool {
	return len(s.DirectlyLiked) == 0
}

// Has reports whether value v of type t is liked.
func (s *Snapshot) Has(t models.ElementType, v string) bool {
	_, ok := s.LikedValues[t][v]
	return ok
}

// Values returns the liked values of type t, sorted.
func (s *Snapshot) Values(t models.ElementType) []string {
	out := make([]string, 0, len(s.LikedValues[t]))
	for v := range s.LikedValues[t] {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}

// snapshotJSON is the cache encoding. Maps become sorted slices so equal
// snapshots encode to equal bytes.
type snapshotJSON struct {
	DirectlyLiked []int               `json:"directlyLiked"`
	Liked         map[string][]string `json:"liked"`
}

// MarshalJSON implements json.Marshaler.
func (s *Snapshot) MarshalJSON() ([]byte, error) {
	w := snapshotJSON{
		DirectlyLiked: make([]int, 0, len(s.DirectlyLiked)),
		Liked:         make(map[string][]string, len(s.LikedValues)),
	}
	for id := range s.DirectlyLiked {
		w.DirectlyLiked = append(w.DirectlyLiked, id)
	}
	slices.Sort(w.DirectlyLiked)
	for t := range s.LikedValues {
		w.Liked[t.String()] = s.Values(t)
	}
	return json.Marshal(w)
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Snapshot) UnmarshalJSON(data []byte) error {
	var w snapshotJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	decoded := NewSnapshot()
	for _, id := range w.DirectlyLiked {
		decoded.DirectlyLiked[id] = struct{}{}
	}
	for tag, values := range w.Liked {
		t, err := models.ParseElementType(tag)
		if err != nil {
			return err
		}
		for _, v := range values {
			decoded.addValue(t, v)
		}
	}
	*s = *decoded
	return nil
}
