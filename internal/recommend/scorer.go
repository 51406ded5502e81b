// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

package recommend

import (
	"fmt"
	"math"
	"strings"

	"github.com/tomtom215/careercanvas/internal/models"
)

// Feed score weights.
const (
	WeightDirectLike     = 100
	WeightSkill          = 20
	WeightField          = 50
	WeightResponsibility = 15
	WeightWorkSetting    = 40
)

// Similarity score weights.
const (
	WeightSameField   = 100
	WeightSharedSkill = 20
)

// salaryBands are checked in order; the first band whose upper bound
// exceeds the difference of average salaries wins.
var salaryBands = []struct {
	below  float64
	points int
}{
	{10, 30},
	{20, 20},
	{30, 10},
}

// ScorePreference rates career against a user's snapshot. Higher is more
// relevant; scores are only comparable within one ranking.
func ScorePreference(career *models.Career, s *Snapshot) (int, error) {
	if career == nil {
		return 0, fmt.Errorf("%w: nil career", ErrInvalidInput)
	}
	if s == nil {
		return 0, fmt.Errorf("%w: nil snapshot", ErrInvalidInput)
	}

	score := 0
	if _, ok := s.DirectlyLiked[career.ID]; ok {
		score += WeightDirectLike
	}

	if liked, ok := s.LikedValues[models.ElementSkill]; ok {
		score += WeightSkill * countIn(career.Skills, liked)
	}

	if s.Has(models.ElementField, career.Field) {
		score += WeightField
	}

	if liked, ok := s.LikedValues[models.ElementResponsibility]; ok {
		for _, r := range career.Responsibilities {
			if containsAny(r, liked) {
				score += WeightResponsibility
			}
		}
	}

	if career.WorkSetting != "" && s.Has(models.ElementWorkSetting, career.WorkSetting) {
		score += WeightWorkSetting
	}

	return score, nil
}

// ScoreSimilarity rates how alike two careers are. It is symmetric in its
// arguments.
func ScoreSimilarity(career, other *models.Career) (int, error) {
	if career == nil || other == nil {
		return 0, fmt.Errorf("%w: nil career", ErrInvalidInput)
	}

	score := 0
	if career.Field == other.Field {
		score += WeightSameField
	}

	score += WeightSharedSkill * sharedCount(career.Skills, other.Skills)

	diff := math.Abs(career.AverageSalary() - other.AverageSalary())
	for _, band := range salaryBands {
		if diff < band.below {
			score += band.points
			break
		}
	}
	return score, nil
}

// countIn counts the distinct entries of values present in set.
func countIn(values []string, set map[string]struct{}) int {
	seen := make(map[string]struct{}, len(values))
	n := 0
	for _, v := range values {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		if _, ok := set[v]; ok {
			n++
		}
	}
	return n
}

func sharedCount(a, b []string) int {
	set := make(map[string]struct{}, len(b))
	for _, v := range b {
		set[v] = struct{}{}
	}
	return countIn(a, set)
}

func containsAny(s string, substrings map[string]struct{}) bool {
	for sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
