// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

package models

import (
	"fmt"
	"time"
)

// Quiz bounds.
const (
	QuizQuestionCount = 15
	QuizOptionFirst   = "a"
	QuizOptionLast    = "d"
)

// QuizAnswers maps question id (1..15) to option id ("a".."d").
type QuizAnswers map[int]string

// Validate checks question ids and option codes. Partial answer sets are
// allowed.
func (a QuizAnswers) Validate() error {
	if len(a) == 0 {
		return fmt.Errorf("answers must not be empty")
	}
	for q, opt := range a {
		if q < 1 || q > QuizQuestionCount {
			return fmt.Errorf("question %d out of range 1..%d", q, QuizQuestionCount)
		}
		if len(opt) != 1 || opt < QuizOptionFirst || opt > QuizOptionLast {
			return fmt.Errorf("question %d: option %q must be one of a-d", q, opt)
		}
	}
	return nil
}

// QuizResult is one stored quiz submission.
type QuizResult struct {
	ID        int64       `json:"id"`
	UserID    int         `json:"userId"`
	Answers   QuizAnswers `json:"answers"`
	Timestamp time.Time   `json:"timestamp"`
}
