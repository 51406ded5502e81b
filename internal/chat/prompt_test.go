// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

package chat

import (
	"strings"
	"testing"

	"github.com/tomtom215/careercanvas/internal/models"
)

func TestQuizLabel(t *testing.T) {
	tests := []struct {
		question int
		answer   string
		want     string
	}{
		{1, "a", "Corporate Office"},
		{2, "d", "Technical Skills"},
		{3, "b", "High Income"},
		{4, "c", "Hands-on Experience"},
		{5, "d", "Business Challenges"},
		{1, "", "No preference specified"},
		{1, "z", "Preference not specified"},
		{9, "a", "Preference not specified"},
	}
	for _, tt := range tests {
		if got := QuizLabel(tt.question, tt.answer); got != tt.want {
			t.Errorf("QuizLabel(%d, %q) = %q, want %q", tt.question, tt.answer, got, tt.want)
		}
	}
}

func TestBuildSystemPrompt(t *testing.T) {
	t.Run("base only", func(t *testing.T) {
		got := BuildSystemPrompt(PromptContext{})
		if !strings.Contains(got, "CareerCanvas") {
			t.Error("prompt should name the platform")
		}
		for _, absent := range []string{"quiz", "interest in careers", "exploring the career"} {
			if strings.Contains(got, absent) {
				t.Errorf("empty context prompt should not contain %q", absent)
			}
		}
	})

	t.Run("full context", func(t *testing.T) {
		got := BuildSystemPrompt(PromptContext{
			Quiz:           &models.QuizResult{Answers: models.QuizAnswers{1: "b", 3: "x", 7: "a"}},
			LikedCareerIDs: []int{3, 1, 8},
			Career:         &models.CareerContext{ID: 1, Title: "Software Engineer", Field: "Technology"},
		})
		want := []string{
			"Work environment preference: Remote Work",
			"Skill preference: No preference specified",
			"Career priorities: Preference not specified",
			"Problem-solving preference: No preference specified",
			"these IDs: 3, 1, 8.",
			"the career Software Engineer in the field of Technology",
		}
		for _, w := range want {
			if !strings.Contains(got, w) {
				t.Errorf("prompt missing %q\n%s", w, got)
			}
		}
	})
}

func TestBuildTurns(t *testing.T) {
	history := []models.Message{
		{Role: models.RoleUserMessage, Content: "hi"},
		{Role: models.RoleAssistantMessage, Content: "hello"},
	}
	turns := BuildTurns("sys", history, "next")

	want := []Turn{
		{RoleSystem, "sys"},
		{RoleUser, "hi"},
		{RoleAssistant, "hello"},
		{RoleUser, "next"},
	}
	if len(turns) != len(want) {
		t.Fatalf("len(turns) = %d, want %d", len(turns), len(want))
	}
	for i := range want {
		if turns[i] != want[i] {
			t.Errorf("turns[%d] = %+v, want %+v", i, turns[i], want[i])
		}
	}
}
