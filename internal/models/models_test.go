// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

package models

import (
	"errors"
	"slices"
	"testing"

	"github.com/goccy/go-json"
)

func TestParseElementType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    ElementType
		wantErr bool
	}{
		{"skill", ElementSkill, false},
		{"field", ElementField, false},
		{"responsibility", ElementResponsibility, false},
		{"workSetting", ElementWorkSetting, false},
		{"work_setting", ElementWorkSetting, false},
		{"technical_skill", ElementTechnicalSkill, false},
		{"softSkill", ElementSoftSkill, false},
		{"WorkSetting", 0, true},
		{"", 0, true},
		{"salary", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := ParseElementType(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownElementType) {
					t.Errorf("ParseElementType(%q) error = %v, want ErrUnknownElementType", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseElementType(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseElementType(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestElementTypeJSON(t *testing.T) {
	t.Parallel()

	var e LikedElement
	if err := json.Unmarshal([]byte(`{"careerId":3,"elementType":"work_setting","elementValue":"On-site"}`), &e); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if e.ElementType != ElementWorkSetting {
		t.Fatalf("ElementType = %v, want workSetting", e.ElementType)
	}

	out, err := json.Marshal(e.ElementType)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `"workSetting"` {
		t.Errorf("marshal = %s, want canonical tag", out)
	}

	if _, err := json.Marshal(ElementType(99)); err == nil {
		t.Error("expected error marshaling invalid element type")
	}
}

func TestElementKeyValidate(t *testing.T) {
	t.Parallel()

	valid := ElementKey{UserID: 1, CareerID: 2, ElementType: ElementSkill, ElementValue: "SQL"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid key rejected: %v", err)
	}

	tests := []struct {
		name string
		mod  func(*ElementKey)
	}{
		{"zero user", func(k *ElementKey) { k.UserID = 0 }},
		{"zero career", func(k *ElementKey) { k.CareerID = 0 }},
		{"bad type", func(k *ElementKey) { k.ElementType = 0 }},
		{"blank value", func(k *ElementKey) { k.ElementValue = "  " }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := valid
			tt.mod(&k)
			if err := k.Validate(); !errors.Is(err, ErrInvalidElement) {
				t.Errorf("Validate() error = %v, want ErrInvalidElement", err)
			}
		})
	}
}

func TestQuizAnswersValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		answers QuizAnswers
		wantErr bool
	}{
		{"single", QuizAnswers{1: "a"}, false},
		{"full range", QuizAnswers{1: "a", 15: "d"}, false},
		{"empty", QuizAnswers{}, true},
		{"question zero", QuizAnswers{0: "a"}, true},
		{"question sixteen", QuizAnswers{16: "a"}, true},
		{"option e", QuizAnswers{2: "e"}, true},
		{"option long", QuizAnswers{2: "ab"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.answers.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestUserCareerLists(t *testing.T) {
	t.Parallel()

	u := &User{ID: 1}
	if !u.AddToList(LikedCareers, 5) {
		t.Fatal("first add should change the list")
	}
	if u.AddToList(LikedCareers, 5) {
		t.Error("second add should be a no-op")
	}
	u.AddToList(SavedCareers, 9)

	c := u.Clone()
	c.LikedCareers[0] = 100
	if u.LikedCareers[0] != 5 {
		t.Error("Clone shares the liked slice")
	}

	if !u.RemoveFromList(LikedCareers, 5) {
		t.Error("remove should change the list")
	}
	if u.RemoveFromList(LikedCareers, 5) {
		t.Error("second remove should be a no-op")
	}
	if !slices.Equal(u.SavedCareers, []int{9}) {
		t.Errorf("SavedCareers = %v, want [9]", u.SavedCareers)
	}
}

func TestCareerAverageSalary(t *testing.T) {
	t.Parallel()

	c := Career{SalaryMin: 85, SalaryMax: 160}
	if got := c.AverageSalary(); got != 122.5 {
		t.Errorf("AverageSalary() = %v, want 122.5", got)
	}
}
