// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

package catalog

import (
	"errors"
	"reflect"
	"testing"

	"github.com/tomtom215/careercanvas/internal/models"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		careers []models.Career
		wantErr error
	}{
		{"empty", nil, nil},
		{"valid", []models.Career{{ID: 1}, {ID: 5}, {ID: 3}}, nil},
		{"zero id", []models.Career{{ID: 0}}, ErrInvalidID},
		{"negative id", []models.Career{{ID: -4}}, ErrInvalidID},
		{"duplicate", []models.Career{{ID: 2}, {ID: 2}}, ErrDuplicateID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.careers)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("New() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCatalogPreservesOrder(t *testing.T) {
	c, err := New([]models.Career{{ID: 9, Title: "a"}, {ID: 2, Title: "b"}, {ID: 4, Title: "c"}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	var ids []int
	for _, career := range c.ListAll() {
		ids = append(ids, career.ID)
	}
	if want := []int{9, 2, 4}; !reflect.DeepEqual(ids, want) {
		t.Errorf("ListAll() ids = %v, want %v", ids, want)
	}

	got, ok := c.GetByID(2)
	if !ok || got.Title != "b" {
		t.Errorf("GetByID(2) = %v, %v", got, ok)
	}
	if _, ok := c.GetByID(3); ok {
		t.Error("GetByID(3) found a career that does not exist")
	}
	if c.Len() != 3 {
		t.Errorf("Len() = %d, want 3", c.Len())
	}
}

func TestListAllReturnsCopy(t *testing.T) {
	c, err := New([]models.Career{{ID: 1}, {ID: 2}})
	if err != nil {
		t.Fatal(err)
	}
	list := c.ListAll()
	list[0] = list[1]
	if first := c.ListAll()[0]; first.ID != 1 {
		t.Errorf("catalog order changed through ListAll result, first id = %d", first.ID)
	}
}

func TestBuildFeaturedOnly(t *testing.T) {
	c, err := Build(Config{})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if c.Len() != len(featuredCareers) {
		t.Fatalf("Len() = %d, want %d", c.Len(), len(featuredCareers))
	}
	for i, career := range c.ListAll() {
		if career.ID != i+1 {
			t.Errorf("career %d has id %d", i, career.ID)
		}
	}
}

func TestBuildWithGenerated(t *testing.T) {
	c, err := Build(Config{Seed: 42, IncludeGenerated: true})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	generated := 0
	for _, fs := range fieldSeeds {
		generated += len(fs.Careers)
	}
	if want := len(featuredCareers) + generated; c.Len() != want {
		t.Fatalf("Len() = %d, want %d", c.Len(), want)
	}

	first, ok := c.GetByID(FirstGeneratedID)
	if !ok {
		t.Fatal("first generated career missing")
	}
	if first.Title != "Software Engineer" || first.Field != "Technology" {
		t.Errorf("first generated = %q/%q", first.Title, first.Field)
	}
	if len(first.Responsibilities) != 5 || first.WorkSetting == "" {
		t.Errorf("generated career is missing scored attributes: %+v", first)
	}
	if first.SalaryMin != 80 || first.SalaryMax != 150 {
		t.Errorf("salary = %v-%v, want 80-150", first.SalaryMin, first.SalaryMax)
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	a, err := Build(Config{Seed: 7, IncludeGenerated: true})
	if err != nil {
		t.Fatal(err)
	}
	b, err := Build(Config{Seed: 7, IncludeGenerated: true})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a.ListAll(), b.ListAll()) {
		t.Error("same seed produced different catalogs")
	}
}

func TestGeneratedAttributeRanges(t *testing.T) {
	g := newGenerator(1)
	for _, career := range g.generate(FirstGeneratedID) {
		if career.Match < 70 || career.Match > 99 {
			t.Errorf("%s: match %d out of range", career.Title, career.Match)
		}
		if career.WorkLifeBalance < 5 || career.WorkLifeBalance > 8 {
			t.Errorf("%s: work-life balance %d out of range", career.Title, career.WorkLifeBalance)
		}
		if len(career.TopLocations) != 4 || len(career.SoftSkills) != 6 {
			t.Errorf("%s: %d locations, %d soft skills", career.Title, len(career.TopLocations), len(career.SoftSkills))
		}
		for _, s := range career.TechnicalSkills {
			if s.Level < 5 || s.Level > 9 {
				t.Errorf("%s: skill %s level %d out of range", career.Title, s.Name, s.Level)
			}
		}
	}
}

func TestRequiredEducationByField(t *testing.T) {
	g := newGenerator(3)
	for i := 0; i < 20; i++ {
		if got := g.requiredEducation("Engineering"); got != "Bachelor's Degree" {
			t.Fatalf("Engineering education = %q", got)
		}
		got := g.requiredEducation("Legal")
		if got != "Bachelor's Degree" && got != "Master's Degree" {
			t.Fatalf("Legal education = %q", got)
		}
	}
}

func TestDollars(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{115, "$115000"},
		{82.5, "$82500"},
		{64, "$64000"},
	}
	for _, tt := range tests {
		if got := dollars(tt.in); got != tt.want {
			t.Errorf("dollars(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
