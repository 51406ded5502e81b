// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

package models

// Career is an immutable catalog entry. Only ID, Field, Skills,
// Responsibilities, WorkSetting and the salary bounds take part in scoring;
// the rest is descriptive content for the detail pages.
type Career struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Field       string `json:"field"`
	Description string `json:"description"`

	// Match is the display-only fit percentage shown on cards.
	Match int `json:"match"`

	// SalaryMin and SalaryMax are in thousands. SalaryMin <= SalaryMax is
	// expected but not enforced.
	SalaryMin    float64 `json:"salaryMin"`
	SalaryMax    float64 `json:"salaryMax"`
	MedianSalary string  `json:"medianSalary"`

	// Growth is the projected job growth in percent (may be negative).
	Growth int `json:"growth"`

	Skills           []string `json:"skills"`
	Responsibilities []string `json:"responsibilities"`

	// WorkSetting is empty when unknown.
	WorkSetting     string   `json:"workSetting,omitempty"`
	WorkSchedule    string   `json:"workSchedule,omitempty"`
	TeamStructure   string   `json:"teamStructure,omitempty"`
	WorkStyle       string   `json:"workStyle,omitempty"`
	WorkLifeBalance int      `json:"workLifeBalance,omitempty"`
	TopLocations    []string `json:"topLocations,omitempty"`

	SalaryByExperience *SalaryByExperience `json:"salaryByExperience,omitempty"`
	SalaryComparison   *SalaryComparison   `json:"salaryComparison,omitempty"`

	TechnicalSkills         []SkillLevel             `json:"technicalSkills,omitempty"`
	SoftSkills              []string                 `json:"softSkills,omitempty"`
	SkillDevelopment        []string                 `json:"skillDevelopment,omitempty"`
	EducationPaths          []EducationPath          `json:"educationPaths,omitempty"`
	RecommendedPrograms     []Program                `json:"recommendedPrograms,omitempty"`
	AlternativePaths        []string                 `json:"alternativePaths,omitempty"`
	Certifications          []Certification          `json:"certifications,omitempty"`
	DailyActivities         []DailyActivity          `json:"dailyActivities,omitempty"`
	Challenges              []string                 `json:"challenges,omitempty"`
	Rewards                 []string                 `json:"rewards,omitempty"`
	ProfessionalPerspective *ProfessionalPerspective `json:"professionalPerspective,omitempty"`
	RequiredEducation       string                   `json:"requiredEducation,omitempty"`
}

// AverageSalary is the midpoint of the salary band.
func (c *Career) AverageSalary() float64 {
	return (c.SalaryMin + c.SalaryMax) / 2
}

// SalaryByExperience holds formatted salary figures per seniority.
type SalaryByExperience struct {
	Entry  string `json:"entry"`
	Mid    string `json:"mid"`
	Senior string `json:"senior"`
	Expert string `json:"expert"`
}

// SalaryComparison compares the role against the national average.
type SalaryComparison struct {
	National   string `json:"national"`
	Difference string `json:"difference"`
}

// SkillLevel is a technical skill with a 1-10 proficiency level.
type SkillLevel struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// EducationPath is one route into the career.
type EducationPath struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Timeframe   string `json:"timeframe"`
}

// Program is a recommended course, bootcamp or degree.
type Program struct {
	Name     string `json:"name"`
	Provider string `json:"provider"`
	Type     string `json:"type"`
	Duration string `json:"duration"`
	Cost     string `json:"cost"`
}

// Certification is an industry credential relevant to the career.
type Certification struct {
	Name         string `json:"name"`
	Organization string `json:"organization"`
}

// DailyActivity is one block of a typical work day.
type DailyActivity struct {
	Time        string `json:"time"`
	Description string `json:"description"`
}

// ProfessionalPerspective is a practitioner quote.
type ProfessionalPerspective struct {
	Name            string `json:"name"`
	YearsExperience string `json:"yearsExperience"`
	Quote           string `json:"quote"`
}
