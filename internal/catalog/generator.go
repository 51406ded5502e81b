// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

package catalog

import (
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/tomtom215/careercanvas/internal/models"
)

type fieldSeed struct {
	Field   string
	Careers []careerSeed
}

type careerSeed struct {
	title     string
	skills    []string
	salaryMin float64
	salaryMax float64
	growth    int
}

var (
	workSettings = []string{
		"Office / Remote",
		"Office / Hybrid",
		"Fully Remote",
		"On-site",
		"Field / Office",
		"Studio / Remote",
		"Laboratory / Office",
	}
	workSchedules = []string{
		"Full-time / Flexible",
		"Full-time / Fixed",
		"Full-time / Shift work",
		"Project-based",
		"Contract / Freelance",
		"Variable hours",
	}
	teamStructures = []string{
		"Collaborative",
		"Independent",
		"Matrix",
		"Hierarchical",
		"Cross-functional",
		"Self-managed",
		"Agile",
	}
	workStyles = []string{
		"Creative / Analytical",
		"Process-oriented",
		"Results-driven",
		"Detail-oriented",
		"Strategic / Tactical",
		"Client-facing",
		"Research-focused",
	}
	locations = []string{
		"San Francisco", "New York", "Seattle", "Austin", "Boston",
		"Chicago", "Los Angeles", "Denver", "Atlanta", "Washington DC",
		"Dallas", "Portland", "Minneapolis", "Nashville", "Miami",
		"Phoenix", "San Diego", "Philadelphia", "Houston", "Raleigh",
	}
	softSkills = []string{
		"Communication", "Teamwork", "Problem-solving", "Critical thinking",
		"Time management", "Adaptability", "Leadership", "Creativity",
		"Emotional intelligence", "Attention to detail", "Negotiation",
		"Conflict resolution", "Decision making", "Stress management",
	}
	programProviders = []string{"Coursera", "Udemy", "edX", "LinkedIn Learning", "General Assembly", "Local University"}
	educationLevels  = []string{"Bachelor's Degree", "Master's Degree", "Associate's Degree", "Certification", "High School Diploma + Experience"}
	firstNames       = []string{
		"James", "Sarah", "Michael", "Emily", "David", "Jessica", "Robert", "Jennifer", "William", "Elizabeth",
		"Maria", "Mohammed", "Wei", "Fatima", "Carlos", "Aisha", "Juan", "Priya", "Chen", "Olga",
	}
	lastNames = []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis", "Rodriguez", "Martinez",
		"Patel", "Kim", "Lee", "Wong", "Chen", "Nguyen", "Singh", "Kumar", "Ali", "Rahman",
	}
)

// generator turns fieldSeeds into full career records. All randomness comes
// from one PCG source so the same seed always yields the same catalog.
type generator struct {
	rng *rand.Rand
}

func newGenerator(seed uint64) *generator {
	return &generator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (g *generator) pick(options []string) string {
	return options[g.rng.IntN(len(options))]
}

// sample returns n distinct entries of options in random order.
func (g *generator) sample(options []string, n int) []string {
	out := make([]string, len(options))
	copy(out, options)
	g.rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	if n > len(out) {
		n = len(out)
	}
	return out[:n]
}

// generate builds every seeded career, numbering from startID.
func (g *generator) generate(startID int) []models.Career {
	var out []models.Career
	id := startID
	for _, fs := range fieldSeeds {
		for i := range fs.Careers {
			out = append(out, g.career(id, fs.Field, &fs.Careers[i]))
			id++
		}
	}
	return out
}

func (g *generator) career(id int, field string, s *careerSeed) models.Career {
	avg := (s.salaryMin + s.salaryMax) / 2

	technical := make([]models.SkillLevel, len(s.skills))
	for i, skill := range s.skills {
		technical[i] = models.SkillLevel{Name: skill, Level: 5 + g.rng.IntN(5)}
	}
	skills := make([]string, len(s.skills))
	copy(skills, s.skills)

	return models.Career{
		ID:                 id,
		Title:              s.title,
		Field:              field,
		Description:        g.description(s, field),
		Match:              70 + g.rng.IntN(30),
		SalaryMin:          s.salaryMin,
		SalaryMax:          s.salaryMax,
		MedianSalary:       dollars(avg),
		Growth:             s.growth,
		Skills:             skills,
		Responsibilities:   responsibilities(field),
		WorkSetting:        g.pick(workSettings),
		WorkSchedule:       g.pick(workSchedules),
		TeamStructure:      g.pick(teamStructures),
		WorkStyle:          g.pick(workStyles),
		WorkLifeBalance:    5 + g.rng.IntN(4),
		TopLocations:       g.sample(locations, 4),
		SalaryByExperience: salaryByExperience(s),
		SalaryComparison: &models.SalaryComparison{
			National:   dollars(avg * 0.9),
			Difference: dollars(avg * 0.1),
		},
		TechnicalSkills: technical,
		SoftSkills:      g.sample(softSkills, 6),
		SkillDevelopment: []string{
			"Complete specialized training or certification in " + field,
			"Build a portfolio of projects demonstrating key skills",
			"Join professional organizations related to " + s.title + " work",
			"Attend industry conferences and workshops",
			"Find a mentor experienced in the " + field + " field",
		},
		EducationPaths: []models.EducationPath{
			{Name: "Bachelor's Degree", Description: "Formal education in " + field + " or related field", Timeframe: "4 years"},
			{Name: s.title + " Certification", Description: "Specialized training focused on " + s.title + " skills", Timeframe: "3-6 months"},
			{Name: "Self-Taught + Portfolio", Description: "Online courses combined with practical experience", Timeframe: "6-18 months"},
		},
		RecommendedPrograms: []models.Program{
			{Name: "Professional Certificate in " + s.title, Provider: g.pick(programProviders), Type: "Certificate", Duration: "6 months", Cost: "$1,500-$2,500"},
			{Name: field + " Bootcamp", Provider: g.pick(programProviders), Type: "Bootcamp", Duration: "12-16 weeks", Cost: "$9,500-$15,000"},
			{Name: "Master's in " + field, Provider: "University Programs", Type: "Degree", Duration: "1-2 years", Cost: "$30,000-$70,000"},
		},
		DailyActivities: []models.DailyActivity{
			{Time: "9:00 AM - 10:30 AM", Description: "Team meetings and project planning"},
			{Time: "10:30 AM - 12:30 PM", Description: "Core work activities and problem-solving"},
			{Time: "1:30 PM - 3:00 PM", Description: "Collaborative sessions with stakeholders"},
			{Time: "3:00 PM - 4:30 PM", Description: "Focused individual work and analysis"},
			{Time: "4:30 PM - 5:00 PM", Description: "Documentation and planning for next day"},
		},
		Challenges: []string{
			"Keeping pace with evolving tools and practices in " + field,
			"Balancing multiple priorities under tight deadlines",
			"Explaining complex ideas to different audiences",
			"Adapting to shifting requirements",
			"Protecting work-life balance in a demanding role",
		},
		Rewards: []string{
			"Making a visible impact in " + field,
			"Clear progression and advancement opportunities",
			"Solving problems that keep the work interesting",
			"Working alongside talented colleagues",
			"Building skills that transfer across industries",
		},
		ProfessionalPerspective: g.perspective(s.title),
		RequiredEducation:       g.requiredEducation(field),
	}
}

func (g *generator) description(s *careerSeed, field string) string {
	focus := []string{
		"build new solutions across the " + field + " sector",
		"work in teams to untangle hard problems in " + field,
		"apply their expertise to move " + field + " organizations forward",
		"put current tools and methods to work in " + field,
		"guide decisions in the fast-moving world of " + field,
	}
	return fmt.Sprintf("%s professionals %s. They combine %s, %s, and %s to deliver results in the %s industry.",
		s.title, g.pick(focus), s.skills[0], s.skills[1], s.skills[2], field)
}

func responsibilities(field string) []string {
	return []string{
		"Develop strategies and plans for " + field + " initiatives",
		"Collaborate with cross-functional teams on projects",
		"Analyze data and provide actionable insights",
		"Create and deliver presentations to stakeholders",
		"Stay current with industry trends and best practices",
	}
}

func salaryByExperience(s *careerSeed) *models.SalaryByExperience {
	return &models.SalaryByExperience{
		Entry:  dollars(s.salaryMin * 0.8),
		Mid:    dollars((s.salaryMin + s.salaryMax) / 2),
		Senior: dollars(s.salaryMax * 0.9),
		Expert: dollars(s.salaryMax) + "+",
	}
}

func (g *generator) perspective(title string) *models.ProfessionalPerspective {
	quotes := []string{
		"The best part of working as a " + title + " is seeing my work solve real problems. No two weeks look the same, and that keeps me learning.",
		"As a " + title + ", I have found that communication matters as much as technical depth. The people who do well can explain hard ideas simply.",
		"The " + title + " role has changed a lot since I started. Newcomers should build a broad skill set and expect the tools to keep moving.",
		"What surprised me about being a " + title + " is how collaborative it is. Relationships decide more projects than technique does.",
	}
	return &models.ProfessionalPerspective{
		Name:            g.pick(firstNames) + " " + g.pick(lastNames),
		YearsExperience: strconv.Itoa(5 + g.rng.IntN(15)),
		Quote:           g.pick(quotes),
	}
}

func (g *generator) requiredEducation(field string) string {
	switch field {
	case "Healthcare", "Legal", "Science & Research":
		return educationLevels[g.rng.IntN(2)]
	case "Technology", "Engineering", "Finance":
		return educationLevels[0]
	default:
		return g.pick(educationLevels)
	}
}

// dollars formats a salary in thousands as a whole-dollar string.
func dollars(thousands float64) string {
	return "$" + strconv.Itoa(int(thousands*1000))
}
