// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

package chat

import (
	"strconv"
	"strings"

	"github.com/tomtom215/careercanvas/internal/models"
)

// Turn roles sent to the model.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one message of a completion request.
type Turn struct {
	Role    string
	Content string
}

const (
	noPreference      = "No preference specified"
	unknownPreference = "Preference not specified"
)

// quizLabels maps the first five quiz questions to readable answers.
var quizLabels = map[int]map[string]string{
	1: {"a": "Corporate Office", "b": "Remote Work", "c": "Outdoors", "d": "Creative Studio"},
	2: {"a": "Analytical Thinking", "b": "Creativity", "c": "Communication", "d": "Technical Skills"},
	3: {"a": "Work-Life Balance", "b": "High Income", "c": "Making an Impact", "d": "Career Growth"},
	4: {"a": "Formal Education", "b": "Self-Directed Learning", "c": "Hands-on Experience", "d": "Mentorship"},
	5: {"a": "Technical Challenges", "b": "Creative Challenges", "c": "People Challenges", "d": "Business Challenges"},
}

var quizTopics = []struct {
	question int
	label    string
}{
	{1, "Work environment preference"},
	{2, "Skill preference"},
	{3, "Career priorities"},
	{4, "Learning style"},
	{5, "Problem-solving preference"},
}

// QuizLabel returns the readable answer for a question.
func QuizLabel(question int, answer string) string {
	if answer == "" {
		return noPreference
	}
	if label, ok := quizLabels[question][answer]; ok {
		return label
	}
	return unknownPreference
}

// PromptContext is what the assistant knows about the user.
type PromptContext struct {
	Quiz           *models.QuizResult
	LikedCareerIDs []int
	Career         *models.CareerContext
}

const basePrompt = `You are a career advisor assistant for CareerCanvas, a platform for exploring career paths.
Be friendly, informative and concise. Give accurate career information and personalized advice.
When asked about a specific career, cover required skills, education, work-life balance, job market outlook and salary expectations.`

// BuildSystemPrompt assembles the system message for pc.
func BuildSystemPrompt(pc PromptContext) string {
	var b strings.Builder
	b.WriteString(basePrompt)

	if pc.Quiz != nil && len(pc.Quiz.Answers) > 0 {
		b.WriteString("\n\nThe user completed the career assessment quiz:\n")
		for _, t := range quizTopics {
			b.WriteString("- ")
			b.WriteString(t.label)
			b.WriteString(": ")
			b.WriteString(QuizLabel(t.question, pc.Quiz.Answers[t.question]))
			b.WriteString("\n")
		}
		b.WriteString("Tailor suggestions to these preferences.")
	}

	if len(pc.LikedCareerIDs) > 0 {
		ids := make([]string, len(pc.LikedCareerIDs))
		for i, id := range pc.LikedCareerIDs {
			ids[i] = strconv.Itoa(id)
		}
		b.WriteString("\n\nThe user has shown interest in careers with these IDs: ")
		b.WriteString(strings.Join(ids, ", "))
		b.WriteString(".\nConsider these interests when making recommendations.")
	}

	if pc.Career != nil {
		b.WriteString("\n\nThe user is exploring the career ")
		b.WriteString(pc.Career.Title)
		b.WriteString(" in the field of ")
		b.WriteString(pc.Career.Field)
		b.WriteString(".\nAnswer with specific detail about this role: education, daily responsibilities, skills, advancement, salary and industry trends.")
	}

	return b.String()
}

// BuildTurns returns the system prompt, the prior history and the new user
// message in order.
func BuildTurns(system string, history []models.Message, message string) []Turn {
	turns := make([]Turn, 0, len(history)+2)
	turns = append(turns, Turn{Role: RoleSystem, Content: system})
	for _, m := range history {
		role := RoleAssistant
		if m.Role == models.RoleUserMessage {
			role = RoleUser
		}
		turns = append(turns, Turn{Role: role, Content: m.Content})
	}
	return append(turns, Turn{Role: RoleUser, Content: message})
}
