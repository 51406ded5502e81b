// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

package chat

import (
	"math/rand/v2"
	"strings"
)

// Topics a fallback reply can be about.
const (
	TopicSkills     = "skills"
	TopicSalary     = "salary"
	TopicEducation  = "education"
	TopicTransition = "transition"
	TopicWorkLife   = "work-life"
	TopicLocation   = "location"
	TopicGeneric    = "generic"
)

// topicRules are checked in order; the first rule with a matching keyword
// wins.
var topicRules = []struct {
	topic    string
	keywords []string
}{
	{TopicSkills, []string{"skill", "learn"}},
	{TopicSalary, []string{"salary", "pay", "money"}},
	{TopicEducation, []string{"education", "degree", "school"}},
	{TopicTransition, []string{"transition", "change career"}},
	{TopicWorkLife, []string{"work life", "balance"}},
	{TopicLocation, []string{"best city", "location", "where to work"}},
}

// DetectTopic classifies message by keyword.
func DetectTopic(message string) string {
	lower := strings.ToLower(message)
	for _, rule := range topicRules {
		if containsAny(lower, rule.keywords...) {
			return rule.topic
		}
	}
	return TopicGeneric
}

// FallbackReply answers message without the model.
func FallbackReply(message string) string {
	lower := strings.ToLower(message)
	switch DetectTopic(lower) {
	case TopicSkills:
		return skillsReply(lower)
	case TopicSalary:
		return salaryReply(lower)
	case TopicEducation:
		return educationReply(lower)
	case TopicTransition:
		return transitionReply(lower)
	case TopicWorkLife:
		return workLifeReply
	case TopicLocation:
		return locationReply(lower)
	default:
		return genericReplies[rand.IntN(len(genericReplies))]
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func skillsReply(msg string) string {
	switch {
	case containsAny(msg, "ux", "design"):
		return "Key UX design skills to focus on:\n\n" +
			"1. User research (interviews, surveys, usability testing)\n" +
			"2. Wireframing and prototyping in tools like Figma\n" +
			"3. Information architecture and user flows\n" +
			"4. Visual design fundamentals\n" +
			"5. Interaction design patterns\n\n" +
			"Courses and bootcamps help, but a portfolio of real or self-initiated projects matters most to employers."
	case containsAny(msg, "software", "develop", "coding"):
		return "Valuable software development skills:\n\n" +
			"1. Programming fundamentals in a mainstream language\n" +
			"2. Data structures and algorithms\n" +
			"3. Version control with Git\n" +
			"4. A modern framework in your area of interest\n" +
			"5. Database design\n" +
			"6. Testing\n\n" +
			"Build projects you care about while learning, and publish them so employers can see your work."
	case containsAny(msg, "data", "analytic"):
		return "Core skills for data science and analytics:\n\n" +
			"1. Statistics and applied mathematics\n" +
			"2. Python or R with the usual data libraries\n" +
			"3. Data visualization\n" +
			"4. SQL\n" +
			"5. Machine learning fundamentals\n" +
			"6. Domain knowledge in your target industry\n\n" +
			"Online courses, public datasets and your own analysis projects make a strong portfolio."
	default:
		return "Skills worth developing in almost any career:\n\n" +
			"1. Technical skills specific to your field\n" +
			"2. Communication and presentation\n" +
			"3. Problem-solving and critical thinking\n" +
			"4. Collaboration\n" +
			"5. Time management\n\n" +
			"Keep up with your field through courses, webinars and industry publications. Would you like recommendations for a particular career?"
	}
}

func salaryReply(msg string) string {
	switch {
	case containsAny(msg, "software", "developer"):
		return "Typical software developer salaries:\n\n" +
			"• Entry level (0-2 years): $70,000 - $90,000\n" +
			"• Mid level (3-5 years): $90,000 - $120,000\n" +
			"• Senior (6-10 years): $120,000 - $150,000\n" +
			"• Lead or principal: $150,000 - $200,000+\n\n" +
			"Specializations such as machine learning, cloud or security pay more, and tech hubs pay more but cost more to live in."
	case containsAny(msg, "data", "scientist"):
		return "Typical data scientist salaries:\n\n" +
			"• Entry level: $85,000 - $105,000\n" +
			"• Mid level: $105,000 - $135,000\n" +
			"• Senior: $135,000 - $165,000\n" +
			"• Principal or director: $165,000 - $250,000+\n\n" +
			"Finance, technology and healthcare tend to pay the most, as does strong machine learning engineering experience."
	case containsAny(msg, "ux", "design"):
		return "Typical UX/UI designer salaries:\n\n" +
			"• Junior: $60,000 - $80,000\n" +
			"• Mid level: $80,000 - $110,000\n" +
			"• Senior: $110,000 - $140,000\n" +
			"• Lead or director: $140,000 - $180,000+\n\n" +
			"Product companies usually pay more, and specialties like design systems or interaction design raise compensation."
	default:
		return "General salary ranges by sector:\n\n" +
			"• Technology: $70,000 - $200,000+\n" +
			"• Healthcare: $60,000 - $300,000+\n" +
			"• Finance: $65,000 - $250,000+\n" +
			"• Marketing: $50,000 - $150,000+\n" +
			"• Education: $45,000 - $100,000+\n\n" +
			"Location, experience, education and company size all move these numbers. Want figures for a specific career?"
	}
}

func educationReply(msg string) string {
	switch {
	case containsAny(msg, "ux", "design"):
		return "UX/UI design does not strictly require a degree. Common paths:\n\n" +
			"1. Degrees in design, HCI or psychology\n" +
			"2. UX bootcamps\n" +
			"3. Online certificate programs\n" +
			"4. Self-directed learning with a strong portfolio\n\n" +
			"A portfolio that shows your design process counts for more than the credential."
	case containsAny(msg, "data", "science"):
		return "Education paths into data science:\n\n" +
			"1. Degrees in computer science, statistics, mathematics or data science\n" +
			"2. Data science bootcamps\n" +
			"3. Online specializations\n" +
			"4. Self-directed learning with practical projects\n\n" +
			"Advanced degrees are common, but a portfolio of real analyses can carry equal weight."
	case containsAny(msg, "software", "develop"):
		return "Education paths into software development:\n\n" +
			"1. Degrees in computer science or software engineering\n" +
			"2. Coding bootcamps\n" +
			"3. Online learning platforms\n" +
			"4. Self-teaching through personal projects\n\n" +
			"Many developers are self-taught or bootcamp graduates. Demonstrated ability through projects and open source matters most."
	default:
		return "Common education pathways:\n\n" +
			"1. University degrees\n" +
			"2. Vocational or technical programs\n" +
			"3. Industry certifications\n" +
			"4. Bootcamps\n" +
			"5. Self-directed learning and experience\n\n" +
			"Many fields increasingly value skills over formal credentials. Tell me which career you are considering for specific requirements."
	}
}

func transitionReply(msg string) string {
	switch {
	case strings.Contains(msg, "marketing") && strings.Contains(msg, "product"):
		return "Moving from marketing to product management is a natural step since both focus on customer needs:\n\n" +
			"1. Lean on your understanding of customers and markets\n" +
			"2. Take product management coursework\n" +
			"3. Build analytical skills with SQL and product analytics tools\n" +
			"4. Take on product-related projects in your current role\n" +
			"5. Consider product marketing as a bridge role\n\n" +
			"Frame your marketing background as an advantage in positioning products."
	case containsAny(msg, "teacher", "education"):
		return "Educators bring transferable skills to many fields:\n\n" +
			"1. Communication and presentation, useful in training, sales or content\n" +
			"2. Planning and organization, useful in project management\n" +
			"3. Coaching, useful in HR or management\n" +
			"4. Curriculum design, useful in instructional design\n\n" +
			"Corporate training, edtech, instructional design and customer success are common destinations."
	default:
		return "A general framework for changing careers:\n\n" +
			"1. Identify your transferable skills\n" +
			"2. Find the gaps and make a learning plan\n" +
			"3. Build a portfolio of relevant projects\n" +
			"4. Network with people in the target field\n" +
			"5. Consider bridge roles\n" +
			"6. Rewrite your resume around relevant experience\n\n" +
			"Have a clear story for why you are changing and what your background adds. Which field are you moving toward?"
	}
}

const workLifeReply = "Work-life balance depends on the field and even more on the employer.\n\n" +
	"**Often better balance:**\n" +
	"• Government and public sector\n" +
	"• Established corporate roles\n" +
	"• Technology companies with flexible policies\n" +
	"• Healthcare administration\n\n" +
	"**Often harder balance:**\n" +
	"• Investment banking\n" +
	"• Large law firms\n" +
	"• Clinical healthcare\n" +
	"• Startups\n" +
	"• Travel-heavy consulting\n\n" +
	"Ask about typical hours and busy periods when interviewing, and read employee reviews."

func locationReply(msg string) string {
	switch {
	case containsAny(msg, "software", "developer", "tech"):
		return "Strong cities for software developers:\n\n" +
			"1. **Austin, TX**: growing hub with lower costs than Silicon Valley\n" +
			"2. **Seattle, WA**: large employers and many startups\n" +
			"3. **Raleigh-Durham, NC**: the Research Triangle\n" +
			"4. **Atlanta, GA**: a diverse emerging hub\n" +
			"5. **Denver/Boulder, CO**: growing scene with high quality of life\n\n" +
			"Remote work also lets many developers live somewhere affordable. Compare salary against cost of living."
	case containsAny(msg, "finance", "banking"):
		return "Strong cities for finance and banking:\n\n" +
			"1. **New York City**: the largest concentration of roles\n" +
			"2. **Chicago**: trading and commodities\n" +
			"3. **Boston**: asset management and fintech\n" +
			"4. **Charlotte, NC**: major banking center with lower costs\n" +
			"5. **San Francisco**: fintech and venture capital\n\n" +
			"London, Singapore, Hong Kong, Tokyo and Frankfurt are the main international hubs."
	default:
		return "Factors to weigh when choosing where to work:\n\n" +
			"1. **Industry concentration**: how many employers in your field\n" +
			"2. **Salary against cost of living**\n" +
			"3. **Growth opportunities**: room to change employers\n" +
			"4. **Quality of life**: commute, culture, outdoors\n" +
			"5. **Remote options** in your field\n\n" +
			"Would you like location suggestions for a specific field?"
	}
}

var genericReplies = []string{
	"I'd be happy to help with your career questions. What specifically would you like to know?",
	"I can share salary expectations, education requirements, growth opportunities and more. What would you like to explore?",
	"I'm the CareerCanvas assistant. Ask me about career paths, skills, education or job markets.",
	"I can help you find careers that match your skills and interests. Tell me a bit about your background to get more personal guidance.",
	"Would you like information about an industry, a specific role, educational pathways or changing careers?",
}
