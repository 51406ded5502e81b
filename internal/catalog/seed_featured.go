// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

package catalog

import "github.com/tomtom215/careercanvas/internal/models"

// featuredCareers are the hand-written entries that open the catalog
// (ids 1 through 6). Generated careers are numbered after them.
var featuredCareers = []models.Career{
	{
		ID:           1,
		Title:        "UX/UI Designer",
		Field:        "Design & Technology",
		Description:  "Create intuitive, engaging interfaces for digital products and services. UX/UI Designers combine user research, visual design principles, and interaction patterns to create seamless user experiences across websites, apps, and other digital platforms.",
		Match:        95,
		SalaryMin:    75,
		SalaryMax:    120,
		MedianSalary: "92,000",
		Growth:       24,
		Skills: []string{
			"User Research",
			"Wireframing",
			"Prototyping",
			"Visual Design",
			"User Testing",
			"Information Architecture",
		},
		Responsibilities: []string{
			"Conduct user research and usability testing",
			"Create wireframes, prototypes, and user flows",
			"Design visual elements and interactive components",
			"Collaborate with developers and stakeholders",
			"Stay updated on design trends and best practices",
		},
		WorkSetting:        "Office / Remote",
		WorkSchedule:       "Full-time / Flexible",
		TeamStructure:      "Collaborative",
		WorkStyle:          "Creative / Analytical",
		WorkLifeBalance:    8,
		TopLocations:       []string{"San Francisco", "New York", "Seattle", "Austin"},
		SalaryByExperience: &models.SalaryByExperience{Entry: "70,000", Mid: "92,000", Senior: "125,000", Expert: "150,000+"},
		SalaryComparison:   &models.SalaryComparison{National: "75,000", Difference: "17,000"},
		TechnicalSkills: []models.SkillLevel{
			{Name: "Figma", Level: 9},
			{Name: "Adobe XD", Level: 8},
			{Name: "Sketch", Level: 7},
			{Name: "InVision", Level: 6},
			{Name: "HTML/CSS", Level: 5},
			{Name: "JavaScript", Level: 4},
		},
		SoftSkills: []string{
			"Communication",
			"Empathy",
			"Problem-solving",
			"Creativity",
			"Collaboration",
			"Attention to detail",
		},
		SkillDevelopment: []string{
			"Complete UX/UI design bootcamp or online courses",
			"Build a portfolio of personal and client projects",
			"Join design communities like Dribbble or Behance",
			"Attend design workshops and conferences",
			"Find a mentor in the field",
		},
		EducationPaths: []models.EducationPath{
			{Name: "Bachelor's Degree", Description: "Formal education in Graphic Design, Human-Computer Interaction, or related field", Timeframe: "4 years"},
			{Name: "UX/UI Design Bootcamp", Description: "Intensive, hands-on training focused specifically on UX/UI design skills", Timeframe: "3-6 months"},
			{Name: "Self-Taught + Certification", Description: "Online courses combined with industry certifications", Timeframe: "6-12 months"},
		},
		RecommendedPrograms: []models.Program{
			{Name: "UX Design Professional Certificate", Provider: "Google (via Coursera)", Type: "Certificate", Duration: "6 months", Cost: "$39/month"},
			{Name: "UX/UI Design Bootcamp", Provider: "General Assembly", Type: "Bootcamp", Duration: "12 weeks", Cost: "$14,950"},
			{Name: "Bachelor of Design", Provider: "Rhode Island School of Design", Type: "Degree", Duration: "4 years", Cost: "$52,000/year"},
		},
		AlternativePaths: []string{
			"Transition from graphic design or web development",
			"Start with internships or freelance projects",
			"Build skills through volunteer work for non-profits",
			"Create case studies by redesigning existing products",
		},
		Certifications: []models.Certification{
			{Name: "Certified User Experience Professional", Organization: "Nielsen Norman Group"},
			{Name: "Interaction Design Foundation Certification", Organization: "IDF"},
			{Name: "Adobe Certified Professional", Organization: "Adobe"},
		},
		DailyActivities: []models.DailyActivity{
			{Time: "9:00 AM - 10:00 AM", Description: "Team stand-up meeting and project planning"},
			{Time: "10:00 AM - 12:00 PM", Description: "User research analysis or stakeholder interviews"},
			{Time: "1:00 PM - 3:00 PM", Description: "Wireframing and prototyping in Figma"},
			{Time: "3:00 PM - 4:00 PM", Description: "Collaboration with developers on implementation"},
			{Time: "4:00 PM - 5:00 PM", Description: "User testing sessions or design reviews"},
		},
		Challenges: []string{
			"Balancing user needs with business requirements",
			"Justifying design decisions to stakeholders",
			"Keeping up with rapidly evolving design tools and trends",
			"Working within technical constraints",
			"Managing multiple projects and deadlines",
		},
		Rewards: []string{
			"Seeing your designs used by real people",
			"Solving complex problems through creative thinking",
			"Continuous learning and skill development",
			"Collaborative work environment",
			"High demand across many industries",
		},
		ProfessionalPerspective: &models.ProfessionalPerspective{
			Name:            "Sarah Johnson",
			YearsExperience: "8",
			Quote:           "What I love most about UX/UI design is how it combines creativity with problem-solving. Every project requires deep thinking about human behavior and needs, while also creating something visually compelling. It's challenging but incredibly rewarding to see users intuitively interact with something you've designed.",
		},
		RequiredEducation: "Bachelor's or Certificate",
	},
	{
		ID:           2,
		Title:        "Software Developer",
		Field:        "Technology",
		Description:  "Create, maintain, and improve software applications and systems with strong problem-solving skills. Software developers write code, debug programs, and collaborate with teams to build digital products and services that meet user needs.",
		Match:        92,
		SalaryMin:    85,
		SalaryMax:    150,
		MedianSalary: "110,000",
		Growth:       22,
		Skills:       []string{"Python", "JavaScript", "Problem Solving", "Git", "Agile Methodology", "Testing"},
		Responsibilities: []string{
			"Write clean, maintainable code in various programming languages",
			"Debug and fix software issues",
			"Collaborate with teams on software design and architecture",
			"Implement new features and functionality",
			"Optimize applications for performance and scalability",
		},
		WorkSetting:        "Office / Remote",
		WorkSchedule:       "Full-time / Flexible",
		TeamStructure:      "Collaborative",
		WorkStyle:          "Analytical / Technical",
		WorkLifeBalance:    7,
		TopLocations:       []string{"San Francisco", "Seattle", "Austin", "New York", "Boston"},
		SalaryByExperience: &models.SalaryByExperience{Entry: "80,000", Mid: "110,000", Senior: "140,000", Expert: "180,000+"},
		SalaryComparison:   &models.SalaryComparison{National: "75,000", Difference: "35,000"},
		TechnicalSkills: []models.SkillLevel{
			{Name: "JavaScript", Level: 9},
			{Name: "Python", Level: 8},
			{Name: "SQL", Level: 8},
			{Name: "DevOps", Level: 6},
			{Name: "Cloud Services", Level: 7},
			{Name: "React", Level: 8},
		},
		SoftSkills: []string{
			"Problem-solving",
			"Communication",
			"Teamwork",
			"Time management",
			"Adaptability",
			"Attention to detail",
		},
		SkillDevelopment: []string{
			"Complete a computer science degree or coding bootcamp",
			"Build personal projects and contribute to open source",
			"Practice algorithms and data structures",
			"Learn industry-specific frameworks and tools",
			"Participate in coding challenges and hackathons",
		},
		EducationPaths: []models.EducationPath{
			{Name: "Bachelor's in Computer Science", Description: "Traditional degree covering fundamentals and theoretical concepts", Timeframe: "4 years"},
			{Name: "Coding Bootcamp", Description: "Intensive training focused on practical development skills", Timeframe: "3-6 months"},
			{Name: "Self-Taught Path", Description: "Online courses, documentation, and personal projects", Timeframe: "6-18 months"},
		},
		RecommendedPrograms: []models.Program{
			{Name: "Computer Science Degree", Provider: "Georgia Tech", Type: "Degree", Duration: "4 years", Cost: "$33,000/year"},
			{Name: "Software Engineering Bootcamp", Provider: "App Academy", Type: "Bootcamp", Duration: "16 weeks", Cost: "$17,000"},
			{Name: "Full-Stack Engineer Path", Provider: "Codecademy", Type: "Online Course", Duration: "6 months", Cost: "$20/month"},
		},
		AlternativePaths: []string{
			"Start in QA or testing roles and transition to development",
			"Learn through online platforms like freeCodeCamp or The Odin Project",
			"Contribute to open source projects to build experience",
			"Participate in hackathons and coding competitions",
		},
		Certifications: []models.Certification{
			{Name: "AWS Certified Developer", Organization: "Amazon Web Services"},
			{Name: "Microsoft Certified: Azure Developer Associate", Organization: "Microsoft"},
			{Name: "Oracle Certified Professional, Java SE Programmer", Organization: "Oracle"},
		},
		DailyActivities: []models.DailyActivity{
			{Time: "9:00 AM - 9:30 AM", Description: "Team stand-up meeting to discuss tasks and blockers"},
			{Time: "9:30 AM - 12:00 PM", Description: "Focused coding time for implementing features"},
			{Time: "1:00 PM - 2:00 PM", Description: "Code reviews and pull request management"},
			{Time: "2:00 PM - 4:00 PM", Description: "Collaborative problem-solving and debugging"},
			{Time: "4:00 PM - 5:00 PM", Description: "Documentation and planning for next day's tasks"},
		},
		Challenges: []string{
			"Keeping up with rapidly evolving technologies and frameworks",
			"Debugging complex issues across different environments",
			"Managing technical debt in legacy systems",
			"Balancing speed of delivery with code quality",
			"Communicating technical concepts to non-technical stakeholders",
		},
		Rewards: []string{
			"Building products used by thousands or millions of people",
			"Constant intellectual challenges and problem-solving",
			"High demand across virtually all industries",
			"Strong compensation and benefits",
			"Opportunities for remote work and flexibility",
		},
		ProfessionalPerspective: &models.ProfessionalPerspective{
			Name:            "Alex Chen",
			YearsExperience: "6",
			Quote:           "Software development is like solving puzzles every day, but you're creating something useful in the process. What I love most is the continuous learning - there's always a new language, framework, or approach to master. The field rewards curiosity and persistence more than anything else.",
		},
		RequiredEducation: "Bachelor's or Self-taught",
	},
	{
		ID:           3,
		Title:        "Data Scientist",
		Field:        "Technology & Analytics",
		Description:  "Extract insights from large datasets to inform strategic business decisions and product innovation. Data scientists combine statistical analysis, programming, and domain knowledge to solve complex problems and create predictive models.",
		Match:        89,
		SalaryMin:    95,
		SalaryMax:    160,
		MedianSalary: "120,000",
		Growth:       31,
		Skills:       []string{"Python", "Machine Learning", "Statistics", "SQL", "Data Visualization", "Big Data"},
		Responsibilities: []string{
			"Collect, clean, and process large datasets",
			"Build statistical models and machine learning algorithms",
			"Analyze data to identify patterns and trends",
			"Create visualizations and reports to communicate findings",
			"Work with stakeholders to identify business questions and solutions",
		},
		WorkSetting:        "Office / Remote",
		WorkSchedule:       "Full-time / Project-based",
		TeamStructure:      "Collaborative",
		WorkStyle:          "Analytical / Research-oriented",
		WorkLifeBalance:    7,
		TopLocations:       []string{"San Francisco", "New York", "Seattle", "Boston", "Chicago"},
		SalaryByExperience: &models.SalaryByExperience{Entry: "90,000", Mid: "120,000", Senior: "150,000", Expert: "180,000+"},
		SalaryComparison:   &models.SalaryComparison{National: "75,000", Difference: "45,000"},
		TechnicalSkills: []models.SkillLevel{
			{Name: "Python", Level: 9},
			{Name: "SQL", Level: 8},
			{Name: "Machine Learning", Level: 9},
			{Name: "Statistics", Level: 8},
			{Name: "Data Visualization", Level: 7},
			{Name: "Big Data Tools", Level: 6},
		},
		SoftSkills: []string{
			"Analytical thinking",
			"Problem-solving",
			"Communication",
			"Business acumen",
			"Curiosity",
			"Attention to detail",
		},
		SkillDevelopment: []string{
			"Master programming languages for data analysis (Python, R)",
			"Build a strong foundation in statistics and probability",
			"Learn machine learning algorithms and frameworks",
			"Develop data visualization skills",
			"Complete real-world projects with messy datasets",
		},
		EducationPaths: []models.EducationPath{
			{Name: "Master's in Data Science", Description: "Specialized graduate degree covering statistics, programming, and machine learning", Timeframe: "1-2 years"},
			{Name: "Bachelor's + Self-Study", Description: "Undergraduate degree in quantitative field plus focused online learning", Timeframe: "4+ years"},
			{Name: "Data Science Bootcamp", Description: "Intensive, hands-on training in core data science skills", Timeframe: "3-6 months"},
		},
		RecommendedPrograms: []models.Program{
			{Name: "Master of Science in Data Science", Provider: "UC Berkeley", Type: "Degree", Duration: "2 years", Cost: "$60,000 total"},
			{Name: "Data Science Career Track", Provider: "Springboard", Type: "Bootcamp", Duration: "6 months", Cost: "$8,500"},
			{Name: "IBM Data Science Professional Certificate", Provider: "IBM (via Coursera)", Type: "Certificate", Duration: "4-6 months", Cost: "$39/month"},
		},
		AlternativePaths: []string{
			"Transition from statistics, mathematics, or analysis roles",
			"Start in data analytics and progress to more predictive work",
			"Contribute to open source data science projects",
			"Participate in data science competitions on Kaggle",
		},
		Certifications: []models.Certification{
			{Name: "Microsoft Certified: Azure Data Scientist Associate", Organization: "Microsoft"},
			{Name: "Google Professional Data Engineer", Organization: "Google Cloud"},
			{Name: "Certified Data Scientist", Organization: "IBM"},
		},
		DailyActivities: []models.DailyActivity{
			{Time: "9:00 AM - 10:00 AM", Description: "Review project status and planning with team"},
			{Time: "10:00 AM - 12:00 PM", Description: "Data collection, cleaning, and preprocessing"},
			{Time: "1:00 PM - 3:00 PM", Description: "Model development and testing"},
			{Time: "3:00 PM - 4:00 PM", Description: "Stakeholder meetings to discuss findings"},
			{Time: "4:00 PM - 5:00 PM", Description: "Documentation and research on new techniques"},
		},
		Challenges: []string{
			"Working with messy, incomplete, or biased data",
			"Translating complex statistical concepts for non-technical audiences",
			"Balancing accuracy with interpretability in models",
			"Keeping up with rapidly evolving tools and techniques",
			"Ensuring ethical use of data and algorithms",
		},
		Rewards: []string{
			"Solving complex, impactful problems across industries",
			"Continuous intellectual challenges and learning",
			"High demand and strong compensation",
			"Combining technical skills with business impact",
			"Opportunities to work with cutting-edge technologies",
		},
		ProfessionalPerspective: &models.ProfessionalPerspective{
			Name:            "Priya Sharma",
			YearsExperience: "5",
			Quote:           "Data science is the perfect field for the perpetually curious. Every day brings new puzzles to solve and insights to uncover. What I find most rewarding is translating complex analyses into actionable insights that drive real business decisions. It's both technically challenging and creatively satisfying.",
		},
		RequiredEducation: "Master's (preferred)",
	},
	{
		ID:           4,
		Title:        "Digital Marketing Manager",
		Field:        "Marketing",
		Description:  "Drive brand awareness, lead generation, and customer engagement through digital channels. Digital Marketing Managers develop strategies across social media, content marketing, email, SEO, and paid advertising to achieve business goals.",
		Match:        84,
		SalaryMin:    65,
		SalaryMax:    120,
		MedianSalary: "85,000",
		Growth:       18,
		Skills: []string{
			"SEO",
			"Content Marketing",
			"Social Media",
			"Email Marketing",
			"Analytics",
			"Campaign Management",
		},
		Responsibilities: []string{
			"Develop and implement digital marketing strategies",
			"Manage campaigns across multiple channels",
			"Analyze performance metrics and optimize campaigns",
			"Create and curate engaging content",
			"Manage marketing budget and ROI tracking",
		},
		WorkSetting:        "Office / Remote",
		WorkSchedule:       "Full-time / Flexible",
		TeamStructure:      "Collaborative",
		WorkStyle:          "Creative / Data-driven",
		WorkLifeBalance:    6,
		TopLocations:       []string{"New York", "Chicago", "Los Angeles", "Austin", "Atlanta"},
		SalaryByExperience: &models.SalaryByExperience{Entry: "55,000", Mid: "85,000", Senior: "110,000", Expert: "140,000+"},
		SalaryComparison:   &models.SalaryComparison{National: "75,000", Difference: "10,000"},
		TechnicalSkills: []models.SkillLevel{
			{Name: "Google Analytics", Level: 9},
			{Name: "Social Media Platforms", Level: 9},
			{Name: "SEO Tools", Level: 8},
			{Name: "Email Marketing Software", Level: 8},
			{Name: "Content Management Systems", Level: 7},
			{Name: "Paid Advertising Platforms", Level: 8},
		},
		SoftSkills: []string{
			"Communication",
			"Creativity",
			"Analytical thinking",
			"Project management",
			"Adaptability",
			"Strategic planning",
		},
		SkillDevelopment: []string{
			"Gain experience with major digital marketing platforms",
			"Learn data analysis and performance measurement",
			"Develop content creation and copywriting skills",
			"Stay updated on digital marketing trends and algorithm changes",
			"Complete certifications from Google, Facebook, etc.",
		},
		EducationPaths: []models.EducationPath{
			{Name: "Bachelor's in Marketing", Description: "Traditional degree covering marketing principles and business fundamentals", Timeframe: "4 years"},
			{Name: "Digital Marketing Certificate", Description: "Focused training on digital marketing skills and platforms", Timeframe: "3-6 months"},
			{Name: "Self-Guided + Certifications", Description: "Learning through online resources and platform-specific certifications", Timeframe: "6-12 months"},
		},
		RecommendedPrograms: []models.Program{
			{Name: "Bachelor of Business Administration in Marketing", Provider: "NYU Stern", Type: "Degree", Duration: "4 years", Cost: "$54,000/year"},
			{Name: "Digital Marketing Nanodegree", Provider: "Udacity", Type: "Certificate", Duration: "3 months", Cost: "$399/month"},
			{Name: "Digital Marketing Specialization", Provider: "University of Illinois (via Coursera)", Type: "Certificate", Duration: "8 months", Cost: "$49/month"},
		},
		AlternativePaths: []string{
			"Start in a specific channel (social media, SEO, content) and expand skills",
			"Move from traditional marketing into digital specialties",
			"Begin with marketing assistant roles and grow with experience",
			"Build a portfolio through freelance or volunteer marketing work",
		},
		Certifications: []models.Certification{
			{Name: "Google Analytics Certification", Organization: "Google"},
			{Name: "Facebook Blueprint Certification", Organization: "Meta"},
			{Name: "HubSpot Content Marketing Certification", Organization: "HubSpot"},
		},
		DailyActivities: []models.DailyActivity{
			{Time: "9:00 AM - 9:30 AM", Description: "Review performance metrics and campaign status"},
			{Time: "9:30 AM - 11:00 AM", Description: "Content planning and review with team"},
			{Time: "11:00 AM - 12:00 PM", Description: "Stakeholder meetings for upcoming campaigns"},
			{Time: "1:00 PM - 3:00 PM", Description: "Campaign optimization and budget management"},
			{Time: "3:00 PM - 5:00 PM", Description: "Strategic planning and performance analysis"},
		},
		Challenges: []string{
			"Keeping up with constantly changing platforms and algorithms",
			"Balancing creativity with data-driven decision making",
			"Demonstrating ROI and value to stakeholders",
			"Managing campaigns across multiple channels simultaneously",
			"Staying ahead of competitors in crowded markets",
		},
		Rewards: []string{
			"Seeing immediate impact of campaigns on business results",
			"Combination of creative and analytical work",
			"Opportunities for continuous learning and growth",
			"High demand across virtually all industries",
			"Potential for remote work and flexibility",
		},
		ProfessionalPerspective: &models.ProfessionalPerspective{
			Name:            "Marcus Johnson",
			YearsExperience: "7",
			Quote:           "What I love about digital marketing is the perfect blend of creativity and analytics. You can come up with innovative campaign ideas in the morning and measure their performance by the afternoon. It's fast-paced and always evolving, which keeps the work exciting and challenging.",
		},
		RequiredEducation: "Bachelor's (preferred)",
	},
	{
		ID:           5,
		Title:        "Nurse Practitioner",
		Field:        "Healthcare",
		Description:  "Provide primary and specialty healthcare with more autonomy than registered nurses. Nurse practitioners diagnose conditions, prescribe medications, develop treatment plans, and offer preventative care advice to patients.",
		Match:        78,
		SalaryMin:    95,
		SalaryMax:    140,
		MedianSalary: "115,000",
		Growth:       45,
		Skills: []string{
			"Patient Assessment",
			"Diagnosis",
			"Treatment Planning",
			"Medication Management",
			"Patient Education",
			"Clinical Documentation",
		},
		Responsibilities: []string{
			"Conduct comprehensive patient assessments",
			"Diagnose acute and chronic conditions",
			"Prescribe medications and treatments",
			"Order and interpret diagnostic tests",
			"Provide patient education and preventative care",
		},
		WorkSetting:        "Clinical / Hospital / Private Practice",
		WorkSchedule:       "Varies (shifts or regular hours)",
		TeamStructure:      "Collaborative Healthcare Team",
		WorkStyle:          "People-focused / Detail-oriented",
		WorkLifeBalance:    6,
		TopLocations:       []string{"California", "Texas", "New York", "Florida", "Massachusetts"},
		SalaryByExperience: &models.SalaryByExperience{Entry: "95,000", Mid: "115,000", Senior: "130,000", Expert: "150,000+"},
		SalaryComparison:   &models.SalaryComparison{National: "75,000", Difference: "40,000"},
		TechnicalSkills: []models.SkillLevel{
			{Name: "Clinical Assessment", Level: 9},
			{Name: "Pharmacology", Level: 9},
			{Name: "Electronic Health Records", Level: 8},
			{Name: "Diagnostic Procedures", Level: 8},
			{Name: "Medical Equipment", Level: 7},
			{Name: "Treatment Protocols", Level: 9},
		},
		SoftSkills: []string{
			"Empathy",
			"Communication",
			"Critical thinking",
			"Attention to detail",
			"Time management",
			"Stress management",
		},
		SkillDevelopment: []string{
			"Earn RN licensure and clinical experience",
			"Complete an accredited Nurse Practitioner program",
			"Obtain national certification in your specialty",
			"Pursue continuing education in specialized areas",
			"Develop leadership and communication skills",
		},
		EducationPaths: []models.EducationPath{
			{Name: "Master of Science in Nursing (MSN)", Description: "Graduate-level nursing program with NP specialization", Timeframe: "2-3 years after BSN"},
			{Name: "Doctor of Nursing Practice (DNP)", Description: "Terminal practice-focused nursing degree", Timeframe: "3-4 years after BSN"},
			{Name: "RN to NP Bridge Program", Description: "Accelerated pathway for experienced RNs", Timeframe: "2-4 years"},
		},
		RecommendedPrograms: []models.Program{
			{Name: "Master of Science in Nursing - Family Nurse Practitioner", Provider: "Johns Hopkins University", Type: "Degree", Duration: "2 years", Cost: "$45,000 total"},
			{Name: "Doctor of Nursing Practice", Provider: "University of Washington", Type: "Degree", Duration: "3-4 years", Cost: "$35,000/year"},
			{Name: "Post-Master's NP Certificate", Provider: "Vanderbilt University", Type: "Certificate", Duration: "1-2 years", Cost: "$30,000 total"},
		},
		AlternativePaths: []string{
			"Start as a Registered Nurse and advance through experience",
			"Bridge programs for career-changers with non-nursing backgrounds",
			"Accelerated options for those with prior healthcare experience",
			"Part-time study while continuing to work as an RN",
		},
		Certifications: []models.Certification{
			{Name: "Family Nurse Practitioner (FNP-BC)", Organization: "American Nurses Credentialing Center"},
			{Name: "Adult-Gerontology Nurse Practitioner", Organization: "American Association of Nurse Practitioners"},
			{Name: "Psychiatric Mental Health Nurse Practitioner", Organization: "American Nurses Credentialing Center"},
		},
		DailyActivities: []models.DailyActivity{
			{Time: "8:00 AM - 9:00 AM", Description: "Review patient charts and prepare for appointments"},
			{Time: "9:00 AM - 12:00 PM", Description: "Patient examinations, diagnoses, and treatment planning"},
			{Time: "1:00 PM - 3:00 PM", Description: "Follow-up appointments and medication management"},
			{Time: "3:00 PM - 4:00 PM", Description: "Consult with physicians on complex cases"},
			{Time: "4:00 PM - 5:00 PM", Description: "Complete clinical documentation and follow-ups"},
		},
		Challenges: []string{
			"Managing high patient loads while providing quality care",
			"Keeping up with evolving medical knowledge and best practices",
			"Navigating regulatory requirements and scope of practice limits",
			"Dealing with emotionally challenging patient situations",
			"Balancing autonomy with collaborative care models",
		},
		Rewards: []string{
			"Making a direct impact on patients' health and wellbeing",
			"Strong job security and high demand across the country",
			"Opportunities for specialization in many areas of medicine",
			"Meaningful relationships with patients and care teams",
			"Intellectual challenges and continuous learning",
		},
		ProfessionalPerspective: &models.ProfessionalPerspective{
			Name:            "Emily Rodriguez, FNP",
			YearsExperience: "9",
			Quote:           "Being a nurse practitioner combines the best aspects of nursing and medicine. I have the autonomy to diagnose and treat patients, while still maintaining the holistic, patient-centered approach that drew me to healthcare. Every day brings different challenges, but helping patients improve their health and quality of life makes it incredibly rewarding.",
		},
		RequiredEducation: "Master's Degree",
	},
	{
		ID:           6,
		Title:        "Financial Analyst",
		Field:        "Finance",
		Description:  "Evaluate financial data to help organizations make informed business decisions. Financial analysts assess investment opportunities, analyze market trends, create financial models, and provide recommendations to guide strategy.",
		Match:        72,
		SalaryMin:    65,
		SalaryMax:    110,
		MedianSalary: "85,000",
		Growth:       15,
		Skills: []string{
			"Financial Modeling",
			"Data Analysis",
			"Excel",
			"Forecasting",
			"Financial Reporting",
			"Business Acumen",
		},
		Responsibilities: []string{
			"Analyze financial data and performance metrics",
			"Create financial models and forecasts",
			"Evaluate investment opportunities and risks",
			"Prepare reports and presentations for stakeholders",
			"Monitor industry trends and market conditions",
		},
		WorkSetting:        "Office / Hybrid",
		WorkSchedule:       "Full-time / Regular hours",
		TeamStructure:      "Departmental",
		WorkStyle:          "Analytical / Detail-oriented",
		WorkLifeBalance:    5,
		TopLocations:       []string{"New York", "Chicago", "Boston", "Charlotte", "San Francisco"},
		SalaryByExperience: &models.SalaryByExperience{Entry: "65,000", Mid: "85,000", Senior: "110,000", Expert: "140,000+"},
		SalaryComparison:   &models.SalaryComparison{National: "75,000", Difference: "10,000"},
		TechnicalSkills: []models.SkillLevel{
			{Name: "Excel/Spreadsheets", Level: 9},
			{Name: "Financial Modeling", Level: 9},
			{Name: "Business Intelligence Tools", Level: 7},
			{Name: "SQL/Database Queries", Level: 6},
			{Name: "Accounting Principles", Level: 8},
			{Name: "Financial Analysis Software", Level: 7},
		},
		SoftSkills: []string{
			"Analytical thinking",
			"Attention to detail",
			"Communication",
			"Problem-solving",
			"Time management",
			"Business acumen",
		},
		SkillDevelopment: []string{
			"Master financial modeling and analysis techniques",
			"Develop advanced Excel and data analysis skills",
			"Learn financial reporting and accounting principles",
			"Build industry-specific knowledge",
			"Improve presentation and communication abilities",
		},
		EducationPaths: []models.EducationPath{
			{Name: "Bachelor's in Finance or Economics", Description: "Undergraduate degree covering financial principles and analysis", Timeframe: "4 years"},
			{Name: "Master's in Finance", Description: "Advanced degree with specialized financial training", Timeframe: "1-2 years"},
			{Name: "MBA with Finance Concentration", Description: "Business administration degree with finance focus", Timeframe: "2 years"},
		},
		RecommendedPrograms: []models.Program{
			{Name: "Bachelor of Science in Finance", Provider: "Wharton School, UPenn", Type: "Degree", Duration: "4 years", Cost: "$60,000/year"},
			{Name: "Master of Finance", Provider: "MIT Sloan", Type: "Degree", Duration: "1 year", Cost: "$80,000 total"},
			{Name: "Financial Analysis Specialization", Provider: "University of Michigan (via Coursera)", Type: "Certificate", Duration: "4 months", Cost: "$49/month"},
		},
		AlternativePaths: []string{
			"Start in accounting or banking roles and transition to analysis",
			"Begin in financial operations and move to strategic analysis",
			"Leverage quantitative backgrounds from other fields",
			"Start as a financial research assistant or associate",
		},
		Certifications: []models.Certification{
			{Name: "Chartered Financial Analyst (CFA)", Organization: "CFA Institute"},
			{Name: "Financial Risk Manager (FRM)", Organization: "Global Association of Risk Professionals"},
			{Name: "Certified Financial Planner (CFP)", Organization: "CFP Board"},
		},
		DailyActivities: []models.DailyActivity{
			{Time: "8:30 AM - 9:30 AM", Description: "Review financial performance metrics and market data"},
			{Time: "9:30 AM - 11:30 AM", Description: "Update financial models and forecasts"},
			{Time: "11:30 AM - 12:30 PM", Description: "Prepare for or attend stakeholder meetings"},
			{Time: "1:30 PM - 3:30 PM", Description: "Analyze investment opportunities or business cases"},
			{Time: "3:30 PM - 5:00 PM", Description: "Generate reports and draft recommendations"},
		},
		Challenges: []string{
			"Managing tight deadlines, especially during reporting periods",
			"Balancing accuracy with timeliness in financial analysis",
			"Communicating complex financial concepts to non-financial stakeholders",
			"Adapting to changing regulations and reporting requirements",
			"Maintaining objectivity when stakeholders have different preferences",
		},
		Rewards: []string{
			"Directly influencing business strategy and investment decisions",
			"Clear career progression path with advancement opportunities",
			"Exposure to senior leadership and strategic planning",
			"Intellectually stimulating work with tangible impacts",
			"Developing transferable skills valued across industries",
		},
		ProfessionalPerspective: &models.ProfessionalPerspective{
			Name:            "Michael Tran",
			YearsExperience: "8",
			Quote:           "Financial analysis is all about turning numbers into narratives that drive decisions. What I find most rewarding is connecting financial insights to business strategy - showing how data tells a story about opportunities and risks. There's something deeply satisfying about creating clarity from complexity, especially when you see your analysis shape important business decisions.",
		},
		RequiredEducation: "Bachelor's Degree",
	},
}
