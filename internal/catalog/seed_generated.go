// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

package catalog

// fieldSeeds groups the generated career templates by field. Generation
// walks this slice in order, so ids are stable for a given table.
var fieldSeeds = []fieldSeed{
	{
		Field: "Technology",
		Careers: []careerSeed{
			{"Software Engineer", []string{"Programming", "Problem Solving", "Data Structures", "Algorithms", "Software Design", "Testing"}, 80, 150, 22},
			{"Data Scientist", []string{"Machine Learning", "Statistics", "Python", "Data Visualization", "SQL", "Problem Solving"}, 85, 160, 28},
			{"Cloud Architect", []string{"AWS/Azure/GCP", "Infrastructure Design", "Security", "Networking", "DevOps", "Solution Architecture"}, 120, 180, 20},
			{"DevOps Engineer", []string{"CI/CD", "Docker", "Kubernetes", "Linux", "Scripting", "Cloud Platforms"}, 95, 155, 25},
			{"Mobile App Developer", []string{"iOS/Android", "UI/UX Design", "API Integration", "Performance Optimization", "Cross-Platform Development", "Testing"}, 75, 140, 22},
			{"Blockchain Developer", []string{"Smart Contracts", "Cryptography", "Blockchain Protocols", "Solidity", "Web3", "Full-Stack Development"}, 110, 175, 32},
			{"AI Engineer", []string{"Machine Learning", "Neural Networks", "Python", "Data Processing", "Algorithm Development", "Research"}, 100, 170, 35},
			{"Cybersecurity Analyst", []string{"Threat Analysis", "Security Tools", "Network Security", "Incident Response", "Penetration Testing", "Risk Assessment"}, 85, 150, 33},
			{"Network Engineer", []string{"Network Design", "Routing/Switching", "Network Security", "Troubleshooting", "Implementation", "Monitoring"}, 70, 130, 15},
			{"Database Administrator", []string{"SQL", "Database Design", "Performance Tuning", "Backup/Recovery", "Security", "Troubleshooting"}, 80, 140, 10},
			{"Full-Stack Developer", []string{"Frontend", "Backend", "Databases", "API Design", "UI/UX", "Testing"}, 85, 155, 27},
			{"Systems Analyst", []string{"Requirements Analysis", "System Design", "Process Improvement", "Documentation", "Testing", "Stakeholder Management"}, 70, 120, 9},
			{"IT Project Manager", []string{"Project Planning", "Resource Management", "Risk Management", "Budgeting", "Stakeholder Communication", "Technical Understanding"}, 90, 160, 11},
			{"AR/VR Developer", []string{"3D Modeling", "Unity/Unreal Engine", "UI/UX Design", "Spatial Computing", "Animation", "Programming"}, 90, 150, 30},
			{"Robotics Engineer", []string{"Control Systems", "Computer Vision", "ROS", "Mechanical Engineering", "Electronics", "Programming"}, 95, 165, 22},
		},
	},
	{
		Field: "Healthcare",
		Careers: []careerSeed{
			{"Registered Nurse", []string{"Patient Care", "Medical Knowledge", "Critical Thinking", "Communication", "Organization", "Compassion"}, 65, 120, 15},
			{"Physician Assistant", []string{"Medical Knowledge", "Patient Assessment", "Clinical Procedures", "Decision Making", "Communication", "Teamwork"}, 95, 140, 31},
			{"Physical Therapist", []string{"Rehabilitation Techniques", "Anatomy Knowledge", "Patient Assessment", "Treatment Planning", "Compassion", "Communication"}, 75, 125, 18},
			{"Medical Laboratory Technician", []string{"Lab Procedures", "Sample Testing", "Equipment Operation", "Quality Control", "Attention to Detail", "Critical Thinking"}, 50, 90, 11},
			{"Healthcare Administrator", []string{"Healthcare Regulations", "Management", "Budgeting", "Strategic Planning", "Communication", "Problem Solving"}, 80, 150, 32},
			{"Occupational Therapist", []string{"Therapeutic Techniques", "Assessment", "Rehabilitation Planning", "Adaptive Equipment", "Patient Education", "Documentation"}, 75, 120, 17},
			{"Dietitian", []string{"Nutrition Science", "Meal Planning", "Patient Education", "Assessment", "Medical Knowledge", "Communication"}, 55, 85, 8},
			{"Pharmacist", []string{"Medication Knowledge", "Patient Consultation", "Prescription Verification", "Health Screening", "Inventory Management", "Attention to Detail"}, 120, 160, 2},
			{"Radiologic Technologist", []string{"Imaging Equipment", "Patient Positioning", "Radiation Safety", "Image Quality Assessment", "Patient Care", "Technical Knowledge"}, 60, 95, 9},
			{"Medical Coder", []string{"Medical Terminology", "Coding Systems", "EHR Software", "Attention to Detail", "Analysis", "Compliance"}, 40, 75, 11},
		},
	},
	{
		Field: "Finance",
		Careers: []careerSeed{
			{"Financial Planner", []string{"Investment Knowledge", "Financial Analysis", "Client Relationship", "Risk Assessment", "Tax Planning", "Communication"}, 70, 150, 15},
			{"Investment Banking Analyst", []string{"Financial Modeling", "Valuation", "Market Research", "Deal Execution", "Excel", "Presentation"}, 85, 180, 5},
			{"Actuary", []string{"Mathematics", "Statistics", "Risk Assessment", "Analytical Thinking", "Programming", "Financial Knowledge"}, 90, 160, 24},
			{"Accountant", []string{"Bookkeeping", "Tax Preparation", "Financial Reporting", "Auditing", "Analysis", "Attention to Detail"}, 60, 120, 7},
			{"Financial Analyst", []string{"Financial Modeling", "Data Analysis", "Forecasting", "Reporting", "Excel", "Business Acumen"}, 65, 120, 11},
			{"Risk Manager", []string{"Risk Assessment", "Analysis", "Mitigation Planning", "Compliance", "Industry Knowledge", "Communication"}, 85, 150, 15},
			{"Portfolio Manager", []string{"Investment Strategy", "Asset Allocation", "Financial Analysis", "Market Research", "Client Management", "Decision Making"}, 100, 200, 8},
			{"Insurance Underwriter", []string{"Risk Evaluation", "Policy Analysis", "Decision Making", "Industry Knowledge", "Attention to Detail", "Communication"}, 65, 125, 5},
			{"Credit Analyst", []string{"Credit Risk Assessment", "Financial Statement Analysis", "Industry Research", "Documentation", "Communication", "Attention to Detail"}, 60, 110, 6},
		},
	},
	{
		Field: "Design & Technology",
		Careers: []careerSeed{
			{"Graphic Designer", []string{"Visual Design", "Typography", "Color Theory", "Adobe Creative Suite", "Branding", "Layout Design"}, 45, 95, 3},
			{"Product Designer", []string{"User Research", "Prototyping", "Visual Design", "UX Design", "Design Systems", "Problem Solving"}, 70, 135, 8},
			{"3D Modeler", []string{"3D Software", "Texturing", "Lighting", "Animation", "Rendering", "Attention to Detail"}, 55, 120, 15},
			{"Motion Graphics Designer", []string{"Animation", "After Effects", "Storytelling", "Video Editing", "Creative Thinking", "Technical Skills"}, 60, 115, 14},
			{"Game Designer", []string{"Game Mechanics", "Level Design", "Storytelling", "Prototyping", "User Psychology", "Creative Thinking"}, 65, 130, 11},
			{"Web Designer", []string{"UI Design", "HTML/CSS", "Responsive Design", "User Experience", "Visual Design", "Prototyping"}, 55, 110, 8},
		},
	},
	{
		Field: "Marketing",
		Careers: []careerSeed{
			{"Digital Marketing Specialist", []string{"SEO/SEM", "Social Media", "Analytics", "Content Creation", "Campaign Management", "Market Research"}, 50, 110, 20},
			{"Brand Manager", []string{"Brand Strategy", "Marketing Campaigns", "Market Analysis", "Product Development", "Budget Management", "Leadership"}, 75, 140, 10},
			{"Content Strategist", []string{"Content Planning", "SEO", "Audience Analysis", "Writing/Editing", "Project Management", "Analytics"}, 65, 115, 13},
			{"Market Research Analyst", []string{"Data Analysis", "Survey Design", "Statistical Methods", "Report Writing", "Critical Thinking", "Industry Knowledge"}, 60, 110, 18},
			{"Social Media Manager", []string{"Platform Knowledge", "Content Creation", "Community Management", "Analytics", "Campaign Planning", "Trend Awareness"}, 50, 100, 15},
			{"SEO Specialist", []string{"Keyword Research", "Analytics", "Link Building", "Technical SEO", "Content Optimization", "Competitor Analysis"}, 55, 105, 20},
		},
	},
	{
		Field: "Business & Management",
		Careers: []careerSeed{
			{"Management Consultant", []string{"Problem Solving", "Business Analysis", "Strategic Thinking", "Project Management", "Communication", "Industry Knowledge"}, 85, 175, 14},
			{"Human Resources Manager", []string{"Recruitment", "Employee Relations", "HR Policies", "Conflict Resolution", "Communication", "Leadership"}, 70, 140, 9},
			{"Operations Manager", []string{"Process Improvement", "Staff Management", "Strategic Planning", "Problem Solving", "Budget Management", "Industry Knowledge"}, 75, 145, 7},
			{"Business Analyst", []string{"Requirements Gathering", "Data Analysis", "Process Modeling", "Documentation", "Communication", "Problem Solving"}, 65, 125, 14},
			{"Supply Chain Manager", []string{"Logistics", "Procurement", "Inventory Management", "Supplier Relations", "Process Optimization", "Risk Management"}, 80, 150, 6},
			{"Project Manager", []string{"Planning", "Team Leadership", "Risk Management", "Stakeholder Management", "Budget Control", "Problem Solving"}, 75, 140, 8},
		},
	},
	{
		Field: "Education",
		Careers: []careerSeed{
			{"Secondary School Teacher", []string{"Subject Expertise", "Lesson Planning", "Classroom Management", "Assessment", "Communication", "Adaptability"}, 55, 95, 4},
			{"Special Education Teacher", []string{"Differentiated Instruction", "Behavior Management", "IEP Development", "Assessment", "Patience", "Communication"}, 60, 100, 8},
			{"University Professor", []string{"Research", "Academic Writing", "Teaching", "Subject Expertise", "Mentoring", "Grant Writing"}, 75, 180, 12},
			{"School Counselor", []string{"Counseling", "Student Assessment", "Career Guidance", "Crisis Intervention", "Communication", "Empathy"}, 60, 95, 8},
			{"Educational Administrator", []string{"Leadership", "Policy Implementation", "Budget Management", "Staff Development", "Strategic Planning", "Community Relations"}, 80, 150, 8},
			{"Instructional Designer", []string{"Curriculum Development", "E-Learning", "Educational Technology", "Assessment Design", "Project Management", "Communication"}, 65, 110, 10},
			{"Educational Technologist", []string{"EdTech Tools", "Training", "Digital Content Creation", "Problem Solving", "Technical Support", "Instructional Design"}, 60, 100, 15},
		},
	},
	{
		Field: "Legal",
		Careers: []careerSeed{
			{"Lawyer", []string{"Legal Research", "Case Analysis", "Negotiation", "Legal Writing", "Advocacy", "Client Management"}, 85, 200, 4},
			{"Paralegal", []string{"Legal Research", "Document Preparation", "Case Management", "Filing Procedures", "Organization", "Communication"}, 45, 85, 12},
			{"Legal Consultant", []string{"Legal Analysis", "Problem Solving", "Industry Knowledge", "Compliance", "Research", "Communication"}, 80, 150, 8},
			{"Compliance Officer", []string{"Regulatory Knowledge", "Risk Assessment", "Policy Development", "Auditing", "Reporting", "Communication"}, 70, 140, 8},
			{"Contract Manager", []string{"Contract Review", "Negotiation", "Risk Assessment", "Legal Knowledge", "Documentation", "Attention to Detail"}, 65, 130, 7},
		},
	},
	{
		Field: "Engineering",
		Careers: []careerSeed{
			{"Civil Engineer", []string{"Structural Analysis", "Design", "Project Management", "Technical Drawing", "Problem Solving", "Mathematics"}, 70, 130, 8},
			{"Mechanical Engineer", []string{"CAD", "Mechanical Design", "Thermal Analysis", "Problem Solving", "Project Management", "Technical Knowledge"}, 75, 135, 7},
			{"Electrical Engineer", []string{"Circuit Design", "Power Systems", "Electronics", "Problem Solving", "Technical Knowledge", "Project Management"}, 75, 140, 7},
			{"Aerospace Engineer", []string{"Aerodynamics", "Propulsion Systems", "Structural Analysis", "Systems Engineering", "Technical Knowledge", "Problem Solving"}, 85, 155, 8},
			{"Chemical Engineer", []string{"Process Design", "Thermodynamics", "Material Science", "Problem Solving", "Technical Knowledge", "Safety"}, 80, 145, 9},
			{"Biomedical Engineer", []string{"Medical Device Design", "Biomechanics", "Clinical Knowledge", "Problem Solving", "Technical Skills", "Research"}, 75, 140, 10},
			{"Environmental Engineer", []string{"Environmental Regulations", "Remediation", "Risk Assessment", "Technical Knowledge", "Problem Solving", "Project Management"}, 70, 130, 9},
		},
	},
	{
		Field: "Science & Research",
		Careers: []careerSeed{
			{"Research Scientist", []string{"Experimental Design", "Data Analysis", "Technical Writing", "Laboratory Techniques", "Critical Thinking", "Subject Expertise"}, 70, 150, 15},
			{"Data Analyst", []string{"Statistical Analysis", "Data Visualization", "Programming", "Problem Solving", "Critical Thinking", "Communication"}, 65, 120, 20},
			{"Biologist", []string{"Laboratory Techniques", "Research", "Data Analysis", "Technical Writing", "Critical Thinking", "Subject Expertise"}, 60, 130, 5},
			{"Chemist", []string{"Laboratory Techniques", "Chemical Analysis", "Research", "Documentation", "Problem Solving", "Technical Knowledge"}, 65, 130, 4},
			{"Physicist", []string{"Mathematical Modeling", "Experimental Design", "Data Analysis", "Programming", "Problem Solving", "Technical Knowledge"}, 75, 150, 7},
			{"Epidemiologist", []string{"Statistical Analysis", "Research Methods", "Data Collection", "Public Health Knowledge", "Critical Thinking", "Communication"}, 70, 135, 30},
		},
	},
	{
		Field: "Arts & Entertainment",
		Careers: []careerSeed{
			{"Animator", []string{"Animation Software", "Drawing", "Storytelling", "Character Development", "Attention to Detail", "Creativity"}, 55, 110, 16},
			{"Art Director", []string{"Visual Design", "Team Management", "Creative Direction", "Project Management", "Client Relations", "Problem Solving"}, 75, 140, 4},
			{"Video Editor", []string{"Editing Software", "Storytelling", "Visual Composition", "Audio Editing", "Attention to Detail", "Creativity"}, 50, 100, 22},
			{"Music Producer", []string{"Audio Engineering", "Music Theory", "DAW Software", "Arrangement", "Critical Listening", "Project Management"}, 45, 120, 8},
			{"Film Director", []string{"Visual Storytelling", "Leadership", "Script Analysis", "Communication", "Creative Vision", "Technical Knowledge"}, 60, 180, 12},
			{"Actor", []string{"Performance", "Character Development", "Script Analysis", "Emotional Expression", "Memorization", "Adaptability"}, 30, 200, 8},
		},
	},
	{
		Field: "Communication & Media",
		Careers: []careerSeed{
			{"Public Relations Specialist", []string{"Media Relations", "Writing", "Strategic Communication", "Crisis Management", "Social Media", "Relationship Building"}, 55, 110, 11},
			{"Technical Writer", []string{"Technical Knowledge", "Writing", "Information Architecture", "Research", "Attention to Detail", "Communication"}, 60, 115, 12},
			{"Journalist", []string{"Reporting", "Writing", "Research", "Interviewing", "Fact-Checking", "Time Management"}, 40, 95, -9},
			{"Content Creator", []string{"Writing", "SEO", "Social Media", "Multimedia Production", "Audience Analysis", "Creativity"}, 45, 100, 15},
			{"Communications Manager", []string{"Strategic Communication", "Writing", "PR", "Crisis Management", "Leadership", "Project Management"}, 70, 130, 8},
		},
	},
	{
		Field: "Construction & Architecture",
		Careers: []careerSeed{
			{"Architect", []string{"Architectural Design", "CAD", "Building Codes", "Project Management", "Client Relations", "Technical Drawing"}, 70, 150, 3},
			{"Construction Manager", []string{"Project Management", "Budgeting", "Scheduling", "Contract Management", "Technical Knowledge", "Leadership"}, 75, 145, 10},
			{"Interior Designer", []string{"Spatial Planning", "Material Selection", "CAD", "Client Relations", "Project Management", "Creativity"}, 55, 115, 5},
			{"Urban Planner", []string{"Land Use Planning", "Policy Analysis", "GIS", "Public Engagement", "Project Management", "Research"}, 65, 120, 7},
			{"Landscape Architect", []string{"Landscape Design", "CAD", "Plant Knowledge", "Project Management", "Environmental Analysis", "Technical Drawing"}, 60, 115, 6},
		},
	},
	{
		Field: "Hospitality & Tourism",
		Careers: []careerSeed{
			{"Hotel Manager", []string{"Customer Service", "Staff Management", "Budget Control", "Operations", "Problem Solving", "Communication"}, 55, 120, 18},
			{"Event Planner", []string{"Organization", "Vendor Management", "Budgeting", "Customer Service", "Negotiation", "Problem Solving"}, 45, 85, 18},
			{"Chef", []string{"Cooking Techniques", "Menu Development", "Food Safety", "Staff Management", "Creativity", "Time Management"}, 40, 95, 25},
			{"Tourism Director", []string{"Destination Marketing", "Industry Knowledge", "Strategic Planning", "Relationship Building", "Budget Management", "Communication"}, 65, 120, 18},
			{"Travel Consultant", []string{"Destination Knowledge", "Customer Service", "Booking Systems", "Sales", "Problem Solving", "Communication"}, 35, 70, -17},
		},
	},
	{
		Field: "Social Services",
		Careers: []careerSeed{
			{"Social Worker", []string{"Counseling", "Case Management", "Assessment", "Crisis Intervention", "Empathy", "Communication"}, 50, 85, 13},
			{"Mental Health Counselor", []string{"Counseling Techniques", "Assessment", "Treatment Planning", "Clinical Documentation", "Empathy", "Communication"}, 45, 90, 23},
			{"Community Outreach Coordinator", []string{"Program Development", "Community Engagement", "Networking", "Communication", "Event Planning", "Advocacy"}, 40, 75, 17},
			{"Rehabilitation Counselor", []string{"Counseling", "Assessment", "Treatment Planning", "Vocational Guidance", "Case Management", "Empathy"}, 45, 85, 11},
			{"Child Welfare Specialist", []string{"Case Management", "Assessment", "Crisis Intervention", "Documentation", "Communication", "Empathy"}, 45, 80, 12},
		},
	},
	{
		Field: "Environment & Sustainability",
		Careers: []careerSeed{
			{"Environmental Scientist", []string{"Environmental Sampling", "Data Analysis", "Report Writing", "Regulatory Knowledge", "Field Work", "Problem Solving"}, 65, 120, 8},
			{"Sustainability Consultant", []string{"Environmental Assessment", "Energy Analysis", "Sustainability Frameworks", "Communication", "Problem Solving", "Industry Knowledge"}, 70, 130, 14},
			{"Conservation Scientist", []string{"Field Research", "Data Analysis", "Environmental Management", "GIS", "Technical Writing", "Problem Solving"}, 60, 110, 5},
			{"Renewable Energy Engineer", []string{"Energy Systems", "Technical Design", "Project Management", "Problem Solving", "Regulatory Knowledge", "Technical Knowledge"}, 75, 140, 8},
			{"Environmental Policy Analyst", []string{"Policy Analysis", "Research", "Writing", "Environmental Science", "Data Analysis", "Communication"}, 65, 115, 7},
		},
	},
	{
		Field: "Transportation & Logistics",
		Careers: []careerSeed{
			{"Logistics Manager", []string{"Supply Chain Management", "Transportation Planning", "Inventory Management", "Negotiation", "Problem Solving", "Data Analysis"}, 65, 125, 30},
			{"Supply Chain Analyst", []string{"Data Analysis", "Process Improvement", "Inventory Management", "Forecasting", "Problem Solving", "Technical Systems"}, 60, 115, 7},
			{"Transportation Planner", []string{"Traffic Analysis", "Urban Planning", "GIS", "Policy Development", "Public Engagement", "Data Analysis"}, 65, 110, 11},
			{"Fleet Manager", []string{"Vehicle Maintenance", "Staff Management", "Route Planning", "Budget Management", "Regulatory Compliance", "Problem Solving"}, 55, 100, 6},
			{"Warehouse Manager", []string{"Inventory Management", "Staff Supervision", "Process Improvement", "Safety Compliance", "Problem Solving", "Technical Systems"}, 55, 95, 4},
		},
	},
	{
		Field: "Public Service & Government",
		Careers: []careerSeed{
			{"Urban Planner", []string{"Land Use Planning", "Policy Analysis", "GIS", "Public Engagement", "Project Management", "Research"}, 65, 120, 7},
			{"Policy Analyst", []string{"Research", "Policy Analysis", "Writing", "Data Analysis", "Critical Thinking", "Communication"}, 60, 115, 6},
			{"Public Administrator", []string{"Program Management", "Budget Administration", "Policy Implementation", "Staff Management", "Communication", "Problem Solving"}, 65, 130, 9},
			{"Emergency Management Director", []string{"Disaster Planning", "Crisis Response", "Coordination", "Communication", "Leadership", "Problem Solving"}, 70, 125, 6},
			{"Government Relations Specialist", []string{"Lobbying", "Policy Analysis", "Relationship Building", "Communication", "Strategic Planning", "Industry Knowledge"}, 70, 140, 8},
		},
	},
	{
		Field: "Manufacturing",
		Careers: []careerSeed{
			{"Manufacturing Engineer", []string{"Process Improvement", "CAD", "Technical Knowledge", "Problem Solving", "Quality Control", "Project Management"}, 70, 125, 10},
			{"Production Manager", []string{"Operations Management", "Staff Supervision", "Process Improvement", "Quality Control", "Budget Management", "Problem Solving"}, 70, 130, 5},
			{"Quality Control Manager", []string{"Quality Systems", "Inspection Techniques", "Regulatory Compliance", "Problem Solving", "Data Analysis", "Process Improvement"}, 65, 120, 4},
			{"Industrial Designer", []string{"Product Design", "CAD", "Material Knowledge", "Prototyping", "User Research", "Creativity"}, 60, 110, 6},
			{"Health and Safety Manager", []string{"Safety Regulations", "Risk Assessment", "Training", "Documentation", "Incident Investigation", "Communication"}, 65, 115, 8},
		},
	},
	{
		Field: "Agriculture & Food Production",
		Careers: []careerSeed{
			{"Agricultural Engineer", []string{"Equipment Design", "Land Use Planning", "Environmental Systems", "Technical Knowledge", "Problem Solving", "Project Management"}, 65, 115, 5},
			{"Food Scientist", []string{"Food Chemistry", "Product Development", "Quality Assurance", "Laboratory Techniques", "Research", "Technical Knowledge"}, 60, 110, 8},
			{"Farm Manager", []string{"Crop Management", "Equipment Operation", "Staff Supervision", "Business Management", "Problem Solving", "Technical Knowledge"}, 50, 95, 6},
			{"Agricultural Economist", []string{"Economic Analysis", "Market Research", "Data Analysis", "Policy Analysis", "Research", "Communication"}, 60, 115, 7},
			{"Food Production Manager", []string{"Production Planning", "Staff Management", "Quality Control", "Regulatory Compliance", "Process Improvement", "Problem Solving"}, 65, 120, 6},
		},
	},
}
