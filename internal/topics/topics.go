// Package topics defines the eight Talent Management topics this service
// classifies queries into, together with their SAP Help Portal links.
// The table is built once at startup and is read-only afterwards, so it is
// safe for unbounded concurrent lookups.
package topics

// TopicNone is the sentinel id for queries unrelated to Talent Management.
const TopicNone = "none"

// Link points to a help resource for a topic.
type Link struct {
	Title       string
	URL         string
	Description string
}

// Topic is a registry record: a machine-readable id, a display name,
// example keywords used in the classification prompt, and ordered help links.
type Topic struct {
	ID          string
	DisplayName string
	Keywords    []string
	Links       []Link
}

// all lists the topics in their canonical order.
var all = []Topic{
	{
		ID:          "performance_management",
		DisplayName: "Performance Management",
		Keywords: []string{
			"performance review", "goals", "feedback", "appraisal", "evaluation",
			"kpi", "objectives", "rating", "performance form", "continuous feedback",
		},
		Links: []Link{
			{
				Title:       "Performance & Goals Administration",
				URL:         "https://help.sap.com/docs/SAP_SUCCESSFACTORS_PERFORMANCE_GOALS",
				Description: "Complete guide to Performance Management in SuccessFactors",
			},
			{
				Title:       "Setting Up Goal Plans",
				URL:         "https://help.sap.com/docs/SAP_SUCCESSFACTORS_PERFORMANCE_GOALS/f79bd61a0c9c42f5b7ee88e3ad0c8424/a2b83ea8f3a04b8a93a8e61ce8c7eb79.html",
				Description: "Configure and manage goal plans for employees",
			},
		},
	},
	{
		ID:          "learning_development",
		DisplayName: "Learning & Development",
		Keywords: []string{
			"training", "courses", "certifications", "learning path", "e-learning",
			"skills", "competencies", "development plan", "curriculum", "assignment",
		},
		Links: []Link{
			{
				Title:       "SAP SuccessFactors Learning",
				URL:         "https://help.sap.com/docs/SAP_SUCCESSFACTORS_LEARNING",
				Description: "Learning Management System documentation",
			},
			{
				Title:       "Creating Learning Assignments",
				URL:         "https://help.sap.com/docs/SAP_SUCCESSFACTORS_LEARNING/c9152dd2b3844a0990fe1e90c7604c59/5e7c89d6e2e04c0e9eb2c5d6c8c8c8c8.html",
				Description: "Assign training and courses to employees",
			},
		},
	},
	{
		ID:          "recruitment",
		DisplayName: "Recruitment",
		Keywords: []string{
			"job posting", "candidates", "interviews", "hiring", "requisition",
			"applicant", "offer", "recruiting", "talent acquisition", "job board",
		},
		Links: []Link{
			{
				Title:       "SAP SuccessFactors Recruiting",
				URL:         "https://help.sap.com/docs/SAP_SUCCESSFACTORS_RECRUITING",
				Description: "End-to-end recruitment process documentation",
			},
			{
				Title:       "Managing Job Requisitions",
				URL:         "https://help.sap.com/docs/SAP_SUCCESSFACTORS_RECRUITING/3b8a434f15264979a35d1bbdb8c9aa68/4d8c8c8c8c8c8c8c8c8c8c8c8c8c8c8c.html",
				Description: "Create and manage job requisitions",
			},
		},
	},
	{
		ID:          "compensation_benefits",
		DisplayName: "Compensation & Benefits",
		Keywords: []string{
			"salary", "bonus", "benefits", "pay", "compensation planning",
			"merit increase", "stock", "equity", "rewards", "variable pay",
		},
		Links: []Link{
			{
				Title:       "SAP SuccessFactors Compensation",
				URL:         "https://help.sap.com/docs/SAP_SUCCESSFACTORS_COMPENSATION",
				Description: "Compensation planning and management",
			},
			{
				Title:       "Benefits Administration",
				URL:         "https://help.sap.com/docs/SAP_SUCCESSFACTORS_EMPLOYEE_CENTRAL/e44bea3a214c4b9abe5e07a1a5bfe2ea/1a3c8c8c8c8c8c8c8c8c8c8c8c8c8c8c.html",
				Description: "Manage employee benefits enrollment",
			},
		},
	},
	{
		ID:          "succession_planning",
		DisplayName: "Succession Planning",
		Keywords: []string{
			"career path", "talent pool", "successors", "succession", "high potential",
			"leadership pipeline", "talent review", "9-box", "calibration", "readiness",
		},
		Links: []Link{
			{
				Title:       "SAP SuccessFactors Succession & Development",
				URL:         "https://help.sap.com/docs/SAP_SUCCESSFACTORS_SUCCESSION",
				Description: "Succession planning and talent pipeline management",
			},
			{
				Title:       "Creating Succession Plans",
				URL:         "https://help.sap.com/docs/SAP_SUCCESSFACTORS_SUCCESSION/9d7f8d4e2a1e4b4d9f3e2c1a0b8c7d6e/2b4c8c8c8c8c8c8c8c8c8c8c8c8c8c8c.html",
				Description: "Build and manage succession plans for key positions",
			},
		},
	},
	{
		ID:          "employee_onboarding",
		DisplayName: "Employee Onboarding",
		Keywords: []string{
			"new hire", "onboarding checklist", "orientation", "first day", "preboarding",
			"offboarding", "new employee", "welcome", "equipment request", "onboarding tasks",
		},
		Links: []Link{
			{
				Title:       "SAP SuccessFactors Onboarding",
				URL:         "https://help.sap.com/docs/SAP_SUCCESSFACTORS_ONBOARDING",
				Description: "New hire onboarding process documentation",
			},
			{
				Title:       "Onboarding Checklist Configuration",
				URL:         "https://help.sap.com/docs/SAP_SUCCESSFACTORS_ONBOARDING/4538d1a1c9c54c4b9c9c9c9c9c9c9c9c/3c5c8c8c8c8c8c8c8c8c8c8c8c8c8c8c.html",
				Description: "Set up and customize onboarding checklists",
			},
		},
	},
	{
		ID:          "time_attendance",
		DisplayName: "Time & Attendance",
		Keywords: []string{
			"time off", "leave request", "attendance", "vacation", "sick leave",
			"timesheet", "absence", "pto", "work schedule", "clock in",
		},
		Links: []Link{
			{
				Title:       "SAP SuccessFactors Time Tracking",
				URL:         "https://help.sap.com/docs/SAP_SUCCESSFACTORS_TIME_TRACKING",
				Description: "Time and attendance management",
			},
			{
				Title:       "Time Off Configuration",
				URL:         "https://help.sap.com/docs/SAP_SUCCESSFACTORS_EMPLOYEE_CENTRAL/5e44bea3a214c4b9abe5e07a1a5bfe2ea/4d6c8c8c8c8c8c8c8c8c8c8c8c8c8c8c.html",
				Description: "Configure time off types and accrual rules",
			},
		},
	},
	{
		ID:          "employee_central",
		DisplayName: "Employee Central",
		Keywords: []string{
			"employee data", "org chart", "profile", "personal information", "organization",
			"position", "job information", "employment history", "manager", "reporting structure",
		},
		Links: []Link{
			{
				Title:       "SAP SuccessFactors Employee Central",
				URL:         "https://help.sap.com/docs/SAP_SUCCESSFACTORS_EMPLOYEE_CENTRAL",
				Description: "Core HR and employee data management",
			},
			{
				Title:       "Managing Employee Records",
				URL:         "https://help.sap.com/docs/SAP_SUCCESSFACTORS_EMPLOYEE_CENTRAL/e44bea3a214c4b9abe5e07a1a5bfe2ea/5e7c8c8c8c8c8c8c8c8c8c8c8c8c8c8c.html",
				Description: "Create and maintain employee records",
			},
		},
	},
}
