package classifier

import (
	"context"
	"strings"

	"tm-intent-classifier/internal/classify"
	"tm-intent-classifier/internal/topics"
)

// Mock confidence is a deliberately coarse fixed constant, not a computed
// score: the keyword rule either hits or it doesn't.
const (
	MockMatchConfidence   = 0.6
	MockNoMatchConfidence = 0.05
)

// nonTMPatterns short-circuit queries that are clearly IT/helpdesk topics
// before keyword matching, to avoid false positives like "reset my password
// for the performance form".
var nonTMPatterns = []string{
	"password",
	"laptop",
	"computer",
	"printer",
	"wifi",
	"weather",
	"email setup",
	"vpn",
	"software install",
}

// topicKeywords maps each topic to its mock keyword set, ordered so more
// specific topics are checked first.
var topicKeywords = []struct {
	topic    string
	keywords []string
}{
	{"employee_onboarding", []string{
		"onboarding", "new hire", "new employee", "orientation", "first day", "preboarding",
	}},
	{"succession_planning", []string{
		"succession", "career path", "talent pool", "successor", "next in line",
		"leadership pipeline", "high potential",
	}},
	{"time_attendance", []string{
		"time off", "leave request", "vacation", "attendance", "absence", "pto",
		"sick leave", "timesheet",
	}},
	{"performance_management", []string{
		"performance", "review", "goal", "feedback", "appraisal", "evaluation",
	}},
	{"learning_development", []string{
		"training", "course", "learn", "certification", "skill development", "curriculum",
	}},
	{"recruitment", []string{
		"job posting", "job opening", "candidate", "interview", "recruiting",
		"requisition", "applicant",
	}},
	{"compensation_benefits", []string{
		"salary", "bonus", "pay", "compensation", "benefit", "merit increase",
	}},
	{"employee_central", []string{
		"employee data", "org chart", "profile", "organization", "personal information",
		"reporting structure",
	}},
}

// MockClassifier is the deterministic keyword fallback. It never fails and
// always returns the same result for the same query.
type MockClassifier struct{}

// NewMock creates the keyword mock classifier.
func NewMock() *MockClassifier {
	return &MockClassifier{}
}

func (c *MockClassifier) Name() string {
	return "mock"
}

func (c *MockClassifier) Classify(ctx context.Context, query string) (classify.Result, error) {
	q := strings.ToLower(query)

	for _, pattern := range nonTMPatterns {
		if strings.Contains(q, pattern) {
			return notTalentManagement(), nil
		}
	}

	for _, entry := range topicKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(q, kw) {
				return classify.Result{
					IsTalentManagement: true,
					Confidence:         MockMatchConfidence,
					Topic:              entry.topic,
				}, nil
			}
		}
	}

	return notTalentManagement(), nil
}

func notTalentManagement() classify.Result {
	return classify.Result{
		IsTalentManagement: false,
		Confidence:         MockNoMatchConfidence,
		Topic:              topics.TopicNone,
	}
}
