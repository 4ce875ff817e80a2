package apps

import (
	"time"

	"hirepath-engine/internal/domain"
)

// seedApplications gives a first-run user a populated board to explore.
func seedApplications() []domain.Application {
	ts := func(s string) time.Time {
		t, _ := time.Parse(time.RFC3339, s)
		return t
	}

	return []domain.Application{
		{
			ID:           "1",
			Company:      "TechCorp Inc",
			Position:     "Senior Frontend Developer",
			Location:     "San Francisco, CA (Remote)",
			Salary:       "$150,000 - $180,000",
			Status:       domain.StatusInterview,
			DateApplied:  "2026-01-10",
			FollowUpDate: "2026-01-20",
			JobURL:       "https://example.com/job1",
			Notes:        "Great company culture, interviewed with the engineering team lead.",
			Communications: []domain.Communication{
				{ID: "c1", Date: "2026-01-12", Type: domain.CommEmail, Content: "Received confirmation of application"},
				{ID: "c2", Date: "2026-01-15", Type: domain.CommCall, Content: "Phone screen with HR - went well!"},
			},
			ResumeVersion: "Frontend focused version",
			CreatedAt:     ts("2026-01-10T10:00:00Z"),
			UpdatedAt:     ts("2026-01-15T14:30:00Z"),
		},
		{
			ID:             "2",
			Company:        "StartupXYZ",
			Position:       "Full Stack Engineer",
			Location:       "New York, NY",
			Salary:         "$130,000 - $160,000",
			Status:         domain.StatusApplied,
			DateApplied:    "2026-01-14",
			FollowUpDate:   "2026-01-21",
			JobURL:         "https://example.com/job2",
			Notes:          "Interesting product, early stage startup with good funding.",
			Communications: []domain.Communication{},
			CreatedAt:      ts("2026-01-14T09:00:00Z"),
			UpdatedAt:      ts("2026-01-14T09:00:00Z"),
		},
		{
			ID:          "3",
			Company:     "BigTech Global",
			Position:    "Software Engineer III",
			Location:    "Seattle, WA",
			Salary:      "$175,000 - $220,000",
			Status:      domain.StatusOffer,
			DateApplied: "2026-01-05",
			Notes:       "Received offer! Need to respond by end of week.",
			Communications: []domain.Communication{
				{ID: "c3", Date: "2026-01-08", Type: domain.CommMeeting, Content: "Technical interview - 4 rounds"},
				{ID: "c4", Date: "2026-01-12", Type: domain.CommEmail, Content: "Received offer letter!"},
			},
			ResumeVersion: "General tech version",
			CreatedAt:     ts("2026-01-05T11:00:00Z"),
			UpdatedAt:     ts("2026-01-12T16:00:00Z"),
		},
		{
			ID:          "4",
			Company:     "FinanceApp Co",
			Position:    "React Developer",
			Location:    "Chicago, IL (Hybrid)",
			Status:      domain.StatusRejected,
			DateApplied: "2026-01-03",
			Notes:       "Position was filled internally.",
			Communications: []domain.Communication{
				{ID: "c5", Date: "2026-01-10", Type: domain.CommEmail, Content: "Received rejection email"},
			},
			CreatedAt: ts("2026-01-03T08:00:00Z"),
			UpdatedAt: ts("2026-01-10T12:00:00Z"),
		},
		{
			ID:             "5",
			Company:        "CloudServices Inc",
			Position:       "Frontend Architect",
			Location:       "Austin, TX (Remote)",
			Salary:         "$180,000 - $200,000",
			Status:         domain.StatusSaved,
			DateApplied:    "",
			Notes:          "Great opportunity, need to tailor resume before applying.",
			Communications: []domain.Communication{},
			CreatedAt:      ts("2026-01-16T10:00:00Z"),
			UpdatedAt:      ts("2026-01-16T10:00:00Z"),
		},
	}
}
