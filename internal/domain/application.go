package domain

import "time"

type Status string

const (
	StatusSaved     Status = "saved"
	StatusApplied   Status = "applied"
	StatusInterview Status = "interview"
	StatusOffer     Status = "offer"
	StatusRejected  Status = "rejected"
)

// Statuses is the fixed board column order.
var Statuses = []Status{StatusSaved, StatusApplied, StatusInterview, StatusOffer, StatusRejected}

func (s Status) Valid() bool {
	switch s {
	case StatusSaved, StatusApplied, StatusInterview, StatusOffer, StatusRejected:
		return true
	}
	return false
}

type CommType string

const (
	CommEmail   CommType = "email"
	CommCall    CommType = "call"
	CommMeeting CommType = "meeting"
	CommNote    CommType = "note"
)

func (t CommType) Valid() bool {
	switch t {
	case CommEmail, CommCall, CommMeeting, CommNote:
		return true
	}
	return false
}

// Communication is one logged interaction tied to an application.
// It has no lifecycle of its own; it lives and dies with its parent.
type Communication struct {
	ID      string   `json:"id"`
	Date    string   `json:"date"`
	Type    CommType `json:"type"`
	Content string   `json:"content"`
}

// Application tracks one job pursuit through the status pipeline.
// DateApplied and FollowUpDate are yyyy-mm-dd strings; empty means unset
// (an application can be saved before it is ever submitted).
type Application struct {
	ID             string          `json:"id"`
	Company        string          `json:"company"`
	Position       string          `json:"position"`
	Location       string          `json:"location,omitempty"`
	Salary         string          `json:"salary,omitempty"`
	Status         Status          `json:"status"`
	DateApplied    string          `json:"dateApplied"`
	FollowUpDate   string          `json:"followUpDate,omitempty"`
	JobURL         string          `json:"jobUrl,omitempty"`
	Notes          string          `json:"notes"`
	Communications []Communication `json:"communications"`
	ResumeVersion  string          `json:"resumeVersion,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// MasterResume is the user's canonical resume text, singleton per user.
type MasterResume struct {
	Content     string    `json:"content"`
	LastUpdated time.Time `json:"lastUpdated"`
}
