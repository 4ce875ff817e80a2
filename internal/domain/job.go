package domain

import "time"

// Remote mode / job type / level values mirror what the feed sends.
// These are open string sets: upstream providers send values outside the
// canonical lists and we pass them through rather than reject them.
const (
	RemoteOnSite = "on-site"
	RemoteHybrid = "hybrid"
	RemoteRemote = "remote"
)

type SalaryRange struct {
	Min      float64 `json:"min,omitempty"`
	Max      float64 `json:"max,omitempty"`
	Currency string  `json:"currency,omitempty"`
}

// Job is a posting from the external feed. Read-only from the client's
// point of view: the engine never mutates a Job's own fields.
type Job struct {
	ID               string      `json:"id"`
	Title            string      `json:"title"`
	Company          string      `json:"company"`
	Description      string      `json:"description,omitempty"`
	Location         string      `json:"location,omitempty"`
	Remote           string      `json:"remote,omitempty"`
	JobType          string      `json:"jobType,omitempty"`
	Level            string      `json:"level,omitempty"`
	SalaryRange      SalaryRange `json:"salaryRange,omitempty"`
	Tags             []string    `json:"tags,omitempty"`
	PostedDate       string      `json:"postedDate,omitempty"`
	ExternalURL      string      `json:"externalUrl,omitempty"`
	CompanyLogo      string      `json:"companyLogo,omitempty"`
	ApplicationCount int         `json:"applicationCount,omitempty"`
}

// SavedJob is a bookmarked feed posting plus the user's own notes.
type SavedJob struct {
	Job
	SavedAt time.Time `json:"savedAt"`
	Notes   string    `json:"notes"`
}

// JobFilters describes a feed query. Empty or absent fields impose no
// constraint on that dimension.
type JobFilters struct {
	Search    string   `json:"search,omitempty"`
	Location  string   `json:"location,omitempty"`
	Remote    []string `json:"remote,omitempty"`
	JobType   []string `json:"jobType,omitempty"`
	Level     []string `json:"level,omitempty"`
	SalaryMin float64  `json:"salaryMin,omitempty"`
	SalaryMax float64  `json:"salaryMax,omitempty"`
	Tags      []string `json:"tags,omitempty"`
}

func (f JobFilters) Empty() bool {
	return f.Search == "" && f.Location == "" &&
		len(f.Remote) == 0 && len(f.JobType) == 0 && len(f.Level) == 0 &&
		f.SalaryMin == 0 && f.SalaryMax == 0 && len(f.Tags) == 0
}
