package board

import "hirepath-engine/internal/domain"

// Stats are the headline numbers above the board.
type Stats struct {
	Total      int                   `json:"total"`
	ByStatus   map[domain.Status]int `json:"byStatus"`
	Active     int                   `json:"active"`     // applied + interview
	Interviews int                   `json:"interviews"` // interview + offer
	Offers     int                   `json:"offers"`
	// ResponseRate is interviews+offers over everything actually applied to.
	ResponseRate float64 `json:"responseRate"`
}

func ComputeStats(list []domain.Application) Stats {
	st := Stats{ByStatus: make(map[domain.Status]int, len(domain.Statuses))}
	for _, s := range domain.Statuses {
		st.ByStatus[s] = 0
	}

	for _, app := range list {
		s := app.Status
		if !s.Valid() {
			s = domain.StatusSaved
		}
		st.Total++
		st.ByStatus[s]++
	}

	st.Active = st.ByStatus[domain.StatusApplied] + st.ByStatus[domain.StatusInterview]
	st.Interviews = st.ByStatus[domain.StatusInterview] + st.ByStatus[domain.StatusOffer]
	st.Offers = st.ByStatus[domain.StatusOffer]

	applied := st.Total - st.ByStatus[domain.StatusSaved]
	if applied > 0 {
		st.ResponseRate = float64(st.Interviews) / float64(applied)
	}
	return st
}
