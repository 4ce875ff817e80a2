package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"hirepath-engine/internal/domain"
	"hirepath-engine/internal/feed"
	"hirepath-engine/internal/savedjobs"
)

type JobsHandler struct {
	Feed  *feed.Client
	Saved *savedjobs.Repo
}

type jobView struct {
	domain.Job
	Saved bool `json:"saved"`
}

// List fetches the feed narrowed by query params and annotates each posting
// with whether it is already bookmarked.
func (h JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	filters, err := parseJobFilters(r)
	if err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_filter", err.Error())
		return
	}

	jobs, err := h.Feed.Fetch(r.Context(), filters)
	if err != nil {
		WriteError(w, r, http.StatusBadGateway, "feed_error", err.Error())
		return
	}

	out := make([]jobView, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, jobView{Job: j, Saved: h.Saved.Saved(j.ID)})
	}
	WriteJSON(w, http.StatusOK, out)
}

func parseJobFilters(r *http.Request) (domain.JobFilters, error) {
	q := r.URL.Query()
	f := domain.JobFilters{
		Search:   strings.TrimSpace(q.Get("search")),
		Location: strings.TrimSpace(q.Get("location")),
		Remote:   splitList(q.Get("remote")),
		JobType:  splitList(q.Get("job_type")),
		Level:    splitList(q.Get("level")),
		Tags:     splitList(q.Get("tags")),
	}

	var err error
	if f.SalaryMin, err = parseFloat(q.Get("salary_min")); err != nil {
		return f, err
	}
	if f.SalaryMax, err = parseFloat(q.Get("salary_max")); err != nil {
		return f, err
	}
	return f, nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseFloat(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}
