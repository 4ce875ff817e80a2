package feed

import (
	"strings"

	"hirepath-engine/internal/domain"
)

// Matches reports whether a job satisfies every set filter dimension.
// All predicates AND together; unset dimensions impose no constraint.
func Matches(j domain.Job, f domain.JobFilters) bool {
	if f.Search != "" && !containsFold(j.Title, f.Search) &&
		!containsFold(j.Company, f.Search) && !containsFold(j.Description, f.Search) {
		return false
	}
	if f.Location != "" && !containsFold(j.Location, f.Location) {
		return false
	}
	if !memberFold(j.Remote, f.Remote) {
		return false
	}
	if !memberFold(j.JobType, f.JobType) {
		return false
	}
	if !memberFold(j.Level, f.Level) {
		return false
	}
	if f.SalaryMin > 0 && j.SalaryRange.Max > 0 && j.SalaryRange.Max < f.SalaryMin {
		return false
	}
	if f.SalaryMax > 0 && j.SalaryRange.Min > 0 && j.SalaryRange.Min > f.SalaryMax {
		return false
	}
	for _, want := range f.Tags {
		if !tagged(j.Tags, want) {
			return false
		}
	}
	return true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// memberFold is the multi-select facet predicate: an empty set means no
// constraint, otherwise the value must be one of the selected options.
func memberFold(value string, set []string) bool {
	if len(set) == 0 {
		return true
	}
	for _, s := range set {
		if strings.EqualFold(value, s) {
			return true
		}
	}
	return false
}

func tagged(tags []string, want string) bool {
	for _, t := range tags {
		if strings.EqualFold(t, want) {
			return true
		}
	}
	return false
}
