package feed

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"hirepath-engine/internal/domain"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Fallbacks for fields Adzuna might not send.
const (
	fallbackTitle       = "Untitled job"
	fallbackCompany     = "Unknown company"
	fallbackLocation    = "Unknown location"
	fallbackDescription = "No description available."
)

type AdzunaConfig struct {
	BaseURL        string // defaults to the public API
	Country        string // two-letter country in the search path
	ResultsPerPage int
	Pages          int
	RatePerSec     float64
	RateBurst      int
}

// Credentials supplies app_id/app_key per request so keys rotated through
// the keychain take effect without a restart.
type Credentials func() (appID, appKey string, err error)

type Adzuna struct {
	cfg     AdzunaConfig
	creds   Credentials
	rc      *resty.Client
	limiter *rate.Limiter
}

func NewAdzuna(cfg AdzunaConfig, creds Credentials) *Adzuna {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.adzuna.com/v1/api"
	}
	if cfg.Country == "" {
		cfg.Country = "ca"
	}
	if cfg.ResultsPerPage <= 0 {
		cfg.ResultsPerPage = 20
	}
	if cfg.Pages <= 0 {
		cfg.Pages = 1
	}
	if cfg.RatePerSec <= 0 {
		cfg.RatePerSec = 1.0
	}
	if cfg.RateBurst <= 0 {
		cfg.RateBurst = 2
	}

	rc := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(20 * time.Second).
		SetHeader("User-Agent", "HirePath/1.0 (+local)")

	return &Adzuna{
		cfg:     cfg,
		creds:   creds,
		rc:      rc,
		limiter: rate.NewLimiter(rate.Limit(cfg.RatePerSec), cfg.RateBurst),
	}
}

func (a *Adzuna) Name() string { return "adzuna" }

type adzunaResponse struct {
	Results []adzunaResult `json:"results"`
}

type adzunaResult struct {
	ID      any    `json:"id"` // Adzuna sends numbers or strings depending on endpoint
	Title   string `json:"title"`
	Company struct {
		DisplayName string `json:"display_name"`
	} `json:"company"`
	Location struct {
		DisplayName string `json:"display_name"`
	} `json:"location"`
	Description  string   `json:"description"`
	RedirectURL  string   `json:"redirect_url"`
	Created      string   `json:"created"`
	SalaryMin    float64  `json:"salary_min"`
	SalaryMax    float64  `json:"salary_max"`
	ContractType string   `json:"contract_type"`
	ContractTime string   `json:"contract_time"`
	Tags         []string `json:"tags"`
}

// Search issues one GET per page, fanned out with errgroup and throttled by
// the shared limiter. The remaining filter dimensions are applied by the
// Client on top of the response.
func (a *Adzuna) Search(ctx context.Context, filters domain.JobFilters) ([]domain.Job, error) {
	appID, appKey, err := a.creds()
	if err != nil {
		return nil, fmt.Errorf("adzuna credentials: %w", err)
	}

	what := filters.Search
	if what == "" {
		what = "software engineer"
	}
	where := filters.Location

	pages := make([][]domain.Job, a.cfg.Pages)
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for page := 1; page <= a.cfg.Pages; page++ {
		g.Go(func() error {
			if err := a.limiter.Wait(gctx); err != nil {
				return err
			}
			jobs, err := a.fetchPage(gctx, appID, appKey, what, where, page)
			if err != nil {
				return err
			}
			mu.Lock()
			pages[page-1] = jobs
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []domain.Job
	for _, p := range pages {
		out = append(out, p...)
	}
	return out, nil
}

func (a *Adzuna) fetchPage(ctx context.Context, appID, appKey, what, where string, page int) ([]domain.Job, error) {
	var body adzunaResponse
	resp, err := a.rc.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"app_id":           appID,
			"app_key":          appKey,
			"results_per_page": fmt.Sprint(a.cfg.ResultsPerPage),
			"what":             what,
			"where":            where,
		}).
		SetResult(&body).
		Get(fmt.Sprintf("/jobs/%s/search/%d", a.cfg.Country, page))
	if err != nil {
		return nil, fmt.Errorf("adzuna get page %d: %w", page, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("adzuna page %d status %d", page, resp.StatusCode())
	}

	jobs := make([]domain.Job, 0, len(body.Results))
	for _, item := range body.Results {
		jobs = append(jobs, mapResult(item))
	}
	return jobs, nil
}

func mapResult(item adzunaResult) domain.Job {
	j := domain.Job{
		ID:          idString(item.ID),
		Title:       orDefault(item.Title, fallbackTitle),
		Company:     orDefault(item.Company.DisplayName, fallbackCompany),
		Location:    orDefault(item.Location.DisplayName, fallbackLocation),
		Description: orDefault(flattenHTML(item.Description), fallbackDescription),
		ExternalURL: item.RedirectURL,
		PostedDate:  item.Created,
		JobType:     item.ContractType,
		Tags:        item.Tags,
		SalaryRange: domain.SalaryRange{Min: item.SalaryMin, Max: item.SalaryMax},
	}
	if item.ContractTime == "part_time" {
		j.JobType = "part-time"
	}
	return j
}

// idString flattens the id field, which Adzuna sends as either a JSON
// number or a string. Numbers decode as float64 and must not come out in
// scientific notation.
func idString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprint(x)
	}
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

// flattenHTML turns the feed's HTML-laced descriptions into plain text.
// On parse failure the raw string is kept; a messy description beats none.
func flattenHTML(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	return collapseSpaces(doc.Text())
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
