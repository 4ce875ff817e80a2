package config

import (
	"fmt"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate returns a normalized copy plus everything wrong or
// suspicious about it, structured so the UI can render the list.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	out.App.Store = strings.ToLower(strings.TrimSpace(out.App.Store))
	if out.App.Store == "" {
		out.App.Store = "sqlite"
	}
	out.Feed.Provider = strings.ToLower(strings.TrimSpace(out.Feed.Provider))
	if out.Feed.Provider == "" {
		out.Feed.Provider = "fixture"
	}
	out.Feed.Country = strings.ToLower(strings.TrimSpace(out.Feed.Country))
	out.MailScan.SubjectAny = trimList(out.MailScan.SubjectAny)

	if out.App.Port <= 0 || out.App.Port > 65535 {
		res.addErr("app.port must be 1..65535")
	}
	if out.App.Store != "sqlite" && out.App.Store != "file" {
		res.addErr("app.store must be sqlite or file")
	}

	switch out.Feed.Provider {
	case "adzuna", "fixture":
	default:
		res.addErr("feed.provider must be adzuna or fixture")
	}
	if out.Feed.Provider == "adzuna" && out.Feed.Country == "" {
		res.addErr("feed.country is required when feed.provider=adzuna")
	}
	if out.Feed.ResultsPerPage <= 0 {
		res.addErr("feed.results_per_page must be > 0")
	} else if out.Feed.ResultsPerPage > 50 {
		res.addWarn("feed.results_per_page is high (%d); the feed API may cap it.", out.Feed.ResultsPerPage)
	}
	if out.Feed.Pages <= 0 {
		out.Feed.Pages = 1
	}
	if out.Feed.RatePerSec <= 0 {
		out.Feed.RatePerSec = 1.0
	}
	if out.Feed.RateBurst <= 0 {
		out.Feed.RateBurst = 2
	}

	if strings.TrimSpace(out.Tailor.APIBase) == "" {
		res.addErr("tailor.api_base is required")
	}
	if strings.TrimSpace(out.Tailor.Model) == "" {
		res.addErr("tailor.model is required")
	}
	if out.Tailor.Temperature < 0 || out.Tailor.Temperature > 2 {
		res.addErr("tailor.temperature must be 0..2")
	}
	if out.Tailor.MaxTokens <= 0 {
		res.addErr("tailor.max_tokens must be > 0")
	}
	if out.Tailor.TopP <= 0 || out.Tailor.TopP > 1 {
		res.addErr("tailor.top_p must be in (0, 1]")
	}

	if out.MailScan.Enabled {
		if strings.TrimSpace(out.MailScan.IMAPHost) == "" {
			res.addErr("mailscan.imap_host is required when mailscan.enabled=true")
		}
		if out.MailScan.IMAPPort == 0 {
			res.addErr("mailscan.imap_port is required when mailscan.enabled=true")
		}
		if strings.TrimSpace(out.MailScan.Username) == "" {
			res.addErr("mailscan.username is required when mailscan.enabled=true")
		}
		if strings.TrimSpace(out.MailScan.Mailbox) == "" {
			res.addErr("mailscan.mailbox is required when mailscan.enabled=true")
		}
		if out.MailScan.IntervalSeconds <= 0 {
			res.addErr("mailscan.interval_seconds must be > 0")
		} else if out.MailScan.IntervalSeconds < 60 {
			res.addWarn("mailscan.interval_seconds is very low (%d) and may hit IMAP rate limits.", out.MailScan.IntervalSeconds)
		}
		if out.MailScan.MaxMessages <= 0 {
			out.MailScan.MaxMessages = 50
		}
	}

	return out, res
}

func trimList(xs []string) []string {
	seen := map[string]bool{}
	var ys []string
	for _, x := range xs {
		x = strings.TrimSpace(x)
		if x == "" {
			continue
		}
		key := strings.ToLower(x)
		if seen[key] {
			continue
		}
		seen[key] = true
		ys = append(ys, x)
	}
	return ys
}
