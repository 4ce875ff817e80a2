package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		Port    int    `yaml:"port" json:"port"`
		DataDir string `yaml:"data_dir" json:"data_dir"`
		Store   string `yaml:"store" json:"store"` // sqlite | file
	} `yaml:"app" json:"app"`

	Feed struct {
		Provider       string  `yaml:"provider" json:"provider"` // adzuna | fixture
		Country        string  `yaml:"country" json:"country"`
		ResultsPerPage int     `yaml:"results_per_page" json:"results_per_page"`
		Pages          int     `yaml:"pages" json:"pages"`
		RatePerSec     float64 `yaml:"rate_per_sec" json:"rate_per_sec"`
		RateBurst      int     `yaml:"rate_burst" json:"rate_burst"`
	} `yaml:"feed" json:"feed"`

	Tailor struct {
		APIBase     string  `yaml:"api_base" json:"api_base"`
		Model       string  `yaml:"model" json:"model"`
		Temperature float64 `yaml:"temperature" json:"temperature"`
		MaxTokens   int     `yaml:"max_tokens" json:"max_tokens"`
		TopP        float64 `yaml:"top_p" json:"top_p"`
	} `yaml:"tailor" json:"tailor"`

	MailScan MailScanConfig `yaml:"mailscan" json:"mailscan"`
}

type MailScanConfig struct {
	Enabled         bool     `yaml:"enabled" json:"enabled"`
	IMAPHost        string   `yaml:"imap_host" json:"imap_host"`
	IMAPPort        int      `yaml:"imap_port" json:"imap_port"`
	Username        string   `yaml:"username" json:"username"`
	Mailbox         string   `yaml:"mailbox" json:"mailbox"`
	IntervalSeconds int      `yaml:"interval_seconds" json:"interval_seconds"`
	MaxMessages     int      `yaml:"max_messages" json:"max_messages"`
	SubjectAny      []string `yaml:"subject_any" json:"subject_any"`
}

// envOverrides are the knobs worth flipping without editing the config file
// (dev shells, the desktop wrapper passing its own data dir).
type envOverrides struct {
	Port     int    `envconfig:"PORT"`
	DataDir  string `envconfig:"DATA_DIR"`
	Store    string `envconfig:"STORE"`
	Provider string `envconfig:"FEED_PROVIDER"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return applyEnv(cfg)
}

func applyEnv(cfg Config) (Config, error) {
	var env envOverrides
	if err := envconfig.Process("hirepath", &env); err != nil {
		return cfg, err
	}
	if env.Port != 0 {
		cfg.App.Port = env.Port
	}
	if env.DataDir != "" {
		cfg.App.DataDir = env.DataDir
	}
	if env.Store != "" {
		cfg.App.Store = env.Store
	}
	if env.Provider != "" {
		cfg.Feed.Provider = env.Provider
	}
	return cfg, nil
}
