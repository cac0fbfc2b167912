package config

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is prepended to every variable name, e.g. FFSTATS_DATA_DIR.
const EnvPrefix = "FFSTATS"

// Config holds the settings for one scrape run.
type Config struct {
	BaseURL       string        `envconfig:"BASE_URL" default:"https://www.footballdb.com/fantasy-football/index.html"`
	Positions     string        `envconfig:"POSITIONS" default:"QB,RB,WR,TE"`
	Rules         string        `envconfig:"RULES" default:"2"`
	UserAgent     string        `envconfig:"USER_AGENT" default:"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"`
	Timeout       time.Duration `envconfig:"TIMEOUT" default:"30s"`
	DataDir       string        `envconfig:"DATA_DIR" default:"data"`
	FirstWeek     int           `envconfig:"FIRST_WEEK" default:"1"`
	LastWeek      int           `envconfig:"LAST_WEEK" default:"16"`
	HeaderRow     int           `envconfig:"HEADER_ROW" default:"1"`
	PointsColumn  string        `envconfig:"POINTS_COLUMN" default:"Pts*"`
	PointsDivisor float64       `envconfig:"POINTS_DIVISOR" default:"100"`
	LogLevel      string        `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, errors.Wrap(err, "loading config from env")
	}
	return &cfg, nil
}

// Validate checks the values that the scraper cannot recover from.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return errors.New("base URL is required")
	}
	if c.Rules != "1" && c.Rules != "2" {
		return errors.Newf("invalid rules %q (must be 1 for standard or 2 for PPR)", c.Rules)
	}
	if c.FirstWeek < 1 || c.LastWeek < c.FirstWeek {
		return errors.Newf("invalid week range %d-%d", c.FirstWeek, c.LastWeek)
	}
	if c.HeaderRow < 0 {
		return errors.Newf("invalid header row %d", c.HeaderRow)
	}
	if c.PointsDivisor == 0 {
		return errors.New("points divisor must be non-zero")
	}
	if c.DataDir == "" {
		return errors.New("data directory is required")
	}
	return nil
}

// Weeks returns every week from FirstWeek to LastWeek inclusive.
func (c *Config) Weeks() []int {
	if c.LastWeek < c.FirstWeek {
		return nil
	}
	weeks := make([]int, 0, c.LastWeek-c.FirstWeek+1)
	for w := c.FirstWeek; w <= c.LastWeek; w++ {
		weeks = append(weeks, w)
	}
	return weeks
}
