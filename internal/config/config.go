// Package config loads run settings from a YAML file and the environment.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"ecommerce-analytics/internal/gateway"
	"ecommerce-analytics/internal/kpi"
)

const dateLayout = "2006-01-02"

// Environment variables that override the file.
const (
	EnvOutputDir = "ANALYTICS_OUTPUT_DIR"
	EnvDB        = "ANALYTICS_DB"
	EnvSourceDSN = "ANALYTICS_SOURCE_DSN"
)

// Config holds every setting a run needs. Command-line flags override it.
type Config struct {
	Input  InputConfig  `yaml:"input"`
	RFM    RFMConfig    `yaml:"rfm"`
	ETL    ETLConfig    `yaml:"etl"`
	Output OutputConfig `yaml:"output"`
	KPI    KPIConfig    `yaml:"kpi"`
}

type InputConfig struct {
	Path      string          `yaml:"path"`
	SourceDSN string          `yaml:"source_dsn"`
	Query     string          `yaml:"query"`
	Timeout   time.Duration   `yaml:"timeout"`
	Columns   gateway.Columns `yaml:"columns"`
}

type RFMConfig struct {
	// ReferenceDate is YYYY-MM-DD; empty means the latest transaction.
	ReferenceDate string `yaml:"reference_date"`
	RankTies      bool   `yaml:"rank_ties"`
}

// ETLConfig is the optional analysis window, both bounds YYYY-MM-DD.
type ETLConfig struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

type OutputConfig struct {
	Dir string `yaml:"dir"`
	DB  string `yaml:"db"`
}

type KPIConfig struct {
	TopN   int    `yaml:"top_n"`
	Period string `yaml:"period"`
}

// Default returns the settings used when no file is given.
func Default() *Config {
	return &Config{
		Input: InputConfig{
			Query:   gateway.DefaultQuery,
			Timeout: 30 * time.Second,
		},
		RFM:    RFMConfig{RankTies: true},
		Output: OutputConfig{Dir: "output"},
		KPI:    KPIConfig{TopN: 10, Period: string(kpi.PeriodMonth)},
	}
}

// Load reads path over the defaults, applies environment overrides and
// validates the result. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Output.Dir = getEnv(EnvOutputDir, c.Output.Dir)
	c.Output.DB = getEnv(EnvDB, c.Output.DB)
	c.Input.SourceDSN = getEnv(EnvSourceDSN, c.Input.SourceDSN)
}

// getEnv returns the variable or defaultValue when it is unset or empty.
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// Validate checks dates, the KPI period and the product ranking size.
func (c *Config) Validate() error {
	if _, err := c.Reference(); err != nil {
		return err
	}
	if _, _, err := c.Window(); err != nil {
		return err
	}
	if _, err := kpi.ParsePeriod(c.KPI.Period); err != nil {
		return fmt.Errorf("kpi.period: %w", err)
	}
	if c.KPI.TopN < 0 {
		return fmt.Errorf("kpi.top_n must not be negative, got %d", c.KPI.TopN)
	}
	return nil
}

// Reference parses rfm.reference_date; zero when unset.
func (c *Config) Reference() (time.Time, error) {
	return parseDate("rfm.reference_date", c.RFM.ReferenceDate)
}

// Window parses the etl window bounds; zero bounds are open.
func (c *Config) Window() (start, end time.Time, err error) {
	if start, err = parseDate("etl.start", c.ETL.Start); err != nil {
		return
	}
	if end, err = parseDate("etl.end", c.ETL.End); err != nil {
		return
	}
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		err = fmt.Errorf("etl.end %s is before etl.start %s", c.ETL.End, c.ETL.Start)
	}
	return
}

// KPIOptions converts the kpi section.
func (c *Config) KPIOptions() kpi.Options {
	period, _ := kpi.ParsePeriod(c.KPI.Period)
	return kpi.Options{Period: period, TopN: c.KPI.TopN}
}

// Columns returns the default column aliases with the configured overrides.
func (c *Config) Columns() gateway.Columns {
	return gateway.DefaultColumns().Merge(c.Input.Columns)
}

func parseDate(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: expected YYYY-MM-DD, got %q", field, value)
	}
	return t, nil
}
