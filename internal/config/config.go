// Package config loads the analyzer configuration from an optional TOML
// file. Everything has a default matching the standard organizational
// schedule, so the tool works with no config file at all.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/lhtran/go-attendance-monitor/internal/core/workday"
)

type Config struct {
	Timezone string         `toml:"timezone"`
	Schedule ScheduleConfig `toml:"schedule"`
	Ignore   IgnoreConfig   `toml:"ignore"`
}

type ScheduleConfig struct {
	WorkStart     string  `toml:"work_start"`
	WorkEnd       string  `toml:"work_end"`
	LunchStart    string  `toml:"lunch_start"`
	LunchEnd      string  `toml:"lunch_end"`
	DailyCapHours float64 `toml:"daily_cap_hours"`
	RequiredHours float64 `toml:"required_hours"`
}

// IgnoreConfig persists the dates excluded from lateness judgment between
// runs. The computation core treats the set as caller-supplied input.
type IgnoreConfig struct {
	Dates []string `toml:"dates"`
}

func DefaultConfig() Config {
	opts := workday.DefaultOptions()
	return Config{
		Timezone: "Asia/Ho_Chi_Minh",
		Schedule: ScheduleConfig{
			WorkStart:     opts.WorkStart,
			WorkEnd:       opts.WorkEnd,
			LunchStart:    opts.LunchStart,
			LunchEnd:      opts.LunchEnd,
			DailyCapHours: opts.DailyCapHours,
			RequiredHours: opts.RequiredHours,
		},
	}
}

// DefaultPath returns the standard config file location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".go-attendance-monitor", "config.toml"), nil
}

// Load reads the config file at path, or the default location when path is
// empty. A missing file yields the defaults; a malformed one is an error.
func Load(path string) (Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return Config{}, err
		}
		path = p
	}

	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}

// ScheduleOptions converts the schedule section into workday options.
func (c Config) ScheduleOptions() workday.Options {
	return workday.Options{
		WorkStart:     c.Schedule.WorkStart,
		WorkEnd:       c.Schedule.WorkEnd,
		LunchStart:    c.Schedule.LunchStart,
		LunchEnd:      c.Schedule.LunchEnd,
		DailyCapHours: c.Schedule.DailyCapHours,
		RequiredHours: c.Schedule.RequiredHours,
	}
}
