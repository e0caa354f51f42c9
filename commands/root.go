package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lhtran/go-attendance-monitor/internal/analyzer"
	"github.com/lhtran/go-attendance-monitor/internal/config"
	"github.com/lhtran/go-attendance-monitor/internal/util"
)

var (
	// Logging related
	debug bool

	// Configuration
	configPath string
	timezone   string

	// Output related
	outputFormat string

	// Lateness judgment
	ignoreDates []string

	rootCmd = &cobra.Command{
		Use:   "go-attendance-monitor [file]",
		Short: "Attendance log analysis tool",
		Long: `go-attendance-monitor analyzes pasted attendance-log text.

It extracts YYYY-MM-DD HH:MM:SS timestamps from free-form text, reconciles
each day's clock events into a lunch-adjusted work duration clipped to the
organizational hours, and reports per-day durations plus aggregate lateness
statistics. Input is read from the file argument, or stdin when omitted.

Examples:
  go-attendance-monitor attendance.log                  # Analyze a log file
  cat attendance.log | go-attendance-monitor            # Analyze stdin
  go-attendance-monitor attendance.log -o json          # Output in JSON format
  go-attendance-monitor attendance.log -o summary       # Aggregate counts only
  go-attendance-monitor attendance.log --ignore 2024-01-15 --ignore 2024-01-16
  go-attendance-monitor attendance.log --timezone Asia/Bangkok`,
		Args: cobra.MaximumNArgs(1),
		RunE: runAnalyze,
	}
)

const defaultLogFile = "~/.go-attendance-monitor/logs/app.log"

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Config file path (default ~/.go-attendance-monitor/config.toml)")
	rootCmd.PersistentFlags().StringVar(&timezone, "timezone", "",
		"Organizational timezone (e.g., Asia/Ho_Chi_Minh, UTC); overrides the config file")
	rootCmd.PersistentFlags().StringSliceVar(&ignoreDates, "ignore", nil,
		"Date to exclude from lateness judgment (YYYY-MM-DD, repeatable)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "table",
		"Output format (table, json, csv, summary)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug mode")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := setup(args)
	if err != nil {
		return err
	}

	a, err := analyzer.New(cfg)
	if err != nil {
		return err
	}
	return a.Run()
}

// setup initializes logging and merges the config file with flag overrides
// into the analyzer configuration.
func setup(args []string) (*analyzer.Config, error) {
	logLevel := "info"
	if debug {
		logLevel = "debug"
	}
	logFile := expandPath(defaultLogFile)
	if err := ensureDir(filepath.Dir(logFile)); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	util.InitLogger(logLevel, logFile, debug)

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if timezone != "" {
		cfg.Timezone = timezone
	}

	inputPath := ""
	if len(args) > 0 {
		inputPath = args[0]
	}
	if inputPath != "" && inputPath != "-" {
		inputPath = expandPath(inputPath)
	}

	return &analyzer.Config{
		InputPath:    inputPath,
		OutputFormat: outputFormat,
		Timezone:     cfg.Timezone,
		IgnoreDates:  append(cfg.Ignore.Dates, ignoreDates...),
		Schedule:     cfg.ScheduleOptions(),
	}, nil
}

func Execute() error {
	return rootCmd.Execute()
}

// Helper functions

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
