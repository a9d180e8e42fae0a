package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
)

// CLIConfig holds command-line configuration
type CLIConfig struct {
	ConfigPath  string
	Ontology    string
	Out         string
	Language    string
	LogLevel    string
	LogFormat   string
	Verbose     bool
	ShowVersion bool
	ShowHelp    bool
	Validate    bool
}

func parseFlags() *CLIConfig {
	cfg := &CLIConfig{}

	// Define flags with environment variable fallback
	flag.StringVar(&cfg.ConfigPath, "config",
		getEnv("SCHEMA_DTS_CONFIG", ""),
		"Path to settings file, JSON or YAML (env: SCHEMA_DTS_CONFIG)")

	flag.StringVar(&cfg.Ontology, "ontology",
		getEnv("SCHEMA_DTS_ONTOLOGY", ""),
		"Ontology source URL or file, overrides settings (env: SCHEMA_DTS_ONTOLOGY)")

	flag.StringVar(&cfg.Out, "out",
		getEnv("SCHEMA_DTS_OUT", ""),
		"Output file, - for stdout, overrides settings (env: SCHEMA_DTS_OUT)")

	flag.StringVar(&cfg.Language, "language",
		getEnv("SCHEMA_DTS_LANGUAGE", ""),
		"Preferred comment language tag, overrides settings (env: SCHEMA_DTS_LANGUAGE)")

	flag.StringVar(&cfg.LogLevel, "log-level",
		getEnv("SCHEMA_DTS_LOG_LEVEL", "info"),
		"Log level: debug, info, warn, error (env: SCHEMA_DTS_LOG_LEVEL)")

	flag.StringVar(&cfg.LogFormat, "log-format",
		getEnv("SCHEMA_DTS_LOG_FORMAT", "text"),
		"Log format: json, text (env: SCHEMA_DTS_LOG_FORMAT)")

	flag.BoolVar(&cfg.Verbose, "verbose",
		getEnvBool("SCHEMA_DTS_VERBOSE", false),
		"Log data-quality diagnostics such as missing comments (env: SCHEMA_DTS_VERBOSE)")

	flag.BoolVar(&cfg.ShowVersion, "version", false, "Show version information")
	flag.BoolVar(&cfg.ShowVersion, "v", false, "Show version information")
	flag.BoolVar(&cfg.ShowHelp, "help", false, "Show help information")
	flag.BoolVar(&cfg.ShowHelp, "h", false, "Show help information")
	flag.BoolVar(&cfg.Validate, "validate", false, "Validate settings and exit")

	// Custom usage
	flag.Usage = func() {
		printDetailedHelp()
	}

	flag.Parse()

	return cfg
}

func validateFlags(cfg *CLIConfig) error {
	// Skip validation for special flags
	if cfg.ShowVersion || cfg.ShowHelp {
		return nil
	}

	if cfg.ConfigPath != "" {
		if _, err := os.Stat(cfg.ConfigPath); err != nil {
			return fmt.Errorf("settings file not found: %s", cfg.ConfigPath)
		}
	}

	validLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLevels, cfg.LogLevel) {
		return fmt.Errorf("invalid log level: %s", cfg.LogLevel)
	}

	validFormats := []string{"json", "text"}
	if !contains(validFormats, cfg.LogFormat) {
		return fmt.Errorf("invalid log format: %s", cfg.LogFormat)
	}

	return nil
}

func printDetailedHelp() {
	_, _ = fmt.Fprintf(os.Stderr, `%s - schema.org TypeScript declaration generator

Usage: %s [options]

Options:
`, appName, os.Args[0])
	flag.PrintDefaults()
	_, _ = fmt.Fprintf(os.Stderr, `
Examples:
  # Generate from the latest schema.org release to stdout
  %s

  # Generate from a local ontology snapshot
  %s --ontology=testdata/schemaorg.jsonld --out=schema.d.ts

  # Use a settings file and debug logging
  %s --config=settings.yaml --log-level=debug

  # Validate settings only
  %s --config=settings.json --validate

Version: %s
Build: %s
`, os.Args[0], os.Args[0], os.Args[0], os.Args[0], Version, BuildTime)
}

// Environment variable helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// Utility function to check if slice contains string
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
