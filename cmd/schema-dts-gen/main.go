// Package main implements the entry point for schema-dts-gen.
// schema-dts-gen converts the schema.org ontology into a closed, statically
// checkable TypeScript type hierarchy: one exhaustively discriminated type
// per class, with enum unions, children unions, and builtin aliases.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/Eyas/schema-dts/config"
	"github.com/Eyas/schema-dts/generate"
	"github.com/Eyas/schema-dts/jsonld"
	"github.com/Eyas/schema-dts/ontology"
	"github.com/Eyas/schema-dts/printer"
	"github.com/Eyas/schema-dts/typeexpr"
)

// Build information constants
const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "schema-dts-gen"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := run(); err != nil {
		slog.Error("Generation failed", "error", err, "exit_code", 1)
		os.Exit(1)
	}
}

func run() error {
	cliCfg := parseFlags()

	if cliCfg.ShowHelp {
		printDetailedHelp()
		return nil
	}
	if cliCfg.ShowVersion {
		fmt.Printf("%s %s (build %s)\n", appName, Version, BuildTime)
		return nil
	}
	if err := validateFlags(cliCfg); err != nil {
		return err
	}

	logger := setupLogger(cliCfg.LogLevel, cliCfg.LogFormat)
	slog.SetDefault(logger)

	settings, err := loadSettings(cliCfg)
	if err != nil {
		return err
	}

	if cliCfg.Validate {
		logger.Info("Settings are valid")
		return nil
	}

	start := time.Now()
	logger.Info("Loading ontology", "source", settings.Ontology)

	members, err := loadOntology(settings, logger)
	if err != nil {
		return err
	}

	decls, err := generate.Run(members, settings, logger)
	if err != nil {
		return err
	}

	if err := writeDeclarations(settings.Out, decls, logger); err != nil {
		return err
	}

	logger.Info("Generation complete", "elapsed", time.Since(start))
	return nil
}

// loadSettings merges the settings file (or defaults) with CLI overrides.
func loadSettings(cliCfg *CLIConfig) (*config.Settings, error) {
	settings := config.Default()
	if cliCfg.ConfigPath != "" {
		loaded, err := config.Load(cliCfg.ConfigPath)
		if err != nil {
			return nil, err
		}
		settings = loaded
	}

	if cliCfg.Ontology != "" {
		settings.Ontology = cliCfg.Ontology
	}
	if cliCfg.Out != "" {
		settings.Out = cliCfg.Out
	}
	if cliCfg.Language != "" {
		settings.Language = cliCfg.Language
	}
	if cliCfg.Verbose {
		settings.Verbose = true
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

func loadOntology(settings *config.Settings, logger *slog.Logger) ([]ontology.GraphMember, error) {
	if settings.IsRemote() {
		return jsonld.NewFetcher(logger).Fetch(context.Background(), settings.Ontology)
	}
	return jsonld.Load(settings.Ontology)
}

func writeDeclarations(out string, decls []typeexpr.Declaration, logger *slog.Logger) error {
	var w io.Writer
	if out == "-" {
		w = os.Stdout
	} else {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer func() { _ = f.Close() }()
		w = f
	}

	if err := printer.NewTypeScript(w).Print(decls); err != nil {
		return fmt.Errorf("print declarations: %w", err)
	}
	if out != "-" {
		logger.Info("Declarations written", "out", out)
	}
	return nil
}
