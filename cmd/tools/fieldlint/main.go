// fieldlint validates declarative metadata field definitions offline and
// prints the request bodies the admin API would receive, without performing
// any network call.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/luminamedia/lumina-go/api"
	"github.com/luminamedia/lumina-go/api/metadata"
	"github.com/luminamedia/lumina-go/internal/config"
	"github.com/luminamedia/lumina-go/internal/fielddef"
	"github.com/luminamedia/lumina-go/internal/logging"
)

var (
	Version   = "dev"     // Injected via ldflags during build
	GitCommit = "unknown" // Injected via ldflags during build
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "", "Path to configuration file")
	mode := flag.String("mode", "", "Override lint mode (create or update)")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *mode != "" {
		cfg.Lint.Mode = *mode
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid flags: %v\n", err)
			os.Exit(1)
		}
	}

	// Setup logger
	logger, err := logging.NewFromConfig(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	logging.SetGlobal(logger)

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Usage: fieldlint [flags] <definitions.yaml> [...]")
		os.Exit(2)
	}

	runID := uuid.New().String()
	logger.Info("fieldlint starting",
		"version", Version, "commit", GitCommit,
		"run_id", runID, "mode", cfg.Lint.Mode, "files", flag.NArg())

	failures := 0
	for _, path := range flag.Args() {
		failures += lintFile(logger, cfg, runID, path)
		if failures > 0 && cfg.Lint.FailFast {
			break
		}
	}

	if failures > 0 {
		logger.Error("lint failed", "run_id", runID, "failures", failures)
		os.Exit(1)
	}
	logger.Info("lint passed", "run_id", runID)
}

// lintFile checks every definition in one document and prints the request
// bodies of the valid ones; it returns the number of failed definitions
func lintFile(logger *logging.Logger, cfg *config.Config, runID, path string) int {
	doc, err := fielddef.Load(path)
	if err != nil {
		logger.Error("failed to load definitions", "run_id", runID, "file", path, "error", err)
		return 1
	}

	failures := 0
	for i := range doc.Fields {
		def := &doc.Fields[i]

		params, err := buildParams(cfg.Lint.Mode, def)
		if err != nil {
			logger.Error("definition rejected", "run_id", runID, "file", path, "index", i, "error", err)
			failures++
			if cfg.Lint.FailFast {
				return failures
			}
			continue
		}

		if err := params.Check(); err != nil {
			logger.Error("definition rejected",
				"run_id", runID, "file", path, "index", i,
				"label", def.Label, "type", def.Type, "error", err)
			failures++
			if cfg.Lint.FailFast {
				return failures
			}
			continue
		}

		body, err := renderBody(cfg.Lint.Format, params.ToParams())
		if err != nil {
			logger.Error("failed to serialize request body", "run_id", runID, "file", path, "index", i, "error", err)
			failures++
			continue
		}

		logger.Debug("definition accepted", "run_id", runID, "file", path, "index", i, "label", def.Label)
		fmt.Println(body)
	}

	return failures
}

// buildParams picks the create or update variant for a definition
func buildParams(lintMode string, def *fielddef.Definition) (metadata.FieldParams, error) {
	if lintMode == "update" {
		return fielddef.BuildUpdate(def)
	}
	return fielddef.BuildCreate(def)
}

// renderBody serializes a request body, indented in pretty format
func renderBody(format string, params api.Params) (string, error) {
	var body []byte
	var err error
	if format == "pretty" {
		body, err = json.MarshalIndent(params, "", "  ")
	} else {
		body, err = json.Marshal(params)
	}
	if err != nil {
		return "", err
	}
	return string(body), nil
}
