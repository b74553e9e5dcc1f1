package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-intel/internal/config"
	"github.com/jonathan/resume-intel/internal/embedding"
	"github.com/jonathan/resume-intel/internal/enhancement"
	"github.com/jonathan/resume-intel/internal/export"
	"github.com/jonathan/resume-intel/internal/ingestion"
	"github.com/jonathan/resume-intel/internal/intelligence"
	"github.com/jonathan/resume-intel/internal/inventory"
	"github.com/jonathan/resume-intel/internal/llm"
	"github.com/jonathan/resume-intel/internal/logger"
	"github.com/jonathan/resume-intel/internal/observability"
	"github.com/jonathan/resume-intel/internal/selection"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Process job postings against a resume folder",
	Long: `Runs the full intelligence pipeline: scan the resume folder, select the
best-fitting resume for each posting, and suggest enhancements from the master
resume. Results are written to an Excel workbook.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runIntelligenceCmd,
}

var (
	runConfigPath string
	runJobsPath   string
	runResumeDir  string
	runOutputPath string
	runAPIKey     string
	runJSONLogs   bool
	runVerbose    bool
)

func init() {
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	runCommand.Flags().StringVarP(&runJobsPath, "jobs", "j", "", "Path to job postings file (.json, .txt, .md, or .html)")
	runCommand.Flags().StringVarP(&runResumeDir, "resumes", "r", "", "Path to the resume folder")
	runCommand.Flags().StringVarP(&runOutputPath, "output", "o", "", "Output .xlsx path (defaults to a timestamped file in the current directory)")
	runCommand.Flags().BoolVar(&runJSONLogs, "json-logs", false, "Emit logs as JSON")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed progress information")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	runCommand.Flags().StringVar(&runAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	rootCmd.AddCommand(runCommand)
}

func runIntelligenceCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadRunConfig(cmd)
	if err != nil {
		return err
	}

	if runJobsPath == "" {
		return fmt.Errorf("--jobs is required")
	}
	if runResumeDir == "" {
		return fmt.Errorf("--resumes is required")
	}

	log, err := logger.New(runJSONLogs, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	jobs, meta, err := ingestion.LoadJobPostings(runJobsPath)
	if err != nil {
		return fmt.Errorf("failed to load job postings: %w", err)
	}
	log.Info("loaded job postings",
		zap.String("source", meta.Source),
		zap.String("format", meta.Format),
		zap.Int("jobs", meta.JobCount))

	orchestrator, cleanup, err := buildOrchestrator(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	results := orchestrator.ProcessJobs(ctx, jobs, runResumeDir)

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		for _, result := range results {
			printer.PrintResult(result)
			printer.PrintEnhancements(result.Enhancements)
		}
	}

	outputPath := runOutputPath
	if outputPath == "" {
		outputPath = export.DefaultOutputPath(".")
	}
	if err := export.ExportToExcel(results, outputPath); err != nil {
		return fmt.Errorf("failed to export results: %w", err)
	}

	log.Info("wrote workbook", zap.String("path", outputPath), zap.Int("results", len(results)))
	return nil
}

// loadRunConfig merges the optional config file, CLI overrides, and defaults
func loadRunConfig(cmd *cobra.Command) (*config.Config, error) {
	var cfg *config.Config
	if runConfigPath != "" {
		loaded, err := config.LoadConfig(runConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	} else {
		cfg = config.DefaultConfig()
	}

	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = runAPIKey
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = runVerbose
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildOrchestrator wires the pipeline. Without an API key the pipeline runs
// in degraded mode: heuristic scoring and word-overlap similarity.
func buildOrchestrator(ctx context.Context, cfg *config.Config, log *zap.Logger) (*intelligence.Orchestrator, func(), error) {
	var client llm.Client
	var embedder embedding.Embedder
	cleanup := func() {}

	if cfg.APIKey != "" {
		c, err := llm.NewClient(ctx, llm.DefaultConfig(), cfg.APIKey)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
		client = c

		e, err := embedding.NewGeminiEmbedder(ctx, cfg.APIKey)
		if err != nil {
			_ = c.Close()
			return nil, nil, fmt.Errorf("failed to create embedder: %w", err)
		}
		embedder = e

		cleanup = func() {
			_ = e.Close()
			_ = c.Close()
		}
	} else {
		log.Warn("no API key configured, using heuristic scoring and word-overlap similarity")
	}

	scanner := inventory.NewScanner(cfg, log)
	engine := selection.NewEngine(cfg, client, log)
	sim := embedding.NewSimilarity(embedder, 0, log)
	analyzer := enhancement.NewAnalyzer(cfg, sim, log)

	return intelligence.NewOrchestrator(cfg, scanner, engine, analyzer, log), cleanup, nil
}
