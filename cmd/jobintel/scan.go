package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-intel/internal/config"
	"github.com/jonathan/resume-intel/internal/inventory"
	"github.com/jonathan/resume-intel/internal/logger"
	"github.com/jonathan/resume-intel/internal/observability"
)

var scanCommand = &cobra.Command{
	Use:   "scan",
	Short: "Scan a resume folder and print the discovered inventory",
	RunE:  scanCmd,
}

var (
	scanConfigPath string
	scanResumeDir  string
	scanJSONLogs   bool
)

func init() {
	scanCommand.Flags().StringVar(&scanConfigPath, "config", "", "Path to config.json file")
	scanCommand.Flags().StringVarP(&scanResumeDir, "resumes", "r", "", "Path to the resume folder")
	scanCommand.Flags().BoolVar(&scanJSONLogs, "json-logs", false, "Emit logs as JSON")

	rootCmd.AddCommand(scanCommand)
}

func scanCmd(_ *cobra.Command, _ []string) error {
	if scanResumeDir == "" {
		return fmt.Errorf("--resumes is required")
	}

	cfg := config.DefaultConfig()
	if scanConfigPath != "" {
		loaded, err := config.LoadConfig(scanConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(scanJSONLogs, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	scanner := inventory.NewScanner(cfg, log)
	inv, err := scanner.ScanResumeFolders(scanResumeDir)
	if err != nil {
		return fmt.Errorf("failed to scan resume folder: %w", err)
	}

	observability.NewPrinter(os.Stdout).PrintInventory(inv)
	return nil
}
