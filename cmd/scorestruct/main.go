// Package main provides the CLI entry point for scorestruct-go.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ukaji3/scorestruct-go/internal/logger"
	"github.com/ukaji3/scorestruct-go/pkg/scorestruct"
	"github.com/ukaji3/scorestruct-go/pkg/scorestruct/models"
	"github.com/ukaji3/scorestruct-go/pkg/scorestruct/output"
	"github.com/ukaji3/scorestruct-go/pkg/scorestruct/source"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		cfgFile    string
		outputPath string
		inningsDir string
	)

	rootCmd := &cobra.Command{
		Use:   "scorestruct [scorecard.json|scorecard.yaml|scorecard.xlsx]",
		Short: "Extract structured innings from captured scorecard rows",
		Long: `scorestruct-go classifies captured scorecard rows into batting, bowling,
extras, total and fall-of-wickets records and outputs JSON.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, cfgFile)
			if err != nil {
				return err
			}
			return run(cmd, args[0], cfg, outputPath, inningsDir)
		},
	}

	rootCmd.Flags().StringVar(&cfgFile, "config", "", "YAML config file")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringVar(&inningsDir, "innings-dir", "", "Directory for per-innings output files")
	rootCmd.Flags().String("log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.Flags().Int("concurrency", scorestruct.DefaultConcurrency, "Innings assembled in parallel")
	rootCmd.Flags().Bool("no-fallback", false, "Disable full-text search for extras, total and fall of wickets")

	return rootCmd
}

func run(cmd *cobra.Command, inputPath string, cfg *Config, outputPath, inningsDir string) error {
	log, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	// Open input source
	src, err := source.Open(inputPath)
	if err != nil {
		return err
	}

	// Extract innings
	result, err := scorestruct.Extract(cmd.Context(), src, cfg.options(log))
	if err != nil {
		log.Error("extraction failed", logger.String("input", inputPath), logger.Error(err))
		return fmt.Errorf("extraction failed: %w", err)
	}

	// Serialize to JSON
	jsonData, err := output.ToJSON(result, cfg.Output.Pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	// Write output
	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		log.Info("scorecard saved", logger.String("path", outputPath))
	} else if inningsDir == "" {
		fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	}

	// Write per-innings files
	if inningsDir != "" {
		if err := writeInningsFiles(result, inningsDir, cfg.Output.Pretty); err != nil {
			return fmt.Errorf("failed to write innings files: %w", err)
		}
	}

	return nil
}

func writeInningsFiles(result *models.ScorecardResult, dir string, pretty bool) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for i := range result.Innings {
		jsonData, err := output.InningsToJSON(&result.Innings[i], pretty)
		if err != nil {
			return err
		}

		filename := filepath.Join(dir, inningsFileName(i, result.Innings[i].Header))
		if err := os.WriteFile(filename, jsonData, 0644); err != nil {
			return err
		}
	}

	return nil
}

var unsafeFileChars = regexp.MustCompile(`[^a-z0-9]+`)

// inningsFileName builds "innings1_india-women-innings.json" style names.
func inningsFileName(i int, header string) string {
	slug := strings.Trim(unsafeFileChars.ReplaceAllString(strings.ToLower(header), "-"), "-")
	if len(slug) > 40 {
		slug = strings.TrimRight(slug[:40], "-")
	}
	if slug == "" {
		return fmt.Sprintf("innings%d.json", i+1)
	}
	return fmt.Sprintf("innings%d_%s.json", i+1, slug)
}
