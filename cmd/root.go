package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/edlume/caselab/internal/llm"
)

var rootCmd = &cobra.Command{
	Use:   "caselab",
	Short: "AI content pipeline for case and inquiry learning modes",
	Long: "CaseLab generates case scenarios and inquiry keywords from source material\n" +
		"and scores student responses on a fixed four-dimension rubric, with a\n" +
		"primary/fallback model provider pair.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")

	rootCmd.AddCommand(scenariosCmd)
	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(keywordsCmd)
	rootCmd.AddCommand(assignCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// newLogger builds the process logger. Verbose runs use the development
// config so debug output is readable at a terminal.
func newLogger(cmd *cobra.Command) (*zap.Logger, error) {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// resolveConfig prefers explicit CASELAB_* variables and falls back to
// probing the standard provider key variables.
func resolveConfig() (llm.Config, error) {
	cfg := llm.ConfigFromEnv()
	if err := cfg.Validate(); err == nil {
		return cfg, nil
	}
	if discovered, ok := llm.DiscoverConfig(); ok {
		return discovered, nil
	}
	return llm.Config{}, fmt.Errorf("no provider pair configured; set CASELAB_* variables or two of ANTHROPIC_API_KEY / OPENAI_API_KEY / GEMINI_API_KEY")
}

// newProviderPair builds the logging-wrapped failover pair from the
// environment.
func newProviderPair(ctx context.Context, log *zap.Logger) (llm.Provider, error) {
	cfg, err := resolveConfig()
	if err != nil {
		return nil, err
	}
	return llm.NewFailoverFromConfig(ctx, cfg, log)
}

// readInput reads a file argument, with "-" (or empty) meaning stdin.
func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
