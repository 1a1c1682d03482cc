package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/edlume/caselab/internal/llm"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect the configured model providers",
}

// probeSchema keeps the probe honest: the reply must come back as a
// structured object, not prose, so a passing probe means the provider
// handles schema-constrained output.
var probeSchema = &llm.Schema{
	Name:        "probe-reply",
	Description: "Reply to a connectivity probe",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"ok":      map[string]any{"type": "boolean"},
			"message": map[string]any{"type": "string"},
		},
		"required":             []any{"ok", "message"},
		"additionalProperties": false,
	},
}

var llmProbeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Send a schema-constrained ping through a provider role",
	RunE: func(cmd *cobra.Command, args []string) error {
		role, _ := cmd.Flags().GetString("role")

		log, err := newLogger(cmd)
		if err != nil {
			return err
		}
		defer log.Sync()

		cfg, err := resolveConfig()
		if err != nil {
			return err
		}

		name := cfg.Primary
		if role == "fallback" {
			name = cfg.Fallback
		}

		ctx := llm.WithPurpose(cmd.Context(), "probe")
		provider, err := llm.NewBackend(ctx, name, cfg)
		if err != nil {
			return err
		}

		start := time.Now()
		resp, err := llm.WithLogging(provider, log).Complete(ctx, llm.Request{
			Messages: []llm.Message{
				{Role: llm.RoleUser, Content: `Reply with {"ok": true, "message": "pong"}.`},
			},
			Schema:    probeSchema,
			MaxTokens: 64,
		})
		if err != nil {
			return fmt.Errorf("probe %s (%s): %w", role, name, err)
		}

		return printJSON(map[string]any{
			"role":          role,
			"provider":      name,
			"model":         resp.Model,
			"latency_ms":    time.Since(start).Milliseconds(),
			"input_tokens":  resp.Usage.InputTokens,
			"output_tokens": resp.Usage.OutputTokens,
			"reply":         resp.Text,
		})
	},
}

func init() {
	llmProbeCmd.Flags().String("role", "primary", "Provider role to probe (primary or fallback)")
	llmCmd.AddCommand(llmProbeCmd)
}
