package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edlume/caselab/internal/casegen"
	"github.com/edlume/caselab/internal/caseeval"
)

// singleInput is the JSON shape for one scenario/response evaluation.
type singleInput struct {
	Scenario casegen.Scenario         `json:"scenario"`
	Response caseeval.StudentResponse `json:"response"`
	Subject  string                   `json:"subject"`
	Level    string                   `json:"level"`
}

// batchInput is the JSON shape for batch evaluation.
type batchInput struct {
	Scenarios []casegen.Scenario                  `json:"scenarios"`
	Responses map[string]caseeval.StudentResponse `json:"responses"`
	Subject   string                              `json:"subject"`
	Level     string                              `json:"level"`
}

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Score student responses against case scenarios",
	Long: "Reads a JSON document from --input and prints the evaluation.\n" +
		"Single mode expects {\"scenario\": ..., \"response\": ...};\n" +
		"--batch expects {\"scenarios\": [...], \"responses\": {id: ...}}.",
	RunE: func(cmd *cobra.Command, args []string) error {
		input, _ := cmd.Flags().GetString("input")
		batch, _ := cmd.Flags().GetBool("batch")

		log, err := newLogger(cmd)
		if err != nil {
			return err
		}
		defer log.Sync()

		data, err := readInput(input)
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		ctx := cmd.Context()
		provider, err := newProviderPair(ctx, log)
		if err != nil {
			return err
		}
		ev := caseeval.New(provider, caseeval.DefaultConfig(), log)

		if batch {
			var in batchInput
			if err := json.Unmarshal(data, &in); err != nil {
				return fmt.Errorf("parse batch input: %w", err)
			}
			result := ev.EvaluateAll(ctx, in.Scenarios, in.Responses, caseeval.Options{
				Subject:        in.Subject,
				EducationLevel: in.Level,
			})
			return printJSON(result)
		}

		var in singleInput
		if err := json.Unmarshal(data, &in); err != nil {
			return fmt.Errorf("parse input: %w", err)
		}
		result := ev.Evaluate(ctx, in.Scenario, in.Response, caseeval.Options{
			Subject:        in.Subject,
			EducationLevel: in.Level,
		})
		return printJSON(result)
	},
}

func init() {
	evaluateCmd.Flags().StringP("input", "i", "-", "Input JSON file (- for stdin)")
	evaluateCmd.Flags().Bool("batch", false, "Evaluate a scenario batch")
}
