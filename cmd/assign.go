package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/edlume/caselab/internal/inquiry"
)

// assignment is the printed result of one assign run. The session ID ties
// the run to downstream records kept by the caller.
type assignment struct {
	SessionID    string                `json:"session_id"`
	Combinations []inquiry.Combination `json:"combinations"`
}

var assignCmd = &cobra.Command{
	Use:   "assign",
	Short: "Assign keyword combinations to question slots",
	Long: "Reads keyword pools ({\"concepts\": [...], \"action_verbs\": [...]})\n" +
		"from --pools and assigns one combination per slot, avoiding repeats\n" +
		"until the combination space is exhausted.",
	RunE: func(cmd *cobra.Command, args []string) error {
		poolsPath, _ := cmd.Flags().GetString("pools")
		count, _ := cmd.Flags().GetInt("count")

		data, err := readInput(poolsPath)
		if err != nil {
			return fmt.Errorf("read pools: %w", err)
		}

		var pools inquiry.Pools
		if err := json.Unmarshal(data, &pools); err != nil {
			return fmt.Errorf("parse pools: %w", err)
		}

		combos := inquiry.AssignMany(pools.Concepts, pools.ActionVerbs, count)
		return printJSON(assignment{
			SessionID:    uuid.NewString(),
			Combinations: combos,
		})
	},
}

func init() {
	assignCmd.Flags().StringP("pools", "p", "-", "Keyword pools JSON file (- for stdin)")
	assignCmd.Flags().IntP("count", "n", 1, "Number of question slots to fill")
}
