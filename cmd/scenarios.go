package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edlume/caselab/internal/casegen"
)

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "Generate case scenarios from source text",
	RunE: func(cmd *cobra.Command, args []string) error {
		source, _ := cmd.Flags().GetString("source")
		count, _ := cmd.Flags().GetInt("count")
		subject, _ := cmd.Flags().GetString("subject")
		level, _ := cmd.Flags().GetString("level")
		domain, _ := cmd.Flags().GetString("domain")
		flaws, _ := cmd.Flags().GetBool("flaws")

		log, err := newLogger(cmd)
		if err != nil {
			return err
		}
		defer log.Sync()

		text, err := readInput(source)
		if err != nil {
			return fmt.Errorf("read source: %w", err)
		}

		ctx := cmd.Context()
		provider, err := newProviderPair(ctx, log)
		if err != nil {
			return err
		}

		gen := casegen.New(provider, casegen.DefaultConfig(), log)
		scenarios, err := gen.Generate(ctx, string(text), casegen.Options{
			Count:          count,
			Subject:        subject,
			EducationLevel: level,
			Domain:         domain,
			IncludeFlaws:   flaws,
		})
		if err != nil {
			return err
		}

		return printJSON(scenarios)
	},
}

func init() {
	scenariosCmd.Flags().StringP("source", "s", "-", "Source text file (- for stdin)")
	scenariosCmd.Flags().IntP("count", "n", 3, "Number of scenarios to generate")
	scenariosCmd.Flags().String("subject", "", "Subject area")
	scenariosCmd.Flags().String("level", "", "Education level")
	scenariosCmd.Flags().String("domain", "", "Scenario domain, e.g. healthcare")
	scenariosCmd.Flags().Bool("flaws", false, "Embed an intentional flaw in each scenario")
}
