package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edlume/caselab/internal/inquiry"
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "Extract inquiry keyword pools from source text",
	RunE: func(cmd *cobra.Command, args []string) error {
		source, _ := cmd.Flags().GetString("source")
		subject, _ := cmd.Flags().GetString("subject")
		maxPerPool, _ := cmd.Flags().GetInt("max-per-pool")

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

		ex := inquiry.NewExtractor(provider, inquiry.DefaultConfig(), log)
		pools, err := ex.Extract(ctx, string(text), inquiry.Options{
			Subject:    subject,
			MaxPerPool: maxPerPool,
		})
		if err != nil {
			return err
		}

		return printJSON(pools)
	},
}

func init() {
	keywordsCmd.Flags().StringP("source", "s", "-", "Source text file (- for stdin)")
	keywordsCmd.Flags().String("subject", "", "Subject area")
	keywordsCmd.Flags().Int("max-per-pool", 10, "Maximum keywords per pool")
}
