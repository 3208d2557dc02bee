package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"primecount/internal/domain"
	"primecount/internal/report"
)

// history: list stored runs, oldest first.
func (c *cli) historyCmd() *cobra.Command {
	var fromCollector bool
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List stored benchmark runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer c.close()
			format, err := report.ParseFormat(c.cfg.Format)
			if err != nil {
				return err
			}

			var runs []domain.Comparison
			if fromCollector {
				if c.appCtx.Publisher == nil {
					return errors.New("no collector configured. use --publish")
				}
				runs, err = c.appCtx.Publisher.FetchRuns(cmd.Context())
			} else {
				if c.appCtx.History == nil {
					return errors.New("no history configured. use --history")
				}
				runs, err = c.appCtx.History.ListRuns()
			}
			if err != nil {
				return err
			}
			return report.RenderList(cmd.OutOrStdout(), format, runs)
		},
	}
	cmd.Flags().BoolVar(&fromCollector, "collector", false, "list runs held by the --publish collector instead")
	return cmd
}
