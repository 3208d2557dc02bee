package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"primecount/internal/report"
)

func (c *cli) hostCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "host",
		Short: "Print the detected processor and default thread count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer c.close()
			format, err := report.ParseFormat(c.cfg.Format)
			if err != nil {
				return err
			}
			info := c.appCtx.Host.Info()
			out := cmd.OutOrStdout()
			switch format {
			case report.FormatJSON:
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			case report.FormatYAML:
				enc := yaml.NewEncoder(out)
				if err := enc.Encode(info); err != nil {
					return err
				}
				return enc.Close()
			}
			fmt.Fprintf(out, "CPU: %s\n", info.CPUBrand)
			fmt.Fprintf(out, "Logical cores: %d\n", info.LogicalCores)
			fmt.Fprintf(out, "Physical cores: %d\n", info.PhysicalCores)
			fmt.Fprintf(out, "Default threads: %d\n", c.appCtx.Host.DefaultThreads())
			return nil
		},
	}
}
