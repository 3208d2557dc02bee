package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"primecount/internal/app"
)

// cli holds state shared by the root command and its subcommands.
type cli struct {
	cfgFile string
	v       *viper.Viper
	cfg     app.Config
	appCtx  *app.Wire
	stderr  io.Writer
}

// Execute runs the CLI with os.Args and reports failures on stderr.
func Execute(ctx context.Context) error {
	root := NewRootCmd(os.Stdout, os.Stderr)
	err := root.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	return err
}

// NewRootCmd builds the command tree writing reports to stdout and
// diagnostics to stderr.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	c := &cli{v: app.NewViper(), stderr: stderr}

	root := &cobra.Command{
		Use:           "primecount <input-file> [thread-count]",
		Short:         "Compare single-threaded and multi-threaded prime counting",
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.HasParent() && len(args) == 0 {
				return nil
			}
			return c.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Usage()
			}
			defer c.close()
			return c.runCompare(cmd, args)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&c.cfgFile, "config", "", "YAML config file")
	pf.String("format", "text", "output format: text, json or yaml")
	pf.String("log-level", "warn", "log level: debug, info, warn or error")
	pf.String("history", "", "store each run in this file")
	pf.String("history-driver", "json", "history backend: json or sqlite")
	pf.String("publish", "", "collector base URL to publish runs to")
	// Stop flag parsing at the input file so "-5" reaches ResolveThreads.
	root.Flags().SetInterspersed(false)
	root.Flags().Int("threads", 0, "worker count when thread-count is not given (default: processor count)")

	_ = c.v.BindPFlag("format", pf.Lookup("format"))
	_ = c.v.BindPFlag("log_level", pf.Lookup("log-level"))
	_ = c.v.BindPFlag("history.path", pf.Lookup("history"))
	_ = c.v.BindPFlag("history.driver", pf.Lookup("history-driver"))
	_ = c.v.BindPFlag("publish.url", pf.Lookup("publish"))
	_ = c.v.BindPFlag("threads", root.Flags().Lookup("threads"))

	root.AddCommand(c.historyCmd(), c.hostCmd())
	return root
}

func (c *cli) setup() error {
	cfg, err := app.LoadConfig(c.v, c.cfgFile)
	if err != nil {
		return err
	}
	log, err := app.NewLogger(c.stderr, cfg.LogLevel)
	if err != nil {
		return err
	}
	w, err := app.NewWire(cfg, log)
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.appCtx = w
	return nil
}

func (c *cli) close() {
	if c.appCtx == nil {
		return
	}
	if err := c.appCtx.Close(); err != nil {
		c.appCtx.Log.WithError(err).Warn("close")
	}
}
