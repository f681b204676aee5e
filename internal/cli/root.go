// Package cli implements the lvlath-edit command line: solvers and
// generators over graphs kept in a storage set file.
package cli

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Execute is the entry point to running the CLI.
func Execute(ctx context.Context, version string) {
	in := &Input{}
	rootCmd := createRootCommand(ctx, in, version)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func createRootCommand(ctx context.Context, in *Input, version string) *cobra.Command {
	flagged := defaultRunConfig()
	rootCmd := &cobra.Command{
		Use:          "lvlath-edit",
		Short:        "Exact graph editing: minimum k-connected spanning subgraphs and bounded cluster editing.",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadRunConfig(in.configPath)
			if err != nil {
				return err
			}
			mergeFlags(cmd.Flags(), &flagged, &cfg)
			in.cfg = cfg

			return nil
		},
	}
	rootCmd.SetContext(ctx)

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&in.configPath, "config", "c", "", "YAML run configuration")
	pf.BoolVarP(&in.verbose, "verbose", "v", false, "debug logging")
	pf.StringVarP(&flagged.Set, "set", "f", flagged.Set, "set file holding the named graphs")
	pf.StringVar(&flagged.Backend, "backend", flagged.Backend, "graph storage backend (dense, sparse)")
	pf.StringVar(&flagged.MaxFlow, "maxflow", flagged.MaxFlow, "max-flow algorithm behind connectivity (edmonds-karp, dinic)")
	pf.StringVar(&flagged.LogFormat, "log-format", flagged.LogFormat, "log format (auto, text, json)")
	pf.IntVar(&flagged.Budget.MaxSteps, "max-steps", 0, "stop after this many expansions (0 = unlimited)")
	pf.DurationVar(&flagged.Budget.TimeLimit, "time-limit", 0, "stop after this wall-clock time (0 = unlimited)")
	pf.IntVar(&flagged.Budget.MaxFrontier, "max-frontier", 0, "stop when the frontier holds more nodes (0 = unlimited)")
	pf.Uint64Var(&flagged.Budget.MemoryLimit, "memory-limit", 0, "stop when the heap exceeds this many bytes (0 = unlimited)")

	rootCmd.AddCommand(
		newSpanningCommand(in, &flagged),
		newClusterCommand(in, &flagged),
		newConnectivityCommand(in),
		newGenerateCommand(in, &flagged),
		newListCommand(in),
	)

	return rootCmd
}

// logger builds the run logger on the command's stderr.
func (in *Input) logger(cmd *cobra.Command) logrus.FieldLogger {
	return newLogger(cmd.ErrOrStderr(), in.cfg.LogFormat, in.verbose)
}
