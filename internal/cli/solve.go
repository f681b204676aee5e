package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlath-edit/cluster"
	"github.com/katalvlaran/lvlath-edit/connectivity"
	"github.com/katalvlaran/lvlath-edit/core"
	"github.com/katalvlaran/lvlath-edit/search"
	"github.com/katalvlaran/lvlath-edit/spanning"
	"github.com/katalvlaran/lvlath-edit/storage"
)

func newSpanningCommand(in *Input, flagged *RunConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spanning NAME",
		Short: "Find a cheapest spanning subgraph keeping connectivity ≥ k",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			strat, err := in.cfg.strategy()
			if err != nil {
				return err
			}
			oracle, err := in.cfg.oracle()
			if err != nil {
				return err
			}
			set, g, err := in.load(args[0])
			if err != nil {
				return err
			}
			log := in.logger(cmd).WithField("graph", args[0])
			res, err := spanning.Solve(cmd.Context(), g, in.k,
				spanning.WithStrategy(strat),
				spanning.WithConnectivity(oracle),
				spanning.WithBudget(in.cfg.Budget),
				spanning.WithLogger(log),
				spanning.WithHook(progressHook(log)),
			)
			if err != nil {
				return err
			}

			return in.report(cmd, set, args[0], res)
		},
	}
	cmd.Flags().IntVarP(&in.k, "k", "k", 1, "required connectivity")
	cmd.Flags().StringVar(&flagged.Spanning.Strategy, "strategy", flagged.Spanning.Strategy, "objective (unweighted, weighted, negative-weighted)")
	cmd.Flags().StringVar(&flagged.Spanning.Connectivity, "connectivity", flagged.Spanning.Connectivity, "connectivity kind (edge, vertex)")
	cmd.Flags().StringVar(&in.saveAs, "save-as", "", "store the result in the set under this name")

	return cmd
}

func newClusterCommand(in *Input, flagged *RunConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cluster NAME",
		Short: "Edit a graph into cliques of at most s vertices with the fewest changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, g, err := in.load(args[0])
			if err != nil {
				return err
			}
			log := in.logger(cmd).WithField("graph", args[0])
			opts := []cluster.Option{
				cluster.WithBudget(in.cfg.Budget),
				cluster.WithLogger(log),
				cluster.WithHook(progressHook(log)),
				cluster.WithGreedySeed(in.cfg.greedySeed() && !in.noGreedySeed),
			}
			if in.cfg.Cluster.RemovalsOnly {
				opts = append(opts, cluster.WithRemovalsOnly())
			}
			res, err := cluster.Solve(cmd.Context(), g, in.maxSize, opts...)
			if err != nil {
				return err
			}

			return in.report(cmd, set, args[0], res)
		},
	}
	cmd.Flags().IntVarP(&in.maxSize, "size", "s", 3, "largest cluster")
	cmd.Flags().BoolVar(&flagged.Cluster.RemovalsOnly, "removals-only", false, "forbid edge insertions")
	cmd.Flags().BoolVar(&in.noGreedySeed, "no-greedy-seed", false, "start from the edgeless graph instead of the greedy clustering")
	cmd.Flags().StringVar(&in.saveAs, "save-as", "", "store the result in the set under this name")

	return cmd
}

func newConnectivityCommand(in *Input) *cobra.Command {
	return &cobra.Command{
		Use:   "connectivity NAME",
		Short: "Print the vertex and edge connectivity of a graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mf, err := in.cfg.maxFlow()
			if err != nil {
				return err
			}
			_, g, err := in.load(args[0])
			if err != nil {
				return err
			}
			vertex := connectivity.Global(g, connectivity.VertexFunc(mf))
			edge := connectivity.Global(g, connectivity.EdgeFunc(mf))
			fmt.Fprintf(cmd.OutOrStdout(), "%s: order=%d edges=%d vertex=%d edge=%d\n",
				args[0], g.Order(), g.EdgeCount(), vertex, edge)

			return nil
		},
	}
}

func newListCommand(in *Input) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the graphs of the set file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			set, err := in.openSet()
			if err != nil {
				return err
			}
			for _, name := range set.Names() {
				g, _ := set.Get(name)
				kind := "undirected"
				if g.Directed() {
					kind = "directed"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\t%d\t%s\n", name, g.Order(), g.EdgeCount(), kind)
			}

			return nil
		},
	}
}

func (in *Input) openSet() (*storage.Set, error) {
	opts, err := in.cfg.graphOptions()
	if err != nil {
		return nil, err
	}

	return storage.Open(in.cfg.Set, opts...)
}

func (in *Input) load(name string) (*storage.Set, core.Graph, error) {
	set, err := in.openSet()
	if err != nil {
		return nil, nil, err
	}
	g, err := set.Get(name)
	if err != nil {
		return nil, nil, err
	}

	return set, g, nil
}

// report prints the run summary and the result block, and stores the
// result when --save-as is set.
func (in *Input) report(cmd *cobra.Command, set *storage.Set, name string, res *search.Result) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "objective=%d proven=%t exhausted=%t reason=%s steps=%d\n",
		res.Objective, res.ProvenOptimal, res.Exhausted, res.Reason, res.Steps)
	resultName := name + "-result"
	if in.saveAs != "" {
		resultName = in.saveAs
	}
	if err := storage.Format(out, resultName, res.Graph); err != nil {
		return err
	}
	if in.saveAs == "" {
		return nil
	}
	if _, err := set.Put(in.saveAs, res.Graph); err != nil {
		return err
	}

	return set.Save()
}

// progressHook logs a summary of the event stream when the search ends.
func progressHook(log logrus.FieldLogger) search.Hook {
	var expanded, improved int

	return func(ev search.Event) {
		switch ev {
		case search.NodeExpanded:
			expanded++
		case search.RecordImproved:
			improved++
		case search.SearchEnded:
			log.WithFields(logrus.Fields{
				"expanded": expanded,
				"improved": improved,
			}).Debug("search finished")
		}
	}
}
