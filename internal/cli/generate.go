package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlath-edit/builder"
)

func newGenerateCommand(in *Input, flagged *RunConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate NAME",
		Short: "Build a graph and store it in the set file",
		Long: `Build a graph and store it in the set file under NAME.

Kinds: complete, cycle, path, star, wheel (--order n); bipartite and grid
(--order rows --cols cols); hypercube (--order d); random-sparse (--order n
--probability p); random-connected (--order n --edges m --k k, honoring
--connectivity and --hamiltonian).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			size, cons, err := in.constructor()
			if err != nil {
				return err
			}
			bopts := []builder.BuilderOption{builder.WithSeed(in.seed)}
			if in.weights != "" {
				fn, err := parseWeights(in.weights)
				if err != nil {
					return err
				}
				bopts = append(bopts, builder.WithWeightFn(fn))
			}
			if in.kind == "random-connected" {
				oracle, err := in.cfg.oracle()
				if err != nil {
					return err
				}
				bopts = append(bopts, builder.WithConnectivity(oracle))
				if in.hamiltonian {
					bopts = append(bopts, builder.WithHamiltonianCycle())
				}
			}
			gopts, err := in.cfg.graphOptions()
			if err != nil {
				return err
			}
			g, err := builder.BuildGraph(size, gopts, bopts, cons)
			if err != nil {
				return err
			}
			set, err := in.openSet()
			if err != nil {
				return err
			}
			if _, err = set.Put(args[0], g); err != nil {
				return err
			}
			if err = set.Save(); err != nil {
				return err
			}
			in.logger(cmd).WithField("graph", args[0]).
				WithField("order", g.Order()).
				WithField("edges", g.EdgeCount()).
				Info("graph stored")
			fmt.Fprintf(cmd.OutOrStdout(), "%s: order=%d edges=%d\n", args[0], g.Order(), g.EdgeCount())

			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&in.kind, "kind", "complete", "topology")
	f.IntVarP(&in.order, "order", "n", 4, "vertex count, rows or dimension, depending on the kind")
	f.IntVar(&in.cols, "cols", 2, "columns (grid) or right side (bipartite)")
	f.IntVarP(&in.edges, "edges", "m", 0, "edge count (random-connected)")
	f.IntVarP(&in.k, "k", "k", 1, "connectivity (random-connected)")
	f.Float64VarP(&in.probability, "probability", "p", 0.5, "edge probability (random-sparse)")
	f.Int64Var(&in.seed, "seed", 1, "random seed")
	f.StringVar(&in.weights, "weights", "", "uniform weight range MIN:MAX (default all 1)")
	f.BoolVar(&in.hamiltonian, "hamiltonian", false, "lay a Hamiltonian cycle first (random-connected)")
	f.StringVar(&flagged.Spanning.Connectivity, "connectivity", flagged.Spanning.Connectivity, "connectivity kind (edge, vertex)")

	return cmd
}

// constructor maps --kind to a builder constructor and the graph order it
// needs.
func (in *Input) constructor() (int, builder.Constructor, error) {
	n := in.order
	switch in.kind {
	case "complete":
		return n, builder.Complete(n), nil
	case "cycle":
		return n, builder.Cycle(n), nil
	case "path":
		return n, builder.Path(n), nil
	case "star":
		return n, builder.Star(n), nil
	case "wheel":
		return n, builder.Wheel(n), nil
	case "bipartite":
		return n + in.cols, builder.CompleteBipartite(n, in.cols), nil
	case "grid":
		return n * in.cols, builder.Grid(n, in.cols), nil
	case "hypercube":
		if n < 1 || n > 16 {
			return 0, nil, errors.Errorf("hypercube dimension %d outside [1,16]", n)
		}

		return 1 << n, builder.Hypercube(n), nil
	case "random-sparse":
		return n, builder.RandomSparse(n, in.probability), nil
	case "random-connected":
		return n, builder.RandomConnected(n, in.edges, in.k), nil
	}

	return 0, nil, errors.Errorf("unknown kind %q", in.kind)
}

// parseWeights reads "MIN:MAX" into a uniform weight distribution.
func parseWeights(s string) (builder.WeightFn, error) {
	lo, hi, ok := strings.Cut(s, ":")
	if !ok {
		return nil, errors.Errorf("weights %q: want MIN:MAX", s)
	}
	from, err := strconv.ParseInt(strings.TrimSpace(lo), 10, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "weights %q", s)
	}
	to, err := strconv.ParseInt(strings.TrimSpace(hi), 10, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "weights %q", s)
	}
	if to < from {
		return nil, errors.Errorf("weights %q: MIN > MAX", s)
	}

	return builder.UniformWeightFn(from, to), nil
}
