package cli

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlath-edit/connectivity"
	"github.com/katalvlaran/lvlath-edit/core"
	"github.com/katalvlaran/lvlath-edit/flow"
	"github.com/katalvlaran/lvlath-edit/search"
	"github.com/katalvlaran/lvlath-edit/spanning"
)

// RunConfig is the YAML run configuration. Flags given on the command line
// override the file.
type RunConfig struct {
	Set       string        `yaml:"set"`
	Backend   string        `yaml:"backend"`
	MaxFlow   string        `yaml:"maxflow"`
	LogFormat string        `yaml:"log_format"`
	Budget    search.Budget `yaml:"budget"`
	Spanning  struct {
		Strategy     string `yaml:"strategy"`
		Connectivity string `yaml:"connectivity"`
	} `yaml:"spanning"`
	Cluster struct {
		RemovalsOnly bool  `yaml:"removals_only"`
		GreedySeed   *bool `yaml:"greedy_seed"`
	} `yaml:"cluster"`
}

// Input holds every flag value of one invocation.
type Input struct {
	configPath string
	verbose    bool
	cfg        RunConfig

	// subcommand flags
	k, maxSize   int
	saveAs       string
	noGreedySeed bool
	kind         string
	order        int
	cols         int
	edges        int
	probability  float64
	seed         int64
	weights      string
	hamiltonian  bool
}

func defaultRunConfig() RunConfig {
	var cfg RunConfig
	cfg.Set = "graphs.txt"
	cfg.Backend = "dense"
	cfg.MaxFlow = "edmonds-karp"
	cfg.LogFormat = "auto"
	cfg.Spanning.Strategy = "unweighted"
	cfg.Spanning.Connectivity = "edge"

	return cfg
}

// loadRunConfig reads path over defaults. An empty path keeps the defaults.
func loadRunConfig(path string) (RunConfig, error) {
	cfg := defaultRunConfig()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return cfg, errors.Wrap(err, "config")
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil {
		return cfg, errors.Wrapf(err, "config %s", path)
	}

	return cfg, nil
}

// mergeFlags copies every explicitly set flag of fs over cfg.
func mergeFlags(fs *pflag.FlagSet, flagged, cfg *RunConfig) {
	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "set":
			cfg.Set = flagged.Set
		case "backend":
			cfg.Backend = flagged.Backend
		case "maxflow":
			cfg.MaxFlow = flagged.MaxFlow
		case "log-format":
			cfg.LogFormat = flagged.LogFormat
		case "max-steps":
			cfg.Budget.MaxSteps = flagged.Budget.MaxSteps
		case "time-limit":
			cfg.Budget.TimeLimit = flagged.Budget.TimeLimit
		case "max-frontier":
			cfg.Budget.MaxFrontier = flagged.Budget.MaxFrontier
		case "memory-limit":
			cfg.Budget.MemoryLimit = flagged.Budget.MemoryLimit
		case "strategy":
			cfg.Spanning.Strategy = flagged.Spanning.Strategy
		case "connectivity":
			cfg.Spanning.Connectivity = flagged.Spanning.Connectivity
		case "removals-only":
			cfg.Cluster.RemovalsOnly = flagged.Cluster.RemovalsOnly
		}
	})
}

func (cfg RunConfig) graphOptions() ([]core.GraphOption, error) {
	switch strings.ToLower(cfg.Backend) {
	case "dense", "":
		return []core.GraphOption{core.WithBackend(core.Dense)}, nil
	case "sparse":
		return []core.GraphOption{core.WithBackend(core.Sparse)}, nil
	}

	return nil, errors.Errorf("unknown backend %q (dense, sparse)", cfg.Backend)
}

func (cfg RunConfig) maxFlow() (connectivity.MaxFlow, error) {
	switch strings.ToLower(cfg.MaxFlow) {
	case "edmonds-karp", "":
		return flow.EdmondsKarp, nil
	case "dinic":
		return flow.Dinic, nil
	}

	return nil, errors.Errorf("unknown max-flow algorithm %q (edmonds-karp, dinic)", cfg.MaxFlow)
}

// oracle resolves the spanning connectivity kind against the max-flow choice.
func (cfg RunConfig) oracle() (connectivity.Func, error) {
	mf, err := cfg.maxFlow()
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(cfg.Spanning.Connectivity) {
	case "edge", "":
		return connectivity.EdgeFunc(mf), nil
	case "vertex":
		return connectivity.VertexFunc(mf), nil
	}

	return nil, errors.Errorf("unknown connectivity %q (edge, vertex)", cfg.Spanning.Connectivity)
}

func (cfg RunConfig) strategy() (spanning.Strategy, error) {
	s, ok := spanning.Strategies()[strings.ToLower(cfg.Spanning.Strategy)]
	if !ok {
		return spanning.Strategy{}, errors.Errorf("unknown strategy %q (unweighted, weighted, negative-weighted)", cfg.Spanning.Strategy)
	}

	return s, nil
}

func (cfg RunConfig) greedySeed() bool {
	return cfg.Cluster.GreedySeed == nil || *cfg.Cluster.GreedySeed
}
