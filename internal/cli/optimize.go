package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/lineorder/pkg/config"
	"github.com/matzehuels/lineorder/pkg/decoder"
	"github.com/matzehuels/lineorder/pkg/engine"
	"github.com/matzehuels/lineorder/pkg/graph"
)

// orderingJSON is the printed shape of a decoder.OrderingConfig: one entry
// per edge, naming its endpoints and the resolved route IDs in solved
// order.
type orderingJSON struct {
	From   string   `json:"from"`
	To     string   `json:"to"`
	Routes []string `json:"routes"`
}

func (c *CLI) optimizeCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "optimize NETWORK",
		Short: "Compute a crossing-minimizing line ordering for a test network",
		Long:  `Loads a JSON test-network file, builds and solves the ILP, and prints the resulting per-edge route ordering as JSON.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runOptimize(cmd, args[0], configPath)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a TOML config file (defaults if omitted)")
	return cmd
}

func (c *CLI) runOptimize(cmd *cobra.Command, networkPath, configPath string) error {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	g, err := loadNetwork(networkPath)
	if err != nil {
		return fmt.Errorf("load network: %w", err)
	}

	logger := loggerFromContext(cmd.Context())
	cfg.Logger = logger

	progress := newProgress(logger)
	ordering, stats, err := engine.Optimize(cmd.Context(), g, nil, cfg)
	if err != nil {
		return fmt.Errorf("optimize: %w", err)
	}
	progress.done("optimized network")

	if cfg.OutputStats {
		logger.Infof(
			"nodes=%d edges=%d max_cardinality=%d vars=%d rows=%d objective=%.1f solve_ms=%d",
			stats.Nodes, stats.Edges, stats.MaxCardinality, stats.Vars, stats.Rows, stats.Objective, stats.SolveTimeMS,
		)
	}

	return writeOrdering(cmd.OutOrStdout(), g, ordering)
}

func writeOrdering(w io.Writer, g *graph.Graph, ordering decoder.OrderingConfig) error {
	out := make([]orderingJSON, 0, len(ordering))
	for eh, routes := range ordering {
		e, ok := g.Edge(eh)
		if !ok {
			continue
		}
		fromNode, _ := g.Node(e.From)
		toNode, _ := g.Node(e.To)
		ids := make([]string, len(routes))
		for i, rh := range routes {
			r, _ := g.Route(rh)
			ids[i] = r.ID
		}
		out = append(out, orderingJSON{From: fromNode.ID, To: toNode.ID, Routes: ids})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
