package cli

import (
	"fmt"

	"github.com/dgallion1/workflowdoc/internal/graph"
	"github.com/dgallion1/workflowdoc/internal/pipeline"
	"github.com/spf13/cobra"
)

func init() {
	f := graphCmd.Flags()
	f.StringVarP(&cfg.GraphDBPath, "db", "d", cfg.GraphDBPath, "SQLite workflow database")
	f.StringVarP(&cfg.GraphOutputPath, "output", "o", cfg.GraphOutputPath, "Node-link JSON output path")
	rootCmd.AddCommand(graphCmd)
}

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the step dependency graph from SQLite as node-link JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger(cmd.ErrOrStderr()).With("db", cfg.GraphDBPath)

		g, err := graph.ExportFile(cmd.Context(), cfg.GraphDBPath, log)
		if err != nil {
			return err
		}
		if err := pipeline.WriteJSON(cfg.GraphOutputPath, g); err != nil {
			return err
		}

		log.Info("graph exported", "output", cfg.GraphOutputPath, "nodes", len(g.Nodes), "links", len(g.Links))
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d nodes and %d links to %s\n", len(g.Nodes), len(g.Links), cfg.GraphOutputPath)
		return nil
	},
}
