package cli

import (
	"github.com/spf13/cobra"

	"github.com/K-atc/seed-tree-analyzer/pkg/errors"
	pkgio "github.com/K-atc/seed-tree-analyzer/pkg/io"
	"github.com/K-atc/seed-tree-analyzer/pkg/render/nodelink"
)

// renderCommand plots a graph saved by "afl parse" or "libfuzzer parse".
func (c *CLI) renderCommand() *cobra.Command {
	var (
		highlight string
		notes     []string
		plot      plotFlags
	)

	cmd := &cobra.Command{
		Use:   "render GRAPH.json",
		Short: "Render a graph saved as JSON",
		Long: `Render a graph written by "seedtree afl parse" or "seedtree libfuzzer parse".
One file per format is written next to GRAPH.json, replacing its extension.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var ds []nodelink.Directive
			if highlight != "" {
				ds = append(ds, nodelink.HighlightEdgesFromRootTo{Node: highlight})
			}
			if c.config.Plot.HighlightCrashInput {
				ds = append(ds, nodelink.HighlightCrashInput{})
			}
			for _, n := range c.config.Plot.Notate {
				ds = append(ds, nodelink.NotateTo{Node: n.Node, Text: n.Text})
			}
			for _, spec := range notes {
				note, err := nodelink.ParseNote(spec)
				if err != nil {
					return err
				}
				ds = append(ds, note)
			}
			opts, err := nodelink.BuildOptions(ds)
			if err != nil {
				return errors.Wrap(errors.ErrCodePlotOption, err, "plot options")
			}

			g, err := pkgio.ImportJSON(args[0])
			if err != nil {
				return errors.Wrap(errors.ErrCodeInvalidFormat, err, "read graph %s", args[0])
			}
			loggerFromContext(cmd.Context()).Debug("loaded graph", "nodes", g.NodeCount(), "edges", g.EdgeCount())
			return c.plot(cmd, g, opts, args[0], &plot)
		},
	}

	cmd.Flags().StringVar(&highlight, "highlight", "", "highlight the edges from the root to NODE")
	cmd.Flags().StringArrayVar(&notes, "notate", nil, "append TEXT to the label of NODE, as NODE=TEXT (repeatable)")
	plot.register(cmd)
	return cmd
}
