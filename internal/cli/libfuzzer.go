package cli

import (
	stderrors "errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/K-atc/seed-tree-analyzer/pkg/chain"
	"github.com/K-atc/seed-tree-analyzer/pkg/errors"
	"github.com/K-atc/seed-tree-analyzer/pkg/parse/libfuzzer"
	"github.com/K-atc/seed-tree-analyzer/pkg/render/nodelink"
	"github.com/K-atc/seed-tree-analyzer/pkg/seedtree"
)

// libfuzzerCommand creates the libfuzzer command family. Every subcommand
// takes the mutation graph file first.
func (c *CLI) libfuzzerCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "libfuzzer",
		Short: "Analyze libFuzzer mutation graph files",
		Long: `Analyze the file written by libFuzzer's -mutation_graph_file flag. Node names
are the SHA-1 digests libFuzzer also uses as corpus file names.`,
	}

	cmd.AddCommand(c.libfuzzerParseCommand())
	cmd.AddCommand(c.libfuzzerPredCommand())
	cmd.AddCommand(c.libfuzzerChainCommand())
	cmd.AddCommand(c.libfuzzerLeavesCommand())
	cmd.AddCommand(c.libfuzzerRootsCommand())
	cmd.AddCommand(c.libfuzzerPlotCommand())

	return cmd
}

func (c *CLI) parseGraphFile(cmd *cobra.Command, path string) (*seedtree.Graph, error) {
	logger := loggerFromContext(cmd.Context())
	prog := newProgress(logger)
	g, err := libfuzzer.ParseFile(path, libfuzzer.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	prog.done(fmt.Sprintf("Parsed %d nodes, %d edges", g.NodeCount(), g.EdgeCount()))
	return g, nil
}

func (c *CLI) libfuzzerParseCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "parse FILE",
		Short: "Parse a mutation graph file and print it as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := c.parseGraphFile(cmd, args[0])
			if err != nil {
				return err
			}
			return writeGraph(cmd, g, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the JSON to FILE instead of stdout")
	return cmd
}

func (c *CLI) libfuzzerPredCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pred FILE SHA1",
		Short: "List the direct predecessors of a node",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := c.parseGraphFile(cmd, args[0])
			if err != nil {
				return err
			}
			node := args[1]
			parents, err := g.PredecessorsOf(node)
			if err != nil {
				return queryFailed(cmd, err, "failed to get predecessors of %s", node)
			}
			if len(parents) == 0 {
				printInfo(cmd.ErrOrStderr(), "%s has no predecessors", nodeLabel(node))
				return nil
			}
			printNames(cmd.OutOrStdout(), parents.Sorted())
			return nil
		},
	}
}

func (c *CLI) libfuzzerChainCommand() *cobra.Command {
	var existsIn, diffIn string

	cmd := &cobra.Command{
		Use:   "chain FILE SHA1",
		Short: "List a node and its ancestors, child first",
		Long: `List a node and its ancestors, child first.

With --exists-in DIR only ancestors whose file DIR/<sha1> exists are listed.
With --diff DIR the byte changes between consecutive existing ancestors are
printed instead.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if existsIn != "" && diffIn != "" {
				return errors.New(errors.ErrCodeInvalidInput, "--exists-in and --diff are mutually exclusive")
			}
			node := args[1]
			if err := errors.ValidateNodeName(node); err != nil {
				return err
			}
			g, err := c.parseGraphFile(cmd, args[0])
			if err != nil {
				return err
			}
			return runChain(cmd, g, node, existsIn, diffIn)
		},
	}

	cmd.Flags().StringVar(&existsIn, "exists-in", "", "only list ancestors that have a file in DIR")
	cmd.Flags().StringVar(&diffIn, "diff", "", "diff consecutive ancestors that have a file in DIR")
	return cmd
}

func runChain(cmd *cobra.Command, g *seedtree.Graph, node, existsIn, diffIn string) error {
	logger := loggerFromContext(cmd.Context())
	out := cmd.OutOrStdout()

	switch {
	case diffIn != "":
		logger.Debug("diffing lineage", "node", node, "dir", diffIn)
		err := chain.Diff(g, node, diffIn, out)
		if stderrors.Is(err, chain.ErrTooFewSeeds) || stderrors.Is(err, seedtree.ErrNodeNotExists) {
			return queryFailed(cmd, err, "cannot diff predecessors of %s", node)
		}
		return err

	case existsIn != "":
		logger.Debug("filtering lineage", "node", node, "dir", existsIn)
		seeds, err := chain.Existing(g, node, existsIn)
		if stderrors.Is(err, seedtree.ErrNodeNotExists) {
			return queryFailed(cmd, err, "failed to get predecessors of %s", node)
		}
		if err != nil {
			return err
		}
		if len(seeds) < 2 {
			printWarning(cmd.ErrOrStderr(), "fewer than two predecessors of %s exist in %s", node, existsIn)
			return nil
		}
		printNames(out, seeds)
		return nil
	}

	lineage, err := g.SelfAndItsPredecessorsOf(node)
	if err != nil {
		return queryFailed(cmd, err, "failed to get predecessors of %s", node)
	}
	printNames(out, lineage)
	return nil
}

func (c *CLI) libfuzzerLeavesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "leaves FILE",
		Short: "List nodes without children, sorted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := c.parseGraphFile(cmd, args[0])
			if err != nil {
				return err
			}
			printNames(cmd.OutOrStdout(), g.Leaves().Sorted())
			return nil
		},
	}
}

func (c *CLI) libfuzzerRootsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "roots FILE",
		Short: "List nodes without a parent, sorted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := c.parseGraphFile(cmd, args[0])
			if err != nil {
				return err
			}
			printNames(cmd.OutOrStdout(), g.Roots().Sorted())
			return nil
		},
	}
}

func (c *CLI) libfuzzerPlotCommand() *cobra.Command {
	var plot plotFlags

	cmd := &cobra.Command{
		Use:   "plot FILE [SHA1]",
		Short: "Render the mutation graph next to FILE",
		Long: `Render the mutation graph with Graphviz. One file per format is written next to
FILE, replacing its extension. When SHA1 is given, the edges from its root are
highlighted.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var ds []nodelink.Directive
			if len(args) == 2 {
				ds = append(ds, nodelink.HighlightEdgesFromRootTo{Node: args[1]})
			}
			for _, n := range c.config.Plot.Notate {
				ds = append(ds, nodelink.NotateTo{Node: n.Node, Text: n.Text})
			}
			opts, err := nodelink.BuildOptions(ds)
			if err != nil {
				return errors.Wrap(errors.ErrCodePlotOption, err, "plot options")
			}

			g, err := c.parseGraphFile(cmd, args[0])
			if err != nil {
				return err
			}
			return c.plot(cmd, g, opts, args[0], &plot)
		},
	}

	plot.register(cmd)
	return cmd
}
