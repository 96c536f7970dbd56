package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/K-atc/seed-tree-analyzer/pkg/errors"
	"github.com/K-atc/seed-tree-analyzer/pkg/parse/afl"
	"github.com/K-atc/seed-tree-analyzer/pkg/render/nodelink"
	"github.com/K-atc/seed-tree-analyzer/pkg/seedtree"
)

// aflOpts holds the flags shared by all afl subcommands.
type aflOpts struct {
	aurora         bool     // parse aurora file names
	crashes        string   // explicit crash-input directory
	highlight      string   // node whose root path is highlighted
	blue           []string // PARENT:CHILD:LABEL edges drawn blue
	red            []string // PARENT:CHILD:LABEL edges drawn red
	green          []string // PARENT:CHILD:LABEL edges drawn green
	crashHighlight bool     // fill crash inputs
	notate         []string // NODE=TEXT label notes
}

// aflCommand creates the afl command family. Every subcommand takes one
// or more output directories and parses them before answering.
func (c *CLI) aflCommand() *cobra.Command {
	var opts aflOpts

	cmd := &cobra.Command{
		Use:   "afl",
		Short: "Analyze AFL-style output directories",
		Long: `Analyze AFL, AFL++ and aurora output directories. The parent of every seed is
read from its file name (id:000002,src:000000,op:havoc,...).`,
	}

	pf := cmd.PersistentFlags()
	pf.BoolVar(&opts.aurora, "aurora", false, "parse aurora file names (op:<name>_<non-crash-id>)")
	pf.StringVar(&opts.crashes, "crashes", "", "crash-input directory (default: any directory named \"crashes\")")
	pf.StringVar(&opts.highlight, "highlight", "", "highlight the edges from the root to NODE")
	pf.StringArrayVar(&opts.blue, "blue", nil, "draw edge PARENT:CHILD:LABEL in blue (repeatable)")
	pf.StringArrayVar(&opts.red, "red", nil, "draw edge PARENT:CHILD:LABEL in red (repeatable)")
	pf.StringArrayVar(&opts.green, "green", nil, "draw edge PARENT:CHILD:LABEL in green (repeatable)")
	pf.BoolVar(&opts.crashHighlight, "crash-highlight", false, "fill crash inputs")
	pf.StringArrayVar(&opts.notate, "notate", nil, "append TEXT to the label of NODE, as NODE=TEXT (repeatable)")

	cmd.AddCommand(c.aflParseCommand(&opts))
	cmd.AddCommand(c.aflLeavesCommand(&opts))
	cmd.AddCommand(c.aflRootsCommand(&opts))
	cmd.AddCommand(c.aflPredCommand(&opts))
	cmd.AddCommand(c.aflFilterCommand(&opts))
	cmd.AddCommand(c.aflPlotCommand(&opts))
	cmd.AddCommand(c.aflBrowseCommand(&opts))

	return cmd
}

// extensions merges flags over the config file.
func (c *CLI) extensions(cmd *cobra.Command, opts *aflOpts) afl.Extensions {
	ext := afl.Extensions{
		Aurora:         c.config.AFL.Aurora,
		CrashInputsDir: c.config.AFL.CrashInputsDir,
	}
	if cmd.Flags().Changed("aurora") {
		ext.Aurora = opts.aurora
	}
	if cmd.Flags().Changed("crashes") {
		ext.CrashInputsDir = opts.crashes
	}
	return ext
}

// parseDirs parses the given directories into one graph.
func (c *CLI) parseDirs(cmd *cobra.Command, opts *aflOpts, dirs []string) (*seedtree.Graph, error) {
	logger := loggerFromContext(cmd.Context())
	ext := c.extensions(cmd, opts)
	logger.Debug("parsing directories", "dirs", dirs, "aurora", ext.Aurora, "crashes", ext.CrashInputsDir)

	prog := newProgress(logger)
	g, err := afl.ParseDirectories(dirs, ext, afl.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	prog.done(fmt.Sprintf("Parsed %d seeds", g.NodeCount()))
	return g, nil
}

// directives turns the highlight flags and config into plot directives.
func (c *CLI) directives(cmd *cobra.Command, opts *aflOpts) ([]nodelink.Directive, error) {
	var ds []nodelink.Directive

	if opts.highlight != "" {
		ds = append(ds, nodelink.HighlightEdgesFromRootTo{Node: opts.highlight})
	}

	colors := []struct {
		specs []string
		wrap  func(seedtree.Edge) nodelink.Directive
	}{
		{opts.blue, func(e seedtree.Edge) nodelink.Directive { return nodelink.HighlightEdgeWithBlue{Edge: e} }},
		{opts.red, func(e seedtree.Edge) nodelink.Directive { return nodelink.HighlightEdgeWithRed{Edge: e} }},
		{opts.green, func(e seedtree.Edge) nodelink.Directive { return nodelink.HighlightEdgeWithGreen{Edge: e} }},
	}
	for _, color := range colors {
		for _, spec := range color.specs {
			e, err := nodelink.ParseEdge(spec)
			if err != nil {
				return nil, err
			}
			ds = append(ds, color.wrap(e))
		}
	}

	crashHighlight := c.config.Plot.HighlightCrashInput
	if cmd.Flags().Changed("crash-highlight") {
		crashHighlight = opts.crashHighlight
	}
	if crashHighlight {
		ds = append(ds, nodelink.HighlightCrashInput{})
	}

	// Notes from the config file come first so flag notes end up last.
	for _, n := range c.config.Plot.Notate {
		ds = append(ds, nodelink.NotateTo{Node: n.Node, Text: n.Text})
	}
	for _, spec := range opts.notate {
		note, err := nodelink.ParseNote(spec)
		if err != nil {
			return nil, err
		}
		ds = append(ds, note)
	}
	return ds, nil
}

func (c *CLI) plotOptions(cmd *cobra.Command, opts *aflOpts) (nodelink.Options, error) {
	ds, err := c.directives(cmd, opts)
	if err != nil {
		return nodelink.Options{}, err
	}
	plotOpts, err := nodelink.BuildOptions(ds)
	if err != nil {
		return nodelink.Options{}, errors.Wrap(errors.ErrCodePlotOption, err, "plot options")
	}
	return plotOpts, nil
}

func (c *CLI) aflParseCommand(opts *aflOpts) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "parse DIR...",
		Short: "Parse directories and print the graph as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := c.parseDirs(cmd, opts, args)
			if err != nil {
				return err
			}
			return writeGraph(cmd, g, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the JSON to FILE instead of stdout")
	return cmd
}

func (c *CLI) aflLeavesCommand(opts *aflOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "leaves DIR...",
		Short: "List seeds without children, sorted",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := c.parseDirs(cmd, opts, args)
			if err != nil {
				return err
			}
			printNames(cmd.OutOrStdout(), g.Leaves().Sorted())
			return nil
		},
	}
}

func (c *CLI) aflRootsCommand(opts *aflOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "roots DIR...",
		Short: "List seeds without a parent, sorted",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := c.parseDirs(cmd, opts, args)
			if err != nil {
				return err
			}
			printNames(cmd.OutOrStdout(), g.Roots().Sorted())
			return nil
		},
	}
}

func (c *CLI) aflPredCommand(opts *aflOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "pred NODE DIR...",
		Short: "List NODE and its ancestors, child first",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			node := args[0]
			g, err := c.parseDirs(cmd, opts, args[1:])
			if err != nil {
				return err
			}
			chain, err := g.SelfAndItsPredecessorsOf(node)
			if err != nil {
				return queryFailed(cmd, err, "failed to get predecessors of %s", node)
			}
			printNames(cmd.OutOrStdout(), chain)
			return nil
		},
	}
}

func (c *CLI) aflFilterCommand(opts *aflOpts) *cobra.Command {
	var (
		pred   string
		leaves bool
	)

	cmd := &cobra.Command{
		Use:   "filter DIR...",
		Short: "Print the sub-graph around one seed as DOT",
		Long: `Print the sub-graph made of --pred NODE and its ancestors as Graphviz DOT.
With --leaves, leaf seeds directly below one of those ancestors are included too.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plotOpts, err := c.plotOptions(cmd, opts)
			if err != nil {
				return err
			}
			g, err := c.parseDirs(cmd, opts, args)
			if err != nil {
				return err
			}
			sub, err := seedtree.Filter(g, pred, leaves)
			if err != nil {
				return queryFailed(cmd, err, "failed to filter seed tree")
			}
			dot, err := nodelink.ToDOT(sub, plotOpts)
			if err != nil {
				return queryFailed(cmd, err, "failed to convert to DOT")
			}
			fmt.Fprint(cmd.OutOrStdout(), dot)
			return nil
		},
	}

	cmd.Flags().StringVar(&pred, "pred", "", "keep NODE and its ancestors")
	cmd.Flags().BoolVar(&leaves, "leaves", false, "also keep leaves directly below the ancestors")
	return cmd
}

func (c *CLI) aflPlotCommand(opts *aflOpts) *cobra.Command {
	var (
		output string
		plot   plotFlags
	)

	cmd := &cobra.Command{
		Use:   "plot DIR...",
		Short: "Render the seed tree with Graphviz",
		Long: `Render the seed tree with Graphviz. One file per format is written next to
--output, replacing its extension (graph.dot -> graph.svg, graph.png).`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plotOpts, err := c.plotOptions(cmd, opts)
			if err != nil {
				return err
			}
			g, err := c.parseDirs(cmd, opts, args)
			if err != nil {
				return err
			}
			return c.plot(cmd, g, plotOpts, output, &plot)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file; its extension is replaced per format")
	_ = cmd.MarkFlagRequired("output")
	plot.register(cmd)
	return cmd
}

func (c *CLI) aflBrowseCommand(opts *aflOpts) *cobra.Command {
	var crashesOnly bool

	cmd := &cobra.Command{
		Use:   "browse DIR...",
		Short: "Pick a seed interactively and print its lineage",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := c.parseDirs(cmd, opts, args)
			if err != nil {
				return err
			}
			rows := seedRows(g, crashesOnly)
			if len(rows) == 0 {
				printWarning(cmd.ErrOrStderr(), "no seeds to browse")
				return nil
			}

			p := tea.NewProgram(NewSeedListModel(rows),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.ErrOrStderr()),
			)
			finalModel, err := p.Run()
			if err != nil {
				return err
			}

			fm, ok := finalModel.(SeedListModel)
			if !ok || fm.Selected == nil {
				printInfo(cmd.ErrOrStderr(), "No selection made")
				return nil
			}
			lineage, err := g.SelfAndItsPredecessorsOf(fm.Selected.Name)
			if err != nil {
				return queryFailed(cmd, err, "failed to get predecessors of %s", fm.Selected.Name)
			}
			printNames(cmd.OutOrStdout(), lineage)
			return nil
		},
	}

	cmd.Flags().BoolVar(&crashesOnly, "crashes-only", false, "list crash inputs only")
	return cmd
}
