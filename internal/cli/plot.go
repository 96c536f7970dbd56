package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/K-atc/seed-tree-analyzer/pkg/config"
	"github.com/K-atc/seed-tree-analyzer/pkg/errors"
	pkgio "github.com/K-atc/seed-tree-analyzer/pkg/io"
	"github.com/K-atc/seed-tree-analyzer/pkg/render"
	"github.com/K-atc/seed-tree-analyzer/pkg/render/nodelink"
	"github.com/K-atc/seed-tree-analyzer/pkg/seedtree"
)

// plotFlags holds the output flags of the plot commands.
type plotFlags struct {
	formats  string // comma-separated, empty means config
	renderer string // "graphviz" or "dot", empty means config
	keepDOT  bool   // also write the DOT source
}

func (p *plotFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&p.formats, "format", "f", "", "output format(s): "+strings.Join(config.Formats, ", ")+" (comma-separated, default svg,png)")
	cmd.Flags().StringVar(&p.renderer, "renderer", "", "renderer: graphviz (built in, default) or dot (external executable)")
	cmd.Flags().BoolVar(&p.keepDOT, "dot", false, "also write the DOT source next to the rendered files")
}

// resolve merges the flags over the config file.
func (p *plotFlags) resolve(cfg config.Config) (formats []string, renderer string, err error) {
	formats = cfg.Plot.Formats
	if p.formats != "" {
		formats = parseFormats(p.formats)
	}
	renderer = cfg.Plot.Renderer
	if p.renderer != "" {
		renderer = p.renderer
	}

	merged := cfg
	merged.Plot.Formats = formats
	merged.Plot.Renderer = renderer
	if err := merged.Validate(); err != nil {
		return nil, "", err
	}
	return formats, renderer, nil
}

// parseFormats splits a comma-separated format list.
func parseFormats(s string) []string {
	var formats []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			formats = append(formats, f)
		}
	}
	return formats
}

// plot renders g once per format next to base.
func (c *CLI) plot(cmd *cobra.Command, g *seedtree.Graph, opts nodelink.Options, base string, flags *plotFlags) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	formats, renderer, err := flags.resolve(c.config)
	if err != nil {
		return err
	}

	dot, err := nodelink.ToDOT(g, opts)
	if err != nil {
		return queryFailed(cmd, err, "failed to generate DOT")
	}

	var written []string
	if flags.keepDOT {
		path := render.OutputPath(base, "dot")
		if err := os.WriteFile(path, []byte(dot), 0o644); err != nil {
			return errors.Wrap(errors.ErrCodeIO, err, "write %s", path)
		}
		written = append(written, path)
	}

	for _, format := range formats {
		path := render.OutputPath(base, format)
		logger.Debug("rendering", "format", format, "renderer", renderer, "path", path)

		prog := newProgress(logger)
		if err := renderTo(ctx, dot, format, renderer, path); err != nil {
			return errors.Wrap(errors.ErrCodeRender, err, "render %s", path)
		}
		prog.done("Rendered " + path)
		written = append(written, path)
	}

	w := cmd.ErrOrStderr()
	printSuccess(w, "Plotted %s", base)
	printStats(w, g.NodeCount(), g.EdgeCount(), countCrashes(g))
	for _, path := range written {
		printFile(w, path)
	}
	return nil
}

func renderTo(ctx context.Context, dot, format, renderer, path string) error {
	if renderer == config.RendererDot {
		return render.DotCommand(ctx, dot, format, path)
	}

	var (
		data []byte
		err  error
	)
	switch format {
	case "svg":
		data, err = nodelink.RenderSVG(ctx, dot)
	case "png":
		data, err = nodelink.RenderPNG(ctx, dot)
	case "pdf":
		data, err = nodelink.RenderPDF(ctx, dot)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func countCrashes(g *seedtree.Graph) int {
	n := 0
	for _, node := range g.Nodes() {
		if node.Crashed {
			n++
		}
	}
	return n
}

// writeGraph prints g as JSON on stdout, or saves it to output.
func writeGraph(cmd *cobra.Command, g *seedtree.Graph, output string) error {
	if output == "" {
		return pkgio.WriteJSON(g, cmd.OutOrStdout())
	}
	if err := pkgio.ExportJSON(g, output); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", output)
	}
	printFile(cmd.ErrOrStderr(), output)
	return nil
}

func printNames(w io.Writer, names []string) {
	for _, name := range names {
		fmt.Fprintln(w, name)
	}
}

// queryFailed reports a failed graph query. The command ends without
// an error status; only parse and render failures are fatal.
func queryFailed(cmd *cobra.Command, err error, format string, args ...any) error {
	printError(cmd.ErrOrStderr(), "%s: %v", fmt.Sprintf(format, args...), errors.UserMessage(err))
	return nil
}
