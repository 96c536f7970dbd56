package render

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"strings"
)

// DotBinary is the Graphviz executable used by [DotCommand].
var DotBinary = "dot"

// OutputPath names the rendered file for src by replacing its extension
// with format: "out/graph.dot" becomes "out/graph.svg", and a name
// without extension gains one.
func OutputPath(src, format string) string {
	ext := filepath.Ext(src)
	return strings.TrimSuffix(src, ext) + "." + format
}

// DotCommand renders dot with an external Graphviz process,
// "dot -T<format> -o <out>", feeding the description on stdin.
//
// Stdin is closed before waiting so dot sees EOF and exits.
func DotCommand(ctx context.Context, dot, format, out string) error {
	bin, err := exec.LookPath(DotBinary)
	if err != nil {
		return fmt.Errorf("%s rendering requires graphviz. Install with:\n  macOS:  brew install graphviz\n  Linux:  apt install graphviz", format)
	}

	cmd := exec.CommandContext(ctx, bin, "-T"+format, "-o", out)
	var errBuf bytes.Buffer
	cmd.Stderr = &errBuf

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("dot stdin: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start dot: %w", err)
	}

	_, writeErr := io.WriteString(stdin, dot)
	closeErr := stdin.Close()

	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("dot: %v: %s", err, strings.TrimSpace(errBuf.String()))
	}
	if writeErr != nil {
		return fmt.Errorf("write to dot: %w", writeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("close dot stdin: %w", closeErr)
	}
	return nil
}
