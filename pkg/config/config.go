package config

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/K-atc/seed-tree-analyzer/pkg/errors"
)

// Renderer names accepted in [PlotConfig.Renderer].
const (
	RendererGraphviz = "graphviz" // in process, via go-graphviz
	RendererDot      = "dot"      // external dot executable
)

// Formats lists the output formats a plot can produce.
var Formats = []string{"svg", "png", "pdf"}

// Config holds defaults for command flags.
type Config struct {
	AFL  AFLConfig  `toml:"afl"`
	Plot PlotConfig `toml:"plot"`
}

// AFLConfig configures directory parsing.
type AFLConfig struct {
	Aurora         bool   `toml:"aurora"`
	CrashInputsDir string `toml:"crash_inputs_dir"`
}

// PlotConfig configures rendering.
type PlotConfig struct {
	HighlightCrashInput bool     `toml:"highlight_crash_input"`
	Formats             []string `toml:"formats"`
	Renderer            string   `toml:"renderer"`
	Notate              []Note   `toml:"notate"`
}

// Note attaches text to a node label.
type Note struct {
	Node string `toml:"node"`
	Text string `toml:"text"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Plot: PlotConfig{
			Formats:  []string{"svg", "png"},
			Renderer: RendererGraphviz,
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/seedtree/config.toml, falling back
// to the platform user config directory. It returns "" when neither is
// known.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		var err error
		if dir, err = os.UserConfigDir(); err != nil {
			return ""
		}
	}
	return filepath.Join(dir, "seedtree", "config.toml")
}

// Load reads the TOML file at path on top of [Default]. An empty path
// means [DefaultPath], which may be absent; an explicit path must exist.
// Unknown keys are rejected so typos do not pass silently.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
		if path == "" {
			return cfg, nil
		}
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && stderrors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		if stderrors.Is(err, fs.ErrNotExist) {
			return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidFormat, "unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks formats, renderer and note targets.
func (c Config) Validate() error {
	if err := errors.ValidateFormats(c.Plot.Formats, Formats); err != nil {
		return err
	}
	if !slices.Contains([]string{RendererGraphviz, RendererDot}, c.Plot.Renderer) {
		return errors.New(errors.ErrCodeInvalidInput, "unknown renderer %q (available: %s, %s)", c.Plot.Renderer, RendererGraphviz, RendererDot)
	}
	for _, n := range c.Plot.Notate {
		if err := errors.ValidateNodeName(n.Node); err != nil {
			return err
		}
	}
	return nil
}
