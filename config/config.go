// Package config loads the generator configuration. Values come from the
// defaults, then an optional TOML file, then the environment; command line
// flags applied by the caller take precedence over all three.
//
//	design = "design/builders.yaml"
//	out = "."
//	root = "example.com/app"
//	format = "go"
//	lifecycle = "fresh"
package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"goa.design/goa-builder/codegen"
	"goa.design/goa-builder/codegen/ir"
	"goa.design/goa-builder/expr"
	"goa.design/goa-builder/telemetry"
)

// Environment variables overriding file values.
const (
	EnvOut    = "GOA_BUILDER_OUT"
	EnvFormat = "GOA_BUILDER_FORMAT"
)

// Config is the generator configuration.
type Config struct {
	// Design is the path of the YAML design.
	Design string
	// Out is the directory the files are written to.
	Out string
	// Root is the import path of Out.
	Root string
	// Format selects the back end.
	Format codegen.Format
	// Lifecycle applies to goals selecting neither Pooled nor Fresh.
	Lifecycle expr.Lifecycle
	// Debug enables debug logs.
	Debug bool
}

// config.toml key mapping.
type fileConfig struct {
	Design    string `toml:"design"`
	Out       string `toml:"out"`
	Root      string `toml:"root"`
	Format    string `toml:"format"`
	Lifecycle string `toml:"lifecycle"`
	Debug     bool   `toml:"debug"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Out:       ".",
		Format:    codegen.FormatGo,
		Lifecycle: expr.LifecycleFresh,
	}
}

// Load overlays the TOML file at path on the defaults. An empty path
// returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config: unknown key %q", undecoded[0].String())
	}
	if meta.IsDefined("design") {
		cfg.Design = strings.TrimSpace(raw.Design)
	}
	if meta.IsDefined("out") {
		cfg.Out = strings.TrimSpace(raw.Out)
	}
	if meta.IsDefined("root") {
		cfg.Root = strings.TrimSpace(raw.Root)
	}
	if meta.IsDefined("format") {
		if cfg.Format, err = codegen.ParseFormat(strings.TrimSpace(raw.Format)); err != nil {
			return Config{}, fmt.Errorf("load config: %w", err)
		}
	}
	if meta.IsDefined("lifecycle") {
		if cfg.Lifecycle, err = ParseLifecycle(raw.Lifecycle); err != nil {
			return Config{}, fmt.Errorf("load config: %w", err)
		}
	}
	if meta.IsDefined("debug") {
		cfg.Debug = raw.Debug
	}
	return cfg, nil
}

// ApplyEnv overrides cfg with the environment variables returned by
// lookup, typically os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvOut); ok && strings.TrimSpace(v) != "" {
		c.Out = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvFormat); ok && strings.TrimSpace(v) != "" {
		f, err := codegen.ParseFormat(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvFormat, err)
		}
		c.Format = f
	}
	return nil
}

// Validate checks that cfg can drive a generation run.
func (c *Config) Validate() error {
	if c.Design == "" {
		return fmt.Errorf("design path is required")
	}
	if c.Out == "" {
		return fmt.Errorf("output directory is required")
	}
	if _, err := codegen.ParseFormat(string(c.Format)); err != nil {
		return err
	}
	if _, err := ParseLifecycle(string(c.Lifecycle)); err != nil {
		return err
	}
	return nil
}

// Options returns the pipeline options derived from cfg.
func (c *Config) Options(tel *telemetry.Telemetry) codegen.Options {
	return codegen.Options{
		Root:      c.Root,
		Format:    c.Format,
		Defaults:  ir.Defaults{Lifecycle: c.Lifecycle},
		Telemetry: tel,
	}
}

// ParseLifecycle returns the lifecycle named s.
func ParseLifecycle(s string) (expr.Lifecycle, error) {
	switch l := expr.Lifecycle(strings.ToLower(strings.TrimSpace(s))); l {
	case expr.LifecycleFresh, expr.LifecyclePooled:
		return l, nil
	case "":
		return expr.LifecycleFresh, nil
	default:
		return "", fmt.Errorf("unknown lifecycle %q (want fresh or pooled)", s)
	}
}
