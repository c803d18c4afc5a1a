// Command goa-builder generates staged builders, updaters and pool scopes
// from a YAML design.
//
//	goa-builder -design design/builders.yaml -root example.com/app -out .
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"goa.design/clue/log"
	"goa.design/goa/v3/eval"

	"goa.design/goa-builder/codegen"
	"goa.design/goa-builder/config"
	"goa.design/goa-builder/expr"
	"goa.design/goa-builder/loader"
	"goa.design/goa-builder/telemetry"
)

func main() {
	var (
		designF = flag.String("design", "", "Path to the YAML design (overrides config design)")
		outF    = flag.String("out", "", "Output directory (overrides config out)")
		rootF   = flag.String("root", "", "Import path of the output directory (overrides config root)")
		formatF = flag.String("format", "", "Back end: go, yaml or json (overrides config format)")
		configF = flag.String("config", "", "Path to a TOML configuration file")
		dbgF    = flag.Bool("debug", false, "Log debug messages")
	)
	flag.Parse()

	format := log.FormatJSON
	if log.IsTerminal() {
		format = log.FormatTerminal
	}
	ctx := log.Context(context.Background(), log.WithFormat(format))

	cfg, err := config.Load(*configF)
	if err != nil {
		fail(ctx, err)
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		fail(ctx, err)
	}
	if *designF != "" {
		cfg.Design = *designF
	}
	if *outF != "" {
		cfg.Out = *outF
	}
	if *rootF != "" {
		cfg.Root = *rootF
	}
	if *formatF != "" {
		if cfg.Format, err = codegen.ParseFormat(*formatF); err != nil {
			fail(ctx, err)
		}
	}
	cfg.Debug = cfg.Debug || *dbgF

	if cfg.Debug {
		ctx = log.Context(ctx, log.WithDebug())
		log.Debugf(ctx, "debug logs enabled")
	}

	if err := run(ctx, cfg); err != nil {
		fail(ctx, err)
	}
}

func run(ctx context.Context, cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	design, err := loader.Load(cfg.Design)
	if err != nil {
		return err
	}
	if !eval.Execute(design, nil) {
		return eval.Context.Errors
	}
	if err := eval.RunDSL(); err != nil {
		return err
	}

	res, err := codegen.Run(ctx, []eval.Root{expr.Root}, cfg.Options(telemetry.NewClue()))
	if err != nil {
		return err
	}
	for _, f := range res.Files {
		path, err := f.Render(cfg.Out)
		if err != nil {
			return fmt.Errorf("write %s: %w", f.Path, err)
		}
		log.Print(ctx, log.KV{K: "file", V: path})
	}
	log.Info(ctx,
		log.KV{K: "run", V: res.RunID},
		log.KV{K: "files", V: len(res.Files)},
		log.KV{K: "skipped", V: len(res.Diagnostics)})
	if len(res.Files) == 0 && len(res.Diagnostics) > 0 {
		return errors.New("no goal could be generated")
	}
	return nil
}

func fail(ctx context.Context, err error) {
	log.Error(ctx, err)
	os.Exit(1)
}
