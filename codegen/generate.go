// Package codegen runs the builder generator: it converts the evaluated
// design into the IR, synthesizes the contract descriptors of every module
// and renders them with the selected back end.
package codegen

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/codes"
	"goa.design/clue/log"
	"goa.design/goa/v3/codegen"
	"goa.design/goa/v3/eval"

	"goa.design/goa-builder/codegen/contract"
	"goa.design/goa-builder/codegen/descriptor"
	"goa.design/goa-builder/codegen/golang"
	"goa.design/goa-builder/codegen/ir"
	"goa.design/goa-builder/expr"
	"goa.design/goa-builder/telemetry"
)

// Format selects the back end.
type Format string

const (
	// FormatGo renders Go source files.
	FormatGo Format = "go"
	// FormatYAML renders one YAML descriptor document per module.
	FormatYAML Format = "yaml"
	// FormatJSON renders one JSON descriptor document per module.
	FormatJSON Format = "json"
)

type (
	// Options configures Run.
	Options struct {
		// Root is the import path of the output directory. Module files
		// are written under the path of their package relative to Root.
		Root string
		// Format selects the back end, FormatGo by default.
		Format Format
		// Defaults holds the values applied to goals leaving a setting
		// open.
		Defaults ir.Defaults
		// Telemetry receives logs, metrics and spans. Nil discards them.
		Telemetry *telemetry.Telemetry
	}

	// Result is the outcome of a generation run.
	Result struct {
		// RunID identifies the run in logs and spans.
		RunID string
		// Files lists the generated files.
		Files []*codegen.File
		// Modules lists the synthesized modules, sorted by name.
		Modules []*contract.Module
		// Diagnostics lists the goals left out, across modules.
		Diagnostics []*contract.Diagnostic
	}
)

// ParseFormat returns the format named s.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatGo, FormatYAML, FormatJSON:
		return f, nil
	case "":
		return FormatGo, nil
	default:
		return "", fmt.Errorf("unknown format %q (want go, yaml or json)", s)
	}
}

// Run generates the files of every module declared in roots. Goals that
// cannot be generated are reported in the result diagnostics and never
// abort the run.
func Run(ctx context.Context, roots []eval.Root, opts Options) (*Result, error) {
	tel := opts.Telemetry.OrNoop()
	if opts.Format == "" {
		opts.Format = FormatGo
	}
	res := &Result{RunID: uuid.NewString()}
	ctx, span := tel.Tracer.Start(ctx, "goa_builder.generate")
	defer span.End()
	start := time.Now()

	design, err := ir.Build(roots, opts.Defaults)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	for _, m := range design.Modules {
		files, mod, diags, err := generateModule(m, opts)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		res.Files = append(res.Files, files...)
		res.Modules = append(res.Modules, mod)
		res.Diagnostics = append(res.Diagnostics, diags...)

		generated := len(mod.Goals) - countGoals(diags, mod)
		tel.Metrics.IncCounter(telemetry.MetricGoals, float64(generated), "module", m.Name)
		tel.Metrics.IncCounter(telemetry.MetricDiagnostics, float64(len(diags)), "module", m.Name)
		span.AddEvent("module", "name", m.Name, "goals", generated, "diagnostics", len(diags))
		tel.Logger.Debug(ctx, "generated module", "run", res.RunID, "module", m.Name, "goals", generated, "files", len(files))
		for _, d := range diags {
			tel.Logger.Warn(ctx, "goal skipped", "run", res.RunID, "module", m.Name, "goal", d.Goal, "err", d.Err.Error())
		}
	}
	tel.Metrics.RecordTimer(telemetry.MetricDuration, time.Since(start), "format", string(opts.Format))
	span.SetStatus(codes.Ok, "")
	return res, nil
}

func generateModule(m *ir.Module, opts Options) ([]*codegen.File, *contract.Module, []*contract.Diagnostic, error) {
	mod := contract.Generate(m)
	diags := mod.Diagnostics
	switch opts.Format {
	case FormatGo:
		files, goDiags := golang.Files(mod, opts.Root)
		return files, mod, append(diags, goDiags...), nil
	case FormatYAML, FormatJSON:
		f, err := descriptor.File(mod, golang.Dir(mod, opts.Root), descriptor.Format(opts.Format))
		if err != nil {
			return nil, nil, nil, err
		}
		return []*codegen.File{f}, mod, diags, nil
	default:
		return nil, nil, nil, fmt.Errorf("unknown format %q", opts.Format)
	}
}

// countGoals returns the number of diagnostics reported by a back end for
// goals synthesized in mod.
func countGoals(diags []*contract.Diagnostic, mod *contract.Module) int {
	n := 0
	for _, d := range diags {
		for _, g := range mod.Goals {
			if g.Name == d.Goal {
				n++
				break
			}
		}
	}
	return n
}

// Generate is the goa plugin entry point. It appends the builder files of
// the modules declared in the design to files. genpkg is the import path of
// the goa gen package; builder packages are laid out relative to its parent.
func Generate(genpkg string, roots []eval.Root, files []*codegen.File) ([]*codegen.File, error) {
	if !declaresModules(roots) {
		return files, nil
	}
	ctx := log.Context(context.Background(), log.WithFormat(log.FormatTerminal))
	res, err := Run(ctx, roots, Options{
		Root:      strings.TrimSuffix(genpkg, "/"+codegen.Gendir),
		Telemetry: telemetry.NewClue(),
	})
	if err != nil {
		return nil, err
	}
	return append(files, res.Files...), nil
}

func declaresModules(roots []eval.Root) bool {
	for _, r := range roots {
		if br, ok := r.(*expr.RootExpr); ok && len(br.Modules) > 0 {
			return true
		}
	}
	return false
}
