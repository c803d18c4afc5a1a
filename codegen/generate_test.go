package codegen_test

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	gcodegen "goa.design/goa/v3/codegen"

	"goa.design/goa-builder/codegen"
	"goa.design/goa-builder/codegen/golang"
	"goa.design/goa-builder/codegen/testhelpers"
	. "goa.design/goa-builder/dsl"
	"goa.design/goa-builder/telemetry"
)

const inv = "example.com/inventory"

func inventoryDesign() {
	Module("inventory", func() {
		Package("example.com/inventory/gen/builders")
		Goal("Item", func() {
			Constructor(PointerTo(Named(inv, "Item")))
			Param("sku", String, func() { FieldRead("SKU") })
			Param("count", Int, func() { FieldRead("Count") })
		})
		Goal("Restock", func() {
			TypeVar("T")
			InstanceMethod(PointerTo(Named(inv, "Store")), "Restock", nil)
			Param("item", Var("T"))
		})
	})
}

type recorder struct {
	mu       sync.Mutex
	counters map[string]float64
	timers   []string
	warnings []string
}

func newRecorder() *recorder { return &recorder{counters: map[string]float64{}} }

func (r *recorder) IncCounter(name string, value float64, _ ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counters[name] += value
}

func (r *recorder) RecordTimer(name string, _ time.Duration, _ ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.timers = append(r.timers, name)
}

func (r *recorder) Debug(context.Context, string, ...any) {}
func (r *recorder) Info(context.Context, string, ...any)  {}
func (r *recorder) Error(context.Context, string, ...any) {}

func (r *recorder) Warn(_ context.Context, msg string, _ ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.warnings = append(r.warnings, msg)
}

func TestRunGo(t *testing.T) {
	roots := testhelpers.RunDesign(t, inventoryDesign)
	rec := newRecorder()
	res, err := codegen.Run(context.Background(), roots, codegen.Options{
		Root:      "example.com/inventory",
		Telemetry: &telemetry.Telemetry{Logger: rec, Metrics: rec},
	})
	require.NoError(t, err)
	require.NotEmpty(t, res.RunID)
	require.Len(t, res.Modules, 1)

	require.True(t, testhelpers.FileExists(res.Files, filepath.Join("gen", "builders", "item_builder.go")))
	require.True(t, testhelpers.FileExists(res.Files, filepath.Join("gen", "builders", "item_updater.go")))
	require.False(t, testhelpers.FileExists(res.Files, filepath.Join("gen", "builders", "restock_builder.go")))
	require.False(t, testhelpers.FileExists(res.Files, filepath.Join("gen", "builders", "scope.go")))

	require.Len(t, res.Diagnostics, 1)
	require.Equal(t, "Restock", res.Diagnostics[0].Goal)
	require.True(t, errors.Is(res.Diagnostics[0], golang.ErrGenericMethod))

	require.Equal(t, float64(1), rec.counters[telemetry.MetricGoals])
	require.Equal(t, float64(1), rec.counters[telemetry.MetricDiagnostics])
	require.Equal(t, []string{telemetry.MetricDuration}, rec.timers)
	require.Equal(t, []string{"goal skipped"}, rec.warnings)
}

func TestRunDescriptor(t *testing.T) {
	for _, format := range []codegen.Format{codegen.FormatYAML, codegen.FormatJSON} {
		t.Run(string(format), func(t *testing.T) {
			roots := testhelpers.RunDesign(t, inventoryDesign)
			res, err := codegen.Run(context.Background(), roots, codegen.Options{
				Root:   "example.com/inventory",
				Format: format,
			})
			require.NoError(t, err)
			require.Len(t, res.Files, 1)
			want := filepath.Join("gen", "builders", "inventory.builders."+string(format))
			require.Equal(t, want, res.Files[0].Path)
			// The descriptor back end keeps generic instance methods.
			require.Empty(t, res.Diagnostics)
		})
	}
}

func TestRunUnknownFormat(t *testing.T) {
	roots := testhelpers.RunDesign(t, inventoryDesign)
	_, err := codegen.Run(context.Background(), roots, codegen.Options{Format: "xml"})
	require.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	f, err := codegen.ParseFormat("YAML")
	require.NoError(t, err)
	require.Equal(t, codegen.FormatYAML, f)
	f, err = codegen.ParseFormat("")
	require.NoError(t, err)
	require.Equal(t, codegen.FormatGo, f)
	_, err = codegen.ParseFormat("toml")
	require.Error(t, err)
}

func TestGeneratePlugin(t *testing.T) {
	roots := testhelpers.RunDesign(t, inventoryDesign)
	existing := &gcodegen.File{Path: filepath.Join("gen", "service.go")}
	files, err := codegen.Generate("example.com/inventory/gen", roots, []*gcodegen.File{existing})
	require.NoError(t, err)
	require.Same(t, existing, files[0])
	require.True(t, testhelpers.FileExists(files, filepath.Join("gen", "builders", "item_builder.go")))
}

func TestGeneratePluginWithoutModules(t *testing.T) {
	roots := testhelpers.RunDesign(t, func() {})
	files, err := codegen.Generate("example.com/empty/gen", roots, nil)
	require.NoError(t, err)
	require.Empty(t, files)
}
