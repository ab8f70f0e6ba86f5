package gen

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loomgen/loom/emit"
	"github.com/loomgen/loom/errors"
	"github.com/loomgen/loom/host"
	"github.com/loomgen/loom/meta"
)

// markerGen emits one empty class per declaration annotated with Marker.
type markerGen struct{}

func (markerGen) Name() string { return "marker" }

func (markerGen) Generate(_ context.Context, unit *host.Unit) ([]emit.Renderable, error) {
	return ForEachAnnotated(unit, "marker", "Marker",
		func(decl *host.Declaration, view meta.Value) ([]emit.Renderable, error) {
			if _, err := meta.StringField(view, "label"); err != nil {
				return nil, err
			}
			cls, err := emit.NewClass(emit.Class{Name: "_$" + decl.Name})
			if err != nil {
				return nil, err
			}
			return []emit.Renderable{cls}, nil
		})
}

func annotated(name, label string) host.Declaration {
	return host.Declaration{
		Kind: host.KindClass,
		Name: name,
		Annotations: []host.Annotation{{
			Name:  "Marker",
			Value: meta.Object(map[string]meta.Value{"label": meta.String(label)}),
		}},
	}
}

func TestRunnerWritesDerivedOutputs(t *testing.T) {
	writer := &MemWriter{}
	runner, err := NewRunner([]Generator{markerGen{}}, writer)
	require.NoError(t, err)

	units := []*host.Unit{
		{Path: "lib/a.dart", Decls: []host.Declaration{annotated("A", "x")}},
		{Path: "lib/b.dart", Decls: []host.Declaration{annotated("B", "y")}},
	}

	report, err := runner.Run(context.Background(), units)
	require.NoError(t, err)
	assert.True(t, report.OK())
	assert.Equal(t, []string{"lib/a.marker.g.dart", "lib/b.marker.g.dart"}, report.Written)
	assert.Empty(t, report.Skipped)

	data, ok := writer.File("lib/a.marker.g.dart")
	require.True(t, ok)
	text := string(data)
	assert.True(t, strings.HasPrefix(text, emit.GeneratedHeader))
	assert.Contains(t, text, "part of 'a.dart';")
	assert.Contains(t, text, "class _$A {}")

	// The marker precedes every generated node.
	assert.Less(t, strings.Index(text, "part of"), strings.Index(text, "class _$A"))
}

func TestRunnerSkipsUnannotatedUnits(t *testing.T) {
	writer := &MemWriter{}
	runner, err := NewRunner([]Generator{markerGen{}}, writer)
	require.NoError(t, err)

	units := []*host.Unit{
		{Path: "lib/plain.dart", Decls: []host.Declaration{{Kind: host.KindClass, Name: "Plain"}}},
	}

	report, err := runner.Run(context.Background(), units)
	require.NoError(t, err)
	assert.Equal(t, []string{"lib/plain.dart"}, report.Skipped)
	assert.Empty(t, writer.Paths())
}

func TestRunnerIsolatesDeclarationFailures(t *testing.T) {
	writer := &MemWriter{}
	runner, err := NewRunner([]Generator{markerGen{}}, writer)
	require.NoError(t, err)

	bad := host.Declaration{
		Kind: host.KindClass,
		Name: "Broken",
		Annotations: []host.Annotation{{
			Name:  "Marker",
			Value: meta.Object(map[string]meta.Value{}), // label missing
		}},
	}
	units := []*host.Unit{
		{Path: "lib/mixed.dart", Decls: []host.Declaration{bad, annotated("Good", "ok")}},
	}

	report, err := runner.Run(context.Background(), units)
	require.NoError(t, err)

	// The good declaration still generated.
	data, ok := writer.File("lib/mixed.marker.g.dart")
	require.True(t, ok)
	assert.Contains(t, string(data), "class _$Good {}")

	// The bad one is attributed precisely.
	require.Len(t, report.Errors, 1)
	var declErr *DeclError
	require.True(t, errors.As(report.Errors[0], &declErr))
	assert.Equal(t, "Broken", declErr.Decl)
	assert.Equal(t, "lib/mixed.dart", declErr.Unit)

	var missing *meta.MissingFieldError
	assert.True(t, errors.As(declErr, &missing))
}

func TestRunnerCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner, err := NewRunner([]Generator{markerGen{}}, &MemWriter{})
	require.NoError(t, err)

	_, err = runner.Run(ctx, []*host.Unit{{Path: "lib/a.dart"}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewRunnerRejectsDuplicateGenerators(t *testing.T) {
	_, err := NewRunner([]Generator{markerGen{}, markerGen{}}, &MemWriter{})
	assert.Error(t, err)
}
