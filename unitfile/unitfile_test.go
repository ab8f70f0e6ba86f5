package unitfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loomgen/loom/host"
	"github.com/loomgen/loom/meta"
)

const addressDoc = `
unit: lib/address.dart
declarations:
  - kind: class
    name: Address
    annotations:
      - name: DataClass
        value:
          constConstructor: true
          generateCopyWith: true
    fields:
      - name: street
        type: String
      - name: city
        type: String
      - name: zipCode
        type: int
        nullable: true
`

func TestParseAddress(t *testing.T) {
	unit, err := Parse([]byte(addressDoc), "address.yaml")
	require.NoError(t, err)

	assert.Equal(t, "lib/address.dart", unit.Path)
	require.Len(t, unit.Decls, 1)

	decl := unit.Decls[0]
	assert.Equal(t, host.KindClass, decl.Kind)
	assert.Equal(t, "Address", decl.Name)
	require.Len(t, decl.Fields, 3)
	assert.Equal(t, host.Field{Name: "zipCode", Type: "int", Nullable: true}, decl.Fields[2])

	view, ok := decl.Annotation("DataClass")
	require.True(t, ok)
	constCtor, err := meta.BoolField(view, "constConstructor")
	require.NoError(t, err)
	assert.True(t, constCtor)
}

func TestParseConstantShapes(t *testing.T) {
	doc := `
unit: lib/report.dart
declarations:
  - kind: class
    name: Report
    annotations:
      - name: OverrideReport
        value:
          duplicates: 3
          threshold: 0.5
          format: {$enum: ReportFormat.concise}
          extra: null
          signatures:
            - {name: a, isApproved: true}
            - {name: b, isApproved: false}
          labels: {$map: {x: 1, y: 2}}
`
	unit, err := Parse([]byte(doc), "report.yaml")
	require.NoError(t, err)

	view, ok := unit.Decls[0].Annotation("OverrideReport")
	require.True(t, ok)

	duplicates, err := meta.IntField(view, "duplicates")
	require.NoError(t, err)
	assert.Equal(t, int64(3), duplicates)

	threshold, err := meta.DoubleField(view, "threshold")
	require.NoError(t, err)
	assert.Equal(t, 0.5, threshold)

	format, err := view.Field("format")
	require.NoError(t, err)
	member, err := format.EnumMember()
	require.NoError(t, err)
	assert.Equal(t, "concise", member)

	extra, err := view.Field("extra")
	require.NoError(t, err)
	assert.True(t, extra.IsNull())

	sigs, err := view.Field("signatures")
	require.NoError(t, err)
	seq, err := sigs.Sequence()
	require.NoError(t, err)
	require.Len(t, seq, 2)
	name, err := meta.StringField(seq[0], "name")
	require.NoError(t, err)
	assert.Equal(t, "a", name)

	labels, err := view.Field("labels")
	require.NoError(t, err)
	entries, err := labels.Mapping()
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	x, err := entries["x"].IntVal()
	require.NoError(t, err)
	assert.Equal(t, int64(1), x)
}

func TestParseAnnotationWithoutValue(t *testing.T) {
	doc := `
unit: lib/tagged.dart
declarations:
  - kind: mixin
    name: Tagged
    annotations:
      - name: Sealed
`
	unit, err := Parse([]byte(doc), "tagged.yaml")
	require.NoError(t, err)

	view, ok := unit.Decls[0].Annotation("Sealed")
	require.True(t, ok)
	assert.Equal(t, meta.KindObject, view.Kind())
}

func TestParseRejectsUnknownKind(t *testing.T) {
	doc := `
unit: lib/x.dart
declarations:
  - kind: struct
    name: X
`
	_, err := Parse([]byte(doc), "x.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown kind")
}

func TestParseRejectsBadEnumReference(t *testing.T) {
	doc := `
unit: lib/x.dart
declarations:
  - kind: class
    name: X
    annotations:
      - name: A
        value:
          format: {$enum: concise}
`
	_, err := Parse([]byte(doc), "x.yaml")
	assert.Error(t, err)
}

func TestLoadGlobSortsUnits(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.yaml", "a.yaml"} {
		doc := "unit: lib/" + name + "\ndeclarations: []\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(doc), 0o644))
	}

	units, err := LoadGlob([]string{filepath.Join(dir, "*.yaml")})
	require.NoError(t, err)
	require.Len(t, units, 2)
	assert.Equal(t, "lib/a.yaml", units[0].Path)
	assert.Equal(t, "lib/b.yaml", units[1].Path)
}
