package emit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumRender(t *testing.T) {
	e, err := NewEnumDecl(EnumDecl{Name: "ReportFormat", Values: []string{"concise", "expanded"}})
	require.NoError(t, err)

	b := NewBuffer()
	e.Render(b)
	assert.Equal(t, "enum ReportFormat {\n  concise,\n  expanded,\n}\n", b.String())
}

func TestEnumRejectsDuplicateValues(t *testing.T) {
	_, err := NewEnumDecl(EnumDecl{Name: "E", Values: []string{"a", "a"}})
	assert.Error(t, err)
}

func TestFunctionRender(t *testing.T) {
	f, err := NewFunction(Function{
		Name:    "formatZip",
		Returns: "String",
		Params:  []Param{{Name: "zip", Type: "int", Required: true}},
		Body:    "return zip.toString().padLeft(5, '0');",
	})
	require.NoError(t, err)

	b := NewBuffer()
	f.Render(b)
	assert.Equal(t,
		"String formatZip(int zip) {\n  return zip.toString().padLeft(5, '0');\n}\n",
		b.String())
}

func TestVariableRender(t *testing.T) {
	cases := []struct {
		name string
		v    Variable
		want string
	}{
		{"const", Variable{Name: "maxRetries", Type: "int", Modifier: Const, Value: "3"}, "const int maxRetries = 3;\n"},
		{"final inferred", Variable{Name: "greeting", Modifier: Final, Value: "'hi'"}, "final greeting = 'hi';\n"},
		{"typed var", Variable{Name: "count", Type: "int"}, "int count;\n"},
		{"untyped var", Variable{Name: "x", Value: "1"}, "var x = 1;\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := NewVariable(tc.v)
			require.NoError(t, err)
			b := NewBuffer()
			v.Render(b)
			assert.Equal(t, tc.want, b.String())
		})
	}
}

func TestVariableRejectsConstWithoutValue(t *testing.T) {
	_, err := NewVariable(Variable{Name: "x", Type: "int", Modifier: Const})
	assert.Error(t, err)
}

func TestPartOfMarkerUsesBaseName(t *testing.T) {
	p, err := NewPartOfMarker("lib/src/address.dart")
	require.NoError(t, err)

	b := NewBuffer()
	p.Render(b)
	assert.Equal(t, "part of 'address.dart';\n", b.String())
}

func TestFileRenderOrder(t *testing.T) {
	p, err := NewPartOfMarker("lib/address.dart")
	require.NoError(t, err)
	cls, err := NewClass(Class{Name: "A"})
	require.NoError(t, err)
	v, err := NewVariable(Variable{Name: "x", Modifier: Const, Type: "int", Value: "1"})
	require.NoError(t, err)

	f := NewFile(p, cls, v)

	b := NewBuffer()
	f.Render(b)

	want := strings.Join([]string{
		GeneratedHeader,
		"",
		"part of 'address.dart';",
		"",
		"class A {}",
		"",
		"const int x = 1;",
		"",
	}, "\n")
	assert.Equal(t, want, b.String())

	// The marker must come before anything else.
	assert.True(t, strings.Index(b.String(), "part of") < strings.Index(b.String(), "class A"))
}

func TestFileEmpty(t *testing.T) {
	f := NewFile(nil)
	assert.True(t, f.Empty())
}
