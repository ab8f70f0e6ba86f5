package emit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMixinRender(t *testing.T) {
	m, err := NewMethod(Method{Name: "describe", Returns: "String", Body: "return name;"})
	require.NoError(t, err)

	mixin, err := NewMixin(Mixin{
		Name:    "Describable",
		On:      []string{"Entity", "Named"},
		Methods: []*Method{m},
	})
	require.NoError(t, err)

	b := NewBuffer()
	mixin.Render(b)

	want := strings.Join([]string{
		"mixin Describable on Entity, Named {",
		"  String describe() {",
		"    return name;",
		"  }",
		"}",
		"",
	}, "\n")
	assert.Equal(t, want, b.String())
}

func TestMixinEmpty(t *testing.T) {
	mixin, err := NewMixin(Mixin{Name: "Marker"})
	require.NoError(t, err)

	b := NewBuffer()
	mixin.Render(b)
	assert.Equal(t, "mixin Marker {}\n", b.String())
}

func TestExtensionRender(t *testing.T) {
	g, err := NewGetter(Getter{Name: "label", Type: "String", Body: "return '$street, $city';"})
	require.NoError(t, err)
	m, err := NewMethod(Method{Name: "report", Returns: "String", Body: "return label;"})
	require.NoError(t, err)

	ext, err := NewExtension(Extension{
		Name:    "AddressReport",
		On:      "Address",
		Getters: []*Getter{g},
		Methods: []*Method{m},
	})
	require.NoError(t, err)

	b := NewBuffer()
	ext.Render(b)

	want := strings.Join([]string{
		"extension AddressReport on Address {",
		"  String get label {",
		"    return '$street, $city';",
		"  }",
		"",
		"  String report() {",
		"    return label;",
		"  }",
		"}",
		"",
	}, "\n")
	assert.Equal(t, want, b.String())
}

func TestExtensionRequiresExtendedType(t *testing.T) {
	_, err := NewExtension(Extension{Name: "X"})
	assert.Error(t, err)
}

func TestSetterRender(t *testing.T) {
	s, err := NewSetter(Setter{Name: "zip", Type: "int", Body: "zipCode = value;"})
	require.NoError(t, err)

	b := NewBuffer()
	s.Render(b)
	assert.Equal(t, "set zip(int value) {\n  zipCode = value;\n}\n", b.String())
}
