package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutputPath(t *testing.T) {
	cases := []struct {
		input     string
		generator string
		want      string
	}{
		{"lib/address.dart", "dataclass", "lib/address.dataclass.g.dart"},
		{"address.dart", "overrides", "address.overrides.g.dart"},
		{"lib/src/model.dart", "dataclass", "lib/src/model.dataclass.g.dart"},
		{"noext", "dataclass", "noext.dataclass.g"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, OutputPath(tc.input, tc.generator))
	}
}

func TestOutputPathStable(t *testing.T) {
	// Same input, same output: the mapping is declared once, not dynamic.
	first := OutputPath("lib/a.dart", "g")
	second := OutputPath("lib/a.dart", "g")
	assert.Equal(t, first, second)
}
