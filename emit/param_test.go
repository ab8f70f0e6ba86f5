package emit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParamListGrouping(t *testing.T) {
	got := paramList([]Param{
		{Name: "a", Type: "int", Required: true},
		{Name: "b", Type: "int", Default: "0"},
	})
	assert.Equal(t, "(int a, [int b = 0])", got)
}

func TestParamListNamed(t *testing.T) {
	got := paramList([]Param{
		{Name: "a", Type: "int", Named: true, Required: true},
		{Name: "b", Type: "String", Named: true, Default: "'x'"},
	})
	assert.Equal(t, "({required int a, String b = 'x'})", got)
}

func TestParamListEmpty(t *testing.T) {
	assert.Equal(t, "()", paramList(nil))
}

func TestParamListFieldBinding(t *testing.T) {
	got := paramList([]Param{
		{Name: "street", Named: true, Required: true, ToField: true},
	})
	assert.Equal(t, "({required this.street})", got)
}

func TestValidateParamsRejectsMixedOptionalStyles(t *testing.T) {
	err := validateParams([]Param{
		{Name: "a", Type: "int"},
		{Name: "b", Type: "int", Named: true},
	}, false)
	assert.Error(t, err)
}

func TestValidateParamsRejectsDuplicates(t *testing.T) {
	err := validateParams([]Param{
		{Name: "a", Type: "int", Required: true},
		{Name: "a", Type: "int", Required: true},
	}, false)
	assert.Error(t, err)
}

func TestValidateParamsRejectsRequiredWithDefault(t *testing.T) {
	err := validateParams([]Param{
		{Name: "a", Type: "int", Required: true, Default: "1"},
	}, false)
	assert.Error(t, err)
}
