package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test domain mirroring a typical annotation: an override-report
// configuration with an enum, a nullable nested object, and a list of
// nested records.

type reportFormat int

const (
	formatConcise reportFormat = iota
	formatExpanded
)

var reportFormats = map[string]reportFormat{
	"concise":  formatConcise,
	"expanded": formatExpanded,
}

type signature struct {
	Name       string
	IsApproved bool
}

type extra struct {
	Prefix string
}

type reportOptions struct {
	Duplicates int64
	Format     reportFormat
	Extra      *extra
	Signatures []signature
}

func signatureConverter(v Value, _ []AnyConverter) (signature, error) {
	name, err := StringField(v, "name")
	if err != nil {
		return signature{}, err
	}
	approved, err := BoolField(v, "isApproved")
	if err != nil {
		return signature{}, err
	}
	return signature{Name: name, IsApproved: approved}, nil
}

func extraConverter(v Value, _ []AnyConverter) (extra, error) {
	prefix, err := StringField(v, "prefix")
	if err != nil {
		return extra{}, err
	}
	return extra{Prefix: prefix}, nil
}

// reportOptionsConverter expects nested converters positionally:
// nested[0] converts extra, nested[1] converts signature.
func reportOptionsConverter(v Value, nested []AnyConverter) (reportOptions, error) {
	duplicates, err := IntField(v, "duplicates")
	if err != nil {
		return reportOptions{}, err
	}
	format, err := EnumField(v, "format", "ReportFormat", reportFormats)
	if err != nil {
		return reportOptions{}, err
	}
	ex, err := ObjectField(v, "extra", func(v Value, _ []AnyConverter) (extra, error) {
		out, err := nested[0](v, nil)
		if err != nil {
			return extra{}, err
		}
		return out.(extra), nil
	})
	if err != nil {
		return reportOptions{}, err
	}
	sigs, err := SliceField(v, "signatures", func(v Value, _ []AnyConverter) (signature, error) {
		out, err := nested[1](v, nil)
		if err != nil {
			return signature{}, err
		}
		return out.(signature), nil
	})
	if err != nil {
		return reportOptions{}, err
	}
	return reportOptions{Duplicates: duplicates, Format: format, Extra: ex, Signatures: sigs}, nil
}

func reportOptionsView() Value {
	return Object(map[string]Value{
		"duplicates": Int(3),
		"format":     Enum("ReportFormat", "concise"),
		"extra":      Null(),
		"signatures": List(
			Object(map[string]Value{"name": String("a"), "isApproved": Bool(true)}),
			Object(map[string]Value{"name": String("b"), "isApproved": Bool(false)}),
		),
	})
}

func TestConvertCompositeRoundTrip(t *testing.T) {
	b := NewBuilder()
	Register(b, reportOptionsConverter)
	reg := b.Build()

	opts, err := Convert[reportOptions](reg, reportOptionsView(),
		Erase(extraConverter), Erase(signatureConverter))
	require.NoError(t, err)

	assert.Equal(t, int64(3), opts.Duplicates)
	assert.Equal(t, formatConcise, opts.Format)
	assert.Nil(t, opts.Extra)
	require.Len(t, opts.Signatures, 2)
	assert.Equal(t, signature{Name: "a", IsApproved: true}, opts.Signatures[0])
	assert.Equal(t, signature{Name: "b", IsApproved: false}, opts.Signatures[1])
}

func TestConvertUnregisteredType(t *testing.T) {
	reg := NewBuilder().Build()

	_, err := Convert[reportOptions](reg, reportOptionsView())
	require.Error(t, err)

	var unregistered *UnregisteredTypeError
	assert.ErrorAs(t, err, &unregistered)
}

func TestConvertPresentNestedObject(t *testing.T) {
	view := Object(map[string]Value{
		"duplicates": Int(1),
		"format":     Enum("ReportFormat", "expanded"),
		"extra":      Object(map[string]Value{"prefix": String("dup: ")}),
		"signatures": List(),
	})

	b := NewBuilder()
	Register(b, reportOptionsConverter)
	reg := b.Build()

	opts, err := Convert[reportOptions](reg, view,
		Erase(extraConverter), Erase(signatureConverter))
	require.NoError(t, err)
	require.NotNil(t, opts.Extra)
	assert.Equal(t, "dup: ", opts.Extra.Prefix)
	assert.Empty(t, opts.Signatures)
}

func TestRegistryConcurrentReads(t *testing.T) {
	b := NewBuilder()
	Register(b, signatureConverter)
	reg := b.Build()

	view := Object(map[string]Value{"name": String("x"), "isApproved": Bool(true)})

	done := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func() {
			_, err := Convert[signature](reg, view)
			done <- err
		}()
	}
	for i := 0; i < 8; i++ {
		assert.NoError(t, <-done)
	}
}

func TestBuilderFrozenAfterBuild(t *testing.T) {
	b := NewBuilder()
	Register(b, signatureConverter)
	reg := b.Build()
	assert.Equal(t, 1, reg.Len())
}
