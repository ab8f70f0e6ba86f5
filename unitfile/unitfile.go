// Package unitfile loads compilation-unit descriptions from YAML files.
//
// It is the bundled stand-in for a host static-analysis front end: each
// file describes the declarations of one source file together with their
// annotation constants, and loads into a host.Unit whose annotation values
// are meta.Value trees.
//
// Constant values map from YAML as follows:
//
//	scalars            -> string/int/bool/double constants
//	null               -> the null constant
//	sequences          -> list constants (order preserved)
//	mappings           -> object constants
//	{$enum: Type.name} -> enum constants
//	{$map: {...}}      -> map constants with string keys
package unitfile

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/loomgen/loom/errors"
	"github.com/loomgen/loom/host"
	"github.com/loomgen/loom/meta"
)

type unitDoc struct {
	Unit         string    `yaml:"unit"`
	Declarations []declDoc `yaml:"declarations"`
}

type declDoc struct {
	Kind        string     `yaml:"kind"`
	Name        string     `yaml:"name"`
	Annotations []annoDoc  `yaml:"annotations"`
	Fields      []fieldDoc `yaml:"fields"`
}

type annoDoc struct {
	Name  string    `yaml:"name"`
	Value yaml.Node `yaml:"value"`
}

type fieldDoc struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Nullable bool   `yaml:"nullable"`
}

var declKinds = map[string]host.DeclKind{
	"class":     host.KindClass,
	"mixin":     host.KindMixin,
	"extension": host.KindExtension,
	"enum":      host.KindEnum,
	"function":  host.KindFunction,
	"variable":  host.KindVariable,
}

// Load reads and parses one unit description file.
func Load(path string) (*host.Unit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read unit file %s", path)
	}
	return Parse(data, path)
}

// LoadGlob loads every unit file matching the given glob patterns, sorted
// by path for deterministic batch order.
func LoadGlob(patterns []string) ([]*host.Unit, error) {
	var paths []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, errors.Wrapf(err, "bad unit glob %q", pattern)
		}
		paths = append(paths, matches...)
	}
	sort.Strings(paths)

	units := make([]*host.Unit, 0, len(paths))
	for _, p := range paths {
		unit, err := Load(p)
		if err != nil {
			return nil, err
		}
		units = append(units, unit)
	}
	return units, nil
}

// Parse parses one unit description document. The source name appears in
// error messages only.
func Parse(data []byte, source string) (*host.Unit, error) {
	var doc unitDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(err, "failed to parse unit file %s", source)
	}
	if doc.Unit == "" {
		return nil, errors.Newf("%s: unit path missing", source)
	}

	unit := &host.Unit{Path: doc.Unit}
	for _, d := range doc.Declarations {
		kind, ok := declKinds[d.Kind]
		if !ok {
			return nil, errors.Newf("%s: declaration %q has unknown kind %q", source, d.Name, d.Kind)
		}
		if d.Name == "" {
			return nil, errors.Newf("%s: declaration without a name", source)
		}

		decl := host.Declaration{Kind: kind, Name: d.Name}
		for _, a := range d.Annotations {
			if a.Name == "" {
				return nil, errors.Newf("%s: %s: annotation without a name", source, d.Name)
			}
			value, err := decodeValue(&a.Value)
			if err != nil {
				return nil, errors.Wrapf(err, "%s: %s: annotation %s", source, d.Name, a.Name)
			}
			decl.Annotations = append(decl.Annotations, host.Annotation{Name: a.Name, Value: value})
		}
		for _, f := range d.Fields {
			if f.Name == "" || f.Type == "" {
				return nil, errors.Newf("%s: %s: field needs a name and a type", source, d.Name)
			}
			decl.Fields = append(decl.Fields, host.Field{Name: f.Name, Type: f.Type, Nullable: f.Nullable})
		}
		unit.Decls = append(unit.Decls, decl)
	}
	return unit, nil
}

// decodeValue converts one YAML node into a constant view.
func decodeValue(node *yaml.Node) (meta.Value, error) {
	// An omitted annotation value is an annotation without configuration.
	if node.Kind == 0 {
		return meta.Object(nil), nil
	}
	switch node.Kind {
	case yaml.ScalarNode:
		return decodeScalar(node)
	case yaml.SequenceNode:
		elems := make([]meta.Value, 0, len(node.Content))
		for _, c := range node.Content {
			elem, err := decodeValue(c)
			if err != nil {
				return nil, err
			}
			elems = append(elems, elem)
		}
		return meta.List(elems...), nil
	case yaml.MappingNode:
		return decodeMapping(node)
	case yaml.AliasNode:
		return decodeValue(node.Alias)
	default:
		return nil, errors.Newf("unsupported YAML node kind %d", node.Kind)
	}
}

func decodeScalar(node *yaml.Node) (meta.Value, error) {
	switch node.ShortTag() {
	case "!!null":
		return meta.Null(), nil
	case "!!str":
		return meta.String(node.Value), nil
	case "!!int":
		var i int64
		if err := node.Decode(&i); err != nil {
			return nil, errors.Wrapf(err, "bad integer %q", node.Value)
		}
		return meta.Int(i), nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return nil, errors.Wrapf(err, "bad boolean %q", node.Value)
		}
		return meta.Bool(b), nil
	case "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return nil, errors.Wrapf(err, "bad float %q", node.Value)
		}
		return meta.Double(f), nil
	default:
		return nil, errors.Newf("unsupported scalar tag %s", node.ShortTag())
	}
}

func decodeMapping(node *yaml.Node) (meta.Value, error) {
	// Single-key marker forms first: {$enum: ...} and {$map: ...}.
	if len(node.Content) == 2 {
		key := node.Content[0].Value
		switch key {
		case "$enum":
			ref := node.Content[1].Value
			dot := strings.LastIndex(ref, ".")
			if dot <= 0 || dot == len(ref)-1 {
				return nil, errors.Newf("enum reference %q must be Type.member", ref)
			}
			return meta.Enum(ref[:dot], ref[dot+1:]), nil
		case "$map":
			inner := node.Content[1]
			if inner.Kind != yaml.MappingNode {
				return nil, errors.New("$map value must be a mapping")
			}
			entries := make(map[string]meta.Value, len(inner.Content)/2)
			for i := 0; i < len(inner.Content); i += 2 {
				v, err := decodeValue(inner.Content[i+1])
				if err != nil {
					return nil, err
				}
				entries[inner.Content[i].Value] = v
			}
			return meta.Map(entries), nil
		}
	}

	fields := make(map[string]meta.Value, len(node.Content)/2)
	for i := 0; i < len(node.Content); i += 2 {
		v, err := decodeValue(node.Content[i+1])
		if err != nil {
			return nil, err
		}
		fields[node.Content[i].Value] = v
	}
	return meta.Object(fields), nil
}
