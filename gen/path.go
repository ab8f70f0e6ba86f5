package gen

import (
	"path/filepath"
	"strings"
)

// OutputPath derives the single output path for an input compilation unit
// and a generator. The mapping is a fixed substitution declared once per
// generator, never dynamic per invocation: directory and base name are
// preserved, the generator name and a .g marker are appended before the
// extension.
//
//	lib/address.dart + dataclass -> lib/address.dataclass.g.dart
func OutputPath(inputPath, generator string) string {
	dir := filepath.Dir(inputPath)
	base := filepath.Base(inputPath)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	return filepath.Join(dir, stem+"."+generator+".g"+ext)
}
