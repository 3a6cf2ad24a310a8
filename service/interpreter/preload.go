package interpreter

import (
	"fmt"
	"regexp"

	sjson "go.starlark.net/lib/json"
	smath "go.starlark.net/lib/math"
	stime "go.starlark.net/lib/time"
	"go.starlark.net/starlark"
)

// Import signatures recognised in lesson sources. The comment marker is
// optional so both raw python-style sources and starlark sources that
// declare their dependencies in comments are matched.
var (
	importPattern     = regexp.MustCompile(`(?m)^\s*#?\s*import\s+([A-Za-z_][A-Za-z0-9_]*)`)
	fromImportPattern = regexp.MustCompile(`(?m)^\s*#?\s*from\s+([A-Za-z_][A-Za-z0-9_]*)\s+import\b`)
)

// moduleLoaders is the known dependency set. The numerical alias resolves to
// the math module; pandas is recognised but not bundled, so its loader
// reports failure and the pre-load is skipped.
var moduleLoaders = map[string]func() (starlark.Value, error){
	"math":  func() (starlark.Value, error) { return smath.Module, nil },
	"json":  func() (starlark.Value, error) { return sjson.Module, nil },
	"time":  func() (starlark.Value, error) { return stime.Module, nil },
	"numpy": func() (starlark.Value, error) { return smath.Module, nil },
	"pandas": func() (starlark.Value, error) {
		return nil, fmt.Errorf("module is not bundled with the interpreter")
	},
}

// DetectImports returns the dependency names referenced by source, in order
// of first appearance, without duplicates. Names outside the known set are
// included so callers can report them; preload ignores them.
func DetectImports(source string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, pattern := range []*regexp.Regexp{importPattern, fromImportPattern} {
		for _, match := range pattern.FindAllStringSubmatch(source, -1) {
			name := match[1]
			if seen[name] {
				continue
			}
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}
