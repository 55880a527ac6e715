package formats

import (
	"fmt"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/describedroutes/describedroutes/pkg/resource"
)

// Load reads one document file, detects its format and decodes it.
func Load(path string) ([]resource.Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	f := DetectFormat(data, path)
	if !f.CanDecode() {
		return nil, fmt.Errorf("%s: cannot determine document format", path)
	}
	defs, err := Unmarshal(data, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return defs, nil
}

// LoadGlob loads every file matching pattern (with ** support) and
// concatenates the documents into one forest, in lexical path order. A
// pattern without metacharacters is treated as a plain path, so a missing
// file is an error rather than an empty result.
func LoadGlob(pattern string) ([]resource.Definition, error) {
	if !hasGlobMeta(pattern) {
		return Load(pattern)
	}
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("expanding glob pattern: %w", err)
	}
	sort.Strings(matches)

	var defs []resource.Definition
	for _, path := range matches {
		loaded, err := Load(path)
		if err != nil {
			return nil, err
		}
		defs = append(defs, loaded...)
	}
	return defs, nil
}

func hasGlobMeta(pattern string) bool {
	for _, c := range pattern {
		switch c {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}
