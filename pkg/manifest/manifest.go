// Package manifest loads the TOML file describing a generation run.
package manifest

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Manifest names the reference pages to read, in order, and how to shape
// the generated class. Fields left empty fall back to flags or emitter
// defaults.
type Manifest struct {
	Inputs         []string `toml:"inputs"`
	Output         string   `toml:"output"`
	Package        string   `toml:"package"`
	Class          string   `toml:"class"`
	KeepDuplicates bool     `toml:"keep_duplicates"`
}

// Load reads a manifest file. Unknown keys are rejected so a typoed option
// fails the run instead of silently falling back to a default.
func Load(path string) (*Manifest, error) {
	var m Manifest
	md, err := toml.DecodeFile(path, &m)
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("manifest %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return &m, nil
}
