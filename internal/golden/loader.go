package golden

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadedCase pairs a Case with the file it came from, for readable test
// names when a fixture's own Name is generic.
type LoadedCase struct {
	File string
	Case Case
}

// LoadDir walks dir and parses every *.yaml file into its Cases, grounded
// on a conformance-suite directory walk.
func LoadDir(dir string) ([]LoadedCase, error) {
	var loaded []LoadedCase

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || filepath.Ext(path) != ".yaml" {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		var suite Suite
		if err := yaml.Unmarshal(data, &suite); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}

		rel, _ := filepath.Rel(dir, path)
		for _, c := range suite.Tests {
			loaded = append(loaded, LoadedCase{File: rel, Case: c})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return loaded, nil
}
