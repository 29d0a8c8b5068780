package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/example/swagdoc/internal/generator"
)

// loadOptions reads document metadata (info, host, basePath, schemes,
// externalDocs, tags) from a YAML config file. An empty path yields zero
// options, which generates a document with just the version header.
func loadOptions(path string) (generator.Options, error) {
	var opts generator.Options
	if path == "" {
		return opts, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("parse config %s: %w", path, err)
	}
	return opts, nil
}
