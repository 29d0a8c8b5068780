package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"pkt.systems/pslog"

	"github.com/example/swagdoc/internal/annotation"
)

// Generator accumulates classified blocks from source units and produces the
// merged document. It is not safe for concurrent use; callers that scan
// sources in parallel should classify independently and feed one Generator.
type Generator struct {
	opts   Options
	debug  bool
	logger pslog.Logger
	blocks []Block
}

// New returns a Generator for the given options. Diagnostics are discarded
// until a logger is installed.
func New(opts Options) *Generator {
	return &Generator{opts: opts, logger: pslog.NoopLogger()}
}

// SetLogger installs the diagnostic logger. A nil logger is ignored.
func (g *Generator) SetLogger(logger pslog.Logger) {
	if logger != nil {
		g.logger = logger
	}
}

// SetDebug toggles per-block diagnostics for rejected annotations and
// undecodable payloads. Neither condition is ever an error.
func (g *Generator) SetDebug(debug bool) { g.debug = debug }

// ParseSource scans one source unit and appends every classified block to
// the generator. Annotations without a declaration tag are dropped silently.
func (g *Generator) ParseSource(name, src string) {
	for _, ann := range annotation.Extract(src) {
		block, ok := Classify(ann)
		if !ok {
			continue
		}
		if g.debug {
			switch block.Payload.State {
			case PayloadFailed:
				g.logger.Warn("block.payload.undecodable", "source", name, "kind", block.Kind)
			case PayloadEmpty:
				g.logger.Debug("block.payload.empty", "source", name, "kind", block.Kind)
			}
		}
		g.blocks = append(g.blocks, block)
	}
}

// ParseFiles reads and scans each file in the order given.
func (g *Generator) ParseFiles(paths []string) error {
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		g.ParseSource(path, string(data))
	}
	return nil
}

// ParseGlobs expands the patterns and scans every matched file. Matches are
// de-duplicated and sorted so that repeated runs see the same scan order,
// which path merging depends on.
func (g *Generator) ParseGlobs(patterns []string) error {
	files, err := ExpandGlobs(patterns)
	if err != nil {
		return err
	}
	return g.ParseFiles(files)
}

// Generate merges every block seen so far into a fresh document. The merger
// receives the complete block sequence in one call; there is no incremental
// merge across invocations.
func (g *Generator) Generate() (*Document, error) {
	return BuildDocument(g.blocks, g.opts)
}

// ExpandGlobs resolves glob patterns to a stable list of regular files.
// Matches are de-duplicated across patterns and sorted.
func ExpandGlobs(patterns []string) ([]string, error) {
	seen := map[string]bool{}
	var files []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		for _, match := range matches {
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			if !seen[match] {
				seen[match] = true
				files = append(files, match)
			}
		}
	}
	sort.Strings(files)
	return files, nil
}
