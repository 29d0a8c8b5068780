package generator

import (
	"sort"
	"strings"
)

// BuildDocument merges classified blocks into one canonical document. Blocks
// must be supplied in a stable, caller-controlled order; path composition
// depends on it. Blocks whose payload is empty or failed contribute nothing.
// Blocks of unrecognized kinds are filtered here as well, so the merger
// stays correct even when fed from a source that skipped classification.
func BuildDocument(blocks []Block, opts Options) (*Document, error) {
	opts = opts.normalized()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	doc := &Document{Swagger: SwaggerVersion}
	applyOptions(doc, opts)

	var paths, definitions *OrderedMap
	for _, block := range blocks {
		if block.Payload.State != PayloadDecoded {
			continue
		}
		entries, ok := block.Payload.Value.(map[string]any)
		if !ok {
			continue
		}
		switch block.Kind {
		case KindPath:
			if paths == nil {
				paths = NewOrderedMap()
			}
			mergePaths(paths, entries)
		case KindDefinition:
			if definitions == nil {
				definitions = NewOrderedMap()
			}
			mergeDefinitions(definitions, entries)
		}
	}

	if paths != nil {
		paths.Sort()
		doc.Paths = paths
	}
	if definitions != nil {
		definitions.Sort()
		doc.Definitions = definitions
	}
	return doc, nil
}

// applyOptions copies caller metadata into the document. Unset fields stay
// zero-valued and are dropped from serialization.
func applyOptions(doc *Document, opts Options) {
	if len(opts.Info) > 0 {
		doc.Info = cloneMap(opts.Info)
	}
	doc.Host = opts.Host
	doc.BasePath = opts.BasePath
	if len(opts.Schemes) > 0 {
		doc.Schemes = append([]string(nil), opts.Schemes...)
	}
	if len(opts.ExternalDocs) > 0 {
		doc.ExternalDocs = cloneMap(opts.ExternalDocs)
	}
	if opts.Tags != nil {
		tags := make([]DocumentTag, 0, len(opts.Tags))
		for name, description := range opts.Tags {
			tags = append(tags, DocumentTag{Name: name, Description: description})
		}
		sort.SliceStable(tags, func(i, j int) bool {
			return sortForm(tags[i].Name) < sortForm(tags[j].Name)
		})
		doc.Tags = &tags
	}
}

// mergePaths deep-merges one path block's entries into the aggregate. Two
// blocks documenting different operations on the same URL compose into one
// combined path entry instead of the later clobbering the earlier.
func mergePaths(paths *OrderedMap, entries map[string]any) {
	for _, key := range sortedKeys(entries) {
		trimmed := strings.TrimSpace(key)
		existing, ok := paths.Get(trimmed)
		if !ok {
			existing = map[string]any{}
		}
		paths.Set(trimmed, deepMerge(existing, entries[key]))
	}
}

// mergeDefinitions applies last-write-wins per definition name. Unlike
// paths there is no deep merge: a later value fully replaces an earlier one.
func mergeDefinitions(definitions *OrderedMap, entries map[string]any) {
	for _, key := range sortedKeys(entries) {
		definitions.Set(strings.TrimSpace(key), normalizeValue(entries[key]))
	}
}

// deepMerge combines mapping values key by key. Later scalars win on
// conflict and later arrays fully replace earlier ones. The result shares
// no structure with src, so documents never alias block payloads.
func deepMerge(dst, src any) any {
	dstMap, dstOK := dst.(map[string]any)
	srcMap, srcOK := src.(map[string]any)
	if !dstOK || !srcOK {
		return normalizeValue(src)
	}
	out := make(map[string]any, len(dstMap)+len(srcMap))
	for k, v := range dstMap {
		out[k] = v
	}
	for k, v := range srcMap {
		if prev, ok := out[k]; ok {
			out[k] = deepMerge(prev, v)
		} else {
			out[k] = normalizeValue(v)
		}
	}
	return out
}

func cloneMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = normalizeValue(v)
	}
	return out
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
