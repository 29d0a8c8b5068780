// Package generator classifies annotation blocks, decodes their payloads and
// merges them into a single Swagger 2.0 document.
package generator

import "github.com/example/swagdoc/internal/annotation"

// declarationPrefix identifies this tool's own documentation tags among
// generic doc-comment tags. Matching is prefix-based on the lowercased,
// trimmed tag title: a title of "swaggerDefinition" declares kind
// "definition".
const declarationPrefix = "swagger"

// Recognized block kinds. Any other kind string classifies but is never
// decoded or merged.
const (
	KindDefinition = "definition"
	KindPath       = "path"
)

// PayloadState describes the outcome of decoding one tag body.
type PayloadState int

const (
	// PayloadDecoded means Value holds the decoded structured data.
	PayloadDecoded PayloadState = iota
	// PayloadEmpty means the tag carried no payload text at all.
	PayloadEmpty
	// PayloadFailed means payload text was present but neither YAML nor
	// JSON could decode it. This is a data-quality signal, not an error.
	PayloadFailed
)

// Payload is the tri-state result of decoding a fragment.
type Payload struct {
	State PayloadState
	Value any
}

// Block is a classified annotation carrying a documentation declaration.
type Block struct {
	Description string
	Kind        string
	Payload     Payload
	// Source is the annotation the block was classified from. Informational
	// only; merge decisions never consult it.
	Source annotation.Annotation
}
