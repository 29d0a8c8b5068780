package generator

import (
	"strings"

	"github.com/example/swagdoc/internal/annotation"
)

// Classify inspects one annotation and resolves the documentation block it
// declares. The second return value is false when no tag title carries the
// declaration prefix; such annotations are dropped silently.
//
// When several declaration tags appear on one annotation the last one wins,
// overwriting both kind and payload. Existing consumers rely on this, so it
// is kept even though it usually indicates an authoring mistake.
func Classify(ann annotation.Annotation) (Block, bool) {
	var (
		kind    string
		typeTag *annotation.Tag
	)
	for i := range ann.Tags {
		title := strings.TrimSpace(strings.ToLower(ann.Tags[i].Title))
		if !strings.HasPrefix(title, declarationPrefix) {
			continue
		}
		kind = strings.TrimSpace(strings.TrimPrefix(title, declarationPrefix))
		typeTag = &ann.Tags[i]
	}
	if typeTag == nil {
		return Block{}, false
	}

	block := Block{
		Description: strings.TrimSpace(ann.Description),
		Kind:        kind,
		Source:      ann,
	}

	// Only the two recognized kinds get payload decoding. Anything else is
	// produced with an empty payload and never reaches the merger.
	switch kind {
	case KindDefinition, KindPath:
		block.Payload = DecodeFragment(typeTag.Body)
	default:
		block.Payload = Payload{State: PayloadEmpty}
	}
	return block, true
}
