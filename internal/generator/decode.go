package generator

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// DecodeFragment decodes one serialized tag body into structured data. YAML
// is attempted first because it accepts JSON as a subset; strict JSON is the
// fallback for fragments yaml.v3 rejects. A blank fragment yields
// PayloadEmpty and an undecodable one PayloadFailed, never an error.
func DecodeFragment(fragment string) Payload {
	text := strings.TrimSpace(fragment)
	if text == "" {
		return Payload{State: PayloadEmpty}
	}

	var value any
	if err := yaml.Unmarshal([]byte(text), &value); err == nil {
		return Payload{State: PayloadDecoded, Value: normalizeValue(value)}
	}
	if err := json.Unmarshal([]byte(text), &value); err == nil {
		return Payload{State: PayloadDecoded, Value: normalizeValue(value)}
	}
	return Payload{State: PayloadFailed}
}

// normalizeValue rebuilds a decoded value graph with freshly allocated maps
// and slices. Mapping keys become strings so that values decoded from YAML
// and JSON compare and serialize identically.
func normalizeValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = normalizeValue(item)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[mapKey(k)] = normalizeValue(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalizeValue(item)
		}
		return out
	default:
		return v
	}
}

// mapKey renders a YAML mapping key as a string. Unquoted scalar keys such
// as numeric response codes decode as non-string values, and their entries
// must survive with the key's textual form rather than be lost.
func mapKey(k any) string {
	switch key := k.(type) {
	case string:
		return key
	case nil:
		return "null"
	default:
		return fmt.Sprint(key)
	}
}
