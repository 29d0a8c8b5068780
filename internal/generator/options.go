package generator

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Options is the caller-supplied document metadata. Every field is optional;
// fields left unset are absent from the generated document.
type Options struct {
	Info         map[string]any `json:"info" yaml:"info"`
	Host         string         `json:"host" yaml:"host" validate:"omitempty,hostname_rfc1123|hostname_port"`
	BasePath     string         `json:"basePath" yaml:"basePath" validate:"omitempty,startswith=/"`
	Schemes      SchemeList     `json:"schemes" yaml:"schemes" validate:"omitempty,dive,oneof=http https ws wss"`
	ExternalDocs map[string]any `json:"externalDocs" yaml:"externalDocs"`
	// Tags maps tag name to description. A non-nil empty map yields an
	// empty tags array in the document; a nil map omits the key.
	Tags map[string]string `json:"tags" yaml:"tags"`
}

// SchemeList accepts either a single scheme or a list of schemes when
// decoded from YAML or JSON configuration.
type SchemeList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *SchemeList) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var single string
		if err := value.Decode(&single); err != nil {
			return err
		}
		*s = SchemeList{single}
		return nil
	}
	var list []string
	if err := value.Decode(&list); err != nil {
		return err
	}
	*s = SchemeList(list)
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *SchemeList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*s = SchemeList{single}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*s = SchemeList(list)
	return nil
}

var validate = validator.New()

// Validate checks the options against the document constraints: host shape,
// leading slash on basePath and the fixed scheme enum. Call it on
// normalized options so that scheme casing does not produce false failures.
func (o Options) Validate() error {
	if err := validate.Struct(o); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	return nil
}

// normalized returns a copy of o with the scheme list lowercased, trimmed
// and stripped of empties. Order is preserved and duplicates are kept.
func (o Options) normalized() Options {
	if o.Schemes == nil {
		return o
	}
	schemes := make(SchemeList, 0, len(o.Schemes))
	for _, s := range o.Schemes {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		schemes = append(schemes, s)
	}
	o.Schemes = schemes
	return o
}
