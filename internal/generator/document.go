package generator

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// SwaggerVersion is the format-version tag carried by every generated
// document.
const SwaggerVersion = "2.0"

// DocumentTag is one entry of the document's tags array.
type DocumentTag struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Document is the merged, sorted API description. Optional metadata fields
// are omitted from serialization entirely when unset, never emitted as
// null or as an empty string.
//
// Tags is a pointer so that a caller-supplied empty tag map still produces
// an empty array while an absent map omits the key.
type Document struct {
	Swagger      string         `json:"swagger" yaml:"swagger"`
	Info         map[string]any `json:"info,omitempty" yaml:"info,omitempty"`
	Host         string         `json:"host,omitempty" yaml:"host,omitempty"`
	BasePath     string         `json:"basePath,omitempty" yaml:"basePath,omitempty"`
	Schemes      []string       `json:"schemes,omitempty" yaml:"schemes,omitempty"`
	ExternalDocs map[string]any `json:"externalDocs,omitempty" yaml:"externalDocs,omitempty"`
	Tags         *[]DocumentTag `json:"tags,omitempty" yaml:"tags,omitempty"`
	Paths        *OrderedMap    `json:"paths,omitempty" yaml:"paths,omitempty"`
	Definitions  *OrderedMap    `json:"definitions,omitempty" yaml:"definitions,omitempty"`
}

// JSON serializes the document as indented JSON.
func (d *Document) JSON() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// YAML serializes the document as YAML.
func (d *Document) YAML() ([]byte, error) {
	return yaml.Marshal(d)
}
