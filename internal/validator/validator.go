// Package validator performs a basic structural check of a generated
// Swagger 2.0 document. It is an opt-in post-generation step; the document
// pipeline itself never validates payload shapes.
package validator

import (
	"encoding/json"
	"fmt"
)

// ValidateDocument checks the serialized document for the structural
// requirements consumers most often trip over: the version header, a
// complete info object, and responses with descriptions.
func ValidateDocument(data []byte) error {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse document: %w", err)
	}

	if version, ok := doc["swagger"].(string); !ok || version != "2.0" {
		return fmt.Errorf("missing or invalid 'swagger' version field")
	}

	if info, ok := doc["info"].(map[string]any); ok {
		if _, ok := info["title"].(string); !ok {
			return fmt.Errorf("missing 'info.title' field")
		}
		if _, ok := info["version"].(string); !ok {
			return fmt.Errorf("missing 'info.version' field")
		}
	}

	if paths, ok := doc["paths"].(map[string]any); ok {
		for path, item := range paths {
			if err := validatePathItem(item); err != nil {
				return fmt.Errorf("path %s: %w", path, err)
			}
		}
	}
	return nil
}

var operationMethods = []string{"get", "post", "put", "delete", "patch", "head", "options"}

func validatePathItem(item any) error {
	pathItem, ok := item.(map[string]any)
	if !ok {
		return fmt.Errorf("invalid path item")
	}

	hasOperation := false
	for _, method := range operationMethods {
		op, exists := pathItem[method]
		if !exists {
			continue
		}
		hasOperation = true
		if err := validateOperation(op); err != nil {
			return fmt.Errorf("operation %s: %w", method, err)
		}
	}

	if !hasOperation && len(pathItem) > 0 {
		if _, hasParams := pathItem["parameters"]; !hasParams {
			return fmt.Errorf("path item has no operations")
		}
	}
	return nil
}

func validateOperation(operation any) error {
	op, ok := operation.(map[string]any)
	if !ok {
		return fmt.Errorf("invalid operation")
	}

	responses, ok := op["responses"].(map[string]any)
	if !ok || len(responses) == 0 {
		return fmt.Errorf("missing or empty 'responses' field")
	}
	for status, response := range responses {
		resp, ok := response.(map[string]any)
		if !ok {
			return fmt.Errorf("response %s: invalid response", status)
		}
		if _, ok := resp["description"].(string); !ok {
			return fmt.Errorf("response %s: missing 'description' field", status)
		}
	}
	return nil
}
