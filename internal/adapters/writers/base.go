// Package writers provides implementations for serializing converted OpenAPI
// documents to concrete output formats.
package writers

import (
	"path/filepath"
	"strings"
)

const (
	jsonFormat = "json"
	yamlFormat = "yaml"
)

// DetectFormat derives the output format from a file path extension. Returns
// "" when the extension is not recognized.
func DetectFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return jsonFormat
	case ".yaml", ".yml":
		return yamlFormat
	default:
		return ""
	}
}
