package writers

import (
	"fmt"
	"io"

	"go.yaml.in/yaml/v4"

	"github.com/GabrielNunesIT/openapi-upgrade/internal/domain"
)

// YAMLWriter serializes converted documents as YAML.
type YAMLWriter struct{}

// NewYAMLWriter creates a new YAML writer.
func NewYAMLWriter() *YAMLWriter {
	return &YAMLWriter{}
}

// Format returns the output format name.
func (w *YAMLWriter) Format() string {
	return yamlFormat
}

// Write serializes the document to the output stream.
func (w *YAMLWriter) Write(doc *domain.Document, output io.Writer) error {
	enc := yaml.NewEncoder(output)
	enc.SetIndent(2)

	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode document as YAML: %w", err)
	}

	return enc.Close()
}
