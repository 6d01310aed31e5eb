package writers

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/GabrielNunesIT/openapi-upgrade/internal/domain"
)

// JSONWriter serializes converted documents as indented JSON.
type JSONWriter struct{}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter() *JSONWriter {
	return &JSONWriter{}
}

// Format returns the output format name.
func (w *JSONWriter) Format() string {
	return jsonFormat
}

// Write serializes the document to the output stream.
func (w *JSONWriter) Write(doc *domain.Document, output io.Writer) error {
	enc := json.NewEncoder(output)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode document as JSON: %w", err)
	}

	return nil
}
