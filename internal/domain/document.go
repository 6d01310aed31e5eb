// Package domain provides core models and interfaces for the OpenAPI upgrade tool.
package domain

// Version is the OpenAPI version emitted for every converted document.
const Version = "3.1.0"

// Document is an assembled OpenAPI 3.1 document. Top-level fields are typed so
// that serialization preserves the canonical field order; everything below the
// top level stays a raw tree (map[string]any / []any) exactly as converted.
// Absent fields are omitted from output, never emitted as nulls.
type Document struct {
	OpenAPI      string         `json:"openapi" yaml:"openapi"`
	Info         map[string]any `json:"info" yaml:"info"`
	Servers      []any          `json:"servers,omitempty" yaml:"servers,omitempty"`
	Paths        map[string]any `json:"paths,omitempty" yaml:"paths,omitempty"`
	Components   map[string]any `json:"components,omitempty" yaml:"components,omitempty"`
	Security     []any          `json:"security,omitempty" yaml:"security,omitempty"`
	Tags         []any          `json:"tags,omitempty" yaml:"tags,omitempty"`
	ExternalDocs any            `json:"externalDocs,omitempty" yaml:"externalDocs,omitempty"`
}
