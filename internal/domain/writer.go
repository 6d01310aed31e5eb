package domain

import "io"

// Writer defines the interface for document output writers.
type Writer interface {
	// Write serializes a converted document to the output stream.
	Write(doc *Document, output io.Writer) error

	// Format returns the output format name (e.g., "json", "yaml").
	Format() string
}
