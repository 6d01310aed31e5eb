// Package convert implements the Swagger 2.0 / OpenAPI 3.0 to OpenAPI 3.1
// document conversion. The converter is a pure function over parsed document
// trees (map[string]any); it never reads or writes files itself.
package convert

import (
	"fmt"

	"github.com/GabrielNunesIT/openapi-upgrade/internal/domain"
)

// Severity indicates the severity level of a conversion issue.
type Severity string

const (
	// SeverityInfo indicates informational messages about conversion choices.
	SeverityInfo Severity = "info"
	// SeverityWarning indicates lossy conversions or best-effort transformations.
	SeverityWarning Severity = "warning"
)

// Issue represents a single conversion issue or limitation.
type Issue struct {
	// Path locates the issue in the source document (e.g. "paths./users.post").
	Path string
	// Message describes the issue.
	Message string
	// Severity grades the issue.
	Severity Severity
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s: %s", i.Severity, i.Path, i.Message)
}

// Result contains the outcome of converting a specification document.
type Result struct {
	// Document is the converted OpenAPI 3.1 document.
	Document *domain.Document
	// SourceVersion is the version string declared by the source document
	// ("2.0" for Swagger, "3.0.x" for OpenAPI 3.0), or "" when undeclared.
	SourceVersion string
	// Issues contains all non-fatal conversion issues.
	Issues []Issue
	// InfoCount is the number of informational issues.
	InfoCount int
	// WarningCount is the number of warnings.
	WarningCount int
}

// HasWarnings returns true if the conversion produced any warnings.
func (r *Result) HasWarnings() bool {
	return r.WarningCount > 0
}

// Converter converts Swagger 2.0 / OpenAPI 3.0 documents to OpenAPI 3.1.
// The zero value is not ready for use; call New.
type Converter struct {
	// RequestMediaType is the media type used when lifting legacy body
	// parameters into request bodies and when wrapping legacy response
	// schemas into content maps.
	RequestMediaType string
	// IncludeInfo determines whether informational issues are retained
	// in the result.
	IncludeInfo bool
}

// New creates a Converter with default settings.
func New() *Converter {
	return &Converter{
		RequestMediaType: "application/json",
		IncludeInfo:      true,
	}
}

// Convert transforms a parsed Swagger 2.0 or OpenAPI 3.0 document tree into an
// OpenAPI 3.1 document. The input tree is never mutated. Conversion is
// best-effort: structural oddities are surfaced as issues on the result, not
// as errors. The only error condition is a nil document.
func (c *Converter) Convert(doc map[string]any) (*Result, error) {
	if doc == nil {
		return nil, fmt.Errorf("convert: nil document")
	}

	result := &Result{
		SourceVersion: SourceVersion(doc),
		Issues:        make([]Issue, 0),
	}

	out := &domain.Document{
		OpenAPI: domain.Version,
		Info:    c.convertInfo(doc),
		Servers: c.convertServers(doc, result),
	}

	if paths, ok := getMap(doc, "paths"); ok {
		out.Paths = c.convertPaths(paths, result)
	}

	out.Components = c.convertComponents(doc, result)

	if security, ok := getSlice(doc, "security"); ok {
		out.Security = security
	}
	if tags, ok := getSlice(doc, "tags"); ok {
		out.Tags = tags
	}
	if extDocs, ok := doc["externalDocs"]; ok {
		out.ExternalDocs = extDocs
	}

	result.Document = out
	c.finalize(result)

	return result, nil
}

// SourceVersion returns the version string declared by a document:
// the value of "swagger" for legacy documents, else the value of "openapi".
func SourceVersion(doc map[string]any) string {
	if v, ok := doc["swagger"].(string); ok {
		return v
	}
	if v, ok := doc["openapi"].(string); ok {
		return v
	}
	return ""
}

// finalize updates issue counts and filters info messages when not requested.
func (c *Converter) finalize(result *Result) {
	if !c.IncludeInfo {
		filtered := make([]Issue, 0, len(result.Issues))
		for _, issue := range result.Issues {
			if issue.Severity != SeverityInfo {
				filtered = append(filtered, issue)
			}
		}
		result.Issues = filtered
	}

	result.InfoCount = 0
	result.WarningCount = 0
	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityInfo:
			result.InfoCount++
		case SeverityWarning:
			result.WarningCount++
		}
	}
}

func (c *Converter) addIssue(result *Result, path, message string, severity Severity) {
	result.Issues = append(result.Issues, Issue{
		Path:     path,
		Message:  message,
		Severity: severity,
	})
}
