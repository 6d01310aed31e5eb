// Package validate provides best-effort structural validation of
// specification documents before and after conversion. Coverage is
// deliberately approximate: findings are reported as warnings for the
// diagnostic stream and never block a conversion.
package validate

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	jsValidator "github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/GabrielNunesIT/openapi-upgrade/internal/domain"
)

//go:embed schemas/swagger20.json
var swagger20JSON string

//go:embed schemas/openapi30.json
var openapi30JSON string

//go:embed schemas/openapi31.json
var openapi31JSON string

var (
	swagger20Schema *jsValidator.Schema
	openapi30Schema *jsValidator.Schema
	openapi31Schema *jsValidator.Schema
)

func init() {
	swagger20Schema = mustCompile("swagger20.json", swagger20JSON)
	openapi30Schema = mustCompile("openapi30.json", openapi30JSON)
	openapi31Schema = mustCompile("openapi31.json", openapi31JSON)
}

func mustCompile(name, schemaJSON string) *jsValidator.Schema {
	doc, err := jsValidator.UnmarshalJSON(strings.NewReader(schemaJSON))
	if err != nil {
		panic(err)
	}
	c := jsValidator.NewCompiler()
	if err := c.AddResource(name, doc); err != nil {
		panic(err)
	}
	return c.MustCompile(name)
}

// Input checks a parsed source document against the structural conventions of
// whichever flavor it declares. OpenAPI 3.0 inputs additionally get a deeper
// pass through kin-openapi's validator. Returns warnings, never errors.
func Input(doc map[string]any) []string {
	var warnings []string

	switch {
	case isSwagger(doc):
		warnings = append(warnings, check(swagger20Schema, doc)...)
	case isOpenAPI3(doc):
		warnings = append(warnings, check(openapi30Schema, doc)...)
		warnings = append(warnings, checkKin(doc)...)
	default:
		warnings = append(warnings, "document declares neither swagger 2.0 nor openapi 3.x")
	}

	return warnings
}

// Output checks a converted document against OpenAPI 3.1 structural
// conventions. Returns warnings, never errors.
func Output(doc *domain.Document) []string {
	return check(openapi31Schema, doc)
}

func isSwagger(doc map[string]any) bool {
	v, ok := doc["swagger"].(string)
	return ok && v == "2.0"
}

func isOpenAPI3(doc map[string]any) bool {
	v, ok := doc["openapi"].(string)
	return ok && strings.HasPrefix(v, "3.")
}

// check validates an arbitrary value against a compiled schema by
// round-tripping it through JSON, which normalizes numbers and map types the
// way the validator expects.
func check(schema *jsValidator.Schema, value any) []string {
	data, err := json.Marshal(value)
	if err != nil {
		return []string{"document not representable as JSON: " + err.Error()}
	}

	instance, err := jsValidator.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return []string{"document not parseable for validation: " + err.Error()}
	}

	if err := schema.Validate(instance); err != nil {
		var validationErr *jsValidator.ValidationError
		if errors.As(err, &validationErr) {
			return leafCauses(validationErr)
		}
		return []string{err.Error()}
	}

	return nil
}

// leafCauses flattens a validation error tree into its root causes.
func leafCauses(err *jsValidator.ValidationError) []string {
	if len(err.Causes) == 0 {
		return []string{err.Error()}
	}

	var causes []string
	for _, cause := range err.Causes {
		causes = append(causes, leafCauses(cause)...)
	}
	return causes
}

// checkKin runs an OpenAPI 3.0 input through kin-openapi's loader and
// validator for diagnostics beyond the structural schema. Failures are
// warnings: real-world documents frequently carry minor nonconformance.
func checkKin(doc map[string]any) []string {
	data, err := json.Marshal(doc)
	if err != nil {
		return []string{"document not representable as JSON: " + err.Error()}
	}

	loader := openapi3.NewLoader()
	parsed, err := loader.LoadFromData(data)
	if err != nil {
		return []string{"openapi 3.0 document failed to load: " + err.Error()}
	}

	if err := parsed.Validate(context.Background()); err != nil {
		return []string{"openapi 3.0 validation: " + err.Error()}
	}

	return nil
}
