// This file implements the recursive schema node conversion shared by
// parameters, request/response bodies, and component schema tables.

package convert

// Cross-type keywords copied for every non-reference schema node.
var schemaCommonKeywords = []string{
	"type", "format", "title", "description", "default", "example", "examples",
	"nullable", "readOnly", "writeOnly", "deprecated", "discriminator", "xml",
	"externalDocs",
}

// Keyword sets applied conditionally on the declared type.
var (
	schemaObjectKeywords = []string{"required", "maxProperties", "minProperties", "additionalProperties"}
	schemaArrayKeywords  = []string{"maxItems", "minItems", "uniqueItems"}
	schemaStringKeywords = []string{"maxLength", "minLength", "pattern", "enum"}
	schemaNumberKeywords = []string{"maximum", "minimum", "exclusiveMaximum", "exclusiveMinimum", "multipleOf"}
)

// convertSchema converts a single schema node. References are treated as
// leaves: the $ref string is rewritten and any sibling keywords are dropped,
// matching the Swagger 2.0 rule that $ref siblings are ignored. No
// dereferencing happens, so reference cycles at the document level need no
// cycle detection. Non-mapping nodes (e.g. boolean schemas) pass through.
func (c *Converter) convertSchema(node any) any {
	schema, ok := node.(map[string]any)
	if !ok {
		return node
	}

	if ref, ok := getString(schema, "$ref"); ok {
		return map[string]any{"$ref": RewriteRef(ref)}
	}

	out := make(map[string]any)
	copyKeys(out, schema, schemaCommonKeywords...)

	switch typ, _ := getString(schema, "type"); typ {
	case "object":
		if props, ok := getMap(schema, "properties"); ok {
			converted := make(map[string]any, len(props))
			for name, prop := range props {
				converted[name] = c.convertSchema(prop)
			}
			out["properties"] = converted
		}
		copyKeys(out, schema, schemaObjectKeywords...)
	case "array":
		if items, ok := schema["items"]; ok {
			out["items"] = c.convertSchema(items)
		}
		copyKeys(out, schema, schemaArrayKeywords...)
	case "string":
		copyKeys(out, schema, schemaStringKeywords...)
	case "number", "integer":
		copyKeys(out, schema, schemaNumberKeywords...)
	}

	// Composition keywords may co-occur with type-specific fields.
	for _, keyword := range []string{"allOf", "anyOf", "oneOf"} {
		if subs, ok := getSlice(schema, keyword); ok {
			converted := make([]any, len(subs))
			for i, sub := range subs {
				converted[i] = c.convertSchema(sub)
			}
			out[keyword] = converted
		}
	}
	if not, ok := schema["not"]; ok {
		out["not"] = c.convertSchema(not)
	}

	copyExtensions(out, schema)

	return out
}
