// This file implements parameter conversion, including synthesis of schema
// objects from legacy inline type/format/validation fields.

package convert

// Parameter fields carried through unchanged when present.
var parameterKeywords = []string{
	"name", "in", "description", "required", "deprecated", "style", "explode",
	"allowEmptyValue", "allowReserved", "example", "examples",
}

// Legacy inline validation fields folded into a synthesized schema.
var parameterInlineSchemaKeywords = []string{
	"type", "format", "minimum", "maximum", "minLength", "maxLength",
	"pattern", "enum", "default", "multipleOf", "minItems", "maxItems",
	"uniqueItems",
}

// convertParameters converts a parameter sequence, filtering out body-located
// entries (those are lifted into the operation's request body). Output order
// is input order; duplicates are preserved as-is.
func (c *Converter) convertParameters(params []any) []any {
	out := make([]any, 0, len(params))
	for _, entry := range params {
		param, ok := entry.(map[string]any)
		if !ok {
			out = append(out, entry)
			continue
		}
		if in, _ := getString(param, "in"); in == "body" {
			continue
		}
		out = append(out, c.convertParameter(param))
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// convertParameter converts a single non-body parameter. A parameter that is
// itself a reference is rewritten and returned as a bare reference node.
func (c *Converter) convertParameter(param map[string]any) map[string]any {
	if ref, ok := getString(param, "$ref"); ok {
		return map[string]any{"$ref": RewriteRef(ref)}
	}

	out := make(map[string]any)
	copyKeys(out, param, parameterKeywords...)

	if schema, ok := param["schema"]; ok {
		out["schema"] = c.convertSchema(schema)
	} else if schema := c.synthesizeParameterSchema(param); len(schema) > 0 {
		out["schema"] = schema
	}

	copyExtensions(out, param)

	return out
}

// synthesizeParameterSchema builds a schema object from the legacy inline
// type/format/validation fields of a Swagger 2.0 parameter. Legacy array
// parameters carry a nested items schema, which is converted recursively.
func (c *Converter) synthesizeParameterSchema(param map[string]any) map[string]any {
	schema := make(map[string]any)
	copyKeys(schema, param, parameterInlineSchemaKeywords...)
	if items, ok := param["items"]; ok {
		schema["items"] = c.convertSchema(items)
	}
	return schema
}
