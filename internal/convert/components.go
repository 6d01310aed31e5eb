// This file implements components assembly from whichever of the legacy
// top-level definition tables or the modern components object is present.

package convert

// Component categories copied through verbatim without recursive conversion.
// Nested schemas inside these are not normalized; that is a deliberate scope
// limit of the conversion.
var verbatimComponentCategories = []string{"examples", "requestBodies", "headers", "links", "callbacks"}

// convertComponents builds the output components object. For every category
// the modern shape (components.<category>) takes precedence over the legacy
// top-level table; the two are never merged. Returns nil when every category
// converts to nothing, so the components key is omitted entirely.
func (c *Converter) convertComponents(doc map[string]any, result *Result) map[string]any {
	components, _ := getMap(doc, "components")
	out := make(map[string]any)

	if schemas, ok := componentTable(components, "schemas", doc, "definitions"); ok {
		converted := make(map[string]any, len(schemas))
		for name, schema := range schemas {
			converted[name] = c.convertSchema(schema)
		}
		out["schemas"] = converted
	}

	if params, ok := componentTable(components, "parameters", doc, "parameters"); ok {
		converted := c.convertParameterTable(params, result)
		if len(converted) > 0 {
			out["parameters"] = converted
		}
	}

	if responses, ok := componentTable(components, "responses", doc, "responses"); ok {
		converted := make(map[string]any, len(responses))
		for name, entry := range responses {
			response, ok := entry.(map[string]any)
			if !ok {
				converted[name] = entry
				continue
			}
			converted[name] = c.convertResponse(response)
		}
		out["responses"] = converted
	}

	if schemes, ok := componentTable(components, "securitySchemes", doc, "securityDefinitions"); ok {
		converted := make(map[string]any, len(schemes))
		for name, entry := range schemes {
			scheme, ok := entry.(map[string]any)
			if !ok {
				converted[name] = entry
				continue
			}
			converted[name] = c.convertSecurityScheme(scheme, result, "securitySchemes."+name)
		}
		out["securitySchemes"] = converted
	}

	if components != nil {
		copyKeys(out, components, verbatimComponentCategories...)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

// componentTable resolves one component category: the modern components
// sub-table wins over the legacy top-level table when both are present.
func componentTable(components map[string]any, modernKey string, doc map[string]any, legacyKey string) (map[string]any, bool) {
	if components != nil {
		if table, ok := getMap(components, modernKey); ok {
			return table, true
		}
	}
	return getMap(doc, legacyKey)
}

// convertParameterTable converts a named parameter definition table. Legacy
// body-located definitions are dropped outright rather than lifted into
// reusable request bodies; request-body lifting only applies within
// operations. Dropped entries are surfaced as warnings.
func (c *Converter) convertParameterTable(params map[string]any, result *Result) map[string]any {
	converted := make(map[string]any, len(params))
	for name, entry := range params {
		param, ok := entry.(map[string]any)
		if !ok {
			converted[name] = entry
			continue
		}
		if in, _ := getString(param, "in"); in == "body" {
			c.addIssue(result, "parameters."+name,
				"body parameter definition dropped; shared definitions are not lifted into request bodies", SeverityWarning)
			continue
		}
		converted[name] = c.convertParameter(param)
	}
	return converted
}
