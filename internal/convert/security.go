// This file implements security scheme conversion, including heuristic
// classification of legacy untyped scheme records.

package convert

// convertSecurityScheme converts a single security scheme record. Typed
// records keep the fields appropriate to their type. Untyped legacy records
// are classified heuristically: an Authorization header is reinterpreted as
// bearer HTTP auth, anything else as an apiKey. The heuristic can misclassify
// a custom Authorization header scheme, but its exact trigger condition is
// preserved for compatibility with documents that rely on it.
func (c *Converter) convertSecurityScheme(scheme map[string]any, result *Result, path string) map[string]any {
	out := make(map[string]any)

	typ, hasType := getString(scheme, "type")
	switch {
	case hasType && typ == "http":
		out["type"] = "http"
		copyKeys(out, scheme, "scheme", "bearerFormat", "description")

	case hasType && typ == "apiKey":
		out["type"] = "apiKey"
		copyKeys(out, scheme, "name", "in", "description")

	case hasType && typ == "oauth2":
		out["type"] = "oauth2"
		copyKeys(out, scheme, "flows", "description")
		if _, ok := scheme["flows"]; !ok {
			if flows := c.convertOAuthFlow(scheme, result, path); flows != nil {
				out["flows"] = flows
			}
		}

	case hasType && typ == "openIdConnect":
		out["type"] = "openIdConnect"
		copyKeys(out, scheme, "openIdConnectUrl", "description")

	case hasType && typ == "basic":
		// Swagger 2.0 basic auth maps directly onto the http scheme.
		out["type"] = "http"
		out["scheme"] = "basic"
		copyKeys(out, scheme, "description")

	default:
		name, _ := getString(scheme, "name")
		in, _ := getString(scheme, "in")
		if name == "Authorization" && in == "header" {
			out["type"] = "http"
			out["scheme"] = "bearer"
			out["bearerFormat"] = "JWT"
			c.addIssue(result, path, "untyped Authorization header scheme reinterpreted as bearer HTTP auth", SeverityInfo)
		} else {
			out["type"] = "apiKey"
			copyKeys(out, scheme, "name", "in")
			c.addIssue(result, path, "untyped security scheme reinterpreted as apiKey", SeverityInfo)
		}
		copyKeys(out, scheme, "description")
	}

	return out
}

// convertOAuthFlow synthesizes an OpenAPI 3.x flows object from a legacy
// Swagger 2.0 oauth2 definition (single flow field plus URLs and scopes).
func (c *Converter) convertOAuthFlow(scheme map[string]any, result *Result, path string) map[string]any {
	flow, ok := getString(scheme, "flow")
	if !ok {
		return nil
	}

	entry := make(map[string]any)
	if scopes, ok := scheme["scopes"]; ok {
		entry["scopes"] = scopes
	} else {
		entry["scopes"] = map[string]any{}
	}

	switch flow {
	case "implicit":
		copyKeys(entry, scheme, "authorizationUrl")
		return map[string]any{"implicit": entry}
	case "password":
		copyKeys(entry, scheme, "tokenUrl")
		return map[string]any{"password": entry}
	case "application":
		copyKeys(entry, scheme, "tokenUrl")
		return map[string]any{"clientCredentials": entry}
	case "accessCode":
		copyKeys(entry, scheme, "authorizationUrl", "tokenUrl")
		return map[string]any{"authorizationCode": entry}
	default:
		c.addIssue(result, path, "unknown oauth2 flow type: "+flow, SeverityWarning)
		return nil
	}
}
