// This file implements path item, operation, request body, and response
// conversion.

package convert

import "fmt"

// Recognized HTTP methods; anything else under a path item is dropped.
var httpMethods = []string{"get", "post", "put", "delete", "patch", "head", "options", "trace"}

// Operation metadata carried through unchanged when present.
var operationKeywords = []string{
	"tags", "summary", "description", "externalDocs", "operationId",
	"deprecated", "security", "servers",
}

// requestBodyKind identifies where an operation's request body came from.
// Modeling the modern-vs-legacy precedence as an explicit sum keeps the rule
// auditable instead of scattering presence checks.
type requestBodyKind int

const (
	requestBodyAbsent requestBodyKind = iota
	requestBodyModern
	requestBodyLifted
)

// requestBodySource is the resolved origin of an operation's request body.
type requestBodySource struct {
	kind requestBodyKind
	// body is the modern requestBody mapping when kind is requestBodyModern.
	body map[string]any
	// param is the legacy body parameter when kind is requestBodyLifted.
	param map[string]any
}

// convertPaths converts every path item in the paths mapping.
func (c *Converter) convertPaths(paths map[string]any, result *Result) map[string]any {
	out := make(map[string]any, len(paths))
	for pattern, entry := range paths {
		item, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		out[pattern] = c.convertPathItem(item, result, "paths."+pattern)
	}
	return out
}

// convertPathItem converts the recognized HTTP methods of one path item plus
// its shared parameter list. Unrecognized method keys are silently dropped.
func (c *Converter) convertPathItem(item map[string]any, result *Result, path string) map[string]any {
	out := make(map[string]any)
	copyKeys(out, item, "summary", "description")

	if params, ok := getSlice(item, "parameters"); ok {
		if converted := c.convertParameters(params); converted != nil {
			out["parameters"] = converted
		}
	}

	for _, method := range httpMethods {
		op, ok := getMap(item, method)
		if !ok {
			continue
		}
		out[method] = c.convertOperation(op, result, fmt.Sprintf("%s.%s", path, method))
	}

	return out
}

// convertOperation converts a single operation: scalar metadata passes
// through, parameters are converted (body entries filtered), the request body
// is resolved from whichever of the modern or legacy shapes is present, and
// responses are converted per status code.
func (c *Converter) convertOperation(op map[string]any, result *Result, path string) map[string]any {
	out := make(map[string]any)
	copyKeys(out, op, operationKeywords...)

	if params, ok := getSlice(op, "parameters"); ok {
		if converted := c.convertParameters(params); converted != nil {
			out["parameters"] = converted
		}
	}

	switch src := c.resolveRequestBody(op); src.kind {
	case requestBodyModern:
		out["requestBody"] = c.convertRequestBody(src.body)
	case requestBodyLifted:
		out["requestBody"] = c.liftBodyParameter(src.param)
		c.addIssue(result, path, "legacy body parameter lifted into requestBody", SeverityInfo)
	}

	if responses, ok := getMap(op, "responses"); ok {
		out["responses"] = c.convertResponses(responses)
	}

	copyExtensions(out, op)

	return out
}

// resolveRequestBody determines the request body source for an operation. An
// already-modern requestBody always wins; otherwise the legacy parameter list
// is scanned for the first in:body entry.
func (c *Converter) resolveRequestBody(op map[string]any) requestBodySource {
	if body, ok := getMap(op, "requestBody"); ok {
		return requestBodySource{kind: requestBodyModern, body: body}
	}

	params, _ := getSlice(op, "parameters")
	for _, entry := range params {
		param, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		if in, _ := getString(param, "in"); in == "body" {
			return requestBodySource{kind: requestBodyLifted, param: param}
		}
	}

	return requestBodySource{kind: requestBodyAbsent}
}

// convertRequestBody converts an already-modern requestBody, recursively
// converting the schema of each media type entry.
func (c *Converter) convertRequestBody(body map[string]any) map[string]any {
	out := make(map[string]any)
	copyKeys(out, body, "description", "required")
	if content, ok := getMap(body, "content"); ok {
		out["content"] = c.convertContent(content)
	}
	return out
}

// liftBodyParameter synthesizes a requestBody from a legacy in:body
// parameter, preserving the parameter's own description and required flag.
func (c *Converter) liftBodyParameter(param map[string]any) map[string]any {
	out := make(map[string]any)
	copyKeys(out, param, "description", "required")

	media := make(map[string]any)
	if schema, ok := param["schema"]; ok {
		media["schema"] = c.convertSchema(schema)
	}
	out["content"] = map[string]any{c.RequestMediaType: media}

	return out
}

// convertResponses converts each status-code entry of a responses mapping.
func (c *Converter) convertResponses(responses map[string]any) map[string]any {
	out := make(map[string]any, len(responses))
	for code, entry := range responses {
		response, ok := entry.(map[string]any)
		if !ok {
			out[code] = entry
			continue
		}
		out[code] = c.convertResponse(response)
	}
	return out
}

// convertResponse converts one response: a modern content map is recursively
// schema-converted, a legacy schema field is wrapped into a content map under
// the default media type, and description/headers/links pass through.
func (c *Converter) convertResponse(response map[string]any) map[string]any {
	if ref, ok := getString(response, "$ref"); ok {
		return map[string]any{"$ref": RewriteRef(ref)}
	}

	out := make(map[string]any)
	copyKeys(out, response, "description", "headers", "links")

	if content, ok := getMap(response, "content"); ok {
		out["content"] = c.convertContent(content)
	} else if schema, ok := response["schema"]; ok {
		out["content"] = map[string]any{
			c.RequestMediaType: map[string]any{"schema": c.convertSchema(schema)},
		}
	}

	copyExtensions(out, response)

	return out
}

// convertContent converts the schema of every media type entry in a content
// map; all other media type fields pass through unchanged.
func (c *Converter) convertContent(content map[string]any) map[string]any {
	out := make(map[string]any, len(content))
	for mediaType, entry := range content {
		item, ok := entry.(map[string]any)
		if !ok {
			out[mediaType] = entry
			continue
		}
		converted := make(map[string]any, len(item))
		for key, v := range item {
			converted[key] = v
		}
		if schema, ok := item["schema"]; ok {
			converted["schema"] = c.convertSchema(schema)
		}
		out[mediaType] = converted
	}
	return out
}
