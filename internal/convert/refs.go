// This file implements $ref rewriting from Swagger 2.0 container locations to
// their OpenAPI 3.x components equivalents.

package convert

import "strings"

// refMapping defines a prefix substitution for $ref rewriting.
type refMapping struct {
	from string
	to   string
}

// legacyRefMappings maps Swagger 2.0 $ref prefixes to their OpenAPI 3.x
// equivalents. Each legacy container maps 1:1 to a components container.
var legacyRefMappings = []refMapping{
	{"#/definitions/", "#/components/schemas/"},
	{"#/parameters/", "#/components/parameters/"},
	{"#/responses/", "#/components/responses/"},
	{"#/securityDefinitions/", "#/components/securitySchemes/"},
}

// RewriteRef rewrites a Swagger 2.0 $ref string to its OpenAPI 3.x form.
// References that do not match a legacy container prefix (already-modern
// references, external file references, unrecognized pointers) are returned
// unchanged. This function is total over all strings; it has no failure mode.
func RewriteRef(ref string) string {
	if !strings.HasPrefix(ref, "#/") {
		return ref
	}

	for _, m := range legacyRefMappings {
		if strings.HasPrefix(ref, m.from) {
			return m.to + ref[len(m.from):]
		}
	}

	// Unknown reference format, return as-is
	return ref
}
