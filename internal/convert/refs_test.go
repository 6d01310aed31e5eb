package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRewriteRef(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		want string
	}{
		{
			name: "definitions to schemas",
			ref:  "#/definitions/User",
			want: "#/components/schemas/User",
		},
		{
			name: "parameters to components parameters",
			ref:  "#/parameters/limitParam",
			want: "#/components/parameters/limitParam",
		},
		{
			name: "responses to components responses",
			ref:  "#/responses/NotFound",
			want: "#/components/responses/NotFound",
		},
		{
			name: "security definitions to security schemes",
			ref:  "#/securityDefinitions/bearerAuth",
			want: "#/components/securitySchemes/bearerAuth",
		},
		{
			name: "already modern reference unchanged",
			ref:  "#/components/schemas/User",
			want: "#/components/schemas/User",
		},
		{
			name: "external file reference unchanged",
			ref:  "common.yaml#/definitions/Error",
			want: "common.yaml#/definitions/Error",
		},
		{
			name: "unrecognized pointer unchanged",
			ref:  "#/paths/~1users",
			want: "#/paths/~1users",
		},
		{
			name: "empty string unchanged",
			ref:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RewriteRef(tt.ref))
		})
	}
}

// Rewriting is idempotent: applying it to an already-rewritten reference is a
// no-op.
func TestRewriteRefIdempotent(t *testing.T) {
	refs := []string{
		"#/definitions/User",
		"#/parameters/limitParam",
		"#/responses/NotFound",
		"#/securityDefinitions/bearerAuth",
		"#/components/schemas/User",
		"external.json#/definitions/Thing",
		"not-a-pointer",
	}

	for _, ref := range refs {
		once := RewriteRef(ref)
		assert.Equal(t, once, RewriteRef(once), "rewrite(rewrite(%q))", ref)
	}
}

func TestRewriteRefContainerRoundTrip(t *testing.T) {
	for _, m := range legacyRefMappings {
		got := RewriteRef(m.from + "x")
		assert.Equal(t, m.to+"x", got)
	}
}
