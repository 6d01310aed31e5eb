package convert

import "strings"

// Tree accessor and construction helpers. Output nodes are built by copying
// only keys whose source produced a value, so absent fields never appear in
// the output as nulls or empty placeholders.

// getMap returns doc[key] when it is a mapping.
func getMap(node map[string]any, key string) (map[string]any, bool) {
	m, ok := node[key].(map[string]any)
	return m, ok
}

// getSlice returns doc[key] when it is a sequence.
func getSlice(node map[string]any, key string) ([]any, bool) {
	s, ok := node[key].([]any)
	return s, ok
}

// getString returns doc[key] when it is a string.
func getString(node map[string]any, key string) (string, bool) {
	s, ok := node[key].(string)
	return s, ok
}

// copyKeys copies each named key from src to dst when present in src.
func copyKeys(dst, src map[string]any, keys ...string) {
	for _, key := range keys {
		if v, ok := src[key]; ok {
			dst[key] = v
		}
	}
}

// copyExtensions copies vendor extension keys (x-*) from src to dst verbatim.
func copyExtensions(dst, src map[string]any) {
	for key, v := range src {
		if strings.HasPrefix(key, "x-") {
			dst[key] = v
		}
	}
}
