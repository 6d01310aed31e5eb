// This file implements top-level document assembly: info and servers.

package convert

import "fmt"

// Defaults used when the source document omits mandatory info fields.
const (
	defaultTitle   = "API"
	defaultVersion = "1.0.0"
)

// fallbackServerURL is a deliberate placeholder emitted when the source
// document carries no server information at all. It signals an incomplete
// input rather than failing the conversion.
const fallbackServerURL = "https://localhost"

// convertInfo builds the output info object, defaulting the mandatory title
// and version fields when absent.
func (c *Converter) convertInfo(doc map[string]any) map[string]any {
	out := map[string]any{
		"title":   defaultTitle,
		"version": defaultVersion,
	}

	info, ok := getMap(doc, "info")
	if !ok {
		return out
	}

	if title, ok := getString(info, "title"); ok {
		out["title"] = title
	}
	if version, ok := getString(info, "version"); ok {
		out["version"] = version
	}
	copyKeys(out, info, "description", "termsOfService", "contact", "license")
	copyExtensions(out, info)

	return out
}

// convertServers builds the servers list. A modern servers sequence is copied
// through; otherwise one server URL is synthesized from the legacy
// host/basePath/schemes fields. Documents with no server information at all
// get a single placeholder server.
func (c *Converter) convertServers(doc map[string]any, result *Result) []any {
	if servers, ok := getSlice(doc, "servers"); ok {
		out := make([]any, 0, len(servers))
		for _, entry := range servers {
			server, ok := entry.(map[string]any)
			if !ok {
				out = append(out, entry)
				continue
			}
			converted := make(map[string]any)
			copyKeys(converted, server, "url", "description", "variables")
			out = append(out, converted)
		}
		return out
	}

	host, hasHost := getString(doc, "host")
	basePath, hasBasePath := getString(doc, "basePath")
	if hasHost || hasBasePath {
		scheme := "https"
		if schemes, ok := getSlice(doc, "schemes"); ok && len(schemes) > 0 {
			if s, ok := schemes[0].(string); ok {
				scheme = s
			}
		}
		if host == "" {
			host = "localhost"
		}
		return []any{map[string]any{
			"url": fmt.Sprintf("%s://%s%s", scheme, host, basePath),
		}}
	}

	c.addIssue(result, "servers", "no server information in source document, using placeholder "+fallbackServerURL, SeverityInfo)
	return []any{map[string]any{"url": fallbackServerURL}}
}
