package ratelimit

import "strings"

// MatchEndpoint resolves the rate limit entry for a request path and method.
// Exact path matches win over prefix matches, and prefix entries must end in
// "/" (so "/api/ml/" covers "/api/ml/match-job"). Returns nil when nothing
// matches, in which case the caller falls back to the global default.
func MatchEndpoint(path, method string, configs []EndpointConfig) *EndpointConfig {
	// Liveness probes are never throttled. Limit 0 means unlimited.
	if path == "/health" && method == "GET" {
		return &EndpointConfig{}
	}

	for i := range configs {
		if configs[i].Method == method && configs[i].Path == path {
			return &configs[i]
		}
	}
	for i := range configs {
		c := &configs[i]
		if c.Method == method && strings.HasSuffix(c.Path, "/") && strings.HasPrefix(path, c.Path) {
			return c
		}
	}
	return nil
}
