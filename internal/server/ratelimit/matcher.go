package ratelimit

import (
	"strings"
)

// MatchEndpoint finds the endpoint budget for a path and method. Configured
// paths ending in "/" match as prefixes, so "/templates/" covers
// "/templates/{name}". Returns nil when only the default budget applies.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	// The health check is never metered.
	if path == "/health" && method == "GET" {
		return &EndpointConfig{}
	}

	for i := range configs {
		config := &configs[i]
		if config.Path == path && config.Method == method {
			return config
		}
	}

	for i := range configs {
		config := &configs[i]
		if config.Method == method && strings.HasSuffix(config.Path, "/") && strings.HasPrefix(path, config.Path) {
			return config
		}
	}

	return nil
}
