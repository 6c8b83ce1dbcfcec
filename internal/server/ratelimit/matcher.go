package ratelimit

import (
	"strings"
)

// MatchEndpoint returns the config whose pattern matches path and method, or nil.
// Patterns match segment by segment; a segment in braces such as {id} matches
// any single segment. GET /health is never limited.
func MatchEndpoint(path, method string, configs []EndpointConfig) *EndpointConfig {
	if path == "/health" && method == "GET" {
		return &EndpointConfig{Path: path, Method: method}
	}

	segments := splitPath(path)
	for i := range configs {
		c := &configs[i]
		if c.Method == method && patternMatches(splitPath(c.Path), segments) {
			return c
		}
	}
	return nil
}

func splitPath(p string) []string {
	return strings.Split(strings.Trim(p, "/"), "/")
}

func patternMatches(pattern, segments []string) bool {
	if len(pattern) != len(segments) {
		return false
	}
	for i, p := range pattern {
		if strings.HasPrefix(p, "{") && strings.HasSuffix(p, "}") {
			if segments[i] == "" {
				return false
			}
			continue
		}
		if p != segments[i] {
			return false
		}
	}
	return true
}
