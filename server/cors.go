package server

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rs/cors"
)

// newCORSMiddleware returns nil when no origins are configured, in which
// case responses carry no CORS headers. A single "*" or "all" allows every
// origin; otherwise origins are matched exactly, wildcards included.
func newCORSMiddleware(origins []string) (middleware, error) {
	if len(origins) == 0 {
		return nil, nil
	}

	if len(origins) == 1 && (origins[0] == "*" || origins[0] == "all") {
		return cors.AllowAll().Handler, nil
	}

	for _, origin := range origins {
		if origin == "" || strings.ContainsAny(origin, "\r\n\x00,") {
			return nil, fmt.Errorf("invalid cors origin %q", origin)
		}
	}

	allowed := slices.Clone(origins)
	return cors.New(cors.Options{
		AllowOriginFunc: func(origin string) bool {
			return slices.Contains(allowed, origin)
		},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}).Handler, nil
}
