package utils

import (
	"fmt"
	"net/url"
	"strings"
)

// MakePath joins path segments with '/', escaping each one. Every segment is required, an empty one is an error so that
// a missing identifier can never address the parent collection.
func MakePath(segments ...string) (string, error) {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		if s == "" {
			return "", fmt.Errorf("empty path segment at index %d in %q", i, segments)
		}
		escaped[i] = url.PathEscape(s)
	}
	return "/" + strings.Join(escaped, "/"), nil
}
