package helpers

import (
	"fmt"
	"net/http"
	"strconv"
)

// RequireIntQuery parses a required integer query parameter. The error
// message is caller-facing and names the parameter.
func RequireIntQuery(r *http.Request, name string) (int, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return 0, fmt.Errorf("missing query parameter %q", name)
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("query parameter %q must be an integer", name)
	}
	return v, nil
}

// OptionalIntQuery parses an optional integer query parameter, returning def
// when absent or unparseable.
func OptionalIntQuery(r *http.Request, name string, def int) int {
	s := r.URL.Query().Get(name)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
