// Package urlutil provides the URL helpers data links depend on: base-URL
// resolution, URL sanitizing and the time-range/variables query strings.
package urlutil

import (
	"net/url"
	"slices"
	"strings"
)

// Locator is the URL collaborator used by the link binder.
type Locator interface {
	// AssureBaseURL prefixes app-relative URLs with the base URL.
	AssureBaseURL(u string) string
	// ProcessURL makes a URL safe to render.
	ProcessURL(u string) string
	// TimeRangeURLParams returns the current time range as query params.
	TimeRangeURLParams() string
	// VariablesURLParams returns the current template variables as query params.
	VariablesURLParams() string
}

// Static is a Locator with fixed time range and variables.
type Static struct {
	BaseURL   string
	From, To  string
	Variables map[string][]string
}

// AssureBaseURL implements Locator.
func (s Static) AssureBaseURL(u string) string {
	base := strings.TrimSuffix(s.BaseURL, "/")
	if base == "" || !strings.HasPrefix(u, "/") || strings.HasPrefix(u, "//") {
		return u
	}

	if u == base || strings.HasPrefix(u, base+"/") {
		return u
	}

	return base + u
}

var unsafeSchemes = []string{"javascript", "vbscript", "data"}

// ProcessURL implements Locator. URLs with script-capable schemes are
// replaced by "about:blank".
func (s Static) ProcessURL(u string) string {
	trimmed := strings.TrimSpace(u)

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return "about:blank"
	}

	if slices.Contains(unsafeSchemes, strings.ToLower(parsed.Scheme)) {
		return "about:blank"
	}

	return trimmed
}

// TimeRangeURLParams implements Locator.
func (s Static) TimeRangeURLParams() string {
	if s.From == "" && s.To == "" {
		return ""
	}

	q := url.Values{}
	q.Set("from", s.From)
	q.Set("to", s.To)

	return q.Encode()
}

// VariablesURLParams implements Locator.
func (s Static) VariablesURLParams() string {
	q := url.Values{}
	for name, values := range s.Variables {
		for _, v := range values {
			q.Add("var-"+name, v)
		}
	}

	return q.Encode()
}
