package ratelimit

import (
	"strings"
	"time"
)

// Rule is one endpoint tier. Pattern matching depends on shape: a leading
// "*" matches by suffix ("*/export.pdf"), a trailing "/" by prefix
// ("/documents/"), anything else exactly.
type Rule struct {
	Method  string
	Pattern string
	Limit   int           // maximum requests per window; <= 0 means unlimited
	Window  time.Duration
	Burst   int           // burst capacity, defaults to Limit
}

func (r *Rule) matches(method, path string) bool {
	if r.Method != method {
		return false
	}
	switch {
	case strings.HasPrefix(r.Pattern, "*"):
		return strings.HasSuffix(path, r.Pattern[1:])
	case strings.HasSuffix(r.Pattern, "/"):
		return strings.HasPrefix(path, r.Pattern)
	}
	return r.Pattern == path
}

// Match returns the first rule matching the request, or nil when the
// default tier applies.
func Match(method, path string, rules []Rule) *Rule {
	for i := range rules {
		if rules[i].matches(method, path) {
			return &rules[i]
		}
	}
	return nil
}

// DefaultRules returns the endpoint tiers for the studio API.
func DefaultRules() []Rule {
	return []Rule{
		// Health checks are unlimited.
		{Method: "GET", Pattern: "/health", Limit: 0},

		// PDF rendering is the expensive tier.
		{Method: "GET", Pattern: "*/export.pdf", Limit: 60, Window: time.Hour, Burst: 10},

		// Document mutations. Field edits arrive on every overlay commit,
		// so their tier is wide; create and delete are rarer.
		{Method: "PATCH", Pattern: "/documents/", Limit: 300, Window: time.Minute, Burst: 30},
		{Method: "PUT", Pattern: "/documents/", Limit: 300, Window: time.Minute, Burst: 30},
		{Method: "POST", Pattern: "/documents", Limit: 60, Window: time.Minute, Burst: 10},
		{Method: "DELETE", Pattern: "/documents/", Limit: 60, Window: time.Minute, Burst: 10},
	}
}
