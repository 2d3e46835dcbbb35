// Package sanitize strips a fixed set of script-injection fragments from user
// supplied text and HTML-escapes what remains before it is persisted.
package sanitize

import (
	"html"
	"strings"
)

// deniedFragments are removed in this order, each in a single non-overlapping
// pass. Matching is literal and case-sensitive, so nested constructions such as
// "<scr<script>ipt>" survive removal; they are still neutralised by escaping.
var deniedFragments = []string{
	"<script>",
	"</script>",
	"<iframe>",
	"</iframe>",
	"javascript:",
	"onerror=",
	"onload=",
}

// CleanString removes the denied fragments from s and escapes &, <, >, " and '.
func CleanString(s string) string {
	for _, fragment := range deniedFragments {
		s = strings.ReplaceAll(s, fragment, "")
	}
	return html.EscapeString(s)
}

// Clean is CleanString for optional values. A nil input yields nil.
func Clean(s *string) *string {
	if s == nil {
		return nil
	}
	cleaned := CleanString(*s)
	return &cleaned
}
