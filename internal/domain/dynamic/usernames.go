// Package dynamic interprets ad-hoc group booking links such as /alice+bob/s1-eg:
// it parses the username segment, builds the inverse link and synthesizes the
// display strings and fallback event type for the group.
package dynamic

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const usernameSeparator = "+"

var separatorReplacer = strings.NewReplacer(" ", usernameSeparator, "%20", usernameSeparator)

// ParseUsername parses a single raw path segment. An empty segment yields an
// empty list.
func ParseUsername(value string) []string {
	if value == "" {
		return []string{}
	}
	return ParseUsernames([]string{value})
}

// ParseUsernames lower-cases each segment, treats spaces and %20 as "+" and
// splits on "+", flattening the result in order. It never returns nil and
// does not deduplicate.
func ParseUsernames(values []string) []string {
	out := make([]string, 0, len(values))
	// cases.Caser is stateful, one per call.
	lower := cases.Lower(language.Und)
	for _, v := range values {
		v = separatorReplacer.Replace(lower.String(v))
		out = append(out, strings.Split(v, usernameSeparator)...)
	}
	return out
}
