package ai

import (
	"regexp"
	"strings"
)

// jsonSpanRe greedily spans from the first '{' to the LAST '}' in the reply.
// When the model emits several JSON-ish blocks with prose between them the
// span covers all of it and will usually fail to parse; the normalizer's
// fallback absorbs that. Observable behavior, kept on purpose.
var jsonSpanRe = regexp.MustCompile(`(?s)\{.*\}`)

// ExtractJSON locates the JSON object substring embedded in a free-text model
// reply. ok is false when the reply contains no brace-delimited span at all.
func ExtractJSON(raw string) (span string, ok bool) {
	m := jsonSpanRe.FindString(cleanJSONString(raw))
	if m == "" {
		return "", false
	}
	return m, true
}

// cleanJSONString removes markdown code blocks if present (e.g. ```json ... ```)
func cleanJSONString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
