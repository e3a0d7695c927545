package nlp

import (
	"strings"

	"customer-care-assistant/internal/gateway"
)

// ParseTags coerces raw model text into a deduplicated tag set. The model is
// prompted for a comma-separated list; items are trimmed, empties dropped
// and duplicates removed. Gateway sentinel text yields an empty set rather
// than error prose masquerading as tags.
func ParseTags(raw string) []string {
	if gateway.IsError(raw) {
		return []string{}
	}

	seen := make(map[string]bool)
	tags := make([]string, 0)

	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item == "" || seen[item] {
			continue
		}
		seen[item] = true
		tags = append(tags, item)
	}

	return tags
}
