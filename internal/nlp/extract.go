package nlp

import (
	"regexp"
	"strings"
)

var codeFenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// stripCodeFences removes markdown code fences that models often wrap
// around JSON output.
func stripCodeFences(text string) string {
	matches := codeFenceRe.FindStringSubmatch(text)
	if len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}
	return text
}

// ExtractJSONObject returns the first balanced {...} span in text, tolerating
// explanatory prose before and after it. The scan is string- and
// escape-aware so braces inside JSON string values do not end the span.
// Returns false if no balanced object exists.
func ExtractJSONObject(text string) (string, bool) {
	text = stripCodeFences(text)

	start := strings.IndexByte(text, '{')
	if start == -1 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		ch := text[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}

	return "", false
}
