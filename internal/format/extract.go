// Package format extracts packaging formats from supermarket product names
// and normalizes them to liters, kilograms or units.
//
// Every function is pure and safe for concurrent use: the rule tables are
// compiled once at package initialization and never modified.
package format

import "strings"

// ExtractFormat returns the substring of raw describing the package size or
// count, lower-cased and trimmed. The first pattern that matches wins, no
// matter where in the text a lower-priority pattern would have matched.
func ExtractFormat(raw string) (string, bool) {
	text := strings.ToLower(raw)
	if strings.TrimSpace(text) == "" {
		return "", false
	}

	for _, p := range extractPatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1]), true
		}
	}
	return "", false
}

// ExtractAllFormats returns every non-overlapping format match in raw, left
// to right. Results are neither ranked nor de-duplicated.
func ExtractAllFormats(raw string) []string {
	text := strings.ToLower(raw)
	matches := allFormatsPattern.FindAllString(text, -1)

	formats := make([]string, 0, len(matches))
	for _, m := range matches {
		formats = append(formats, strings.TrimSpace(m))
	}
	return formats
}
