package format

import "strings"

// Category is the kind of format a token describes.
type Category string

const (
	CategoryPack      Category = "pack"
	CategoryContainer Category = "envase_con_cantidad"
	CategoryMultiple  Category = "multiple"
	CategoryVolume    Category = "volumen"
	CategoryWeight    Category = "peso"
	CategoryUnits     Category = "unidades"
	CategoryOther     Category = "otro"
	CategoryNone      Category = "sin_formato"
)

// ClassifyFormat maps a format token to its Category. An empty token is
// CategoryNone.
func ClassifyFormat(token string) Category {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return CategoryNone
	}

	switch {
	case strings.Contains(token, "pack"):
		return CategoryPack
	case containsAny(token, containerWords):
		return CategoryContainer
	case multiplePattern.MatchString(token):
		return CategoryMultiple
	case volumePattern.MatchString(token):
		return CategoryVolume
	case weightPattern.MatchString(token):
		return CategoryWeight
	case unitsPattern.MatchString(token):
		return CategoryUnits
	default:
		return CategoryOther
	}
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
