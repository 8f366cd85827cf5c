package helpers

import (
	"errors"
	"strings"
)

// GetSplitPart returns the index-th part of target split by separate.
// A negative index counts from the end.
func GetSplitPart(target string, separate string, index int) (string, error) {
	parts := strings.Split(target, separate)
	if index < 0 {
		index += len(parts)
	}
	if index < 0 || index >= len(parts) {
		return "", errors.New("index out of range")
	}
	return parts[index], nil
}
