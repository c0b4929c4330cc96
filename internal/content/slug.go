package content

import (
	"errors"
	"strings"

	"github.com/goliatone/go-slug"
)

// ErrEmptySlug is returned when nothing slug-worthy remains after normalization
var ErrEmptySlug = errors.New("slug is empty")

var nordicReplacer = strings.NewReplacer(
	"æ", "ae", "Æ", "Ae",
	"ø", "o", "Ø", "O",
	"å", "a", "Å", "A",
)

// NormalizeSlug turns a title or user-entered slug into a URL slug
func NormalizeSlug(value string) (string, error) {
	value = strings.TrimSpace(nordicReplacer.Replace(value))
	if value == "" {
		return "", ErrEmptySlug
	}
	normalized, err := slug.Normalize(value)
	if err != nil {
		return "", err
	}
	if normalized == "" {
		return "", ErrEmptySlug
	}
	return normalized, nil
}

// IsValidSlug reports whether value is already a normalized slug
func IsValidSlug(value string) bool {
	return value != "" && slug.IsValid(value)
}
