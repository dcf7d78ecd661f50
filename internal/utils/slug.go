package utils

import (
	"regexp"
	"strconv"
	"strings"
)

const MaxSlugLength = 80

var nonSlugRun = regexp.MustCompile(`[^a-z0-9]+`)

// NormalizeSlug lowercases candidate, collapses every run of characters
// outside [a-z0-9] to a single "-" and caps the result at MaxSlugLength.
func NormalizeSlug(candidate string) string {
	normalized := nonSlugRun.ReplaceAllString(strings.ToLower(candidate), "-")
	normalized = strings.Trim(normalized, "-")

	if len(normalized) > MaxSlugLength {
		normalized = strings.TrimRight(normalized[:MaxSlugLength], "-")
	}

	return normalized
}

// GenerateSlug derives a slug for the product at index within one save batch.
// used collects the slugs handed out so far in the batch and is updated.
func GenerateSlug(candidate string, index int, used map[string]struct{}) string {
	base := NormalizeSlug(candidate)
	if base == "" {
		base = "product-" + strconv.Itoa(index+1)
	}

	slug := base
	for suffix := 1; ; suffix++ {
		if _, taken := used[slug]; !taken {
			break
		}
		slug = base + "-" + strconv.Itoa(suffix)
	}

	used[slug] = struct{}{}

	return slug
}
