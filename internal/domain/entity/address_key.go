package entity

import (
	"crypto/sha1" //nolint:gosec // Not used for security: stable fingerprint shared with other platforms.
	"encoding/hex"
	"strings"
)

const normalizedKeySeparator = "|"

// ComputeNormalizedKey derives the deterministic deduplication key for the
// address. The key fields are taken in a fixed order, lower-cased and trimmed
// (the country code is upper-cased instead), empty fields are dropped, the
// survivors are joined with a separator and hashed. The digest must stay
// SHA-1: existing records and the mobile client compute the same key, so
// changing the algorithm would orphan every stored address.
//
// Same logical address in, same key out, regardless of how the input fields
// were originally spelled or ordered.
func (a Address) ComputeNormalizedKey() string {
	fields := []string{
		strings.ToLower(strings.TrimSpace(a.Street)),
		strings.ToLower(strings.TrimSpace(a.Number)),
		strings.ToLower(strings.TrimSpace(a.Unit)),
		strings.ToLower(strings.TrimSpace(a.BuildingName)),
		strings.ToLower(strings.TrimSpace(a.Block)),
		strings.ToLower(strings.TrimSpace(a.City)),
		strings.ToLower(strings.TrimSpace(a.State)),
		strings.ToLower(strings.TrimSpace(a.PostalCode)),
		strings.ToUpper(strings.TrimSpace(a.CountryCode)),
	}

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		if field == "" {
			continue
		}
		parts = append(parts, field)
	}

	sum := sha1.Sum([]byte(strings.Join(parts, normalizedKeySeparator))) //nolint:gosec

	return hex.EncodeToString(sum[:])
}
