package validation

import (
	"regexp"
	"strings"

	"github.com/mediavault/catalog-api/internal/infrastructure/metrics"
)

var infoHashPattern = regexp.MustCompile(`urn:[a-z0-9]+:([a-zA-Z0-9]{32,40})`)

// ExtractInfoHash pulls the info-hash out of a magnet URI. It returns an
// empty string when the URI carries no recognizable urn segment; the
// rejection is counted against the supplied reason label.
func ExtractInfoHash(magnet string) string {
	m := infoHashPattern.FindStringSubmatch(magnet)
	if m == nil {
		metrics.RecordMalformedMagnet("missing_urn")
		return ""
	}
	return strings.ToLower(m[1])
}

// CanonicalHash lowercases a SHA-256 hex digest. Hashes arriving in mixed
// or upper case are counted per family so drift in upstream producers is
// visible.
func CanonicalHash(family, hash string) string {
	lower := strings.ToLower(hash)
	if lower != hash {
		metrics.RecordNonCanonicalHash(family)
	}
	return lower
}

// CanonicalHashPtr is CanonicalHash for optional fields; nil passes through.
func CanonicalHashPtr(family string, hash *string) *string {
	if hash == nil {
		return nil
	}
	lower := CanonicalHash(family, *hash)
	return &lower
}
