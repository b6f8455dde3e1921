package config

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/bnema/textfocus/internal/domain/entity"
)

const maxSuggestDistance = 2

var knownPlatforms = []entity.Platform{
	entity.PlatformDirect,
	entity.PlatformCommand,
	entity.PlatformNone,
}

// SuggestPlatform returns the known platform closest to raw when raw is not
// itself a platform name but is within a couple of edits of one.
func SuggestPlatform(raw string) (entity.Platform, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return "", false
	}

	best := entity.Platform("")
	bestDist := maxSuggestDistance + 1
	for _, p := range knownPlatforms {
		if s == string(p) {
			return "", false
		}
		if d := levenshtein.ComputeDistance(s, string(p)); d < bestDist {
			best, bestDist = p, d
		}
	}
	return best, best != ""
}
