package engine

import (
	"github.com/CompassSecurity/ifacescan/pkg/scanner/rules"
	"github.com/CompassSecurity/ifacescan/pkg/scanner/types"
	"github.com/rs/zerolog/log"
)

// FindMatches scans content with every pattern in order and returns all
// non-overlapping, leftmost-first matches. Matches keep catalog order first
// and position order second, so identical input yields an identical slice.
func FindMatches(content string, patterns []types.Pattern) ([]types.Match, error) {
	compiled, err := rules.Compile(patterns)
	if err != nil {
		return nil, err
	}
	return FindCompiledMatches(content, compiled), nil
}

func FindCompiledMatches(content string, patterns []rules.CompiledPattern) []types.Match {
	matches := []types.Match{}
	for _, pattern := range patterns {
		hits := pattern.RE.FindAllString(content, -1)
		if len(hits) > 0 {
			log.Trace().Str("name", pattern.Pattern.Name).Int("count", len(hits)).Msg("Pattern matched")
		}

		for _, hit := range hits {
			matches = append(matches, types.Match{Pattern: pattern.Pattern, Text: hit})
		}
	}
	return matches
}
