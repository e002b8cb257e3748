package result

import (
	"slices"

	"github.com/CompassSecurity/ifacescan/pkg/scanner/types"
)

// Aggregate collapses matches to their unique texts in ascending byte order.
func Aggregate(matches []types.Match) []string {
	seen := make(map[string]struct{}, len(matches))
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		if _, ok := seen[m.Text]; ok {
			continue
		}
		seen[m.Text] = struct{}{}
		out = append(out, m.Text)
	}

	slices.Sort(out)
	return out
}
