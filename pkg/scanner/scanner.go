package scanner

import (
	"github.com/CompassSecurity/ifacescan/pkg/scanner/engine"
	"github.com/CompassSecurity/ifacescan/pkg/scanner/rules"
	"github.com/CompassSecurity/ifacescan/pkg/scanner/types"
)

type Pattern = types.Pattern
type Match = types.Match

var DefaultPatterns = rules.DefaultPatterns

var FindMatches = engine.FindMatches
