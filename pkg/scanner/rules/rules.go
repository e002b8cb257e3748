package rules

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/CompassSecurity/ifacescan/pkg/scanner/types"
)

// Order matters for output of the patterns command only; every pattern is
// scanned independently.
var defaultPatterns = []types.Pattern{
	{Name: "SteamClient", Regex: `SteamClient\d+`},

	{Name: "SteamGameServerStats", Regex: `SteamGameServerStats\d+`},
	{Name: "SteamGameServer", Regex: `SteamGameServer\d+`},

	{Name: "SteamMatchMakingServers", Regex: `SteamMatchMakingServers\d+`},
	{Name: "SteamMatchMaking", Regex: `SteamMatchMaking\d+`},

	{Name: "SteamUser", Regex: `SteamUser\d+`},
	{Name: "SteamFriends", Regex: `SteamFriends\d+`},
	{Name: "SteamUtils", Regex: `SteamUtils\d+`},
	{Name: "SteamUserStats", Regex: `STEAMUSERSTATS_INTERFACE_VERSION\d+`},
	{Name: "SteamApps", Regex: `STEAMAPPS_INTERFACE_VERSION\d+`},
	{Name: "SteamNetworking", Regex: `SteamNetworking\d+`},
	{Name: "SteamRemoteStorage", Regex: `STEAMREMOTESTORAGE_INTERFACE_VERSION\d+`},
	{Name: "SteamScreenshots", Regex: `STEAMSCREENSHOTS_INTERFACE_VERSION\d+`},
	{Name: "SteamHTTP", Regex: `STEAMHTTP_INTERFACE_VERSION\d+`},
	{Name: "SteamUnifiedMessages", Regex: `STEAMUNIFIEDMESSAGES_INTERFACE_VERSION\d+`},

	{Name: "SteamController (legacy constant)", Regex: `STEAMCONTROLLER_INTERFACE_VERSION`},
	{Name: "SteamController", Regex: `SteamController\d+`},

	{Name: "SteamUGC", Regex: `STEAMUGC_INTERFACE_VERSION\d+`},
	{Name: "SteamAppList", Regex: `STEAMAPPLIST_INTERFACE_VERSION\d+`},
	{Name: "SteamMusic", Regex: `STEAMMUSIC_INTERFACE_VERSION\d+`},
	{Name: "SteamMusicRemote", Regex: `STEAMMUSICREMOTE_INTERFACE_VERSION\d+`},
	{Name: "SteamHTMLSurface", Regex: `STEAMHTMLSURFACE_INTERFACE_VERSION_\d+`},
	{Name: "SteamInventory", Regex: `STEAMINVENTORY_INTERFACE_V\d+`},
	{Name: "SteamVideo", Regex: `STEAMVIDEO_INTERFACE_V\d+`},
	{Name: "SteamMasterServerUpdater", Regex: `SteamMasterServerUpdater\d+`},
}

// CompiledPattern pairs a catalog entry with its compiled expression.
type CompiledPattern struct {
	Pattern types.Pattern
	RE      *regexp.Regexp
}

// DefaultPatterns returns the built-in interface catalog in its fixed order.
// Callers get their own copy and cannot alter the catalog.
func DefaultPatterns() []types.Pattern {
	return slices.Clone(defaultPatterns)
}

// unicodeDigits widens \d to every Unicode decimal digit; RE2's \d is ASCII only.
var unicodeDigits = strings.NewReplacer(`\d`, `\p{Nd}`)

// Compile compiles the catalog. The Regex text of each pattern stays untouched.
func Compile(patterns []types.Pattern) ([]CompiledPattern, error) {
	compiled := make([]CompiledPattern, 0, len(patterns))
	for _, pattern := range patterns {
		re, err := regexp.Compile(unicodeDigits.Replace(pattern.Regex))
		if err != nil {
			return nil, fmt.Errorf("failed compiling pattern %q: %w", pattern.Name, err)
		}
		compiled = append(compiled, CompiledPattern{Pattern: pattern, RE: re})
	}
	return compiled, nil
}
