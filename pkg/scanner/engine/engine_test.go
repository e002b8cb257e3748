package engine

import (
	"regexp"
	"testing"

	"github.com/CompassSecurity/ifacescan/pkg/scanner/rules"
	"github.com/CompassSecurity/ifacescan/pkg/scanner/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func texts(matches []types.Match) []string {
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Text)
	}
	return out
}

func TestFindMatches(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected []string
	}{
		{
			name:     "embedded client version",
			content:  "\x00\x01garbageSteamClient017\x00more",
			expected: []string{"SteamClient017"},
		},
		{
			name:     "multiple versions of one family",
			content:  "SteamUtils5\x00SteamUtils10\x00SteamUtils5",
			expected: []string{"SteamUtils5", "SteamUtils10", "SteamUtils5"},
		},
		{
			name:     "greedy digit run",
			content:  "SteamUser0211234abc",
			expected: []string{"SteamUser0211234"},
		},
		{
			name:     "prefix without digits does not match",
			content:  "SteamClient\x00SteamUser",
			expected: []string{},
		},
		{
			name:     "stats and game server are separate families",
			content:  "SteamGameServerStats001 SteamGameServer012",
			expected: []string{"SteamGameServerStats001", "SteamGameServer012"},
		},
		{
			name:    "controller constant and versioned name",
			content: "STEAMCONTROLLER_INTERFACE_VERSION STEAMCONTROLLER_INTERFACE_VERSION\x00SteamController008",
			expected: []string{
				"STEAMCONTROLLER_INTERFACE_VERSION",
				"STEAMCONTROLLER_INTERFACE_VERSION",
				"SteamController008",
			},
		},
		{
			name:     "html surface needs underscore",
			content:  "STEAMHTMLSURFACE_INTERFACE_VERSION_005 STEAMHTMLSURFACE_INTERFACE_VERSION005",
			expected: []string{"STEAMHTMLSURFACE_INTERFACE_VERSION_005"},
		},
		{
			name:     "adjacent candidates are not double counted",
			content:  "SteamFriends015SteamFriends017",
			expected: []string{"SteamFriends015", "SteamFriends017"},
		},
		{
			name:     "arabic-indic digits",
			content:  "SteamClient١٧ x SteamUtils۱۰",
			expected: []string{"SteamClient١٧", "SteamUtils۱۰"},
		},
		{
			name:     "mixed ascii and devanagari digits",
			content:  "\x00SteamUser02१\x00",
			expected: []string{"SteamUser02१"},
		},
		{
			name:     "unrelated text",
			content:  "hello world, nothing to see",
			expected: []string{},
		},
		{
			name:     "empty content",
			content:  "",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches, err := FindMatches(tt.content, rules.DefaultPatterns())
			require.NoError(t, err)
			assert.Equal(t, tt.expected, texts(matches))
		})
	}
}

func TestFindMatchesMatchesSatisfyPattern(t *testing.T) {
	content := "xxSteamClient020yySTEAMAPPS_INTERFACE_VERSION008zzSteamMatchMakingServers002SteamMatchMaking009STEAMINVENTORY_INTERFACE_V003"
	matches, err := FindMatches(content, rules.DefaultPatterns())
	require.NoError(t, err)
	require.NotEmpty(t, matches)

	for _, m := range matches {
		re := regexp.MustCompile(`^(?:` + m.Pattern.Regex + `)$`)
		assert.True(t, re.MatchString(m.Text), "%q does not fully satisfy %s", m.Text, m.Pattern.Regex)
	}
}

func TestFindMatchesDeterministic(t *testing.T) {
	content := "SteamUtils9 SteamClient017 SteamUtils10 STEAMUGC_INTERFACE_VERSION014 SteamClient017"

	first, err := FindMatches(content, rules.DefaultPatterns())
	require.NoError(t, err)
	second, err := FindMatches(content, rules.DefaultPatterns())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"SteamClient017", "SteamClient017", "SteamUtils9", "SteamUtils10", "STEAMUGC_INTERFACE_VERSION014"}, texts(first))
}

func TestFindMatchesInvalidPattern(t *testing.T) {
	_, err := FindMatches("anything", []types.Pattern{{Name: "broken", Regex: "[a-"}})
	assert.Error(t, err)
}
