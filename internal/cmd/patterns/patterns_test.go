package patterns

import (
	"bytes"
	"testing"

	"github.com/CompassSecurity/ifacescan/pkg/scanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestPatternsCmd(t *testing.T) {
	cmd := NewPatternsCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	var parsed catalog
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &parsed))
	assert.Equal(t, scanner.DefaultPatterns(), parsed.Patterns)
	assert.Contains(t, out.String(), "patterns:\n")
}

func TestPatternsCmdRejectsArguments(t *testing.T) {
	cmd := NewPatternsCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"extra"})

	assert.Error(t, cmd.Execute())
}

func TestPatternsCmdHelpNamesPathWorkaround(t *testing.T) {
	assert.Contains(t, NewPatternsCmd().Long, "ifacescan ./patterns")
}
