package patterns

import (
	"fmt"

	"github.com/CompassSecurity/ifacescan/pkg/format"
	"github.com/CompassSecurity/ifacescan/pkg/scanner"
	"github.com/spf13/cobra"
)

type catalog struct {
	Patterns []scanner.Pattern `yaml:"patterns"`
}

func NewPatternsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "patterns",
		Short: "Print the built-in interface patterns as YAML",
		Long: `Prints the fixed, ordered catalog of regular expressions that ifacescan matches against binaries.

To scan a file that is literally named "patterns", pass it with a path: ifacescan ./patterns`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := format.ToYAML(catalog{Patterns: scanner.DefaultPatterns()})
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
}
