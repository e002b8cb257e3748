package scan

import (
	"errors"
	"fmt"

	"github.com/CompassSecurity/ifacescan/pkg/config"
	"github.com/CompassSecurity/ifacescan/pkg/scan/runner"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var errMissingBinary = errors.New("missing path to binary")

func NewScanCmd() *cobra.Command {
	options := config.DefaultScanOptions()
	maxFileSize := config.DefaultMaxFileSize

	scanCmd := &cobra.Command{
		Use:   "ifacescan <path to binary>",
		Short: "Extract Steam interface versions from a steam_api library",
		Long: `Scans a compiled steam_api .dll or .so as raw text for known Steam interface
version identifiers and writes the sorted, deduplicated list to a file, one per line.

The binary format is not parsed, any file can be scanned. A binary named like a
subcommand, e.g. "patterns", has to be passed with a path: ifacescan ./patterns`,
		Example: `
# Write the interfaces of a Windows library to steam_interfaces.txt
ifacescan steam_api64.dll

# Write to a custom file and log the findings as JSON
ifacescan libsteam_api.so --output interfaces.txt --json
		`,
		Args:          requireBinary,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			options.InputFile = args[0]
			if len(args) > 1 {
				log.Warn().Strs("ignored", args[1:]).Msg("Only the first binary is scanned")
			}
			return Scan(options, maxFileSize)
		},
	}

	scanCmd.Flags().StringVarP(&options.OutputFile, "output", "o", config.DefaultOutputFile, "File the interface list is written to, an existing file is overwritten")
	scanCmd.Flags().StringVarP(&maxFileSize, "max-file-size", "", config.DefaultMaxFileSize, "Max size of the binary to scan, 0 disables the limit. Format: https://pkg.go.dev/github.com/docker/go-units#FromHumanSize")

	scanCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%v\nusage: %s <path to binary>\n", err, cmd.Root().Name())
		return err
	})

	return scanCmd
}

func requireBinary(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "usage: %s <path to binary>\n", cmd.Root().Name())
		return errMissingBinary
	}
	return nil
}

func Scan(options config.ScanOptions, maxFileSize string) error {
	if err := config.ValidateInputPath(options.InputFile); err != nil {
		err = fmt.Errorf("%w: %w", runner.ErrInputIO, err)
		logFailure(err, options)
		return err
	}

	size, err := config.ParseMaxFileSize(maxFileSize)
	if err != nil {
		log.Error().Err(err).Str("size", maxFileSize).Msg("Failed parsing max-file-size flag")
		return err
	}
	options.MaxFileSize = size

	scanner := runner.NewScanner(options)
	if err := scanner.Scan(); err != nil {
		logFailure(err, options)
		return err
	}
	return nil
}

// FailureMessage maps a scan error to the single line shown to the user.
func FailureMessage(err error, options config.ScanOptions) string {
	switch {
	case errors.Is(err, runner.ErrInputIO):
		return "Error opening file: " + options.InputFile
	case errors.Is(err, runner.ErrEmptyContent):
		return "Error loading data"
	case errors.Is(err, runner.ErrNoMatches):
		return "No interfaces were found"
	case errors.Is(err, runner.ErrOutputIO):
		return "Error opening output file"
	default:
		return "Scan failed"
	}
}

func logFailure(err error, options config.ScanOptions) {
	event := log.Error()
	if !errors.Is(err, runner.ErrEmptyContent) && !errors.Is(err, runner.ErrNoMatches) {
		event = event.Err(err)
	}
	event.Msg(FailureMessage(err, options))
}
