package main

import (
	"github.com/CompassSecurity/ifacescan/internal/cmd/common"
	"github.com/CompassSecurity/ifacescan/internal/cmd/patterns"
	"github.com/CompassSecurity/ifacescan/internal/cmd/scan"
	"github.com/spf13/cobra"
)

func main() {
	common.Run(newRootCmd())
}

func newRootCmd() *cobra.Command {
	rootCmd := scan.NewScanCmd()
	rootCmd.Version = common.Version

	rootCmd.AddCommand(patterns.NewPatternsCmd())

	common.SetupPersistentPreRun(rootCmd)
	common.AddCommonFlags(rootCmd)

	rootCmd.SetVersionTemplate(`{{.Version}}
`)

	return rootCmd
}
