// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vidnest",
	Short: "VidNest serves the site settings, ads and roles of the VidNest video site",
	Long: `VidNest serves the server side of the VidNest video site:
site settings with the document head kept in sync, ad unit selection and rendering,
and role lookups for the identities issued by the auth platform.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
