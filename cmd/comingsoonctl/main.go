// Command comingsoonctl administers a comingsoon deployment.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "comingsoonctl",
		Short: "Administer the coming-soon page",
		Long: `comingsoonctl manages the settings of a comingsoon deployment and
helps debug its tokens. It reads the same environment variables (and .env)
as the server.

Commands:
  settings        Show or change the coming-soon settings
  preview-token   Mint a preview token for administrators
  token           Print the access token for a password
  accent          Print the accent color derived from an image`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newSettingsCmd())
	root.AddCommand(newPreviewTokenCmd())
	root.AddCommand(newTokenCmd())
	root.AddCommand(newAccentCmd())
	return root
}
