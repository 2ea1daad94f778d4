package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/comingsoon/core/media"
	"github.com/dmitrymomot/comingsoon/pkg/accent"
)

func newAccentCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "accent <image>",
		Short: "Print the accent color derived from an image",
		Long: `Samples the image the same way the server samples the logo and prints
the adjusted accent as hex and as an r,g,b triple. Images that cannot be
decoded yield the default accent.

Examples:
  comingsoonctl accent logo.png
  comingsoonctl accent --json logo.webp`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			data, err := media.ReadLimited(f, media.DefaultMaxSize)
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}

			a := accent.Derive(data)
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(map[string]any{
					"hex":     a.Hex,
					"rgb":     a.RGB,
					"derived": a.Derived,
				})
			}

			fmt.Fprintf(out, "hex: %s\nrgb: %s\n", a.Hex, a.RGB)
			if !a.Derived {
				fmt.Fprintln(out, "(default accent: image could not be sampled)")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}
