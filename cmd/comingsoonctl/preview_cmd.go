package main

import (
	"fmt"
	"net/url"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/comingsoon/core/config"
	"github.com/dmitrymomot/comingsoon/core/preview"
	"github.com/dmitrymomot/comingsoon/middleware"
)

func newPreviewTokenCmd() *cobra.Command {
	var (
		subject string
		ttl     time.Duration
		link    string
	)

	cmd := &cobra.Command{
		Use:   "preview-token",
		Short: "Mint a preview token for administrators",
		Long: `Mints a JWT signed with PREVIEW_JWT_SECRET. Requests carrying it (as a
Bearer token, the preview cookie or a preview link) see the real site while
the coming-soon page is enabled.

Examples:
  comingsoonctl preview-token --subject alice --ttl 2h
  comingsoonctl preview-token --link https://example.com/`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg preview.Config
			if err := config.Load(&cfg); err != nil {
				return err
			}
			svc, err := preview.New(cfg)
			if err != nil {
				return err
			}

			tok, expires, err := svc.Mint(subject, ttl)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if link == "" {
				fmt.Fprintln(out, tok)
				return nil
			}

			u, err := url.Parse(link)
			if err != nil {
				return fmt.Errorf("parse link: %w", err)
			}
			q := u.Query()
			q.Set(middleware.PreviewQueryParam, tok)
			u.RawQuery = q.Encode()
			fmt.Fprintln(out, u.String())
			fmt.Fprintf(out, "expires: %s\n", expires.UTC().Format(time.RFC3339))
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "admin", "Who the token is issued to")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "Token lifetime (default PREVIEW_TTL)")
	cmd.Flags().StringVar(&link, "link", "", "Print a preview link for this site URL instead of the bare token")
	return cmd
}
