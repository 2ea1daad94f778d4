package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/comingsoon/app"
	"github.com/dmitrymomot/comingsoon/core/logger"
	"github.com/dmitrymomot/comingsoon/core/settings"
)

// storeOpener connects the configured settings store. The returned func
// releases the backend connections.
type storeOpener func(ctx context.Context) (settings.Store, func() error, error)

func openConfiguredStore(ctx context.Context) (settings.Store, func() error, error) {
	cfg, err := app.LoadStoreConfig()
	if err != nil {
		return nil, nil, err
	}
	log := logger.New(logger.WithOutput(os.Stderr), logger.WithTextFormatter(), logger.WithLevel(slog.LevelWarn))

	res := &app.Resources{}
	store, err := app.OpenSettingsStore(ctx, cfg, log, res)
	if err != nil {
		_ = res.Close()
		return nil, nil, err
	}
	return store, res.Close, nil
}

func newSettingsCmd() *cobra.Command {
	return newSettingsCmdWith(openConfiguredStore)
}

func newSettingsCmdWith(open storeOpener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change the coming-soon settings",
		Long: `Reads and writes the settings in the backend selected by SETTINGS_BACKEND.
Running servers pick up changes once their settings cache expires
(SETTINGS_CACHE_TTL).`,
	}
	cmd.AddCommand(newSettingsShowCmd(open))
	cmd.AddCommand(newSettingsSetCmd(open))
	return cmd
}

func newSettingsShowCmd(open storeOpener) *cobra.Command {
	var (
		asJSON       bool
		showPassword bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the stored settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd.Context(), open)
			if err != nil {
				return err
			}
			if !showPassword && s.Password != "" {
				s.Password = "********"
			}
			return printSettings(cmd.OutOrStdout(), s, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&showPassword, "show-password", false, "Print the password instead of a mask")
	return cmd
}

func newSettingsSetCmd(open storeOpener) *cobra.Command {
	var (
		enabled       bool
		title         string
		message       string
		messageFile   string
		logoKey       string
		password      string
		clearPassword bool
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change stored settings",
		Long: `Updates only the fields given as flags; everything else keeps its stored
value. Values are sanitized the same way the server sanitizes them.

Examples:
  comingsoonctl settings set --enabled
  comingsoonctl settings set --title "Launching soon" --message-file notes.md
  comingsoonctl settings set --password open-sesame
  comingsoonctl settings set --enabled=false --clear-password`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("message") && flags.Changed("message-file") {
				return errors.New("use either --message or --message-file")
			}
			if flags.Changed("password") && clearPassword {
				return errors.New("use either --password or --clear-password")
			}

			ctx := cmd.Context()
			store, closeFn, err := open(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = closeFn() }()

			s, err := store.Load(ctx)
			switch {
			case errors.Is(err, settings.ErrNotFound):
				s = settings.Defaults()
			case err != nil:
				return err
			}

			if flags.Changed("enabled") {
				s.Enabled = enabled
			}
			if flags.Changed("title") {
				s.Title = title
			}
			if flags.Changed("message") {
				s.Message = message
			}
			if flags.Changed("message-file") {
				data, err := os.ReadFile(messageFile)
				if err != nil {
					return fmt.Errorf("read message file: %w", err)
				}
				s.Message = string(data)
			}
			if flags.Changed("logo-key") {
				s.LogoKey = logoKey
			}
			if flags.Changed("password") {
				s.Password = password
			}
			if clearPassword {
				s.Password = ""
			}

			saved, err := settings.Save(ctx, store, s)
			if err != nil {
				return err
			}
			if saved.Password != "" {
				saved.Password = "********"
			}
			return printSettings(cmd.OutOrStdout(), saved, false)
		},
	}

	f := cmd.Flags()
	f.BoolVar(&enabled, "enabled", false, "Show the coming-soon page to visitors")
	f.StringVar(&title, "title", "", "Page title")
	f.StringVar(&message, "message", "", "Page message (markdown)")
	f.StringVar(&messageFile, "message-file", "", "Read the page message from a file")
	f.StringVar(&logoKey, "logo-key", "", "Logo object key in the logo backend (empty removes the logo)")
	f.StringVar(&password, "password", "", "Access password (empty disables the gate)")
	f.BoolVar(&clearPassword, "clear-password", false, "Remove the access password")
	return cmd
}

func loadSettings(ctx context.Context, open storeOpener) (settings.Settings, error) {
	store, closeFn, err := open(ctx)
	if err != nil {
		return settings.Settings{}, err
	}
	defer func() { _ = closeFn() }()

	s, err := store.Load(ctx)
	if errors.Is(err, settings.ErrNotFound) {
		return settings.Defaults(), nil
	}
	return s, err
}

func printSettings(w io.Writer, s settings.Settings, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	}

	fmt.Fprintf(w, "enabled:  %t\n", s.Enabled)
	fmt.Fprintf(w, "title:    %s\n", s.Title)
	fmt.Fprintf(w, "logo key: %s\n", orNone(s.LogoKey))
	fmt.Fprintf(w, "password: %s\n", orNone(s.Password))
	fmt.Fprintf(w, "message:\n%s\n", s.Message)
	return nil
}

func orNone(v string) string {
	if v == "" {
		return "(none)"
	}
	return v
}
