package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/comingsoon/core/config"
	"github.com/dmitrymomot/comingsoon/core/gate"
	"github.com/dmitrymomot/comingsoon/pkg/token"
)

type signingConfig struct {
	SigningKey string `env:"APP_SIGNING_KEY,required"`
}

func newTokenCmd() *cobra.Command {
	var fromStdin bool

	cmd := &cobra.Command{
		Use:   "token [password]",
		Short: "Print the access token for a password",
		Long: `Prints the value the server stores in the access cookie after a visitor
enters the given password. Useful to check that two deployments share the
same APP_SIGNING_KEY. Prefer --stdin to keep the password out of shell history.

Examples:
  comingsoonctl token open-sesame
  echo -n open-sesame | comingsoonctl token --stdin`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := readSecret(cmd, args, fromStdin)
			if err != nil {
				return err
			}

			var cfg signingConfig
			if err := config.Load(&cfg); err != nil {
				return err
			}
			keys, err := gate.DeriveKeys([]byte(cfg.SigningKey))
			if err != nil {
				return err
			}

			tok, err := token.NewCodec(keys.Token).Sign(password)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}

	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "Read the password from stdin")
	return cmd
}

func readSecret(cmd *cobra.Command, args []string, fromStdin bool) (string, error) {
	if fromStdin {
		line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && line == "" {
			return "", fmt.Errorf("read password: %w", err)
		}
		return strings.TrimRight(line, "\r\n"), nil
	}
	if len(args) == 0 || args[0] == "" {
		return "", errors.New("password required (argument or --stdin)")
	}
	return args[0], nil
}
