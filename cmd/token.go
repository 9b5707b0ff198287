package cmd

import (
	"errors"
	"fmt"
	"time"

	httpadapter "procurement/internal/adapters/in/http"

	"github.com/spf13/cobra"
)

// newTokenCommand signs a bearer token with JWT_SECRET, for local testing
// without the identity provider.
func newTokenCommand() *cobra.Command {
	var (
		email, name string
		ttl         time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token <user-id>",
		Short: "Print a bearer token for a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := LoadConfig()
			if err != nil {
				return err
			}
			if config.JWTSecret == "" {
				return errors.New("JWT_SECRET is required")
			}
			if email == "" {
				email = args[0] + "@localhost"
			}

			token, err := httpadapter.SignToken(config.JWTSecret, args[0], email, name, ttl)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email claim (default <user-id>@localhost)")
	cmd.Flags().StringVar(&name, "name", "", "display name claim")
	cmd.Flags().DurationVar(&ttl, "ttl", httpadapter.DefaultTokenTTL, "token lifetime")
	return cmd
}
