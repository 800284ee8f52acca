package main

import (
	"fmt"
	"time"

	"mapbook/config"
	"mapbook/internal/infra/auth"

	"github.com/spf13/cobra"
)

func newTokenCommand() *cobra.Command {
	var (
		email string
		uid   string
		ttl   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a development bearer token for the jwt auth provider",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.New()
			if err != nil {
				return err
			}

			token, err := auth.IssueToken(cfg.Auth, uid, email, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)

			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email claim of the token")
	cmd.Flags().StringVar(&uid, "uid", "", "Subject claim of the token")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "Token lifetime")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}
