package main

import (
	"fmt"

	"sysmayal-backend/internal/auth"

	"github.com/spf13/cobra"
)

var (
	tokenUsername string
	tokenEmail    string
)

// tokenCmd prints a signed development token
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Print a signed JWT for local development",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.IsProduction() {
			return fmt.Errorf("refusing to issue development tokens in production")
		}

		svc, err := auth.NewAuthService(&auth.AuthConfig{
			JWTSecret: cfg.JWTSecret,
			Issuer:    cfg.JWTIssuer,
			TokenTTL:  cfg.JWTTTL(),
		})
		if err != nil {
			return err
		}

		token, err := svc.GenerateJWT(tokenUsername, tokenEmail)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenUsername, "username", "", "Username claim")
	tokenCmd.Flags().StringVar(&tokenEmail, "email", "", "Email claim")
}
