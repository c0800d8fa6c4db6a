package cli

import (
	"fmt"

	"bibliolights/internal/domain/user"
	"bibliolights/internal/pkg/config"
	"bibliolights/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newTokenCmd() *cobra.Command {
	var (
		userFlag string
		admin    bool
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a development bearer token",
		Long: `token signs a JWT with JWT_SECRET so the API can be exercised locally.
Production tokens are issued by the identity provider, not by this tool.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			userID := uuid.New()
			if userFlag != "" {
				parsed, err := uuid.Parse(userFlag)
				if err != nil {
					return fmt.Errorf("invalid --user %q: %w", userFlag, err)
				}
				userID = parsed
			}
			role := user.RoleCustomer
			if admin {
				role = user.RoleAdmin
			}

			cfg, err := config.LoadJWTConfig()
			if err != nil {
				return err
			}
			duration, err := cfg.TokenDuration()
			if err != nil {
				return err
			}

			token, err := jwt.NewService(cfg.Secret, duration).GenerateToken(userID, role)
			if err != nil {
				return err
			}
			fmt.Println(token)
			return nil
		},
	}

	cmd.Flags().StringVar(&userFlag, "user", "", "User id to embed (random when omitted)")
	cmd.Flags().BoolVar(&admin, "admin", false, "Grant the admin role")
	return cmd
}
