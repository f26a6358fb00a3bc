package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vidnest/vidnest/internal/config"
	"github.com/vidnest/vidnest/internal/db"
	"github.com/vidnest/vidnest/internal/db/controller/userrole"
	"github.com/vidnest/vidnest/internal/db/models"
)

const (
	// BootstrapAdminEmail is the account promoted by grant-admin when no --email is given.
	BootstrapAdminEmail = "admin@vidnest.app"

	// EnvAdminDSN holds the privileged database DSN used by grant-admin.
	EnvAdminDSN = "VIDNEST_ADMIN_DB_DSN"
	// EnvAdminEngine selects the gorm engine for EnvAdminDSN, postgres if unset.
	EnvAdminEngine = "VIDNEST_ADMIN_DB_ENGINE"
)

// ErrAdminConfigMissing is returned when the privileged credentials are not in the environment.
var ErrAdminConfigMissing = errors.New("missing required environment configuration")

var (
	grantEmail  string
	grantRevoke bool
)

func init() { //nolint: gochecknoinits
	grantAdminCmd.Flags().StringVar(&grantEmail, "email", BootstrapAdminEmail, "Email of the user to promote")
	grantAdminCmd.Flags().BoolVar(&grantRevoke, "revoke", false, "Remove the admin role instead of granting it")
	rootCmd.AddCommand(grantAdminCmd)
}

var grantAdminCmd = &cobra.Command{
	Use:           "grant-admin",
	Short:         "Grant the admin role to the bootstrap account, or revoke it",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		adminCfg, err := readAdminConfig()
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "grant-admin: %v: set %s (and optionally %s)\n",
				err, EnvAdminDSN, EnvAdminEngine)

			return err
		}

		run := grantAdmin
		if grantRevoke {
			run = revokeAdmin
		}

		if err = run(cmd.Context(), adminCfg, grantEmail, cmd.OutOrStdout()); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "grant-admin: %v\n", err)
			return err
		}

		return nil
	},
}

type adminConfig struct {
	DSN    string
	Engine string
}

// readAdminConfig reads the privileged credentials from the environment.
func readAdminConfig() (adminConfig, error) {
	v := viper.New()

	if err := v.BindEnv("dsn", EnvAdminDSN); err != nil {
		return adminConfig{}, err
	}

	if err := v.BindEnv("engine", EnvAdminEngine); err != nil {
		return adminConfig{}, err
	}

	v.SetDefault("engine", config.EnginePostgres)

	c := adminConfig{
		DSN:    v.GetString("dsn"),
		Engine: v.GetString("engine"),
	}

	if c.DSN == "" {
		return adminConfig{}, ErrAdminConfigMissing
	}

	return c, nil
}

// grantAdmin inserts the admin role row for the user with email. Running it twice is harmless.
func grantAdmin(ctx context.Context, c adminConfig, email string, out io.Writer) error {
	conn, err := db.OpenDSN(c.Engine, c.DSN)
	if err != nil {
		return err
	}

	userID, err := userrole.FindUserIDByEmail(ctx, conn, email)
	if err != nil {
		return fmt.Errorf("lookup %s: %w", email, err)
	}

	if err = userrole.Grant(ctx, conn, userID, models.RoleAdmin); err != nil {
		return fmt.Errorf("grant admin to %s: %w", email, err)
	}

	fmt.Fprintf(out, "granted %s to %s (%s)\n", models.RoleAdmin, email, userID)

	return nil
}

// revokeAdmin deletes the admin role row of the user with email.
func revokeAdmin(ctx context.Context, c adminConfig, email string, out io.Writer) error {
	conn, err := db.OpenDSN(c.Engine, c.DSN)
	if err != nil {
		return err
	}

	userID, err := userrole.FindUserIDByEmail(ctx, conn, email)
	if err != nil {
		return fmt.Errorf("lookup %s: %w", email, err)
	}

	if err = userrole.Revoke(ctx, conn, userID, models.RoleAdmin); err != nil {
		return fmt.Errorf("revoke admin from %s: %w", email, err)
	}

	fmt.Fprintf(out, "revoked %s from %s (%s)\n", models.RoleAdmin, email, userID)

	return nil
}
