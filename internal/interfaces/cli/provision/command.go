package provision

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/database"
	"helpdesk/internal/infrastructure/repository"
	"helpdesk/internal/shared/logger"
)

var (
	env      string
	name     string
	email    string
	password string
)

// NewCommand creates the provision command. It replaces any startup-time
// bootstrap: administrators are only ever created through this explicit,
// idempotent step.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "provision",
		Short: "Provision the initial administrator account",
		Long: `Create the initial administrator account, or grant administrator
capabilities to an existing account with the given email. Running the command
again with the same email is a no-op.`,
		RunE: run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVar(&name, "name", "Administrador", "Display name for the administrator")
	cmd.Flags().StringVar(&email, "email", "", "Email for the administrator (required)")
	cmd.Flags().StringVar(&password, "password", "", "Password for the administrator (required when creating)")
	cmd.MarkFlagRequired("email")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	ctx := context.Background()
	userRepo := repository.NewUserRepository(database.Get())
	normalized := strings.ToLower(strings.TrimSpace(email))

	existing, err := userRepo.FindByEmail(ctx, normalized)
	if err == nil {
		if existing.Has(user.CapManageUsers) {
			fmt.Printf("account %s already holds administrator capabilities\n", normalized)
			return nil
		}

		existing.GrantCapabilities(user.AdminCapabilities())
		if err := userRepo.Update(ctx, existing); err != nil {
			return fmt.Errorf("failed to grant administrator capabilities: %w", err)
		}

		logger.Info("administrator capabilities granted", "user_id", existing.ID())
		fmt.Printf("granted administrator capabilities to %s\n", normalized)
		return nil
	}

	if password == "" {
		return fmt.Errorf("password is required to create a new administrator")
	}

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	hash, err := hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	admin, err := user.NewUser(name, normalized, hash, user.AdminCapabilities())
	if err != nil {
		return fmt.Errorf("invalid administrator account: %w", err)
	}

	if err := userRepo.Save(ctx, admin); err != nil {
		return fmt.Errorf("failed to save administrator: %w", err)
	}

	logger.Info("administrator provisioned", "user_id", admin.ID(), "email", normalized)
	fmt.Printf("administrator %s created\n", normalized)
	return nil
}
