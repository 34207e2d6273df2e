package migrate

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/database"
	"helpdesk/internal/infrastructure/migration"
	"helpdesk/internal/infrastructure/persistence/seeds"
	"helpdesk/internal/shared/logger"
)

var (
	env   string
	steps int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations: apply, roll back, inspect status and seed development users.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newVersionCommand(),
		newSeedUsersCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, cleanup, err := initEnv()
			if err != nil {
				return err
			}
			defer cleanup()

			return migration.NewMigrator().Up(db)
		},
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, cleanup, err := initEnv()
			if err != nil {
				return err
			}
			defer cleanup()

			return migration.NewMigrator().Down(db, steps)
		},
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, cleanup, err := initEnv()
			if err != nil {
				return err
			}
			defer cleanup()

			return migration.NewMigrator().Status(db)
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show current migration version",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, cleanup, err := initEnv()
			if err != nil {
				return err
			}
			defer cleanup()

			version, err := migration.NewMigrator().Version(db)
			if err != nil {
				return err
			}

			fmt.Printf("current migration version: %d\n", version)
			return nil
		},
	}
}

func newSeedUsersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed-users",
		Short: "Seed development users",
		Long:  `Insert the default development accounts. Existing usernames are skipped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, cleanup, err := initEnv()
			if err != nil {
				return err
			}
			defer cleanup()

			cfg := config.Get()
			hasher := auth.NewScryptPasswordHasher(
				cfg.Auth.Password.ScryptN,
				cfg.Auth.Password.ScryptR,
				cfg.Auth.Password.ScryptP,
				cfg.Auth.Password.ScryptKeyLen,
			)

			return seeds.SeedUsers(cmd.Context(), db, hasher, seeds.DefaultUsers)
		},
	}
}

func initEnv() (*gorm.DB, func(), error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(&cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	cleanup := func() {
		if err := database.Close(db); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}

	return db, cleanup, nil
}
