package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
	"github.com/vncsmyrnk/lunchvote/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/lunchvote/internal/config"
	"github.com/vncsmyrnk/lunchvote/internal/core/domain"
	"github.com/vncsmyrnk/lunchvote/internal/core/ports"
	"github.com/vncsmyrnk/lunchvote/internal/core/services"
)

const jobTimeout = 5 * time.Minute

// env carries what every database-backed subcommand needs.
type env struct {
	cfg *config.Config
	db  *sql.DB
}

type runFunc func(ctx context.Context, cmd *cobra.Command, e *env, args []string) error

// withDB loads the configuration, connects to the database and runs fn with
// a bounded context.
func withDB(fn runFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

		db, err := sql.Open("postgres", cfg.DB.ConnString())
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer db.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), jobTimeout)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			return fmt.Errorf("ping database: %w", err)
		}
		return fn(ctx, cmd, &env{cfg: cfg, db: db}, args)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "lunchctl",
		Short:         "Maintenance commands for the lunch vote service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		migrateCmd(),
		createAdminCmd(),
		snapshotResultsCmd(),
		pruneTokensCmd(),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "lunchctl version %s\n", Version)
			},
		},
	)
	return cmd
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate [name]",
		Short: "Run one migration file, or every up migration when no name is given",
		Example: `  lunchctl migrate
  lunchctl migrate init.up
  lunchctl migrate 000002_menu_results.down`,
		Args: cobra.MaximumNArgs(1),
		RunE: withDB(func(ctx context.Context, cmd *cobra.Command, e *env, args []string) error {
			if len(args) == 0 {
				if err := postgres.ApplyMigrations(ctx, e.db); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "All migrations executed successfully.")
				return nil
			}

			name, err := postgres.RunMigration(ctx, e.db, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Migration file %s executed successfully.\n", name)
			return nil
		}),
	}
}

func createAdminCmd() *cobra.Command {
	var input ports.CreateUserInput

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create a user with the admin role",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if input.Password == "" {
				input.Password = os.Getenv("ADMIN_PASSWORD")
			}
			if input.Password == "" {
				return errors.New("a password is required: use --password or ADMIN_PASSWORD")
			}
			return nil
		},
		RunE: withDB(func(ctx context.Context, cmd *cobra.Command, e *env, args []string) error {
			input.Role = domain.RoleAdmin
			user, err := services.NewUserService(postgres.NewUserRepository(e.db)).Create(ctx, input)
			if err != nil {
				return fmt.Errorf("create admin: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Admin %s created with id %s.\n", user.Username, user.ID)
			return nil
		}),
	}

	cmd.Flags().StringVar(&input.Username, "username", "admin", "Admin username")
	cmd.Flags().StringVar(&input.Email, "email", "", "Admin email")
	cmd.Flags().StringVar(&input.Password, "password", "", "Admin password (defaults to $ADMIN_PASSWORD)")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func snapshotResultsCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "snapshot-results",
		Short: "Store the per-menu vote totals of a day",
		RunE: withDB(func(ctx context.Context, cmd *cobra.Command, e *env, args []string) error {
			day, err := resolveDate(date, e.cfg.Today)
			if err != nil {
				return err
			}

			summary := services.NewSummaryService(postgres.NewMenuResultRepository(e.db))
			results, err := summary.SnapshotDay(ctx, day)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(results)
		}),
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to snapshot as YYYY-MM-DD (defaults to today)")
	return cmd
}

func pruneTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prune-tokens",
		Short: "Delete expired and revoked refresh tokens",
		RunE: withDB(func(ctx context.Context, cmd *cobra.Command, e *env, args []string) error {
			auth := services.NewAuthService(postgres.NewUserRepository(e.db), postgres.NewAuthRepository(e.db), nil, services.AuthConfig{
				JWTSecret: []byte(e.cfg.JWTSecret),
			})
			n, err := auth.PruneRefreshTokens(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d refresh tokens deleted.\n", n)
			return nil
		}),
	}
}

func resolveDate(raw string, today func() domain.Date) (domain.Date, error) {
	if raw == "" {
		return today(), nil
	}
	return domain.ParseDate(raw)
}
