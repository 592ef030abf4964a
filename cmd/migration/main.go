package main

import (
	"fmt"
	"hospital-service/internal/app/config"
	"hospital-service/internal/app/drivers/database"
	"hospital-service/internal/app/drivers/logger"
	"os"

	migrate "github.com/rubenv/sql-migrate"
	"github.com/spf13/cobra"
)

var env string

var rootCmd = &cobra.Command{
	Use:   "migration",
	Short: "Apply or roll back the hospital service database schema.",
}

func newDirectionCommand(use, short string, direction migrate.MigrationDirection) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			driverConfig := config.NewDriverConfig()
			log := logger.NewLogrusLogger(driverConfig, env)

			db := database.NewPostgresDB(driverConfig)
			defer db.Close()

			n, err := database.RunMigrations(db, direction)
			if err != nil {
				log.WithError(err).Error("Error executing migration")
				return fmt.Errorf("failed to run migrations: %w", err)
			}

			log.WithField("direction", use).Infof("Applied %d migrations!", n)
			return nil
		},
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&env, "env", "development", "environment used to pick the log format")

	rootCmd.AddCommand(newDirectionCommand("up", "Apply all pending migrations", migrate.Up))
	rootCmd.AddCommand(newDirectionCommand("down", "Roll back applied migrations", migrate.Down))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
