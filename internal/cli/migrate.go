package cli

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/sgdesh/bank-api/internal/config"
	"github.com/sgdesh/bank-api/internal/repository"
)

func newMigrateCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the Postgres schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if cfg.Store != config.StorePostgres {
				return fmt.Errorf("migrate needs the %s store, configured store is %s", config.StorePostgres, cfg.Store)
			}

			db, err := repository.OpenPostgres(cmd.Context(), cfg.DatabaseURL)
			if err != nil {
				return err
			}
			if sqlDB, err := db.DB(); err == nil {
				defer sqlDB.Close()
			}

			if err := repository.Migrate(cmd.Context(), db); err != nil {
				return err
			}
			log.Println("Schema migrated")
			return nil
		},
	}
}
