package cmd

import (
	"fmt"

	"github.com/ariebrainware/inet-clinic/config"
	"github.com/ariebrainware/inet-clinic/model"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newMigrateCommand(envFile *string) *cobra.Command {
	var withRequestLog bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create missing tables and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*envFile)
			if err != nil {
				return err
			}

			db, err := config.OpenDatabase(cfg)
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer func() { _ = config.CloseDatabase(db) }()

			models := append([]interface{}{}, model.ClinicModels...)
			if withRequestLog || cfg.RequestLogPersist {
				models = append(models, &model.RequestLog{})
			}
			if err := model.Migrate(db, models...); err != nil {
				return err
			}
			log.Info().Int("tables", len(models)).Msg("Migration finished")
			return nil
		},
	}

	cmd.Flags().BoolVar(&withRequestLog, "with-request-log", false, "Also create the request_log table")
	return cmd
}
