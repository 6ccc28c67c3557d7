package model

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ClinicModels lists the clinic tables in dependency order.
var ClinicModels = []interface{}{
	&Doctor{},
	&Patient{},
	&Treatment{},
	&TreatmentDetail{},
}

// Migrate creates every missing table. Tables that already exist are left as they are.
// A failure on one table is logged and does not stop the remaining ones; all failures
// are returned joined so callers decide whether they are fatal.
func Migrate(db *gorm.DB, models ...interface{}) error {
	if len(models) == 0 {
		models = ClinicModels
	}

	var errs []error
	for _, m := range models {
		table := tableName(db, m)
		if err := db.AutoMigrate(m); err != nil {
			log.Error().Err(err).Str("table", table).Msg("Error creating table")
			errs = append(errs, fmt.Errorf("failed to create table %s: %w", table, err))
			continue
		}
		log.Info().Str("table", table).Msg("Table created or already exists")
	}
	return errors.Join(errs...)
}

func tableName(db *gorm.DB, m interface{}) string {
	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(m); err != nil {
		return fmt.Sprintf("%T", m)
	}
	return stmt.Schema.Table
}
