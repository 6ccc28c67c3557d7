package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_CreatesClinicTables(t *testing.T) {
	db := setupTestDB(t, "schema")

	require.NoError(t, Migrate(db))

	for _, table := range []string{"doctor", "patient", "treatment", "treatment_detail"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
	assert.False(t, db.Migrator().HasTable("request_log"))
}

func TestMigrate_Idempotent(t *testing.T) {
	db := setupTestDB(t, "schema_twice", ClinicModels...)
	require.NoError(t, db.Create(&Doctor{Name: "Dr. A"}).Error)

	require.NoError(t, Migrate(db))

	var n int64
	require.NoError(t, db.Model(&Doctor{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestMigrate_ColumnNames(t *testing.T) {
	db := setupTestDB(t, "schema_columns", ClinicModels...)

	assert.True(t, db.Migrator().HasColumn(&Treatment{}, "doctorID"))
	assert.True(t, db.Migrator().HasColumn(&Treatment{}, "patientID"))
	assert.True(t, db.Migrator().HasColumn(&TreatmentDetail{}, "treatmentID"))
	assert.True(t, db.Migrator().HasColumn(&Doctor{}, "medical_practice_license_number"))
}

func TestMigrate_ReportsFailures(t *testing.T) {
	db := setupTestDB(t, "schema_fail")
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	err = Migrate(db, &Doctor{}, &Patient{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "doctor")
	assert.Contains(t, err.Error(), "patient")
}

func TestTableName(t *testing.T) {
	db := setupTestDB(t, "schema_names")

	assert.Equal(t, "treatment_detail", tableName(db, &TreatmentDetail{}))
	assert.Equal(t, "request_log", tableName(db, &RequestLog{}))
}
