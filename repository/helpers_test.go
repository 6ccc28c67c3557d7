package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/ariebrainware/inet-clinic/config"
	"github.com/ariebrainware/inet-clinic/model"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestRepository opens a fresh in-memory SQLite database with foreign keys
// enabled and the clinic schema created.
func setupTestRepository(t *testing.T) (*Repository, *gorm.DB) {
	t.Helper()
	cfg := &config.Config{
		DBDriver: config.DriverSQLite,
		DBPath:   fmt.Sprintf("file:testdb_repository_%d?mode=memory&cache=shared", time.Now().UnixNano()),
		AppPort:  3000,
	}
	db, err := config.OpenDatabase(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = config.CloseDatabase(db) })

	require.NoError(t, model.Migrate(db))
	return New(db), db
}

func seedDoctor(t *testing.T, repo *Repository, name string) uint {
	t.Helper()
	id, err := repo.CreateDoctor(context.Background(), model.Doctor{
		Name:                         name,
		Department:                   "Cardio",
		Contact:                      "555",
		DateOfBirth:                  "1980-01-01",
		MedicalPracticeLicenseNumber: "X1",
	})
	require.NoError(t, err)
	return id
}

func seedPatient(t *testing.T, repo *Repository, name string) uint {
	t.Helper()
	id, err := repo.CreatePatient(context.Background(), model.Patient{
		Name:        name,
		DateOfBirth: "1990-05-17",
		BloodType:   "O+",
		Weight:      70,
		Height:      175,
		Contact:     "0812",
	})
	require.NoError(t, err)
	return id
}

func seedTreatment(t *testing.T, repo *Repository, doctorID, patientID uint) uint {
	t.Helper()
	id, err := repo.CreateTreatment(context.Background(), model.Treatment{
		DoctorID:           doctorID,
		PatientID:          patientID,
		Status:             "ongoing",
		StartTreatmentDate: "2025-01-15 09:00:00",
		LastTreatedDate:    "2025-01-22 09:00:00",
		ShortDetail:        "Back pain",
	})
	require.NoError(t, err)
	return id
}

func seedTreatmentDetail(t *testing.T, repo *Repository, treatmentID uint, medicine string) uint {
	t.Helper()
	id, err := repo.CreateTreatmentDetail(context.Background(), model.TreatmentDetail{
		TreatmentID:           treatmentID,
		Timestamp:             "2025-01-15 09:30:00",
		NextTreatmentDate:     "2025-01-22",
		DispensingMedicine:    medicine,
		LatestTreatmentDetail: "Pain reduced",
	})
	require.NoError(t, err)
	return id
}

func countRows(t *testing.T, db *gorm.DB, table string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Table(table).Count(&n).Error)
	return n
}
