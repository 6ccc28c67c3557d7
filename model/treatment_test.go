package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreatment_CascadesFromDoctor(t *testing.T) {
	db := setupTestDB(t, "treatment_cascade", ClinicModels...)
	doctor := Doctor{Name: "Dr. A"}
	patient := Patient{Name: "John Doe"}
	require.NoError(t, db.Create(&doctor).Error)
	require.NoError(t, db.Create(&patient).Error)
	treatment := Treatment{DoctorID: doctor.ID, PatientID: patient.ID}
	require.NoError(t, db.Omit("Doctor", "Patient").Create(&treatment).Error)

	require.NoError(t, db.Delete(&Doctor{}, doctor.ID).Error)

	var n int64
	require.NoError(t, db.Model(&Treatment{}).Count(&n).Error)
	assert.Equal(t, int64(0), n)
}

func TestTreatment_RejectsUnknownPatient(t *testing.T) {
	db := setupTestDB(t, "treatment_fk", ClinicModels...)
	doctor := Doctor{Name: "Dr. A"}
	require.NoError(t, db.Create(&doctor).Error)

	err := db.Omit("Doctor", "Patient").Create(&Treatment{DoctorID: doctor.ID, PatientID: 404}).Error

	assert.Error(t, err)
}

func TestTreatmentDetail_BlocksTreatmentDelete(t *testing.T) {
	db := setupTestDB(t, "detail_restrict", ClinicModels...)
	doctor := Doctor{Name: "Dr. A"}
	patient := Patient{Name: "John Doe"}
	require.NoError(t, db.Create(&doctor).Error)
	require.NoError(t, db.Create(&patient).Error)
	treatment := Treatment{DoctorID: doctor.ID, PatientID: patient.ID}
	require.NoError(t, db.Omit("Doctor", "Patient").Create(&treatment).Error)
	require.NoError(t, db.Omit("Treatment").Create(&TreatmentDetail{TreatmentID: treatment.ID}).Error)

	// Details do not cascade, so the treatment cannot go first.
	assert.Error(t, db.Delete(&Treatment{}, treatment.ID).Error)
}

func TestTreatmentRequest_Treatment(t *testing.T) {
	req := TreatmentRequest{DoctorID: 1, PatientID: 2, Status: "ongoing", ShortDetail: "Back pain"}

	got := req.Treatment()

	assert.Equal(t, uint(1), got.DoctorID)
	assert.Equal(t, uint(2), got.PatientID)
	assert.Equal(t, "ongoing", got.Status)
	assert.Equal(t, "Back pain", got.ShortDetail)
	assert.Zero(t, got.ID)
}

func TestTreatmentDetailRequest_TreatmentDetail(t *testing.T) {
	req := TreatmentDetailRequest{TreatmentID: 3, DispensingMedicine: "Ibuprofen"}

	got := req.TreatmentDetail()

	assert.Equal(t, uint(3), got.TreatmentID)
	assert.Equal(t, "Ibuprofen", got.DispensingMedicine)
	assert.Len(t, got.UpdateColumns(), 5)
}
