package repository

import (
	"context"
	"testing"

	"github.com/ariebrainware/inet-clinic/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndGetDoctor(t *testing.T) {
	repo, _ := setupTestRepository(t)
	ctx := context.Background()

	id, err := repo.CreateDoctor(ctx, model.Doctor{
		Name:                         "Dr. A",
		Department:                   "Cardio",
		Contact:                      "555",
		DateOfBirth:                  "1980-01-01",
		DoctorDetail:                 "",
		MedicalPracticeLicenseNumber: "X1",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(1), id)

	doctor, err := repo.GetDoctor(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, model.Doctor{
		ID:                           1,
		Name:                         "Dr. A",
		Department:                   "Cardio",
		Contact:                      "555",
		DateOfBirth:                  "1980-01-01",
		MedicalPracticeLicenseNumber: "X1",
	}, doctor)
}

func TestGetDoctor_NotFound(t *testing.T) {
	repo, _ := setupTestRepository(t)

	_, err := repo.GetDoctor(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateDoctor_ReplacesFullRow(t *testing.T) {
	repo, _ := setupTestRepository(t)
	ctx := context.Background()

	id, err := repo.CreateDoctor(ctx, model.Doctor{Name: "Dr. A", Department: "Cardio", DoctorDetail: "Senior"})
	require.NoError(t, err)

	changes, err := repo.UpdateDoctor(ctx, id, model.Doctor{Name: "Dr. B", Department: "Neuro"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), changes)

	doctor, err := repo.GetDoctor(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Dr. B", doctor.Name)
	assert.Equal(t, "Neuro", doctor.Department)
	assert.Empty(t, doctor.DoctorDetail, "fields missing from the update must not keep stale values")
}

func TestUpdateDoctor_UnknownIDReturnsZeroChanges(t *testing.T) {
	repo, _ := setupTestRepository(t)

	changes, err := repo.UpdateDoctor(context.Background(), 99, model.Doctor{Name: "Nobody"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), changes)
}

func TestDeleteDoctor_CascadesToTreatments(t *testing.T) {
	repo, db := setupTestRepository(t)
	ctx := context.Background()

	doctorID := seedDoctor(t, repo, "Dr. A")
	otherDoctorID := seedDoctor(t, repo, "Dr. B")
	patientID := seedPatient(t, repo, "John")
	treatmentID := seedTreatment(t, repo, doctorID, patientID)
	seedTreatmentDetail(t, repo, treatmentID, "Ibuprofen")
	keptID := seedTreatment(t, repo, otherDoctorID, patientID)

	require.NoError(t, repo.DeleteDoctor(ctx, doctorID))

	_, err := repo.GetDoctor(ctx, doctorID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repo.GetTreatment(ctx, treatmentID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, int64(0), countRows(t, db, "treatment_detail"))

	listing, err := repo.ListTreatments(ctx)
	require.NoError(t, err)
	require.Len(t, listing, 1)
	assert.Equal(t, keptID, listing[0].ID)
}

func TestDeleteDoctor_UnknownIDIsNotAnError(t *testing.T) {
	repo, _ := setupTestRepository(t)

	assert.NoError(t, repo.DeleteDoctor(context.Background(), 7))
}
