package repository

import (
	"context"
	"fmt"

	"github.com/ariebrainware/inet-clinic/model"
	"gorm.io/gorm"
)

// GetPatient returns the patient with the given id or ErrNotFound.
func (r *Repository) GetPatient(ctx context.Context, id uint) (model.Patient, error) {
	var patient model.Patient
	err := r.first(ctx, &patient, id)
	return patient, err
}

// CreatePatient inserts a patient and returns its generated id.
func (r *Repository) CreatePatient(ctx context.Context, patient model.Patient) (uint, error) {
	patient.ID = 0
	if err := r.conn(ctx).Create(&patient).Error; err != nil {
		return 0, err
	}
	return patient.ID, nil
}

// UpdatePatient overwrites every patient column and returns the affected row count.
func (r *Repository) UpdatePatient(ctx context.Context, id uint, patient model.Patient) (int64, error) {
	return r.update(ctx, &model.Patient{}, id, patient.UpdateColumns())
}

// DeletePatient mirrors DeleteDoctor for the patient side of a treatment.
func (r *Repository) DeletePatient(ctx context.Context, id uint) error {
	return r.conn(ctx).Transaction(func(tx *gorm.DB) error {
		if err := detailsOwnedBy(tx, "patientID", id).Delete(&model.TreatmentDetail{}).Error; err != nil {
			return fmt.Errorf("%w: %w", ErrDeleteTreatmentDetails, err)
		}
		return tx.Where("id = ?", id).Delete(&model.Patient{}).Error
	})
}
