package repository

import (
	"context"
	"fmt"

	"github.com/ariebrainware/inet-clinic/model"
	"gorm.io/gorm"
)

// ListTreatments returns every treatment with its doctor and patient names.
// Treatments whose doctor or patient no longer exists are not returned.
func (r *Repository) ListTreatments(ctx context.Context) ([]model.TreatmentListing, error) {
	treatments := []model.TreatmentListing{}
	if err := treatmentListingQuery(r.conn(ctx)).Scan(&treatments).Error; err != nil {
		return nil, err
	}
	return treatments, nil
}

func treatmentListingQuery(db *gorm.DB) *gorm.DB {
	return db.Table("treatment").
		Select("treatment.id, ? AS ?, ? AS ?, treatment.status, "+
			"treatment.start_treatment_date, treatment.last_treated_date, treatment.short_detail, "+
			"doctor.name AS doctor_name, patient.name AS patient_name",
			quoted("treatment", "doctorID"), quoted("", "doctorID"),
			quoted("treatment", "patientID"), quoted("", "patientID")).
		Joins("JOIN doctor ON ? = doctor.id", quoted("treatment", "doctorID")).
		Joins("JOIN patient ON ? = patient.id", quoted("treatment", "patientID")).
		Order("treatment.id")
}

// GetTreatment returns the treatment with the given id or ErrNotFound.
func (r *Repository) GetTreatment(ctx context.Context, id uint) (model.Treatment, error) {
	var treatment model.Treatment
	err := r.first(ctx, &treatment, id)
	return treatment, err
}

// CreateTreatment inserts a treatment and returns its generated id.
func (r *Repository) CreateTreatment(ctx context.Context, treatment model.Treatment) (uint, error) {
	treatment.ID = 0
	if err := r.conn(ctx).Omit("Doctor", "Patient").Create(&treatment).Error; err != nil {
		return 0, err
	}
	return treatment.ID, nil
}

// UpdateTreatment overwrites every treatment column and returns the affected row count.
func (r *Repository) UpdateTreatment(ctx context.Context, id uint, treatment model.Treatment) (int64, error) {
	return r.update(ctx, &model.Treatment{}, id, treatment.UpdateColumns())
}

// DeleteTreatment removes the treatment details of a treatment and then the
// treatment itself inside one transaction. The second statement only runs when
// the first succeeded; any failure rolls both back.
func (r *Repository) DeleteTreatment(ctx context.Context, id uint) error {
	return r.conn(ctx).Transaction(func(tx *gorm.DB) error {
		if err := detailsOfTreatment(tx, id).Delete(&model.TreatmentDetail{}).Error; err != nil {
			return fmt.Errorf("%w: %w", ErrDeleteTreatmentDetails, err)
		}
		if err := tx.Where("id = ?", id).Delete(&model.Treatment{}).Error; err != nil {
			return fmt.Errorf("%w: %w", ErrDeleteTreatment, err)
		}
		return nil
	})
}
