package repository

import (
	"context"

	"github.com/ariebrainware/inet-clinic/model"
	"gorm.io/gorm"
)

// ListTreatmentDetails returns the details of one treatment joined with the
// treatment, its patient and its doctor. An empty slice means no rows matched.
func (r *Repository) ListTreatmentDetails(ctx context.Context, treatmentID uint) ([]model.TreatmentDetailListing, error) {
	details := []model.TreatmentDetailListing{}
	if err := treatmentDetailListingQuery(r.conn(ctx), treatmentID).Scan(&details).Error; err != nil {
		return nil, err
	}
	return details, nil
}

func treatmentDetailListingQuery(db *gorm.DB, treatmentID uint) *gorm.DB {
	return db.Table("treatment_detail AS td").
		Select("td.id AS treatment_detail_id, ? AS ?, td.timestamp, td.next_treatment_date, "+
			"td.dispensing_medicine, td.latest_treatment_detail, "+
			"t.status, t.start_treatment_date, t.last_treated_date, t.short_detail, "+
			"p.name AS patient_name, d.name AS doctor_name",
			quoted("td", "treatmentID"), quoted("", "treatmentID")).
		Joins("JOIN treatment t ON ? = t.id", quoted("td", "treatmentID")).
		Joins("JOIN patient p ON ? = p.id", quoted("t", "patientID")).
		Joins("JOIN doctor d ON ? = d.id", quoted("t", "doctorID")).
		Where("? = ?", quoted("td", "treatmentID"), treatmentID).
		Order("td.id")
}

// GetTreatmentDetail returns the treatment detail with the given id or ErrNotFound.
func (r *Repository) GetTreatmentDetail(ctx context.Context, id uint) (model.TreatmentDetail, error) {
	var detail model.TreatmentDetail
	err := r.first(ctx, &detail, id)
	return detail, err
}

// CreateTreatmentDetail inserts a treatment detail and returns its generated id.
func (r *Repository) CreateTreatmentDetail(ctx context.Context, detail model.TreatmentDetail) (uint, error) {
	detail.ID = 0
	if err := r.conn(ctx).Omit("Treatment").Create(&detail).Error; err != nil {
		return 0, err
	}
	return detail.ID, nil
}

// UpdateTreatmentDetail overwrites every treatment detail column and returns the affected row count.
func (r *Repository) UpdateTreatmentDetail(ctx context.Context, id uint, detail model.TreatmentDetail) (int64, error) {
	return r.update(ctx, &model.TreatmentDetail{}, id, detail.UpdateColumns())
}

// DeleteTreatmentDetail removes one treatment detail.
func (r *Repository) DeleteTreatmentDetail(ctx context.Context, id uint) error {
	return r.conn(ctx).Where("id = ?", id).Delete(&model.TreatmentDetail{}).Error
}
