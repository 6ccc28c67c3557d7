package repository

import (
	"context"
	"fmt"

	"github.com/ariebrainware/inet-clinic/model"
	"gorm.io/gorm"
)

// GetDoctor returns the doctor with the given id or ErrNotFound.
func (r *Repository) GetDoctor(ctx context.Context, id uint) (model.Doctor, error) {
	var doctor model.Doctor
	err := r.first(ctx, &doctor, id)
	return doctor, err
}

// CreateDoctor inserts a doctor and returns its generated id.
func (r *Repository) CreateDoctor(ctx context.Context, doctor model.Doctor) (uint, error) {
	doctor.ID = 0
	if err := r.conn(ctx).Create(&doctor).Error; err != nil {
		return 0, err
	}
	return doctor.ID, nil
}

// UpdateDoctor overwrites every doctor column and returns the affected row count.
func (r *Repository) UpdateDoctor(ctx context.Context, id uint, doctor model.Doctor) (int64, error) {
	return r.update(ctx, &model.Doctor{}, id, doctor.UpdateColumns())
}

// DeleteDoctor removes a doctor. The database cascades the delete to the
// doctor's treatments; their treatment details are removed first in the same
// transaction because that foreign key does not cascade.
func (r *Repository) DeleteDoctor(ctx context.Context, id uint) error {
	return r.conn(ctx).Transaction(func(tx *gorm.DB) error {
		if err := detailsOwnedBy(tx, "doctorID", id).Delete(&model.TreatmentDetail{}).Error; err != nil {
			return fmt.Errorf("%w: %w", ErrDeleteTreatmentDetails, err)
		}
		return tx.Where("id = ?", id).Delete(&model.Doctor{}).Error
	})
}
