// Package repository is the data access layer of the clinic API. Every
// method maps to one SQL statement, or to one transaction for cascading deletes.
package repository

import (
	"context"
	"errors"

	"github.com/ariebrainware/inet-clinic/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrNotFound is returned by single-row lookups when no row matches.
	ErrNotFound = errors.New("record not found")
	// ErrDeleteTreatmentDetails marks a failure while removing the details of a treatment.
	ErrDeleteTreatmentDetails = errors.New("error deleting related treatment details")
	// ErrDeleteTreatment marks a failure while removing the treatment row itself.
	ErrDeleteTreatment = errors.New("error deleting treatment")
)

// Repository runs clinic queries against an explicitly passed database handle.
type Repository struct {
	db *gorm.DB
}

// New returns a Repository bound to db.
func New(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) conn(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// first loads the row with the given primary key into dest.
func (r *Repository) first(ctx context.Context, dest interface{}, id uint) error {
	err := r.conn(ctx).Where("id = ?", id).Take(dest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// update overwrites every column of the row with the given primary key and
// returns the number of affected rows.
func (r *Repository) update(ctx context.Context, row interface{}, id uint, columns map[string]interface{}) (int64, error) {
	res := r.conn(ctx).Model(row).Where("id = ?", id).Updates(columns)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// quoted references a column through the dialect's quoting. The foreign key
// columns are mixed case, and PostgreSQL folds unquoted identifiers to lower case.
func quoted(table, name string) clause.Column {
	return clause.Column{Table: table, Name: name}
}

// detailsOwnedBy scopes tx to the treatment details whose treatment has
// ownerColumn equal to id.
func detailsOwnedBy(tx *gorm.DB, ownerColumn string, id uint) *gorm.DB {
	owned := tx.Model(&model.Treatment{}).Select("id").Where("? = ?", quoted("", ownerColumn), id)
	return tx.Where("? IN (?)", quoted("", "treatmentID"), owned)
}

// detailsOfTreatment scopes tx to the treatment details of one treatment.
func detailsOfTreatment(tx *gorm.DB, treatmentID uint) *gorm.DB {
	return tx.Where("? = ?", quoted("", "treatmentID"), treatmentID)
}
