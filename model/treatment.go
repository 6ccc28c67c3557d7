package model

// Treatment represents a treatment entity
// @Description Treatment information
type Treatment struct {
	ID                 uint   `json:"id" gorm:"column:id;primaryKey;autoIncrement" example:"1"`
	DoctorID           uint   `json:"doctorID" gorm:"column:doctorID;index" example:"1"`
	PatientID          uint   `json:"patientID" gorm:"column:patientID;index" example:"1"`
	Status             string `json:"status" gorm:"column:status;type:varchar(255)" example:"ongoing"`
	StartTreatmentDate string `json:"start_treatment_date" gorm:"column:start_treatment_date;type:varchar(32)" example:"2025-01-15 09:00:00"`
	LastTreatedDate    string `json:"last_treated_date" gorm:"column:last_treated_date;type:varchar(32)" example:"2025-01-22 09:00:00"`
	ShortDetail        string `json:"short_detail" gorm:"column:short_detail;type:text" example:"Back pain"`

	// Deleting the referenced doctor or patient removes the treatment.
	Doctor  *Doctor  `json:"-" gorm:"foreignKey:DoctorID;references:ID;constraint:OnDelete:CASCADE"`
	Patient *Patient `json:"-" gorm:"foreignKey:PatientID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Treatment) TableName() string {
	return "treatment"
}

func (t Treatment) UpdateColumns() map[string]interface{} {
	return map[string]interface{}{
		"doctorID":             t.DoctorID,
		"patientID":            t.PatientID,
		"status":               t.Status,
		"start_treatment_date": t.StartTreatmentDate,
		"last_treated_date":    t.LastTreatedDate,
		"short_detail":         t.ShortDetail,
	}
}

// TreatmentRequest represents a treatment request
// @Description Treatment request information
type TreatmentRequest struct {
	DoctorID           uint   `json:"doctorID" binding:"required" example:"1"`
	PatientID          uint   `json:"patientID" binding:"required" example:"1"`
	Status             string `json:"status" example:"ongoing"`
	StartTreatmentDate string `json:"start_treatment_date" example:"2025-01-15 09:00:00"`
	LastTreatedDate    string `json:"last_treated_date" example:"2025-01-22 09:00:00"`
	ShortDetail        string `json:"short_detail" example:"Back pain"`
}

func (r TreatmentRequest) Treatment() Treatment {
	return Treatment{
		DoctorID:           r.DoctorID,
		PatientID:          r.PatientID,
		Status:             r.Status,
		StartTreatmentDate: r.StartTreatmentDate,
		LastTreatedDate:    r.LastTreatedDate,
		ShortDetail:        r.ShortDetail,
	}
}

// TreatmentListing represents one row of GET /treatment
// @Description Treatment joined with its doctor and patient names
type TreatmentListing struct {
	ID                 uint   `json:"id" gorm:"column:id" example:"1"`
	DoctorID           uint   `json:"doctorID" gorm:"column:doctorID" example:"1"`
	PatientID          uint   `json:"patientID" gorm:"column:patientID" example:"1"`
	Status             string `json:"status" gorm:"column:status" example:"ongoing"`
	StartTreatmentDate string `json:"start_treatment_date" gorm:"column:start_treatment_date" example:"2025-01-15 09:00:00"`
	LastTreatedDate    string `json:"last_treated_date" gorm:"column:last_treated_date" example:"2025-01-22 09:00:00"`
	ShortDetail        string `json:"short_detail" gorm:"column:short_detail" example:"Back pain"`
	DoctorName         string `json:"doctor_name" gorm:"column:doctor_name" example:"Dr. A"`
	PatientName        string `json:"patient_name" gorm:"column:patient_name" example:"John Doe"`
}
