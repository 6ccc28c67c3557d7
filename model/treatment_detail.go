package model

// TreatmentDetail represents a single visit record of a treatment
// @Description Treatment detail information
type TreatmentDetail struct {
	ID                    uint   `json:"id" gorm:"column:id;primaryKey;autoIncrement" example:"1"`
	TreatmentID           uint   `json:"treatmentID" gorm:"column:treatmentID;index" example:"1"`
	Timestamp             string `json:"timestamp" gorm:"column:timestamp;type:varchar(32)" example:"2025-01-15 09:30:00"`
	NextTreatmentDate     string `json:"next_treatment_date" gorm:"column:next_treatment_date;type:varchar(32)" example:"2025-01-22"`
	DispensingMedicine    string `json:"dispensing_medicine" gorm:"column:dispensing_medicine;type:text" example:"Ibuprofen 400mg"`
	LatestTreatmentDetail string `json:"latest_treatment_detail" gorm:"column:latest_treatment_detail;type:text" example:"Pain reduced"`

	// No cascade: the application removes details before their treatment.
	Treatment *Treatment `json:"-" gorm:"foreignKey:TreatmentID;references:ID"`
}

func (TreatmentDetail) TableName() string {
	return "treatment_detail"
}

func (d TreatmentDetail) UpdateColumns() map[string]interface{} {
	return map[string]interface{}{
		"treatmentID":             d.TreatmentID,
		"timestamp":               d.Timestamp,
		"next_treatment_date":     d.NextTreatmentDate,
		"dispensing_medicine":     d.DispensingMedicine,
		"latest_treatment_detail": d.LatestTreatmentDetail,
	}
}

// TreatmentDetailRequest represents a treatment detail request
// @Description Treatment detail request information
type TreatmentDetailRequest struct {
	TreatmentID           uint   `json:"treatmentID" binding:"required" example:"1"`
	Timestamp             string `json:"timestamp" example:"2025-01-15 09:30:00"`
	NextTreatmentDate     string `json:"next_treatment_date" example:"2025-01-22"`
	DispensingMedicine    string `json:"dispensing_medicine" example:"Ibuprofen 400mg"`
	LatestTreatmentDetail string `json:"latest_treatment_detail" example:"Pain reduced"`
}

func (r TreatmentDetailRequest) TreatmentDetail() TreatmentDetail {
	return TreatmentDetail{
		TreatmentID:           r.TreatmentID,
		Timestamp:             r.Timestamp,
		NextTreatmentDate:     r.NextTreatmentDate,
		DispensingMedicine:    r.DispensingMedicine,
		LatestTreatmentDetail: r.LatestTreatmentDetail,
	}
}

// TreatmentDetailListing represents one row of GET /treatment-details/:treatmentID
// @Description Treatment detail joined with its treatment, doctor and patient
type TreatmentDetailListing struct {
	TreatmentDetailID     uint   `json:"treatment_detail_id" gorm:"column:treatment_detail_id" example:"1"`
	TreatmentID           uint   `json:"treatmentID" gorm:"column:treatmentID" example:"1"`
	Timestamp             string `json:"timestamp" gorm:"column:timestamp" example:"2025-01-15 09:30:00"`
	NextTreatmentDate     string `json:"next_treatment_date" gorm:"column:next_treatment_date" example:"2025-01-22"`
	DispensingMedicine    string `json:"dispensing_medicine" gorm:"column:dispensing_medicine" example:"Ibuprofen 400mg"`
	LatestTreatmentDetail string `json:"latest_treatment_detail" gorm:"column:latest_treatment_detail" example:"Pain reduced"`
	Status                string `json:"status" gorm:"column:status" example:"ongoing"`
	StartTreatmentDate    string `json:"start_treatment_date" gorm:"column:start_treatment_date" example:"2025-01-15 09:00:00"`
	LastTreatedDate       string `json:"last_treated_date" gorm:"column:last_treated_date" example:"2025-01-22 09:00:00"`
	ShortDetail           string `json:"short_detail" gorm:"column:short_detail" example:"Back pain"`
	PatientName           string `json:"patient_name" gorm:"column:patient_name" example:"John Doe"`
	DoctorName            string `json:"doctor_name" gorm:"column:doctor_name" example:"Dr. A"`
}
