package model

// Doctor represents a doctor entity
// @Description Doctor information
type Doctor struct {
	ID                           uint   `json:"id" gorm:"column:id;primaryKey;autoIncrement" example:"1"`
	Name                         string `json:"name" gorm:"column:name;type:varchar(255)" example:"Dr. A"`
	Department                   string `json:"department" gorm:"column:department;type:varchar(255)" example:"Cardio"`
	Contact                      string `json:"contact" gorm:"column:contact;type:varchar(255)" example:"555"`
	DateOfBirth                  string `json:"date_of_birth" gorm:"column:date_of_birth;type:varchar(32)" example:"1980-01-01"`
	DoctorDetail                 string `json:"doctor_detail" gorm:"column:doctor_detail;type:text" example:""`
	MedicalPracticeLicenseNumber string `json:"medical_practice_license_number" gorm:"column:medical_practice_license_number;type:varchar(255)" example:"X1"`
}

func (Doctor) TableName() string {
	return "doctor"
}

// UpdateColumns returns every non-key column so an update replaces the full row.
func (d Doctor) UpdateColumns() map[string]interface{} {
	return map[string]interface{}{
		"name":                            d.Name,
		"department":                      d.Department,
		"contact":                         d.Contact,
		"date_of_birth":                   d.DateOfBirth,
		"doctor_detail":                   d.DoctorDetail,
		"medical_practice_license_number": d.MedicalPracticeLicenseNumber,
	}
}

// DoctorRequest represents the body of POST /doctor and PUT /doctor/:id
// @Description Doctor request information
type DoctorRequest struct {
	Name                         string `json:"name" binding:"required" example:"Dr. A"`
	Department                   string `json:"department" example:"Cardio"`
	Contact                      string `json:"contact" example:"555"`
	DateOfBirth                  string `json:"date_of_birth" example:"1980-01-01"`
	DoctorDetail                 string `json:"doctor_detail" example:""`
	MedicalPracticeLicenseNumber string `json:"medical_practice_license_number" example:"X1"`
}

func (r DoctorRequest) Doctor() Doctor {
	return Doctor{
		Name:                         r.Name,
		Department:                   r.Department,
		Contact:                      r.Contact,
		DateOfBirth:                  r.DateOfBirth,
		DoctorDetail:                 r.DoctorDetail,
		MedicalPracticeLicenseNumber: r.MedicalPracticeLicenseNumber,
	}
}
