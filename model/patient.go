package model

type Patient struct {
	ID            uint   `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Name          string `json:"name" gorm:"column:name;type:varchar(255)"`
	DateOfBirth   string `json:"date_of_birth" gorm:"column:date_of_birth;type:varchar(32)"`
	BloodType     string `json:"blood_type" gorm:"column:blood_type;type:varchar(5)"`
	Weight        int    `json:"weight" gorm:"column:weight"`
	Height        int    `json:"height" gorm:"column:height"`
	Contact       string `json:"contact" gorm:"column:contact;type:varchar(255)"`
	PatientDetail string `json:"patient_detail" gorm:"column:patient_detail;type:text"`
}

func (Patient) TableName() string {
	return "patient"
}

func (p Patient) UpdateColumns() map[string]interface{} {
	return map[string]interface{}{
		"name":           p.Name,
		"date_of_birth":  p.DateOfBirth,
		"blood_type":     p.BloodType,
		"weight":         p.Weight,
		"height":         p.Height,
		"contact":        p.Contact,
		"patient_detail": p.PatientDetail,
	}
}

type PatientRequest struct {
	Name          string `json:"name" binding:"required" example:"John Doe"`
	DateOfBirth   string `json:"date_of_birth" example:"1990-05-17"`
	BloodType     string `json:"blood_type" binding:"max=5" example:"O+"`
	Weight        int    `json:"weight" example:"70"`
	Height        int    `json:"height" example:"175"`
	Contact       string `json:"contact" example:"081234567890"`
	PatientDetail string `json:"patient_detail" example:"Allergic to penicillin"`
}

func (r PatientRequest) Patient() Patient {
	return Patient{
		Name:          r.Name,
		DateOfBirth:   r.DateOfBirth,
		BloodType:     r.BloodType,
		Weight:        r.Weight,
		Height:        r.Height,
		Contact:       r.Contact,
		PatientDetail: r.PatientDetail,
	}
}
