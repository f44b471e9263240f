package university

import "gorm.io/gorm"

// University is a destination institution offering one or more courses.
type University struct {
	gorm.Model
	Name    string   `json:"name"`
	Country string   `json:"country"`
	City    string   `json:"city"`
	Website string   `json:"website"`
	Courses []Course `gorm:"foreignKey:UniversityID;constraint:OnDelete:CASCADE" json:"courses"`
}

// Course is a program entry in the catalog. YearlyFee is a decimal string
// in the university's local currency, same convention as applications.
type Course struct {
	gorm.Model
	UniversityID   uint   `json:"universityId" gorm:"index;not null"`
	Name           string `json:"name"`
	Level          string `json:"level"`
	YearlyFee      string `json:"yearlyFee"`
	Currency       string `json:"currency"`
	DurationMonths int    `json:"durationMonths"`
	Intake         string `json:"intake"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&University{}, &Course{})
}
