package application

import "gorm.io/gorm"

// Application is one student's application to a university program.
// YearlyFee and ScholarshipPercent are stored as decimal strings, the way
// the intake form submits them. Currency is derived from the destination
// country whenever the application is created or edited.
type Application struct {
	gorm.Model
	StudentID          uint   `json:"student_id" gorm:"index;not null"`
	UniversityName     string `json:"university_name"`
	Program            string `json:"program"`
	Intake             string `json:"intake"`
	Country            string `json:"country"`
	Status             string `json:"status" gorm:"size:100;default:'Application Created';index"`
	YearlyFee          string `json:"yearlyFee"`
	ScholarshipPercent string `json:"scholarshipPercent"`
	Currency           string `json:"currency"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Application{})
}
