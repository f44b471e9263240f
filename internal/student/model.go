package student

import (
	"gorm.io/gorm"

	"github.com/edulink/api-agency/internal/application"
)

// Student is a registered applicant. ReferringAgent is free text entered at
// registration and matched against agent names when a visa is granted.
type Student struct {
	gorm.Model
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	Gender         string `json:"gender"`
	Passport       string `json:"passport"`
	PassportExpiry string `json:"passExpiry"`
	ReferringAgent string `json:"agent"`
	MaritalStatus  string `json:"single"`

	Applications []application.Application `gorm:"foreignKey:StudentID" json:"applications,omitempty"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Student{})
}
