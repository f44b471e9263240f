package auth

import "gorm.io/gorm"

// Credential is a back-office login account.
type Credential struct {
	gorm.Model
	Email    string `json:"email" gorm:"unique;not null"`
	Password string `json:"-" gorm:"not null"`
	IsActive bool   `json:"isActive" gorm:"default:true"`
	IsAdmin  bool   `json:"isAdmin" gorm:"default:false"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Credential{})
}
