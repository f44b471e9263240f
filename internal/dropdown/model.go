package dropdown

import "gorm.io/gorm"

// DocOption is one entry in the document-type dropdown.
type DocOption struct {
	gorm.Model
	Name string `json:"name" gorm:"index"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&DocOption{})
}
