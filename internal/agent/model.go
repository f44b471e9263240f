package agent

import "gorm.io/gorm"

// Agent is a recruiting partner. CommissionRate is a percentage point
// value: 12 means the agent keeps 12% of the payable fee.
type Agent struct {
	gorm.Model
	Name                  string  `json:"name"`
	Email                 string  `json:"email"`
	CompanyName           string  `json:"company_name"`
	AgencyType            int     `json:"agency_type"`
	City                  int     `json:"city"`
	State                 int     `json:"state"`
	OwnerName             string  `json:"owner_name"`
	OwnerContact          string  `json:"owner_contact"`
	Telephone             string  `json:"tel_phone"`
	Address               string  `json:"address"`
	ContactPersonName     string  `json:"con_per_name"`
	ContactPersonPhone    string  `json:"con_per_phone"`
	ContactPersonPosition int     `json:"con_per_pos"`
	CommissionRate        float64 `json:"commissionRate" gorm:"not null;default:0"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Agent{})
}
