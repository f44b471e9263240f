package commission

import (
	"time"

	"gorm.io/gorm"
)

// Paid flag values. A paid record is terminal: settlement never touches
// it again and there is no way back to pending.
const (
	StatusPending = 0
	StatusPaid    = 1
)

// Commission is the settlement record derived when an application reaches
// "Visa Granted". PayableFee is the yearly fee after the scholarship
// discount, rounded to whole units. FinalAmount is always computed, never
// hand-entered. Version backs optimistic locking so concurrent settlement
// edits surface as conflicts instead of silently losing a write.
type Commission struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	ApplicationID      uint      `gorm:"not null;uniqueIndex" json:"applicationId"`
	StudentName        string    `json:"studentName"`
	AgentID            uint      `gorm:"index" json:"agentId"`
	AgentName          string    `json:"agentName"`
	Currency           string    `json:"currency"`
	YearlyFee          string    `json:"yearlyFee"`
	ScholarshipPercent string    `json:"scholarshipPercent"`
	PayableFee         string    `json:"payableFee"`
	Charges            float64   `gorm:"not null;default:0" json:"charges"`
	TDSPercent         float64   `gorm:"not null;default:0" json:"tds"`
	GSTPercent         float64   `gorm:"not null;default:0" json:"gst"`
	ExchangeRate       float64   `gorm:"not null;default:0" json:"rate"`
	CommissionRate     float64   `gorm:"not null;default:0" json:"commission"`
	FinalAmount        float64   `gorm:"not null;default:0" json:"finalAmount"`
	Paid               int       `gorm:"not null;default:0;index" json:"paid"`
	Version            uint      `gorm:"not null;default:1" json:"-"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Commission{})
}
