package commission

import (
	"errors"

	"gorm.io/gorm"
)

// ErrVersionConflict means the record changed under a concurrent writer
// between read and write.
var ErrVersionConflict = errors.New("commission was modified concurrently")

type Repository interface {
	Create(db *gorm.DB, c *Commission) error
	FindByID(db *gorm.DB, id uint) (*Commission, error)
	FindByApplication(db *gorm.DB, applicationID uint) (*Commission, error)
	ListAll(db *gorm.DB) ([]Commission, error)
	Filter(db *gorm.DB, agentIDs []uint, paid *int) ([]Commission, error)
	DeleteByApplication(db *gorm.DB, applicationID uint) error
	UpdateChecked(db *gorm.DB, c *Commission) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Create(db *gorm.DB, c *Commission) error {
	return db.Create(c).Error
}

func (r *repositoryImpl) FindByID(db *gorm.DB, id uint) (*Commission, error) {
	var c Commission
	if err := db.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repositoryImpl) FindByApplication(db *gorm.DB, applicationID uint) (*Commission, error) {
	var c Commission
	if err := db.Where("application_id = ?", applicationID).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repositoryImpl) ListAll(db *gorm.DB) ([]Commission, error) {
	var list []Commission
	err := db.Order("id").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) Filter(db *gorm.DB, agentIDs []uint, paid *int) ([]Commission, error) {
	q := db.Order("id")
	if len(agentIDs) > 0 {
		q = q.Where("agent_id IN ?", agentIDs)
	}
	if paid != nil {
		q = q.Where("paid = ?", *paid)
	}
	var list []Commission
	err := q.Find(&list).Error
	return list, err
}

func (r *repositoryImpl) DeleteByApplication(db *gorm.DB, applicationID uint) error {
	return db.Where("application_id = ?", applicationID).Delete(&Commission{}).Error
}

// UpdateChecked persists the mutable settlement fields guarded by the
// version the caller read. Zero rows affected means a concurrent writer
// got there first.
func (r *repositoryImpl) UpdateChecked(db *gorm.DB, c *Commission) error {
	res := db.Model(&Commission{}).
		Where("id = ? AND version = ?", c.ID, c.Version).
		Updates(map[string]interface{}{
			"charges":         c.Charges,
			"tds_percent":     c.TDSPercent,
			"gst_percent":     c.GSTPercent,
			"exchange_rate":   c.ExchangeRate,
			"commission_rate": c.CommissionRate,
			"final_amount":    c.FinalAmount,
			"paid":            c.Paid,
			"version":         c.Version + 1,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrVersionConflict
	}
	c.Version++
	return nil
}
