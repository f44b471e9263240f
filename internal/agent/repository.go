package agent

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrNotFound means no agent name matched the student's referral field.
	ErrNotFound = errors.New("agent not found")
	// ErrAmbiguous means more than one agent carries the same normalized name.
	ErrAmbiguous = errors.New("agent name matches more than one agent")
)

type Repository interface {
	Save(db *gorm.DB, a *Agent) error
	FindByID(db *gorm.DB, id uint) (*Agent, error)
	List(db *gorm.DB, nameFilter string) ([]Agent, error)
	Delete(db *gorm.DB, id uint) error
	LookupByName(db *gorm.DB, name string) (*Agent, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Save(db *gorm.DB, a *Agent) error {
	return db.Save(a).Error
}

func (r *repositoryImpl) FindByID(db *gorm.DB, id uint) (*Agent, error) {
	var a Agent
	if err := db.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repositoryImpl) List(db *gorm.DB, nameFilter string) ([]Agent, error) {
	var agents []Agent
	q := db
	if nameFilter != "" {
		q = q.Where("name ILIKE ?", "%"+nameFilter+"%")
	}
	err := q.Find(&agents).Error
	return agents, err
}

func (r *repositoryImpl) Delete(db *gorm.DB, id uint) error {
	return db.Delete(&Agent{}, id).Error
}

// LookupByName resolves a free-text referral name against agent records.
// Matching is case-insensitive on the trimmed name. An ambiguous match is
// an error: settlement money must not flow to an arbitrary agent.
func (r *repositoryImpl) LookupByName(db *gorm.DB, name string) (*Agent, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" {
		return nil, ErrNotFound
	}

	var matches []Agent
	err := db.Where("LOWER(TRIM(name)) = ?", normalized).Limit(2).Find(&matches).Error
	if err != nil {
		return nil, err
	}
	switch len(matches) {
	case 0:
		return nil, ErrNotFound
	case 1:
		return &matches[0], nil
	default:
		return nil, ErrAmbiguous
	}
}
