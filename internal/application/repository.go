package application

import "gorm.io/gorm"

type Repository interface {
	Save(db *gorm.DB, a *Application) error
	FindByID(db *gorm.DB, id uint) (*Application, error)
	ListAll(db *gorm.DB) ([]Application, error)
	ListByStudent(db *gorm.DB, studentID uint) ([]Application, error)
	UpdateStatus(db *gorm.DB, id uint, status string) error
	Delete(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Save(db *gorm.DB, a *Application) error {
	return db.Save(a).Error
}

func (r *repositoryImpl) FindByID(db *gorm.DB, id uint) (*Application, error) {
	var a Application
	if err := db.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repositoryImpl) ListAll(db *gorm.DB) ([]Application, error) {
	var apps []Application
	err := db.Find(&apps).Error
	return apps, err
}

func (r *repositoryImpl) ListByStudent(db *gorm.DB, studentID uint) ([]Application, error) {
	var apps []Application
	err := db.Where("student_id = ?", studentID).Find(&apps).Error
	return apps, err
}

func (r *repositoryImpl) UpdateStatus(db *gorm.DB, id uint, status string) error {
	return db.Model(&Application{}).Where("id = ?", id).Update("status", status).Error
}

func (r *repositoryImpl) Delete(db *gorm.DB, id uint) error {
	return db.Delete(&Application{}, id).Error
}
