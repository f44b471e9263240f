package student

import "gorm.io/gorm"

type Repository interface {
	Save(db *gorm.DB, s *Student) error
	FindByID(db *gorm.DB, id uint) (*Student, error)
	List(db *gorm.DB, nameFilter string) ([]Student, error)
	Delete(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Save(db *gorm.DB, s *Student) error {
	return db.Save(s).Error
}

func (r *repositoryImpl) FindByID(db *gorm.DB, id uint) (*Student, error) {
	var s Student
	if err := db.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repositoryImpl) List(db *gorm.DB, nameFilter string) ([]Student, error) {
	var students []Student
	q := db.Preload("Applications")
	if nameFilter != "" {
		q = q.Where("name ILIKE ?", "%"+nameFilter+"%")
	}
	err := q.Find(&students).Error
	return students, err
}

func (r *repositoryImpl) Delete(db *gorm.DB, id uint) error {
	return db.Delete(&Student{}, id).Error
}
