package university

import "gorm.io/gorm"

type Repository interface {
	Create(db *gorm.DB, u *University) error
	FindByID(db *gorm.DB, id uint) (*University, error)
	List(db *gorm.DB, country string) ([]University, error)
	Update(db *gorm.DB, u *University) error
	Delete(db *gorm.DB, id uint) error
	AddCourse(db *gorm.DB, c *Course) error
	DeleteCourse(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Create(db *gorm.DB, u *University) error {
	return db.Create(u).Error
}

func (r *repositoryImpl) FindByID(db *gorm.DB, id uint) (*University, error) {
	var u University
	if err := db.Preload("Courses").First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repositoryImpl) List(db *gorm.DB, country string) ([]University, error) {
	var list []University
	q := db.Preload("Courses")
	if country != "" {
		q = q.Where("country = ?", country)
	}
	err := q.Find(&list).Error
	return list, err
}

func (r *repositoryImpl) Update(db *gorm.DB, u *University) error {
	return db.Save(u).Error
}

func (r *repositoryImpl) Delete(db *gorm.DB, id uint) error {
	return db.Delete(&University{}, id).Error
}

func (r *repositoryImpl) AddCourse(db *gorm.DB, c *Course) error {
	return db.Create(c).Error
}

func (r *repositoryImpl) DeleteCourse(db *gorm.DB, id uint) error {
	return db.Delete(&Course{}, id).Error
}
