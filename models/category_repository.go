package models

import (
	"errors"

	"gorm.io/gorm"
)

// ErrCategoryNotFound is returned when no category exists for the given id.
var ErrCategoryNotFound = errors.New("category not found")

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{
		db: db,
	}
}

func (r *CategoryRepository) InTransaction(fn func(CategoryStore) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&CategoryRepository{db: tx})
	})
}

func (r *CategoryRepository) FindAll() ([]Category, error) {
	var categories []Category
	if err := r.db.Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoryRepository) FindByID(id uint) (*Category, error) {
	var category Category
	if err := r.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) ExistsByID(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&Category{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ExistsByNameFold reports whether a category with the given name exists,
// compared case-insensitively.
func (r *CategoryRepository) ExistsByNameFold(name string) (bool, error) {
	var count int64
	if err := r.db.Model(&Category{}).Where("LOWER(name) = LOWER(?)", name).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *CategoryRepository) Save(c *Category) error {
	return r.db.Save(c).Error
}

func (r *CategoryRepository) DeleteByID(id uint) error {
	return r.db.Delete(&Category{}, id).Error
}
