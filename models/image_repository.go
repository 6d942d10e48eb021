package models

import (
	"errors"

	"gorm.io/gorm"
)

// ErrImageNotFound is returned when no image exists for the given id.
var ErrImageNotFound = errors.New("image not found")

type ImageRepository struct {
	db *gorm.DB
}

func NewImageRepository(db *gorm.DB) *ImageRepository {
	return &ImageRepository{
		db: db,
	}
}

func (r *ImageRepository) InTransaction(fn func(ImageStore) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&ImageRepository{db: tx})
	})
}

func (r *ImageRepository) FindAll() ([]Image, error) {
	var images []Image
	if err := r.db.Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

func (r *ImageRepository) FindByID(id uint) (*Image, error) {
	var image Image
	if err := r.db.First(&image, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrImageNotFound
		}
		return nil, err
	}
	return &image, nil
}

func (r *ImageRepository) ExistsByID(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&Image{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ImageRepository) Save(i *Image) error {
	return r.db.Save(i).Error
}

func (r *ImageRepository) DeleteByID(id uint) error {
	return r.db.Delete(&Image{}, id).Error
}
