package models

import "time"

// Image stores an uploaded image as a base64 payload together with its
// decoded size in bytes.
type Image struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:255"`
	Base64    string `gorm:"type:text"`
	Size      int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (i *Image) TableName() string {
	return "images"
}

// ImageStore is the persistence contract for images.
type ImageStore interface {
	InTransaction(fn func(ImageStore) error) error
	FindAll() ([]Image, error)
	FindByID(id uint) (*Image, error)
	ExistsByID(id uint) (bool, error)
	Save(i *Image) error
	DeleteByID(id uint) error
}
