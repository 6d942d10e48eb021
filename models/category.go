package models

import "time"

// Category represents a product category.
// Names are unique case-insensitively; the service layer checks uniqueness
// before inserting.
type Category struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:255;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c *Category) TableName() string {
	return "categories"
}

// CategoryStore is the persistence contract for categories. InTransaction
// runs fn against a store bound to a single transaction, committing when fn
// returns nil and rolling back otherwise.
type CategoryStore interface {
	InTransaction(fn func(CategoryStore) error) error
	FindAll() ([]Category, error)
	FindByID(id uint) (*Category, error)
	ExistsByID(id uint) (bool, error)
	ExistsByNameFold(name string) (bool, error)
	Save(c *Category) error
	DeleteByID(id uint) error
}
