package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductCategory is the fixed set of product kinds.
type ProductCategory string

const (
	ProductCategoryPizza     ProductCategory = "PIZZA"
	ProductCategoryHamburger ProductCategory = "HAMBURGER"
)

// Valid reports whether c is one of the known product categories.
func (c ProductCategory) Valid() bool {
	switch c {
	case ProductCategoryPizza, ProductCategoryHamburger:
		return true
	}
	return false
}

// Product represents a sellable product and owns its variations: deleting a
// product deletes every variation with it.
type Product struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:255;not null"`
	Description string
	Category    ProductCategory `gorm:"size:32;not null"`
	Available   bool
	Variations  []ProductVariation `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (p *Product) TableName() string {
	return "products"
}

// ProductVariation is a size/price variant of a product. ProductID is a
// back-reference only; the variation's lifecycle is owned by the product.
type ProductVariation struct {
	ID          uint   `gorm:"primaryKey"`
	SizeName    string `gorm:"size:255"`
	Description string
	Available   bool
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	ProductID   uint            `gorm:"not null"`
}

func (v *ProductVariation) TableName() string {
	return "product_variations"
}

// ProductStore is the persistence contract for products. Save persists the
// product together with its variations; DeleteByID removes the product and
// everything it owns.
type ProductStore interface {
	InTransaction(fn func(ProductStore) error) error
	FindAll() ([]Product, error)
	FindByID(id uint) (*Product, error)
	ExistsByID(id uint) (bool, error)
	Save(p *Product) error
	DeleteByID(id uint) error
}
