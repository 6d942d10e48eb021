package models

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrProductNotFound is returned when no product exists for the given id.
var ErrProductNotFound = errors.New("product not found")

type ProductsRepository struct {
	db *gorm.DB
}

func NewProductsRepository(db *gorm.DB) *ProductsRepository {
	return &ProductsRepository{
		db: db,
	}
}

func (r *ProductsRepository) InTransaction(fn func(ProductStore) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&ProductsRepository{db: tx})
	})
}

func (r *ProductsRepository) FindAll() ([]Product, error) {
	var products []Product
	if err := r.db.
		Preload("Variations").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductsRepository) FindByID(id uint) (*Product, error) {
	var product Product
	if err := r.db.
		Preload("Variations").
		First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *ProductsRepository) ExistsByID(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&Product{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save persists the product and its variations in one go.
func (r *ProductsRepository) Save(p *Product) error {
	return r.db.Save(p).Error
}

// DeleteByID removes the product together with its owned variations.
func (r *ProductsRepository) DeleteByID(id uint) error {
	return r.db.Select(clause.Associations).Delete(&Product{ID: id}).Error
}
