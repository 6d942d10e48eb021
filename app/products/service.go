package products

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/webpanel/deploy/models"
)

type ProductService struct {
	store models.ProductStore
	log   *logrus.Logger
}

func NewProductService(store models.ProductStore, log *logrus.Logger) *ProductService {
	return &ProductService{
		store: store,
		log:   log,
	}
}

// Create persists the product and all of its variations in one transaction.
func (s *ProductService) Create(dto CreateProductDto) (RecoveryProductDto, error) {
	var out RecoveryProductDto
	err := s.store.InTransaction(func(tx models.ProductStore) error {
		entity := toEntity(dto)
		if err := tx.Save(&entity); err != nil {
			return fmt.Errorf("saving product: %w", err)
		}
		out = toDto(&entity)
		return nil
	})
	if err != nil {
		return RecoveryProductDto{}, err
	}

	s.log.WithFields(logrus.Fields{
		"id":         out.ID,
		"variations": len(out.Variations),
	}).Info("product created")
	return out, nil
}

func (s *ProductService) GetAll() ([]RecoveryProductDto, error) {
	var out []RecoveryProductDto
	err := s.store.InTransaction(func(tx models.ProductStore) error {
		list, err := tx.FindAll()
		if err != nil {
			return fmt.Errorf("listing products: %w", err)
		}
		out = make([]RecoveryProductDto, len(list))
		for i := range list {
			out[i] = toDto(&list[i])
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ProductService) GetByID(id uint) (RecoveryProductDto, error) {
	var out RecoveryProductDto
	err := s.store.InTransaction(func(tx models.ProductStore) error {
		entity, err := tx.FindByID(id)
		if err != nil {
			return err
		}
		out = toDto(entity)
		return nil
	})
	if err != nil {
		return RecoveryProductDto{}, err
	}
	return out, nil
}

// Delete removes the product and cascades to its variations.
func (s *ProductService) Delete(id uint) error {
	err := s.store.InTransaction(func(tx models.ProductStore) error {
		exists, err := tx.ExistsByID(id)
		if err != nil {
			return fmt.Errorf("checking product: %w", err)
		}
		if !exists {
			return models.ErrProductNotFound
		}
		return tx.DeleteByID(id)
	})
	if err != nil {
		return err
	}

	s.log.WithField("id", id).Info("product deleted")
	return nil
}
