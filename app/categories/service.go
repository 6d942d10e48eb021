package categories

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/webpanel/deploy/models"
)

// ErrNameExists is returned when creating a category whose name is already
// taken, compared case-insensitively.
var ErrNameExists = errors.New("category name already exists")

type CategoryService struct {
	store models.CategoryStore
	log   *logrus.Logger
}

func NewCategoryService(store models.CategoryStore, log *logrus.Logger) *CategoryService {
	return &CategoryService{
		store: store,
		log:   log,
	}
}

func (s *CategoryService) Create(dto CreateCategoryDto) (RecoveryCategoryDto, error) {
	var out RecoveryCategoryDto
	err := s.store.InTransaction(func(tx models.CategoryStore) error {
		entity := toEntity(dto)

		taken, err := tx.ExistsByNameFold(entity.Name)
		if err != nil {
			return fmt.Errorf("checking category name: %w", err)
		}
		if taken {
			return fmt.Errorf("%w: %q", ErrNameExists, entity.Name)
		}

		if err := tx.Save(&entity); err != nil {
			return fmt.Errorf("saving category: %w", err)
		}
		out = toDto(&entity)
		return nil
	})
	if err != nil {
		return RecoveryCategoryDto{}, err
	}

	s.log.WithField("id", out.ID).Info("category created")
	return out, nil
}

func (s *CategoryService) GetAll() ([]RecoveryCategoryDto, error) {
	var out []RecoveryCategoryDto
	err := s.store.InTransaction(func(tx models.CategoryStore) error {
		list, err := tx.FindAll()
		if err != nil {
			return fmt.Errorf("listing categories: %w", err)
		}
		out = make([]RecoveryCategoryDto, len(list))
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

func (s *CategoryService) GetByID(id uint) (RecoveryCategoryDto, error) {
	var out RecoveryCategoryDto
	err := s.store.InTransaction(func(tx models.CategoryStore) error {
		entity, err := tx.FindByID(id)
		if err != nil {
			return err
		}
		out = toDto(entity)
		return nil
	})
	if err != nil {
		return RecoveryCategoryDto{}, err
	}
	return out, nil
}

// Update merges the non-null dto fields onto the stored entity. The name is
// not re-checked for uniqueness here, mirroring the create/update asymmetry
// of the original service.
func (s *CategoryService) Update(id uint, dto CreateCategoryDto) (RecoveryCategoryDto, error) {
	var out RecoveryCategoryDto
	err := s.store.InTransaction(func(tx models.CategoryStore) error {
		entity, err := tx.FindByID(id)
		if err != nil {
			return err
		}

		mergeEntity(dto, entity)
		if err := tx.Save(entity); err != nil {
			return fmt.Errorf("saving category: %w", err)
		}
		out = toDto(entity)
		return nil
	})
	if err != nil {
		return RecoveryCategoryDto{}, err
	}

	s.log.WithField("id", id).Info("category updated")
	return out, nil
}

func (s *CategoryService) Delete(id uint) error {
	err := s.store.InTransaction(func(tx models.CategoryStore) error {
		exists, err := tx.ExistsByID(id)
		if err != nil {
			return fmt.Errorf("checking category: %w", err)
		}
		if !exists {
			return models.ErrCategoryNotFound
		}
		return tx.DeleteByID(id)
	})
	if err != nil {
		return err
	}

	s.log.WithField("id", id).Info("category deleted")
	return nil
}
