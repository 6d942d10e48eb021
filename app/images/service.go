package images

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/webpanel/deploy/models"
)

type ImageService struct {
	store models.ImageStore
	log   *logrus.Logger
}

func NewImageService(store models.ImageStore, log *logrus.Logger) *ImageService {
	return &ImageService{
		store: store,
		log:   log,
	}
}

func (s *ImageService) Create(dto CreateImageDto) (RecoveryImageDto, error) {
	var out RecoveryImageDto
	err := s.store.InTransaction(func(tx models.ImageStore) error {
		entity := toEntity(dto)
		if err := tx.Save(&entity); err != nil {
			return fmt.Errorf("saving image: %w", err)
		}
		out = toDto(&entity)
		return nil
	})
	if err != nil {
		return RecoveryImageDto{}, err
	}

	s.log.WithField("id", out.ID).Info("image created")
	return out, nil
}

func (s *ImageService) GetAll() ([]RecoveryImageDto, error) {
	var out []RecoveryImageDto
	err := s.store.InTransaction(func(tx models.ImageStore) error {
		list, err := tx.FindAll()
		if err != nil {
			return fmt.Errorf("listing images: %w", err)
		}
		out = make([]RecoveryImageDto, len(list))
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

func (s *ImageService) GetByID(id uint) (RecoveryImageDto, error) {
	var out RecoveryImageDto
	err := s.store.InTransaction(func(tx models.ImageStore) error {
		entity, err := tx.FindByID(id)
		if err != nil {
			return err
		}
		out = toDto(entity)
		return nil
	})
	if err != nil {
		return RecoveryImageDto{}, err
	}
	return out, nil
}

// Update replaces name, base64 and size wholesale, even when the incoming
// fields are empty.
func (s *ImageService) Update(id uint, dto CreateImageDto) (RecoveryImageDto, error) {
	var out RecoveryImageDto
	err := s.store.InTransaction(func(tx models.ImageStore) error {
		entity, err := tx.FindByID(id)
		if err != nil {
			return err
		}

		overwriteEntity(dto, entity)
		if err := tx.Save(entity); err != nil {
			return fmt.Errorf("saving image: %w", err)
		}
		out = toDto(entity)
		return nil
	})
	if err != nil {
		return RecoveryImageDto{}, err
	}

	s.log.WithField("id", id).Info("image updated")
	return out, nil
}

func (s *ImageService) Delete(id uint) error {
	err := s.store.InTransaction(func(tx models.ImageStore) error {
		exists, err := tx.ExistsByID(id)
		if err != nil {
			return fmt.Errorf("checking image: %w", err)
		}
		if !exists {
			return models.ErrImageNotFound
		}
		return tx.DeleteByID(id)
	})
	if err != nil {
		return err
	}

	s.log.WithField("id", id).Info("image deleted")
	return nil
}
