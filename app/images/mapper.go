package images

import "github.com/webpanel/deploy/models"

func toEntity(dto CreateImageDto) models.Image {
	return models.Image{
		Name:   dto.Name,
		Base64: dto.Base64,
		Size:   dto.Size,
	}
}

func toDto(i *models.Image) RecoveryImageDto {
	return RecoveryImageDto{
		ID:        i.ID,
		Name:      i.Name,
		Base64:    i.Base64,
		Size:      i.Size,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}

// overwriteEntity replaces every mutable field. Unlike the category merge,
// zero-valued dto fields overwrite the stored values too.
func overwriteEntity(dto CreateImageDto, i *models.Image) {
	i.Name = dto.Name
	i.Base64 = dto.Base64
	i.Size = dto.Size
}
