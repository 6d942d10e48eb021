package categories

import "github.com/webpanel/deploy/models"

// toEntity maps a create request to a new entity, leaving id and timestamps
// unset for the store to assign.
func toEntity(dto CreateCategoryDto) models.Category {
	var c models.Category
	if dto.Name != nil {
		c.Name = *dto.Name
	}
	return c
}

func toDto(c *models.Category) RecoveryCategoryDto {
	return RecoveryCategoryDto{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// mergeEntity copies only the fields present in dto onto the entity. Absent
// (null) fields keep their stored values.
func mergeEntity(dto CreateCategoryDto, c *models.Category) {
	if dto.Name != nil {
		c.Name = *dto.Name
	}
}
