package products

import (
	"github.com/shopspring/decimal"

	"github.com/webpanel/deploy/models"
)

// toEntity maps a create request to a product graph, leaving all ids and
// timestamps unset for the store to assign.
func toEntity(dto CreateProductDto) models.Product {
	variations := make([]models.ProductVariation, len(dto.Variations))
	for i, v := range dto.Variations {
		variations[i] = models.ProductVariation{
			SizeName:    v.SizeName,
			Description: v.Description,
			Available:   v.Available,
			Price:       decimal.NewFromFloat(v.Price),
		}
	}
	return models.Product{
		Name:        dto.Name,
		Description: dto.Description,
		Category:    models.ProductCategory(dto.Category),
		Available:   dto.Available,
		Variations:  variations,
	}
}

func toDto(p *models.Product) RecoveryProductDto {
	variations := make([]RecoveryProductVariationDto, len(p.Variations))
	for i, v := range p.Variations {
		variations[i] = RecoveryProductVariationDto{
			ID:          v.ID,
			SizeName:    v.SizeName,
			Description: v.Description,
			Available:   v.Available,
			Price:       v.Price.InexactFloat64(),
		}
	}
	return RecoveryProductDto{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    string(p.Category),
		Available:   p.Available,
		Variations:  variations,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
