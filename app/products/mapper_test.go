package products

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/webpanel/deploy/models"
)

func TestProductToEntity(t *testing.T) {
	entity := toEntity(CreateProductDto{
		Name:        "Margherita",
		Description: "Tomato and mozzarella",
		Category:    "PIZZA",
		Available:   true,
		Variations: []CreateProductVariationDto{
			{SizeName: "Small", Available: true, Price: 9.50},
			{SizeName: "Large", Description: "Feeds two", Price: 15.75},
		},
	})

	assert.Zero(t, entity.ID)
	assert.Equal(t, models.ProductCategoryPizza, entity.Category)
	assert.Len(t, entity.Variations, 2)
	assert.Zero(t, entity.Variations[0].ID)
	assert.True(t, entity.Variations[0].Price.Equal(decimal.NewFromFloat(9.50)))
	assert.True(t, entity.Variations[1].Price.Equal(decimal.NewFromFloat(15.75)))
	assert.Equal(t, "Feeds two", entity.Variations[1].Description)
}

func TestProductToDto(t *testing.T) {
	dto := toDto(&models.Product{
		ID:        3,
		Name:      "Classic Burger",
		Category:  models.ProductCategoryHamburger,
		Available: true,
		Variations: []models.ProductVariation{
			{ID: 7, SizeName: "Single", Price: decimal.NewFromFloat(8.25), ProductID: 3},
			{ID: 8, SizeName: "Double", Price: decimal.NewFromFloat(11.00), ProductID: 3},
		},
	})

	assert.Equal(t, uint(3), dto.ID)
	assert.Equal(t, "HAMBURGER", dto.Category)
	assert.Len(t, dto.Variations, 2)
	assert.Equal(t, uint(7), dto.Variations[0].ID)
	assert.Equal(t, 8.25, dto.Variations[0].Price)
	assert.Equal(t, 11.00, dto.Variations[1].Price)
}

func TestProductToDtoNoVariations(t *testing.T) {
	dto := toDto(&models.Product{ID: 1, Name: "Plain", Category: models.ProductCategoryPizza})

	assert.NotNil(t, dto.Variations)
	assert.Len(t, dto.Variations, 0)
}
