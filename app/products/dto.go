package products

import (
	"fmt"
	"strings"
	"time"

	"github.com/webpanel/deploy/app/api"
	"github.com/webpanel/deploy/models"
)

type CreateProductVariationDto struct {
	SizeName    string  `json:"sizeName"`
	Description string  `json:"description"`
	Available   bool    `json:"available"`
	Price       float64 `json:"price"`
}

type CreateProductDto struct {
	Name        string                      `json:"name"`
	Description string                      `json:"description"`
	Category    string                      `json:"category"`
	Available   bool                        `json:"available"`
	Variations  []CreateProductVariationDto `json:"variations"`
}

func (d *CreateProductDto) Validate() *api.FieldError {
	if strings.TrimSpace(d.Name) == "" {
		return &api.FieldError{Field: "name", Message: "name is required"}
	}
	if !models.ProductCategory(d.Category).Valid() {
		return &api.FieldError{
			Field: "category",
			Message: fmt.Sprintf("category must be one of %s, %s",
				models.ProductCategoryPizza, models.ProductCategoryHamburger),
		}
	}
	return nil
}

type RecoveryProductVariationDto struct {
	ID          uint    `json:"id"`
	SizeName    string  `json:"sizeName"`
	Description string  `json:"description"`
	Available   bool    `json:"available"`
	Price       float64 `json:"price"`
}

type RecoveryProductDto struct {
	ID          uint                          `json:"id"`
	Name        string                        `json:"name"`
	Description string                        `json:"description"`
	Category    string                        `json:"category"`
	Available   bool                          `json:"available"`
	Variations  []RecoveryProductVariationDto `json:"variations"`
	CreatedAt   time.Time                     `json:"createdAt"`
	UpdatedAt   time.Time                     `json:"updatedAt"`
}
