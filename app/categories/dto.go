package categories

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/webpanel/deploy/app/api"
)

// CreateCategoryDto is the request body for both create and update. Name is
// a pointer so the update merge can tell an absent field from an empty one.
type CreateCategoryDto struct {
	Name *string `json:"name"`
}

// Validate checks the request shape used by POST and PUT.
func (d *CreateCategoryDto) Validate() *api.FieldError {
	if d.Name == nil || strings.TrimSpace(*d.Name) == "" {
		return &api.FieldError{Field: "name", Message: "name is required"}
	}
	if utf8.RuneCountInString(*d.Name) > 255 {
		return &api.FieldError{Field: "name", Message: "name must not exceed 255 characters"}
	}
	return nil
}

// RecoveryCategoryDto is the response shape, always carrying the
// server-assigned id and audit timestamps.
type RecoveryCategoryDto struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
