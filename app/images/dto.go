package images

import "time"

// CreateImageDto is the request body for both create and update. Updates
// always replace every field, so plain values are enough here.
type CreateImageDto struct {
	Name   string `json:"name"`
	Base64 string `json:"base64"`
	Size   int64  `json:"size"`
}

// RecoveryImageDto is the response shape.
type RecoveryImageDto struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Base64    string    `json:"base64"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
