package dto

import "github.com/google/uuid"

type CategoryResponse struct {
	CategoryID uuid.UUID  `json:"category_id"`
	Name       string     `json:"name"`
	Icon       string     `json:"icon,omitempty"`
	Slug       string     `json:"slug"`
	ParentID   *uuid.UUID `json:"parent_id,omitempty"`
}
