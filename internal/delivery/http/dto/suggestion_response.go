package dto

import "github.com/google/uuid"

type ProductSuggestionResponse struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Thumbnail string    `json:"thumbnail,omitempty"`
	InStock   bool      `json:"in_stock"`
}

type CategorySuggestionResponse struct {
	CategoryID uuid.UUID `json:"category_id"`
	Name       string    `json:"name"`
	Icon       string    `json:"icon,omitempty"`
	Slug       string    `json:"slug"`
}

type SuggestionResponse struct {
	Query      string                       `json:"query"`
	Popular    bool                         `json:"popular"`
	Products   []ProductSuggestionResponse  `json:"products"`
	Categories []CategorySuggestionResponse `json:"categories"`
}
