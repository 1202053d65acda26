package dto

import "github.com/google/uuid"

type ProductResponse struct {
	ProductID        uuid.UUID  `json:"product_id"`
	Name             string     `json:"name"`
	Description      string     `json:"description,omitempty"`
	Price            float64    `json:"price"`
	PromotionalPrice *float64   `json:"promotional_price,omitempty"`
	EffectivePrice   float64    `json:"effective_price"`
	Colors           []string   `json:"colors"`
	Sizes            []string   `json:"sizes"`
	Stock            int        `json:"stock"`
	InStock          bool       `json:"in_stock"`
	Images           []string   `json:"images"`
	CategoryID       *uuid.UUID `json:"category_id,omitempty"`
	SubcategoryID    *uuid.UUID `json:"subcategory_id,omitempty"`
}

type ProductPageResponse struct {
	Products   []ProductResponse `json:"products"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
}
