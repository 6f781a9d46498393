package models

import "time"

// CartLine is one product-quantity pair in a cart. Display fields are
// snapshotted from the product at add time so the cart renders without
// a catalog lookup.
type CartLine struct {
	ProductID   string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"imageUrl"`
	Category    string    `json:"category"`
	Color       string    `json:"color,omitempty"`
	Type        string    `json:"type,omitempty"`
	InStock     bool      `json:"inStock"`
	Quantity    int       `json:"quantity"`
	AddedAt     time.Time `json:"addedAt"`
}

// NewCartLine snapshots a product into a fresh line.
func NewCartLine(p Product, quantity int) CartLine {
	return CartLine{
		ProductID:   p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		ImageURL:    p.ImageURL,
		Category:    p.Category,
		Color:       p.Color,
		Type:        p.Type,
		InStock:     p.InStock,
		Quantity:    quantity,
		AddedAt:     time.Now(),
	}
}
