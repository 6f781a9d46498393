package models

// Product is supplied by the catalog and never mutated by the cart or
// checkout paths. Color and Type are optional; older catalog snapshots
// only carried a category.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
	Category    string  `json:"category"`
	Color       string  `json:"color,omitempty"`
	Type        string  `json:"type,omitempty"`
	InStock     bool    `json:"inStock"`
}
