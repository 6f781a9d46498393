package catalog

import "github.com/nikhitha4605/storefront-api/models"

// Default returns the built-in product list used when no catalog file is
// configured. A mix of schema generations on purpose: some entries carry
// color/type, some predate those fields.
func Default() []models.Product {
	return []models.Product{
		{
			ID:          "1",
			Name:        "Premium Headphones",
			Description: "Wireless noise-cancelling headphones with premium sound quality and 24-hour battery life.",
			Price:       199.99,
			ImageURL:    "https://images.example.com/products/headphones.jpg",
			Category:    "electronics",
			Color:       "black",
			Type:        "audio",
			InStock:     true,
		},
		{
			ID:          "2",
			Name:        "Smart Watch",
			Description: "Health and fitness tracker with heart rate monitoring, GPS, and workout tracking capabilities.",
			Price:       249.99,
			ImageURL:    "https://images.example.com/products/smart-watch.jpg",
			Category:    "electronics",
			Color:       "silver",
			Type:        "wearable",
			InStock:     true,
		},
		{
			ID:          "3",
			Name:        "Leather Backpack",
			Description: "Handcrafted genuine leather backpack with multiple compartments and laptop sleeve.",
			Price:       129.99,
			ImageURL:    "https://images.example.com/products/backpack.jpg",
			Category:    "accessories",
			Color:       "brown",
			InStock:     true,
		},
		{
			ID:          "4",
			Name:        "Mechanical Keyboard",
			Description: "RGB backlit mechanical gaming keyboard with customizable key switches.",
			Price:       89.99,
			ImageURL:    "https://images.example.com/products/keyboard.jpg",
			Category:    "electronics",
			InStock:     true,
		},
		{
			ID:          "5",
			Name:        "Running Shoes",
			Description: "Lightweight, cushioned running shoes designed for comfort and performance.",
			Price:       119.99,
			ImageURL:    "https://images.example.com/products/running-shoes.jpg",
			Category:    "clothing",
			Color:       "blue",
			Type:        "footwear",
			InStock:     true,
		},
		{
			ID:          "6",
			Name:        "Coffee Maker",
			Description: "Programmable coffee maker with thermal carafe and auto-brew functionality.",
			Price:       79.99,
			ImageURL:    "https://images.example.com/products/coffee-maker.jpg",
			Category:    "home",
			InStock:     true,
		},
		{
			ID:          "7",
			Name:        "Wireless Mouse",
			Description: "Ergonomic wireless mouse with precision tracking and long battery life.",
			Price:       39.99,
			ImageURL:    "https://images.example.com/products/mouse.jpg",
			Category:    "electronics",
			InStock:     true,
		},
		{
			ID:          "8",
			Name:        "Yoga Mat",
			Description: "Non-slip yoga mat with alignment markings and carrying strap.",
			Price:       49.99,
			ImageURL:    "https://images.example.com/products/yoga-mat.jpg",
			Category:    "fitness",
			Color:       "purple",
			InStock:     true,
		},
		{
			ID:          "9",
			Name:        "Desk Lamp",
			Description: "Adjustable LED desk lamp with multiple brightness levels and USB charging port.",
			Price:       59.99,
			ImageURL:    "https://images.example.com/products/desk-lamp.jpg",
			Category:    "home",
			InStock:     true,
		},
		{
			ID:          "10",
			Name:        "Water Bottle",
			Description: "Insulated stainless steel water bottle that keeps drinks cold for 24 hours.",
			Price:       29.99,
			ImageURL:    "https://images.example.com/products/water-bottle.jpg",
			Category:    "accessories",
			Color:       "steel",
			InStock:     true,
		},
		{
			ID:          "11",
			Name:        "Smart Speaker",
			Description: "Voice-controlled smart speaker with rich sound and home automation hub.",
			Price:       149.99,
			ImageURL:    "https://images.example.com/products/smart-speaker.jpg",
			Category:    "electronics",
			Type:        "audio",
			InStock:     false,
		},
		{
			ID:          "12",
			Name:        "Denim Jacket",
			Description: "Classic denim jacket with modern fit and durable construction.",
			Price:       89.99,
			ImageURL:    "https://images.example.com/products/denim-jacket.jpg",
			Category:    "clothing",
			Color:       "indigo",
			Type:        "outerwear",
			InStock:     true,
		},
	}
}
