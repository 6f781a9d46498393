package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/nikhitha4605/storefront-api/models"
)

var ErrProductNotFound = errors.New("catalog: product not found")

// Catalog holds the purchasable product list. The list is immutable from
// the shopper's side; only the admin surface mutates it, and those edits
// live in memory for the process lifetime only.
type Catalog struct {
	mu    sync.RWMutex
	order []string
	index map[string]models.Product
}

// New builds a catalog from a product list, normalizing each entry.
// Products with a duplicate or empty id are dropped.
func New(products []models.Product) *Catalog {
	c := &Catalog{index: make(map[string]models.Product)}
	for _, p := range products {
		p = Normalize(p)
		if p.ID == "" {
			continue
		}
		if _, dup := c.index[p.ID]; dup {
			continue
		}
		c.order = append(c.order, p.ID)
		c.index[p.ID] = p
	}
	return c
}

// LoadFile reads a JSON product array from path. Used when CATALOG_FILE
// is set; otherwise the built-in mock data seeds the catalog.
func LoadFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog read: %w", err)
	}
	var products []models.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, fmt.Errorf("catalog parse: %w", err)
	}
	return New(products), nil
}

// Normalize folds the two product schema generations into one: older
// snapshots carry only a category, newer ones add color and type.
// Missing optional fields get defaults so downstream code never branches
// on schema age.
func Normalize(p models.Product) models.Product {
	if p.Type == "" {
		p.Type = "general"
	}
	return p
}

func (c *Catalog) Get(id string) (models.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.index[id]
	if !ok {
		return models.Product{}, ErrProductNotFound
	}
	return p, nil
}

// List returns the products in insertion order.
func (c *Catalog) List() []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Product, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.index[id])
	}
	return out
}

func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.order)
}

// Upsert adds or replaces a product. Admin-only; not persisted.
func (c *Catalog) Upsert(p models.Product) error {
	p = Normalize(p)
	if p.ID == "" {
		return errors.New("catalog: product id is required")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.index[p.ID]; !exists {
		c.order = append(c.order, p.ID)
	}
	c.index[p.ID] = p
	return nil
}

// Remove deletes a product. No-op when absent. Admin-only; not persisted.
func (c *Catalog) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.index[id]; !ok {
		return
	}
	delete(c.index, id)
	for i, pid := range c.order {
		if pid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}
