package wishlist

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/nikhitha4605/storefront-api/models"
	"github.com/nikhitha4605/storefront-api/notify"
	"github.com/nikhitha4605/storefront-api/store"
)

// Service keeps per-owner wishlists on the same storage port the cart
// uses. Entries are deduplicated by product id.
type Service struct {
	mu       sync.Mutex
	st       store.Store
	log      *zap.Logger
	notifier notify.Notifier
}

func NewService(st store.Store, log *zap.Logger, notifier notify.Notifier) *Service {
	return &Service{st: st, log: log, notifier: notifier}
}

// List returns the owner's saved products. Absent or corrupt entries
// read as an empty list.
func (s *Service) List(owner string) []models.WishlistEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(owner)
}

// Add saves a product; adding an already-saved product is a no-op.
func (s *Service) Add(owner string, p models.Product) {
	s.mu.Lock()
	entries := s.loadLocked(owner)
	for _, e := range entries {
		if e.Product.ID == p.ID {
			s.mu.Unlock()
			return
		}
	}
	entries = append(entries, models.WishlistEntry{Product: p, AddedAt: time.Now()})
	s.persistLocked(owner, entries)
	s.mu.Unlock()
	s.notifier.Notify(notify.KindSuccess, fmt.Sprintf("Added %s to wishlist", p.Name))
}

// Remove drops a product; removing an absent one is a no-op.
func (s *Service) Remove(owner, productID string) {
	s.mu.Lock()
	entries := s.loadLocked(owner)
	var removed *models.Product
	for i, e := range entries {
		if e.Product.ID == productID {
			product := e.Product
			removed = &product
			entries = append(entries[:i], entries[i+1:]...)
			break
		}
	}
	if removed != nil {
		s.persistLocked(owner, entries)
	}
	s.mu.Unlock()
	if removed != nil {
		s.notifier.Notify(notify.KindInfo, fmt.Sprintf("Removed %s from wishlist", removed.Name))
	}
}

func (s *Service) loadLocked(owner string) []models.WishlistEntry {
	raw, err := s.st.Get(store.WishlistKey(owner))
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		s.log.Warn("wishlist load failed", zap.String("owner", owner), zap.Error(err))
		return nil
	}
	var entries []models.WishlistEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		s.log.Warn("wishlist entry corrupt", zap.String("owner", owner), zap.Error(err))
		return nil
	}
	return entries
}

func (s *Service) persistLocked(owner string, entries []models.WishlistEntry) {
	raw, err := json.Marshal(entries)
	if err == nil {
		err = s.st.Set(store.WishlistKey(owner), raw)
	}
	if err != nil {
		s.log.Error("wishlist persist failed", zap.String("owner", owner), zap.Error(err))
	}
}
