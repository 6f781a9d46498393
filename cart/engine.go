package cart

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/nikhitha4605/storefront-api/metrics"
	"github.com/nikhitha4605/storefront-api/models"
	"github.com/nikhitha4605/storefront-api/notify"
	"github.com/nikhitha4605/storefront-api/store"
)

// ErrInvalidProduct is returned when a product without an id is added.
var ErrInvalidProduct = errors.New("cart: product id is required")

// Snapshot is an immutable view of the cart handed to subscribers and
// HTTP responses. Totals are recomputed from the lines on every read;
// nothing is cached.
type Snapshot struct {
	Lines      []models.CartLine `json:"lines"`
	TotalItems int               `json:"totalItems"`
	Subtotal   float64           `json:"subtotal"`
}

// Engine owns one cart. It is the only writer of that cart's store key.
// Every mutation persists the full line set; a failed write is logged
// and counted but never rolls the in-memory mutation back — the session
// keeps running on memory.
type Engine struct {
	mu       sync.Mutex
	owner    string
	lines    []models.CartLine
	st       store.Store
	log      *zap.Logger
	notifier notify.Notifier
	subs     []func(Snapshot)
}

// NewEngine loads the owner's cart from the store. An absent or corrupt
// entry starts the cart empty; corruption is logged, not fatal.
func NewEngine(owner string, st store.Store, log *zap.Logger, notifier notify.Notifier) *Engine {
	e := &Engine{owner: owner, st: st, log: log, notifier: notifier}
	raw, err := st.Get(store.CartKey(owner))
	switch {
	case errors.Is(err, store.ErrNotFound):
	case err != nil:
		log.Warn("cart load failed, starting empty",
			zap.String("owner", owner), zap.Error(err))
	default:
		if uerr := json.Unmarshal(raw, &e.lines); uerr != nil {
			log.Warn("cart entry corrupt, starting empty",
				zap.String("owner", owner), zap.Error(uerr))
			e.lines = nil
		}
	}
	return e
}

// AddToCart appends a new line for the product or, when a line for the
// same product id already exists, increments its quantity. Quantities
// below 1 are clamped to 1.
func (e *Engine) AddToCart(p models.Product, quantity int) error {
	if p.ID == "" {
		return ErrInvalidProduct
	}
	if quantity < 1 {
		quantity = 1
	}

	e.mu.Lock()
	updated := false
	for i := range e.lines {
		if e.lines[i].ProductID == p.ID {
			e.lines[i].Quantity += quantity
			updated = true
			break
		}
	}
	if !updated {
		e.lines = append(e.lines, models.NewCartLine(p, quantity))
	}
	e.persistLocked()
	snap := e.snapshotLocked()
	e.mu.Unlock()

	if updated {
		e.notifier.Notify(notify.KindSuccess, fmt.Sprintf("Updated quantity for %s", p.Name))
	} else {
		e.notifier.Notify(notify.KindSuccess, fmt.Sprintf("Added %s to cart", p.Name))
	}
	metrics.CartMutations.WithLabelValues("add").Inc()
	e.publish(snap)
	return nil
}

// UpdateQuantity sets the line's quantity to an absolute value. A value
// of zero or less behaves exactly like RemoveFromCart. An unknown
// product id is a no-op, not an error.
func (e *Engine) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		e.RemoveFromCart(productID)
		return
	}

	e.mu.Lock()
	changed := false
	for i := range e.lines {
		if e.lines[i].ProductID == productID {
			if e.lines[i].Quantity != quantity {
				e.lines[i].Quantity = quantity
				changed = true
			}
			break
		}
	}
	var snap Snapshot
	if changed {
		e.persistLocked()
		snap = e.snapshotLocked()
	}
	e.mu.Unlock()

	if changed {
		metrics.CartMutations.WithLabelValues("update").Inc()
		e.publish(snap)
	}
}

// RemoveFromCart deletes the line when present; removing an absent id
// is a no-op. Calling it twice is the same as calling it once.
func (e *Engine) RemoveFromCart(productID string) {
	e.mu.Lock()
	var removed *models.CartLine
	for i := range e.lines {
		if e.lines[i].ProductID == productID {
			line := e.lines[i]
			removed = &line
			e.lines = append(e.lines[:i], e.lines[i+1:]...)
			break
		}
	}
	var snap Snapshot
	if removed != nil {
		e.persistLocked()
		snap = e.snapshotLocked()
	}
	e.mu.Unlock()

	if removed != nil {
		e.notifier.Notify(notify.KindInfo, fmt.Sprintf("Removed %s from cart", removed.Name))
		metrics.CartMutations.WithLabelValues("remove").Inc()
		e.publish(snap)
	}
}

// Clear empties the cart and persists the empty state.
func (e *Engine) Clear() {
	e.mu.Lock()
	e.lines = nil
	e.persistLocked()
	snap := e.snapshotLocked()
	e.mu.Unlock()

	e.notifier.Notify(notify.KindInfo, "Cart cleared")
	metrics.CartMutations.WithLabelValues("clear").Inc()
	e.publish(snap)
}

// Lines returns a copy of the current lines in insertion order.
func (e *Engine) Lines() []models.CartLine {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]models.CartLine, len(e.lines))
	copy(out, e.lines)
	return out
}

// TotalItems is the sum of quantities over all lines.
func (e *Engine) TotalItems() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	total := 0
	for _, l := range e.lines {
		total += l.Quantity
	}
	return total
}

// Subtotal is the sum of price times quantity over all lines.
func (e *Engine) Subtotal() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return subtotal(e.lines)
}

// Snapshot returns the lines plus derived totals in one consistent view.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

// Subscribe registers a callback invoked with a fresh snapshot after
// every mutation. Subscribers must not mutate the snapshot's lines.
func (e *Engine) Subscribe(fn func(Snapshot)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.subs = append(e.subs, fn)
}

func (e *Engine) snapshotLocked() Snapshot {
	lines := make([]models.CartLine, len(e.lines))
	copy(lines, e.lines)
	items := 0
	for _, l := range lines {
		items += l.Quantity
	}
	return Snapshot{Lines: lines, TotalItems: items, Subtotal: subtotal(lines)}
}

// persistLocked writes the current line set under the owner's cart key.
// The written snapshot always reflects the state after the mutation that
// triggered it. Failures do not roll anything back.
func (e *Engine) persistLocked() {
	raw, err := json.Marshal(e.lines)
	if err == nil {
		err = e.st.Set(store.CartKey(e.owner), raw)
	}
	if err != nil {
		metrics.PersistFailures.Inc()
		e.log.Error("cart persist failed, in-memory state remains authoritative",
			zap.String("owner", e.owner), zap.Error(err))
	}
}

func (e *Engine) publish(snap Snapshot) {
	e.mu.Lock()
	subs := make([]func(Snapshot), len(e.subs))
	copy(subs, e.subs)
	e.mu.Unlock()
	for _, fn := range subs {
		fn(snap)
	}
}

func subtotal(lines []models.CartLine) float64 {
	var sum float64
	for _, l := range lines {
		sum += l.Price * float64(l.Quantity)
	}
	return sum
}
