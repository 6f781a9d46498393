package cart

import (
	"sync"

	"go.uber.org/zap"

	"github.com/nikhitha4605/storefront-api/notify"
	"github.com/nikhitha4605/storefront-api/store"
)

// Service hands out one Engine per cart owner (user id or guest id),
// loading each lazily from the store on first use. Engines are cached
// for the process lifetime so all requests for an owner mutate the same
// in-memory cart.
type Service struct {
	mu       sync.Mutex
	engines  map[string]*Engine
	st       store.Store
	log      *zap.Logger
	notifier notify.Notifier
}

func NewService(st store.Store, log *zap.Logger, notifier notify.Notifier) *Service {
	return &Service{
		engines:  make(map[string]*Engine),
		st:       st,
		log:      log,
		notifier: notifier,
	}
}

// Engine returns the cart engine for an owner, creating it on first use.
func (s *Service) Engine(owner string) *Engine {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.engines[owner]; ok {
		return e
	}
	e := NewEngine(owner, s.st, s.log, s.notifier)
	s.engines[owner] = e
	return e
}

// Drop forgets an owner's engine (used at logout so a later login
// reloads from the store).
func (s *Service) Drop(owner string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.engines, owner)
}
