package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"go.uber.org/zap"

	"github.com/nikhitha4605/storefront-api/models"
	"github.com/nikhitha4605/storefront-api/notify"
	"github.com/nikhitha4605/storefront-api/store"
)

var (
	ErrInvalidCredentials = errors.New("auth: invalid email or password")
	ErrEmailTaken         = errors.New("auth: email already registered")
	ErrNoIdentity         = errors.New("auth: no such identity")
	ErrNoOrder            = errors.New("auth: no such order")
)

type credential struct {
	userID   string
	password string
}

// Provider owns identities and their order histories. There is no real
// identity backend; credentials are checked against a seeded in-memory
// table plus registrations made during the process lifetime, while the
// identity record itself (profile + orders) is persisted to the store.
type Provider struct {
	mu          sync.Mutex
	st          store.Store
	log         *zap.Logger
	notifier    notify.Notifier
	secret      []byte
	credentials map[string]credential // email -> credential
	profiles    map[string]models.User
	nextID      int
}

// NewProvider seeds the demo accounts: a regular user and an admin.
func NewProvider(st store.Store, log *zap.Logger, notifier notify.Notifier, secret []byte) *Provider {
	p := &Provider{
		st:          st,
		log:         log,
		notifier:    notifier,
		secret:      secret,
		credentials: make(map[string]credential),
		profiles:    make(map[string]models.User),
		nextID:      3,
	}
	p.seed(models.User{ID: "1", Email: "user@example.com", Name: "Regular User", Role: models.RoleUser}, "password")
	p.seed(models.User{ID: "2", Email: "admin@example.com", Name: "Admin User", Role: models.RoleAdmin}, "admin")
	return p
}

func (p *Provider) seed(u models.User, password string) {
	p.credentials[u.Email] = credential{userID: u.ID, password: password}
	p.profiles[u.ID] = u
}

// Login checks credentials, persists the identity record, and issues a
// session token. A returning user's stored record (with its order
// history) wins over the seeded profile.
func (p *Provider) Login(email, password string) (*models.User, string, error) {
	p.mu.Lock()
	cred, ok := p.credentials[email]
	profile := p.profiles[cred.userID]
	p.mu.Unlock()
	if !ok || cred.password != password {
		p.notifier.Notify(notify.KindError, "Invalid email or password")
		return nil, "", ErrInvalidCredentials
	}

	user, err := p.loadUser(cred.userID)
	if err != nil {
		user = &profile
	}
	if err := p.saveUser(user); err != nil {
		p.log.Error("identity persist failed", zap.String("user_id", user.ID), zap.Error(err))
	}

	token, err := IssueToken(p.secret, user.ID, user.Role)
	if err != nil {
		return nil, "", fmt.Errorf("auth: token issue: %w", err)
	}
	p.notifier.Notify(notify.KindSuccess, "Logged in successfully!")
	return user, token, nil
}

// Register creates a new identity with the user role and logs it in.
func (p *Provider) Register(name, email, password string) (*models.User, string, error) {
	p.mu.Lock()
	if _, exists := p.credentials[email]; exists {
		p.mu.Unlock()
		p.notifier.Notify(notify.KindError, "Email already registered")
		return nil, "", ErrEmailTaken
	}
	id := strconv.Itoa(p.nextID)
	p.nextID++
	user := models.User{ID: id, Email: email, Name: name, Role: models.RoleUser}
	p.credentials[email] = credential{userID: id, password: password}
	p.profiles[id] = user
	p.mu.Unlock()

	if err := p.saveUser(&user); err != nil {
		p.log.Error("identity persist failed", zap.String("user_id", id), zap.Error(err))
	}
	token, err := IssueToken(p.secret, id, user.Role)
	if err != nil {
		return nil, "", fmt.Errorf("auth: token issue: %w", err)
	}
	p.notifier.Notify(notify.KindSuccess, "Registration successful!")
	return &user, token, nil
}

// Logout removes the persisted identity record. The in-memory profile
// and credential survive so the account can log back in; its order
// history does not, matching a cleared device store.
func (p *Provider) Logout(userID string) error {
	if err := p.st.Delete(store.UserKey(userID)); err != nil {
		return fmt.Errorf("auth: logout: %w", err)
	}
	p.notifier.Notify(notify.KindInfo, "Logged out successfully")
	return nil
}

// Current returns the persisted identity for an id, or ErrNoIdentity.
func (p *Provider) Current(userID string) (*models.User, error) {
	return p.loadUser(userID)
}

// AppendOrder attaches an order to the end of the identity's history and
// persists the record. Histories are append-only; nothing ever updates
// or removes a past order through this path.
func (p *Provider) AppendOrder(userID string, order models.Order) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	user, err := p.loadUser(userID)
	if err != nil {
		return err
	}
	user.Orders = append(user.Orders, order)
	return p.saveUser(user)
}

// AllUsers loads every persisted identity record; used by the admin
// order views.
func (p *Provider) AllUsers() ([]models.User, error) {
	keys, err := p.st.Keys(store.UserKeyPrefix)
	if err != nil {
		return nil, err
	}
	var users []models.User
	for _, k := range keys {
		raw, err := p.st.Get(k)
		if err != nil {
			continue
		}
		var u models.User
		if err := json.Unmarshal(raw, &u); err != nil {
			p.log.Warn("identity entry corrupt, skipped", zap.String("key", k), zap.Error(err))
			continue
		}
		users = append(users, u)
	}
	return users, nil
}

// UpdateOrderStatus finds the order in any identity's history and
// rewrites its status. The record is re-loaded and saved under the same
// lock AppendOrder holds, so a concurrent append is never overwritten.
func (p *Provider) UpdateOrderStatus(orderID string, status models.OrderStatus) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	keys, err := p.st.Keys(store.UserKeyPrefix)
	if err != nil {
		return err
	}
	for _, k := range keys {
		raw, err := p.st.Get(k)
		if err != nil {
			continue
		}
		var u models.User
		if err := json.Unmarshal(raw, &u); err != nil {
			p.log.Warn("identity entry corrupt, skipped", zap.String("key", k), zap.Error(err))
			continue
		}
		for i := range u.Orders {
			if u.Orders[i].ID != orderID {
				continue
			}
			u.Orders[i].Status = status
			return p.saveUser(&u)
		}
	}
	return ErrNoOrder
}

func (p *Provider) loadUser(userID string) (*models.User, error) {
	raw, err := p.st.Get(store.UserKey(userID))
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNoIdentity
	}
	if err != nil {
		return nil, err
	}
	var u models.User
	if err := json.Unmarshal(raw, &u); err != nil {
		p.log.Warn("identity entry corrupt", zap.String("user_id", userID), zap.Error(err))
		return nil, ErrNoIdentity
	}
	return &u, nil
}

func (p *Provider) saveUser(u *models.User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return p.st.Set(store.UserKey(u.ID), raw)
}
