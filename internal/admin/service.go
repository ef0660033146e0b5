// Package admin backs the operator console: credential login with opaque
// session tokens, the orders board, and menu availability management.
package admin

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	"github.com/sivanaveen080/biryani-for-lunch/internal/sheets"
	pkgerrors "github.com/sivanaveen080/biryani-for-lunch/pkg/errors"
)

// availabilityCache is the local mirror updated alongside the remote menu so
// the storefront reflects a toggle without waiting for the next refresh.
type availabilityCache interface {
	SetAvailable(name string, available bool)
}

// Session is an issued console token and its expiry.
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type ServiceParams struct {
	Username string
	Password string
	TokenTTL time.Duration
	Orders   sheets.Service
	Catalog  availabilityCache

	// Now is overridable in tests.
	Now func() time.Time
}

type Service struct {
	username string
	password string
	orders   sheets.Service
	catalog  availabilityCache
	tokens   *tokenStore
}

func NewService(params ServiceParams) (*Service, error) {
	if params.Username == "" || params.Password == "" {
		return nil, fmt.Errorf("admin credentials required")
	}
	if params.TokenTTL <= 0 {
		return nil, fmt.Errorf("token ttl must be positive")
	}
	if params.Orders == nil {
		return nil, fmt.Errorf("sheets service required")
	}
	return &Service{
		username: params.Username,
		password: params.Password,
		orders:   params.Orders,
		catalog:  params.Catalog,
		tokens:   newTokenStore(params.TokenTTL, params.Now),
	}, nil
}

// Login checks the credentials and issues a session token. Both fields are
// compared in constant time and the failure message never says which one was
// wrong.
func (s *Service) Login(creds Credentials) (Session, error) {
	userOK := subtle.ConstantTimeCompare([]byte(creds.Username), []byte(s.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(creds.Password), []byte(s.password)) == 1
	if !userOK || !passOK {
		return Session{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
	}

	token, expires := s.tokens.issue()
	return Session{Token: token, ExpiresAt: expires}, nil
}

// Authenticate verifies a previously issued token.
func (s *Service) Authenticate(token string) error {
	if token == "" || !s.tokens.valid(token) {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid or expired session")
	}
	return nil
}

// Logout revokes a token. Unknown tokens are a no-op.
func (s *Service) Logout(token string) {
	s.tokens.revoke(token)
}

// ListOrders returns the orders board, newest rows as the sheet orders them.
func (s *Service) ListOrders(ctx context.Context) ([]sheets.Order, error) {
	return s.orders.ListOrders(ctx)
}

// UpdateOrderStatus writes a free-text status onto an order row.
func (s *Service) UpdateOrderStatus(ctx context.Context, orderID int64, status string) error {
	status = strings.TrimSpace(status)
	if orderID <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "order id must be positive")
	}
	if status == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "status must not be empty")
	}
	return s.orders.UpdateOrderStatus(ctx, orderID, status)
}

// ListMenu returns the remote menu rows.
func (s *Service) ListMenu(ctx context.Context) ([]sheets.MenuItem, error) {
	return s.orders.ListMenu(ctx)
}

// SetAvailability toggles an item on the remote menu and, on success, mirrors
// the change into the storefront's availability cache.
func (s *Service) SetAvailability(ctx context.Context, itemName string, available bool) error {
	itemName = strings.TrimSpace(itemName)
	if itemName == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "item name must not be empty")
	}
	if err := s.orders.UpdateMenu(ctx, itemName, available); err != nil {
		return err
	}
	if s.catalog != nil {
		s.catalog.SetAvailable(itemName, available)
	}
	return nil
}
