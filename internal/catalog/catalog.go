// Package catalog owns the static product list, the tag filter used by the
// storefront page, and the availability cache fed from the remote menu.
package catalog

import (
	"context"
	"strings"
	"sync"

	"github.com/sivanaveen080/biryani-for-lunch/internal/cart"
	"github.com/sivanaveen080/biryani-for-lunch/internal/sheets"
)

// Product is one card on the storefront page.
type Product struct {
	Name       string            `json:"name"`
	Price      int               `json:"price"`
	Category   string            `json:"category"`
	Bestseller bool              `json:"bestseller"`
	Sizes      []cart.SizeOption `json:"sizes,omitempty"`
	Available  bool              `json:"available"`
}

// TagAll and TagBestseller are the two non-category filter tags.
const (
	TagAll        = "all"
	TagBestseller = "bestseller"
)

type menuLister interface {
	ListMenu(ctx context.Context) ([]sheets.MenuItem, error)
}

// Service exposes the filtered catalog and acts as the cart's availability
// source.
type Service struct {
	products []Product

	mu          sync.RWMutex
	unavailable map[string]bool

	menu menuLister
}

var _ cart.Availability = (*Service)(nil)

// NewService builds a catalog over the given products. menu may be nil, in
// which case everything stays available until an explicit SetAvailable call.
func NewService(products []Product, menu menuLister) *Service {
	return &Service{
		products:    products,
		unavailable: make(map[string]bool),
		menu:        menu,
	}
}

// Filter returns the products admitted by tag, availability applied, in
// catalog order. An empty tag behaves like "all".
func (s *Service) Filter(tag string) []Product {
	tag = strings.ToLower(strings.TrimSpace(tag))
	out := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		if !admits(tag, p) {
			continue
		}
		p.Available = s.Available(p.Name)
		out = append(out, p)
	}
	return out
}

func admits(tag string, p Product) bool {
	switch tag {
	case "", TagAll:
		return true
	case TagBestseller:
		return p.Bestseller
	default:
		return strings.EqualFold(p.Category, tag)
	}
}

// Available reports whether an item may currently be ordered. Names the menu
// sheet has never mentioned default to available: the sheet is allowed to lag
// the catalog.
func (s *Service) Available(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.unavailable[name]
}

// SetAvailable updates the local availability cache for one item.
func (s *Service) SetAvailable(name string, available bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if available {
		delete(s.unavailable, name)
	} else {
		s.unavailable[name] = true
	}
}

// Refresh replaces the availability cache from the remote menu.
func (s *Service) Refresh(ctx context.Context) error {
	if s.menu == nil {
		return nil
	}
	items, err := s.menu.ListMenu(ctx)
	if err != nil {
		return err
	}
	next := make(map[string]bool)
	for _, item := range items {
		if !item.Available {
			next[item.ItemName] = true
		}
	}
	s.mu.Lock()
	s.unavailable = next
	s.mu.Unlock()
	return nil
}
