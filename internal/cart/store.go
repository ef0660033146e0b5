package cart

import (
	"sync"
)

// Line is one named product and its quantity/price within the cart.
type Line struct {
	Name      string `json:"name"`
	UnitPrice int    `json:"unit_price"`
	Quantity  int    `json:"quantity"`
}

// Totals are derived from the live lines on every call, never cached.
type Totals struct {
	TotalQuantity int `json:"total_quantity"`
	ItemsTotal    int `json:"items_total"`
	PayableTotal  int `json:"payable_total"`
}

// Availability reports whether an item can currently be ordered. Mutations
// against unavailable items are silent no-ops.
type Availability interface {
	Available(name string) bool
}

// alwaysAvailable is used when no availability source is wired.
type alwaysAvailable struct{}

func (alwaysAvailable) Available(string) bool { return true }

// Store holds the ordered line items for one shopper. It is the single
// source of truth for quantities and totals; every display surface reads
// from it through the binding registry.
type Store struct {
	mu        sync.Mutex
	lines     []Line
	index     map[string]int
	stock     Availability
	listeners *bindingRegistry
}

// NewStore builds an empty cart. A nil availability source admits everything.
func NewStore(stock Availability) *Store {
	if stock == nil {
		stock = alwaysAvailable{}
	}
	return &Store{
		index:     make(map[string]int),
		stock:     stock,
		listeners: newBindingRegistry(),
	}
}

// AddOne increments the quantity for name, inserting a new line with
// quantity 1 when absent.
func (s *Store) AddOne(name string, unitPrice int) {
	if !s.stock.Available(name) {
		return
	}
	s.mu.Lock()
	var qty int
	if i, ok := s.index[name]; ok {
		s.lines[i].Quantity++
		qty = s.lines[i].Quantity
	} else {
		s.insertLocked(Line{Name: name, UnitPrice: unitPrice, Quantity: 1})
		qty = 1
	}
	s.mu.Unlock()
	s.listeners.notify(name, qty)
}

// SetQuantity overwrites the quantity for name. Values at or below zero
// remove the line; a line is inserted when absent and quantity is positive.
func (s *Store) SetQuantity(name string, unitPrice, quantity int) {
	if !s.stock.Available(name) {
		return
	}
	if quantity < 0 {
		quantity = 0
	}
	s.mu.Lock()
	i, ok := s.index[name]
	switch {
	case quantity == 0 && ok:
		s.removeLocked(i)
	case quantity == 0:
		// nothing to do, but surfaces still converge on zero below
	case ok:
		s.lines[i].Quantity = quantity
	default:
		s.insertLocked(Line{Name: name, UnitPrice: unitPrice, Quantity: quantity})
	}
	s.mu.Unlock()
	s.listeners.notify(name, quantity)
}

// Clear empties the cart and notifies every bound surface with zero.
func (s *Store) Clear() {
	s.mu.Lock()
	cleared := make([]string, len(s.lines))
	for i, line := range s.lines {
		cleared[i] = line.Name
	}
	s.lines = nil
	s.index = make(map[string]int)
	s.mu.Unlock()
	for _, name := range cleared {
		s.listeners.notify(name, 0)
	}
}

// Quantity returns the current quantity for name, zero when absent.
func (s *Store) Quantity(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i, ok := s.index[name]; ok {
		return s.lines[i].Quantity
	}
	return 0
}

// Lines returns a copy of the cart in insertion order.
func (s *Store) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// Empty reports whether the cart has no lines.
func (s *Store) Empty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines) == 0
}

// Totals recomputes the derived values from the live lines. The payable
// total equals the items total: the shipping fee is absorbed by the vendor.
func (s *Store) Totals() Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	var t Totals
	for _, line := range s.lines {
		t.TotalQuantity += line.Quantity
		t.ItemsTotal += line.UnitPrice * line.Quantity
	}
	t.PayableTotal = t.ItemsTotal
	return t
}

// Bind registers a display binding for name and immediately pushes the
// authoritative quantity so a fresh surface cannot start out of sync.
func (s *Store) Bind(name string, b Binding) func() {
	unbind := s.listeners.add(name, b)
	b.QuantityChanged(name, s.Quantity(name))
	return unbind
}

func (s *Store) insertLocked(line Line) {
	s.index[line.Name] = len(s.lines)
	s.lines = append(s.lines, line)
}

func (s *Store) removeLocked(i int) {
	name := s.lines[i].Name
	s.lines = append(s.lines[:i], s.lines[i+1:]...)
	delete(s.index, name)
	for j := i; j < len(s.lines); j++ {
		s.index[s.lines[j].Name] = j
	}
}
