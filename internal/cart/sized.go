package cart

import "sync"

// SizeOption is one orderable size of a base dish, carrying its own line
// item name and price.
type SizeOption struct {
	Label     string `json:"label"`
	ItemName  string `json:"item_name"`
	UnitPrice int    `json:"unit_price"`
}

// SizedControl models the "choose a size, then adjust quantity" card. The
// shared +/- controls target whichever size is currently selected; switching
// size only affects subsequent quantity actions. A line created under the
// previous size is left in the cart untouched.
type SizedControl struct {
	mu       sync.Mutex
	store    *Store
	options  []SizeOption
	selected int
}

// NewSizedControl builds a control over the given options; the first option
// starts selected.
func NewSizedControl(store *Store, options []SizeOption) *SizedControl {
	return &SizedControl{store: store, options: options}
}

// Select switches which size the control targets. Unknown labels are ignored.
func (c *SizedControl) Select(label string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, opt := range c.options {
		if opt.Label == label {
			c.selected = i
			return
		}
	}
}

// Selected returns the size the control currently targets.
func (c *SizedControl) Selected() SizeOption {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.options[c.selected]
}

// Adjust applies a +/- step to the selected size's line, clamping the
// computed next quantity at zero.
func (c *SizedControl) Adjust(delta int) {
	opt := c.Selected()
	next := c.store.Quantity(opt.ItemName) + delta
	c.store.SetQuantity(opt.ItemName, opt.UnitPrice, next)
}
