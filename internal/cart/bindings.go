package cart

import "sync"

// Binding is a display surface bound to one item name. The product-card
// counter and the cart-row counter for the same item are separate bindings
// that must always show the same quantity.
type Binding interface {
	QuantityChanged(name string, quantity int)
}

// BindingFunc adapts a function to the Binding interface.
type BindingFunc func(name string, quantity int)

func (f BindingFunc) QuantityChanged(name string, quantity int) { f(name, quantity) }

// bindingRegistry fans a quantity change out to every binding registered
// under the affected name. Lookup is by name, never by list position, so
// surfaces cannot drift apart when lines are removed and re-added.
type bindingRegistry struct {
	mu     sync.Mutex
	byName map[string]map[int]Binding
	nextID int
}

func newBindingRegistry() *bindingRegistry {
	return &bindingRegistry{byName: make(map[string]map[int]Binding)}
}

func (r *bindingRegistry) add(name string, b Binding) func() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.byName[name] == nil {
		r.byName[name] = make(map[int]Binding)
	}
	id := r.nextID
	r.nextID++
	r.byName[name][id] = b
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.byName[name], id)
	}
}

func (r *bindingRegistry) notify(name string, quantity int) {
	r.mu.Lock()
	bindings := make([]Binding, 0, len(r.byName[name]))
	for _, b := range r.byName[name] {
		bindings = append(bindings, b)
	}
	r.mu.Unlock()
	for _, b := range bindings {
		b.QuantityChanged(name, quantity)
	}
}
