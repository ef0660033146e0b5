package cart

import (
	cartsvc "github.com/sivanaveen080/biryani-for-lunch/internal/cart"
)

// View is the cart as the storefront renders it: live lines plus totals
// recomputed for this response.
type View struct {
	Lines  []cartsvc.Line `json:"lines"`
	Totals cartsvc.Totals `json:"totals"`
}

func newView(store *cartsvc.Store) View {
	return View{
		Lines:  store.Lines(),
		Totals: store.Totals(),
	}
}
