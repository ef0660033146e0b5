package cart

import "testing"

func starterOptions() []SizeOption {
	return []SizeOption{
		{Label: "half", ItemName: "Chicken 65 (Half)", UnitPrice: 120},
		{Label: "full", ItemName: "Chicken 65 (Full)", UnitPrice: 220},
	}
}

func TestSizedControlTargetsSelectedSize(t *testing.T) {
	store := NewStore(nil)
	ctl := NewSizedControl(store, starterOptions())

	ctl.Adjust(+1)
	ctl.Adjust(+1)

	if got := store.Quantity("Chicken 65 (Half)"); got != 2 {
		t.Fatalf("expected half quantity 2, got %d", got)
	}

	ctl.Select("full")
	ctl.Adjust(+1)
	if got := store.Quantity("Chicken 65 (Full)"); got != 1 {
		t.Fatalf("expected full quantity 1, got %d", got)
	}
}

// Switching size while quantity > 0 does not migrate the existing line; the
// old size's line stays in the cart and only subsequent actions go to the
// new size. Shipped behavior, pinned deliberately.
func TestSizedControlSwitchDoesNotMigrateExistingLine(t *testing.T) {
	store := NewStore(nil)
	ctl := NewSizedControl(store, starterOptions())

	ctl.Adjust(+1)
	ctl.Adjust(+1)
	ctl.Select("full")
	ctl.Adjust(+1)

	if got := store.Quantity("Chicken 65 (Half)"); got != 2 {
		t.Fatalf("half line must be left untouched, got %d", got)
	}
	if got := store.Quantity("Chicken 65 (Full)"); got != 1 {
		t.Fatalf("full line must accumulate separately, got %d", got)
	}

	totals := store.Totals()
	if totals.ItemsTotal != 2*120+220 {
		t.Fatalf("unexpected items total %d", totals.ItemsTotal)
	}
}

func TestSizedControlClampsAtZero(t *testing.T) {
	store := NewStore(nil)
	ctl := NewSizedControl(store, starterOptions())

	ctl.Adjust(-1)
	if !store.Empty() {
		t.Fatalf("decrement below zero must not create a line")
	}

	ctl.Adjust(+1)
	ctl.Adjust(-1)
	ctl.Adjust(-1)
	if got := store.Quantity("Chicken 65 (Half)"); got != 0 {
		t.Fatalf("expected quantity clamped to 0, got %d", got)
	}
}

func TestSizedControlIgnoresUnknownLabel(t *testing.T) {
	store := NewStore(nil)
	ctl := NewSizedControl(store, starterOptions())

	ctl.Select("quarter")
	if got := ctl.Selected().Label; got != "half" {
		t.Fatalf("unknown label must not change selection, got %q", got)
	}
}

func TestManagerReusesSessionCart(t *testing.T) {
	mgr := NewManager(nil)

	store, id := mgr.Get("")
	if id == "" {
		t.Fatalf("expected a generated session id")
	}
	store.AddOne("A", 10)

	again, sameID := mgr.Get(id)
	if sameID != id {
		t.Fatalf("existing session id must be echoed back")
	}
	if again.Quantity("A") != 1 {
		t.Fatalf("expected same cart for the session")
	}

	mgr.Drop(id)
	fresh, _ := mgr.Get(id)
	if !fresh.Empty() {
		t.Fatalf("dropped session must start over with an empty cart")
	}
}
