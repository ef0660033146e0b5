package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/sivanaveen080/biryani-for-lunch/internal/sheets"
)

func testProducts() []Product {
	return []Product{
		{Name: "Chicken Biryani", Price: 160, Category: "biryani", Bestseller: true},
		{Name: "Veg Noodles", Price: 90, Category: "noodles"},
		{Name: "Samosa", Price: 15, Category: "snacks"},
		{Name: "Chicken Noodles", Price: 120, Category: "noodles", Bestseller: true},
	}
}

type stubMenu struct {
	items []sheets.MenuItem
	err   error
}

func (s stubMenu) ListMenu(context.Context) ([]sheets.MenuItem, error) {
	return s.items, s.err
}

func TestFilterAll(t *testing.T) {
	svc := NewService(testProducts(), nil)

	for _, tag := range []string{"", "all", "ALL"} {
		got := svc.Filter(tag)
		if len(got) != 4 {
			t.Fatalf("tag %q: expected all 4 products, got %d", tag, len(got))
		}
	}
}

func TestFilterBestseller(t *testing.T) {
	svc := NewService(testProducts(), nil)

	got := svc.Filter("bestseller")
	if len(got) != 2 {
		t.Fatalf("expected 2 bestsellers, got %d", len(got))
	}
	for _, p := range got {
		if !p.Bestseller {
			t.Fatalf("non-bestseller leaked: %+v", p)
		}
	}
}

func TestFilterByCategoryPreservesOrder(t *testing.T) {
	svc := NewService(testProducts(), nil)

	got := svc.Filter("noodles")
	if len(got) != 2 || got[0].Name != "Veg Noodles" || got[1].Name != "Chicken Noodles" {
		t.Fatalf("unexpected category result %+v", got)
	}
}

func TestFilterUnknownTagMatchesNothing(t *testing.T) {
	svc := NewService(testProducts(), nil)
	if got := svc.Filter("desserts"); len(got) != 0 {
		t.Fatalf("expected no matches, got %+v", got)
	}
}

func TestRefreshAppliesMenuAvailability(t *testing.T) {
	menu := stubMenu{items: []sheets.MenuItem{
		{ItemName: "Veg Noodles", Available: false},
		{ItemName: "Samosa", Available: true},
	}}
	svc := NewService(testProducts(), menu)

	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	if svc.Available("Veg Noodles") {
		t.Fatalf("Veg Noodles should be out of stock")
	}
	if !svc.Available("Samosa") {
		t.Fatalf("Samosa should be available")
	}
	// names the menu sheet never mentioned stay orderable
	if !svc.Available("Chicken Biryani") {
		t.Fatalf("unknown-to-menu items default to available")
	}

	for _, p := range svc.Filter("all") {
		if p.Name == "Veg Noodles" && p.Available {
			t.Fatalf("filter output must carry availability")
		}
	}
}

func TestRefreshPropagatesError(t *testing.T) {
	svc := NewService(testProducts(), stubMenu{err: errors.New("down")})
	if err := svc.Refresh(context.Background()); err == nil {
		t.Fatal("expected refresh error")
	}
}

func TestSetAvailableTogglesCache(t *testing.T) {
	svc := NewService(testProducts(), nil)

	svc.SetAvailable("Samosa", false)
	if svc.Available("Samosa") {
		t.Fatalf("expected Samosa unavailable")
	}
	svc.SetAvailable("Samosa", true)
	if !svc.Available("Samosa") {
		t.Fatalf("expected Samosa available again")
	}
}
