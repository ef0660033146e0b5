package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedShape(t *testing.T) {
	products := Seed()
	require.NotEmpty(t, products)

	byName := make(map[string]Product, len(products))
	for _, p := range products {
		require.NotEmpty(t, p.Name)
		require.NotEmpty(t, p.Category)
		assert.Greater(t, p.Price, 0, "product %s must have a positive price", p.Name)
		_, dup := byName[p.Name]
		require.False(t, dup, "duplicate product name %s", p.Name)
		byName[p.Name] = p
	}

	assert.True(t, byName["Chicken Biryani"].Bestseller)
	assert.Equal(t, 160, byName["Chicken Biryani"].Price)
}

func TestSeedSizedProduct(t *testing.T) {
	var sized *Product
	for _, p := range Seed() {
		if len(p.Sizes) > 0 {
			p := p
			sized = &p
			break
		}
	}
	require.NotNil(t, sized, "seed must carry a sized product")
	require.Len(t, sized.Sizes, 2)

	assert.Equal(t, "half", sized.Sizes[0].Label)
	assert.Equal(t, "full", sized.Sizes[1].Label)
	// each size sells under its own item name with its own price
	assert.NotEqual(t, sized.Sizes[0].ItemName, sized.Sizes[1].ItemName)
	assert.Less(t, sized.Sizes[0].UnitPrice, sized.Sizes[1].UnitPrice)
}
