package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFlavorCatalog_Shape(t *testing.T) {
	c := NewFlavorCatalog()

	require.Len(t, c.Categories, 8)

	wantOrder := []string{
		"Fruity", "Floral", "Sweet", "Nutty/Cocoa",
		"Green/Vegetative", "Roasted", "Spices", "Other",
	}
	for i, cat := range c.Categories {
		assert.Equal(t, wantOrder[i], cat.Name)
		assert.GreaterOrEqual(t, len(cat.Subcategories), 1)
		assert.LessOrEqual(t, len(cat.Subcategories), 4)
		for _, sub := range cat.Subcategories {
			assert.GreaterOrEqual(t, len(sub.Descriptors), 1, "%s/%s", cat.Name, sub.Name)
			assert.LessOrEqual(t, len(sub.Descriptors), 4, "%s/%s", cat.Name, sub.Name)
		}
	}
}

func TestFlavorCatalog_Contains(t *testing.T) {
	c := NewFlavorCatalog()

	assert.True(t, c.Contains("Blackberry"))
	assert.True(t, c.Contains("Jasmine"))
	assert.True(t, c.Contains("Musty"))
	assert.False(t, c.Contains("Kerosene"))
	assert.False(t, c.Contains(""))
}

func TestFlavorCatalog_DescriptorsOrderIsStable(t *testing.T) {
	c := NewFlavorCatalog()

	first := c.Descriptors()
	second := c.Descriptors()

	require.NotEmpty(t, first)
	assert.Equal(t, first, second)

	// The wheel starts with the Fruity/Berry descriptors
	assert.Equal(t, "Blackberry", first[0])
	assert.Equal(t, "Raspberry", first[1])

	// No duplicates: every descriptor is a distinct set member
	seen := make(map[string]bool, len(first))
	for _, d := range first {
		assert.False(t, seen[d], "duplicate descriptor %q", d)
		seen[d] = true
	}
}
