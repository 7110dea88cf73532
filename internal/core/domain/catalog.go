package domain

// Subcategory groups descriptors under a flavor category
type Subcategory struct {
	Name        string   `json:"name"`
	Descriptors []string `json:"descriptors"`
}

// Category is a top-level branch of the flavor wheel
type Category struct {
	Name          string        `json:"name"`
	Subcategories []Subcategory `json:"subcategories"`
}

// FlavorCatalog is the fixed flavor-wheel taxonomy.
// Slice order is the display order; it must stay stable.
type FlavorCatalog struct {
	Categories []Category
	members    map[string]bool
}

// catalogData is the full wheel. Loaded once at package init, never mutated.
var catalogData = []Category{
	{Name: "Fruity", Subcategories: []Subcategory{
		{Name: "Berry", Descriptors: []string{"Blackberry", "Raspberry", "Blueberry", "Strawberry"}},
		{Name: "Dried Fruit", Descriptors: []string{"Raisin", "Prune"}},
		{Name: "Citrus", Descriptors: []string{"Lemon", "Orange", "Grapefruit", "Lime"}},
		{Name: "Other Fruit", Descriptors: []string{"Apple", "Peach", "Pear", "Cherry"}},
	}},
	{Name: "Floral", Subcategories: []Subcategory{
		{Name: "Floral", Descriptors: []string{"Jasmine", "Rose", "Chamomile"}},
		{Name: "Tea-like", Descriptors: []string{"Black Tea"}},
	}},
	{Name: "Sweet", Subcategories: []Subcategory{
		{Name: "Brown Sugar", Descriptors: []string{"Molasses", "Maple Syrup", "Caramelized", "Honey Sweet"}},
		{Name: "Vanilla", Descriptors: []string{"Vanilla"}},
		{Name: "Overall Sweet", Descriptors: []string{"Sweet Aromatics"}},
	}},
	{Name: "Nutty/Cocoa", Subcategories: []Subcategory{
		{Name: "Nutty", Descriptors: []string{"Almond", "Hazelnut", "Peanut"}},
		{Name: "Cocoa", Descriptors: []string{"Chocolate", "Dark Chocolate"}},
	}},
	{Name: "Green/Vegetative", Subcategories: []Subcategory{
		{Name: "Green", Descriptors: []string{"Under-ripe", "Vegetative", "Fresh"}},
		{Name: "Olive Oil", Descriptors: []string{"Olive Oil"}},
		{Name: "Beany", Descriptors: []string{"Raw Bean"}},
	}},
	{Name: "Roasted", Subcategories: []Subcategory{
		{Name: "Cereal", Descriptors: []string{"Grain", "Malt"}},
		{Name: "Burnt", Descriptors: []string{"Acrid", "Ashy", "Smoky"}},
		{Name: "Tobacco", Descriptors: []string{"Pipe Tobacco"}},
	}},
	{Name: "Spices", Subcategories: []Subcategory{
		{Name: "Brown Spice", Descriptors: []string{"Cinnamon", "Clove", "Nutmeg", "Anise"}},
		{Name: "Pungent", Descriptors: []string{"Pepper"}},
	}},
	{Name: "Other", Subcategories: []Subcategory{
		{Name: "Chemical", Descriptors: []string{"Medicinal", "Rubber"}},
		{Name: "Papery/Musty", Descriptors: []string{"Stale", "Cardboard", "Earthy", "Musty"}},
	}},
}

// NewFlavorCatalog builds the process-wide catalog
func NewFlavorCatalog() *FlavorCatalog {
	c := &FlavorCatalog{
		Categories: catalogData,
		members:    make(map[string]bool),
	}
	for _, cat := range c.Categories {
		for _, sub := range cat.Subcategories {
			for _, d := range sub.Descriptors {
				c.members[d] = true
			}
		}
	}
	return c
}

// Contains reports whether a descriptor exists anywhere in the catalog
func (c *FlavorCatalog) Contains(descriptor string) bool {
	return c.members[descriptor]
}

// Descriptors returns every descriptor in catalog display order
func (c *FlavorCatalog) Descriptors() []string {
	var out []string
	for _, cat := range c.Categories {
		for _, sub := range cat.Subcategories {
			out = append(out, sub.Descriptors...)
		}
	}
	return out
}
