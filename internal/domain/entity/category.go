package entity

// Category is the fixed product category enumeration.
type Category string

const (
	CategoryRings       Category = "rings"
	CategoryNecklaces   Category = "necklaces"
	CategoryBracelets   Category = "bracelets"
	CategoryEarrings    Category = "earrings"
	CategoryWatches     Category = "watches"
	CategoryAccessories Category = "accessories"
)

// Valid reports whether the category belongs to the fixed set.
func (c Category) Valid() bool {
	switch c {
	case CategoryRings, CategoryNecklaces, CategoryBracelets,
		CategoryEarrings, CategoryWatches, CategoryAccessories:
		return true
	default:
		return false
	}
}
