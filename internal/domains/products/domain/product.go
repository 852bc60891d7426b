package domain

import "strings"

// MinNameLength is the shortest product name accepted by the API.
const MinNameLength = 5

// Product models an item that can be sold.
type Product struct {
	ID   int64
	Name string
}

// Rename replaces the product name.
func (p *Product) Rename(name string) {
	p.Name = name
}

// MatchesName reports whether term is a case-insensitive substring of the
// product name. An empty term matches every product.
func (p *Product) MatchesName(term string) bool {
	return strings.Contains(strings.ToLower(p.Name), strings.ToLower(term))
}
