package mapper

import (
	productdomain "github.com/Apurer/store-manager/internal/domains/products/domain"
)

// Product is the HTTP representation of a product.
type Product struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// MutationProduct captures inbound create/update payloads while preserving field presence.
type MutationProduct struct {
	Name *string `json:"name,omitempty"`
}

// NameValue returns the submitted name, empty when absent.
func (m MutationProduct) NameValue() string {
	if m.Name == nil {
		return ""
	}
	return *m.Name
}

// FromDomainProduct converts a domain product to the transport representation.
func FromDomainProduct(product *productdomain.Product) Product {
	if product == nil {
		return Product{}
	}
	return Product{ID: product.ID, Name: product.Name}
}

// FromDomainProducts converts a list of domain products.
func FromDomainProducts(products []*productdomain.Product) []Product {
	result := make([]Product, 0, len(products))
	for _, product := range products {
		result = append(result, FromDomainProduct(product))
	}
	return result
}
