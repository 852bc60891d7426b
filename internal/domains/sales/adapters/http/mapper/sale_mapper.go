package mapper

import (
	"time"

	saledomain "github.com/Apurer/store-manager/internal/domains/sales/domain"
)

// MutationItem captures one inbound line item while preserving field presence.
type MutationItem struct {
	ProductID *int64 `json:"productId,omitempty"`
	Quantity  *int   `json:"quantity,omitempty"`
}

// Item is a line item in transport form.
type Item struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// DetailRow is the transport form of one sale detail line.
type DetailRow struct {
	Date      time.Time `json:"date"`
	ProductID int64     `json:"productId"`
	Quantity  int       `json:"quantity"`
}

// ListingRow is the transport form of one flat listing line.
type ListingRow struct {
	SaleID    int64     `json:"saleId"`
	Date      time.Time `json:"date"`
	ProductID int64     `json:"productId"`
	Quantity  int       `json:"quantity"`
}

// Registration is returned after a sale has been created.
type Registration struct {
	ID        int64  `json:"id"`
	ItemsSold []Item `json:"itemsSold"`
}

// Update is returned after a sale's quantities have been edited.
type Update struct {
	SaleID       int64  `json:"saleId"`
	ItemsUpdated []Item `json:"itemsUpdated"`
}

// ToDomainItems converts validated inbound items into domain inputs, preserving order.
// Absent fields become zero values.
func ToDomainItems(items []MutationItem) []saledomain.ItemInput {
	result := make([]saledomain.ItemInput, 0, len(items))
	for _, item := range items {
		input := saledomain.ItemInput{}
		if item.ProductID != nil {
			input.ProductID = *item.ProductID
		}
		if item.Quantity != nil {
			input.Quantity = *item.Quantity
		}
		result = append(result, input)
	}
	return result
}

// FromDomainItems converts domain inputs back to transport items.
func FromDomainItems(items []saledomain.ItemInput) []Item {
	result := make([]Item, 0, len(items))
	for _, item := range items {
		result = append(result, Item{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	return result
}

// FromDomainRegistration converts a registration result.
func FromDomainRegistration(registration *saledomain.Registration) Registration {
	if registration == nil {
		return Registration{ItemsSold: []Item{}}
	}
	return Registration{ID: registration.ID, ItemsSold: FromDomainItems(registration.ItemsSold)}
}

// FromDomainUpdate converts an update summary.
func FromDomainUpdate(update *saledomain.Update) Update {
	if update == nil {
		return Update{ItemsUpdated: []Item{}}
	}
	return Update{SaleID: update.SaleID, ItemsUpdated: FromDomainItems(update.ItemsUpdated)}
}

// FromDomainDetail converts the sale detail view.
func FromDomainDetail(rows []saledomain.DetailRow) []DetailRow {
	result := make([]DetailRow, 0, len(rows))
	for _, row := range rows {
		result = append(result, DetailRow{Date: row.Date, ProductID: row.ProductID, Quantity: row.Quantity})
	}
	return result
}

// FromDomainListing converts the flat sale listing.
func FromDomainListing(rows []saledomain.ListingRow) []ListingRow {
	result := make([]ListingRow, 0, len(rows))
	for _, row := range rows {
		result = append(result, ListingRow{
			SaleID:    row.SaleID,
			Date:      row.Date,
			ProductID: row.ProductID,
			Quantity:  row.Quantity,
		})
	}
	return result
}
