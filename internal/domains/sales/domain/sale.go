package domain

import (
	"sort"
	"time"
)

// Sale is the header row of a sale. Date is set when the sale is created and
// never changes.
type Sale struct {
	ID   int64
	Date time.Time
}

// LineItem is one product and quantity belonging to exactly one sale.
type LineItem struct {
	SaleID    int64
	ProductID int64
	Quantity  int
}

// ItemInput is a requested line item, before it is attached to a sale.
type ItemInput struct {
	ProductID int64
	Quantity  int
}

// DetailRow is one line of the sale detail view.
type DetailRow struct {
	Date      time.Time
	ProductID int64
	Quantity  int
}

// ListingRow is one line of the flat sale listing.
type ListingRow struct {
	SaleID    int64
	Date      time.Time
	ProductID int64
	Quantity  int
}

// Registration is the result of creating a sale.
type Registration struct {
	ID        int64
	ItemsSold []ItemInput
}

// Update is the result of editing a sale's quantities.
type Update struct {
	SaleID       int64
	ItemsUpdated []ItemInput
}

// ProductIDs returns the product id of every item, duplicates included.
func ProductIDs(items []ItemInput) []int64 {
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}
	return ids
}

// BuildDetail joins a sale with its line items. Items that belong to other
// sales are ignored. The result is ordered by product id and is never nil.
func BuildDetail(sale Sale, items []LineItem) []DetailRow {
	rows := make([]DetailRow, 0, len(items))
	for _, item := range items {
		if item.SaleID != sale.ID {
			continue
		}
		rows = append(rows, DetailRow{Date: sale.Date, ProductID: item.ProductID, Quantity: item.Quantity})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].ProductID < rows[j].ProductID })
	return rows
}

// BuildListing annotates every line item with its sale's date. Items whose
// sale is absent from sales are skipped. Rows are ordered by sale id, then
// product id.
func BuildListing(sales []Sale, items []LineItem) []ListingRow {
	dates := make(map[int64]time.Time, len(sales))
	for _, sale := range sales {
		dates[sale.ID] = sale.Date
	}
	rows := make([]ListingRow, 0, len(items))
	for _, item := range items {
		date, ok := dates[item.SaleID]
		if !ok {
			continue
		}
		rows = append(rows, ListingRow{
			SaleID:    item.SaleID,
			Date:      date,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].SaleID != rows[j].SaleID {
			return rows[i].SaleID < rows[j].SaleID
		}
		return rows[i].ProductID < rows[j].ProductID
	})
	return rows
}
