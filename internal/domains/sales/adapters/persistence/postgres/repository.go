package postgres

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/Apurer/store-manager/internal/domains/sales/domain"
	"github.com/Apurer/store-manager/internal/domains/sales/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists sales and their line items in PostgreSQL using GORM.
// Read models are joined in Go rather than in SQL.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB
// lifecycle and schema migrations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// saleRecord maps the sale header to the sales table. The date is filled
// by the database on insert.
type saleRecord struct {
	ID   int64     `gorm:"primaryKey;column:id"`
	Date time.Time `gorm:"column:date;type:timestamptz;not null;default:CURRENT_TIMESTAMP"`
}

func (saleRecord) TableName() string { return "sales" }

// saleProductRecord maps a line item to the sales_products junction table.
type saleProductRecord struct {
	SaleID    int64 `gorm:"primaryKey;autoIncrement:false;column:sale_id"`
	ProductID int64 `gorm:"primaryKey;autoIncrement:false;column:product_id;index"`
	Quantity  int   `gorm:"column:quantity;not null"`
}

func (saleProductRecord) TableName() string { return "sales_products" }

// Exists reports whether a sale row with saleID is stored.
func (r *Repository) Exists(ctx context.Context, saleID int64) (bool, error) {
	if err := r.ensureDB(); err != nil {
		return false, err
	}
	var count int64
	if err := r.db.WithContext(ctx).Model(&saleRecord{}).Where("id = ?", saleID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create inserts the sale and its line items in one transaction.
func (r *Repository) Create(ctx context.Context, items []domain.ItemInput) (int64, error) {
	if err := r.ensureDB(); err != nil {
		return 0, err
	}
	var sale saleRecord
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&sale).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		records := toLineItemRecords(sale.ID, items)
		return tx.Create(&records).Error
	})
	if err != nil {
		return 0, err
	}
	return sale.ID, nil
}

// Detail loads the sale and its line items concurrently and joins them.
func (r *Repository) Detail(ctx context.Context, saleID int64) ([]domain.DetailRow, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var (
		sale  saleRecord
		items []saleProductRecord
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.db.WithContext(gctx).First(&sale, "id = ?", saleID).Error
	})
	g.Go(func() error {
		return r.db.WithContext(gctx).Where("sale_id = ?", saleID).Find(&items).Error
	})
	if err := g.Wait(); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return domain.BuildDetail(sale.toDomain(), toDomainItems(items)), nil
}

// Listing loads every sale and every line item concurrently and joins them.
func (r *Repository) Listing(ctx context.Context) ([]domain.ListingRow, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var (
		sales []saleRecord
		items []saleProductRecord
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.db.WithContext(gctx).Find(&sales).Error
	})
	g.Go(func() error {
		return r.db.WithContext(gctx).Find(&items).Error
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	headers := make([]domain.Sale, 0, len(sales))
	for i := range sales {
		headers = append(headers, sales[i].toDomain())
	}
	return domain.BuildListing(headers, toDomainItems(items)), nil
}

// UpdateQuantities sets quantities by product id across all sales.
func (r *Repository) UpdateQuantities(ctx context.Context, items []domain.ItemInput) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			err := tx.Model(&saleProductRecord{}).
				Where("product_id = ?", item.ProductID).
				Update("quantity", item.Quantity).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes the line items and then the sale in one transaction.
func (r *Repository) Delete(ctx context.Context, saleID int64) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("sale_id = ?", saleID).Delete(&saleProductRecord{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&saleRecord{}, saleID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ports.ErrNotFound
		}
		return nil
	})
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres sale repository not configured")
	}
	return nil
}

func toLineItemRecords(saleID int64, items []domain.ItemInput) []saleProductRecord {
	records := make([]saleProductRecord, 0, len(items))
	for _, item := range items {
		records = append(records, saleProductRecord{SaleID: saleID, ProductID: item.ProductID, Quantity: item.Quantity})
	}
	return records
}

func (r saleRecord) toDomain() domain.Sale {
	return domain.Sale{ID: r.ID, Date: r.Date}
}

func toDomainItems(records []saleProductRecord) []domain.LineItem {
	items := make([]domain.LineItem, 0, len(records))
	for _, record := range records {
		items = append(items, domain.LineItem{SaleID: record.SaleID, ProductID: record.ProductID, Quantity: record.Quantity})
	}
	return items
}
