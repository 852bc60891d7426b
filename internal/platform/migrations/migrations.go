package migrations

import (
	"time"

	"gorm.io/gorm"
)

// Run applies the store manager schema: products, sales, and the
// sales_products junction table.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&productRecord{},
		&saleRecord{},
		&saleProductRecord{},
	)
}

// Product schema mirrors the products Postgres adapter.
type productRecord struct {
	ID   int64  `gorm:"primaryKey;column:id"`
	Name string `gorm:"column:name;not null"`
}

func (productRecord) TableName() string { return "products" }

// Sale schema mirrors the sales Postgres adapter.
type saleRecord struct {
	ID   int64     `gorm:"primaryKey;column:id"`
	Date time.Time `gorm:"column:date;type:timestamptz;not null;default:CURRENT_TIMESTAMP"`
}

func (saleRecord) TableName() string { return "sales" }

// Line item schema mirrors the sales Postgres adapter. Rows belong to a sale
// and are removed with it.
type saleProductRecord struct {
	SaleID    int64      `gorm:"primaryKey;autoIncrement:false;column:sale_id"`
	ProductID int64      `gorm:"primaryKey;autoIncrement:false;column:product_id;index"`
	Quantity  int        `gorm:"column:quantity;not null"`
	Sale      saleRecord `gorm:"foreignKey:SaleID;references:ID;constraint:OnDelete:CASCADE"`
}

func (saleProductRecord) TableName() string { return "sales_products" }
