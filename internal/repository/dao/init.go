package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&AdminUser{},
		&Item{},
		&Invoice{},
		&InvoiceItem{},
		&MarketRate{},
		&Category{},
		&Material{},
	)
}
