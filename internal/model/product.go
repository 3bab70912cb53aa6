package model

type Product struct {
	BaseModel
	SKU         string `gorm:"type:varchar(50);uniqueIndex;not null" json:"sku" validate:"required"`
	Name        string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Description string `gorm:"type:text" json:"description"`
	Category    string `gorm:"type:varchar(100)" json:"category"`
	// Price in minor currency units
	Price         int64  `gorm:"default:0" json:"price" validate:"gte=0"`
	StockQuantity int    `gorm:"default:0" json:"stock_quantity" validate:"gte=0"`
	Unit          string `gorm:"type:varchar(20)" json:"unit"`
	// Products referenced by requests are deactivated, never hard-deleted
	IsActive bool `gorm:"default:true" json:"is_active"`
}
