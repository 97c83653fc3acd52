package entity

import "time"

// Derived stock levels, computed at read time and never stored.
const (
	StockOut = "out of stock"
	StockLow = "low stock"
	StockIn  = "in stock"
)

type InventoryItem struct {
	ID           uint   `gorm:"primarykey" json:"id"`
	Name         string `gorm:"not null" json:"name"`
	Category     string `gorm:"not null" json:"category"`
	CurrentStock int    `gorm:"not null" json:"currentStock"`
	MinimumStock int    `gorm:"not null" json:"minimumStock"`
	Unit         string `gorm:"not null" json:"unit"` // kg, lbs, bottles, ...
	UnitPrice    string `gorm:"type:decimal(10,2);not null" json:"unitPrice"`
	Supplier     string `json:"supplier"`

	LastRestocked  *time.Time `json:"lastRestocked"`
	ExpirationDate *time.Time `json:"expirationDate"`
	CreatedAt      time.Time  `json:"createdAt"`

	Status string `gorm:"-" json:"status"`

	Movements []StockMovement `gorm:"foreignKey:InventoryItemID" json:"-"`
}

const (
	MovementRestock    = "restock"
	MovementUsage      = "usage"
	MovementCorrection = "correction"
)

type StockMovement struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	InventoryItemID uint      `gorm:"not null" json:"inventoryItemId"`
	Delta           int       `gorm:"not null" json:"delta"`
	Reason          string    `gorm:"not null" json:"reason"`
	UserID          *uint     `json:"userId,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}
