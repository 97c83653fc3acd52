package entity

import "time"

const (
	OrderPending   = "pending"
	OrderPreparing = "preparing"
	OrderServed    = "served"
	OrderCompleted = "completed"
	OrderCancelled = "cancelled"
)

type Order struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	UserID   uint   `gorm:"not null" json:"userId"`
	Status   string `gorm:"not null;default:pending" json:"status"`
	Subtotal string `gorm:"type:decimal(10,2);not null" json:"subtotal"`
	Total    string `gorm:"type:decimal(10,2);not null" json:"total"`
	Notes    string `json:"notes"`

	CreatedAt time.Time `json:"createdAt"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
}

type OrderItem struct {
	ID         uint   `gorm:"primarykey" json:"id"`
	OrderID    uint   `gorm:"not null" json:"orderId"`
	MenuItemID uint   `gorm:"not null" json:"menuItemId"`
	Quantity   int    `gorm:"not null" json:"quantity"`
	UnitPrice  string `gorm:"type:decimal(10,2);not null" json:"unitPrice"`
	LineTotal  string `gorm:"type:decimal(10,2);not null" json:"lineTotal"`
}
