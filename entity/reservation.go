package entity

import "time"

const (
	ReservationPending   = "pending"
	ReservationConfirmed = "confirmed"
	ReservationCancelled = "cancelled"
	ReservationCompleted = "completed"
)

type Reservation struct {
	ID            uint   `gorm:"primarykey" json:"id"`
	UserID        *uint  `json:"userId,omitempty"`
	CustomerName  string `gorm:"not null" json:"customerName"`
	CustomerEmail string `gorm:"not null" json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`

	// nil means "any available table"
	TableID *uint `json:"tableId"`

	Date   string `gorm:"not null" json:"date"` // YYYY-MM-DD
	Time   string `gorm:"not null" json:"time"` // HH:MM
	Guests int    `gorm:"not null" json:"guests"`
	Status string `gorm:"not null;default:pending" json:"status"`

	SpecialRequests string `json:"specialRequests"`

	// Carried for schema compatibility, untouched by business logic.
	TotalAmount   string `gorm:"type:decimal(10,2)" json:"totalAmount"`
	PaymentStatus string `json:"paymentStatus"`

	CreatedAt time.Time `json:"createdAt"`
}
