package entity

import "time"

const (
	TableAvailable   = "available"
	TableOccupied    = "occupied"
	TableReserved    = "reserved"
	TableUnavailable = "unavailable"
)

type Table struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Number    int       `gorm:"uniqueIndex;not null" json:"number"`
	Capacity  int       `gorm:"not null" json:"capacity"`
	Status    string    `gorm:"not null;default:available" json:"status"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"createdAt"`

	Reservations []Reservation `gorm:"foreignKey:TableID" json:"-"`
}
