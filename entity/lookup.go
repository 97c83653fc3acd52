package entity

import "time"

// Forward-compat tables for the eventual relational layout. Migrated but not
// driven by any endpoint yet.

type Supplier struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Contact   string    `json:"contact"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
}

type Promotion struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	Discount    string    `gorm:"type:decimal(10,2)" json:"discount"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate"`
	Active      bool      `gorm:"not null;default:false" json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Event struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Capacity    int       `json:"capacity"`
	CreatedAt   time.Time `json:"createdAt"`
}
