package entity

import "time"

const (
	RoleCustomer = "customer"
	RoleStaff    = "staff"
	RoleManager  = "manager"
	RoleAdmin    = "admin"
)

type User struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	Username    string `gorm:"uniqueIndex;not null" json:"username"`
	Password    string `gorm:"not null" json:"-"`
	Role        string `gorm:"not null;default:customer" json:"role"`
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Age         *int   `json:"age,omitempty"`
	Gender      string `json:"gender,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`

	LoyaltyPoints int `gorm:"not null;default:0" json:"loyaltyPoints"`
	TotalVisits   int `gorm:"not null;default:0" json:"totalVisits"`

	CreatedAt time.Time `json:"createdAt"`

	// Relations; preload only when needed
	Reservations []Reservation `gorm:"foreignKey:UserID" json:"-"`
	Orders       []Order       `gorm:"foreignKey:UserID" json:"-"`
}
