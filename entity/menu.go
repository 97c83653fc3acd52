package entity

import "time"

type MenuCategory struct {
	ID           uint   `gorm:"primarykey" json:"id"`
	Name         string `gorm:"not null" json:"name"`
	Description  string `json:"description"`
	DisplayOrder int    `gorm:"not null;default:0" json:"displayOrder"`
	Type         string `json:"type"` // food, drink, ...

	Items []MenuItem `gorm:"foreignKey:CategoryID" json:"-"`
}

type MenuItem struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	Price       string `gorm:"type:decimal(10,2);not null" json:"price"`
	CategoryID  *uint  `json:"categoryId"`
	Available   *bool  `gorm:"not null;default:true" json:"available"`
	ImageURL    string `json:"imageUrl"`

	AlcoholContent  string `json:"alcoholContent,omitempty"`
	Ingredients     string `json:"ingredients,omitempty"`
	PreparationTime int    `json:"preparationTime,omitempty"`
	Popularity      int    `json:"popularity,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}
