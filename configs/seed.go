package configs

import (
	"fmt"
	"log"
	"time"

	"github.com/CrisantoUpiicsa/ReservaBarSystemv01/entity"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdmin creates the first admin account from ADMIN_EMAIL/ADMIN_PASSWORD.
func SeedAdmin(db *gorm.DB, email, password string) error {
	if email == "" || password == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Username:  "admin",
		Email:     email,
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "Seed",
		Role:      entity.RoleAdmin,
	}
	return db.Create(&admin).Error
}

// SeedFixtures loads the sample floor plan, menu and inventory into an empty
// database. Re-running against a populated database is a no-op per collection.
func SeedFixtures(db *gorm.DB) error {
	if err := seedTables(db); err != nil {
		return err
	}
	if err := seedMenu(db); err != nil {
		return err
	}
	if err := seedInventory(db); err != nil {
		return err
	}
	log.Println("sample data seeded")
	return nil
}

func seedTables(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.Table{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for i := 1; i <= 20; i++ {
		capacity := 8
		if i <= 10 {
			switch {
			case i%3 == 0:
				capacity = 6
			case i%2 == 0:
				capacity = 4
			default:
				capacity = 2
			}
		}
		status := entity.TableAvailable
		if i <= 2 {
			status = entity.TableOccupied
		} else if i == 3 {
			status = entity.TableReserved
		}
		floor := 1
		if i > 10 {
			floor = 2
		}
		t := entity.Table{
			Number:   i,
			Capacity: capacity,
			Status:   status,
			Location: fmt.Sprintf("Floor %d", floor),
		}
		if err := db.Create(&t).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedMenu(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.MenuCategory{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	categories := []entity.MenuCategory{
		{Name: "Appetizers", Description: "Start your meal right", DisplayOrder: 1, Type: "food"},
		{Name: "Main Courses", Description: "Our signature dishes", DisplayOrder: 2, Type: "food"},
		{Name: "Desserts", Description: "Sweet endings", DisplayOrder: 3, Type: "food"},
	}
	for i := range categories {
		if err := db.Create(&categories[i]).Error; err != nil {
			return err
		}
	}

	items := []entity.MenuItem{
		{Name: "Crispy Calamari", Description: "Fresh squid rings with marinara sauce", Price: "12.99", CategoryID: &categories[0].ID},
		{Name: "Bruschetta", Description: "Toasted bread with fresh tomatoes and basil", Price: "8.99", CategoryID: &categories[0].ID},
		{Name: "Grilled Salmon", Description: "Atlantic salmon with seasonal vegetables", Price: "24.99", CategoryID: &categories[1].ID},
		{Name: "Ribeye Steak", Description: "12oz ribeye with garlic mashed potatoes", Price: "32.99", CategoryID: &categories[1].ID},
		{Name: "Chocolate Lava Cake", Description: "Warm chocolate cake with vanilla ice cream", Price: "8.99", CategoryID: &categories[2].ID},
		{Name: "Tiramisu", Description: "Classic Italian dessert with coffee and mascarpone", Price: "7.99", CategoryID: &categories[2].ID},
	}
	for i := range items {
		if err := db.Create(&items[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedInventory(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.InventoryItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	items := []entity.InventoryItem{
		{Name: "Atlantic Salmon", Category: "Seafood", CurrentStock: 25, MinimumStock: 10, Unit: "lbs", UnitPrice: "18.99", Supplier: "Fresh Seafood Co.", LastRestocked: &now},
		{Name: "Cabernet Sauvignon", Category: "Beverages", CurrentStock: 8, MinimumStock: 15, Unit: "bottles", UnitPrice: "45.00", Supplier: "Premium Wines", LastRestocked: &now},
		{Name: "Ribeye Beef", Category: "Meat", CurrentStock: 15, MinimumStock: 8, Unit: "lbs", UnitPrice: "28.50", Supplier: "Prime Cuts", LastRestocked: &now},
	}
	for i := range items {
		if err := db.Create(&items[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
