package repository

import (
	"github.com/CrisantoUpiicsa/ReservaBarSystemv01/entity"
	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// FindCategories returns categories in display order; ties keep insertion order.
func (r *MenuRepository) FindCategories() ([]entity.MenuCategory, error) {
	var categories []entity.MenuCategory
	err := r.DB.Order("display_order asc, id asc").Find(&categories).Error
	return categories, err
}

func (r *MenuRepository) FindCategoriesWithItems() ([]entity.MenuCategory, error) {
	var categories []entity.MenuCategory
	err := r.DB.Preload("Items").Order("display_order asc, id asc").Find(&categories).Error
	return categories, err
}

func (r *MenuRepository) CreateCategory(category *entity.MenuCategory) error {
	return r.DB.Create(category).Error
}

func (r *MenuRepository) CategoryExists(id uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.MenuCategory{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *MenuRepository) FindItems() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Order("id asc").Find(&items).Error
	return items, err
}

func (r *MenuRepository) FindItemsByCategory(categoryID uint) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Where("category_id = ?", categoryID).Order("id asc").Find(&items).Error
	return items, err
}

func (r *MenuRepository) FindItemByID(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) CreateItem(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

// UpdateItem merges only the named columns onto the row.
func (r *MenuRepository) UpdateItem(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).Updates(updates).Error
}

func (r *MenuRepository) DeleteItem(id uint) (bool, error) {
	res := r.DB.Delete(&entity.MenuItem{}, id)
	return res.RowsAffected > 0, res.Error
}
