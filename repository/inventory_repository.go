package repository

import (
	"github.com/CrisantoUpiicsa/ReservaBarSystemv01/entity"
	"gorm.io/gorm"
)

type InventoryRepository struct {
	DB *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{DB: db}
}

func (r *InventoryRepository) FindAll() ([]entity.InventoryItem, error) {
	var items []entity.InventoryItem
	err := r.DB.Order("id asc").Find(&items).Error
	return items, err
}

func (r *InventoryRepository) FindByID(id uint) (*entity.InventoryItem, error) {
	var item entity.InventoryItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *InventoryRepository) Create(item *entity.InventoryItem) error {
	return r.DB.Create(item).Error
}

func (r *InventoryRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.InventoryItem{}).Where("id = ?", id).Updates(updates).Error
}

func (r *InventoryRepository) Delete(id uint) (bool, error) {
	res := r.DB.Delete(&entity.InventoryItem{}, id)
	return res.RowsAffected > 0, res.Error
}

func (r *InventoryRepository) UpdateTx(tx *gorm.DB, id uint, updates map[string]any) error {
	return tx.Model(&entity.InventoryItem{}).Where("id = ?", id).Updates(updates).Error
}

func (r *InventoryRepository) CreateMovementTx(tx *gorm.DB, movement *entity.StockMovement) error {
	return tx.Create(movement).Error
}

func (r *InventoryRepository) FindMovements(itemID uint) ([]entity.StockMovement, error) {
	var movements []entity.StockMovement
	err := r.DB.Where("inventory_item_id = ?", itemID).Order("id asc").Find(&movements).Error
	return movements, err
}
