package repository

import (
	"github.com/CrisantoUpiicsa/ReservaBarSystemv01/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) CreateOrderTx(tx *gorm.DB, order *entity.Order) error {
	return tx.Create(order).Error
}

func (r *OrderRepository) CreateOrderItemTx(tx *gorm.DB, item *entity.OrderItem) error {
	return tx.Create(item).Error
}

func (r *OrderRepository) FindAll() ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Preload("Items").Order("id asc").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) FindByUser(userID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Preload("Items").Where("user_id = ?", userID).Order("id asc").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) FindByID(id uint) (*entity.Order, error) {
	var order entity.Order
	if err := r.DB.Preload("Items").First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) UpdateStatus(id uint, status string) error {
	return r.DB.Model(&entity.Order{}).Where("id = ?", id).Update("status", status).Error
}
