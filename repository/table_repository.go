package repository

import (
	"github.com/CrisantoUpiicsa/ReservaBarSystemv01/entity"
	"gorm.io/gorm"
)

type TableRepository struct {
	DB *gorm.DB
}

func NewTableRepository(db *gorm.DB) *TableRepository {
	return &TableRepository{DB: db}
}

func (r *TableRepository) FindAll() ([]entity.Table, error) {
	var tables []entity.Table
	err := r.DB.Order("id asc").Find(&tables).Error
	return tables, err
}

func (r *TableRepository) FindByID(id uint) (*entity.Table, error) {
	var table entity.Table
	if err := r.DB.First(&table, id).Error; err != nil {
		return nil, err
	}
	return &table, nil
}

func (r *TableRepository) FindByStatus(status string) ([]entity.Table, error) {
	var tables []entity.Table
	err := r.DB.Where("status = ?", status).Order("id asc").Find(&tables).Error
	return tables, err
}

func (r *TableRepository) CountByNumber(number int) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Table{}).Where("number = ?", number).Count(&count).Error
	return count, err
}

func (r *TableRepository) Create(table *entity.Table) error {
	return r.DB.Create(table).Error
}

func (r *TableRepository) UpdateStatus(id uint, status string) error {
	return r.DB.Model(&entity.Table{}).Where("id = ?", id).Update("status", status).Error
}

func (r *TableRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Table{}).Count(&count).Error
	return count, err
}

func (r *TableRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Table{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *TableRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Table{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
