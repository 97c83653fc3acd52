package repository

import (
	"github.com/CrisantoUpiicsa/ReservaBarSystemv01/entity"
	"gorm.io/gorm"
)

// ReservationFilter narrows List; zero-value fields are ignored.
// Filters combine with AND semantics.
type ReservationFilter struct {
	Date    string
	Status  string
	TableID *uint
}

type ReservationRepository struct {
	DB *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{DB: db}
}

func (r *ReservationRepository) FindAll(filter ReservationFilter) ([]entity.Reservation, error) {
	q := r.DB.Order("id asc")
	if filter.Date != "" {
		q = q.Where("date = ?", filter.Date)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.TableID != nil {
		q = q.Where("table_id = ?", *filter.TableID)
	}

	var reservations []entity.Reservation
	err := q.Find(&reservations).Error
	return reservations, err
}

func (r *ReservationRepository) FindByID(id uint) (*entity.Reservation, error) {
	var reservation entity.Reservation
	if err := r.DB.First(&reservation, id).Error; err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (r *ReservationRepository) FindByUser(userID uint) ([]entity.Reservation, error) {
	var reservations []entity.Reservation
	err := r.DB.Where("user_id = ?", userID).Order("id asc").Find(&reservations).Error
	return reservations, err
}

func (r *ReservationRepository) Create(reservation *entity.Reservation) error {
	return r.DB.Create(reservation).Error
}

func (r *ReservationRepository) UpdateStatus(id uint, status string) error {
	return r.DB.Model(&entity.Reservation{}).Where("id = ?", id).Update("status", status).Error
}

// Delete removes the row outright; false means no such reservation.
func (r *ReservationRepository) Delete(id uint) (bool, error) {
	res := r.DB.Delete(&entity.Reservation{}, id)
	return res.RowsAffected > 0, res.Error
}

func (r *ReservationRepository) Recent(limit int) ([]entity.Reservation, error) {
	var reservations []entity.Reservation
	err := r.DB.Order("created_at desc, id desc").Limit(limit).Find(&reservations).Error
	return reservations, err
}

func (r *ReservationRepository) CountByDate(date string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Reservation{}).Where("date = ?", date).Count(&count).Error
	return count, err
}
