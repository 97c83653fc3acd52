package services

import (
	"errors"

	"github.com/CrisantoUpiicsa/ReservaBarSystemv01/entity"
	"github.com/CrisantoUpiicsa/ReservaBarSystemv01/repository"
	"gorm.io/gorm"
)

type ReservationService struct {
	Repo      *repository.ReservationRepository
	TableRepo *repository.TableRepository
}

func NewReservationService(repo *repository.ReservationRepository, tableRepo *repository.TableRepository) *ReservationService {
	return &ReservationService{Repo: repo, TableRepo: tableRepo}
}

func (s *ReservationService) List(filter repository.ReservationFilter) ([]entity.Reservation, error) {
	return s.Repo.FindAll(filter)
}

func (s *ReservationService) ListForUser(userID uint) ([]entity.Reservation, error) {
	return s.Repo.FindByUser(userID)
}

// Create rejects bookings against a table that does not exist. A nil TableID
// means "any available table" and passes through.
func (s *ReservationService) Create(reservation *entity.Reservation) error {
	if reservation.TableID != nil {
		ok, err := s.TableRepo.Exists(*reservation.TableID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrTableMissing
		}
	}
	if reservation.Status == "" {
		reservation.Status = entity.ReservationPending
	}
	return s.Repo.Create(reservation)
}

func (s *ReservationService) UpdateStatus(id uint, status string) (*entity.Reservation, error) {
	if _, err := s.Repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := s.Repo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	return s.Repo.FindByID(id)
}

func (s *ReservationService) Delete(id uint) error {
	deleted, err := s.Repo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
