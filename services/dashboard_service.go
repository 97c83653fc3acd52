package services

import (
	"time"

	"github.com/CrisantoUpiicsa/ReservaBarSystemv01/entity"
	"github.com/CrisantoUpiicsa/ReservaBarSystemv01/repository"
)

// Placeholder metrics until revenue and satisfaction are tracked. TODO: compute
// revenue from completed orders once the ordering flow is in production.
const (
	placeholderRevenue      = 2847
	placeholderSatisfaction = 4.8
)

type DashboardStats struct {
	TodayReservations int64   `json:"todayReservations"`
	AvailableTables   int64   `json:"availableTables"`
	TotalTables       int64   `json:"totalTables"`
	Revenue           int64   `json:"revenue"`
	Satisfaction      float64 `json:"satisfaction"`
}

type DashboardService struct {
	ReservationRepo *repository.ReservationRepository
	TableRepo       *repository.TableRepository
}

func NewDashboardService(reservationRepo *repository.ReservationRepository, tableRepo *repository.TableRepository) *DashboardService {
	return &DashboardService{ReservationRepo: reservationRepo, TableRepo: tableRepo}
}

func (s *DashboardService) Stats() (*DashboardStats, error) {
	today := time.Now().Format("2006-01-02")

	todayCount, err := s.ReservationRepo.CountByDate(today)
	if err != nil {
		return nil, err
	}
	available, err := s.TableRepo.CountByStatus(entity.TableAvailable)
	if err != nil {
		return nil, err
	}
	total, err := s.TableRepo.Count()
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TodayReservations: todayCount,
		AvailableTables:   available,
		TotalTables:       total,
		Revenue:           placeholderRevenue,
		Satisfaction:      placeholderSatisfaction,
	}, nil
}

func (s *DashboardService) RecentReservations() ([]entity.Reservation, error) {
	return s.ReservationRepo.Recent(5)
}
