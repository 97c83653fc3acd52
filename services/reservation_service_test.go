package services

import (
	"testing"

	"github.com/CrisantoUpiicsa/ReservaBarSystemv01/entity"
	"github.com/CrisantoUpiicsa/ReservaBarSystemv01/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReservationService(t *testing.T) (*ReservationService, *repository.TableRepository) {
	t.Helper()
	db := setupTestDB(t)
	tableRepo := repository.NewTableRepository(db)
	return NewReservationService(repository.NewReservationRepository(db), tableRepo), tableRepo
}

func TestReservationDefaultsAndIntegrity(t *testing.T) {
	svc, tableRepo := newReservationService(t)

	table := entity.Table{Number: 5, Capacity: 4, Status: entity.TableAvailable}
	require.NoError(t, tableRepo.Create(&table))

	booked := entity.Reservation{
		CustomerName:  "Ana",
		CustomerEmail: "ana@example.com",
		TableID:       &table.ID,
		Date:          "2024-01-01",
		Time:          "19:00",
		Guests:        2,
	}
	require.NoError(t, svc.Create(&booked))
	assert.Equal(t, entity.ReservationPending, booked.Status, "status defaults to pending")
	assert.NotZero(t, booked.ID)
	assert.False(t, booked.CreatedAt.IsZero())

	// nil table means "any available table"
	anyTable := entity.Reservation{CustomerName: "Beto", CustomerEmail: "beto@example.com", Date: "2024-01-01", Time: "20:00", Guests: 4}
	require.NoError(t, svc.Create(&anyTable))

	// dangling reference is rejected before it reaches the store
	missing := uint(999)
	dangling := entity.Reservation{CustomerName: "Carla", CustomerEmail: "carla@example.com", TableID: &missing, Date: "2024-01-01", Time: "21:00", Guests: 2}
	err := svc.Create(&dangling)
	assert.ErrorIs(t, err, ErrTableMissing)

	all, err := svc.List(repository.ReservationFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestReservationStatusTransitionAndDelete(t *testing.T) {
	svc, _ := newReservationService(t)

	r := entity.Reservation{CustomerName: "Ana", CustomerEmail: "ana@example.com", Date: "2024-01-01", Time: "19:00", Guests: 2}
	require.NoError(t, svc.Create(&r))

	updated, err := svc.UpdateStatus(r.ID, entity.ReservationConfirmed)
	require.NoError(t, err)
	assert.Equal(t, entity.ReservationConfirmed, updated.Status)
	assert.Equal(t, "Ana", updated.CustomerName, "other fields survive the status update")

	_, err = svc.UpdateStatus(999, entity.ReservationCancelled)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, svc.Delete(r.ID))
	assert.ErrorIs(t, svc.Delete(r.ID), ErrNotFound)
}
