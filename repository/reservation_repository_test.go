package repository

import (
	"testing"

	"github.com/CrisantoUpiicsa/ReservaBarSystemv01/entity"
)

func seedReservations(t *testing.T, repo *ReservationRepository) {
	t.Helper()
	tableOne := uint(1)
	tableTwo := uint(2)
	fixtures := []entity.Reservation{
		{CustomerName: "Ana", CustomerEmail: "ana@example.com", Date: "2024-01-01", Time: "18:00", Guests: 2, Status: entity.ReservationPending, TableID: &tableOne},
		{CustomerName: "Beto", CustomerEmail: "beto@example.com", Date: "2024-01-01", Time: "19:00", Guests: 4, Status: entity.ReservationConfirmed, TableID: &tableTwo},
		{CustomerName: "Carla", CustomerEmail: "carla@example.com", Date: "2024-01-02", Time: "20:00", Guests: 3, Status: entity.ReservationPending},
		{CustomerName: "Dario", CustomerEmail: "dario@example.com", Date: "2024-01-03", Time: "21:00", Guests: 6, Status: entity.ReservationCancelled, TableID: &tableOne},
	}
	for i := range fixtures {
		if err := repo.Create(&fixtures[i]); err != nil {
			t.Fatalf("create reservation: %v", err)
		}
	}
}

func TestReservationFilters(t *testing.T) {
	repo := NewReservationRepository(setupTestDB(t))
	seedReservations(t, repo)

	byDate, err := repo.FindAll(ReservationFilter{Date: "2024-01-01"})
	if err != nil {
		t.Fatalf("filter by date: %v", err)
	}
	if len(byDate) != 2 {
		t.Fatalf("expected 2 reservations on 2024-01-01, got %d", len(byDate))
	}
	for _, r := range byDate {
		if r.Date != "2024-01-01" {
			t.Errorf("date = %q, want 2024-01-01", r.Date)
		}
	}

	byStatus, err := repo.FindAll(ReservationFilter{Status: entity.ReservationPending})
	if err != nil {
		t.Fatalf("filter by status: %v", err)
	}
	if len(byStatus) != 2 {
		t.Fatalf("expected 2 pending reservations, got %d", len(byStatus))
	}

	tableOne := uint(1)
	combined, err := repo.FindAll(ReservationFilter{Date: "2024-01-01", Status: entity.ReservationPending, TableID: &tableOne})
	if err != nil {
		t.Fatalf("combined filter: %v", err)
	}
	if len(combined) != 1 || combined[0].CustomerName != "Ana" {
		t.Fatalf("combined filter = %+v, want only Ana", combined)
	}
}

func TestReservationStatusPartition(t *testing.T) {
	repo := NewReservationRepository(setupTestDB(t))
	seedReservations(t, repo)

	all, err := repo.FindAll(ReservationFilter{})
	if err != nil {
		t.Fatalf("list all: %v", err)
	}

	statuses := []string{
		entity.ReservationPending,
		entity.ReservationConfirmed,
		entity.ReservationCancelled,
		entity.ReservationCompleted,
	}
	seen := map[uint]bool{}
	total := 0
	for _, status := range statuses {
		subset, err := repo.FindAll(ReservationFilter{Status: status})
		if err != nil {
			t.Fatalf("filter %s: %v", status, err)
		}
		for _, r := range subset {
			if r.Status != status {
				t.Errorf("reservation %d status = %q, want %q", r.ID, r.Status, status)
			}
			if seen[r.ID] {
				t.Errorf("reservation %d appears in two partitions", r.ID)
			}
			seen[r.ID] = true
		}
		total += len(subset)
	}
	if total != len(all) {
		t.Errorf("partitions sum to %d, full list has %d", total, len(all))
	}
}

func TestReservationDeleteMissing(t *testing.T) {
	repo := NewReservationRepository(setupTestDB(t))

	deleted, err := repo.Delete(999)
	if err != nil {
		t.Fatalf("delete missing: %v", err)
	}
	if deleted {
		t.Error("expected delete of missing id to report false")
	}
}

func TestReservationRecent(t *testing.T) {
	repo := NewReservationRepository(setupTestDB(t))
	for i := 0; i < 7; i++ {
		r := entity.Reservation{CustomerName: "Guest", CustomerEmail: "g@example.com", Date: "2024-02-01", Time: "18:00", Guests: 2, Status: entity.ReservationPending}
		if err := repo.Create(&r); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	recent, err := repo.Recent(5)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 5 {
		t.Fatalf("expected 5 recent reservations, got %d", len(recent))
	}
	// newest first; ids tie-break equal timestamps
	for i := 1; i < len(recent); i++ {
		if recent[i-1].ID < recent[i].ID {
			t.Errorf("recent not in newest-first order: %d before %d", recent[i-1].ID, recent[i].ID)
		}
	}
}
