package services

import (
	"errors"
	"time"

	"github.com/CrisantoUpiicsa/ReservaBarSystemv01/entity"
	"github.com/CrisantoUpiicsa/ReservaBarSystemv01/repository"
	"gorm.io/gorm"
)

type InventoryService struct {
	DB   *gorm.DB
	Repo *repository.InventoryRepository
}

func NewInventoryService(db *gorm.DB, repo *repository.InventoryRepository) *InventoryService {
	return &InventoryService{DB: db, Repo: repo}
}

// StockStatus derives the display-only stock level. Never persisted.
func StockStatus(item *entity.InventoryItem) string {
	switch {
	case item.CurrentStock == 0:
		return entity.StockOut
	case item.CurrentStock <= item.MinimumStock:
		return entity.StockLow
	default:
		return entity.StockIn
	}
}

func (s *InventoryService) List() ([]entity.InventoryItem, error) {
	items, err := s.Repo.FindAll()
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Status = StockStatus(&items[i])
	}
	return items, nil
}

func (s *InventoryService) Get(id uint) (*entity.InventoryItem, error) {
	item, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	item.Status = StockStatus(item)
	return item, nil
}

func (s *InventoryService) Create(item *entity.InventoryItem) error {
	if err := s.Repo.Create(item); err != nil {
		return err
	}
	item.Status = StockStatus(item)
	return nil
}

func (s *InventoryService) Update(id uint, updates map[string]any) (*entity.InventoryItem, error) {
	if _, err := s.Repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if len(updates) > 0 {
		if err := s.Repo.Update(id, updates); err != nil {
			return nil, err
		}
	}
	return s.Get(id)
}

func (s *InventoryService) Delete(id uint) error {
	deleted, err := s.Repo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

// Movements returns an item's stock movement history, oldest first.
func (s *InventoryService) Movements(id uint) ([]entity.StockMovement, error) {
	if _, err := s.Repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.Repo.FindMovements(id)
}

// Restock bumps the stock level and records the movement in one transaction.
func (s *InventoryService) Restock(id uint, quantity int, userID uint) (*entity.InventoryItem, error) {
	item, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	now := time.Now()
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.UpdateTx(tx, id, map[string]any{
			"current_stock":  item.CurrentStock + quantity,
			"last_restocked": now,
		}); err != nil {
			return err
		}
		movement := entity.StockMovement{
			InventoryItemID: id,
			Delta:           quantity,
			Reason:          entity.MovementRestock,
		}
		if userID != 0 {
			movement.UserID = &userID
		}
		return s.Repo.CreateMovementTx(tx, &movement)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(id)
}
