package services

import (
	"errors"

	"github.com/CrisantoUpiicsa/ReservaBarSystemv01/entity"
	"github.com/CrisantoUpiicsa/ReservaBarSystemv01/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	MenuRepo *repository.MenuRepository
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, menuRepo *repository.MenuRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo, MenuRepo: menuRepo}
}

type OrderItemIn struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required,min=1"`
}

type CreateOrderInput struct {
	Items []OrderItemIn `json:"items" binding:"required,min=1,dive"`
	Notes string        `json:"notes"`
}

// Create prices the order against the current menu and writes the order and
// its lines in one transaction.
func (s *OrderService) Create(userID uint, in *CreateOrderInput) (*entity.Order, error) {
	type line struct {
		menuItemID uint
		quantity   int
		unitPrice  decimal.Decimal
	}

	subtotal := decimal.Zero
	lines := make([]line, 0, len(in.Items))
	for _, it := range in.Items {
		item, err := s.MenuRepo.FindItemByID(it.MenuItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errors.New("menu item not found")
			}
			return nil, err
		}
		if item.Available != nil && !*item.Available {
			return nil, errors.New("menu item not available")
		}
		unit, err := decimal.NewFromString(item.Price)
		if err != nil {
			return nil, err
		}
		subtotal = subtotal.Add(unit.Mul(decimal.NewFromInt(int64(it.Quantity))))
		lines = append(lines, line{item.ID, it.Quantity, unit})
	}

	var out *entity.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		order := entity.Order{
			UserID:   userID,
			Status:   entity.OrderPending,
			Subtotal: subtotal.StringFixed(2),
			Total:    subtotal.StringFixed(2),
			Notes:    in.Notes,
		}
		if err := s.Repo.CreateOrderTx(tx, &order); err != nil {
			return err
		}
		for _, l := range lines {
			lineTotal := l.unitPrice.Mul(decimal.NewFromInt(int64(l.quantity)))
			oi := entity.OrderItem{
				OrderID:    order.ID,
				MenuItemID: l.menuItemID,
				Quantity:   l.quantity,
				UnitPrice:  l.unitPrice.StringFixed(2),
				LineTotal:  lineTotal.StringFixed(2),
			}
			if err := s.Repo.CreateOrderItemTx(tx, &oi); err != nil {
				return err
			}
			order.Items = append(order.Items, oi)
		}
		out = &order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *OrderService) ListAll() ([]entity.Order, error) {
	return s.Repo.FindAll()
}

func (s *OrderService) ListForUser(userID uint) ([]entity.Order, error) {
	return s.Repo.FindByUser(userID)
}

func (s *OrderService) UpdateStatus(id uint, status string) (*entity.Order, error) {
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
