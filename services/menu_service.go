package services

import (
	"errors"

	"github.com/CrisantoUpiicsa/ReservaBarSystemv01/entity"
	"github.com/CrisantoUpiicsa/ReservaBarSystemv01/repository"
	"gorm.io/gorm"
)

type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

func (s *MenuService) Categories() ([]entity.MenuCategory, error) {
	return s.Repo.FindCategories()
}

func (s *MenuService) CreateCategory(category *entity.MenuCategory) error {
	return s.Repo.CreateCategory(category)
}

// Items lists everything, or one category's items when categoryID is given.
func (s *MenuService) Items(categoryID *uint) ([]entity.MenuItem, error) {
	if categoryID != nil {
		return s.Repo.FindItemsByCategory(*categoryID)
	}
	return s.Repo.FindItems()
}

func (s *MenuService) CreateItem(item *entity.MenuItem) error {
	if err := s.checkCategory(item.CategoryID); err != nil {
		return err
	}
	return s.Repo.CreateItem(item)
}

func (s *MenuService) UpdateItem(id uint, updates map[string]any) (*entity.MenuItem, error) {
	if _, err := s.Repo.FindItemByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if v, ok := updates["category_id"]; ok && v != nil {
		categoryID := v.(uint)
		if err := s.checkCategory(&categoryID); err != nil {
			return nil, err
		}
	}
	if len(updates) > 0 {
		if err := s.Repo.UpdateItem(id, updates); err != nil {
			return nil, err
		}
	}
	return s.Repo.FindItemByID(id)
}

func (s *MenuService) DeleteItem(id uint) error {
	deleted, err := s.Repo.DeleteItem(id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

// FullMenu returns every category with its items, for the customer menu page.
func (s *MenuService) FullMenu() ([]entity.MenuCategory, error) {
	return s.Repo.FindCategoriesWithItems()
}

func (s *MenuService) checkCategory(categoryID *uint) error {
	if categoryID == nil {
		return nil
	}
	ok, err := s.Repo.CategoryExists(*categoryID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrCategoryMissing
	}
	return nil
}
