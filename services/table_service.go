package services

import (
	"errors"

	"github.com/CrisantoUpiicsa/ReservaBarSystemv01/entity"
	"github.com/CrisantoUpiicsa/ReservaBarSystemv01/repository"
	"gorm.io/gorm"
)

type TableService struct {
	Repo *repository.TableRepository
}

func NewTableService(repo *repository.TableRepository) *TableService {
	return &TableService{Repo: repo}
}

func (s *TableService) List() ([]entity.Table, error) {
	return s.Repo.FindAll()
}

func (s *TableService) ListAvailable() ([]entity.Table, error) {
	return s.Repo.FindByStatus(entity.TableAvailable)
}

func (s *TableService) Create(table *entity.Table) error {
	count, err := s.Repo.CountByNumber(table.Number)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrTableNumberTaken
	}
	return s.Repo.Create(table)
}

func (s *TableService) UpdateStatus(id uint, status string) (*entity.Table, error) {
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
