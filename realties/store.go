// Package realties stores managed properties and serves them under /realties.
package realties

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/user/aquarealty/apperror"
	"github.com/user/aquarealty/db"
	"github.com/user/aquarealty/models"
)

// Store persists realties.
type Store struct {
	db *gorm.DB
}

// NewStore creates a Store.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Create inserts a realty. An owner that does not exist is a validation error.
func (s *Store) Create(ctx context.Context, req CreateRealtyRequest) (*models.Realty, error) {
	realty := &models.Realty{
		Name:         req.Name,
		Street:       req.Street,
		Number:       req.Number,
		ZipCode:      req.ZipCode,
		Neighborhood: req.Neighborhood,
		City:         req.City,
		State:        req.State,
		LiterCost:    req.LiterCost,
		UserID:       req.UserID,
	}
	if err := s.db.WithContext(ctx).Create(realty).Error; err != nil {
		if db.IsForeignKeyViolation(err) {
			return nil, apperror.NewValidationError(fmt.Sprintf("Validation Error: user %d does not exist", *req.UserID), err)
		}
		return nil, apperror.NewDatabaseError("failed to create realty", err)
	}
	return realty, nil
}

// List returns every realty ordered by id.
func (s *Store) List(ctx context.Context) ([]models.Realty, error) {
	realties := []models.Realty{}
	if err := s.db.WithContext(ctx).Order("id").Find(&realties).Error; err != nil {
		return nil, apperror.NewDatabaseError("failed to list realties", err)
	}
	return realties, nil
}

// Get fetches a realty by id.
func (s *Store) Get(ctx context.Context, id uint) (*models.Realty, error) {
	var realty models.Realty
	if err := s.db.WithContext(ctx).First(&realty, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("realty with ID %d not found", id), nil)
		}
		return nil, apperror.NewDatabaseError("failed to get realty", err)
	}
	return &realty, nil
}

// Delete removes a realty and reports whether a row was removed. Its zones
// are kept and lose their realty.
func (s *Store) Delete(ctx context.Context, id uint) (bool, error) {
	var removed bool
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Zone{}).Where("realty_id = ?", id).Update("realty_id", nil).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Realty{}, id)
		if result.Error != nil {
			return result.Error
		}
		removed = result.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, apperror.NewDatabaseError("failed to delete realty", err)
	}
	return removed, nil
}
