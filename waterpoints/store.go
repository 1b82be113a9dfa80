// Package waterpoints stores water measurement locations and serves them
// under /waterpoints.
package waterpoints

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/user/aquarealty/apperror"
	"github.com/user/aquarealty/db"
	"github.com/user/aquarealty/models"
)

// Store persists waterpoints.
type Store struct {
	db *gorm.DB
}

// NewStore creates a Store.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Create inserts a waterpoint, optionally placed in an existing zone.
func (s *Store) Create(ctx context.Context, req CreateWaterpointRequest) (*models.Waterpoint, error) {
	point := &models.Waterpoint{Name: req.Name, ZoneID: req.ZoneID}
	if err := s.db.WithContext(ctx).Create(point).Error; err != nil {
		if db.IsForeignKeyViolation(err) {
			return nil, apperror.NewValidationError(fmt.Sprintf("Validation Error: zone %d does not exist", *req.ZoneID), err)
		}
		return nil, apperror.NewDatabaseError("failed to create waterpoint", err)
	}
	return point, nil
}

// List returns every waterpoint ordered by id.
func (s *Store) List(ctx context.Context) ([]models.Waterpoint, error) {
	points := []models.Waterpoint{}
	if err := s.db.WithContext(ctx).Order("id").Find(&points).Error; err != nil {
		return nil, apperror.NewDatabaseError("failed to list waterpoints", err)
	}
	return points, nil
}

// Get fetches a waterpoint by id.
func (s *Store) Get(ctx context.Context, id uint) (*models.Waterpoint, error) {
	var point models.Waterpoint
	if err := s.db.WithContext(ctx).First(&point, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("waterpoint with ID %d not found", id), nil)
		}
		return nil, apperror.NewDatabaseError("failed to get waterpoint", err)
	}
	return &point, nil
}

// Delete removes a waterpoint and reports whether a row was removed.
func (s *Store) Delete(ctx context.Context, id uint) (bool, error) {
	result := s.db.WithContext(ctx).Delete(&models.Waterpoint{}, id)
	if result.Error != nil {
		return false, apperror.NewDatabaseError("failed to delete waterpoint", result.Error)
	}
	return result.RowsAffected > 0, nil
}
