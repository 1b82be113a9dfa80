// Package zones stores the sub-areas of a realty and serves them under /zones.
package zones

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/user/aquarealty/apperror"
	"github.com/user/aquarealty/db"
	"github.com/user/aquarealty/models"
)

// Store persists zones.
type Store struct {
	db *gorm.DB
}

// NewStore creates a Store.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Create inserts a zone, optionally attached to an existing realty.
func (s *Store) Create(ctx context.Context, req CreateZoneRequest) (*models.Zone, error) {
	zone := &models.Zone{Name: req.Name, RealtyID: req.RealtyID}
	if err := s.db.WithContext(ctx).Create(zone).Error; err != nil {
		if db.IsForeignKeyViolation(err) {
			return nil, apperror.NewValidationError(fmt.Sprintf("Validation Error: realty %d does not exist", *req.RealtyID), err)
		}
		return nil, apperror.NewDatabaseError("failed to create zone", err)
	}
	return zone, nil
}

// List returns every zone ordered by id.
func (s *Store) List(ctx context.Context) ([]models.Zone, error) {
	zones := []models.Zone{}
	if err := s.db.WithContext(ctx).Order("id").Find(&zones).Error; err != nil {
		return nil, apperror.NewDatabaseError("failed to list zones", err)
	}
	return zones, nil
}

// Get fetches a zone by id.
func (s *Store) Get(ctx context.Context, id uint) (*models.Zone, error) {
	var zone models.Zone
	if err := s.db.WithContext(ctx).First(&zone, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("zone with ID %d not found", id), nil)
		}
		return nil, apperror.NewDatabaseError("failed to get zone", err)
	}
	return &zone, nil
}

// Delete removes a zone and reports whether a row was removed. Waterpoints
// placed in the zone are kept.
func (s *Store) Delete(ctx context.Context, id uint) (bool, error) {
	var removed bool
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Waterpoint{}).Where("zone_id = ?", id).Update("zone_id", nil).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Zone{}, id)
		if result.Error != nil {
			return result.Error
		}
		removed = result.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, apperror.NewDatabaseError("failed to delete zone", err)
	}
	return removed, nil
}
