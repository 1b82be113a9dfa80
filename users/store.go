// Package users manages user accounts: registration with password hashing,
// lookups, partial updates, deletion and the login flow.
package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"github.com/user/aquarealty/apperror"
	"github.com/user/aquarealty/auth"
	"github.com/user/aquarealty/db"
	"github.com/user/aquarealty/models"
)

// PasswordHasher is satisfied by *auth.Hasher.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}

// Store persists users. Every plaintext password passes through the hasher
// before it reaches the database.
type Store struct {
	db       *gorm.DB
	hasher   PasswordHasher
	validate *validator.Validate
}

// NewStore creates a Store.
func NewStore(db *gorm.DB, hasher PasswordHasher) *Store {
	return &Store{db: db, hasher: hasher, validate: newValidator()}
}

// NormalizeEmail is the canonical form used for storage and lookups.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Create validates req, hashes the password and inserts the user.
func (s *Store) Create(ctx context.Context, req CreateUserRequest) (*models.User, error) {
	req.Email = NormalizeEmail(req.Email)
	if err := s.validate.Struct(req); err != nil {
		return nil, validationError(err)
	}

	digest, err := s.hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     req.Name,
		Address:  req.Address,
		Email:    req.Email,
		Password: digest,
	}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if db.IsUniqueViolation(err) {
			return nil, apperror.NewConflictError(fmt.Sprintf("email '%s' already exists", req.Email), nil)
		}
		return nil, apperror.NewDatabaseError("failed to create user", err)
	}
	return user, nil
}

// List returns every user ordered by id.
func (s *Store) List(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	if err := s.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, apperror.NewDatabaseError("failed to list users", err)
	}
	return users, nil
}

// Get fetches a user by id.
func (s *Store) Get(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		return nil, notFoundOr(err, fmt.Sprintf("user with ID %d not found", id))
	}
	return &user, nil
}

// GetByEmail fetches a user by normalized email.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	email = NormalizeEmail(email)
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, notFoundOr(err, fmt.Sprintf("user with email '%s' not found", email))
	}
	return &user, nil
}

// Update applies the non-empty fields of req to the user identified by
// email. The email itself can never change; a new password is hashed first.
func (s *Store) Update(ctx context.Context, email string, req UpdateUserRequest) (*models.User, error) {
	email = NormalizeEmail(email)

	changes := map[string]interface{}{}
	if req.Name != nil && *req.Name != "" {
		changes["name"] = *req.Name
	}
	if req.Address != nil && *req.Address != "" {
		changes["address"] = *req.Address
	}
	if req.Password != nil && *req.Password != "" {
		digest, err := s.hashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		changes["password"] = digest
	}

	if len(changes) == 0 {
		return s.GetByEmail(ctx, email)
	}

	result := s.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", email).Updates(changes)
	if result.Error != nil {
		return nil, apperror.NewDatabaseError("failed to update user", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, apperror.NewNotFoundError(fmt.Sprintf("user with email '%s' not found", email), nil)
	}
	return s.GetByEmail(ctx, email)
}

// Delete removes a user and reports whether a row was removed. Realties the
// user owned are kept and lose their owner.
func (s *Store) Delete(ctx context.Context, id uint) (bool, error) {
	var removed bool
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Realty{}).Where("user_id = ?", id).Update("user_id", nil).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.User{}, id)
		if result.Error != nil {
			return result.Error
		}
		removed = result.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, apperror.NewDatabaseError("failed to delete user", err)
	}
	return removed, nil
}

func (s *Store) hashPassword(plaintext string) (string, error) {
	digest, err := s.hasher.Hash(plaintext)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooLong) {
			return "", apperror.NewValidationError("Validation Error: password is too long", err)
		}
		return "", apperror.NewInternalError("failed to hash password", err)
	}
	return digest, nil
}

func notFoundOr(err error, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NewNotFoundError(message, nil)
	}
	return apperror.NewDatabaseError("failed to get user", err)
}
