package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/shelfd-dev/shelfd/internal/hash"
	"github.com/shelfd-dev/shelfd/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CreateUserParams struct {
	Email    string
	Password string
}

// UpdateUserParams carries the full replacement state for a user. A nil
// Password means "keep the stored password"; a non-nil Password is re-hashed
// before it is persisted.
type UpdateUserParams struct {
	Email    string
	Password *string
	IsActive bool
}

// CreateUser hashes the password and inserts the user. Email uniqueness is
// enforced by the database; there is no advisory pre-check, so concurrent
// creates with the same email cannot race past each other.
func (s *Store) CreateUser(ctx context.Context, params CreateUserParams) (*models.User, error) {
	user := models.User{
		Email:          params.Email,
		HashedPassword: hash.Password(params.Password),
		IsActive:       true,
		Items:          []models.Item{},
	}

	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: %v", ErrEmailTaken, err)
		}
		return nil, err
	}

	return &user, nil
}

func (s *Store) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var user models.User

	err := s.db.WithContext(ctx).Preload("Items").First(&user, id).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetUserByEmail returns (nil, nil) when no user has the given email. It is
// an advisory read only; mutation paths rely on the unique index instead.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User

	err := s.db.WithContext(ctx).Preload("Items").Where("email = ?", email).First(&user).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (s *Store) ListUsers(ctx context.Context, skip, limit int) ([]models.User, error) {
	skip, limit = normalizePage(skip, limit)

	var users []models.User

	err := s.db.WithContext(ctx).
		Preload("Items").
		Order("id").
		Offset(skip).
		Limit(limit).
		Find(&users).Error

	if err != nil {
		return nil, err
	}

	return users, nil
}

// UpdateUser loads the user, applies the replacement state, and persists it,
// all within one transaction.
func (s *Store) UpdateUser(ctx context.Context, id uint, params UpdateUserParams) (*models.User, error) {
	var user models.User

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		applyUserUpdate(&user, params)

		if err := tx.Omit(clause.Associations).Save(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("%w: %v", ErrEmailTaken, err)
			}
			return err
		}

		return tx.Preload("Items").First(&user, id).Error
	})

	if err != nil {
		return nil, err
	}

	return &user, nil
}

// applyUserUpdate assigns exactly the mutable fields. The identity and the
// items collection are never touched, and the password is re-hashed only
// when a replacement is supplied.
func applyUserUpdate(user *models.User, params UpdateUserParams) {
	user.Email = params.Email
	user.IsActive = params.IsActive

	if params.Password != nil {
		user.HashedPassword = hash.Password(*params.Password)
	}
}

// DeleteUser removes the user and, through the foreign key constraint,
// every item it owns. The deleted id is returned as confirmation.
func (s *Store) DeleteUser(ctx context.Context, id uint) (uint, error) {
	var user models.User

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		return tx.Delete(&user).Error
	})

	if err != nil {
		return 0, err
	}

	return user.ID, nil
}
