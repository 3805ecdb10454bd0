package user

import (
	"fmt"

	"go.uber.org/zap"

	domain "user-store/internal/domain/user"
	apperrors "user-store/pkg/errors"
)

// Usecase implements the business logic for user management operations
// on top of a Store.
type Usecase struct {
	store Store       // Store holding the user records
	log   *zap.Logger // Logger for structured logging
}

// New creates a new instance of Usecase with the provided store and logger.
func New(s Store, log *zap.Logger) *Usecase {
	return &Usecase{store: s, log: log}
}

// Register validates name and email, saves the new user and returns it with
// the id the store assigned.
func (uc *Usecase) Register(name, email string) (*domain.User, error) {
	uc.log.Info("registering user", zap.String("name", name), zap.String("email", email))

	u, err := CreateUser(name, email)
	if err != nil {
		uc.log.Warn("validate failed", zap.Error(err))
		return nil, err
	}

	// Save allocates exactly this id for an unassigned user.
	id := uc.store.NextID()
	if err := uc.store.Save(u); err != nil {
		uc.log.Error("failed to save user", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}
	u.ID = id

	uc.log.Info("user registered", zap.Uint64("id", u.ID))
	return &u, nil
}

// Get retrieves a user by ID.
func (uc *Usecase) Get(id uint64) (*domain.User, error) {
	if id == 0 {
		uc.log.Warn("get user validation failed", zap.Uint64("id", id), zap.String("reason", "invalid id"))
		return nil, apperrors.NewValidationError("id", "invalid user id")
	}

	u, ok := uc.store.FindByID(id)
	if !ok {
		uc.log.Warn("user not found", zap.Uint64("id", id))
		return nil, apperrors.NewNotFoundError("user", fmt.Sprintf("user not found: id=%d", id))
	}
	return &u, nil
}

// Remove deletes a user by ID.
func (uc *Usecase) Remove(id uint64) error {
	uc.log.Info("removing user", zap.Uint64("id", id))

	if id == 0 {
		uc.log.Warn("remove user validation failed", zap.Uint64("id", id), zap.String("reason", "invalid id"))
		return apperrors.NewValidationError("id", "invalid user id")
	}

	if !uc.store.Delete(id) {
		uc.log.Warn("user not found", zap.Uint64("id", id))
		return apperrors.NewNotFoundError("user", fmt.Sprintf("user not found: id=%d", id))
	}
	return nil
}
