package user

import (
	"user-store/internal/domain/repository"
	domain "user-store/internal/domain/user"
)

// Store is the user repository the usecase writes through.
// NextID lets the usecase report the id a save of an unassigned user receives.
type Store interface {
	repository.Repository[domain.User]
	NextID() uint64
}

// Service defines the interface for user business logic operations.
type Service interface {
	Register(name, email string) (*domain.User, error)
	Get(id uint64) (*domain.User, error)
	Remove(id uint64) error
}
