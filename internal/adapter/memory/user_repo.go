package memory

import (
	"go.uber.org/zap"

	domain "user-store/internal/domain/user"
	apperrors "user-store/pkg/errors"
)

// UserRepository implements repository.Repository[user.User] over an in-process map.
//
// Identifiers are allocated from a counter that starts at 1 and only moves forward,
// so ids are never reused after deletion. UserRepository is not safe for concurrent
// use; callers sharing one across goroutines must synchronize access themselves.
type UserRepository struct {
	users  map[uint64]domain.User
	nextID uint64
	log    *zap.Logger
}

// NewUserRepository creates an empty UserRepository.
func NewUserRepository(log *zap.Logger) *UserRepository {
	return &UserRepository{
		users:  make(map[uint64]domain.User),
		nextID: 1,
		log:    log,
	}
}

// Seed inserts the default administrator at the next free id.
// It writes directly and does not go through Save's validation.
func (r *UserRepository) Seed() {
	admin := domain.User{
		ID:     r.nextID,
		Name:   "Admin User",
		Email:  "admin@example.com",
		Active: true,
	}
	r.users[admin.ID] = admin
	r.nextID++

	r.log.Info("seeded admin user", zap.Uint64("id", admin.ID), zap.String("email", admin.Email))
}

// FindByID returns a copy of the user stored under id.
func (r *UserRepository) FindByID(id uint64) (domain.User, bool) {
	u, ok := r.users[id]
	return u, ok
}

// Save stores u, overwriting any user already at the same id.
// A zero id is replaced with the next counter value before the user is validated;
// the counter is not rewound if validation then fails.
func (r *UserRepository) Save(u domain.User) error {
	if u.ID == 0 {
		u.ID = r.nextID
		r.nextID++
	}

	if u.Name == "" {
		r.log.Warn("rejected user save", zap.Uint64("id", u.ID), zap.String("reason", "empty name"))
		return apperrors.NewValidationError("name", "User name cannot be empty")
	}

	r.users[u.ID] = u
	r.log.Debug("user saved", zap.Uint64("id", u.ID), zap.String("email", u.Email))
	return nil
}

// Delete removes the user stored under id and reports whether one was present.
func (r *UserRepository) Delete(id uint64) bool {
	if _, ok := r.users[id]; !ok {
		return false
	}
	delete(r.users, id)
	r.log.Debug("user deleted", zap.Uint64("id", id))
	return true
}

// NextID returns the id the next save of an unassigned user will receive.
func (r *UserRepository) NextID() uint64 {
	return r.nextID
}

// Len returns the number of stored users.
func (r *UserRepository) Len() int {
	return len(r.users)
}
