package memory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"user-store/internal/domain/repository"
	domain "user-store/internal/domain/user"
	apperrors "user-store/pkg/errors"
)

var _ repository.Repository[domain.User] = (*UserRepository)(nil)

func setupTestRepo(t *testing.T) *UserRepository {
	return NewUserRepository(zaptest.NewLogger(t))
}

func TestNewUserRepository_Empty(t *testing.T) {
	repo := setupTestRepo(t)

	assert.Equal(t, uint64(1), repo.NextID())
	assert.Equal(t, 0, repo.Len())

	_, ok := repo.FindByID(1)
	assert.False(t, ok)
}

func TestSave_AssignsNextID(t *testing.T) {
	repo := setupTestRepo(t)

	before := repo.NextID()
	err := repo.Save(domain.User{Name: "John Doe", Email: "john@example.com", Active: true})
	require.NoError(t, err)

	got, ok := repo.FindByID(before)
	require.True(t, ok)
	assert.Equal(t, domain.User{ID: before, Name: "John Doe", Email: "john@example.com", Active: true}, got)
	assert.Equal(t, before+1, repo.NextID())
}

func TestSave_SequentialIDs(t *testing.T) {
	repo := setupTestRepo(t)

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Save(domain.User{Name: "User", Email: "u@example.com"}))
	}

	for id := uint64(1); id <= 3; id++ {
		_, ok := repo.FindByID(id)
		assert.True(t, ok, "id %d", id)
	}
	assert.Equal(t, uint64(4), repo.NextID())
}

func TestSave_ExplicitIDKeepsCounter(t *testing.T) {
	repo := setupTestRepo(t)

	require.NoError(t, repo.Save(domain.User{ID: 42, Name: "Test User", Email: "test@example.com", Active: true}))

	got, ok := repo.FindByID(42)
	require.True(t, ok)
	assert.Equal(t, "Test User", got.Name)
	assert.Equal(t, uint64(1), repo.NextID())
}

func TestSave_EmptyNameRejected(t *testing.T) {
	repo := setupTestRepo(t)

	err := repo.Save(domain.User{ID: 5, Name: "", Email: "a@b.com"})
	require.Error(t, err)

	var vErr *apperrors.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "User name cannot be empty", vErr.Message)

	_, ok := repo.FindByID(5)
	assert.False(t, ok)
	assert.Equal(t, 0, repo.Len())
}

func TestSave_WhitespaceNameAccepted(t *testing.T) {
	repo := setupTestRepo(t)

	// Save only rejects the exact empty string.
	require.NoError(t, repo.Save(domain.User{Name: "   ", Email: "a@b.com"}))

	got, ok := repo.FindByID(1)
	require.True(t, ok)
	assert.Equal(t, "   ", got.Name)
}

func TestSave_RejectedSaveConsumesID(t *testing.T) {
	repo := setupTestRepo(t)

	require.NoError(t, repo.Save(domain.User{Name: "First", Email: "first@example.com"}))
	require.Error(t, repo.Save(domain.User{Name: "", Email: "empty@example.com"}))
	assert.Equal(t, uint64(3), repo.NextID())

	require.NoError(t, repo.Save(domain.User{Name: "Third", Email: "third@example.com"}))

	_, ok := repo.FindByID(2)
	assert.False(t, ok, "id 2 was consumed by the rejected save")

	got, ok := repo.FindByID(3)
	require.True(t, ok)
	assert.Equal(t, "Third", got.Name)
}

func TestSave_OverwritesSameID(t *testing.T) {
	repo := setupTestRepo(t)

	require.NoError(t, repo.Save(domain.User{ID: 7, Name: "Old", Email: "old@example.com", Active: true}))
	require.NoError(t, repo.Save(domain.User{ID: 7, Name: "New", Email: "new@example.com", Active: false}))

	got, ok := repo.FindByID(7)
	require.True(t, ok)
	assert.Equal(t, domain.User{ID: 7, Name: "New", Email: "new@example.com", Active: false}, got)
	assert.Equal(t, 1, repo.Len())
}

func TestSave_DuplicateEmailsAllowed(t *testing.T) {
	repo := setupTestRepo(t)

	require.NoError(t, repo.Save(domain.User{Name: "A", Email: "same@example.com"}))
	require.NoError(t, repo.Save(domain.User{Name: "B", Email: "same@example.com"}))

	assert.Equal(t, 2, repo.Len())
}

func TestFindByID_ReturnsCopy(t *testing.T) {
	repo := setupTestRepo(t)
	require.NoError(t, repo.Save(domain.User{Name: "John", Email: "john@example.com", Active: true}))

	got, ok := repo.FindByID(1)
	require.True(t, ok)
	got.Name = "Mutated"
	got.Active = false

	again, _ := repo.FindByID(1)
	assert.Equal(t, "John", again.Name)
	assert.True(t, again.Active)
}

func TestDelete(t *testing.T) {
	repo := setupTestRepo(t)
	require.NoError(t, repo.Save(domain.User{Name: "John", Email: "john@example.com"}))

	assert.True(t, repo.Delete(1))
	_, ok := repo.FindByID(1)
	assert.False(t, ok)

	assert.False(t, repo.Delete(1), "second delete finds nothing")
	assert.False(t, repo.Delete(99), "never-used id")
}

func TestDelete_IDNotReused(t *testing.T) {
	repo := setupTestRepo(t)
	require.NoError(t, repo.Save(domain.User{Name: "John", Email: "john@example.com"}))
	require.True(t, repo.Delete(1))

	require.NoError(t, repo.Save(domain.User{Name: "Jane", Email: "jane@example.com"}))

	_, ok := repo.FindByID(1)
	assert.False(t, ok)
	got, ok := repo.FindByID(2)
	require.True(t, ok)
	assert.Equal(t, "Jane", got.Name)
}

func TestSeed(t *testing.T) {
	repo := setupTestRepo(t)

	repo.Seed()

	admin, ok := repo.FindByID(1)
	require.True(t, ok)
	assert.Equal(t, domain.User{ID: 1, Name: "Admin User", Email: "admin@example.com", Active: true}, admin)
	assert.Equal(t, uint64(2), repo.NextID())

	require.NoError(t, repo.Save(domain.User{Name: "Next", Email: "next@example.com"}))
	_, ok = repo.FindByID(2)
	assert.True(t, ok)
}
