package user

import (
	"context"
	"testing"

	"career-match/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memUsers struct {
	byID map[uuid.UUID]user.User
}

func (m *memUsers) ExistsByEmail(context.Context, string) (bool, error) { return false, nil }
func (m *memUsers) CreateUser(_ context.Context, u user.User) error {
	m.byID[u.ID] = u
	return nil
}
func (m *memUsers) GetUserByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}
func (m *memUsers) GetUserByEmail(context.Context, string) (user.User, error) {
	return user.User{}, user.ErrNotFound
}
func (m *memUsers) UpdateUser(_ context.Context, u user.User) error {
	if _, ok := m.byID[u.ID]; !ok {
		return user.ErrNotFound
	}
	m.byID[u.ID] = u
	return nil
}

func seeded(t *testing.T) (*Service, uuid.UUID) {
	t.Helper()
	id := uuid.New()
	repo := &memUsers{byID: map[uuid.UUID]user.User{
		id: {
			ID:           id,
			Name:         "Rafi",
			Email:        "rafi@example.com",
			PasswordHash: "hash",
			Skills:       []string{"Go"},
			Experience:   []user.Experience{},
		},
	}}
	return NewService(repo), id
}

func ptr[T any](v T) *T { return &v }

func TestGetProfile(t *testing.T) {
	svc, id := seeded(t)

	u, err := svc.GetProfile(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Rafi", u.Name)
	assert.Empty(t, u.PasswordHash)

	_, err = svc.GetProfile(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateProfile(t *testing.T) {
	svc, id := seeded(t)

	u, err := svc.UpdateProfile(context.Background(), id, UpdateProfileInput{
		PreferredTrack: ptr(" Web Development "),
		Skills:         ptr([]string{"React", "", " Node.js"}),
		Experience:     ptr([]user.Experience{{Title: "Intern"}, {Title: "  "}}),
	})
	require.NoError(t, err)
	assert.Equal(t, "Rafi", u.Name)
	assert.Equal(t, "Web Development", u.PreferredTrack)
	assert.Equal(t, []string{"React", "Node.js"}, u.Skills)
	require.Len(t, u.Experience, 1)
	assert.Equal(t, "Intern", u.Experience[0].Title)
}

func TestUpdateProfile_Invalid(t *testing.T) {
	svc, id := seeded(t)
	ctx := context.Background()

	_, err := svc.UpdateProfile(ctx, id, UpdateProfileInput{Name: ptr("  ")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.UpdateProfile(ctx, id, UpdateProfileInput{ExperienceLevel: ptr("Wizard")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.UpdateProfile(ctx, uuid.New(), UpdateProfileInput{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddExperience(t *testing.T) {
	svc, id := seeded(t)
	ctx := context.Background()

	_, err := svc.AddExperience(ctx, id, user.Experience{Title: " "})
	assert.ErrorIs(t, err, ErrInvalidInput)

	u, err := svc.AddExperience(ctx, id, user.Experience{Title: " Backend Intern ", Duration: "3 months"})
	require.NoError(t, err)
	require.Len(t, u.Experience, 1)
	assert.Equal(t, user.Experience{Title: "Backend Intern", Duration: "3 months"}, u.Experience[0])
}

func TestCompleteness(t *testing.T) {
	svc, id := seeded(t)

	got, err := svc.Completeness(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 15+10+20, got)
}
