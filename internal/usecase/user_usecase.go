package usecase

import (
	"context"

	"career-match/internal/domain/user"
	ucuser "career-match/internal/usecase/user"

	"github.com/google/uuid"
)

type UserUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (user.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, in ucuser.UpdateProfileInput) (user.User, error)
	AddExperience(ctx context.Context, userID uuid.UUID, exp user.Experience) (user.User, error)
	Completeness(ctx context.Context, userID uuid.UUID) (int, error)
}

type User struct {
	svc *ucuser.Service
}

func NewUserUsecase(users user.Repository) *User {
	return &User{svc: ucuser.NewService(users)}
}

func (u *User) GetProfile(ctx context.Context, userID uuid.UUID) (user.User, error) {
	if userID == uuid.Nil {
		return user.User{}, ErrUnauthorized
	}
	return u.svc.GetProfile(ctx, userID)
}

func (u *User) UpdateProfile(ctx context.Context, userID uuid.UUID, in ucuser.UpdateProfileInput) (user.User, error) {
	if userID == uuid.Nil {
		return user.User{}, ErrUnauthorized
	}
	return u.svc.UpdateProfile(ctx, userID, in)
}

func (u *User) AddExperience(ctx context.Context, userID uuid.UUID, exp user.Experience) (user.User, error) {
	if userID == uuid.Nil {
		return user.User{}, ErrUnauthorized
	}
	return u.svc.AddExperience(ctx, userID, exp)
}

func (u *User) Completeness(ctx context.Context, userID uuid.UUID) (int, error) {
	if userID == uuid.Nil {
		return 0, ErrUnauthorized
	}
	return u.svc.Completeness(ctx, userID)
}
