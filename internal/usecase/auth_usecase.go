package usecase

import (
	"context"
	"errors"

	"career-match/internal/domain/user"
	"career-match/internal/pkg/jwt"
	ucauth "career-match/internal/usecase/auth"
)

var (
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
	ErrInternal            = errors.New("internal error")
)

type AuthUsecase interface {
	Register(ctx context.Context, in ucauth.RegisterInput) (user.User, jwt.TokenPair, error)
	Login(ctx context.Context, in ucauth.LoginInput) (user.User, jwt.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (jwt.TokenPair, error)
}

type Auth struct {
	authSvc *ucauth.Service
	users   user.Repository
	jwt     jwt.Service
}

func NewAuthUsecase(authSvc *ucauth.Service, users user.Repository, jwtSvc jwt.Service) *Auth {
	return &Auth{authSvc: authSvc, users: users, jwt: jwtSvc}
}

func (u *Auth) Register(ctx context.Context, in ucauth.RegisterInput) (user.User, jwt.TokenPair, error) {
	usr, err := u.authSvc.Register(ctx, in)
	if err != nil {
		return user.User{}, jwt.TokenPair{}, err
	}
	pair, err := jwt.IssuePair(u.jwt, usr.ID, usr.Email)
	if err != nil {
		return user.User{}, jwt.TokenPair{}, ErrInternal
	}
	return usr, pair, nil
}

func (u *Auth) Login(ctx context.Context, in ucauth.LoginInput) (user.User, jwt.TokenPair, error) {
	usr, err := u.authSvc.Login(ctx, in)
	if err != nil {
		return user.User{}, jwt.TokenPair{}, err
	}
	pair, err := jwt.IssuePair(u.jwt, usr.ID, usr.Email)
	if err != nil {
		return user.User{}, jwt.TokenPair{}, ErrInternal
	}
	return usr, pair, nil
}

func (u *Auth) Refresh(ctx context.Context, refreshToken string) (jwt.TokenPair, error) {
	if refreshToken == "" {
		return jwt.TokenPair{}, ErrUnauthorized
	}

	claims, err := u.jwt.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return jwt.TokenPair{}, ErrRefreshTokenExpired
		}
		return jwt.TokenPair{}, ErrInvalidRefreshToken
	}
	if !u.jwt.IsRefreshToken(claims) {
		return jwt.TokenPair{}, ErrInvalidRefreshToken
	}

	usr, err := u.users.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return jwt.TokenPair{}, ErrUnauthorized
		}
		return jwt.TokenPair{}, ErrInternal
	}

	pair, err := jwt.IssuePair(u.jwt, usr.ID, usr.Email)
	if err != nil {
		return jwt.TokenPair{}, ErrInternal
	}
	return pair, nil
}
