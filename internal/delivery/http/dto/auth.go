package dto

import (
	"career-match/internal/domain/user"
	"career-match/internal/pkg/jwt"
)

type RegisterRequest struct {
	Name            string     `json:"name" validate:"required"`
	Email           string     `json:"email" validate:"required,email"`
	Password        string     `json:"password" validate:"required,min=6"`
	EducationLevel  string     `json:"educationLevel"`
	Department      string     `json:"department"`
	ExperienceLevel string     `json:"experienceLevel"`
	PreferredTrack  string     `json:"preferredTrack"`
	Skills          StringList `json:"skills"`
	CareerInterests StringList `json:"careerInterests"`
	CVText          string     `json:"cvText"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type AuthResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	ExpiresAt    string       `json:"expiresAt"`
}

func NewAuthResponse(u user.User, pair jwt.TokenPair) AuthResponse {
	tok := NewTokenResponse(pair)
	return AuthResponse{
		User:         NewUserResponse(u),
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		ExpiresAt:    tok.ExpiresAt,
	}
}

type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresAt    string `json:"expiresAt"`
}

func NewTokenResponse(pair jwt.TokenPair) TokenResponse {
	return TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresAt:    formatTime(pair.ExpiresAt),
	}
}
