package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"career-match/internal/domain/user"
)

const MinPasswordLength = 6

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidInput           = errors.New("invalid input")
	ErrInternal               = errors.New("internal error")
)

type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	EducationLevel  string
	Department      string
	ExperienceLevel string
	PreferredTrack  string
	Skills          []string
	CareerInterests []string
	CVText          string
}

type LoginInput struct {
	Email    string
	Password string
}

type Service struct {
	users user.Repository
	cost  int
}

func NewService(users user.Repository) *Service {
	return &Service{users: users, cost: bcrypt.DefaultCost}
}

// NewServiceWithCost is used by tests to keep bcrypt fast.
func NewServiceWithCost(users user.Repository, cost int) *Service {
	return &Service{users: users, cost: cost}
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (user.User, error) {
	name := strings.TrimSpace(in.Name)
	email := NormalizeEmail(in.Email)
	if name == "" || email == "" {
		return user.User{}, ErrInvalidInput
	}
	if !IsValidPassword(in.Password) {
		return user.User{}, ErrInvalidInput
	}

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return user.User{}, ErrInternal
	}
	if exists {
		return user.User{}, ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return user.User{}, ErrInternal
	}

	u := user.User{
		ID:              uuid.New(),
		Name:            name,
		Email:           email,
		PasswordHash:    string(hash),
		EducationLevel:  strings.TrimSpace(in.EducationLevel),
		Department:      strings.TrimSpace(in.Department),
		ExperienceLevel: strings.TrimSpace(in.ExperienceLevel),
		PreferredTrack:  strings.TrimSpace(in.PreferredTrack),
		Skills:          user.CleanList(in.Skills),
		CareerInterests: user.CleanList(in.CareerInterests),
		CVText:          in.CVText,
		Experience:      []user.Experience{},
	}
	if !u.HasValidEnums() {
		return user.User{}, ErrInvalidInput
	}

	if err := s.users.CreateUser(ctx, u); err != nil {
		exists, exErr := s.users.ExistsByEmail(ctx, email)
		if exErr == nil && exists {
			return user.User{}, ErrEmailAlreadyRegistered
		}
		return user.User{}, ErrInternal
	}

	created, err := s.users.GetUserByID(ctx, u.ID)
	if err != nil {
		return user.User{}, ErrInternal
	}
	return Sanitize(created), nil
}

func (s *Service) Login(ctx context.Context, in LoginInput) (user.User, error) {
	email := NormalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return user.User{}, ErrInvalidCredentials
	}

	u, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrInvalidCredentials
		}
		return user.User{}, ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return user.User{}, ErrInvalidCredentials
	}

	return Sanitize(u), nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func IsValidPassword(pw string) bool {
	return len(strings.TrimSpace(pw)) >= MinPasswordLength
}

func Sanitize(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
