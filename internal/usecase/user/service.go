package user

import (
	"context"
	"errors"
	"strings"

	"career-match/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("user not found")
	ErrInternal     = errors.New("internal error")
)

// UpdateProfileInput replaces only the fields that are non-nil.
type UpdateProfileInput struct {
	Name            *string
	EducationLevel  *string
	Department      *string
	ExperienceLevel *string
	PreferredTrack  *string
	Skills          *[]string
	CareerInterests *[]string
	CVText          *string
	Experience      *[]user.Experience
}

type Service struct {
	users user.Repository
}

func NewService(users user.Repository) *Service {
	return &Service{users: users}
}

func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (user.User, error) {
	usr, err := s.load(ctx, userID)
	if err != nil {
		return user.User{}, err
	}
	return sanitizeUser(usr), nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (user.User, error) {
	usr, err := s.load(ctx, userID)
	if err != nil {
		return user.User{}, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return user.User{}, ErrInvalidInput
		}
		usr.Name = name
	}
	setTrimmed(&usr.EducationLevel, in.EducationLevel)
	setTrimmed(&usr.Department, in.Department)
	setTrimmed(&usr.ExperienceLevel, in.ExperienceLevel)
	setTrimmed(&usr.PreferredTrack, in.PreferredTrack)
	if in.Skills != nil {
		usr.Skills = user.CleanList(*in.Skills)
	}
	if in.CareerInterests != nil {
		usr.CareerInterests = user.CleanList(*in.CareerInterests)
	}
	if in.CVText != nil {
		usr.CVText = *in.CVText
	}
	if in.Experience != nil {
		usr.Experience = cleanExperience(*in.Experience)
	}

	if !usr.HasValidEnums() {
		return user.User{}, ErrInvalidInput
	}

	return s.save(ctx, usr)
}

func (s *Service) AddExperience(ctx context.Context, userID uuid.UUID, exp user.Experience) (user.User, error) {
	exp.Title = strings.TrimSpace(exp.Title)
	exp.Description = strings.TrimSpace(exp.Description)
	exp.Duration = strings.TrimSpace(exp.Duration)
	if exp.Title == "" {
		return user.User{}, ErrInvalidInput
	}

	usr, err := s.load(ctx, userID)
	if err != nil {
		return user.User{}, err
	}
	usr.Experience = append(usr.Experience, exp)
	return s.save(ctx, usr)
}

func (s *Service) Completeness(ctx context.Context, userID uuid.UUID) (int, error) {
	usr, err := s.load(ctx, userID)
	if err != nil {
		return 0, err
	}
	return user.Completeness(usr), nil
}

func (s *Service) load(ctx context.Context, userID uuid.UUID) (user.User, error) {
	usr, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrNotFound
		}
		return user.User{}, ErrInternal
	}
	return usr, nil
}

func (s *Service) save(ctx context.Context, usr user.User) (user.User, error) {
	if err := s.users.UpdateUser(ctx, usr); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrNotFound
		}
		return user.User{}, ErrInternal
	}

	updated, err := s.load(ctx, usr.ID)
	if err != nil {
		return user.User{}, err
	}
	return sanitizeUser(updated), nil
}

func setTrimmed(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}

func cleanExperience(in []user.Experience) []user.Experience {
	out := make([]user.Experience, 0, len(in))
	for _, e := range in {
		e.Title = strings.TrimSpace(e.Title)
		if e.Title == "" {
			continue
		}
		out = append(out, e)
	}
	return out
}

func sanitizeUser(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
