package service

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/serviplan/booking-api/internal/httperr"
	"github.com/serviplan/booking-api/internal/models"
	"github.com/serviplan/booking-api/internal/repository"
)

type UserService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

type RegisterUserInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Address  *string
}

type UpdateUserInput struct {
	Name     *string
	Email    *string
	Password *string
	Phone    *string
	Address  *string
}

// normalizeEmail keeps the stored form and the login lookup identical:
// every path that writes or matches an email goes through it.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a user. Email and username duplicates are pre-checked
// for a friendly error, but the unique indexes remain the real guard: a
// concurrent registration that slips past the checks still fails at insert
// and is reported as the same conflict.
func (s *UserService) Register(ctx context.Context, in RegisterUserInput) (*models.User, error) {
	in.Email = normalizeEmail(in.Email)

	if _, err := s.repo.GetByEmail(ctx, in.Email); err == nil {
		return nil, httperr.ConflictErr("email_taken", "This email is already registered.")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if _, err := s.repo.GetByName(ctx, in.Name); err == nil {
		return nil, httperr.ConflictErr("username_taken", "This username is already taken.")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, httperr.InternalErr("password_hash_failed", "Failed to hash password.")
	}

	user := &models.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hashed),
		Phone:        in.Phone,
		Address:      in.Address,
		Role:         models.RoleUser,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if isUniqueViolation(err) {
			return nil, httperr.ConflictErr("duplicate_user", "Username or email already in use.")
		}
		return nil, err
	}

	return user, nil
}

// Authenticate verifies email + password for the login flow. Unknown email
// and wrong password produce the identical failure so the response never
// reveals whether an email is registered.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.AuthErr("invalid_credentials", "Invalid email or password.")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(user.PasswordHash),
		[]byte(password),
	); err != nil {
		return nil, httperr.AuthErr("invalid_credentials", "Invalid email or password.")
	}

	return user, nil
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) GetByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "user_not_found", "User not found")
	}
	return user, nil
}

func (s *UserService) GetByName(ctx context.Context, name string) (*models.User, error) {
	user, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return nil, notFound(err, "user_not_found", "User not found")
	}
	return user, nil
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, notFound(err, "user_not_found", "User not found")
	}
	return user, nil
}

func (s *UserService) Update(ctx context.Context, id uint, in UpdateUserInput) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "user_not_found", "User not found")
	}

	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Email != nil {
		user.Email = normalizeEmail(*in.Email)
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}
	if in.Address != nil {
		user.Address = in.Address
	}
	if in.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, httperr.InternalErr("password_hash_failed", "Failed to hash password.")
		}
		user.PasswordHash = string(hashed)
	}

	if err := s.repo.Update(ctx, user); err != nil {
		if isUniqueViolation(err) {
			return nil, httperr.ConflictErr("duplicate_user", "Username or email already in use.")
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFound(err, "user_not_found", "User not found")
	}
	return nil
}
