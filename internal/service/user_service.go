package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/itsmortoncornelius/guerilla-prose-backend/internal/model"
	"github.com/itsmortoncornelius/guerilla-prose-backend/internal/repository"
)

type UserService interface {
	CreateUser(ctx context.Context, user model.User) (*model.User, error)
	GetUser(ctx context.Context, id int64) (*model.User, error)
	UpdateUser(ctx context.Context, user model.User) (*model.User, error)
	DeleteUser(ctx context.Context, id int64) (*model.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// CreateUser persists a new user. A non-blank email that is already
// registered does not create a duplicate: the existing record is returned
// together with ErrEmailTaken. A submission with every identity field
// blank is stored as a generated guest identity instead.
func (s *userService) CreateUser(ctx context.Context, user model.User) (*model.User, error) {
	if user.Email != "" {
		existing, err := s.userRepo.FindByEmail(ctx, user.Email)
		if err == nil {
			return existing, ErrEmailTaken
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
	}

	user = PlaceholderIfBlank(user, time.Now())

	id, err := s.userRepo.Create(ctx, &user)
	if err != nil {
		return nil, err
	}

	user.ID = id
	return &user, nil
}

func (s *userService) GetUser(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	return user, nil
}

// UpdateUser replaces every field of the stored user by id and returns the
// stored record. Updating an id that does not exist is a silent no-op; the
// submitted user is echoed back unchanged.
func (s *userService) UpdateUser(ctx context.Context, user model.User) (*model.User, error) {
	if err := s.userRepo.Update(ctx, &user); err != nil {
		return nil, err
	}

	updated, err := s.userRepo.FindByID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &user, nil
		}

		return nil, err
	}

	return updated, nil
}

// DeleteUser removes the user by id and returns the record that was
// deleted, or ErrUserNotFound if there was nothing to delete.
func (s *userService) DeleteUser(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return nil, err
	}

	return user, nil
}
