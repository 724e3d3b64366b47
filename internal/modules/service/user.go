package service

import (
	"context"
	"errors"
	"strings"

	"github.com/modelday/modelday/internal/modules/model"
	"github.com/modelday/modelday/internal/modules/repo"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type UserService interface {
	Signup(ctx context.Context, in SignupInput) (*model.User, error)
	Signin(ctx context.Context, email string) (*model.User, error)
}

type userService struct {
	users repo.UserRepo
	log   *zap.Logger
}

func NewUserService(users repo.UserRepo, log *zap.Logger) UserService {
	return &userService{users: users, log: log}
}

type SignupInput struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (s *userService) Signup(ctx context.Context, in SignupInput) (*model.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	// Check-then-create races are caught by the unique index; this lookup
	// just gives the common case a friendly error.
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	u := &model.User{Email: email, Name: strings.TrimSpace(in.Name)}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return u, nil
}

func (s *userService) Signin(ctx context.Context, email string) (*model.User, error) {
	u, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}
