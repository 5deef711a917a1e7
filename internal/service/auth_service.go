package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dvukovic/devconnect/internal/avatar"
	"github.com/dvukovic/devconnect/internal/domain"
	"github.com/dvukovic/devconnect/internal/password"
	"github.com/dvukovic/devconnect/internal/repository"
	"github.com/dvukovic/devconnect/internal/token"
)

var (
	ErrEmailTaken   = errors.New("user already exists")
	ErrInvalidCreds = errors.New("invalid email or password")
)

type AuthService struct {
	userRepo repository.UserRepository
	tokens   *token.Manager
}

func NewAuthService(userRepo repository.UserRepository, tokens *token.Manager) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (string, error) {
	email := normalizeEmail(input.Email)

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", ErrEmailTaken
	}

	hash, err := password.Hash(input.Password)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}

	user := &domain.User{
		Name:         input.Name,
		Email:        email,
		PasswordHash: hash,
		Avatar:       avatar.URL(email),
	}

	// The pre-check above races with concurrent registrations; the unique
	// index on lower(email) is the backstop.
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return "", ErrEmailTaken
		}
		return "", fmt.Errorf("creating user: %w", err)
	}

	return s.issueToken(user)
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (string, error) {
	user, err := s.userRepo.GetByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		return "", err
	}
	// Unknown email and wrong password fail identically so callers cannot
	// probe which emails are registered.
	if user == nil {
		return "", ErrInvalidCreds
	}

	if !password.Compare(input.Password, user.PasswordHash) {
		return "", ErrInvalidCreds
	}

	return s.issueToken(user)
}

func (s *AuthService) Profile(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %d not found", id)
	}

	return user, nil
}

func (s *AuthService) issueToken(user *domain.User) (string, error) {
	tok, err := s.tokens.Issue(token.UserClaim{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	})
	if err != nil {
		return "", fmt.Errorf("generating token: %w", err)
	}

	return tok, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
