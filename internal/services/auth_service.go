package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hanikdev/storefront-golang/internal/auth"
	"github.com/hanikdev/storefront-golang/internal/models"
	"github.com/hanikdev/storefront-golang/internal/store"
)

// AuthService handles registration, login, and session token issuance.
type AuthService struct {
	Store store.Store
}

// Register creates a new non-admin user. The email must not be taken; the
// lookup-then-insert is backed by the store's uniqueness check, so a racing
// duplicate still surfaces as ErrDuplicateEmail.
func (s *AuthService) Register(ctx context.Context, name, email, password, phone string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if _, err := s.Store.UserByEmail(ctx, email); err == nil {
		return nil, ErrDuplicateEmail
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	var pw models.Password
	if err := pw.Set(password); err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: pw.Hash,
		Phone:        phone,
		IsAdmin:      false,
		CreatedAt:    time.Now(),
	}
	if err := s.Store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials and returns a signed session token together
// with the user. The returned user never carries the password hash over JSON.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.Store.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	pw := models.Password{Hash: user.PasswordHash}
	match, err := pw.Matches(password)
	if err != nil {
		return "", nil, err
	}
	if !match {
		return "", nil, ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.IsAdmin)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}
