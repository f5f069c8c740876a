package service

import (
	"context"
	"fmt"
	"regexp"

	"fintrack/internal/models"
	"fintrack/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// Structural validation policy for sign-up payloads.
var (
	usernameRe = regexp.MustCompile(`^[A-Za-z0-9]{3,10}$`)
	passwordRe = regexp.MustCompile(`^[A-Za-z0-9]{3,30}$`)
	emailRe    = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9-]+(?:\\.[a-zA-Z0-9-]+)*$")
)

const (
	msgInvalidUsername  = "username must be 3-10 alphanumeric characters"
	msgInvalidEmail     = "email must be a valid email address"
	msgInvalidPassword  = "password must be 3-30 alphanumeric characters"
	msgPasswordMismatch = "repeat_password must match password"
	msgEmailRequired    = "email is required"
	msgPasswordRequired = "password is required"
)

// AuthService handles user registration and credential verification.
type AuthService struct {
	users    repository.Users
	sessions Sessions
}

func NewAuthService(users repository.Users, sessions Sessions) *AuthService {
	return &AuthService{users: users, sessions: sessions}
}

// SignUp validates the payload, enforces uniqueness of username and email,
// and persists the new user with a hashed password.
func (s *AuthService) SignUp(ctx context.Context, in SignUpInput) error {
	if err := validateSignUp(in); err != nil {
		return err
	}

	if existing, err := s.users.GetByUsername(ctx, in.Username); err != nil {
		return err
	} else if existing != nil {
		return ErrConflict
	}
	if existing, err := s.users.GetByEmail(ctx, in.Email); err != nil {
		return err
	} else if existing != nil {
		return ErrConflict
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if _, err := s.users.Create(ctx, in.Username, in.Email, hash); err != nil {
		return err
	}
	return nil
}

// SignIn verifies credentials and opens a new session on success.
// Unknown email and wrong password yield the identical generic error.
func (s *AuthService) SignIn(ctx context.Context, in SignInInput) (SignInResult, error) {
	if in.Email == "" {
		return SignInResult{}, newValidationError("email", msgEmailRequired)
	}
	if in.Password == "" {
		return SignInResult{}, newValidationError("password", msgPasswordRequired)
	}

	u, err := s.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return SignInResult{}, err
	}
	if u == nil || verifyPassword(u.PasswordHash, in.Password) != nil {
		return SignInResult{}, ErrInvalidCredentials
	}

	token, err := s.sessions.Create(ctx, u.ID)
	if err != nil {
		return SignInResult{}, err
	}
	// Same user row read for verification backs the response; no re-query.
	return SignInResult{Username: u.Username, Token: token}, nil
}

// UserByID resolves a user referenced by a session.
func (s *AuthService) UserByID(ctx context.Context, id int64) (*models.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// validateSignUp checks fields in order and reports the first violation.
func validateSignUp(in SignUpInput) error {
	if !usernameRe.MatchString(in.Username) {
		return newValidationError("username", msgInvalidUsername)
	}
	if !emailRe.MatchString(in.Email) {
		return newValidationError("email", msgInvalidEmail)
	}
	if !passwordRe.MatchString(in.Password) {
		return newValidationError("password", msgInvalidPassword)
	}
	if in.RepeatPassword != in.Password {
		return newValidationError("repeat_password", msgPasswordMismatch)
	}
	return nil
}

// helper: hash password safely (bcrypt default cost, 10 rounds)
func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// helper: verify password against hash (timing-safe, hash-aware)
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
