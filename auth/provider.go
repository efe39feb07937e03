// Package auth is the session provider: it registers accounts and checks
// credentials. Cookie handling lives with the web handlers.
package auth

import (
	"context"
	"fmt"
	"net/mail"

	"github.com/oliverisaac/jotter/store"
	"github.com/oliverisaac/jotter/types"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const (
	MinPasswordLength = 6
	// MaxPasswordLength is the most bytes bcrypt will hash.
	MaxPasswordLength = 72
	bcryptCost        = 10
)

// Error is a provider failure whose message is safe to show to the user verbatim.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return types.ErrAuth
}

var (
	ErrInvalidCredentials = &Error{Message: "Invalid login credentials"}
	ErrUserExists         = &Error{Message: "User already registered"}
	ErrInvalidEmail       = &Error{Message: "Unable to validate email address: invalid format"}
	ErrSignupDisabled     = &Error{Message: "Signups not allowed for this instance"}
	ErrWeakPassword       = &Error{Message: fmt.Sprintf("Password should be at least %d characters", MinPasswordLength)}
	ErrLongPassword       = &Error{Message: fmt.Sprintf("Password cannot be longer than %d characters", MaxPasswordLength)}
)

type Provider struct {
	cfg   types.Config
	users store.UserStore
}

func NewProvider(cfg types.Config, users store.UserStore) *Provider {
	return &Provider{cfg: cfg, users: users}
}

func normalizeEmail(email string) (string, error) {
	parsed, err := mail.ParseAddress(email)
	if err != nil {
		return "", ErrInvalidEmail
	}
	return parsed.Address, nil
}

func (p *Provider) userExists(ctx context.Context, email string) (bool, error) {
	_, err := p.users.FindUserByEmail(ctx, email)
	if errors.Is(err, types.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// SignUp registers a new account. It does not sign the user in.
func (p *Provider) SignUp(ctx context.Context, email string, password string) error {
	email, err := normalizeEmail(email)
	if err != nil {
		return err
	}

	if !p.cfg.SignupAllowed(email) {
		logrus.Infof("Rejected sign up for %s", email)
		return ErrSignupDisabled
	}

	if len(password) < MinPasswordLength {
		return ErrWeakPassword
	}
	if len(password) > MaxPasswordLength {
		return ErrLongPassword
	}

	exists, err := p.userExists(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		return ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return errors.Wrap(err, "hashing sign up password")
	}

	user := types.User{
		Email:    email,
		Password: string(hash),
	}
	if err := p.users.CreateUser(ctx, &user); err != nil {
		return err
	}

	logrus.Infof("Signed up user %s", user.Email)
	return nil
}

// SignInWithPassword checks the credentials and returns the session to store.
func (p *Provider) SignInWithPassword(ctx context.Context, email string, password string) (types.Session, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return types.Session{}, err
	}

	user, err := p.users.FindUserByEmail(ctx, email)
	if errors.Is(err, types.ErrNotFound) {
		return types.Session{}, ErrInvalidCredentials
	}
	if err != nil {
		return types.Session{}, err
	}

	if compareErr := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); compareErr != nil {
		return types.Session{}, ErrInvalidCredentials
	}

	return user.Session(), nil
}
