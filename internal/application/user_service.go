package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/acmehq/finance-api/internal/domain/entity"
	"github.com/acmehq/finance-api/internal/domain/repository"
	"github.com/acmehq/finance-api/pkg/helpers"
	"github.com/acmehq/finance-api/pkg/mailer"
)

// JobPublisher enqueues background jobs. The RabbitMQ publisher satisfies it.
type JobPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

type UserService struct {
	Repo     repository.UserRepository
	Sessions SessionIssuer
	Jobs     JobPublisher
	Logger   *logrus.Logger
}

func NewUserService(repo repository.UserRepository, sessions SessionIssuer, jobs JobPublisher, logger *logrus.Logger) *UserService {
	return &UserService{Repo: repo, Sessions: sessions, Jobs: jobs, Logger: logger}
}

// Identity is what sign-up returns to the caller: never the hash.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Authenticate verifies the credential pair against the stored hash. An
// unknown email and a wrong password yield the identical ErrInvalidCredentials;
// store faults surface as unexpected errors and get the caller's generic
// fault handling instead.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		if s.Logger != nil {
			s.Logger.WithError(err).Error("database error: fetch user")
		}
		return nil, errors.New("failed to fetch user")
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// Login authenticates and, on success, issues a session.
func (s *UserService) Login(ctx context.Context, email, password string) (*entity.User, Session, error) {
	u, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return nil, Session{}, err
	}
	sess, err := s.Sessions.Issue(ctx, u)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("session issuance failed")
		}
		return nil, Session{}, errors.New("failed to issue session")
	}
	return u, sess, nil
}

func (s *UserService) Logout(ctx context.Context, userID string) error {
	return s.Sessions.Revoke(ctx, userID)
}

// SignUp hashes the password and inserts the user. Any creation failure,
// including a duplicate email, reports ErrCreateUser. On success the caller
// receives the created identity and a navigation instruction to the login
// view.
func (s *UserService) SignUp(ctx context.Context, name, email, password string) (*Identity, *Redirect, error) {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Error("password hashing failed")
		}
		return nil, nil, ErrCreateUser
	}

	u := &entity.User{Name: name, Email: email, Password: hash}
	if err := s.Repo.Create(ctx, u); err != nil {
		if s.Logger != nil && !errors.Is(err, repository.ErrDuplicateEmail) {
			s.Logger.WithError(err).Error("database error: create user")
		}
		return nil, nil, ErrCreateUser
	}

	// Welcome email is best-effort; a queue outage must not fail the sign-up.
	if s.Jobs != nil {
		if err := s.Jobs.PublishJSON(ctx, mailer.WelcomeEmail(u.Email, u.Name)); err != nil && s.Logger != nil {
			s.Logger.WithError(err).Warn("welcome email enqueue failed")
		}
	}

	identity := &Identity{ID: u.ID, Name: u.Name, Email: u.Email}
	redirect := &Redirect{To: "/login", Notice: "Account created successfully"}
	return identity, redirect, nil
}
