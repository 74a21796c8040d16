package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acmehq/finance-api/internal/domain/entity"
	"github.com/acmehq/finance-api/internal/domain/repository"
	"github.com/acmehq/finance-api/pkg/helpers"
)

type fakeUserRepo struct {
	byEmail  map[string]*entity.User
	failWith error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	if r.failWith != nil {
		return r.failWith
	}
	if _, ok := r.byEmail[u.Email]; ok {
		return repository.ErrDuplicateEmail
	}
	u.ID = "user-1"
	cp := *u
	r.byEmail[u.Email] = &cp
	return nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	u, ok := r.byEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

type fakeSessionIssuer struct {
	issued  int
	revoked []string
}

func (i *fakeSessionIssuer) Issue(_ context.Context, u *entity.User) (Session, error) {
	i.issued++
	return Session{AccessToken: "access-" + u.ID, RefreshToken: "refresh-" + u.ID}, nil
}

func (i *fakeSessionIssuer) Revoke(_ context.Context, userID string) error {
	i.revoked = append(i.revoked, userID)
	return nil
}

type fakePublisher struct {
	published []any
	failWith  error
}

func (p *fakePublisher) PublishJSON(_ context.Context, body any) error {
	if p.failWith != nil {
		return p.failWith
	}
	p.published = append(p.published, body)
	return nil
}

func seedUser(t *testing.T, repo *fakeUserRepo, email, password string) {
	t.Helper()
	hash, err := helpers.HashPassword(password)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), &entity.User{
		Name:     "Test User",
		Email:    email,
		Password: hash,
	}))
}

func TestAuthenticate_Success(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "user@example.com", "secret123")
	svc := NewUserService(repo, &fakeSessionIssuer{}, nil, nil)

	u, err := svc.Authenticate(context.Background(), "user@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", u.Email)
}

func TestAuthenticate_EnumerationResistance(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "user@example.com", "secret123")
	svc := NewUserService(repo, &fakeSessionIssuer{}, nil, nil)

	_, unknownErr := svc.Authenticate(context.Background(), "nobody@example.com", "secret123")
	_, wrongPassErr := svc.Authenticate(context.Background(), "user@example.com", "wrongpass")

	require.Error(t, unknownErr)
	require.Error(t, wrongPassErr)
	// Unknown account and wrong password must be indistinguishable.
	assert.Equal(t, unknownErr, wrongPassErr)
	assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)
}

func TestAuthenticate_StoreFaultIsNotCredentialFailure(t *testing.T) {
	repo := newFakeUserRepo()
	repo.failWith = errors.New("pq: the database system is starting up")
	svc := NewUserService(repo, &fakeSessionIssuer{}, nil, nil)

	_, err := svc.Authenticate(context.Background(), "user@example.com", "secret123")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
	assert.NotContains(t, err.Error(), "database system")
}

func TestLogin_IssuesSession(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "user@example.com", "secret123")
	issuer := &fakeSessionIssuer{}
	svc := NewUserService(repo, issuer, nil, nil)

	_, sess, err := svc.Login(context.Background(), "user@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, 1, issuer.issued)
	assert.NotEmpty(t, sess.AccessToken)
	assert.NotEmpty(t, sess.RefreshToken)
}

func TestLogin_NoSessionOnBadCredentials(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "user@example.com", "secret123")
	issuer := &fakeSessionIssuer{}
	svc := NewUserService(repo, issuer, nil, nil)

	_, _, err := svc.Login(context.Background(), "user@example.com", "nope")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Zero(t, issuer.issued)
}

func TestSignUp_Success(t *testing.T) {
	repo := newFakeUserRepo()
	jobs := &fakePublisher{}
	svc := NewUserService(repo, &fakeSessionIssuer{}, jobs, nil)

	identity, redirect, err := svc.SignUp(context.Background(), "New User", "new@example.com", "secret123")
	require.NoError(t, err)
	require.NotNil(t, identity)
	assert.Equal(t, "new@example.com", identity.Email)
	require.NotNil(t, redirect)
	assert.Equal(t, "/login", redirect.To)
	assert.Equal(t, "Account created successfully", redirect.Notice)
	assert.Len(t, jobs.published, 1)

	// Stored password is a hash, not the plaintext.
	stored := repo.byEmail["new@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret123", stored.Password)
	assert.True(t, helpers.CompareHashAndPassword(stored.Password, "secret123"))
}

func TestSignUp_DuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "taken@example.com", "secret123")
	svc := NewUserService(repo, &fakeSessionIssuer{}, nil, nil)

	identity, redirect, err := svc.SignUp(context.Background(), "Other", "taken@example.com", "different1")
	assert.Nil(t, identity)
	assert.Nil(t, redirect)
	assert.ErrorIs(t, err, ErrCreateUser)

	// The original row is untouched.
	stored := repo.byEmail["taken@example.com"]
	require.NotNil(t, stored)
	assert.True(t, helpers.CompareHashAndPassword(stored.Password, "secret123"))
}

func TestSignUp_QueueOutageDoesNotFailSignUp(t *testing.T) {
	repo := newFakeUserRepo()
	jobs := &fakePublisher{failWith: errors.New("amqp: channel closed")}
	svc := NewUserService(repo, &fakeSessionIssuer{}, jobs, nil)

	identity, _, err := svc.SignUp(context.Background(), "New User", "new@example.com", "secret123")
	require.NoError(t, err)
	assert.NotNil(t, identity)
}

func TestLogout_RevokesSession(t *testing.T) {
	issuer := &fakeSessionIssuer{}
	svc := NewUserService(newFakeUserRepo(), issuer, nil, nil)

	require.NoError(t, svc.Logout(context.Background(), "user-1"))
	assert.Equal(t, []string{"user-1"}, issuer.revoked)
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)
var _ SessionIssuer = (*fakeSessionIssuer)(nil)
var _ JobPublisher = (*fakePublisher)(nil)
