package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/acmehq/finance-api/internal/domain/entity"
	"github.com/acmehq/finance-api/pkg/helpers"
)

// Session is an issued credential pair the presentation layer transports as
// cookies.
type Session struct {
	AccessToken   string
	AccessExpiry  time.Time
	RefreshToken  string
	RefreshExpiry time.Time
}

// SessionIssuer abstracts session issuance so alternate credential backends
// can be substituted without touching the authentication flow.
type SessionIssuer interface {
	Issue(ctx context.Context, u *entity.User) (Session, error)
	Revoke(ctx context.Context, userID string) error
}

func sessionKey(userID string) string {
	return "user:session:" + userID
}

// JWTSessionIssuer signs an access/refresh token pair and records the session
// as a Redis hash with a TTL.
type JWTSessionIssuer struct {
	JWT   *helpers.JWTManager
	Redis *redis.Client
	TTL   time.Duration
}

func NewJWTSessionIssuer(jwt *helpers.JWTManager, rdb *redis.Client, ttl time.Duration) *JWTSessionIssuer {
	return &JWTSessionIssuer{JWT: jwt, Redis: rdb, TTL: ttl}
}

func (i *JWTSessionIssuer) Issue(ctx context.Context, u *entity.User) (Session, error) {
	sid := uuid.NewString()
	access, aexp, err := i.JWT.GenerateAccessToken(u.ID, sid)
	if err != nil {
		return Session{}, err
	}
	refresh, rexp, err := i.JWT.GenerateRefreshToken(u.ID, sid)
	if err != nil {
		return Session{}, err
	}

	if i.Redis != nil {
		key := sessionKey(u.ID)
		pipe := i.Redis.Pipeline()
		pipe.HSet(ctx, key, map[string]any{
			"user_id":    u.ID,
			"email":      u.Email,
			"name":       u.Name,
			"sid":        sid,
			"created_at": time.Now().UTC().Format(time.RFC3339Nano),
		})
		pipe.Expire(ctx, key, i.TTL)
		if _, err := pipe.Exec(ctx); err != nil {
			return Session{}, err
		}
	}

	return Session{AccessToken: access, AccessExpiry: aexp, RefreshToken: refresh, RefreshExpiry: rexp}, nil
}

func (i *JWTSessionIssuer) Revoke(ctx context.Context, userID string) error {
	if i.Redis == nil {
		return nil
	}
	return i.Redis.Del(ctx, sessionKey(userID)).Err()
}

var _ SessionIssuer = (*JWTSessionIssuer)(nil)
