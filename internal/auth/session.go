package auth

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"certportal/internal/config"

	"github.com/alexedwards/scs/goredisstore"
	"github.com/alexedwards/scs/v2"
	"github.com/alexedwards/scs/v2/memstore"
	"github.com/gorilla/securecookie"
	"github.com/redis/go-redis/v9"
)

type SessionManager struct {
	*scs.SessionManager

	// RedisClient is set when sessions are kept in redis.
	RedisClient *redis.Client

	codec  *securecookie.SecureCookie
	logger *slog.Logger
}

func NewSessionManager(logger *slog.Logger, cfg *config.Config) (*SessionManager, error) {
	sessionManager := scs.New()

	var client *redis.Client

	switch cfg.Sessions.Store {
	case "memory":
		sessionManager.Store = memstore.New()
	case "redis":
		client = redis.NewClient(&redis.Options{
			Addr:         cfg.Redis.Address,
			Username:     cfg.Redis.Username,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.SessionIndex,
			MinIdleConns: 2,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("redis connection failed: %w", err)
		}

		logger.Info("storing sessions in redis", "address", cfg.Redis.Address, "db", cfg.Redis.SessionIndex)
		sessionManager.Store = goredisstore.New(client)
	default:
		return nil, fmt.Errorf("unsupported session store: %s", cfg.Sessions.Store)
	}

	sessionManager.IdleTimeout = cfg.Sessions.IdleTimeout
	sessionManager.Lifetime = cfg.Sessions.Lifetime

	sessionManager.Cookie.Name = cfg.Sessions.Name
	sessionManager.Cookie.HttpOnly = true
	sessionManager.Cookie.SameSite = http.SameSiteLaxMode
	sessionManager.Cookie.Secure = cfg.Sessions.Secure
	sessionManager.Cookie.Path = "/"

	return &SessionManager{
		SessionManager: sessionManager,
		RedisClient:    client,
		codec:          newCookieCodec([]byte(cfg.Sessions.Secret), cfg.Sessions.Lifetime),
		logger:         logger,
	}, nil
}

// SetUserID binds the session to a user. The session token is rotated first.
func (s *SessionManager) SetUserID(ctx context.Context, userID int64) error {
	if err := s.RenewToken(ctx); err != nil {
		return fmt.Errorf("failed to renew session token: %w", err)
	}

	s.Put(ctx, string(SessionKeyUserID), userID)
	s.Put(ctx, string(SessionKeyAcceptedAt), time.Now().Unix())

	return nil
}

// GetUserID returns the bound user, if any.
func (s *SessionManager) GetUserID(ctx context.Context) (int64, bool) {
	if !s.Exists(ctx, string(SessionKeyUserID)) {
		return 0, false
	}

	id := s.GetInt64(ctx, string(SessionKeyUserID))
	return id, id > 0
}

func (s *SessionManager) SetRedirectURL(ctx context.Context, redirectURL string) {
	s.Put(ctx, string(SessionKeyRedirectURL), redirectURL)
}

func (s *SessionManager) GetRedirectURL(ctx context.Context) string {
	return s.GetString(ctx, string(SessionKeyRedirectURL))
}

// Logout deletes the session from the store and expires the cookie.
func (s *SessionManager) Logout(ctx context.Context) error {
	return s.Destroy(ctx)
}
