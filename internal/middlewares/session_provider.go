package middlewares

import (
	"context"
	"net/http"
)

//go:generate mockgen -source=session_provider.go -destination=../mocks/session.go -package=mocks

type SessionProvider interface {
	SetUserID(ctx context.Context, userID int64) error
	GetUserID(ctx context.Context) (int64, bool)
	SetRedirectURL(ctx context.Context, redirectURL string)
	GetRedirectURL(ctx context.Context) string
	Logout(ctx context.Context) error

	LoadAndSave(next http.Handler) http.Handler
}
