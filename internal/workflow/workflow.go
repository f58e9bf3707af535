package workflow

import (
	"context"

	"certportal/internal/models"

	"github.com/avct/uasurfer"
)

//go:generate mockgen -source=workflow.go -destination=../mocks/workflow.go -package=mocks

// Store holds the user registry.
type Store interface {
	UpsertTrustedUser(ctx context.Context, ipAddress, username, userAgent string) (*models.User, error)
	MarkRedirectCompleted(ctx context.Context, userID int64) error
}

// Auditor appends certificate actions.
type Auditor interface {
	InsertCertificateAction(ctx context.Context, userID int64, action models.ActionKind, deviceType, ipAddress string, userAgent uasurfer.UserAgent) (*models.CertificateAction, error)
}

// Session is the per-browser state the tracker reads and writes.
type Session interface {
	SetUserID(ctx context.Context, userID int64) error
	GetUserID(ctx context.Context) (int64, bool)
	SetRedirectURL(ctx context.Context, redirectURL string)
	GetRedirectURL(ctx context.Context) string
	Logout(ctx context.Context) error
}

// Client identifies the caller of a workflow step.
type Client struct {
	IPAddress string
	UserAgent string
}
