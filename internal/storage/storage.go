package storage

import (
	"context"

	"certportal/internal/models"

	"github.com/avct/uasurfer"
)

//go:generate mockgen -source=storage.go -destination=../mocks/storage.go -package=mocks

// noinspection GoNameStartsWithPackageName
type StorageProvider interface {
	Close() error
	Ping(ctx context.Context) error
	RunMigrations(ctx context.Context) error

	UpsertTrustedUser(ctx context.Context, ipAddress, username, userAgent string) (*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	MarkRedirectCompleted(ctx context.Context, userID int64) error

	InsertCertificateAction(ctx context.Context, userID int64, action models.ActionKind, deviceType, ipAddress string, userAgent uasurfer.UserAgent) (*models.CertificateAction, error)
	GetRecentCertificateActions(ctx context.Context, limit int) ([]models.ActionListing, error)
	GetUserStats(ctx context.Context) ([]models.UserStats, error)
}
