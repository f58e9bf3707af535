package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"certportal/internal/models"
)

const userColumns = `id, username, ip_address, user_agent, certificate_trusted, redirect_completed, created_at`

// UpsertTrustedUser creates the user identified by (ipAddress, username) with the certificate
// trusted, or marks the existing row trusted and refreshes its user agent. The lookup and the
// write happen in one statement, so concurrent accepts for the same pair share a row.
func (p *DatabaseProvider) UpsertTrustedUser(ctx context.Context, ipAddress, username, userAgent string) (*models.User, error) {
	query := `
		INSERT INTO users (username, ip_address, user_agent, certificate_trusted, redirect_completed, created_at)
		VALUES (?, ?, ?, TRUE, FALSE, ?)
		ON CONFLICT (ip_address, username)
		DO UPDATE SET
			certificate_trusted = TRUE,
			user_agent = excluded.user_agent
		RETURNING ` + userColumns

	user, err := scanUser(p.db.QueryRowContext(ctx, p.q(query), username, ipAddress, userAgent, p.now()))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	return user, nil
}

// GetUserByID returns the user with the given id, or ErrUserNotFound.
func (p *DatabaseProvider) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = ?`

	user, err := scanUser(p.db.QueryRowContext(ctx, p.q(query), id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

func (p *DatabaseProvider) MarkRedirectCompleted(ctx context.Context, userID int64) error {
	query := `UPDATE users SET redirect_completed = TRUE WHERE id = ?`

	result, err := p.db.ExecContext(ctx, p.q(query), userID)
	if err != nil {
		return fmt.Errorf("failed to mark redirect completed: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to mark redirect completed: %w", err)
	}

	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.IPAddress,
		&user.UserAgent,
		&user.CertificateTrusted,
		&user.RedirectCompleted,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &user, nil
}
