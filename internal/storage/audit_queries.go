package storage

import (
	"context"
	"database/sql"
	"fmt"

	"certportal/internal/models"
	"certportal/internal/utils"

	"github.com/avct/uasurfer"
)

// InsertCertificateAction appends an audit record for userID. Browser and OS details are
// taken from the parsed user agent.
func (p *DatabaseProvider) InsertCertificateAction(ctx context.Context, userID int64, action models.ActionKind, deviceType, ipAddress string, userAgent uasurfer.UserAgent) (*models.CertificateAction, error) {
	query := `
		INSERT INTO certificate_actions (user_id, action, device_type, ip_address, browser_name, browser_version, os_name, os_version, occurred_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`

	a := models.CertificateAction{
		UserID:         userID,
		Action:         action,
		DeviceType:     deviceType,
		IPAddress:      ipAddress,
		BrowserName:    userAgent.Browser.Name.String(),
		BrowserVersion: utils.UserAgentVersionToString(userAgent.Browser.Version),
		OSName:         userAgent.OS.Name.String(),
		OSVersion:      utils.UserAgentVersionToString(userAgent.OS.Version),
		Timestamp:      p.now(),
	}

	err := p.db.QueryRowContext(ctx, p.q(query),
		a.UserID, string(a.Action), a.DeviceType, a.IPAddress,
		a.BrowserName, a.BrowserVersion, a.OSName, a.OSVersion,
		a.Timestamp,
	).Scan(&a.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert certificate action: %w", err)
	}

	return &a, nil
}

// GetRecentCertificateActions returns up to limit actions, newest first, with the owning
// user's name and registered address.
func (p *DatabaseProvider) GetRecentCertificateActions(ctx context.Context, limit int) ([]models.ActionListing, error) {
	if limit <= 0 {
		limit = DefaultRecentActionsLimit
	}

	query := `
		SELECT a.id, a.user_id, a.action, a.device_type, a.ip_address,
		       a.browser_name, a.browser_version, a.os_name, a.os_version, a.occurred_at,
		       u.username, u.ip_address
		FROM certificate_actions a
		LEFT JOIN users u ON u.id = a.user_id
		ORDER BY a.occurred_at DESC, a.id DESC
		LIMIT ?
	`

	rows, err := p.db.QueryContext(ctx, p.q(query), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent certificate actions: %w", err)
	}
	defer rows.Close()

	actions := []models.ActionListing{}
	for rows.Next() {
		var (
			l        models.ActionListing
			kind     string
			username sql.NullString
			userIP   sql.NullString
		)
		err := rows.Scan(
			&l.ID,
			&l.UserID,
			&kind,
			&l.DeviceType,
			&l.IPAddress,
			&l.BrowserName,
			&l.BrowserVersion,
			&l.OSName,
			&l.OSVersion,
			&l.Timestamp,
			&username,
			&userIP,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan certificate action: %w", err)
		}

		l.Action = models.ActionKind(kind)
		l.Username = username.String
		l.UserIP = userIP.String
		actions = append(actions, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate certificate actions: %w", err)
	}

	return actions, nil
}

// GetUserStats returns every user, newest first, with its action count and the distinct
// devices and actions it has recorded in first-seen order.
func (p *DatabaseProvider) GetUserStats(ctx context.Context) ([]models.UserStats, error) {
	query := `
		SELECT u.id, u.username, u.ip_address, u.user_agent, u.certificate_trusted, u.redirect_completed, u.created_at,
		       a.id, a.device_type, a.action
		FROM users u
		LEFT JOIN certificate_actions a ON a.user_id = u.id
		ORDER BY u.created_at DESC, u.id DESC, a.id ASC
	`

	rows, err := p.db.QueryContext(ctx, p.q(query))
	if err != nil {
		return nil, fmt.Errorf("failed to query user stats: %w", err)
	}
	defer rows.Close()

	stats := []models.UserStats{}
	index := map[int64]int{}
	seenDevice := map[int64]map[string]bool{}
	seenAction := map[int64]map[string]bool{}

	for rows.Next() {
		var (
			u        models.User
			actionID sql.NullInt64
			device   sql.NullString
			action   sql.NullString
		)
		err := rows.Scan(
			&u.ID,
			&u.Username,
			&u.IPAddress,
			&u.UserAgent,
			&u.CertificateTrusted,
			&u.RedirectCompleted,
			&u.CreatedAt,
			&actionID,
			&device,
			&action,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user stats: %w", err)
		}

		i, ok := index[u.ID]
		if !ok {
			stats = append(stats, models.UserStats{User: u, Devices: []string{}, Actions: []string{}})
			i = len(stats) - 1
			index[u.ID] = i
			seenDevice[u.ID] = map[string]bool{}
			seenAction[u.ID] = map[string]bool{}
		}

		if !actionID.Valid {
			continue
		}

		s := &stats[i]
		s.TotalActions++

		if device.String != "" && !seenDevice[u.ID][device.String] {
			seenDevice[u.ID][device.String] = true
			s.Devices = append(s.Devices, device.String)
		}

		if action.String != "" && !seenAction[u.ID][action.String] {
			seenAction[u.ID][action.String] = true
			s.Actions = append(s.Actions, action.String)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate user stats: %w", err)
	}

	return stats, nil
}
