package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"time"

	"certportal/internal/device"
	"certportal/internal/metrics"
	"certportal/internal/models"

	"github.com/avct/uasurfer"
)

var (
	// ErrAccessDenied is returned by every step after Accept when the session is not bound to a user.
	ErrAccessDenied = errors.New("access denied: certificate not accepted")

	ErrUsernameTooLong = errors.New("username too long")
)

const (
	// MaxUsernameLength bounds client supplied usernames.
	MaxUsernameLength = 128

	// redirectDeviceType is recorded for redirect actions, which are not tied to a platform.
	redirectDeviceType = "web"
)

// Tracker drives a browser session through accept, artifact issue, install confirmation and
// redirect. Audit writes never fail the step that triggered them.
type Tracker struct {
	store       Store
	auditor     Auditor
	session     Session
	logger      *slog.Logger
	fallbackURL string
	now         func() time.Time
}

func NewTracker(store Store, auditor Auditor, session Session, logger *slog.Logger, fallbackURL string) *Tracker {
	return &Tracker{
		store:       store,
		auditor:     auditor,
		session:     session,
		logger:      logger,
		fallbackURL: fallbackURL,
		now:         time.Now,
	}
}

// DefaultUsername is the name given to clients that accept without supplying one.
func DefaultUsername(now time.Time) string {
	return "user_" + strconv.FormatInt(now.UnixMilli(), 10)
}

// Accept marks the client's user as trusting the certificate, creating the user if needed, and
// binds the session to it.
func (t *Tracker) Accept(ctx context.Context, client Client, username string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		username = DefaultUsername(t.now())
	}
	if len(username) > MaxUsernameLength {
		return nil, ErrUsernameTooLong
	}

	user, err := t.store.UpsertTrustedUser(ctx, client.IPAddress, username, client.UserAgent)
	if err != nil {
		return nil, fmt.Errorf("failed to record certificate acceptance: %w", err)
	}

	deviceType := device.Classify(client.UserAgent)
	t.audit(ctx, user.ID, models.ActionCertificateAccepted, deviceType.String(), client)

	if err := t.session.SetUserID(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("failed to bind session: %w", err)
	}

	metrics.CertificateAcceptsTotal.WithLabelValues(deviceType.String()).Inc()
	t.logger.Info("certificate accepted", "user_id", user.ID, "username", user.Username, "device", deviceType)

	return user, nil
}

// CurrentUser returns the user bound to the session or ErrAccessDenied.
func (t *Tracker) CurrentUser(ctx context.Context) (int64, error) {
	userID, ok := t.session.GetUserID(ctx)
	if !ok {
		return 0, ErrAccessDenied
	}

	return userID, nil
}

// IssueArtifact runs build with the bound user and records kind once build succeeds. A failed
// build is returned as is and leaves no audit record.
func (t *Tracker) IssueArtifact(ctx context.Context, client Client, kind models.ActionKind, deviceType device.Type, build func(userID int64) error) error {
	userID, err := t.CurrentUser(ctx)
	if err != nil {
		return err
	}

	if err := build(userID); err != nil {
		return err
	}

	t.audit(ctx, userID, kind, deviceType.String(), client)
	metrics.ArtifactsIssuedTotal.WithLabelValues(kind.String()).Inc()

	return nil
}

// ConfirmInstall records the installation and returns where the client should go next.
func (t *Tracker) ConfirmInstall(ctx context.Context, client Client) (string, error) {
	userID, err := t.CurrentUser(ctx)
	if err != nil {
		return "", err
	}

	t.audit(ctx, userID, models.ActionCertificateInstalled, device.Classify(client.UserAgent).String(), client)

	if err := t.store.MarkRedirectCompleted(context.WithoutCancel(ctx), userID); err != nil {
		t.logger.Error("failed to mark redirect completed", "error", err, "user_id", userID)
	}

	metrics.InstallationsConfirmed.Inc()

	return t.Destination(ctx), nil
}

// Redirect ends the workflow. The session is destroyed and the resolved destination returned.
func (t *Tracker) Redirect(ctx context.Context, client Client) (string, error) {
	userID, err := t.CurrentUser(ctx)
	if err != nil {
		return "", err
	}

	t.audit(ctx, userID, models.ActionRedirectedToCompany, redirectDeviceType, client)

	destination := t.Destination(ctx)
	if err := t.session.Logout(ctx); err != nil {
		return "", fmt.Errorf("failed to destroy session: %w", err)
	}

	metrics.RedirectsTotal.Inc()
	t.logger.Info("workflow completed", "user_id", userID, "destination", destination)

	return destination, nil
}

// Destination is the session's captured redirect URL, or the fallback when none was captured.
func (t *Tracker) Destination(ctx context.Context) string {
	if redirectURL := t.session.GetRedirectURL(ctx); redirectURL != "" {
		return redirectURL
	}

	return t.fallbackURL
}

// CaptureRedirect stores raw as the session's destination when it is an absolute http(s) URL.
// It reports whether raw was kept.
func (t *Tracker) CaptureRedirect(ctx context.Context, raw string) bool {
	if !IsAbsoluteHTTPURL(raw) {
		return false
	}

	t.session.SetRedirectURL(ctx, raw)
	return true
}

func IsAbsoluteHTTPURL(raw string) bool {
	if raw == "" {
		return false
	}

	u, err := url.Parse(raw)
	if err != nil {
		return false
	}

	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func (t *Tracker) audit(ctx context.Context, userID int64, kind models.ActionKind, deviceType string, client Client) {
	ua := uasurfer.Parse(client.UserAgent)

	if _, err := t.auditor.InsertCertificateAction(context.WithoutCancel(ctx), userID, kind, deviceType, client.IPAddress, *ua); err != nil {
		metrics.AuditWritesTotal.WithLabelValues(kind.String(), metrics.AuditResultFailed).Inc()
		t.logger.Error("failed to write audit record", "error", err, "action", kind, "user_id", userID)
		return
	}

	metrics.AuditWritesTotal.WithLabelValues(kind.String(), metrics.AuditResultOK).Inc()
}
