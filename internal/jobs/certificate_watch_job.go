package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"certportal/internal/certificates"
	"certportal/internal/metrics"
)

// expiryWarningWindow is how far ahead of NotAfter the job starts warning.
const expiryWarningWindow = 30 * 24 * time.Hour

// CertificateWatchJob re-inspects the served certificate and publishes its presence and
// expiry as gauges. Uploads replace the file underneath it, so nothing is cached.
type CertificateWatchJob struct {
	certs    certificates.CertificateProvider
	interval time.Duration
	logger   *slog.Logger
	now      func() time.Time
}

func NewCertificateWatchJob(certs certificates.CertificateProvider, interval time.Duration, logger *slog.Logger) *CertificateWatchJob {
	return &CertificateWatchJob{
		certs:    certs,
		interval: interval,
		logger:   logger,
		now:      time.Now,
	}
}

func (j *CertificateWatchJob) Name() string {
	return "certificate_watch"
}

func (j *CertificateWatchJob) Interval() time.Duration {
	return j.interval
}

func (j *CertificateWatchJob) Run(ctx context.Context) error {
	if j.interval <= 0 {
		return fmt.Errorf("non-positive ticker interval: %s", j.interval)
	}

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	j.check()

	for {
		select {
		case <-ctx.Done():
			j.logger.Debug("certificate watch canceled")
			return ctx.Err()
		case <-ticker.C:
			j.check()
		}
	}
}

func (j *CertificateWatchJob) check() {
	data, err := j.certs.Read()
	if err != nil {
		metrics.CertificatePresent.Set(0)
		j.logger.Warn("served certificate unavailable", "error", err)
		return
	}

	details, err := certificates.Inspect(data)
	if err != nil {
		metrics.CertificatePresent.Set(0)
		j.logger.Warn("served certificate does not parse as X.509", "error", err)
		return
	}

	metrics.CertificatePresent.Set(1)
	metrics.CertificateExpiryTimestamp.Set(float64(details.NotAfter.Unix()))

	if remaining := details.NotAfter.Sub(j.now()); remaining < expiryWarningWindow {
		j.logger.Warn("served certificate expires soon", "subject", details.Subject, "not_after", details.NotAfter, "remaining", remaining.Round(time.Hour))
		return
	}

	j.logger.Debug("served certificate checked", "subject", details.Subject, "not_after", details.NotAfter, "sha256", details.FingerprintSHA256)
}
