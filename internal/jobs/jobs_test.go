package jobs

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"errors"
	"log/slog"
	"math/big"
	"sync/atomic"
	"testing"
	"time"

	"certportal/internal/certificates"
	"certportal/internal/metrics"
	"certportal/internal/mocks"
	"certportal/internal/testutil"

	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func selfSigned(t *testing.T, notAfter time.Time) []byte {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	template := &x509.Certificate{
		SerialNumber:          big.NewInt(1),
		Subject:               pkix.Name{CommonName: "Watch Test CA"},
		NotBefore:             notAfter.Add(-24 * time.Hour),
		NotAfter:              notAfter,
		IsCA:                  true,
		BasicConstraintsValid: true,
	}

	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	require.NoError(t, err)
	return der
}

func TestCertificateWatchJobCheck(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	valid := now.Add(365 * 24 * time.Hour)
	expiring := now.Add(7 * 24 * time.Hour)

	tests := []struct {
		name        string
		read        func() ([]byte, error)
		wantPresent float64
		wantExpiry  time.Time
		wantWarning string
	}{
		{
			name:        "valid certificate",
			read:        func() ([]byte, error) { return selfSigned(t, valid), nil },
			wantPresent: 1,
			wantExpiry:  valid,
		},
		{
			name:        "expiring certificate",
			read:        func() ([]byte, error) { return selfSigned(t, expiring), nil },
			wantPresent: 1,
			wantExpiry:  expiring,
			wantWarning: "served certificate expires soon",
		},
		{
			name:        "missing certificate",
			read:        func() ([]byte, error) { return nil, certificates.ErrCertificateNotFound },
			wantWarning: "served certificate unavailable",
		},
		{
			name:        "not a certificate",
			read:        func() ([]byte, error) { return []byte("hello"), nil },
			wantWarning: "served certificate does not parse as X.509",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			certs := mocks.NewMockCertificateProvider(gomock.NewController(t))
			data, err := tt.read()
			certs.EXPECT().Read().Return(data, err)

			logs := testutil.NewTestLogHandler()

			job := NewCertificateWatchJob(certs, time.Hour, slog.New(logs))
			job.now = func() time.Time { return now }
			job.check()

			assert.Equal(t, tt.wantPresent, promtest.ToFloat64(metrics.CertificatePresent))
			if !tt.wantExpiry.IsZero() {
				assert.Equal(t, float64(tt.wantExpiry.Unix()), promtest.ToFloat64(metrics.CertificateExpiryTimestamp))
			}
			if tt.wantWarning == "" {
				assert.Zero(t, logs.CountByLevel(slog.LevelWarn))
			} else {
				assert.True(t, logs.ContainsMessage(slog.LevelWarn, tt.wantWarning))
			}
		})
	}
}

func TestCertificateWatchJobRejectsZeroInterval(t *testing.T) {
	job := NewCertificateWatchJob(nil, 0, slog.New(slog.DiscardHandler))
	assert.Error(t, job.Run(context.Background()))
}

type blockingJob struct {
	started atomic.Int32
	stopped atomic.Int32
}

func (j *blockingJob) Name() string            { return "blocking" }
func (j *blockingJob) Interval() time.Duration { return time.Minute }

func (j *blockingJob) Run(ctx context.Context) error {
	j.started.Add(1)
	<-ctx.Done()
	j.stopped.Add(1)
	return ctx.Err()
}

type failingJob struct{}

func (failingJob) Name() string              { return "failing" }
func (failingJob) Interval() time.Duration   { return time.Minute }
func (failingJob) Run(context.Context) error { return errors.New("boom") }

func TestJobManagerLifecycle(t *testing.T) {
	jm := NewJobManager(slog.New(slog.DiscardHandler))

	job := &blockingJob{}
	jm.Register(job)
	jm.Register(failingJob{})

	jm.Start(context.Background())
	// a second start must not launch duplicates
	jm.Start(context.Background())

	require.Eventually(t, func() bool { return job.started.Load() == 1 }, time.Second, 10*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	jm.Shutdown(ctx)

	assert.Equal(t, int32(1), job.started.Load())
	assert.Equal(t, int32(1), job.stopped.Load())
}
