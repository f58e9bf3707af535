package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: Namespace + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    Namespace + "_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	CertificateAcceptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: Namespace + "_certificate_accepts_total",
			Help: "Total number of certificate accept requests by device type",
		},
		[]string{"device"},
	)

	ArtifactsIssuedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: Namespace + "_artifacts_issued_total",
			Help: "Total number of installation artifacts handed out, by action",
		},
		[]string{"action"},
	)

	ArtifactGenerationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: Namespace + "_artifact_generation_errors_total",
			Help: "Total number of failed artifact builds",
		},
		[]string{"artifact"},
	)

	AuditWritesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: Namespace + "_audit_writes_total",
			Help: "Total number of audit record writes by result",
		},
		[]string{"action", "result"},
	)

	InstallationsConfirmed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: Namespace + "_installations_confirmed_total",
			Help: "Total number of clients that confirmed the certificate installation",
		},
	)

	RedirectsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: Namespace + "_redirects_total",
			Help: "Total number of completed workflows redirected to their destination",
		})

	CertificateUploadsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: Namespace + "_certificate_uploads_total",
			Help: "Total number of certificate uploads written to disk",
		})

	CertificatePresent = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: Namespace + "_certificate_present",
			Help: "1 when the served certificate exists and parses as X.509, 0 otherwise",
		})

	CertificateExpiryTimestamp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: Namespace + "_certificate_expiry_timestamp_seconds",
			Help: "NotAfter of the served certificate as a unix timestamp",
		})
)
