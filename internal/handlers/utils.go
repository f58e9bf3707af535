package handlers

import (
	"errors"
	"net/http"

	"certportal/internal/certificates"
	"certportal/internal/metrics"
	"certportal/internal/middlewares"
	"certportal/internal/workflow"
)

const certificateNotFoundMessage = "Certificate not found"

// writeArtifactError maps a failed artifact step to a plain text response.
func writeArtifactError(ctx *middlewares.AppContext, artifact string, err error, failureMessage string) {
	switch {
	case errors.Is(err, workflow.ErrAccessDenied):
		middlewares.WriteAccessDenied(ctx, middlewares.DenyText)
	case errors.Is(err, certificates.ErrCertificateNotFound):
		ctx.Logger.Warn("certificate file missing", "artifact", artifact)
		ctx.WriteText(http.StatusNotFound, certificateNotFoundMessage)
	default:
		metrics.ArtifactGenerationErrors.WithLabelValues(artifact).Inc()
		ctx.Logger.Error("failed to build artifact", "error", err, "artifact", artifact)
		ctx.WriteText(http.StatusInternalServerError, failureMessage)
	}
}

// requestScheme is the scheme the client used to reach the portal.
func requestScheme(ctx *middlewares.AppContext) string {
	if ctx.Request.TLS != nil {
		return "https"
	}

	if ctx.Config.Server.TrustProxyHeaders {
		if proto := ctx.Request.Header.Get("X-Forwarded-Proto"); proto == "https" || proto == "http" {
			return proto
		}
	}

	return "http"
}

// absoluteURL builds a URL on the host the client addressed.
func absoluteURL(ctx *middlewares.AppContext, pathAndQuery string) string {
	return requestScheme(ctx) + "://" + ctx.Request.Host + pathAndQuery
}
