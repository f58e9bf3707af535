package handlers

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strconv"

	"certportal/internal/certificates"
	"certportal/internal/metrics"
	"certportal/internal/middlewares"
	"certportal/internal/storage"
)

const (
	maxActionsLimit = 1000

	// uploadFormField is the multipart field carrying the certificate.
	uploadFormField = "certificate"

	// multipartOverhead leaves room for boundaries and headers on top of the file itself.
	multipartOverhead = 64 << 10
)

type UploadResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Bytes   int64  `json:"bytes"`

	// Certificate is omitted when the upload does not parse as X.509.
	Certificate *certificates.Details `json:"certificate,omitempty"`
}

// GETAdminStats lists every user with their action totals.
func GETAdminStats(ctx *middlewares.AppContext) {
	stats, err := ctx.Storage.GetUserStats(ctx)
	if err != nil {
		ctx.Logger.Error("failed to load user stats", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "Database error")
		return
	}

	ctx.WriteJSON(http.StatusOK, stats)
}

// GETAdminActions lists the most recent certificate actions. ?limit= narrows or widens the
// default window.
func GETAdminActions(ctx *middlewares.AppContext) {
	limit := storage.DefaultRecentActionsLimit
	if raw := ctx.Request.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxActionsLimit {
			ctx.SetJSONError(http.StatusBadRequest, "limit must be between 1 and "+strconv.Itoa(maxActionsLimit))
			return
		}
		limit = parsed
	}

	actions, err := ctx.Storage.GetRecentCertificateActions(ctx, limit)
	if err != nil {
		ctx.Logger.Error("failed to load certificate actions", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "Database error")
		return
	}

	ctx.WriteJSON(http.StatusOK, actions)
}

// POSTAdminUploadCertificate replaces the served certificate with the uploaded file.
func POSTAdminUploadCertificate(ctx *middlewares.AppContext) {
	maxBytes := ctx.Config.Certificate.MaxUploadBytes
	ctx.Request.Body = http.MaxBytesReader(ctx.Response, ctx.Request.Body, maxBytes+multipartOverhead)

	if err := ctx.Request.ParseMultipartForm(maxBytes + multipartOverhead); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			ctx.SetJSONError(http.StatusRequestEntityTooLarge, "Certificate exceeds upload limit")
			return
		}
		ctx.SetJSONError(http.StatusBadRequest, "Invalid multipart form")
		return
	}
	defer func() {
		if ctx.Request.MultipartForm != nil {
			_ = ctx.Request.MultipartForm.RemoveAll()
		}
	}()

	file, header, err := ctx.Request.FormFile(uploadFormField)
	if err != nil {
		ctx.SetJSONError(http.StatusBadRequest, "No certificate file provided")
		return
	}
	defer file.Close()

	var uploaded bytes.Buffer
	written, err := ctx.Certificates.Save(io.TeeReader(file, &uploaded))
	switch {
	case errors.Is(err, certificates.ErrCertificateTooLarge):
		ctx.SetJSONError(http.StatusRequestEntityTooLarge, "Certificate exceeds upload limit")
		return
	case errors.Is(err, certificates.ErrEmptyUpload):
		ctx.SetJSONError(http.StatusBadRequest, "Uploaded certificate is empty")
		return
	case err != nil:
		ctx.Logger.Error("failed to save certificate", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "Failed to save certificate")
		return
	}

	metrics.CertificateUploadsTotal.Inc()
	ctx.Logger.Info("certificate replaced", "filename", header.Filename, "bytes", written, "ip", middlewares.ClientIP(ctx.Request))

	details, err := certificates.Inspect(uploaded.Bytes())
	if err != nil {
		ctx.Logger.Warn("uploaded file is not a parseable certificate", "error", err, "filename", header.Filename)
	}

	ctx.WriteJSON(http.StatusOK, UploadResponse{
		Success:     true,
		Message:     "Certificate uploaded successfully",
		Bytes:       written,
		Certificate: details,
	})
}
