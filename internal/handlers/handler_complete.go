package handlers

import (
	"errors"
	"net/http"

	"certportal/internal/middlewares"
	"certportal/internal/workflow"
)

type InstalledResponse struct {
	Success     bool   `json:"success"`
	RedirectURL string `json:"redirectUrl"`
}

// POSTCertificateInstalled records that the client finished installing the certificate.
func POSTCertificateInstalled(ctx *middlewares.AppContext) {
	redirectURL, err := ctx.Tracker.ConfirmInstall(ctx, ctx.Client())
	if err != nil {
		if errors.Is(err, workflow.ErrAccessDenied) {
			middlewares.WriteAccessDenied(ctx, middlewares.DenyJSON)
			return
		}

		ctx.Logger.Error("failed to confirm installation", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	ctx.WriteJSON(http.StatusOK, InstalledResponse{Success: true, RedirectURL: redirectURL})
}

// GETRedirect ends the session and sends the client on to its destination.
func GETRedirect(ctx *middlewares.AppContext) {
	destination, err := ctx.Tracker.Redirect(ctx, ctx.Client())
	if err != nil {
		if errors.Is(err, workflow.ErrAccessDenied) {
			middlewares.WriteAccessDenied(ctx, middlewares.DenyRedirect)
			return
		}

		ctx.Logger.Error("failed to complete workflow", "error", err)
		ctx.WriteText(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	ctx.Redirect(destination, http.StatusFound)
}
