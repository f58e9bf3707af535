package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"

	"certportal/internal/device"
	"certportal/internal/middlewares"
	"certportal/internal/views"
	"certportal/internal/workflow"
)

// maxAcceptBodyBytes bounds the accept request body.
const maxAcceptBodyBytes = 16 << 10

type AcceptRequest struct {
	Username string `json:"username"`
}

type AcceptResponse struct {
	Success bool  `json:"success"`
	UserID  int64 `json:"userId"`
}

// GETPortal renders the landing page and remembers where the client was headed.
func GETPortal(ctx *middlewares.AppContext) {
	client := ctx.Client()

	redirectTarget := ctx.Request.URL.Query().Get("redirect")
	if redirectTarget == "" {
		redirectTarget = ctx.Request.URL.Query().Get("url")
	}
	if redirectTarget != "" && !ctx.Tracker.CaptureRedirect(ctx, redirectTarget) {
		ctx.Logger.Debug("ignoring redirect target", "target", redirectTarget)
	}

	ctx.Render(http.StatusOK, views.PageCaptivePortal, views.PortalData{
		DeviceType:     device.Classify(client.UserAgent),
		ClientIP:       client.IPAddress,
		RedirectURL:    ctx.SessionManager.GetRedirectURL(ctx),
		CompanyWebsite: ctx.Config.Server.CompanyWebsite,
	})
}

// POSTAcceptCertificate records that the client trusts the certificate and binds the session.
func POSTAcceptCertificate(ctx *middlewares.AppContext) {
	username, err := readUsername(ctx)
	if err != nil {
		ctx.SetJSONError(http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := ctx.Tracker.Accept(ctx, ctx.Client(), username)
	if err != nil {
		if errors.Is(err, workflow.ErrUsernameTooLong) {
			ctx.SetJSONError(http.StatusBadRequest, "Username is too long")
			return
		}

		ctx.Logger.Error("failed to accept certificate", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "Failed to record certificate acceptance")
		return
	}

	ctx.WriteJSON(http.StatusOK, AcceptResponse{Success: true, UserID: user.ID})
}

// readUsername accepts a JSON or form encoded body. An empty body means no username.
func readUsername(ctx *middlewares.AppContext) (string, error) {
	ctx.Request.Body = http.MaxBytesReader(ctx.Response, ctx.Request.Body, maxAcceptBodyBytes)

	mediaType, _, _ := mime.ParseMediaType(ctx.Request.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		var body AcceptRequest
		if err := json.NewDecoder(ctx.Request.Body).Decode(&body); err != nil {
			if errors.Is(err, io.EOF) {
				return "", nil
			}
			return "", err
		}
		return body.Username, nil
	}

	if err := ctx.Request.ParseForm(); err != nil {
		return "", err
	}

	return ctx.Request.PostFormValue("username"), nil
}
