package middlewares

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"certportal/internal/certificates"
	"certportal/internal/config"
	"certportal/internal/storage"
	"certportal/internal/views"
	"certportal/internal/workflow"
)

type AppContext struct {
	context.Context
	Config         *config.Config
	Logger         *slog.Logger
	SessionManager SessionProvider
	Storage        storage.StorageProvider
	Certificates   certificates.CertificateProvider
	Tracker        *workflow.Tracker
	Views          *views.Renderer

	Request  *http.Request
	Response http.ResponseWriter
}

type contextKey string

const appContextKey contextKey = "appContext"

func AppContextMiddleware(baseCtx *AppContext) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestCtx := &AppContext{
				Context:        r.Context(),
				Config:         baseCtx.Config,
				Logger:         baseCtx.Logger,
				SessionManager: baseCtx.SessionManager,
				Storage:        baseCtx.Storage,
				Certificates:   baseCtx.Certificates,
				Tracker:        baseCtx.Tracker,
				Views:          baseCtx.Views,
				Request:        r,
				Response:       w,
			}

			ctx := context.WithValue(r.Context(), appContextKey, requestCtx)
			requestCtx.Context = ctx
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

type AppHandler func(*AppContext)

// HandlerFunc converts AppHandler to a http.HandlerFunc
func (ctx *AppContext) HandlerFunc(h AppHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		appCtx := GetAppContext(r)
		if appCtx == nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		// Route params and middleware values are attached after AppContextMiddleware ran.
		appCtx.Request = r
		appCtx.Response = w
		appCtx.Context = r.Context()

		h(appCtx)
	}
}

func NewAppContext(ctx context.Context, cfg *config.Config, logger *slog.Logger, sessionManager SessionProvider, storage storage.StorageProvider, certs certificates.CertificateProvider, tracker *workflow.Tracker, renderer *views.Renderer) *AppContext {
	return &AppContext{
		Context:        ctx,
		Config:         cfg,
		Logger:         logger,
		SessionManager: sessionManager,
		Storage:        storage,
		Certificates:   certs,
		Tracker:        tracker,
		Views:          renderer,
	}
}

func GetAppContext(r *http.Request) *AppContext {
	if ctx, ok := r.Context().Value(appContextKey).(*AppContext); ok {
		return ctx
	}

	return nil
}

// Client identifies the caller for workflow steps.
func (ctx *AppContext) Client() workflow.Client {
	return workflow.Client{
		IPAddress: ClientIP(ctx.Request),
		UserAgent: ctx.Request.UserAgent(),
	}
}

func (ctx *AppContext) Redirect(url string, status int) {
	http.Redirect(ctx.Response, ctx.Request, url, status)
}

func (ctx *AppContext) WriteJSON(status int, data interface{}) {
	ctx.Response.Header().Set("Content-Type", "application/json")
	ctx.Response.WriteHeader(status)
	if err := json.NewEncoder(ctx.Response).Encode(data); err != nil {
		ctx.Logger.Error("failed to marshal json", "error", err)
	}
}

func (ctx *AppContext) WriteText(status int, text string) {
	ctx.Response.Header().Set("Content-Type", "text/plain; charset=utf-8")
	ctx.Response.WriteHeader(status)
	if _, err := ctx.Response.Write([]byte(text)); err != nil {
		ctx.Logger.Error("failed to write response", "error", err)
	}
}

// WriteAttachment sends body as a download named filename.
func (ctx *AppContext) WriteAttachment(contentType, filename string, body []byte) {
	ctx.Response.Header().Set("Content-Type", contentType)
	ctx.Response.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	ctx.Response.WriteHeader(http.StatusOK)
	if _, err := ctx.Response.Write(body); err != nil {
		ctx.Logger.Error("failed to write attachment", "error", err, "filename", filename)
	}
}

// Render writes an HTML page, falling back to a 500 when the template fails.
func (ctx *AppContext) Render(status int, page views.Page, data any) {
	ctx.Response.Header().Set("Content-Type", "text/html; charset=utf-8")

	var buf bytes.Buffer
	if err := ctx.Views.Render(&buf, page, data); err != nil {
		ctx.Logger.Error("failed to render page", "error", err, "page", page)
		ctx.WriteText(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	ctx.Response.WriteHeader(status)
	if _, err := ctx.Response.Write(buf.Bytes()); err != nil {
		ctx.Logger.Error("failed to write response", "error", err)
	}
}

func (ctx *AppContext) SetJSONError(status int, message string) {
	ctx.WriteJSON(status, map[string]string{
		"error": message,
	})
}

func (ctx *AppContext) SetJSONStatus(status int, message string) {
	ctx.WriteJSON(status, map[string]string{
		"status": message,
	})
}
