package server

import (
	"time"

	"certportal/internal/auth"
	"certportal/internal/handlers"
	"certportal/internal/middlewares"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func setupRouter(ctx *middlewares.AppContext) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middlewares.ClientIPMiddleware(ctx.Config.Server.TrustProxyHeaders))
	//r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.MetricsMiddleware)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(ctx.SessionManager.LoadAndSave)

	r.Use(middlewares.AppContextMiddleware(ctx))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   ctx.Config.CORS.AllowedOrigins,
		AllowedMethods:   ctx.Config.CORS.AllowedMethods,
		AllowedHeaders:   ctx.Config.CORS.AllowedHeaders,
		ExposedHeaders:   ctx.Config.CORS.ExposedHeaders,
		AllowCredentials: ctx.Config.CORS.AllowCredentials,
		MaxAge:           ctx.Config.CORS.MaxAgeSeconds,
	}))

	r.Use(middleware.Compress(5))

	r.Get("/", ctx.HandlerFunc(handlers.GETPortal))
	r.Post("/accept-certificate", ctx.HandlerFunc(handlers.POSTAcceptCertificate))
	r.Get("/healthz", ctx.HandlerFunc(handlers.HandlerHealth))

	r.Group(func(r chi.Router) {
		r.Use(middlewares.RequireAcceptance(middlewares.DenyText))
		r.Get("/download-certificate", ctx.HandlerFunc(handlers.GETDownloadCertificate))
		r.Get("/install-ios", ctx.HandlerFunc(handlers.GETInstallIOS))
		r.Get("/install-windows", ctx.HandlerFunc(handlers.GETInstallWindows))
		r.Get("/install-android", ctx.HandlerFunc(handlers.GETInstallAndroid))
		r.Get("/auto-install", ctx.HandlerFunc(handlers.GETAutoInstall))
	})

	r.Group(func(r chi.Router) {
		r.Use(middlewares.RequireAcceptance(middlewares.DenyJSON))
		r.Post("/certificate-installed", ctx.HandlerFunc(handlers.POSTCertificateInstalled))
	})

	r.Group(func(r chi.Router) {
		r.Use(middlewares.RequireAcceptance(middlewares.DenyRedirect))
		r.Get("/instructions/{os}", ctx.HandlerFunc(handlers.GETInstructions))
		r.Get("/redirect", ctx.HandlerFunc(handlers.GETRedirect))
	})

	if ctx.Config.Admin.Enabled() {
		r.Route("/admin", func(r chi.Router) {
			r.Use(middlewares.RequireAdmin(auth.AdminCredentials{
				Username:     ctx.Config.Admin.Username,
				PasswordHash: ctx.Config.Admin.PasswordHash,
			}))
			r.Get("/stats", ctx.HandlerFunc(handlers.GETAdminStats))
			r.Get("/actions", ctx.HandlerFunc(handlers.GETAdminActions))
			r.Post("/upload-cert", ctx.HandlerFunc(handlers.POSTAdminUploadCertificate))
		})
	}

	return r
}

func setupDebugRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	//r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Mount("/debug", middleware.Profiler())

	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	return r
}
