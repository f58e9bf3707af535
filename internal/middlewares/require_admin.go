package middlewares

import (
	"net/http"

	"certportal/internal/auth"
)

const adminRealm = `Basic realm="certportal admin", charset="UTF-8"`

// RequireAdmin checks HTTP basic credentials against the configured admin account.
func RequireAdmin(creds auth.AdminCredentials) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			appCtx := GetAppContext(r)
			if appCtx == nil {
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
			appCtx.Request = r
			appCtx.Response = w

			username, password, ok := r.BasicAuth()
			if !ok {
				w.Header().Set("WWW-Authenticate", adminRealm)
				appCtx.SetJSONError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
				return
			}

			valid, err := creds.Verify(username, password)
			if err != nil {
				appCtx.Logger.Error("failed to verify admin credentials", "error", err)
			}
			if !valid {
				appCtx.Logger.Warn("rejected admin credentials", "username", username, "ip", ClientIP(r))
				w.Header().Set("WWW-Authenticate", adminRealm)
				appCtx.SetJSONError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
