package middlewares

import (
	"net/http"
)

// DeniedResponse selects how a request without an accepted certificate is turned away.
type DeniedResponse int

const (
	DenyText DeniedResponse = iota
	DenyJSON
	DenyRedirect
)

const accessDeniedMessage = "Access denied. Please accept the certificate first."

// RequireAcceptance only lets requests through whose session is bound to a user.
func RequireAcceptance(deny DeniedResponse) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			appCtx := GetAppContext(r)
			if appCtx == nil {
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}

			if _, ok := appCtx.SessionManager.GetUserID(r.Context()); ok {
				next.ServeHTTP(w, r)
				return
			}

			appCtx.Request = r
			appCtx.Response = w
			WriteAccessDenied(appCtx, deny)
		})
	}
}

func WriteAccessDenied(ctx *AppContext, deny DeniedResponse) {
	switch deny {
	case DenyJSON:
		ctx.SetJSONError(http.StatusForbidden, accessDeniedMessage)
	case DenyRedirect:
		ctx.Redirect("/", http.StatusFound)
	default:
		ctx.WriteText(http.StatusForbidden, accessDeniedMessage)
	}
}
