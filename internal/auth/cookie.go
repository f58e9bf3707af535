package auth

import (
	"bufio"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/gorilla/securecookie"
)

// LoadAndSave loads the session named by the signed cookie on the request and commits it,
// writing a fresh signed cookie, before the first byte of the response. A cookie whose
// signature does not verify is treated as absent.
func (s *SessionManager) LoadAndSave(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "Cookie")

		var token string
		if cookie, err := r.Cookie(s.Cookie.Name); err == nil {
			if err := s.codec.Decode(s.Cookie.Name, cookie.Value, &token); err != nil {
				token = ""
				s.logger.Debug("ignoring session cookie with invalid signature", "remote_addr", r.RemoteAddr, "error", err)
			}
		}

		ctx, err := s.Load(r.Context(), token)
		if err != nil {
			s.logger.Error("failed to load session", "error", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		sr := r.WithContext(ctx)
		sw := &sessionWriter{ResponseWriter: w, request: sr, manager: s}

		next.ServeHTTP(sw, sr)

		if !sw.committed {
			sw.commit()
		}
	})
}

func (s *SessionManager) commitAndWriteCookie(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	switch s.Status(ctx) {
	case scs.Modified:
		token, expiry, err := s.Commit(ctx)
		if err != nil {
			return err
		}
		return s.writeCookie(w, token, expiry)
	case scs.Destroyed:
		return s.writeCookie(w, "", time.Time{})
	}

	return nil
}

func (s *SessionManager) writeCookie(w http.ResponseWriter, token string, expiry time.Time) error {
	cookie := &http.Cookie{
		Name:     s.Cookie.Name,
		Path:     s.Cookie.Path,
		Domain:   s.Cookie.Domain,
		Secure:   s.Cookie.Secure,
		HttpOnly: s.Cookie.HttpOnly,
		SameSite: s.Cookie.SameSite,
	}

	if token == "" {
		cookie.Expires = time.Unix(1, 0)
		cookie.MaxAge = -1
	} else {
		value, err := s.codec.Encode(s.Cookie.Name, token)
		if err != nil {
			return fmt.Errorf("failed to sign session cookie: %w", err)
		}
		cookie.Value = value
		if s.Cookie.Persist {
			cookie.Expires = time.Unix(expiry.Unix()+1, 0)
			cookie.MaxAge = int(time.Until(expiry).Seconds() + 1)
		}
	}

	w.Header().Add("Set-Cookie", cookie.String())
	w.Header().Add("Cache-Control", `no-cache="Set-Cookie"`)
	return nil
}

// newCookieCodec signs (but does not encrypt) the scs token carried in the cookie.
func newCookieCodec(secret []byte, lifetime time.Duration) *securecookie.SecureCookie {
	codec := securecookie.New(secret, nil)
	codec.SetSerializer(securecookie.JSONEncoder{})
	codec.MaxAge(int(lifetime.Seconds()))
	return codec
}

// sessionWriter commits the session as soon as the handler starts its response, since
// cookies cannot be added once the header is written.
type sessionWriter struct {
	http.ResponseWriter
	request   *http.Request
	manager   *SessionManager
	committed bool
}

func (sw *sessionWriter) commit() {
	sw.committed = true
	if err := sw.manager.commitAndWriteCookie(sw.ResponseWriter, sw.request); err != nil {
		sw.manager.logger.Error("failed to commit session", "error", err)
	}
}

func (sw *sessionWriter) WriteHeader(code int) {
	if !sw.committed {
		sw.commit()
	}
	sw.ResponseWriter.WriteHeader(code)
}

func (sw *sessionWriter) Write(b []byte) (int, error) {
	if !sw.committed {
		sw.commit()
	}
	return sw.ResponseWriter.Write(b)
}

func (sw *sessionWriter) Unwrap() http.ResponseWriter {
	return sw.ResponseWriter
}

func (sw *sessionWriter) Flush() {
	if !sw.committed {
		sw.commit()
	}
	if f, ok := sw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (sw *sessionWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	if h, ok := sw.ResponseWriter.(http.Hijacker); ok {
		return h.Hijack()
	}
	return nil, nil, errors.New("hijacking not supported")
}
