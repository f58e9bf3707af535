package middlewares

import (
	"net"
	"net/http"
	"strings"
)

// forwardingHeaders are consulted in order before X-Forwarded-For.
var forwardingHeaders = []string{"True-Client-IP", "X-Real-IP"}

// ClientIPMiddleware normalizes RemoteAddr to "IP:port". Proxy headers are only read when
// trustProxy is set, otherwise a client could pick the address recorded in the audit log.
func ClientIPMiddleware(trustProxy bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientIP := extractClientIP(r, trustProxy)

			if clientIP != "" {
				_, port, err := net.SplitHostPort(r.RemoteAddr)
				if err == nil && port != "" {
					r.RemoteAddr = net.JoinHostPort(clientIP, port)
				} else {
					r.RemoteAddr = net.JoinHostPort(clientIP, "0")
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ClientIP returns the address part of RemoteAddr.
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}

func extractClientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		for _, header := range forwardingHeaders {
			if ip := parseIP(r.Header.Get(header)); ip != "" {
				return ip
			}
		}

		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			first, _, _ := strings.Cut(xff, ",")
			if ip := parseIP(first); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}

	return parseIP(host)
}

func parseIP(s string) string {
	if parsed := net.ParseIP(strings.TrimSpace(s)); parsed != nil {
		return parsed.String()
	}

	return ""
}
