package storage

import (
	"net"
	"net/url"
	"strconv"
	"strings"

	"certportal/internal/config"
)

// GetConnectionStringFromConfig returns the DSN for the configured driver. For postgres an
// explicit DSN wins, otherwise one is assembled from the individual fields.
func GetConnectionStringFromConfig(cfg *config.Config) string {
	if cfg.Storage.DSN != "" || cfg.Storage.Driver != config.StorageDriverPostgres {
		return cfg.Storage.DSN
	}

	u := &url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(cfg.Storage.Host, strconv.Itoa(cfg.Storage.Port)),
		Path:   "/" + cfg.Storage.Database,
	}

	if cfg.Storage.Username != "" {
		if cfg.Storage.Password != "" {
			u.User = url.UserPassword(cfg.Storage.Username, cfg.Storage.Password)
		} else {
			u.User = url.User(cfg.Storage.Username)
		}
	}

	if cfg.Storage.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": []string{cfg.Storage.SSLMode}}.Encode()
	}

	return u.String()
}

// rebind rewrites ? placeholders into the $n form postgres expects.
func rebind(driver, query string) string {
	if driver != config.StorageDriverPostgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)

	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}
