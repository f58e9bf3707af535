package models

import "time"

// User is a client that has accepted the certificate at least once. Users are unique by
// (IPAddress, Username).
type User struct {
	ID                 int64     `json:"id"`
	Username           string    `json:"username"`
	IPAddress          string    `json:"ip_address"`
	UserAgent          string    `json:"user_agent"`
	CertificateTrusted bool      `json:"certificate_trusted"`
	RedirectCompleted  bool      `json:"redirect_completed"`
	CreatedAt          time.Time `json:"created_at"`
}

// UserStats is a User with a summary of its recorded actions.
type UserStats struct {
	User
	TotalActions int      `json:"total_actions"`
	Devices      []string `json:"devices"`
	Actions      []string `json:"actions"`
}
