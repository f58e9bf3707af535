package auth

type SessionKey string

var (
	SessionKeyUserID      SessionKey = "user_id"
	SessionKeyRedirectURL SessionKey = "redirect_url"
	SessionKeyAcceptedAt  SessionKey = "accepted_at"
)
