package metrics

const Namespace = "certportal"

// SubsystemSessions labels the redis session store collector.
const SubsystemSessions = "sessions"

const (
	AuditResultOK     = "ok"
	AuditResultFailed = "failed"
)
