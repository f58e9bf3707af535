package models

import "time"

type ActionKind string

const (
	ActionCertificateAccepted     ActionKind = "certificate_accepted"
	ActionCertificateDownloaded   ActionKind = "certificate_downloaded"
	ActionIOSProfileDownloaded    ActionKind = "ios_profile_downloaded"
	ActionWindowsScriptDownloaded ActionKind = "windows_script_downloaded"
	ActionAndroidInstallStarted   ActionKind = "android_install_started"
	ActionCertificateInstalled    ActionKind = "certificate_installed"
	ActionRedirectedToCompany     ActionKind = "redirected_to_company"
)

func (k ActionKind) String() string {
	return string(k)
}

// CertificateAction is an append-only audit record.
type CertificateAction struct {
	ID             int64      `json:"id"`
	UserID         int64      `json:"user_id"`
	Action         ActionKind `json:"action"`
	DeviceType     string     `json:"device_type"`
	IPAddress      string     `json:"ip_address"`
	BrowserName    string     `json:"browser_name"`
	BrowserVersion string     `json:"browser_version"`
	OSName         string     `json:"os_name"`
	OSVersion      string     `json:"os_version"`
	Timestamp      time.Time  `json:"timestamp"`
}

// ActionListing is a CertificateAction joined with the owning user. Username and UserIP are
// empty when the user row no longer exists.
type ActionListing struct {
	CertificateAction
	Username string `json:"username"`
	UserIP   string `json:"user_ip"`
}
