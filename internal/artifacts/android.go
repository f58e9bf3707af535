package artifacts

import (
	"strings"
)

const (
	androidSecuritySettingsURL = "intent://settings/#Intent;action=android.settings.SECURITY_SETTINGS;end"
	androidWifiSettingsURL     = "intent://settings/#Intent;action=android.settings.WIFI_SETTINGS;end"
)

var androidInstallSteps = []string{
	"Download certificate automatically starting...",
	"Open Downloads folder or notification",
	"Tap the certificate file",
	`Name it "Fortinet CA" and select "VPN and apps"`,
	"Tap OK to install",
}

type AndroidInstructions struct {
	DirectInstallURL string   `json:"directInstallUrl"`
	SettingsURL      string   `json:"settingsUrl"`
	WifiSettingsURL  string   `json:"wifiSettingsUrl"`
	Steps            []string `json:"steps"`
}

// BuildAndroidInstructions wraps certificateURL in an intent URL that asks Android to open it
// in a browsable HTTPS view, and returns it with the settings intents and the manual steps.
func BuildAndroidInstructions(certificateURL string) AndroidInstructions {
	target := strings.TrimPrefix(certificateURL, "https://")
	target = strings.TrimPrefix(target, "http://")

	steps := make([]string, len(androidInstallSteps))
	copy(steps, androidInstallSteps)

	return AndroidInstructions{
		DirectInstallURL: "intent://" + target + "#Intent;scheme=https;action=android.intent.action.VIEW;category=android.intent.category.BROWSABLE;end",
		SettingsURL:      androidSecuritySettingsURL,
		WifiSettingsURL:  androidWifiSettingsURL,
		Steps:            steps,
	}
}
