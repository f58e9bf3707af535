package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"certportal/internal/artifacts"
	"certportal/internal/device"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

type Page string

const (
	PageCaptivePortal  Page = "captive-portal"
	PageAndroidInstall Page = "android-seamless"
)

// InstructionsPage is the manual installation page for t.
func InstructionsPage(t device.Type) Page {
	return Page("instructions-" + t.String())
}

// Renderer executes the embedded page templates.
type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &Renderer{templates: tmpl}, nil
}

// Has reports whether page exists.
func (r *Renderer) Has(page Page) bool {
	return r.templates.Lookup(string(page)+".tmpl") != nil
}

// Render writes page to w. Nothing is written if execution fails.
func (r *Renderer) Render(w io.Writer, page Page, data any) error {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, string(page)+".tmpl", data); err != nil {
		return fmt.Errorf("failed to render %s: %w", page, err)
	}

	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write %s: %w", page, err)
	}

	return nil
}

// PortalData feeds the landing page.
type PortalData struct {
	DeviceType     device.Type
	ClientIP       string
	RedirectURL    string
	CompanyWebsite string
}

// InstructionsData feeds the per platform instruction pages.
type InstructionsData struct {
	UserID         int64
	RedirectURL    string
	CompanyWebsite string
}

// AndroidData feeds the guided Android page. The intent links are marked safe so the template
// keeps their intent: scheme.
type AndroidData struct {
	UserID           int64
	CertificateURL   string
	CompanyWebsite   string
	DirectInstallURL template.URL
	SettingsURL      template.URL
	WifiSettingsURL  template.URL
	Steps            []string
}

func NewAndroidData(userID int64, certificateURL, companyWebsite string, instructions artifacts.AndroidInstructions) AndroidData {
	return AndroidData{
		UserID:           userID,
		CertificateURL:   certificateURL,
		CompanyWebsite:   companyWebsite,
		DirectInstallURL: template.URL(instructions.DirectInstallURL),
		SettingsURL:      template.URL(instructions.SettingsURL),
		WifiSettingsURL:  template.URL(instructions.WifiSettingsURL),
		Steps:            instructions.Steps,
	}
}
