package artifacts

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"
	"text/template"
)

type WindowsInstallerOptions struct {
	// StoreName is the X509Store name, e.g. Root or CA.
	StoreName string
	// StoreLocation is LocalMachine or CurrentUser.
	StoreLocation string
}

var DefaultWindowsInstallerOptions = WindowsInstallerOptions{
	StoreName:     "Root",
	StoreLocation: "LocalMachine",
}

func (o WindowsInstallerOptions) withDefaults() WindowsInstallerOptions {
	if o.StoreName == "" {
		o.StoreName = DefaultWindowsInstallerOptions.StoreName
	}
	if o.StoreLocation == "" {
		o.StoreLocation = DefaultWindowsInstallerOptions.StoreLocation
	}
	return o
}

type windowsInstallerData struct {
	WindowsInstallerOptions
	CertificateBase64 string
}

var windowsInstallerTemplate = template.Must(template.New("ps1").Funcs(template.FuncMap{
	"ps": escapePowerShell,
}).Parse(`# Fortinet CA Certificate Auto-Installer
# This script installs the Fortinet CA certificate into the Windows certificate store

Write-Host "Installing Fortinet CA Certificate..." -ForegroundColor Green

try {
    # Certificate data (Base64 encoded)
    $certData = @"
{{ .CertificateBase64 }}
"@

    # Convert to certificate object
    $certBytes = [Convert]::FromBase64String($certData)
    $cert = New-Object System.Security.Cryptography.X509Certificates.X509Certificate2(,$certBytes)

    # Open certificate store
    $store = New-Object System.Security.Cryptography.X509Certificates.X509Store("{{ ps .StoreName }}", "{{ ps .StoreLocation }}")
    $store.Open("ReadWrite")

    # Add certificate to store
    $store.Add($cert)
    $store.Close()

    Write-Host "Certificate installed successfully!" -ForegroundColor Green
    Write-Host "Subject: " $cert.Subject -ForegroundColor Yellow
    Write-Host "Issuer: " $cert.Issuer -ForegroundColor Yellow
    Write-Host "Thumbprint: " $cert.Thumbprint -ForegroundColor Yellow

    # Pause to show result
    Write-Host ""
    Write-Host "Press any key to continue..." -ForegroundColor Cyan
    $null = $Host.UI.RawUI.ReadKey("NoEcho,IncludeKeyDown")

} catch {
    Write-Host "Error installing certificate: $_" -ForegroundColor Red
    Write-Host "Please run PowerShell as Administrator and try again." -ForegroundColor Yellow

    # Pause to show error
    Write-Host ""
    Write-Host "Press any key to continue..." -ForegroundColor Cyan
    $null = $Host.UI.RawUI.ReadKey("NoEcho,IncludeKeyDown")
}
`))

// BuildWindowsInstaller renders a self-contained PowerShell script that adds certificate to
// the configured store. The output has no random parts: equal inputs give equal bytes.
func BuildWindowsInstaller(certificate []byte, opts WindowsInstallerOptions) ([]byte, error) {
	data := windowsInstallerData{
		WindowsInstallerOptions: opts.withDefaults(),
		CertificateBase64:       base64.StdEncoding.EncodeToString(certificate),
	}

	var buf bytes.Buffer
	if err := windowsInstallerTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render windows installer: %w", err)
	}

	return buf.Bytes(), nil
}

// escapePowerShell makes s safe inside a double-quoted PowerShell string.
func escapePowerShell(s string) string {
	r := strings.NewReplacer("`", "``", `"`, "`\"", "$", "`$")
	return r.Replace(s)
}
