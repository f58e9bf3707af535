package handlers

import (
	"net/http"

	"certportal/internal/artifacts"
	"certportal/internal/device"
	"certportal/internal/middlewares"
	"certportal/internal/models"
	"certportal/internal/views"

	"github.com/go-chi/chi/v5"
)

const (
	contentTypeCertificate  = "application/pkix-cert"
	contentTypeMobileConfig = "application/x-apple-aspen-config"
	contentTypeScript       = "application/octet-stream"
)

// GETDownloadCertificate streams the raw certificate. The device query parameter is only used
// when the User-Agent gives nothing away.
func GETDownloadCertificate(ctx *middlewares.AppContext) {
	client := ctx.Client()
	deviceType := device.Resolve(client.UserAgent, ctx.Request.URL.Query().Get("device"))

	var certificate []byte
	err := ctx.Tracker.IssueArtifact(ctx, client, models.ActionCertificateDownloaded, deviceType, func(int64) error {
		var err error
		certificate, err = ctx.Certificates.Read()
		return err
	})
	if err != nil {
		writeArtifactError(ctx, "certificate", err, "Error reading certificate")
		return
	}

	ctx.WriteAttachment(contentTypeCertificate, ctx.Config.Certificate.DownloadName, certificate)
}

// GETInstallIOS returns a configuration profile that installs the certificate on iOS and macOS.
func GETInstallIOS(ctx *middlewares.AppContext) {
	profile := ctx.Config.Profile

	var document []byte
	err := ctx.Tracker.IssueArtifact(ctx, ctx.Client(), models.ActionIOSProfileDownloaded, device.IOS, func(int64) error {
		certificate, err := ctx.Certificates.Read()
		if err != nil {
			return err
		}

		document, err = artifacts.BuildMobileConfig(certificate, artifacts.MobileConfigOptions{
			DisplayName:         profile.DisplayName,
			Description:         profile.Description,
			Organization:        profile.Organization,
			Identifier:          profile.Identifier,
			CertificateFileName: ctx.Config.Certificate.DownloadName,
		})
		return err
	})
	if err != nil {
		writeArtifactError(ctx, "mobileconfig", err, "Error generating installation profile")
		return
	}

	ctx.WriteAttachment(contentTypeMobileConfig, profile.FileName, document)
}

// GETInstallWindows returns a PowerShell script that adds the certificate to the machine store.
func GETInstallWindows(ctx *middlewares.AppContext) {
	windows := ctx.Config.Windows

	var script []byte
	err := ctx.Tracker.IssueArtifact(ctx, ctx.Client(), models.ActionWindowsScriptDownloaded, device.Windows, func(int64) error {
		certificate, err := ctx.Certificates.Read()
		if err != nil {
			return err
		}

		script, err = artifacts.BuildWindowsInstaller(certificate, artifacts.WindowsInstallerOptions{
			StoreName:     windows.StoreName,
			StoreLocation: windows.StoreLocation,
		})
		return err
	})
	if err != nil {
		writeArtifactError(ctx, "powershell", err, "Error generating installation script")
		return
	}

	ctx.WriteAttachment(contentTypeScript, windows.FileName, script)
}

// GETInstallAndroid renders the guided Android page with intent links to the certificate.
func GETInstallAndroid(ctx *middlewares.AppContext) {
	certificateURL := absoluteURL(ctx, "/download-certificate?device=android")

	var data views.AndroidData
	err := ctx.Tracker.IssueArtifact(ctx, ctx.Client(), models.ActionAndroidInstallStarted, device.Android, func(userID int64) error {
		data = views.NewAndroidData(userID, certificateURL, ctx.Config.Server.CompanyWebsite, artifacts.BuildAndroidInstructions(certificateURL))
		return nil
	})
	if err != nil {
		writeArtifactError(ctx, "android", err, "Error preparing installation")
		return
	}

	ctx.Render(http.StatusOK, views.PageAndroidInstall, data)
}

// GETAutoInstall sends the client to the best installer for its platform.
func GETAutoInstall(ctx *middlewares.AppContext) {
	if _, err := ctx.Tracker.CurrentUser(ctx); err != nil {
		middlewares.WriteAccessDenied(ctx, middlewares.DenyText)
		return
	}

	deviceType := device.Classify(ctx.Request.UserAgent())

	switch deviceType {
	case device.IOS, device.MacOS:
		ctx.Redirect("/install-ios", http.StatusFound)
	case device.Android:
		ctx.Redirect("/install-android", http.StatusFound)
	case device.Windows:
		ctx.Redirect("/install-windows", http.StatusFound)
	default:
		ctx.Redirect("/download-certificate?device="+deviceType.String(), http.StatusFound)
	}
}

// GETInstructions renders the manual steps for one platform.
func GETInstructions(ctx *middlewares.AppContext) {
	userID, err := ctx.Tracker.CurrentUser(ctx)
	if err != nil {
		middlewares.WriteAccessDenied(ctx, middlewares.DenyRedirect)
		return
	}

	deviceType, ok := device.Parse(chi.URLParam(ctx.Request, "os"))
	if !ok || !ctx.Views.Has(views.InstructionsPage(deviceType)) {
		ctx.WriteText(http.StatusNotFound, "Instructions not found")
		return
	}

	ctx.Render(http.StatusOK, views.InstructionsPage(deviceType), views.InstructionsData{
		UserID:         userID,
		RedirectURL:    ctx.SessionManager.GetRedirectURL(ctx),
		CompanyWebsite: ctx.Config.Server.CompanyWebsite,
	})
}
