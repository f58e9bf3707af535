package handlers

import (
	"encoding/base64"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"certportal/internal/certificates"
	"certportal/internal/models"
	"certportal/internal/testutil"

	"go.uber.org/mock/gomock"
)

var testCertificate = []byte("0\x82\x03\x1e0\x82\x02\x06test-certificate")

func TestGETDownloadCertificate(t *testing.T) {
	t.Run("unbound session", func(t *testing.T) {
		tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/download-certificate")
		tc.ExpectUnboundSession()

		tc.CallHandler(GETDownloadCertificate)

		tc.AssertStatus(t, http.StatusForbidden)
		if !strings.Contains(tc.Response.Body.String(), "accept the certificate first") {
			t.Errorf("unexpected body %q", tc.Response.Body.String())
		}
	})

	t.Run("classified device wins over hint", func(t *testing.T) {
		tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/download-certificate?device=android")
		tc.WithUserAgent(windowsUA)
		tc.ExpectBoundSession(9)
		tc.MockCertificates.EXPECT().Read().Return(testCertificate, nil)
		tc.MockStorage.EXPECT().
			InsertCertificateAction(gomock.Any(), int64(9), models.ActionCertificateDownloaded, "windows", testClientIP, gomock.Any()).
			Return(nil, nil)

		tc.CallHandler(GETDownloadCertificate)

		tc.AssertStatus(t, http.StatusOK)
		tc.AssertContentType(t, contentTypeCertificate)
		if got := tc.Response.Header().Get("Content-Disposition"); got != `attachment; filename="Fortinet_CA_SSL.cer"` {
			t.Errorf("unexpected Content-Disposition %q", got)
		}
		if tc.Response.Body.String() != string(testCertificate) {
			t.Errorf("body does not match certificate")
		}
	})

	t.Run("hint used for unknown user agent", func(t *testing.T) {
		tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/download-certificate?device=android")
		tc.WithUserAgent(curlUA)
		tc.ExpectBoundSession(9)
		tc.MockCertificates.EXPECT().Read().Return(testCertificate, nil)
		tc.MockStorage.EXPECT().
			InsertCertificateAction(gomock.Any(), int64(9), models.ActionCertificateDownloaded, "android", gomock.Any(), gomock.Any()).
			Return(nil, nil)

		tc.CallHandler(GETDownloadCertificate)

		tc.AssertStatus(t, http.StatusOK)
	})

	t.Run("missing certificate", func(t *testing.T) {
		tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/download-certificate")
		tc.ExpectBoundSession(9)
		tc.MockCertificates.EXPECT().Read().Return(nil, certificates.ErrCertificateNotFound)

		tc.CallHandler(GETDownloadCertificate)

		tc.AssertStatus(t, http.StatusNotFound)
		if tc.Response.Body.String() != certificateNotFoundMessage {
			t.Errorf("unexpected body %q", tc.Response.Body.String())
		}
	})
}

func TestGETInstallIOS(t *testing.T) {
	t.Run("profile", func(t *testing.T) {
		tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/install-ios")
		tc.WithUserAgent(iphoneUA)
		tc.ExpectBoundSession(3)
		tc.MockCertificates.EXPECT().Read().Return(testCertificate, nil)
		tc.MockStorage.EXPECT().
			InsertCertificateAction(gomock.Any(), int64(3), models.ActionIOSProfileDownloaded, "ios", gomock.Any(), gomock.Any()).
			Return(nil, nil)

		tc.CallHandler(GETInstallIOS)

		tc.AssertStatus(t, http.StatusOK)
		tc.AssertContentType(t, contentTypeMobileConfig)
		if got := tc.Response.Header().Get("Content-Disposition"); !strings.Contains(got, "UNAM-Certificate.mobileconfig") {
			t.Errorf("unexpected Content-Disposition %q", got)
		}

		body := tc.Response.Body.String()
		if !strings.Contains(body, base64.StdEncoding.EncodeToString(testCertificate)) {
			t.Errorf("profile does not embed the certificate")
		}
		if !strings.Contains(body, "UNAM Network Certificate") {
			t.Errorf("profile does not carry the configured display name")
		}
	})

	t.Run("unreadable certificate", func(t *testing.T) {
		tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/install-ios")
		tc.ExpectBoundSession(3)
		tc.MockCertificates.EXPECT().Read().Return(nil, errors.New("permission denied"))

		tc.CallHandler(GETInstallIOS)

		tc.AssertStatus(t, http.StatusInternalServerError)
		if tc.Response.Body.String() != "Error generating installation profile" {
			t.Errorf("unexpected body %q", tc.Response.Body.String())
		}
	})

	t.Run("unbound session", func(t *testing.T) {
		tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/install-ios")
		tc.ExpectUnboundSession()

		tc.CallHandler(GETInstallIOS)

		tc.AssertStatus(t, http.StatusForbidden)
	})
}

func TestGETInstallWindows(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/install-windows")
	tc.WithUserAgent(windowsUA)
	tc.ExpectBoundSession(5)
	tc.MockCertificates.EXPECT().Read().Return(testCertificate, nil)
	tc.MockStorage.EXPECT().
		InsertCertificateAction(gomock.Any(), int64(5), models.ActionWindowsScriptDownloaded, "windows", gomock.Any(), gomock.Any()).
		Return(nil, nil)

	tc.CallHandler(GETInstallWindows)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertContentType(t, contentTypeScript)
	if got := tc.Response.Header().Get("Content-Disposition"); got != `attachment; filename="Install-UNAM-Certificate.ps1"` {
		t.Errorf("unexpected Content-Disposition %q", got)
	}
	if !strings.Contains(tc.Response.Body.String(), base64.StdEncoding.EncodeToString(testCertificate)) {
		t.Errorf("script does not embed the certificate")
	}
}

func TestGETInstallAndroid(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, http.MethodGet, "http://portal.local/install-android")
	tc.WithUserAgent(androidUA)
	tc.ExpectBoundSession(7)
	tc.ExpectAudit(7, models.ActionAndroidInstallStarted)

	tc.CallHandler(GETInstallAndroid)

	tc.AssertStatus(t, http.StatusOK)
	body := tc.Response.Body.String()
	if !strings.Contains(body, "intent://portal.local/download-certificate?device=android#Intent;scheme=https;") {
		t.Errorf("page does not carry the direct install intent")
	}
}

func TestGETAutoInstall(t *testing.T) {
	tests := []struct {
		name     string
		ua       string
		location string
	}{
		{name: "iphone", ua: iphoneUA, location: "/install-ios"},
		{name: "mac", ua: macUA, location: "/install-ios"},
		{name: "android", ua: androidUA, location: "/install-android"},
		{name: "windows", ua: windowsUA, location: "/install-windows"},
		{name: "unknown", ua: curlUA, location: "/download-certificate?device=unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/auto-install")
			tc.WithUserAgent(tt.ua)
			tc.ExpectBoundSession(1)

			tc.CallHandler(GETAutoInstall)

			tc.AssertRedirect(t, http.StatusFound, tt.location)
		})
	}

	t.Run("unbound session", func(t *testing.T) {
		tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/auto-install")
		tc.ExpectUnboundSession()

		tc.CallHandler(GETAutoInstall)

		tc.AssertStatus(t, http.StatusForbidden)
	})
}

func TestGETInstructions(t *testing.T) {
	t.Run("unbound session goes back to the portal", func(t *testing.T) {
		tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/instructions/windows")
		tc.WithURLParam("os", "windows")
		tc.ExpectUnboundSession()

		tc.CallHandler(GETInstructions)

		tc.AssertRedirect(t, http.StatusFound, "/")
	})

	for _, os := range []string{"windows", "macos", "ios", "android"} {
		t.Run(os, func(t *testing.T) {
			tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/instructions/"+os)
			tc.WithURLParam("os", os)
			tc.ExpectBoundSession(2)
			tc.MockSession.EXPECT().GetRedirectURL(gomock.Any()).Return("")

			tc.CallHandler(GETInstructions)

			tc.AssertStatus(t, http.StatusOK)
			tc.AssertContentType(t, "text/html; charset=utf-8")
		})
	}

	for _, os := range []string{"linux", "unknown", "", "Windows", "IOS", " android "} {
		t.Run("rejects "+os, func(t *testing.T) {
			tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/instructions/"+url.PathEscape(os))
			tc.WithURLParam("os", os)
			tc.ExpectBoundSession(2)

			tc.CallHandler(GETInstructions)

			tc.AssertStatus(t, http.StatusNotFound)
		})
	}
}
