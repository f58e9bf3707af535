package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"testing"

	"certportal/internal/models"
	"certportal/internal/testutil"

	"go.uber.org/mock/gomock"
)

func TestPOSTCertificateInstalled(t *testing.T) {
	t.Run("unbound session", func(t *testing.T) {
		tc := testutil.NewTestContextWithURL(t, http.MethodPost, "/certificate-installed")
		tc.ExpectUnboundSession()

		tc.CallHandler(POSTCertificateInstalled)

		tc.AssertStatus(t, http.StatusForbidden)
		tc.AssertContentType(t, "application/json")
	})

	t.Run("falls back to company website", func(t *testing.T) {
		tc := testutil.NewTestContextWithURL(t, http.MethodPost, "/certificate-installed")
		tc.WithUserAgent(iphoneUA)
		tc.ExpectBoundSession(4)
		tc.MockStorage.EXPECT().
			InsertCertificateAction(gomock.Any(), int64(4), models.ActionCertificateInstalled, "ios", testClientIP, gomock.Any()).
			Return(nil, nil)
		tc.MockStorage.EXPECT().MarkRedirectCompleted(gomock.Any(), int64(4)).Return(nil)
		tc.MockSession.EXPECT().GetRedirectURL(gomock.Any()).Return("")

		tc.CallHandler(POSTCertificateInstalled)

		tc.AssertStatus(t, http.StatusOK)
		tc.AssertJSONBool(t, "success", true)
		tc.AssertJSONString(t, "redirectUrl", "https://www.unam.edu.na/")
	})

	t.Run("captured redirect", func(t *testing.T) {
		tc := testutil.NewTestContextWithURL(t, http.MethodPost, "/certificate-installed")
		tc.ExpectBoundSession(4)
		tc.ExpectAudit(4, models.ActionCertificateInstalled)
		tc.MockStorage.EXPECT().MarkRedirectCompleted(gomock.Any(), int64(4)).Return(errors.New("database is locked"))
		tc.MockSession.EXPECT().GetRedirectURL(gomock.Any()).Return("http://example.com/next")

		tc.CallHandler(POSTCertificateInstalled)

		tc.AssertStatus(t, http.StatusOK)
		tc.AssertJSONString(t, "redirectUrl", "http://example.com/next")
		tc.AssertLogContains(t, slog.LevelError, "failed to mark redirect completed")
	})
}

func TestGETRedirect(t *testing.T) {
	t.Run("unbound session", func(t *testing.T) {
		tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/redirect")
		tc.ExpectUnboundSession()

		tc.CallHandler(GETRedirect)

		tc.AssertRedirect(t, http.StatusFound, "/")
	})

	t.Run("ends the session", func(t *testing.T) {
		tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/redirect")
		tc.ExpectBoundSession(6)
		tc.MockStorage.EXPECT().
			InsertCertificateAction(gomock.Any(), int64(6), models.ActionRedirectedToCompany, "web", gomock.Any(), gomock.Any()).
			Return(nil, nil)
		gomock.InOrder(
			tc.MockSession.EXPECT().GetRedirectURL(gomock.Any()).Return("https://example.com/landing"),
			tc.MockSession.EXPECT().Logout(gomock.Any()).Return(nil),
		)

		tc.CallHandler(GETRedirect)

		tc.AssertRedirect(t, http.StatusFound, "https://example.com/landing")
		tc.AssertLogContains(t, slog.LevelInfo, "workflow completed")
	})

	t.Run("session destroy failure", func(t *testing.T) {
		tc := testutil.NewTestContextWithURL(t, http.MethodGet, "/redirect")
		tc.ExpectBoundSession(6)
		tc.ExpectAudit(6, models.ActionRedirectedToCompany)
		tc.MockSession.EXPECT().GetRedirectURL(gomock.Any()).Return("")
		tc.MockSession.EXPECT().Logout(gomock.Any()).Return(errors.New("store unavailable"))

		tc.CallHandler(GETRedirect)

		tc.AssertStatus(t, http.StatusInternalServerError)
		tc.AssertLogContains(t, slog.LevelError, "failed to complete workflow")
	})
}
