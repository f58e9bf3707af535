package certificates

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRootCertificate(t *testing.T, notAfter time.Time) []byte {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	template := &x509.Certificate{
		SerialNumber:          big.NewInt(4242),
		Subject:               pkix.Name{CommonName: "Test Network CA", Organization: []string{"Example Org"}},
		NotBefore:             notAfter.Add(-365 * 24 * time.Hour),
		NotAfter:              notAfter,
		IsCA:                  true,
		BasicConstraintsValid: true,
		KeyUsage:              x509.KeyUsageCertSign,
	}

	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	require.NoError(t, err)

	return der
}

func TestInspect(t *testing.T) {
	notAfter := time.Now().Add(30 * 24 * time.Hour).Truncate(time.Second).UTC()
	der := newRootCertificate(t, notAfter)
	pemData := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})

	for name, data := range map[string][]byte{"der": der, "pem": pemData} {
		t.Run(name, func(t *testing.T) {
			details, err := Inspect(data)
			require.NoError(t, err)

			assert.Contains(t, details.Subject, "CN=Test Network CA")
			assert.Equal(t, details.Subject, details.Issuer)
			assert.Equal(t, "4242", details.SerialNumber)
			assert.True(t, details.IsCA)
			assert.True(t, details.NotAfter.Equal(notAfter))
			assert.Len(t, details.FingerprintSHA256, 64)
			assert.False(t, details.Expired(time.Now()))
		})
	}
}

func TestInspectExpired(t *testing.T) {
	details, err := Inspect(newRootCertificate(t, time.Now().Add(-time.Hour)))
	require.NoError(t, err)
	assert.True(t, details.Expired(time.Now()))
}

func TestInspectRejects(t *testing.T) {
	tests := map[string][]byte{
		"garbage":     []byte("definitely not a certificate"),
		"empty":       nil,
		"private key": pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: []byte{1, 2, 3}}),
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Inspect(data)
			assert.ErrorIs(t, err, ErrNotCertificate)
		})
	}
}
