package certificates

import (
	"crypto/sha256"
	"crypto/x509"
	"encoding/hex"
	"encoding/pem"
	"errors"
	"fmt"
	"time"
)

var ErrNotCertificate = errors.New("data is not an X.509 certificate")

// Details summarises the served certificate for logs and the upload response.
type Details struct {
	Subject           string    `json:"subject"`
	Issuer            string    `json:"issuer"`
	SerialNumber      string    `json:"serial_number"`
	NotBefore         time.Time `json:"not_before"`
	NotAfter          time.Time `json:"not_after"`
	IsCA              bool      `json:"is_ca"`
	FingerprintSHA256 string    `json:"fingerprint_sha256"`
}

// Inspect parses a DER or PEM encoded certificate. Only the first PEM block is considered.
func Inspect(data []byte) (*Details, error) {
	der := data
	if block, _ := pem.Decode(data); block != nil {
		if block.Type != "CERTIFICATE" {
			return nil, fmt.Errorf("%w: unexpected PEM block %q", ErrNotCertificate, block.Type)
		}
		der = block.Bytes
	}

	cert, err := x509.ParseCertificate(der)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotCertificate, err)
	}

	fingerprint := sha256.Sum256(cert.Raw)

	return &Details{
		Subject:           cert.Subject.String(),
		Issuer:            cert.Issuer.String(),
		SerialNumber:      cert.SerialNumber.String(),
		NotBefore:         cert.NotBefore,
		NotAfter:          cert.NotAfter,
		IsCA:              cert.IsCA,
		FingerprintSHA256: hex.EncodeToString(fingerprint[:]),
	}, nil
}

// Expired reports whether the certificate is no longer valid at now.
func (d *Details) Expired(now time.Time) bool {
	return now.After(d.NotAfter)
}
