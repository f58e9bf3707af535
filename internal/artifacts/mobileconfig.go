package artifacts

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"howett.net/plist"
)

// MobileConfigOptions enumerates every value that BuildMobileConfig places in the profile.
// Zero values are replaced by DefaultMobileConfigOptions.
type MobileConfigOptions struct {
	DisplayName         string
	Description         string
	Organization        string
	Identifier          string
	CertificateFileName string
	Version             int
}

var DefaultMobileConfigOptions = MobileConfigOptions{
	DisplayName:         "Fortinet CA SSL Certificate",
	Description:         "Security certificate required for network access",
	Organization:        "University of Namibia",
	Identifier:          "na.edu.unam.fortinet-ca",
	CertificateFileName: "Fortinet_CA_SSL.cer",
	Version:             1,
}

func (o MobileConfigOptions) withDefaults() MobileConfigOptions {
	if o.DisplayName == "" {
		o.DisplayName = DefaultMobileConfigOptions.DisplayName
	}
	if o.Description == "" {
		o.Description = DefaultMobileConfigOptions.Description
	}
	if o.Organization == "" {
		o.Organization = DefaultMobileConfigOptions.Organization
	}
	if o.Identifier == "" {
		o.Identifier = DefaultMobileConfigOptions.Identifier
	}
	if o.CertificateFileName == "" {
		o.CertificateFileName = DefaultMobileConfigOptions.CertificateFileName
	}
	if o.Version <= 0 {
		o.Version = DefaultMobileConfigOptions.Version
	}
	return o
}

// configurationProfile is the top level dict of an unsigned .mobileconfig.
type configurationProfile struct {
	PayloadContent           []rootCertificatePayload `plist:"PayloadContent"`
	PayloadDescription       string                   `plist:"PayloadDescription"`
	PayloadDisplayName       string                   `plist:"PayloadDisplayName"`
	PayloadIdentifier        string                   `plist:"PayloadIdentifier"`
	PayloadRemovalDisallowed bool                     `plist:"PayloadRemovalDisallowed"`
	PayloadType              string                   `plist:"PayloadType"`
	PayloadUUID              string                   `plist:"PayloadUUID"`
	PayloadVersion           int                      `plist:"PayloadVersion"`
	PayloadOrganization      string                   `plist:"PayloadOrganization"`
}

type rootCertificatePayload struct {
	PayloadCertificateFileName string `plist:"PayloadCertificateFileName"`
	PayloadContent             []byte `plist:"PayloadContent"`
	PayloadDescription         string `plist:"PayloadDescription"`
	PayloadDisplayName         string `plist:"PayloadDisplayName"`
	PayloadIdentifier          string `plist:"PayloadIdentifier"`
	PayloadType                string `plist:"PayloadType"`
	PayloadUUID                string `plist:"PayloadUUID"`
	PayloadVersion             int    `plist:"PayloadVersion"`
}

const (
	payloadTypeConfiguration = "Configuration"
	payloadTypeRoot          = "com.apple.security.root"
)

// newUUID is swapped in tests.
var newUUID = uuid.NewRandom

// BuildMobileConfig renders an unsigned Apple configuration profile that installs certificate
// as a trusted root. Every call generates a fresh profile UUID and payload UUID, so two profiles
// built from the same inputs are byte-distinct.
func BuildMobileConfig(certificate []byte, opts MobileConfigOptions) ([]byte, error) {
	profileUUID, err := newUUID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate profile uuid: %w", err)
	}

	payloadUUID, err := newUUID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate payload uuid: %w", err)
	}

	o := opts.withDefaults()

	profile := configurationProfile{
		PayloadContent: []rootCertificatePayload{{
			PayloadCertificateFileName: o.CertificateFileName,
			PayloadContent:             certificate,
			PayloadDescription:         o.Description,
			PayloadDisplayName:         o.DisplayName,
			PayloadIdentifier:          o.Identifier + ".certificate",
			PayloadType:                payloadTypeRoot,
			PayloadUUID:                strings.ToUpper(payloadUUID.String()),
			PayloadVersion:             o.Version,
		}},
		PayloadDescription:  o.Description,
		PayloadDisplayName:  o.DisplayName,
		PayloadIdentifier:   o.Identifier,
		PayloadType:         payloadTypeConfiguration,
		PayloadUUID:         strings.ToUpper(profileUUID.String()),
		PayloadVersion:      o.Version,
		PayloadOrganization: o.Organization,
	}

	var buf bytes.Buffer
	enc := plist.NewEncoderForFormat(&buf, plist.XMLFormat)
	enc.Indent("    ")
	if err := enc.Encode(profile); err != nil {
		return nil, fmt.Errorf("failed to encode mobile config: %w", err)
	}

	return buf.Bytes(), nil
}
