package device

import (
	"strings"
)

// Type is the coarse platform a client is installing the certificate on.
type Type string

const (
	IOS     Type = "ios"
	MacOS   Type = "macos"
	Android Type = "android"
	Windows Type = "windows"
	Unknown Type = "unknown"
)

// Types lists every known platform, excluding Unknown.
var Types = []Type{Windows, MacOS, IOS, Android}

func (t Type) String() string {
	return string(t)
}

// Classify maps a User-Agent header to a Type. Matching is case-insensitive and checked
// in order android, iphone/ipad, mac, windows; the first hit wins.
func Classify(userAgent string) Type {
	ua := strings.ToLower(userAgent)

	switch {
	case strings.Contains(ua, "android"):
		return Android
	case strings.Contains(ua, "iphone"), strings.Contains(ua, "ipad"):
		return IOS
	case strings.Contains(ua, "mac"):
		return MacOS
	case strings.Contains(ua, "windows"):
		return Windows
	default:
		return Unknown
	}
}

// Parse returns the Type named exactly by s. Unknown, unrecognized and differently cased
// names report false.
func Parse(s string) (Type, bool) {
	t := Type(s)
	for _, known := range Types {
		if t == known {
			return t, true
		}
	}

	return Unknown, false
}

// Resolve prefers the classified type and only falls back to a client supplied hint when
// classification gives Unknown. An unusable hint leaves the result Unknown.
func Resolve(userAgent, hint string) Type {
	if t := Classify(userAgent); t != Unknown {
		return t
	}

	if t, ok := Parse(hint); ok {
		return t
	}

	return Unknown
}
