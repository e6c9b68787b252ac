// SPDX-License-Identifier: Apache-2.0

package sanity

import (
	"net/url"
	"path/filepath"
	"regexp"

	"github.com/joomcode/errorx"
)

var (
	ErrNamespace    = errorx.NewNamespace("sanity")
	ValidationError = ErrNamespace.NewType("validation")
)

var identifierPattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)

// ValidateIdentifier checks that s is a lowercase DNS-label style identifier.
// Network names, container names and firewall profiles all share this shape.
func ValidateIdentifier(s string) error {
	if s == "" {
		return ValidationError.New("identifier cannot be empty")
	}

	if len(s) > 63 {
		return ValidationError.New("identifier %q exceeds 63 characters", s)
	}

	if !identifierPattern.MatchString(s) {
		return ValidationError.New("identifier %q must match %s", s, identifierPattern.String())
	}

	return nil
}

// ValidatePort checks that p is a usable, non-privileged-agnostic TCP/UDP port.
func ValidatePort(p int) error {
	if p < 1 || p > 65535 {
		return ValidationError.New("port %d is out of range [1, 65535]", p)
	}

	return nil
}

// ValidateURLOptions controls URL validation behaviour.
type ValidateURLOptions struct {
	// AllowHTTP permits plain http URLs in addition to https.
	AllowHTTP bool
}

// ValidateURL checks that raw parses as an absolute http(s) URL with a host.
func ValidateURL(raw string, opts *ValidateURLOptions) error {
	if raw == "" {
		return ValidationError.New("url cannot be empty")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return ValidationError.Wrap(err, "invalid url: %s", raw)
	}

	if u.Host == "" {
		return ValidationError.New("url %q has no host", raw)
	}

	switch u.Scheme {
	case "https":
		return nil
	case "http":
		if opts != nil && opts.AllowHTTP {
			return nil
		}
		return ValidationError.New("url %q must use https", raw)
	default:
		return ValidationError.New("url %q has unsupported scheme %q", raw, u.Scheme)
	}
}

// ValidateAbsolutePath checks that p is a clean absolute filesystem path.
func ValidateAbsolutePath(p string) error {
	if p == "" {
		return ValidationError.New("path cannot be empty")
	}

	if !filepath.IsAbs(p) {
		return ValidationError.New("path %q must be absolute", p)
	}

	if filepath.Clean(p) != p {
		return ValidationError.New("path %q must be clean (no . or .. segments)", p)
	}

	return nil
}
