package util

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidateURL checks that a configured endpoint URL is well-formed: it must
// parse and carry both a scheme and a host. Anything else fails with an error
// wrapping ErrInvalidURL, before any remote call is attempted.
func ValidateURL(s string) error {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("%w: %q (%v)", ErrInvalidURL, s, err)
	}

	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: %q - expected something like 'https://example.com'", ErrInvalidURL, s)
	}

	return nil
}
