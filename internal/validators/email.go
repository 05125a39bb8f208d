package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid reports whether the address's domain can receive
// mail: an MX record, or at least a resolvable host. Registration uses it
// to reject typo'd domains before the confirmation e-mail bounces.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	// Some small providers skip MX and accept mail on the A record host.
	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
