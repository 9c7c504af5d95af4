package validators

import (
	"net"
	"strings"
)

// HasEmailShape is the cheap structural check used on form input.
func HasEmailShape(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]
	return strings.Contains(domain, ".") && !strings.ContainsAny(email, " \t")
}

// IsEmailDomainValid resolves the domain to weed out typos. DNS is
// only consulted after the shape check passes.
func IsEmailDomainValid(email string) bool {
	if !HasEmailShape(email) {
		return false
	}
	domain := email[strings.LastIndex(email, "@")+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}
	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}
	return false
}
