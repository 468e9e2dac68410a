package clientip

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// headers are consulted in order before falling back to RemoteAddr.
var headers = []string{
	"CF-Connecting-IP",
	"X-Forwarded-For",
	"X-Real-IP",
}

// GetIP returns the client's IP address, or "" when none can be parsed.
// For X-Forwarded-For the first valid entry wins.
//
// The headers are trusted as sent, so only use GetIP behind a proxy that
// overwrites them.
func GetIP(r *http.Request) string {
	for _, h := range headers {
		v := r.Header.Get(h)
		if v == "" {
			continue
		}
		for part := range strings.SplitSeq(v, ",") {
			if ip := parse(part); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parse(r.RemoteAddr)
	}
	return parse(host)
}

// parse validates s and returns its canonical form. IPv4-mapped IPv6
// addresses are unmapped so one client gets one key.
func parse(s string) string {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return ""
	}
	return addr.Unmap().WithZone("").String()
}
