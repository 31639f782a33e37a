package xhttp

import (
	"net"
	"net/http"
	"strings"
)

// GetRequestIP is the client address used for rate limiting: the first hop
// of X-Forwarded-For when present, otherwise the peer address.
func GetRequestIP(r *http.Request) string {
	if xff := r.Header.Get(XForwardedFor); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return stripPort(strings.TrimSpace(first))
	}
	return stripPort(r.RemoteAddr)
}

func stripPort(addr string) string {
	if ip, _, err := net.SplitHostPort(addr); err == nil {
		return ip
	}
	return addr
}
