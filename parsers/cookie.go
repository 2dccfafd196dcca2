package parsers

import (
	"net/http"
	"strings"
	"time"
)

// ParseCookieString parses a raw Cookie header string copied from the
// browser's developer tools, e.g. "_session_id=abc; theme=dark", into
// cookies scoped to the fantia.jp domain.
//
// Malformed segments without a "=" are skipped.
func ParseCookieString(cookieStr string) []*http.Cookie {
	var cookies []*http.Cookie
	for _, segment := range strings.Split(cookieStr, ";") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}

		name, value, found := strings.Cut(segment, "=")
		name = strings.TrimSpace(name)
		if !found || name == "" {
			continue
		}

		cookies = append(cookies, &http.Cookie{
			Name:     name,
			Value:    strings.TrimSpace(value),
			Domain:   "fantia.jp",
			Path:     "/",
			Expires:  time.Now().Add(365 * 24 * time.Hour),
			SameSite: http.SameSiteLaxMode,
			Secure:   true,
			HttpOnly: true,
		})
	}
	return cookies
}
