// Package qr renders the scannable code for a public profile URL and
// derives that URL from configuration or the inbound request.
package qr

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/skip2/go-qrcode"
)

// Size is the pixel width of the generated PNG.
const Size = 512

// Generate encodes the URL into a QR PNG. Deterministic for a given input
// and encoder version.
func Generate(url string) ([]byte, error) {
	png, err := qrcode.Encode(url, qrcode.Medium, Size)
	if err != nil {
		return nil, fmt.Errorf("failed to encode qr code: %w", err)
	}
	return png, nil
}

// BaseURL returns the public origin with no trailing slash: the configured
// override when present, otherwise the origin of the inbound request
// (respecting the proxy-set X-Forwarded-Proto).
func BaseURL(override string, req *http.Request) string {
	if override != "" {
		return strings.TrimRight(override, "/")
	}

	scheme := "http"
	if proto := req.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	} else if req.TLS != nil {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s", scheme, req.Host)
}

// ProfileURL is the shareable address of an agent's public page.
func ProfileURL(base, slug string) string {
	return fmt.Sprintf("%s/%s", strings.TrimRight(base, "/"), slug)
}
