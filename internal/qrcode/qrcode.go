// Package qrcode renders join links for the table screen.
package qrcode

import (
	"fmt"
	"net/url"

	qr "github.com/skip2/go-qrcode"
)

const DefaultSize = 256

// JoinURL is the WebSocket address a player's device connects to.
func JoinURL(host, gameID string) string {
	return fmt.Sprintf("ws://%s/ws?game=%s&type=player", host, url.QueryEscape(gameID))
}

// Generate creates a QR code PNG image for content. size <= 0 uses DefaultSize.
func Generate(content string, size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultSize
	}
	return qr.Encode(content, qr.Medium, size)
}
