package service

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// ProfileQRCode encodes the public profile URL for a user as a PNG.
func ProfileQRCode(baseURL string, userID int) ([]byte, error) {
	content := fmt.Sprintf("%s/api/users/%d", baseURL, userID)

	png, err := qrcode.Encode(content, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("error encoding qr code: %w", err)
	}
	return png, nil
}
