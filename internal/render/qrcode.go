package render

import (
	"image"

	"github.com/skip2/go-qrcode"
)

const defaultQRCodeSizePx = 96

// GenerateQRCodeImage returns a QR code of payload, sizePx wide, without a
// quiet zone. The badge encodes the wearer's handle so it can be scanned
// instead of typed. If payload is empty, it returns (nil, nil).
func GenerateQRCodeImage(payload string, sizePx int) (image.Image, error) {
	if payload == "" {
		return nil, nil
	}
	if sizePx <= 0 {
		sizePx = defaultQRCodeSizePx
	}

	qrCode, err := qrcode.New(payload, qrcode.Low)
	if err != nil {
		return nil, err
	}
	// The panel is small; the quiet zone would waste most of it.
	qrCode.DisableBorder = true

	return qrCode.Image(sizePx), nil
}
