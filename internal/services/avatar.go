package services

import (
	"bytes"
	"fmt"
	"image"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
)

// AvatarMaxDim is the bounding box for profile images. Anything larger is
// downsampled to fit while preserving aspect ratio.
const AvatarMaxDim = 300

// NormalizeAvatar decodes an uploaded profile image and, when either
// dimension exceeds AvatarMaxDim, re-encodes it scaled to fit within the
// 300x300 box. Images already within bounds come back untouched, so their
// pixel data and dimensions stay exactly as uploaded.
func NormalizeAvatar(data []byte) ([]byte, bool, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, false, fmt.Errorf("failed to decode avatar image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() <= AvatarMaxDim && bounds.Dy() <= AvatarMaxDim {
		return data, false, nil
	}

	thumb := imaging.Fit(img, AvatarMaxDim, AvatarMaxDim, imaging.Lanczos)

	encFormat := imaging.JPEG
	if format == "png" {
		encFormat = imaging.PNG
	} else if format == "gif" {
		encFormat = imaging.GIF
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, encFormat); err != nil {
		return nil, false, fmt.Errorf("failed to encode avatar thumbnail: %w", err)
	}

	return buf.Bytes(), true, nil
}
