// Package imaging prepares photos for attachment: decode, downscale and
// re-encode as JPEG.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"io"

	// Registered decoders for attachments picked from disk.
	_ "image/gif"
	_ "image/png"

	"github.com/alexanderramin/workstats/internal/domain"
	"github.com/nfnt/resize"
)

const (
	// MaxEdge is the longest side of a compressed image, in pixels.
	MaxEdge = 1280
	// Quality is the JPEG quality used when re-encoding.
	Quality = 60
	// MIME is the type of every compressed attachment.
	MIME = "image/jpeg"
)

// ErrUnsupported indicates the input is not a decodable image.
var ErrUnsupported = errors.New("unsupported image format")

// Compress decodes r, scales it so neither side exceeds MaxEdge while
// keeping the aspect ratio, and re-encodes it as JPEG.
func Compress(r io.Reader) (domain.Attachment, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return domain.Attachment{}, fmt.Errorf("%w: %v", ErrUnsupported, err)
	}

	b := img.Bounds()
	w, h := uint(b.Dx()), uint(b.Dy())
	if w > MaxEdge || h > MaxEdge {
		img = resize.Thumbnail(MaxEdge, MaxEdge, img, resize.Bilinear)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: Quality}); err != nil {
		return domain.Attachment{}, fmt.Errorf("encoding jpeg: %w", err)
	}
	return domain.Attachment{MIME: MIME, Data: buf.Bytes()}, nil
}

// Dimensions returns the pixel size of an encoded attachment.
func Dimensions(a domain.Attachment) (int, int, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(a.Data))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrUnsupported, err)
	}
	return cfg.Width, cfg.Height, nil
}
