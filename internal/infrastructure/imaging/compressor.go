package imaging

import (
	"bytes"
	"image"
	"image/jpeg"
	_ "image/png"

	"packtrack/internal/usecase/interfaces"

	"github.com/rs/zerolog"
)

const defaultJPEGQuality = 70

// JPEGCompressor re-encodes captured photos as reduced-quality JPEG before
// upload. Strictly best-effort: anything that cannot be decoded, or that
// re-encodes larger than the input, passes through unchanged.

type JPEGCompressor struct {
	quality int
	log     zerolog.Logger
}

var _ interfaces.IImageCompressor = (*JPEGCompressor)(nil)

func NewJPEGCompressor(log zerolog.Logger) *JPEGCompressor {
	return &JPEGCompressor{quality: defaultJPEGQuality, log: log}
}

func (c *JPEGCompressor) Compress(img []byte) []byte {
	decoded, _, err := image.Decode(bytes.NewReader(img))
	if err != nil {
		c.log.Debug().Err(err).Msg("image decode failed, passing original through")
		return img
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, decoded, &jpeg.Options{Quality: c.quality}); err != nil {
		c.log.Debug().Err(err).Msg("jpeg encode failed, passing original through")
		return img
	}
	if buf.Len() >= len(img) {
		return img
	}
	return buf.Bytes()
}
