package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	_ "image/jpeg"
)

// Threshold separates ink from paper after grayscale conversion. Pixels at or
// above it become white, everything below becomes black.
const Threshold = 0x80

// Preprocess improves contrast for the local OCR engine: decode, grayscale,
// binary threshold, re-encode as PNG.
func Preprocess(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))

	if err != nil {
		return nil, err
	}

	bounds := src.Bounds()
	dst := image.NewGray(bounds)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			gray := color.GrayModel.Convert(src.At(x, y)).(color.Gray)

			if gray.Y >= Threshold {
				gray.Y = 0xff
			} else {
				gray.Y = 0x00
			}

			dst.SetGray(x, y, gray)
		}
	}

	var buf bytes.Buffer

	if err := png.Encode(&buf, dst); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
