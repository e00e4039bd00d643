package render

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
)

func EncodeJPEG(img image.Image, quality int) ([]byte, error) {
	var buf bytes.Buffer

	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer

	enc := png.Encoder{
		CompressionLevel: png.BestSpeed,
	}

	if err := enc.Encode(&buf, img); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
