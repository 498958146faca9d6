// Package media prepara las fotos de perfil: las achica, las re-codifica como
// JPEG y las sube al storage remoto (o las devuelve como data URI).
package media

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	DefaultMaxDimension = 800
	DefaultQuality      = 0.8
)

var ErrUnsupportedImage = errors.New("unsupported image")

// Compress escala img para que el lado mayor no supere maxDimension
// (conservando proporción) y la re-codifica como JPEG. quality va de 0 a 1.
func Compress(r io.Reader, maxDimension int, quality float64) ([]byte, error) {
	if maxDimension <= 0 {
		maxDimension = DefaultMaxDimension
	}
	if quality <= 0 || quality > 1 {
		quality = DefaultQuality
	}

	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}

	b := src.Bounds()
	w, h := targetSize(b.Dx(), b.Dy(), maxDimension)

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	// JPEG no tiene alfa: fondo blanco debajo de PNG/GIF transparentes.
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)

	var buf bytes.Buffer
	q := int(math.Round(quality * 100))
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: q}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

func targetSize(w, h, max int) (int, int) {
	if w <= max && h <= max {
		return w, h
	}
	if w > h {
		return max, int(math.Round(float64(h) * float64(max) / float64(w)))
	}
	return int(math.Round(float64(w) * float64(max) / float64(h))), max
}
