package media

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dog-health-tracker/internal/ports/capabilities"
)

func pngOf(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, h/2, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func decodedSize(t *testing.T, b []byte) (int, int) {
	t.Helper()
	img, err := jpeg.Decode(bytes.NewReader(b))
	require.NoError(t, err)
	return img.Bounds().Dx(), img.Bounds().Dy()
}

func TestCompress_ScalesLongerSide(t *testing.T) {
	out, err := Compress(bytes.NewReader(pngOf(t, 1600, 800)), 800, 0.8)
	require.NoError(t, err)
	w, h := decodedSize(t, out)
	assert.Equal(t, 800, w)
	assert.Equal(t, 400, h)

	out, err = Compress(bytes.NewReader(pngOf(t, 600, 1200)), 800, 0.8)
	require.NoError(t, err)
	w, h = decodedSize(t, out)
	assert.Equal(t, 400, w)
	assert.Equal(t, 800, h)
}

func TestCompress_SmallImageKeepsSize(t *testing.T) {
	out, err := Compress(bytes.NewReader(pngOf(t, 300, 200)), 800, 0.8)
	require.NoError(t, err)
	w, h := decodedSize(t, out)
	assert.Equal(t, 300, w)
	assert.Equal(t, 200, h)
}

func TestCompress_RejectsGarbage(t *testing.T) {
	_, err := Compress(strings.NewReader("not an image"), 800, 0.8)
	assert.ErrorIs(t, err, ErrUnsupportedImage)
}

type fakeBlobs struct {
	paths []string
}

func (f *fakeBlobs) Upload(ctx context.Context, path, contentType string, data []byte) error {
	f.paths = append(f.paths, path)
	return nil
}

func (f *fakeBlobs) PublicURL(path string) string { return "https://cdn.test/" + path }

func TestIngest_LocalReturnsDataURI(t *testing.T) {
	blobs := &fakeBlobs{}
	ing := NewIngestor(capabilities.Never, blobs, nil)

	uri, err := ing.Ingest(context.Background(), bytes.NewReader(pngOf(t, 50, 50)))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(uri, "data:image/jpeg;base64,"))
	assert.Empty(t, blobs.paths)

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:image/jpeg;base64,"))
	require.NoError(t, err)
	w, _ := decodedSize(t, raw)
	assert.Equal(t, 50, w)
}

func TestIngest_RemoteUploadsUnderDogsPrefix(t *testing.T) {
	blobs := &fakeBlobs{}
	ing := NewIngestor(capabilities.BackendFunc(func() bool { return true }), blobs, nil)
	ing.now = func() time.Time { return time.UnixMilli(1767225600000) }

	url, err := ing.Ingest(context.Background(), bytes.NewReader(pngOf(t, 50, 50)))
	require.NoError(t, err)
	assert.Equal(t, []string{"dogs/1767225600000.jpg"}, blobs.paths)
	assert.Equal(t, "https://cdn.test/dogs/1767225600000.jpg", url)
}
