package media

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"time"

	"dog-health-tracker/internal/platform/logger"
	"dog-health-tracker/internal/ports/capabilities"
)

// BlobStore es el storage remoto de imágenes.
type BlobStore interface {
	Upload(ctx context.Context, path, contentType string, data []byte) error
	PublicURL(path string) string
}

type Ingestor struct {
	backend capabilities.Backend
	blobs   BlobStore
	log     logger.Logger
	now     func() time.Time

	MaxDimension int
	Quality      float64
}

// NewIngestor: blobs puede ser nil (siempre data URI).
func NewIngestor(backend capabilities.Backend, blobs BlobStore, log logger.Logger) *Ingestor {
	if backend == nil {
		backend = capabilities.Never
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Ingestor{
		backend:      backend,
		blobs:        blobs,
		log:          log,
		now:          time.Now,
		MaxDimension: DefaultMaxDimension,
		Quality:      DefaultQuality,
	}
}

// Ingest comprime la imagen y devuelve una URL para avatar_url: la pública del
// bucket si hay remoto, si no un data:image/jpeg;base64.
func (i *Ingestor) Ingest(ctx context.Context, r io.Reader) (string, error) {
	jpg, err := Compress(r, i.MaxDimension, i.Quality)
	if err != nil {
		return "", err
	}

	if i.blobs != nil && i.backend.RemoteConfigured() {
		path := fmt.Sprintf("dogs/%d.jpg", i.now().UnixMilli())
		if err := i.blobs.Upload(ctx, path, "image/jpeg", jpg); err != nil {
			return "", fmt.Errorf("upload %s: %w", path, err)
		}
		i.log.Info("image uploaded", map[string]any{"path": path, "bytes": len(jpg)})
		return i.blobs.PublicURL(path), nil
	}

	var buf bytes.Buffer
	buf.WriteString("data:image/jpeg;base64,")
	buf.WriteString(base64.StdEncoding.EncodeToString(jpg))
	return buf.String(), nil
}
