package storageapi

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpload_PostsObject(t *testing.T) {
	var gotPath, gotAuth, gotType string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		_, _ = w.Write([]byte(`{"Key":"dog-images/dogs/1.jpg"}`))
	}))
	defer srv.Close()

	c := New(srv.URL+"/", "service-key", "dog-images", time.Second)
	require.True(t, c.IsConfigured())
	require.NoError(t, c.Upload(context.Background(), "dogs/1.jpg", "image/jpeg", []byte{1, 2, 3}))

	assert.Equal(t, "/storage/v1/object/dog-images/dogs/1.jpg", gotPath)
	assert.Equal(t, "Bearer service-key", gotAuth)
	assert.Equal(t, "image/jpeg", gotType)
	assert.Equal(t, []byte{1, 2, 3}, gotBody)
	assert.Equal(t, srv.URL+"/storage/v1/object/public/dog-images/dogs/1.jpg", c.PublicURL("dogs/1.jpg"))
}

func TestUpload_NotConfigured(t *testing.T) {
	c := New("", "", "dog-images", 0)
	assert.ErrorIs(t, c.Upload(context.Background(), "dogs/1.jpg", "image/jpeg", nil), ErrNotConfigured)
}
