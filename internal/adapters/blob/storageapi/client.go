package storageapi

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"dog-health-tracker/internal/platform/httpclient"
)

var ErrNotConfigured = errors.New("storage api not configured")

// Client habla con un storage de objetos compatible con la API de Supabase
// Storage: POST /storage/v1/object/<bucket>/<path>.
type Client struct {
	baseURL    string
	serviceKey string
	bucket     string
	http       *httpclient.Client
}

func New(baseURL, serviceKey, bucket string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		serviceKey: strings.TrimSpace(serviceKey),
		bucket:     strings.TrimSpace(bucket),
		http:       httpclient.New(timeout),
	}
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.baseURL != "" && c.serviceKey != "" && c.bucket != ""
}

func (c *Client) Upload(ctx context.Context, path, contentType string, data []byte) error {
	if !c.IsConfigured() {
		return ErrNotConfigured
	}
	_, err := c.http.DoRaw(ctx, http.MethodPost, c.objectURL("object", path), contentType, map[string]string{
		"Authorization": "Bearer " + c.serviceKey,
		"apikey":        c.serviceKey,
		"x-upsert":      "false",
	}, data)
	return err
}

func (c *Client) PublicURL(path string) string {
	return c.objectURL("object/public", path)
}

func (c *Client) objectURL(kind, path string) string {
	segs := strings.Split(strings.TrimLeft(path, "/"), "/")
	for i, s := range segs {
		segs[i] = url.PathEscape(s)
	}
	return c.baseURL + "/storage/v1/" + kind + "/" + url.PathEscape(c.bucket) + "/" + strings.Join(segs, "/")
}
