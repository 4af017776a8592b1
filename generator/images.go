package generator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"net/http"
	"time"

	_ "image/gif"
	_ "image/png"

	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"content-planner/storage"
)

const (
	maxImageWidth = 1200
	jpegQuality   = 85
	maxImageBytes = 8 << 20
)

// ImagePersister downloads (or receives inline) a generated image,
// normalizes it to a bounded JPEG, and writes it to durable storage.
type ImagePersister struct {
	httpClient *http.Client
	store      storage.BlobStore
}

func NewImagePersister(store storage.BlobStore) *ImagePersister {
	return &ImagePersister{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		store:      store,
	}
}

// FetchAndPersist resolves a RemoteImage to stored bytes and returns the
// durable image reference.
func (p *ImagePersister) FetchAndPersist(ctx context.Context, remote *RemoteImage) (string, error) {
	data := remote.Data
	if len(data) == 0 {
		if remote.URL == "" {
			return "", errors.New("remote image has neither bytes nor URL")
		}
		fetched, err := p.fetch(ctx, remote.URL)
		if err != nil {
			return "", err
		}
		data = fetched
	}

	processed, err := normalizeJPEG(data)
	if err != nil {
		return "", err
	}

	objectName := fmt.Sprintf("articles/%s.jpg", uuid.New().String())
	ref, err := p.store.Put(ctx, objectName, processed, "image/jpeg")
	if err != nil {
		return "", fmt.Errorf("persist image: %w", err)
	}
	return ref, nil
}

func (p *ImagePersister) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch image: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch image: unexpected status %d", resp.StatusCode)
	}

	limited := io.LimitReader(resp.Body, maxImageBytes)
	return io.ReadAll(limited)
}

// normalizeJPEG decodes an image, downscales it to maxImageWidth if needed,
// and re-encodes it as JPEG.
func normalizeJPEG(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > maxImageWidth {
		newH := h * maxImageWidth / w
		dst := image.NewRGBA(image.Rect(0, 0, maxImageWidth, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}
