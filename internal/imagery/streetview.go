// internal/imagery/streetview.go
//
// Google Street View Static API provider.
//
// FetchImage builds a static Street View URL for the coordinates. When an
// API key is configured the metadata endpoint is queried first, so the
// sampler never hands out a URL with no panorama behind it; without a key
// the metadata check is skipped (the image endpoint rejects keyless
// requests anyway, so this path only matters in local development).

package imagery

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const (
	imageEndpoint    = "https://maps.googleapis.com/maps/api/streetview"
	metadataEndpoint = "https://maps.googleapis.com/maps/api/streetview/metadata"
	defaultSize      = "600x400"
)

// StreetView fetches imagery from the Street View Static API.
type StreetView struct {
	apiKey string
	size   string
	client *http.Client
}

// NewStreetView constructs a provider. An empty apiKey disables panorama
// verification.
func NewStreetView(apiKey string) *StreetView {
	return &StreetView{
		apiKey: apiKey,
		size:   defaultSize,
		client: &http.Client{Timeout: 5 * time.Second},
	}
}

// FetchImage returns a Street View image URL for the coordinates, after
// confirming via the metadata endpoint that a panorama exists there.
func (s *StreetView) FetchImage(ctx context.Context, lat, lng float64) (string, error) {
	loc := fmt.Sprintf("%.6f,%.6f", lat, lng)

	if s.apiKey != "" {
		if err := s.checkPanorama(ctx, loc); err != nil {
			return "", err
		}
	}

	q := url.Values{}
	q.Set("size", s.size)
	q.Set("location", loc)
	if s.apiKey != "" {
		q.Set("key", s.apiKey)
	}
	return imageEndpoint + "?" + q.Encode(), nil
}

// checkPanorama queries the metadata endpoint, which is free and returns a
// status string instead of image bytes.
func (s *StreetView) checkPanorama(ctx context.Context, loc string) error {
	q := url.Values{}
	q.Set("location", loc)
	q.Set("key", s.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, metadataEndpoint+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	var meta struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&meta); err != nil {
		return fmt.Errorf("%w: decode metadata: %v", ErrUnavailable, err)
	}
	if meta.Status != "OK" {
		return fmt.Errorf("%w: metadata status %s", ErrUnavailable, meta.Status)
	}
	return nil
}
