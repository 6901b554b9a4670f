package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	httpTimeout      = 8 * time.Second
	maxResponseBytes = 1 << 20 // 1MB
	userAgent        = "RFIDCubeKiosk/1.0"
)

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: httpTimeout}
}

// fetchJSON GETs url and decodes the body into v. header may be nil.
func fetchJSON(client *http.Client, url string, header map[string]string, v any) error {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	for k, val := range header {
		req.Header.Set(k, val)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
