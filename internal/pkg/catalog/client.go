/*
Copyright 2025 The StreamSpace contributors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// DefaultAPIURL is the LinuxServer.io image catalog endpoint.
const DefaultAPIURL = "https://api.linuxserver.io/api/v1/images"

// Client fetches the image catalog from the remote API. The full catalog is
// assumed to fit in one response; there is no pagination and no caching.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient returns a Client against the default API endpoint.
func NewClient() *Client {
	return NewClientWithURL(DefaultAPIURL)
}

// NewClientWithURL returns a Client against a custom endpoint.
func NewClientWithURL(url string) *Client {
	return &Client{
		url:        url,
		httpClient: http.DefaultClient,
	}
}

// FetchImages performs a single GET against the catalog endpoint and decodes
// the `images` array. Any network, status, or parse failure is returned as-is;
// the caller treats it as fatal. Never retried.
func (c *Client) FetchImages(ctx context.Context) ([]Entry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch image catalog from %s: %w", c.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %q from %s", resp.Status, c.url)
	}

	var payload Catalog
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to parse image catalog response: %w", err)
	}

	return payload.Images, nil
}
