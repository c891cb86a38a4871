// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package client provides an HTTP client for the menu API.
package client

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/NVIDIA/menu-record-service/pkg/defaults"
	menuerrors "github.com/NVIDIA/menu-record-service/pkg/errors"
	"github.com/NVIDIA/menu-record-service/pkg/menu"
)

const (
	// DefaultServerURL is used when no server URL is configured.
	DefaultServerURL = "http://localhost:5000"
	// DefaultUserAgent identifies the client to the server.
	DefaultUserAgent = "menuctl"

	maxIdleConns        = 100
	maxIdleConnsPerHost = 10
	maxErrorBodyBytes   = 64 << 10
)

// Option defines a configuration option for Client.
type Option func(*Client)

// Client talks to a menu API server.
type Client struct {
	baseURL   string
	userAgent string
	hc        *http.Client
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTimeout sets the total request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.hc.Timeout = timeout
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.hc = hc
		}
	}
}

// New creates a Client for the server at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultServerURL
	}

	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, menuerrors.Wrap(menuerrors.ErrCodeInvalidRequest,
			fmt.Sprintf("invalid server URL %q", baseURL), err)
	}

	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: DefaultUserAgent,
		hc:        &http.Client{
			Timeout:   defaults.HTTPClientTimeout,
			Transport: newTransport(),
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func newTransport() *http.Transport {
	return &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        maxIdleConns,
		MaxIdleConnsPerHost: maxIdleConnsPerHost,
		DialContext: (&net.Dialer{
			Timeout:   defaults.HTTPConnectTimeout,
			KeepAlive: defaults.HTTPKeepAlive,
		}).DialContext,
		TLSHandshakeTimeout:   defaults.HTTPTLSHandshakeTimeout,
		ResponseHeaderTimeout: defaults.HTTPResponseHeaderTimeout,
		IdleConnTimeout:       defaults.HTTPIdleConnTimeout,
		ExpectContinueTimeout: 1 * time.Second,
		ForceAttemptHTTP2:     true,
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
	}
}

// List returns all menu items.
func (c *Client) List(ctx context.Context) ([]menu.MenuItem, error) {
	var items []menu.MenuItem
	if err := c.do(ctx, http.MethodGet, menu.CollectionPath, nil, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []menu.MenuItem{}
	}
	return items, nil
}

// Get returns a single menu item.
func (c *Client) Get(ctx context.Context, id string) (*menu.MenuItem, error) {
	var item menu.MenuItem
	if err := c.do(ctx, http.MethodGet, itemPath(id), nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Create creates a menu item and returns it with its assigned id.
func (c *Client) Create(ctx context.Context, n menu.NewItem) (*menu.MenuItem, error) {
	var resp menu.ItemResponse
	if err := c.do(ctx, http.MethodPost, menu.CollectionPath, n, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Update sends patch and returns the updated item. ClearDescription is sent
// as an empty description so it takes effect under any server null policy.
func (c *Client) Update(ctx context.Context, id string, patch menu.Patch) (*menu.MenuItem, error) {
	var resp menu.ItemResponse
	if err := c.do(ctx, http.MethodPut, itemPath(id), patchBody(patch), &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Delete removes a menu item.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, itemPath(id), nil, nil)
}

func itemPath(id string) string {
	return menu.CollectionPath + "/" + url.PathEscape(id)
}

func patchBody(patch menu.Patch) map[string]any {
	body := map[string]any{}
	if patch.Name != nil {
		body["name"] = *patch.Name
	}
	if patch.Price != nil {
		body["price"] = *patch.Price
	}
	switch {
	case patch.ClearDescription:
		body["description"] = ""
	case patch.Description != nil:
		body["description"] = *patch.Description
	}
	return body
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return menuerrors.Wrap(menuerrors.ErrCodeInvalidRequest, "failed to encode request", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return menuerrors.Wrap(menuerrors.ErrCodeInvalidRequest, "failed to create request", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return menuerrors.Wrap(menuerrors.ErrCodeTimeout, "request timed out", err)
		}
		return menuerrors.Wrap(menuerrors.ErrCodeUnavailable,
			fmt.Sprintf("%s %s failed", method, path), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return responseError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return menuerrors.Wrap(menuerrors.ErrCodeInternal, "failed to decode response", err)
	}
	return nil
}

// apiError mirrors the server error body.
type apiError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func responseError(resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))

	var ae apiError
	if err := json.Unmarshal(data, &ae); err != nil || ae.Error == "" {
		ae.Error = resp.Status
	}

	se := menuerrors.NewWithContext(codeFromStatus(resp.StatusCode), ae.Error, map[string]any{
		"status": resp.StatusCode,
	})
	if ae.Details != "" {
		se.Cause = errors.New(ae.Details)
	}
	return se
}

// codeFromStatus maps an HTTP status back to an error code.
func codeFromStatus(status int) menuerrors.ErrorCode {
	switch status {
	case http.StatusBadRequest:
		return menuerrors.ErrCodeInvalidRequest
	case http.StatusNotFound:
		return menuerrors.ErrCodeNotFound
	case http.StatusMethodNotAllowed:
		return menuerrors.ErrCodeMethodNotAllowed
	case http.StatusTooManyRequests:
		return menuerrors.ErrCodeRateLimitExceeded
	case http.StatusServiceUnavailable:
		return menuerrors.ErrCodeUnavailable
	case http.StatusGatewayTimeout:
		return menuerrors.ErrCodeTimeout
	default:
		return menuerrors.ErrCodeInternal
	}
}
