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

package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/utils/ptr"

	menuerrors "github.com/NVIDIA/menu-record-service/pkg/errors"
	"github.com/NVIDIA/menu-record-service/pkg/menu"
	"github.com/NVIDIA/menu-record-service/pkg/server"
	"github.com/NVIDIA/menu-record-service/pkg/store/memory"
)

// newTestServer serves the real menu handlers over an in-memory store.
func newTestServer(t *testing.T, opts ...menu.HandlerOption) *Client {
	t.Helper()
	h := menu.NewHandler(menu.NewService(memory.New()), opts...)
	s := server.New(server.WithHandler(h.Routes()))

	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)

	c, err := New(ts.URL)
	require.NoError(t, err)
	return c
}

func TestNew(t *testing.T) {
	c, err := New("")
	require.NoError(t, err)
	assert.Equal(t, DefaultServerURL, c.baseURL)
	assert.Equal(t, DefaultUserAgent, c.userAgent)

	c, err = New("http://example.com:8080/", WithUserAgent("test"), WithTimeout(time.Second))
	require.NoError(t, err)
	assert.Equal(t, "http://example.com:8080", c.baseURL)
	assert.Equal(t, "test", c.userAgent)
	assert.Equal(t, time.Second, c.hc.Timeout)

	hc := &http.Client{}
	c, err = New("http://example.com", WithHTTPClient(hc))
	require.NoError(t, err)
	assert.Same(t, hc, c.hc)

	_, err = New("not a url")
	assert.True(t, menuerrors.IsCode(err, menuerrors.ErrCodeInvalidRequest))
}

func TestClientLifecycle(t *testing.T) {
	ctx := context.Background()
	c := newTestServer(t)

	items, err := c.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	created, err := c.Create(ctx, menu.NewItem{Name: "Burger", Description: "Beef", Price: ptr.To(9.99)})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEmpty(t, created.ID)

	got, err := c.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	updated, err := c.Update(ctx, created.ID, menu.Patch{Price: ptr.To(10.99)})
	require.NoError(t, err)
	assert.Equal(t, "Burger", updated.Name)
	assert.Equal(t, 10.99, updated.Price)

	items, err = c.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	require.NoError(t, c.Delete(ctx, created.ID))

	err = c.Delete(ctx, created.ID)
	require.Error(t, err)
	assert.True(t, menuerrors.IsCode(err, menuerrors.ErrCodeNotFound))

	var se *menuerrors.StructuredError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, menu.MsgNotFound, se.Message)
	assert.Equal(t, http.StatusNotFound, se.Context["status"])
}

func TestClientValidationError(t *testing.T) {
	c := newTestServer(t)

	_, err := c.Create(context.Background(), menu.NewItem{Name: "Burger"})
	require.Error(t, err)
	assert.True(t, menuerrors.IsCode(err, menuerrors.ErrCodeInvalidRequest))

	var se *menuerrors.StructuredError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, menu.MsgRequired, se.Message)
}

func TestClientClearDescription(t *testing.T) {
	policies := []menu.NullPolicy{menu.NullPolicyIgnore, menu.NullPolicyClear}

	for _, policy := range policies {
		t.Run(string(policy), func(t *testing.T) {
			ctx := context.Background()
			c := newTestServer(t, menu.WithNullPolicy(policy))

			created, err := c.Create(ctx, menu.NewItem{Name: "Burger", Description: "Beef", Price: ptr.To(9.99)})
			require.NoError(t, err)

			updated, err := c.Update(ctx, created.ID, menu.Patch{ClearDescription: true})
			require.NoError(t, err)
			assert.Empty(t, updated.Description)

			got, err := c.Get(ctx, created.ID)
			require.NoError(t, err)
			assert.Empty(t, got.Description)
			assert.Equal(t, "Burger", got.Name)
			assert.Equal(t, 9.99, got.Price)
		})
	}
}

func TestPatchBody(t *testing.T) {
	assert.Equal(t, map[string]any{}, patchBody(menu.Patch{}))
	assert.Equal(t, map[string]any{"name": "a", "price": 1.5, "description": "d"},
		patchBody(menu.Patch{Name: ptr.To("a"), Price: ptr.To(1.5), Description: ptr.To("d")}))
	assert.Equal(t, map[string]any{"description": ""},
		patchBody(menu.Patch{Description: ptr.To("d"), ClearDescription: true}))
}

func TestResponseErrorDetails(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"error":   "Server error",
			"details": "connection refused",
		})
	}))
	defer ts.Close()

	c, err := New(ts.URL)
	require.NoError(t, err)

	_, err = c.List(context.Background())
	require.Error(t, err)
	assert.True(t, menuerrors.IsCode(err, menuerrors.ErrCodeInternal))
	assert.Contains(t, err.Error(), "Server error")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestResponseErrorNonJSON(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, "<html>bad gateway</html>")
	}))
	defer ts.Close()

	c, err := New(ts.URL)
	require.NoError(t, err)

	_, err = c.Get(context.Background(), "abc")
	require.Error(t, err)

	var se *menuerrors.StructuredError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "502 Bad Gateway", se.Message)
}

func TestClientRequestHeaders(t *testing.T) {
	var got http.Header
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"message":"ok","data":{"id":"1","name":"a","price":1}}`)
	}))
	defer ts.Close()

	c, err := New(ts.URL, WithUserAgent("menuctl-test"))
	require.NoError(t, err)

	_, err = c.Create(context.Background(), menu.NewItem{Name: "a", Price: ptr.To(1.0)})
	require.NoError(t, err)
	assert.Equal(t, "menuctl-test", got.Get("User-Agent"))
	assert.Equal(t, "application/json", got.Get("Content-Type"))
}

func TestClientUnavailable(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	c, err := New(url)
	require.NoError(t, err)

	_, err = c.List(context.Background())
	require.Error(t, err)
	assert.True(t, menuerrors.IsCode(err, menuerrors.ErrCodeUnavailable))
}

func TestCodeFromStatus(t *testing.T) {
	tests := map[int]menuerrors.ErrorCode{
		http.StatusBadRequest:          menuerrors.ErrCodeInvalidRequest,
		http.StatusNotFound:            menuerrors.ErrCodeNotFound,
		http.StatusMethodNotAllowed:    menuerrors.ErrCodeMethodNotAllowed,
		http.StatusTooManyRequests:     menuerrors.ErrCodeRateLimitExceeded,
		http.StatusServiceUnavailable:  menuerrors.ErrCodeUnavailable,
		http.StatusGatewayTimeout:      menuerrors.ErrCodeTimeout,
		http.StatusInternalServerError: menuerrors.ErrCodeInternal,
		http.StatusTeapot:              menuerrors.ErrCodeInternal,
	}

	for status, want := range tests {
		assert.Equal(t, want, codeFromStatus(status), "status %d", status)
	}
}
