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

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/NVIDIA/menu-record-service/pkg/config"
	"github.com/NVIDIA/menu-record-service/pkg/menu"
)

// TestConstants verifies package constants are properly defined
func TestConstants(t *testing.T) {
	if name != "menud" {
		t.Errorf("name = %q, want %q", name, "menud")
	}
	if versionDefault != "dev" {
		t.Errorf("versionDefault = %q, want %q", versionDefault, "dev")
	}
	if version == "" || commit == "" || date == "" {
		t.Error("build variables should not be empty")
	}
}

func memoryConfig() *config.Config {
	return &config.Config{
		Port:         config.DefaultPort,
		StoreBackend: config.BackendMemory,
		NullPolicy:   config.DefaultNullPolicy,
	}
}

func TestNewStore(t *testing.T) {
	st, err := newStore(context.Background(), memoryConfig())
	if err != nil {
		t.Fatalf("newStore(memory) error: %v", err)
	}
	if err := st.Ping(context.Background()); err != nil {
		t.Errorf("memory store ping: %v", err)
	}

	cfg := memoryConfig()
	cfg.StoreBackend = "cassandra"
	if _, err := newStore(context.Background(), cfg); err == nil {
		t.Error("expected error for unknown backend")
	}

	cfg = memoryConfig()
	cfg.StoreBackend = config.BackendMongo
	if _, err := newStore(context.Background(), cfg); err == nil {
		t.Error("expected error for mongo without URI")
	}
}

func TestNewServerRejectsUnknownNullPolicy(t *testing.T) {
	cfg := memoryConfig()
	cfg.NullPolicy = "drop"

	st, err := newStore(context.Background(), cfg)
	if err != nil {
		t.Fatalf("newStore: %v", err)
	}
	if _, err := newServer(cfg, st); err == nil {
		t.Error("expected error for unknown null policy")
	}
}

func TestServerRoutes(t *testing.T) {
	cfg := memoryConfig()
	st, err := newStore(context.Background(), cfg)
	if err != nil {
		t.Fatalf("newStore: %v", err)
	}

	s, err := newServer(cfg, st)
	if err != nil {
		t.Fatalf("newServer: %v", err)
	}
	h := s.Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/menu",
		strings.NewReader(`{"name":"Burger","description":"Beef","price":9.99}`)))
	if rec.Code != http.StatusCreated {
		t.Fatalf("POST /menu status = %d, body %s", rec.Code, rec.Body.String())
	}

	var created menu.ItemResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if created.Data == nil || created.Data.ID == "" {
		t.Fatalf("expected created item with id, got %+v", created)
	}

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/menu", http.StatusOK},
		{http.MethodGet, "/menu/" + created.Data.ID, http.StatusOK},
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/metrics", http.StatusOK},
		{http.MethodGet, "/", http.StatusOK},
		// not marked ready until Start
		{http.MethodGet, "/ready", http.StatusServiceUnavailable},
		{http.MethodDelete, "/menu/" + created.Data.ID, http.StatusOK},
		{http.MethodDelete, "/menu/" + created.Data.ID, http.StatusNotFound},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
		if rec.Code != tt.want {
			t.Errorf("%s %s status = %d, want %d", tt.method, tt.path, rec.Code, tt.want)
		}
	}
}
