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

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PORT", "STORE_BACKEND", "MONGO_URI", "MONGO_DATABASE",
		"MONGO_COLLECTION", "MENU_NULL_POLICY", "LOG_LEVEL", "SHUTDOWN_TIMEOUT_SECONDS"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")

	cfg, err := LoadFiles()
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, BackendMongo, cfg.StoreBackend)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, DefaultDatabase, cfg.MongoDatabase)
	assert.Equal(t, DefaultCollection, cfg.MongoCollection)
	assert.Equal(t, DefaultNullPolicy, cfg.NullPolicy)
	assert.Zero(t, cfg.ShutdownTimeout)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8081")
	t.Setenv("STORE_BACKEND", "MEMORY")
	t.Setenv("MENU_NULL_POLICY", "clear")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "5")

	cfg, err := LoadFiles()
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Port)
	assert.Equal(t, BackendMemory, cfg.StoreBackend)
	assert.Equal(t, "clear", cfg.NullPolicy)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing mongo uri", map[string]string{}},
		{"bad port", map[string]string{"PORT": "http", "STORE_BACKEND": "memory"}},
		{"port out of range", map[string]string{"PORT": "70000", "STORE_BACKEND": "memory"}},
		{"unknown backend", map[string]string{"STORE_BACKEND": "redis"}},
		{"bad shutdown timeout", map[string]string{"SHUTDOWN_TIMEOUT_SECONDS": "soon", "STORE_BACKEND": "memory"}},
		{"non-positive shutdown timeout", map[string]string{"SHUTDOWN_TIMEOUT_SECONDS": "0", "STORE_BACKEND": "memory"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadFiles()
			assert.Error(t, err)
		})
	}
}

func TestLoadFromEnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("MONGO_URI=mongodb://db:27017\nPORT=6000\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("MONGO_URI")
		os.Unsetenv("PORT")
	})

	cfg, err := LoadFiles(path, filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "mongodb://db:27017", cfg.MongoURI)
	assert.Equal(t, 6000, cfg.Port)
}

func TestEnvironmentWinsOverEnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("MONGO_URI", "mongodb://from-env:27017")
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("MONGO_URI=mongodb://from-file:27017\n"), 0o600))

	cfg, err := LoadFiles(path)
	require.NoError(t, err)

	assert.Equal(t, "mongodb://from-env:27017", cfg.MongoURI)
}
