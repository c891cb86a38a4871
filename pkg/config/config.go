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
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store backends.
const (
	BackendMongo  = "mongo"
	BackendMemory = "memory"
)

const (
	DefaultPort            = 5000
	DefaultDatabase        = "menu"
	DefaultCollection      = "menuitems"
	DefaultNullPolicy      = "ignore"
	DefaultStoreBackend    = BackendMongo
	defaultEnvironmentFile = ".env"
)

// Config holds the process configuration, read once at startup.
type Config struct {
	Port            int
	StoreBackend    string
	MongoURI        string
	MongoDatabase   string
	MongoCollection string
	NullPolicy      string
	LogLevel        string
	// ShutdownTimeout is zero when unset; the server default applies.
	ShutdownTimeout time.Duration
}

// Load reads the optional .env file and then the environment.
func Load() (*Config, error) {
	return LoadFiles(defaultEnvironmentFile)
}

// LoadFiles is Load with explicit dotenv files. Missing files are skipped.
func LoadFiles(files ...string) (*Config, error) {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("failed to load environment file %s: %w", f, err)
		}
		slog.Debug("loaded environment file", "file", f)
	}

	cfg := &Config{
		Port:            DefaultPort,
		StoreBackend:    strings.ToLower(getEnv("STORE_BACKEND", DefaultStoreBackend)),
		MongoURI:        os.Getenv("MONGO_URI"),
		MongoDatabase:   getEnv("MONGO_DATABASE", DefaultDatabase),
		MongoCollection: getEnv("MONGO_COLLECTION", DefaultCollection),
		NullPolicy:      strings.ToLower(getEnv("MENU_NULL_POLICY", DefaultNullPolicy)),
		LogLevel:        os.Getenv("LOG_LEVEL"),
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", portStr, err)
		}
		cfg.Port = port
	}

	if shutdownStr := os.Getenv("SHUTDOWN_TIMEOUT_SECONDS"); shutdownStr != "" {
		seconds, err := strconv.Atoi(shutdownStr)
		if err != nil || seconds <= 0 {
			return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT_SECONDS %q: must be a positive integer", shutdownStr)
		}
		cfg.ShutdownTimeout = time.Duration(seconds) * time.Second
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port out of range: %d", c.Port)
	}

	switch c.StoreBackend {
	case BackendMongo:
		if c.MongoURI == "" {
			return fmt.Errorf("MONGO_URI is required for the %s store backend", BackendMongo)
		}
		if c.MongoDatabase == "" || c.MongoCollection == "" {
			return fmt.Errorf("mongo database and collection must not be empty")
		}
	case BackendMemory:
	default:
		return fmt.Errorf("unknown store backend %q, supported values: %s, %s",
			c.StoreBackend, BackendMongo, BackendMemory)
	}

	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
