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
	"fmt"
	"log/slog"

	"github.com/NVIDIA/menu-record-service/pkg/config"
	"github.com/NVIDIA/menu-record-service/pkg/defaults"
	"github.com/NVIDIA/menu-record-service/pkg/logging"
	"github.com/NVIDIA/menu-record-service/pkg/menu"
	"github.com/NVIDIA/menu-record-service/pkg/server"
	"github.com/NVIDIA/menu-record-service/pkg/store/memory"
	"github.com/NVIDIA/menu-record-service/pkg/store/mongo"
)

const (
	name           = "menud"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/NVIDIA/menu-record-service/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// store is a menu.Store that owns a connection released at shutdown.
type store interface {
	menu.Store
	Close(ctx context.Context) error
}

// Serve starts the API server and blocks until shutdown.
// It loads configuration, configures logging, connects the store, sets up
// routes, and handles graceful shutdown.
func Serve() error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logging.SetDefaultStructuredLoggerWithLevel(name, version, cfg.LogLevel)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"port", cfg.Port,
		"store", cfg.StoreBackend,
	)

	st, err := newStore(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize store", "error", err)
		return err
	}

	s, err := newServer(cfg, st)
	if err != nil {
		_ = st.Close(ctx)
		return err
	}

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

// newStore opens the store selected by cfg.StoreBackend.
func newStore(ctx context.Context, cfg *config.Config) (store, error) {
	switch cfg.StoreBackend {
	case config.BackendMemory:
		return memory.New(), nil
	case config.BackendMongo:
		ctx, cancel := context.WithTimeout(ctx, defaults.StoreConnectTimeout)
		defer cancel()

		st, err := mongo.Connect(ctx, mongo.Config{
			URI:        cfg.MongoURI,
			Database:   cfg.MongoDatabase,
			Collection: cfg.MongoCollection,
		})
		if err != nil {
			return nil, err
		}
		return st, nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}

// newServer wires the menu handlers over st into a server.
func newServer(cfg *config.Config, st store) (*server.Server, error) {
	policy, err := menu.ParseNullPolicy(cfg.NullPolicy)
	if err != nil {
		return nil, err
	}

	svc := menu.NewService(st)
	h := menu.NewHandler(svc, menu.WithNullPolicy(policy))

	return server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithPort(cfg.Port),
		server.WithShutdownTimeout(cfg.ShutdownTimeout),
		server.WithHandler(h.Routes()),
		server.WithReadinessCheck(svc.Ping),
		server.WithShutdownHook(st.Close),
	), nil
}
