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

// Package api provides the HTTP API layer for the menu record service.
//
// This package is a thin wrapper around the reusable pkg/server package. It
// loads configuration, opens the configured store, and registers the menu
// handlers.
//
// # Usage
//
//	package main
//
//	import (
//	    "log"
//	    "github.com/NVIDIA/menu-record-service/pkg/api"
//	)
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Endpoints
//
// Application endpoints (with rate limiting):
//   - POST   /menu      - Create a menu item
//   - GET    /menu      - List all menu items
//   - GET    /menu/{id} - Fetch one menu item
//   - PUT    /menu/{id} - Partially update a menu item
//   - DELETE /menu/{id} - Delete a menu item
//
// System endpoints (no rate limiting):
//   - GET /health  - Liveness probe
//   - GET /ready   - Readiness probe, pings the store
//   - GET /metrics - Prometheus metrics
//
// # Configuration
//
// Environment variables, optionally loaded from a .env file:
//   - PORT: listen port (default 5000)
//   - STORE_BACKEND: mongo or memory (default mongo)
//   - MONGO_URI: connection string, required for mongo
//   - MONGO_DATABASE, MONGO_COLLECTION: default menu and menuitems
//   - MENU_NULL_POLICY: ignore or clear
//   - LOG_LEVEL: debug, info, warn or error
//   - SHUTDOWN_TIMEOUT_SECONDS: graceful shutdown window
package api
