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

// Package server provides a reusable HTTP server with the middleware, probes
// and lifecycle handling shared by the menu service.
//
// # Architecture
//
// The server is stateless apart from its readiness flag and serves the routes
// it is configured with:
//
//   - Rate limiting using token bucket algorithm (golang.org/x/time/rate)
//   - Request ID tracking (X-Request-Id)
//   - Panic recovery
//   - Prometheus RED metrics
//   - Graceful shutdown with ordered shutdown hooks
//   - Health and readiness probes
//   - systemd readiness notification when NOTIFY_SOCKET is set
//
// # Usage
//
//	s := server.New(
//	    server.WithName("menud"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/menu":      h.HandleCollection,
//	        "/menu/{id}": h.HandleItem,
//	    }),
//	    server.WithReadinessCheck(store.Ping),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// Route keys are net/http ServeMux patterns, so path wildcards such as {id}
// are available to handlers through Request.PathValue.
//
// # System Endpoints
//
//   - GET /        - service name, version and routes
//   - GET /health  - liveness, always 200 while the process serves
//   - GET /ready   - readiness, 503 until started or when the readiness check fails
//   - GET /metrics - Prometheus metrics
//
// # Error Handling
//
// All errors return the same JSON structure:
//
//	{
//	  "error": "Server error",
//	  "details": "menu store insert failed: connection refused"
//	}
//
// The details field is omitted when there is nothing to add. The request ID is
// returned in the X-Request-Id response header.
//
// # Configuration
//
// Config carries defaults only. Port, shutdown budget and the other process
// settings are loaded by pkg/config and applied with WithPort,
// WithShutdownTimeout and friends.
package server
