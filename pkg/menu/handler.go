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

package menu

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/NVIDIA/menu-record-service/pkg/defaults"
	menuerrors "github.com/NVIDIA/menu-record-service/pkg/errors"
	"github.com/NVIDIA/menu-record-service/pkg/serializer"
	"github.com/NVIDIA/menu-record-service/pkg/server"
)

const (
	// CollectionPath is the route of the menu collection.
	CollectionPath = "/menu"
	// ItemPath is the route of a single menu item.
	ItemPath = "/menu/{id}"

	// MsgServerError is the error string returned for storage failures.
	MsgServerError = "Server error"
)

// Handler serves the /menu HTTP API.
type Handler struct {
	svc        *Service
	nullPolicy NullPolicy
	timeout    time.Duration
}

// HandlerOption is a functional option for configuring a Handler.
type HandlerOption func(*Handler)

// WithNullPolicy sets how explicit nulls in update bodies are treated.
func WithNullPolicy(p NullPolicy) HandlerOption {
	return func(h *Handler) {
		h.nullPolicy = p
	}
}

// WithHandlerTimeout sets the request-scoped timeout. Zero disables it.
func WithHandlerTimeout(d time.Duration) HandlerOption {
	return func(h *Handler) {
		h.timeout = d
	}
}

// NewHandler creates a Handler over svc.
func NewHandler(svc *Service, opts ...HandlerOption) *Handler {
	h := &Handler{
		svc:        svc,
		nullPolicy: NullPolicyIgnore,
		timeout:    defaults.MenuHandlerTimeout,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Routes returns the route table for registration with the server.
func (h *Handler) Routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		CollectionPath: h.HandleCollection,
		ItemPath:       h.HandleItem,
	}
}

// HandleCollection serves GET and POST on /menu.
func (h *Handler) HandleCollection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleList(w, r)
	case http.MethodPost:
		h.handleCreate(w, r)
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPost)
	}
}

// HandleItem serves GET, PUT and DELETE on /menu/{id}.
func (h *Handler) HandleItem(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleGet(w, r)
	case http.MethodPut:
		h.handleUpdate(w, r)
	case http.MethodDelete:
		h.handleDelete(w, r)
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPut, http.MethodDelete)
	}
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	body, ok := readBody(w, r)
	if !ok {
		return
	}

	n, err := ParseNewItem(body)
	if err != nil {
		validationRejects.WithLabelValues(opInsert).Inc()
		writeErr(w, r, err)
		return
	}

	item, err := h.svc.Create(ctx, n)
	if err != nil {
		writeErr(w, r, err)
		return
	}

	slog.Debug("menu item created", "id", item.ID, "requestID", server.RequestIDFromContext(r.Context()))
	serializer.RespondJSON(w, http.StatusCreated, ItemResponse{Message: MsgCreated, Data: item})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	items, err := h.svc.List(ctx)
	if err != nil {
		writeErr(w, r, err)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, items)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	item, err := h.svc.Get(ctx, itemID(r))
	if err != nil {
		writeErr(w, r, err)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, item)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	body, ok := readBody(w, r)
	if !ok {
		return
	}

	patch, err := ParsePatch(body, h.nullPolicy)
	if err != nil {
		validationRejects.WithLabelValues(opUpdate).Inc()
		writeErr(w, r, err)
		return
	}

	item, err := h.svc.Update(ctx, itemID(r), patch)
	if err != nil {
		writeErr(w, r, err)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, ItemResponse{Message: MsgUpdated, Data: item})
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	if err := h.svc.Delete(ctx, itemID(r)); err != nil {
		writeErr(w, r, err)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, MessageResponse{Message: MsgDeleted})
}

func (h *Handler) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(r.Context())
	}
	return context.WithTimeout(r.Context(), h.timeout)
}

// itemID returns the {id} path value, falling back to the path suffix when the
// request did not pass through a pattern-matching mux.
func itemID(r *http.Request) string {
	if id := r.PathValue("id"); id != "" {
		return id
	}
	return strings.TrimPrefix(r.URL.Path, CollectionPath+"/")
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	if r.Body == nil {
		return nil, true
	}
	defer r.Body.Close()

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, defaults.MaxRequestBodyBytes))
	if err != nil {
		server.WriteError(w, r, http.StatusBadRequest, MsgInvalidPayload, err.Error())
		return nil, false
	}
	return body, true
}

func writeErr(w http.ResponseWriter, r *http.Request, err error) {
	if menuerrors.IsCode(err, menuerrors.ErrCodeNotFound) {
		server.WriteError(w, r, http.StatusNotFound, MsgNotFound, "")
		return
	}
	server.WriteErrorFromErr(w, r, err, MsgServerError)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request, allowed ...string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	server.WriteError(w, r, http.StatusMethodNotAllowed, "Method not allowed", r.Method)
}
