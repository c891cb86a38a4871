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

// Package memory provides an in-process menu.Store.
//
// Items are kept in insertion order. Ids are random UUIDs and are never
// reused. The store is safe for concurrent use.
package memory

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/google/uuid"

	menuerrors "github.com/NVIDIA/menu-record-service/pkg/errors"
	"github.com/NVIDIA/menu-record-service/pkg/menu"
)

// Store is a mutex-guarded ordered map of menu items.
type Store struct {
	mu    sync.RWMutex
	order []string
	items map[string]menu.MenuItem
}

var _ menu.Store = (*Store)(nil)

// New returns an empty Store.
func New() *Store {
	slog.Debug("using in-memory menu store")
	return &Store{
		items: make(map[string]menu.MenuItem),
	}
}

// Insert assigns a new id to item and stores a copy.
func (s *Store) Insert(ctx context.Context, item *menu.MenuItem) error {
	if err := ctx.Err(); err != nil {
		return menuerrors.Wrap(menuerrors.ErrCodeInternal, "insert canceled", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item.ID = uuid.NewString()
	s.items[item.ID] = *item
	s.order = append(s.order, item.ID)
	return nil
}

// List returns copies of all items in insertion order.
func (s *Store) List(ctx context.Context) ([]menu.MenuItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, menuerrors.Wrap(menuerrors.ErrCodeInternal, "list canceled", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]menu.MenuItem, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.items[id])
	}
	return out, nil
}

// Get returns a copy of the item with the given id.
func (s *Store) Get(ctx context.Context, id string) (*menu.MenuItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, menuerrors.Wrap(menuerrors.ErrCodeInternal, "get canceled", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	if !ok {
		return nil, notFound(id)
	}
	return &item, nil
}

// Update applies patch to the stored item and returns the result.
func (s *Store) Update(ctx context.Context, id string, patch menu.Patch) (*menu.MenuItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, menuerrors.Wrap(menuerrors.ErrCodeInternal, "update canceled", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[id]
	if !ok {
		return nil, notFound(id)
	}
	patch.Apply(&item)
	s.items[id] = item
	return &item, nil
}

// Delete removes the item with the given id.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return menuerrors.Wrap(menuerrors.ErrCodeInternal, "delete canceled", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return notFound(id)
	}
	delete(s.items, id)
	s.order = slices.DeleteFunc(s.order, func(v string) bool { return v == id })
	return nil
}

// Ping always succeeds.
func (s *Store) Ping(context.Context) error {
	return nil
}

// Close is a no-op so the store can be used wherever a closable store is expected.
func (s *Store) Close(context.Context) error {
	return nil
}

func notFound(id string) error {
	return menuerrors.NewWithContext(menuerrors.ErrCodeNotFound, menu.MsgNotFound, map[string]any{"id": id})
}
