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
	"errors"
	"time"

	"github.com/NVIDIA/menu-record-service/pkg/defaults"
	menuerrors "github.com/NVIDIA/menu-record-service/pkg/errors"
)

const (
	opInsert = "insert"
	opList   = "list"
	opGet    = "get"
	opUpdate = "update"
	opDelete = "delete"
)

// Service implements the menu operations on top of a Store.
type Service struct {
	store   Store
	timeout time.Duration
}

// Option is a functional option for configuring a Service.
type Option func(*Service)

// WithStoreTimeout sets the per-call timeout applied to store operations.
// Zero disables the timeout.
func WithStoreTimeout(d time.Duration) Option {
	return func(s *Service) {
		s.timeout = d
	}
}

// NewService creates a Service backed by store.
func NewService(store Store, opts ...Option) *Service {
	s := &Service{
		store:   store,
		timeout: defaults.StoreOperationTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create validates n and inserts a new item, returning it with its assigned id.
func (s *Service) Create(ctx context.Context, n NewItem) (*MenuItem, error) {
	if err := ValidateNew(n); err != nil {
		validationRejects.WithLabelValues(opInsert).Inc()
		return nil, err
	}

	item := &MenuItem{
		Name:        n.Name,
		Description: n.Description,
		Price:       *n.Price,
	}

	err := s.call(ctx, opInsert, func(ctx context.Context) error {
		return s.store.Insert(ctx, item)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// List returns all items. The result is never nil.
func (s *Service) List(ctx context.Context) ([]MenuItem, error) {
	var items []MenuItem
	err := s.call(ctx, opList, func(ctx context.Context) error {
		var err error
		items, err = s.store.List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []MenuItem{}
	}
	return items, nil
}

// Get returns a single item.
func (s *Service) Get(ctx context.Context, id string) (*MenuItem, error) {
	var item *MenuItem
	err := s.call(ctx, opGet, func(ctx context.Context) error {
		var err error
		item, err = s.store.Get(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// Update applies patch to the item with the given id and returns the result.
// An empty patch returns the current item unchanged.
func (s *Service) Update(ctx context.Context, id string, patch Patch) (*MenuItem, error) {
	if err := ValidatePatch(patch); err != nil {
		validationRejects.WithLabelValues(opUpdate).Inc()
		return nil, err
	}

	if patch.IsEmpty() {
		return s.Get(ctx, id)
	}

	var item *MenuItem
	err := s.call(ctx, opUpdate, func(ctx context.Context) error {
		var err error
		item, err = s.store.Update(ctx, id, patch)
		return err
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes the item with the given id.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.call(ctx, opDelete, func(ctx context.Context) error {
		return s.store.Delete(ctx, id)
	})
}

// Ping checks the store connection.
func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

// call runs fn with the store timeout, records metrics and normalizes the error.
func (s *Service) call(ctx context.Context, op string, fn func(context.Context) error) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	err := fn(ctx)
	storeOperationDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	storeOperationsTotal.WithLabelValues(op, resultLabel(err)).Inc()

	if err == nil {
		return nil
	}

	var se *menuerrors.StructuredError
	if errors.As(err, &se) {
		return err
	}
	return menuerrors.Wrap(menuerrors.ErrCodeInternal, "menu store "+op+" failed", err)
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "success"
	case menuerrors.IsCode(err, menuerrors.ErrCodeNotFound):
		return "not_found"
	default:
		return "error"
	}
}
