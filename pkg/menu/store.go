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

import "context"

// Store is the persistence collaborator for menu items.
//
// Implementations must be safe for concurrent use and report failures as
// *errors.StructuredError: ErrCodeNotFound when an id does not resolve to a
// record (including ids the backend cannot parse) and ErrCodeInternal for
// everything else.
type Store interface {
	// Insert persists item and sets its ID.
	Insert(ctx context.Context, item *MenuItem) error
	// List returns all items in store-native order.
	List(ctx context.Context) ([]MenuItem, error)
	// Get returns the item with the given id.
	Get(ctx context.Context, id string) (*MenuItem, error)
	// Update applies a non-empty patch and returns the item after the update.
	Update(ctx context.Context, id string, patch Patch) (*MenuItem, error)
	// Delete removes the item with the given id.
	Delete(ctx context.Context, id string) error
	// Ping checks connectivity.
	Ping(ctx context.Context) error
}
