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

// Package menu implements the menu record service: the MenuItem model, request
// parsing and validation, the Store contract and the HTTP handlers for the
// /menu collection.
//
// # Endpoints
//
//   - POST   /menu      - create a menu item, 201 {"message", "data"}
//   - GET    /menu      - list all menu items, 200 [MenuItem]
//   - GET    /menu/{id} - fetch one menu item, 200 MenuItem
//   - PUT    /menu/{id} - update specified fields, 200 {"message", "data"}
//   - DELETE /menu/{id} - delete a menu item, 200 {"message"}
//
// Errors are returned as {"error": "...", "details": "..."}.
//
// # Validation
//
// Create requires a non-empty string name and a numeric price. A price of 0 is
// a valid price; only an absent or null price is rejected. Validation runs
// before the Store is called, so rejected requests never alter the collection.
//
// # Partial updates
//
// Fields omitted from an update body are left untouched. Explicit nulls are
// governed by NullPolicy:
//
//   - NullPolicyIgnore treats null like an omitted field
//   - NullPolicyClear removes the description and rejects null name or price
//
// # Storage
//
// The Service is constructed with a Store and holds no other state, so a single
// Service is safe to share across concurrent requests. Consistency of each
// create, update and delete is delegated to the Store.
package menu
