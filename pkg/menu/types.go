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
	"fmt"
	"strings"
)

// Response messages.
const (
	MsgCreated        = "Menu item created successfully"
	MsgUpdated        = "Menu item updated successfully"
	MsgDeleted        = "Menu item deleted successfully"
	MsgRequired       = "Name and price are required"
	MsgNotFound       = "Menu item not found"
	MsgInvalidItem    = "Invalid menu item"
	MsgInvalidPayload = "Invalid request body"
)

// MenuItem is the single persisted entity: a named, priced record with an
// optional description. ID is assigned by the Store on creation.
type MenuItem struct {
	ID          string  `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	Price       float64 `json:"price" yaml:"price"`
}

// NewItem holds the fields supplied to create a menu item.
// Price is a pointer so an undefined price can be told apart from 0.
type NewItem struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Price       *float64 `json:"price" yaml:"price"`
}

// Patch describes a partial update. Nil fields are left untouched.
// ClearDescription removes the stored description and wins over Description.
type Patch struct {
	Name             *string
	Description      *string
	Price            *float64
	ClearDescription bool
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Price == nil && !p.ClearDescription
}

// Apply writes the patch onto item in place.
func (p Patch) Apply(item *MenuItem) {
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Price != nil {
		item.Price = *p.Price
	}
	switch {
	case p.ClearDescription:
		item.Description = ""
	case p.Description != nil:
		item.Description = *p.Description
	}
}

// ItemResponse is returned by create and update.
type ItemResponse struct {
	Message string    `json:"message" yaml:"message"`
	Data    *MenuItem `json:"data" yaml:"data"`
}

// MessageResponse is returned by delete.
type MessageResponse struct {
	Message string `json:"message" yaml:"message"`
}

// NullPolicy controls how an explicit null in an update body is handled.
type NullPolicy string

const (
	// NullPolicyIgnore treats null fields as omitted.
	NullPolicyIgnore NullPolicy = "ignore"
	// NullPolicyClear clears optional fields set to null and rejects null required fields.
	NullPolicyClear NullPolicy = "clear"
)

// String returns the string representation of the NullPolicy.
func (p NullPolicy) String() string {
	return string(p)
}

// ParseNullPolicy converts s into a NullPolicy. Empty input yields NullPolicyIgnore.
func ParseNullPolicy(s string) (NullPolicy, error) {
	switch NullPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", NullPolicyIgnore:
		return NullPolicyIgnore, nil
	case NullPolicyClear:
		return NullPolicyClear, nil
	default:
		return "", fmt.Errorf("unknown null policy %q, supported values: %s, %s",
			s, NullPolicyIgnore, NullPolicyClear)
	}
}
