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
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
	"k8s.io/utils/ptr"

	menuerrors "github.com/NVIDIA/menu-record-service/pkg/errors"
)

const (
	fieldName        = "name"
	fieldDescription = "description"
	fieldPrice       = "price"
)

var jsonNull = []byte("null")

// ValidateNew checks the required fields of a new item.
func ValidateNew(n NewItem) error {
	if n.Name == "" || n.Price == nil {
		return menuerrors.NewWithContext(menuerrors.ErrCodeInvalidRequest, MsgRequired, map[string]any{
			"name":  n.Name != "",
			"price": n.Price != nil,
		})
	}
	return nil
}

// ValidatePatch checks that the fields a patch sets are acceptable.
func ValidatePatch(p Patch) error {
	if p.Name != nil && *p.Name == "" {
		return invalid(fmt.Errorf("%s must not be empty", fieldName))
	}
	return nil
}

// ParseNewItem decodes a create request body. Missing or null name and price
// produce a validation error carrying MsgRequired; values of the wrong type
// produce a validation error carrying MsgInvalidItem.
func ParseNewItem(body []byte) (NewItem, error) {
	var n NewItem

	fields, err := decodeObject(body)
	if err != nil {
		return n, err
	}

	if raw, ok := present(fields, fieldName); ok {
		if err := decodeString(raw, fieldName, &n.Name); err != nil {
			return n, err
		}
	}

	if raw, ok := present(fields, fieldDescription); ok {
		if err := decodeString(raw, fieldDescription, &n.Description); err != nil {
			return n, err
		}
	}

	if raw, ok := present(fields, fieldPrice); ok {
		var price float64
		if err := decodeNumber(raw, fieldPrice, &price); err != nil {
			return n, err
		}
		n.Price = ptr.To(price)
	}

	return n, ValidateNew(n)
}

// ParsePatch decodes an update body. Omitted fields stay nil. Explicit nulls
// follow policy. Unknown fields are ignored.
func ParsePatch(body []byte, policy NullPolicy) (Patch, error) {
	var p Patch

	if len(bytes.TrimSpace(body)) == 0 {
		return p, nil
	}

	fields, err := decodeObject(body)
	if err != nil {
		return p, err
	}

	for _, name := range []string{fieldName, fieldDescription, fieldPrice} {
		raw, ok := fields[name]
		if !ok {
			continue
		}

		if isNull(raw) {
			if policy != NullPolicyClear {
				continue
			}
			if name != fieldDescription {
				return p, invalid(fmt.Errorf("%s is required and cannot be null", name))
			}
			p.ClearDescription = true
			continue
		}

		switch name {
		case fieldName:
			var v string
			if err := decodeString(raw, name, &v); err != nil {
				return p, err
			}
			p.Name = ptr.To(v)
		case fieldDescription:
			var v string
			if err := decodeString(raw, name, &v); err != nil {
				return p, err
			}
			p.Description = ptr.To(v)
		case fieldPrice:
			var v float64
			if err := decodeNumber(raw, name, &v); err != nil {
				return p, err
			}
			p.Price = ptr.To(v)
		}
	}

	return p, ValidatePatch(p)
}

func decodeObject(body []byte) (map[string]json.RawMessage, error) {
	fields := map[string]json.RawMessage{}
	if len(bytes.TrimSpace(body)) == 0 {
		return fields, nil
	}

	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, menuerrors.Wrap(menuerrors.ErrCodeInvalidRequest, MsgInvalidPayload, err)
	}
	// a literal null body decodes into a nil map
	if fields == nil {
		fields = map[string]json.RawMessage{}
	}
	return fields, nil
}

// present returns the raw value of a field that is set and not null.
func present(fields map[string]json.RawMessage, name string) (json.RawMessage, bool) {
	raw, ok := fields[name]
	if !ok || isNull(raw) {
		return nil, false
	}
	return raw, true
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), jsonNull)
}

func decodeString(raw json.RawMessage, name string, out *string) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '"' {
		return invalid(fmt.Errorf("%s must be a string", name))
	}
	if err := json.Unmarshal(trimmed, out); err != nil {
		return invalid(fmt.Errorf("%s must be a string: %w", name, err))
	}
	return nil
}

func decodeNumber(raw json.RawMessage, name string, out *float64) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || !(trimmed[0] == '-' || (trimmed[0] >= '0' && trimmed[0] <= '9')) {
		return invalid(fmt.Errorf("%s must be a number", name))
	}
	if err := json.Unmarshal(trimmed, out); err != nil {
		return invalid(fmt.Errorf("%s must be a number: %w", name, err))
	}
	return nil
}

func invalid(cause error) error {
	return menuerrors.Wrap(menuerrors.ErrCodeInvalidRequest, MsgInvalidItem, cause)
}
