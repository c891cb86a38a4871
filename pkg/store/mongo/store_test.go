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

package mongo

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"k8s.io/utils/ptr"

	menuerrors "github.com/NVIDIA/menu-record-service/pkg/errors"
	"github.com/NVIDIA/menu-record-service/pkg/menu"
)

func TestUpdateDoc(t *testing.T) {
	tests := []struct {
		name  string
		patch menu.Patch
		want  bson.D
	}{
		{
			name:  "empty patch",
			patch: menu.Patch{},
			want:  bson.D{},
		},
		{
			name:  "price only",
			patch: menu.Patch{Price: ptr.To(10.99)},
			want: bson.D{
				{Key: "$set", Value: bson.D{{Key: "price", Value: 10.99}}},
			},
		},
		{
			name:  "zero price is set",
			patch: menu.Patch{Price: ptr.To(0.0)},
			want: bson.D{
				{Key: "$set", Value: bson.D{{Key: "price", Value: 0.0}}},
			},
		},
		{
			name:  "all fields",
			patch: menu.Patch{Name: ptr.To("Burger"), Price: ptr.To(1.5), Description: ptr.To("Beef")},
			want: bson.D{
				{Key: "$set", Value: bson.D{
					{Key: "name", Value: "Burger"},
					{Key: "price", Value: 1.5},
					{Key: "description", Value: "Beef"},
				}},
			},
		},
		{
			name:  "clear description",
			patch: menu.Patch{ClearDescription: true, Description: ptr.To("ignored")},
			want: bson.D{
				{Key: "$unset", Value: bson.D{{Key: "description", Value: ""}}},
			},
		},
		{
			name:  "empty description unsets",
			patch: menu.Patch{Name: ptr.To("Fries"), Description: ptr.To("")},
			want: bson.D{
				{Key: "$set", Value: bson.D{{Key: "name", Value: "Fries"}}},
				{Key: "$unset", Value: bson.D{{Key: "description", Value: ""}}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, updateDoc(tt.patch))
		})
	}
}

func TestObjectID(t *testing.T) {
	oid := bson.NewObjectID()

	got, err := objectID(oid.Hex())
	require.NoError(t, err)
	assert.Equal(t, oid, got)

	for _, bad := range []string{"", "abc", "not-an-object-id", oid.Hex() + "00"} {
		_, err := objectID(bad)
		assert.True(t, menuerrors.IsCode(err, menuerrors.ErrCodeNotFound), "id %q", bad)
	}
}

func TestDocumentItem(t *testing.T) {
	oid := bson.NewObjectID()
	d := document{ID: oid, Name: "Burger", Price: 9.99}

	assert.Equal(t, menu.MenuItem{ID: oid.Hex(), Name: "Burger", Price: 9.99}, d.item())
}

func TestConnectRequiresURI(t *testing.T) {
	_, err := Connect(context.Background(), Config{Database: "menu", Collection: "menuitems"})
	assert.True(t, menuerrors.IsCode(err, menuerrors.ErrCodeInvalidRequest))
}

// TestStoreIntegration runs against a live deployment when MONGO_TEST_URI is set.
func TestStoreIntegration(t *testing.T) {
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	s, err := Connect(ctx, Config{
		URI:        uri,
		Database:   "menu_test",
		Collection: fmt.Sprintf("menuitems_%d", time.Now().UnixNano()),
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.coll.Drop(context.Background())
		_ = s.Close(context.Background())
	})

	require.NoError(t, s.Ping(ctx))

	list, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	item := &menu.MenuItem{Name: "Burger", Description: "Beef", Price: 9.99}
	require.NoError(t, s.Insert(ctx, item))
	require.Len(t, item.ID, 24)

	got, err := s.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, *item, *got)

	updated, err := s.Update(ctx, item.ID, menu.Patch{Price: ptr.To(10.99)})
	require.NoError(t, err)
	assert.Equal(t, "Burger", updated.Name)
	assert.Equal(t, "Beef", updated.Description)
	assert.Equal(t, 10.99, updated.Price)

	updated, err = s.Update(ctx, item.ID, menu.Patch{ClearDescription: true})
	require.NoError(t, err)
	assert.Empty(t, updated.Description)

	list, err = s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, s.Delete(ctx, item.ID))

	err = s.Delete(ctx, item.ID)
	assert.True(t, menuerrors.IsCode(err, menuerrors.ErrCodeNotFound))

	_, err = s.Update(ctx, item.ID, menu.Patch{Name: ptr.To("x")})
	assert.True(t, menuerrors.IsCode(err, menuerrors.ErrCodeNotFound))

	_, err = s.Get(ctx, "malformed")
	assert.True(t, menuerrors.IsCode(err, menuerrors.ErrCodeNotFound))
}
