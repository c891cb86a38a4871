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

package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/utils/ptr"

	menuerrors "github.com/NVIDIA/menu-record-service/pkg/errors"
	"github.com/NVIDIA/menu-record-service/pkg/menu"
)

func TestStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	s := New()

	item := &menu.MenuItem{Name: "Burger", Description: "Beef", Price: 9.99}
	require.NoError(t, s.Insert(ctx, item))
	require.NotEmpty(t, item.ID)

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

	require.NoError(t, s.Delete(ctx, item.ID))

	_, err = s.Get(ctx, item.ID)
	assert.True(t, menuerrors.IsCode(err, menuerrors.ErrCodeNotFound))

	err = s.Delete(ctx, item.ID)
	assert.True(t, menuerrors.IsCode(err, menuerrors.ErrCodeNotFound))

	_, err = s.Update(ctx, item.ID, menu.Patch{Name: ptr.To("x")})
	assert.True(t, menuerrors.IsCode(err, menuerrors.ErrCodeNotFound))
}

func TestStoreListOrderAndCopies(t *testing.T) {
	ctx := context.Background()
	s := New()

	list, err := s.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	var ids []string
	for i := 0; i < 5; i++ {
		item := &menu.MenuItem{Name: fmt.Sprintf("item-%d", i), Price: float64(i)}
		require.NoError(t, s.Insert(ctx, item))
		ids = append(ids, item.ID)
	}

	require.NoError(t, s.Delete(ctx, ids[2]))

	list, err = s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 4)
	assert.Equal(t, []string{ids[0], ids[1], ids[3], ids[4]},
		[]string{list[0].ID, list[1].ID, list[2].ID, list[3].ID})

	// mutating the returned slice does not touch the store
	list[0].Name = "changed"
	got, err := s.Get(ctx, ids[0])
	require.NoError(t, err)
	assert.Equal(t, "item-0", got.Name)
}

func TestStoreIDsNotReused(t *testing.T) {
	ctx := context.Background()
	s := New()

	a := &menu.MenuItem{Name: "a", Price: 1}
	require.NoError(t, s.Insert(ctx, a))
	require.NoError(t, s.Delete(ctx, a.ID))

	b := &menu.MenuItem{Name: "b", Price: 1}
	require.NoError(t, s.Insert(ctx, b))
	assert.NotEqual(t, a.ID, b.ID)
}

func TestStoreCanceledContext(t *testing.T) {
	s := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Insert(ctx, &menu.MenuItem{Name: "a", Price: 1})
	assert.True(t, menuerrors.IsCode(err, menuerrors.ErrCodeInternal))

	list, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestStoreConcurrentInserts(t *testing.T) {
	ctx := context.Background()
	s := New()

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, s.Insert(ctx, &menu.MenuItem{Name: fmt.Sprintf("item-%d", i), Price: 1}))
		}(i)
	}
	wg.Wait()

	list, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, n)

	seen := map[string]bool{}
	for _, item := range list {
		assert.False(t, seen[item.ID], "duplicate id %s", item.ID)
		seen[item.ID] = true
	}
}

func TestStorePingAndClose(t *testing.T) {
	s := New()
	assert.NoError(t, s.Ping(context.Background()))
	assert.NoError(t, s.Close(context.Background()))
}
