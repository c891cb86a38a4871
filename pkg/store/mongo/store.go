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
	"errors"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/NVIDIA/menu-record-service/pkg/defaults"
	menuerrors "github.com/NVIDIA/menu-record-service/pkg/errors"
	"github.com/NVIDIA/menu-record-service/pkg/menu"
)

// Config holds the connection settings.
type Config struct {
	URI        string
	Database   string
	Collection string
}

// Store is a menu.Store backed by a MongoDB collection.
type Store struct {
	client *mongo.Client
	coll   *mongo.Collection
}

var _ menu.Store = (*Store)(nil)

// document is the persisted form of a menu item.
type document struct {
	ID          bson.ObjectID `bson:"_id,omitempty"`
	Name        string        `bson:"name"`
	Description string        `bson:"description,omitempty"`
	Price       float64       `bson:"price"`
}

func (d document) item() menu.MenuItem {
	return menu.MenuItem{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
	}
}

// Connect opens a client and verifies the deployment is reachable.
func Connect(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.URI == "" {
		return nil, menuerrors.New(menuerrors.ErrCodeInvalidRequest, "mongo URI is required")
	}

	client, err := mongo.Connect(options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(defaults.StoreConnectTimeout))
	if err != nil {
		return nil, menuerrors.Wrap(menuerrors.ErrCodeUnavailable, "failed to create mongo client", err)
	}

	s := &Store{
		client: client,
		coll:   client.Database(cfg.Database).Collection(cfg.Collection),
	}

	pingCtx, cancel := context.WithTimeout(ctx, defaults.StoreConnectTimeout)
	defer cancel()

	if err := s.Ping(pingCtx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, menuerrors.Wrap(menuerrors.ErrCodeUnavailable, "mongo is not reachable", err)
	}

	slog.Info("mongo connected", "database", cfg.Database, "collection", cfg.Collection)
	return s, nil
}

// Insert stores item under a new ObjectID and sets item.ID.
func (s *Store) Insert(ctx context.Context, item *menu.MenuItem) error {
	doc := document{
		ID:          bson.NewObjectID(),
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
	}

	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		return internal("insert", err)
	}

	item.ID = doc.ID.Hex()
	return nil
}

// List returns all items in natural order.
func (s *Store) List(ctx context.Context) ([]menu.MenuItem, error) {
	cur, err := s.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, internal("list", err)
	}

	var docs []document
	if err := cur.All(ctx, &docs); err != nil {
		return nil, internal("list", err)
	}

	items := make([]menu.MenuItem, 0, len(docs))
	for _, d := range docs {
		items = append(items, d.item())
	}
	return items, nil
}

// Get returns the item with the given id.
func (s *Store) Get(ctx context.Context, id string) (*menu.MenuItem, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var doc document
	if err := s.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc); err != nil {
		return nil, lookupErr("get", id, err)
	}

	item := doc.item()
	return &item, nil
}

// Update applies patch with $set/$unset and returns the updated item.
func (s *Store) Update(ctx context.Context, id string, patch menu.Patch) (*menu.MenuItem, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	update := updateDoc(patch)
	if len(update) == 0 {
		return s.Get(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc document
	err = s.coll.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: oid}}, update, opts).Decode(&doc)
	if err != nil {
		return nil, lookupErr("update", id, err)
	}

	item := doc.item()
	return &item, nil
}

// Delete removes the item with the given id.
func (s *Store) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	res, err := s.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return internal("delete", err)
	}
	if res.DeletedCount == 0 {
		return notFound(id)
	}
	return nil
}

// Ping checks the primary is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
		return internal("ping", err)
	}
	return nil
}

// Close disconnects the client.
func (s *Store) Close(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, defaults.StoreDisconnectTimeout)
	defer cancel()

	if err := s.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from mongo: %w", err)
	}
	slog.Debug("mongo disconnected")
	return nil
}

// updateDoc builds the update operators for patch. ClearDescription wins
// over a description value.
func updateDoc(patch menu.Patch) bson.D {
	set := bson.D{}
	if patch.Name != nil {
		set = append(set, bson.E{Key: "name", Value: *patch.Name})
	}
	if patch.Price != nil {
		set = append(set, bson.E{Key: "price", Value: *patch.Price})
	}

	unset := bson.D{}
	switch {
	case patch.ClearDescription:
		unset = append(unset, bson.E{Key: "description", Value: ""})
	case patch.Description != nil && *patch.Description == "":
		// empty descriptions are not stored, matching the insert path
		unset = append(unset, bson.E{Key: "description", Value: ""})
	case patch.Description != nil:
		set = append(set, bson.E{Key: "description", Value: *patch.Description})
	}

	update := bson.D{}
	if len(set) > 0 {
		update = append(update, bson.E{Key: "$set", Value: set})
	}
	if len(unset) > 0 {
		update = append(update, bson.E{Key: "$unset", Value: unset})
	}
	return update
}

func objectID(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.NilObjectID, notFound(id)
	}
	return oid, nil
}

func lookupErr(op, id string, err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return notFound(id)
	}
	return internal(op, err)
}

func notFound(id string) error {
	return menuerrors.NewWithContext(menuerrors.ErrCodeNotFound, menu.MsgNotFound, map[string]any{"id": id})
}

func internal(op string, err error) error {
	return menuerrors.Wrap(menuerrors.ErrCodeInternal, "mongo "+op+" failed", err)
}
