/*******************************************************************************
* Copyright (C) 2026 the Eclipse BaSyx Authors and Fraunhofer IESE
*
* Permission is hereby granted, free of charge, to any person obtaining
* a copy of this software and associated documentation files (the
* "Software"), to deal in the Software without restriction, including
* without limitation the rights to use, copy, modify, merge, publish,
* distribute, sublicense, and/or sell copies of the Software, and to
* permit persons to whom the Software is furnished to do so, subject to
* the following conditions:
*
* The above copyright notice and this permission notice shall be
* included in all copies or substantial portions of the Software.
*
* THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
* EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
* MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
* NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE
* LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION
* OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION
* WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
*
* SPDX-License-Identifier: MIT
******************************************************************************/

// Package mongodb stores the network map read model in MongoDB, one
// collection per record type, each document tagged with its network and its
// position in network order.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	nmerrors "github.com/gridsuite/network-map-go/internal/networkmap/errors"
	"github.com/gridsuite/network-map-go/internal/networkmap/logger"
	"github.com/gridsuite/network-map-go/internal/networkmap/persistence"
	"github.com/gridsuite/network-map-go/internal/networkmap/persistence/snapshot"
	"github.com/gridsuite/network-map-go/internal/networkmap/topology"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoNetworkLoader implements persistence.Loader and persistence.Writer.
type MongoNetworkLoader struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongoNetworkLoader connects to uri and checks the connection.
func NewMongoNetworkLoader(ctx context.Context, uri string, database string, connectTimeout time.Duration) (*MongoNetworkLoader, error) {
	opts := options.Client().ApplyURI(uri)
	if connectTimeout > 0 {
		opts.SetConnectTimeout(connectTimeout)
	}
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("NMMONGO-NEWLOADER-CONNECT %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("NMMONGO-NEWLOADER-PING %w", err)
	}
	l := NewMongoNetworkLoaderFromDatabase(client.Database(database))
	l.client = client
	return l, nil
}

// NewMongoNetworkLoaderFromDatabase wraps an existing database handle.
func NewMongoNetworkLoaderFromDatabase(db *mongo.Database) *MongoNetworkLoader {
	return &MongoNetworkLoader{db: db}
}

// Close disconnects the client created by NewMongoNetworkLoader.
func (m *MongoNetworkLoader) Close(ctx context.Context) error {
	if m.client == nil {
		return nil
	}
	return m.client.Disconnect(ctx)
}

// NetworkExists implements persistence.Loader.
func (m *MongoNetworkLoader) NetworkExists(ctx context.Context, id uuid.UUID) (bool, error) {
	count, err := m.db.Collection(collectionNetworks).CountDocuments(ctx, networkFilter(id), options.Count().SetLimit(1))
	if err != nil {
		return false, unavailable("NMMONGO-EXISTS-COUNT", err)
	}
	return count > 0, nil
}

// LoadSubstations implements persistence.Loader.
func (m *MongoNetworkLoader) LoadSubstations(ctx context.Context, id uuid.UUID, substationIDs []string) ([]snapshot.Substation, error) {
	if substationIDs != nil && len(substationIDs) == 0 {
		return []snapshot.Substation{}, nil
	}
	docs, err := find[substationDocument](ctx, m.db.Collection(collectionSubstations), substationFilter(id, substationIDs), id, "NMMONGO-LOADSUBST")
	if err != nil {
		return nil, err
	}
	out := make([]snapshot.Substation, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.Substation)
	}
	return out, nil
}

// LoadEquipment implements persistence.Loader.
func (m *MongoNetworkLoader) LoadEquipment(ctx context.Context, id uuid.UUID, voltageLevelIDs []string, kinds []topology.Kind) ([]snapshot.Equipment, error) {
	if (voltageLevelIDs != nil && len(voltageLevelIDs) == 0) || (kinds != nil && len(kinds) == 0) {
		return []snapshot.Equipment{}, nil
	}
	docs, err := find[equipmentDocument](ctx, m.db.Collection(collectionEquipment), equipmentFilter(id, voltageLevelIDs, kinds), id, "NMMONGO-LOADEQUIP")
	if err != nil {
		return nil, err
	}
	out := make([]snapshot.Equipment, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.Equipment)
	}
	return out, nil
}

// LoadHvdcLines implements persistence.Loader.
func (m *MongoNetworkLoader) LoadHvdcLines(ctx context.Context, id uuid.UUID, hvdcLineIDs []string) ([]snapshot.HvdcLine, error) {
	if hvdcLineIDs != nil && len(hvdcLineIDs) == 0 {
		return []snapshot.HvdcLine{}, nil
	}
	docs, err := find[hvdcLineDocument](ctx, m.db.Collection(collectionHvdcLines), hvdcLineFilter(id, hvdcLineIDs), id, "NMMONGO-LOADHVDC")
	if err != nil {
		return nil, err
	}
	out := make([]snapshot.HvdcLine, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.HvdcLine)
	}
	return out, nil
}

// PutNetwork implements persistence.Writer. The network document is removed
// first and written last, so readers see either the old network, no network,
// or the complete new one.
func (m *MongoNetworkLoader) PutNetwork(ctx context.Context, doc *snapshot.Document) error {
	if _, err := snapshot.BuildGraph(doc); err != nil {
		return persistence.Corrupt(doc.ID, err)
	}
	if _, err := m.db.Collection(collectionNetworks).DeleteOne(ctx, networkFilter(doc.ID)); err != nil {
		return unavailable("NMMONGO-PUTNET-DELNET", err)
	}
	if err := m.deleteRecords(ctx, doc.ID); err != nil {
		return err
	}
	inserts := []struct {
		collection string
		docs       []any
	}{
		{collectionSubstations, substationDocuments(doc.ID, doc.Substations)},
		{collectionEquipment, equipmentDocuments(doc.ID, doc.Equipment)},
		{collectionHvdcLines, hvdcLineDocuments(doc.ID, doc.HvdcLines)},
	}
	for _, ins := range inserts {
		if len(ins.docs) == 0 {
			continue
		}
		if _, err := m.db.Collection(ins.collection).InsertMany(ctx, ins.docs); err != nil {
			return unavailable("NMMONGO-PUTNET-INSERT-"+ins.collection, err)
		}
	}
	if _, err := m.db.Collection(collectionNetworks).InsertOne(ctx, networkDocument{ID: doc.ID.String()}); err != nil {
		return unavailable("NMMONGO-PUTNET-INSERTNET", err)
	}
	return nil
}

// DeleteNetwork implements persistence.Writer.
func (m *MongoNetworkLoader) DeleteNetwork(ctx context.Context, id uuid.UUID) error {
	res, err := m.db.Collection(collectionNetworks).DeleteOne(ctx, networkFilter(id))
	if err != nil {
		return unavailable("NMMONGO-DELNET-DELNET", err)
	}
	if res.DeletedCount == 0 {
		return persistence.NotFound(id)
	}
	return m.deleteRecords(ctx, id)
}

func (m *MongoNetworkLoader) deleteRecords(ctx context.Context, id uuid.UUID) error {
	for _, c := range []string{collectionSubstations, collectionEquipment, collectionHvdcLines} {
		if _, err := m.db.Collection(c).DeleteMany(ctx, byNetwork(id)); err != nil {
			return unavailable("NMMONGO-DELRECORDS-"+c, err)
		}
	}
	return nil
}

func find[T any](ctx context.Context, c *mongo.Collection, filter bson.D, id uuid.UUID, code string) ([]T, error) {
	cursor, err := c.Find(ctx, filter, findInNetworkOrder())
	if err != nil {
		return nil, unavailable(code+"-FIND", err)
	}
	defer func() {
		if closeErr := cursor.Close(ctx); closeErr != nil {
			logger.LogError(code+"-CLOSECURSOR failed to close cursor", closeErr)
		}
	}()
	docs := make([]T, 0)
	for cursor.Next(ctx) {
		var d T
		if err := cursor.Decode(&d); err != nil {
			return nil, persistence.Corrupt(id, fmt.Errorf("%s-DECODE %w", code, err))
		}
		docs = append(docs, d)
	}
	if err := cursor.Err(); err != nil {
		return nil, unavailable(code+"-CURSOR", err)
	}
	return docs, nil
}

// unavailable logs err under code and wraps it with ErrStoreUnavailable.
// Context cancellation is passed through unchanged.
func unavailable(code string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	logger.LogError(code, err)
	return fmt.Errorf("%w: %s: %w", nmerrors.ErrStoreUnavailable, code, err)
}
