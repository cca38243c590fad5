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

// Package inmemory provides a map-backed network store. It serves tests and
// single-node deployments without a database.
package inmemory

import (
	"context"
	"sync"

	"github.com/gridsuite/network-map-go/internal/networkmap/persistence"
	"github.com/gridsuite/network-map-go/internal/networkmap/persistence/snapshot"
	"github.com/gridsuite/network-map-go/internal/networkmap/topology"
	"github.com/google/uuid"
)

// InMemoryNetworkStore keeps every network both as its record document and as
// a prebuilt graph. Collection reads return the shared graph; None reads go
// through the lazy loader path over the documents.
type InMemoryNetworkStore struct {
	mu        sync.RWMutex
	documents map[uuid.UUID]*snapshot.Document
	graphs    map[uuid.UUID]*topology.Graph
	lazy      *persistence.LoaderStore
}

// NewInMemoryNetworkStore creates an empty store.
func NewInMemoryNetworkStore() *InMemoryNetworkStore {
	s := &InMemoryNetworkStore{
		documents: map[uuid.UUID]*snapshot.Document{},
		graphs:    map[uuid.UUID]*topology.Graph{},
	}
	s.lazy = persistence.NewLoaderStore(s)
	return s
}

// PutNetwork implements persistence.Writer. A network with the same id is
// replaced.
func (s *InMemoryNetworkStore) PutNetwork(_ context.Context, doc *snapshot.Document) error {
	g, err := snapshot.BuildGraph(doc)
	if err != nil {
		return persistence.Corrupt(doc.ID, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents[doc.ID] = doc
	s.graphs[doc.ID] = g
	return nil
}

// DeleteNetwork implements persistence.Writer.
func (s *InMemoryNetworkStore) DeleteNetwork(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.documents[id]; !exists {
		return persistence.NotFound(id)
	}
	delete(s.documents, id)
	delete(s.graphs, id)
	return nil
}

// GetNetwork implements persistence.NetworkStore.
func (s *InMemoryNetworkStore) GetNetwork(ctx context.Context, id uuid.UUID, strategy persistence.PreloadingStrategy) (topology.Network, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strategy == persistence.None {
		return s.lazy.GetNetwork(ctx, id, strategy)
	}
	s.mu.RLock()
	g, exists := s.graphs[id]
	s.mu.RUnlock()
	if !exists {
		return nil, persistence.NotFound(id)
	}
	return g, nil
}

// NetworkExists implements persistence.Loader.
func (s *InMemoryNetworkStore) NetworkExists(_ context.Context, id uuid.UUID) (bool, error) {
	_, exists := s.document(id)
	return exists, nil
}

// LoadSubstations implements persistence.Loader.
func (s *InMemoryNetworkStore) LoadSubstations(_ context.Context, id uuid.UUID, substationIDs []string) ([]snapshot.Substation, error) {
	doc, exists := s.document(id)
	if !exists {
		return nil, persistence.NotFound(id)
	}
	return doc.SelectSubstations(substationIDs), nil
}

// LoadEquipment implements persistence.Loader.
func (s *InMemoryNetworkStore) LoadEquipment(_ context.Context, id uuid.UUID, voltageLevelIDs []string, kinds []topology.Kind) ([]snapshot.Equipment, error) {
	doc, exists := s.document(id)
	if !exists {
		return nil, persistence.NotFound(id)
	}
	return doc.SelectEquipment(voltageLevelIDs, kinds), nil
}

// LoadHvdcLines implements persistence.Loader.
func (s *InMemoryNetworkStore) LoadHvdcLines(_ context.Context, id uuid.UUID, hvdcLineIDs []string) ([]snapshot.HvdcLine, error) {
	doc, exists := s.document(id)
	if !exists {
		return nil, persistence.NotFound(id)
	}
	return doc.SelectHvdcLines(hvdcLineIDs), nil
}

func (s *InMemoryNetworkStore) document(id uuid.UUID) (*snapshot.Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, exists := s.documents[id]
	return doc, exists
}
