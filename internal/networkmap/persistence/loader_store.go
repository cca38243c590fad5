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

package persistence

import (
	"context"

	"github.com/gridsuite/network-map-go/internal/networkmap/persistence/snapshot"
	"github.com/gridsuite/network-map-go/internal/networkmap/topology"
	"github.com/google/uuid"
)

// LoaderStore serves networks from a Loader.
type LoaderStore struct {
	loader Loader
}

// NewLoaderStore wraps loader into a NetworkStore.
func NewLoaderStore(loader Loader) *LoaderStore {
	return &LoaderStore{loader: loader}
}

// GetNetwork implements NetworkStore. With Collection the whole network is
// read and checked before returning; with None only existence is checked.
func (s *LoaderStore) GetNetwork(ctx context.Context, id uuid.UUID, strategy PreloadingStrategy) (topology.Network, error) {
	exists, err := s.loader.NetworkExists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, NotFound(id)
	}
	if strategy == None {
		return &lazyNetwork{id: id, loader: s.loader}, nil
	}

	substations, err := s.loader.LoadSubstations(ctx, id, nil)
	if err != nil {
		return nil, err
	}
	equipment, err := s.loader.LoadEquipment(ctx, id, nil, nil)
	if err != nil {
		return nil, err
	}
	hvdcLines, err := s.loader.LoadHvdcLines(ctx, id, nil)
	if err != nil {
		return nil, err
	}
	g, err := snapshot.BuildGraphFromRecords(id, substations, equipment, hvdcLines)
	if err != nil {
		return nil, Corrupt(id, err)
	}
	return g, nil
}

// lazyNetwork issues one loader call per navigation step and keeps nothing
// between calls. Converter stations carry their HVDC line id in the stored
// record, so no line lookup is needed to resolve the back-reference.
type lazyNetwork struct {
	id     uuid.UUID
	loader Loader
}

func (n *lazyNetwork) UUID() uuid.UUID {
	return n.id
}

func (n *lazyNetwork) Substations(ctx context.Context) ([]*topology.Substation, error) {
	return n.substations(ctx, nil)
}

func (n *lazyNetwork) Substation(ctx context.Context, id string) (*topology.Substation, error) {
	substations, err := n.substations(ctx, []string{id})
	if err != nil || len(substations) == 0 {
		return nil, err
	}
	return substations[0], nil
}

func (n *lazyNetwork) Connectables(ctx context.Context, kind topology.Kind) ([]topology.Connectable, error) {
	return n.equipment(ctx, nil, []topology.Kind{kind})
}

func (n *lazyNetwork) VoltageLevelConnectables(ctx context.Context, voltageLevelID string, kinds ...topology.Kind) ([]topology.Connectable, error) {
	if len(kinds) == 0 {
		kinds = nil
	}
	return n.equipment(ctx, []string{voltageLevelID}, kinds)
}

func (n *lazyNetwork) HvdcLines(ctx context.Context) ([]*topology.HvdcLine, error) {
	return n.hvdcLines(ctx, nil)
}

func (n *lazyNetwork) HvdcLine(ctx context.Context, id string) (*topology.HvdcLine, error) {
	lines, err := n.hvdcLines(ctx, []string{id})
	if err != nil || len(lines) == 0 {
		return nil, err
	}
	return lines[0], nil
}

func (n *lazyNetwork) substations(ctx context.Context, ids []string) ([]*topology.Substation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	records, err := n.loader.LoadSubstations(ctx, n.id, ids)
	if err != nil {
		return nil, err
	}
	out := make([]*topology.Substation, 0, len(records))
	for _, rec := range records {
		out = append(out, snapshot.DecodeSubstation(rec))
	}
	return out, nil
}

func (n *lazyNetwork) equipment(ctx context.Context, voltageLevelIDs []string, kinds []topology.Kind) ([]topology.Connectable, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	records, err := n.loader.LoadEquipment(ctx, n.id, voltageLevelIDs, kinds)
	if err != nil {
		return nil, err
	}
	out := make([]topology.Connectable, 0, len(records))
	for _, rec := range records {
		c, err := snapshot.DecodeEquipment(rec)
		if err != nil {
			return nil, Corrupt(n.id, err)
		}
		out = append(out, c)
	}
	return out, nil
}

func (n *lazyNetwork) hvdcLines(ctx context.Context, ids []string) ([]*topology.HvdcLine, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	records, err := n.loader.LoadHvdcLines(ctx, n.id, ids)
	if err != nil {
		return nil, err
	}
	out := make([]*topology.HvdcLine, 0, len(records))
	for _, rec := range records {
		out = append(out, snapshot.DecodeHvdcLine(rec))
	}
	return out, nil
}
