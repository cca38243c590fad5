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

// Package persistence defines how the network map service obtains networks
// from a backing store.
//
// Document backends (file system, S3) hand out complete networks. Row
// oriented backends (postgres, mongodb) implement Loader and are wrapped with
// NewLoaderStore, which either bulk-loads every collection or returns a lazy
// Network that fetches what each navigation step needs.
package persistence

import (
	"context"
	"fmt"

	nmerrors "github.com/gridsuite/network-map-go/internal/networkmap/errors"
	"github.com/gridsuite/network-map-go/internal/networkmap/persistence/snapshot"
	"github.com/gridsuite/network-map-go/internal/networkmap/topology"
	"github.com/google/uuid"
)

// ErrNetworkNotFound is returned by stores for an unknown network id.
var ErrNetworkNotFound = nmerrors.ErrNetworkNotFound

// PreloadingStrategy tells the store how much of a network to fetch up front.
type PreloadingStrategy int

const (
	// None fetches data lazily, as the caller navigates.
	None PreloadingStrategy = iota
	// Collection fetches every collection of the network at once.
	Collection
)

func (s PreloadingStrategy) String() string {
	switch s {
	case None:
		return "NONE"
	case Collection:
		return "COLLECTION"
	}
	return fmt.Sprintf("PreloadingStrategy(%d)", int(s))
}

// NetworkStore resolves a network id to a navigable network.
type NetworkStore interface {
	GetNetwork(ctx context.Context, id uuid.UUID, strategy PreloadingStrategy) (topology.Network, error)
}

// Loader reads the record collections of stored networks. For every filter a
// nil slice means no restriction, an empty non-nil slice matches nothing.
// Results are returned in network order.
type Loader interface {
	NetworkExists(ctx context.Context, id uuid.UUID) (bool, error)
	LoadSubstations(ctx context.Context, id uuid.UUID, substationIDs []string) ([]snapshot.Substation, error)
	// LoadEquipment returns the equipment with at least one side in one of
	// voltageLevelIDs, of one of kinds.
	LoadEquipment(ctx context.Context, id uuid.UUID, voltageLevelIDs []string, kinds []topology.Kind) ([]snapshot.Equipment, error)
	LoadHvdcLines(ctx context.Context, id uuid.UUID, hvdcLineIDs []string) ([]snapshot.HvdcLine, error)
}

// NotFound wraps ErrNetworkNotFound with the network id.
func NotFound(id uuid.UUID) error {
	return fmt.Errorf("%w: %s", ErrNetworkNotFound, id)
}

// Corrupt wraps ErrCorruptNetwork with the network id and the decoding failure.
func Corrupt(id uuid.UUID, err error) error {
	return fmt.Errorf("%w: network %s: %w", nmerrors.ErrCorruptNetwork, id, err)
}
