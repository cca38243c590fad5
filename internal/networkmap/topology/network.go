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

package topology

import (
	"context"

	"github.com/gridsuite/network-map-go/internal/common/optional"
	"github.com/google/uuid"
)

// Network is a read-only handle on one network. Implementations must be safe
// for concurrent reads. Navigation methods may hit a backing store, hence the
// context and error returns.
type Network interface {
	// UUID returns the external network identifier.
	UUID() uuid.UUID
	// Substations returns every substation in network order.
	Substations(ctx context.Context) ([]*Substation, error)
	// Substation returns the substation with the given id, or nil when the id
	// does not resolve.
	Substation(ctx context.Context, id string) (*Substation, error)
	// Connectables returns every equipment of a connectable kind.
	Connectables(ctx context.Context, kind Kind) ([]Connectable, error)
	// VoltageLevelConnectables returns the equipment with at least one
	// terminal in the voltage level, each once, restricted to kinds when any
	// are given.
	VoltageLevelConnectables(ctx context.Context, voltageLevelID string, kinds ...Kind) ([]Connectable, error)
	// HvdcLines returns every HVDC line.
	HvdcLines(ctx context.Context) ([]*HvdcLine, error)
	// HvdcLine returns the HVDC line with the given id, or nil when absent.
	HvdcLine(ctx context.Context, id string) (*HvdcLine, error)
}

// Substation owns a sequence of voltage levels.
type Substation struct {
	Identifiable
	// Country is an ISO 3166 alpha-2 code, empty when undefined.
	Country       string
	VoltageLevels []*VoltageLevel
}

// VoltageLevel belongs to exactly one substation.
type VoltageLevel struct {
	Identifiable
	SubstationID string
	NominalV     float64
	Buses        []Bus
}

// Bus is a bus view node. V is undefined until a load flow ran.
type Bus struct {
	ID string
	V  optional.Value[float64]
}

// MatchesKinds reports whether c is of one of kinds; no kinds matches all.
func MatchesKinds(c Connectable, kinds []Kind) bool {
	if len(kinds) == 0 {
		return true
	}
	for _, k := range kinds {
		if c.Kind() == k {
			return true
		}
	}
	return false
}

// VoltageLevelIDs returns the distinct voltage levels c is attached to, in
// terminal order.
func VoltageLevelIDs(c Connectable) []string {
	terminals := c.Terminals()
	ids := make([]string, 0, len(terminals))
	for _, t := range terminals {
		seen := false
		for _, id := range ids {
			if id == t.VoltageLevelID {
				seen = true
				break
			}
		}
		if !seen {
			ids = append(ids, t.VoltageLevelID)
		}
	}
	return ids
}
