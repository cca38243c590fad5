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

// Package scope restricts network queries to the equipment reachable from the
// voltage levels of a set of substations.
//
// Substation ids are resolved up front: one unknown id fails the whole query
// with ErrSubstationNotFound before any equipment is visited. Equipment seen
// from several scoped voltage levels (a line between two scoped substations,
// say) is reported once, in first-seen order.
package scope

import (
	"context"
	"fmt"

	nmerrors "github.com/gridsuite/network-map-go/internal/networkmap/errors"
	"github.com/gridsuite/network-map-go/internal/networkmap/topology"
)

// ResolveSubstations returns the substations for ids in request order,
// dropping repeated ids.
func ResolveSubstations(ctx context.Context, n topology.Network, ids []string) ([]*topology.Substation, error) {
	set := NewOrderedSet[*topology.Substation](len(ids))
	for _, id := range ids {
		if set.Contains(id) {
			continue
		}
		s, err := n.Substation(ctx, id)
		if err != nil {
			return nil, err
		}
		if s == nil {
			return nil, fmt.Errorf("%w: %s", nmerrors.ErrSubstationNotFound, id)
		}
		set.Add(id, s)
	}
	return set.Values(), nil
}

// Walk calls visit for every equipment of kinds (all kinds when none are
// given) attached to the voltage levels of the substations, in traversal
// order. The same equipment may be visited more than once; callers dedup.
func Walk(ctx context.Context, n topology.Network, substations []*topology.Substation, kinds []topology.Kind, visit func(topology.Connectable) error) error {
	for _, s := range substations {
		for _, vl := range s.VoltageLevels {
			if err := ctx.Err(); err != nil {
				return err
			}
			connectables, err := n.VoltageLevelConnectables(ctx, vl.ID, kinds...)
			if err != nil {
				return err
			}
			for _, c := range connectables {
				if err := visit(c); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// Substations returns the scoped substations.
func Substations(ctx context.Context, n topology.Network, ids []string) ([]*topology.Substation, error) {
	return ResolveSubstations(ctx, n, ids)
}

// Connectables returns the distinct equipment of kind reachable from the
// substations ids.
func Connectables(ctx context.Context, n topology.Network, ids []string, kind topology.Kind) ([]topology.Connectable, error) {
	substations, err := ResolveSubstations(ctx, n, ids)
	if err != nil {
		return nil, err
	}
	set := NewOrderedSet[topology.Connectable](0)
	err = Walk(ctx, n, substations, []topology.Kind{kind}, func(c topology.Connectable) error {
		set.Add(c.GetID(), c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return set.Values(), nil
}

// HvdcLines returns the distinct HVDC lines attached to a converter station
// reachable from the substations ids. A line is included as soon as one of
// its two stations is in scope.
func HvdcLines(ctx context.Context, n topology.Network, ids []string) ([]*topology.HvdcLine, error) {
	substations, err := ResolveSubstations(ctx, n, ids)
	if err != nil {
		return nil, err
	}
	set := NewOrderedSet[*topology.HvdcLine](0)
	kinds := []topology.Kind{topology.KindLccConverterStation, topology.KindVscConverterStation}
	err = Walk(ctx, n, substations, kinds, func(c topology.Connectable) error {
		return AddHvdcLineOf(ctx, n, c, set)
	})
	if err != nil {
		return nil, err
	}
	return set.Values(), nil
}

// AddHvdcLineOf adds the HVDC line referenced by a converter station to set.
// Other connectables and unattached stations are ignored.
func AddHvdcLineOf(ctx context.Context, n topology.Network, c topology.Connectable, set *OrderedSet[*topology.HvdcLine]) error {
	id := topology.HvdcLineIDOf(c)
	if id == "" || set.Contains(id) {
		return nil
	}
	line, err := n.HvdcLine(ctx, id)
	if err != nil {
		return err
	}
	if line == nil {
		return fmt.Errorf("converter station %q references unknown hvdc line %q", c.GetID(), id)
	}
	set.Add(id, line)
	return nil
}
