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

package aggregate

import (
	"context"
	"fmt"

	"github.com/gridsuite/network-map-go/internal/common/model"
	"github.com/gridsuite/network-map-go/internal/networkmap/mapper"
	"github.com/gridsuite/network-map-go/internal/networkmap/scope"
	"github.com/gridsuite/network-map-go/internal/networkmap/topology"
	"golang.org/x/sync/errgroup"
)

// All returns every collection of the network map in one response.
//
// Without a scope the thirteen collections are built concurrently. With a
// scope the voltage levels of the resolved substations are walked once and
// each connectable is dispatched to its collection on the way, so that a
// network loaded lazily is not visited thirteen times.
func All(ctx context.Context, n topology.Network, ids []string) (*model.AllMapData, error) {
	if ids == nil {
		return allUnscoped(ctx, n)
	}
	return allScoped(ctx, n, ids)
}

func allUnscoped(ctx context.Context, n topology.Network) (*model.AllMapData, error) {
	out := model.NewAllMapData()
	g, gctx := errgroup.WithContext(ctx)

	GoAssign(g, func() ([]model.SubstationMapData, error) { return Substations(gctx, n, nil) }, &out.Substations)
	GoAssign(g, func() ([]model.LineMapData, error) { return Lines(gctx, n, nil) }, &out.Lines)
	GoAssign(g, func() ([]model.GeneratorMapData, error) { return Generators(gctx, n, nil) }, &out.Generators)
	GoAssign(g, func() ([]model.TwoWindingsTransformerMapData, error) {
		return TwoWindingsTransformers(gctx, n, nil)
	}, &out.TwoWindingsTransformers)
	GoAssign(g, func() ([]model.ThreeWindingsTransformerMapData, error) {
		return ThreeWindingsTransformers(gctx, n, nil)
	}, &out.ThreeWindingsTransformers)
	GoAssign(g, func() ([]model.BatteryMapData, error) { return Batteries(gctx, n, nil) }, &out.Batteries)
	GoAssign(g, func() ([]model.DanglingLineMapData, error) { return DanglingLines(gctx, n, nil) }, &out.DanglingLines)
	GoAssign(g, func() ([]model.HvdcLineMapData, error) { return HvdcLines(gctx, n, nil) }, &out.HvdcLines)
	GoAssign(g, func() ([]model.LccConverterStationMapData, error) {
		return LccConverterStations(gctx, n, nil)
	}, &out.LccConverterStations)
	GoAssign(g, func() ([]model.VscConverterStationMapData, error) {
		return VscConverterStations(gctx, n, nil)
	}, &out.VscConverterStations)
	GoAssign(g, func() ([]model.LoadMapData, error) { return Loads(gctx, n, nil) }, &out.Loads)
	GoAssign(g, func() ([]model.ShuntCompensatorMapData, error) {
		return ShuntCompensators(gctx, n, nil)
	}, &out.ShuntCompensators)
	GoAssign(g, func() ([]model.StaticVarCompensatorMapData, error) {
		return StaticVarCompensators(gctx, n, nil)
	}, &out.StaticVarCompensators)

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func allScoped(ctx context.Context, n topology.Network, ids []string) (*model.AllMapData, error) {
	substations, err := scope.ResolveSubstations(ctx, n, ids)
	if err != nil {
		return nil, err
	}
	c := newCollector(n)
	if err := scope.Walk(ctx, n, substations, nil, func(eq topology.Connectable) error {
		return c.add(ctx, eq)
	}); err != nil {
		return nil, err
	}

	out := c.result()
	for _, s := range substations {
		out.Substations = append(out.Substations, mapper.ToSubstationMapData(s))
	}
	return out, nil
}

// collector accumulates one deduplicated collection per kind.
type collector struct {
	network topology.Network

	lines       scope.OrderedSet[model.LineMapData]
	twoWindings scope.OrderedSet[model.TwoWindingsTransformerMapData]
	threeWind   scope.OrderedSet[model.ThreeWindingsTransformerMapData]
	generators  scope.OrderedSet[model.GeneratorMapData]
	batteries   scope.OrderedSet[model.BatteryMapData]
	dangling    scope.OrderedSet[model.DanglingLineMapData]
	lcc         scope.OrderedSet[model.LccConverterStationMapData]
	vsc         scope.OrderedSet[model.VscConverterStationMapData]
	loads       scope.OrderedSet[model.LoadMapData]
	shunts      scope.OrderedSet[model.ShuntCompensatorMapData]
	svcs        scope.OrderedSet[model.StaticVarCompensatorMapData]
	hvdcLines   scope.OrderedSet[*topology.HvdcLine]
}

func newCollector(n topology.Network) *collector {
	return &collector{network: n}
}

func (c *collector) add(ctx context.Context, eq topology.Connectable) error {
	switch e := eq.(type) {
	case *topology.Line:
		collect(&c.lines, e, mapper.ToLineMapData)
	case *topology.TwoWindingsTransformer:
		collect(&c.twoWindings, e, mapper.ToTwoWindingsTransformerMapData)
	case *topology.ThreeWindingsTransformer:
		collect(&c.threeWind, e, mapper.ToThreeWindingsTransformerMapData)
	case *topology.Generator:
		collect(&c.generators, e, mapper.ToGeneratorMapData)
	case *topology.Battery:
		collect(&c.batteries, e, mapper.ToBatteryMapData)
	case *topology.DanglingLine:
		collect(&c.dangling, e, mapper.ToDanglingLineMapData)
	case *topology.Load:
		collect(&c.loads, e, mapper.ToLoadMapData)
	case *topology.ShuntCompensator:
		collect(&c.shunts, e, mapper.ToShuntCompensatorMapData)
	case *topology.StaticVarCompensator:
		collect(&c.svcs, e, mapper.ToStaticVarCompensatorMapData)
	case *topology.LccConverterStation:
		collect(&c.lcc, e, mapper.ToLccConverterStationMapData)
		return scope.AddHvdcLineOf(ctx, c.network, e, &c.hvdcLines)
	case *topology.VscConverterStation:
		collect(&c.vsc, e, mapper.ToVscConverterStationMapData)
		return scope.AddHvdcLineOf(ctx, c.network, e, &c.hvdcLines)
	default:
		return fmt.Errorf("unsupported connectable %T", eq)
	}
	return nil
}

func (c *collector) result() *model.AllMapData {
	out := model.NewAllMapData()
	out.Lines = c.lines.Values()
	out.TwoWindingsTransformers = c.twoWindings.Values()
	out.ThreeWindingsTransformers = c.threeWind.Values()
	out.Generators = c.generators.Values()
	out.Batteries = c.batteries.Values()
	out.DanglingLines = c.dangling.Values()
	out.LccConverterStations = c.lcc.Values()
	out.VscConverterStations = c.vsc.Values()
	out.Loads = c.loads.Values()
	out.ShuntCompensators = c.shunts.Values()
	out.StaticVarCompensators = c.svcs.Values()
	out.HvdcLines = projectHvdcLines(c.hvdcLines.Values())
	return out
}

// collect projects e only the first time its id is seen.
func collect[T topology.Connectable, R any](set *scope.OrderedSet[R], e T, project func(T) R) {
	if set.Contains(e.GetID()) {
		return
	}
	set.Add(e.GetID(), project(e))
}
