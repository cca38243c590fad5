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

// Package aggregate runs the per-kind network map queries and the combined
// "all" query. A nil ids slice means the whole network; any other value
// restricts the query to the equipment reachable from those substations.
package aggregate

import (
	"context"
	"fmt"

	"github.com/gridsuite/network-map-go/internal/common/model"
	"github.com/gridsuite/network-map-go/internal/networkmap/mapper"
	"github.com/gridsuite/network-map-go/internal/networkmap/scope"
	"github.com/gridsuite/network-map-go/internal/networkmap/topology"
)

// Substations returns the substations of the network or of the scope.
func Substations(ctx context.Context, n topology.Network, ids []string) ([]model.SubstationMapData, error) {
	var (
		substations []*topology.Substation
		err         error
	)
	if ids == nil {
		substations, err = n.Substations(ctx)
	} else {
		substations, err = scope.Substations(ctx, n, ids)
	}
	if err != nil {
		return nil, err
	}
	out := make([]model.SubstationMapData, 0, len(substations))
	for _, s := range substations {
		out = append(out, mapper.ToSubstationMapData(s))
	}
	return out, nil
}

// HvdcLines returns the HVDC lines of the network, or those attached to a
// converter station in scope.
func HvdcLines(ctx context.Context, n topology.Network, ids []string) ([]model.HvdcLineMapData, error) {
	var (
		lines []*topology.HvdcLine
		err   error
	)
	if ids == nil {
		lines, err = n.HvdcLines(ctx)
	} else {
		lines, err = scope.HvdcLines(ctx, n, ids)
	}
	if err != nil {
		return nil, err
	}
	return projectHvdcLines(lines), nil
}

// Lines projects the lines in scope.
func Lines(ctx context.Context, n topology.Network, ids []string) ([]model.LineMapData, error) {
	return connectables(ctx, n, ids, topology.KindLine, mapper.ToLineMapData)
}

// TwoWindingsTransformers projects the two windings transformers in scope.
func TwoWindingsTransformers(ctx context.Context, n topology.Network, ids []string) ([]model.TwoWindingsTransformerMapData, error) {
	return connectables(ctx, n, ids, topology.KindTwoWindingsTransformer, mapper.ToTwoWindingsTransformerMapData)
}

// ThreeWindingsTransformers projects the three windings transformers in scope.
func ThreeWindingsTransformers(ctx context.Context, n topology.Network, ids []string) ([]model.ThreeWindingsTransformerMapData, error) {
	return connectables(ctx, n, ids, topology.KindThreeWindingsTransformer, mapper.ToThreeWindingsTransformerMapData)
}

// Generators projects the generators in scope.
func Generators(ctx context.Context, n topology.Network, ids []string) ([]model.GeneratorMapData, error) {
	return connectables(ctx, n, ids, topology.KindGenerator, mapper.ToGeneratorMapData)
}

// Batteries projects the batteries in scope.
func Batteries(ctx context.Context, n topology.Network, ids []string) ([]model.BatteryMapData, error) {
	return connectables(ctx, n, ids, topology.KindBattery, mapper.ToBatteryMapData)
}

// DanglingLines projects the dangling lines in scope.
func DanglingLines(ctx context.Context, n topology.Network, ids []string) ([]model.DanglingLineMapData, error) {
	return connectables(ctx, n, ids, topology.KindDanglingLine, mapper.ToDanglingLineMapData)
}

// LccConverterStations projects the LCC converter stations in scope.
func LccConverterStations(ctx context.Context, n topology.Network, ids []string) ([]model.LccConverterStationMapData, error) {
	return connectables(ctx, n, ids, topology.KindLccConverterStation, mapper.ToLccConverterStationMapData)
}

// VscConverterStations projects the VSC converter stations in scope.
func VscConverterStations(ctx context.Context, n topology.Network, ids []string) ([]model.VscConverterStationMapData, error) {
	return connectables(ctx, n, ids, topology.KindVscConverterStation, mapper.ToVscConverterStationMapData)
}

// Loads projects the loads in scope.
func Loads(ctx context.Context, n topology.Network, ids []string) ([]model.LoadMapData, error) {
	return connectables(ctx, n, ids, topology.KindLoad, mapper.ToLoadMapData)
}

// ShuntCompensators projects the shunt compensators in scope.
func ShuntCompensators(ctx context.Context, n topology.Network, ids []string) ([]model.ShuntCompensatorMapData, error) {
	return connectables(ctx, n, ids, topology.KindShuntCompensator, mapper.ToShuntCompensatorMapData)
}

// StaticVarCompensators projects the static var compensators in scope.
func StaticVarCompensators(ctx context.Context, n topology.Network, ids []string) ([]model.StaticVarCompensatorMapData, error) {
	return connectables(ctx, n, ids, topology.KindStaticVarCompensator, mapper.ToStaticVarCompensatorMapData)
}

// Kind runs the query for one kind and returns its collection.
func Kind(ctx context.Context, n topology.Network, kind topology.Kind, ids []string) (any, error) {
	switch kind {
	case topology.KindSubstation:
		return Substations(ctx, n, ids)
	case topology.KindLine:
		return Lines(ctx, n, ids)
	case topology.KindTwoWindingsTransformer:
		return TwoWindingsTransformers(ctx, n, ids)
	case topology.KindThreeWindingsTransformer:
		return ThreeWindingsTransformers(ctx, n, ids)
	case topology.KindGenerator:
		return Generators(ctx, n, ids)
	case topology.KindBattery:
		return Batteries(ctx, n, ids)
	case topology.KindDanglingLine:
		return DanglingLines(ctx, n, ids)
	case topology.KindHvdcLine:
		return HvdcLines(ctx, n, ids)
	case topology.KindLccConverterStation:
		return LccConverterStations(ctx, n, ids)
	case topology.KindVscConverterStation:
		return VscConverterStations(ctx, n, ids)
	case topology.KindLoad:
		return Loads(ctx, n, ids)
	case topology.KindShuntCompensator:
		return ShuntCompensators(ctx, n, ids)
	case topology.KindStaticVarCompensator:
		return StaticVarCompensators(ctx, n, ids)
	}
	return nil, fmt.Errorf("unsupported equipment kind %q", kind)
}

func connectables[T topology.Connectable, R any](ctx context.Context, n topology.Network, ids []string, kind topology.Kind, project func(T) R) ([]R, error) {
	var (
		found []topology.Connectable
		err   error
	)
	if ids == nil {
		found, err = n.Connectables(ctx, kind)
	} else {
		found, err = scope.Connectables(ctx, n, ids, kind)
	}
	if err != nil {
		return nil, err
	}
	out := make([]R, 0, len(found))
	for _, c := range found {
		typed, ok := c.(T)
		if !ok {
			return nil, fmt.Errorf("connectable %q of kind %s has unexpected type %T", c.GetID(), kind, c)
		}
		out = append(out, project(typed))
	}
	return out, nil
}

func projectHvdcLines(lines []*topology.HvdcLine) []model.HvdcLineMapData {
	out := make([]model.HvdcLineMapData, 0, len(lines))
	for _, l := range lines {
		out = append(out, mapper.ToHvdcLineMapData(l))
	}
	return out
}
