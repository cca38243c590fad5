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

// Package networkmap answers network map queries: it picks how much of a
// network to load, runs the per-kind or combined aggregation and returns the
// presentation records.
package networkmap

import (
	"context"

	"github.com/gridsuite/network-map-go/internal/common/model"
	"github.com/gridsuite/network-map-go/internal/networkmap/aggregate"
	"github.com/gridsuite/network-map-go/internal/networkmap/persistence"
	"github.com/gridsuite/network-map-go/internal/networkmap/topology"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "networkmap"

// KindAll names the combined query in spans and metrics.
const KindAll = "ALL"

// QueryService runs network map queries against a NetworkStore. It holds no
// mutable state and is safe for concurrent use.
type QueryService struct {
	store  persistence.NetworkStore
	tracer trace.Tracer
}

// Option configures a QueryService.
type Option func(*QueryService)

// WithTracerProvider replaces the global tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *QueryService) {
		s.tracer = tp.Tracer(tracerName)
	}
}

// NewQueryService creates a QueryService reading from store.
func NewQueryService(store persistence.NetworkStore, opts ...Option) *QueryService {
	s := &QueryService{store: store, tracer: otel.Tracer(tracerName)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// StrategyFor returns the preloading strategy for a scope: whole-network
// queries load every collection at once, scoped queries load lazily.
func StrategyFor(substationIDs []string) persistence.PreloadingStrategy {
	if len(substationIDs) == 0 {
		return persistence.Collection
	}
	return persistence.None
}

// normalizeScope maps an empty scope to no scope.
func normalizeScope(substationIDs []string) []string {
	if len(substationIDs) == 0 {
		return nil
	}
	return substationIDs
}

// Query returns the collection of one kind. The concrete slice type depends
// on kind, e.g. []model.LineMapData for topology.KindLine.
func (s *QueryService) Query(ctx context.Context, kind topology.Kind, networkUUID uuid.UUID, substationIDs []string) (any, error) {
	return run(ctx, s, kind.String(), networkUUID, substationIDs, func(ctx context.Context, n topology.Network, ids []string) (any, error) {
		return aggregate.Kind(ctx, n, kind, ids)
	})
}

// All returns every collection in one record.
func (s *QueryService) All(ctx context.Context, networkUUID uuid.UUID, substationIDs []string) (*model.AllMapData, error) {
	return run(ctx, s, KindAll, networkUUID, substationIDs, aggregate.All)
}

// Substations returns the substations of a network.
func (s *QueryService) Substations(ctx context.Context, networkUUID uuid.UUID, substationIDs []string) ([]model.SubstationMapData, error) {
	return run(ctx, s, topology.KindSubstation.String(), networkUUID, substationIDs, aggregate.Substations)
}

// Lines returns the lines of a network.
func (s *QueryService) Lines(ctx context.Context, networkUUID uuid.UUID, substationIDs []string) ([]model.LineMapData, error) {
	return run(ctx, s, topology.KindLine.String(), networkUUID, substationIDs, aggregate.Lines)
}

// TwoWindingsTransformers returns the two windings transformers of a network.
func (s *QueryService) TwoWindingsTransformers(ctx context.Context, networkUUID uuid.UUID, substationIDs []string) ([]model.TwoWindingsTransformerMapData, error) {
	return run(ctx, s, topology.KindTwoWindingsTransformer.String(), networkUUID, substationIDs, aggregate.TwoWindingsTransformers)
}

// ThreeWindingsTransformers returns the three windings transformers of a network.
func (s *QueryService) ThreeWindingsTransformers(ctx context.Context, networkUUID uuid.UUID, substationIDs []string) ([]model.ThreeWindingsTransformerMapData, error) {
	return run(ctx, s, topology.KindThreeWindingsTransformer.String(), networkUUID, substationIDs, aggregate.ThreeWindingsTransformers)
}

// Generators returns the generators of a network.
func (s *QueryService) Generators(ctx context.Context, networkUUID uuid.UUID, substationIDs []string) ([]model.GeneratorMapData, error) {
	return run(ctx, s, topology.KindGenerator.String(), networkUUID, substationIDs, aggregate.Generators)
}

// Batteries returns the batteries of a network.
func (s *QueryService) Batteries(ctx context.Context, networkUUID uuid.UUID, substationIDs []string) ([]model.BatteryMapData, error) {
	return run(ctx, s, topology.KindBattery.String(), networkUUID, substationIDs, aggregate.Batteries)
}

// DanglingLines returns the dangling lines of a network.
func (s *QueryService) DanglingLines(ctx context.Context, networkUUID uuid.UUID, substationIDs []string) ([]model.DanglingLineMapData, error) {
	return run(ctx, s, topology.KindDanglingLine.String(), networkUUID, substationIDs, aggregate.DanglingLines)
}

// HvdcLines returns the HVDC lines of a network.
func (s *QueryService) HvdcLines(ctx context.Context, networkUUID uuid.UUID, substationIDs []string) ([]model.HvdcLineMapData, error) {
	return run(ctx, s, topology.KindHvdcLine.String(), networkUUID, substationIDs, aggregate.HvdcLines)
}

// LccConverterStations returns the LCC converter stations of a network.
func (s *QueryService) LccConverterStations(ctx context.Context, networkUUID uuid.UUID, substationIDs []string) ([]model.LccConverterStationMapData, error) {
	return run(ctx, s, topology.KindLccConverterStation.String(), networkUUID, substationIDs, aggregate.LccConverterStations)
}

// VscConverterStations returns the VSC converter stations of a network.
func (s *QueryService) VscConverterStations(ctx context.Context, networkUUID uuid.UUID, substationIDs []string) ([]model.VscConverterStationMapData, error) {
	return run(ctx, s, topology.KindVscConverterStation.String(), networkUUID, substationIDs, aggregate.VscConverterStations)
}

// Loads returns the loads of a network.
func (s *QueryService) Loads(ctx context.Context, networkUUID uuid.UUID, substationIDs []string) ([]model.LoadMapData, error) {
	return run(ctx, s, topology.KindLoad.String(), networkUUID, substationIDs, aggregate.Loads)
}

// ShuntCompensators returns the shunt compensators of a network.
func (s *QueryService) ShuntCompensators(ctx context.Context, networkUUID uuid.UUID, substationIDs []string) ([]model.ShuntCompensatorMapData, error) {
	return run(ctx, s, topology.KindShuntCompensator.String(), networkUUID, substationIDs, aggregate.ShuntCompensators)
}

// StaticVarCompensators returns the static var compensators of a network.
func (s *QueryService) StaticVarCompensators(ctx context.Context, networkUUID uuid.UUID, substationIDs []string) ([]model.StaticVarCompensatorMapData, error) {
	return run(ctx, s, topology.KindStaticVarCompensator.String(), networkUUID, substationIDs, aggregate.StaticVarCompensators)
}

// run fetches the network with the strategy matching the scope and hands it
// to query inside a span.
func run[R any](ctx context.Context, s *QueryService, kind string, networkUUID uuid.UUID, substationIDs []string, query func(context.Context, topology.Network, []string) (R, error)) (R, error) {
	ids := normalizeScope(substationIDs)
	strategy := StrategyFor(ids)

	ctx, span := s.tracer.Start(ctx, "networkmap.query."+kind, trace.WithAttributes(
		attribute.String("networkmap.kind", kind),
		attribute.String("networkmap.network_uuid", networkUUID.String()),
		attribute.Int("networkmap.scope_size", len(ids)),
		attribute.String("networkmap.preloading_strategy", strategy.String()),
	))
	defer span.End()

	var zero R
	n, err := s.store.GetNetwork(ctx, networkUUID, strategy)
	if err != nil {
		recordError(span, err)
		return zero, err
	}
	out, err := query(ctx, n, ids)
	if err != nil {
		recordError(span, err)
		return zero, err
	}
	return out, nil
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
