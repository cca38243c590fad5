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

// Package api implements the network map API servicer on top of the
// QueryService.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gridsuite/network-map-go/internal/common"
	"github.com/gridsuite/network-map-go/internal/common/model"
	"github.com/gridsuite/network-map-go/internal/networkmap"
	nmerrors "github.com/gridsuite/network-map-go/internal/networkmap/errors"
	"github.com/gridsuite/network-map-go/internal/networkmap/logger"
	"github.com/gridsuite/network-map-go/internal/networkmap/metrics"
	"github.com/gridsuite/network-map-go/internal/networkmap/topology"
	"github.com/google/uuid"
)

const componentName = "NETWORKMAP"

// NetworkMapAPIService implements the network map servicer.
type NetworkMapAPIService struct {
	queries *networkmap.QueryService
	metrics *metrics.Recorder
}

// NewNetworkMapAPIService creates a default api service. recorder may be nil.
func NewNetworkMapAPIService(queries *networkmap.QueryService, recorder *metrics.Recorder) *NetworkMapAPIService {
	return &NetworkMapAPIService{queries: queries, metrics: recorder}
}

// GetSubstations - Returns the substations of a network
func (s *NetworkMapAPIService) GetSubstations(ctx context.Context, networkUUID string, substationIDs []string) (model.ImplResponse, error) {
	return serve(ctx, s, "GetSubstations", topology.KindSubstation.String(), networkUUID, substationIDs, s.queries.Substations)
}

// GetLines - Returns the lines of a network
func (s *NetworkMapAPIService) GetLines(ctx context.Context, networkUUID string, substationIDs []string) (model.ImplResponse, error) {
	return serve(ctx, s, "GetLines", topology.KindLine.String(), networkUUID, substationIDs, s.queries.Lines)
}

// GetTwoWindingsTransformers - Returns the two windings transformers of a network
func (s *NetworkMapAPIService) GetTwoWindingsTransformers(ctx context.Context, networkUUID string, substationIDs []string) (model.ImplResponse, error) {
	return serve(ctx, s, "GetTwoWindingsTransformers", topology.KindTwoWindingsTransformer.String(), networkUUID, substationIDs, s.queries.TwoWindingsTransformers)
}

// GetThreeWindingsTransformers - Returns the three windings transformers of a network
func (s *NetworkMapAPIService) GetThreeWindingsTransformers(ctx context.Context, networkUUID string, substationIDs []string) (model.ImplResponse, error) {
	return serve(ctx, s, "GetThreeWindingsTransformers", topology.KindThreeWindingsTransformer.String(), networkUUID, substationIDs, s.queries.ThreeWindingsTransformers)
}

// GetGenerators - Returns the generators of a network
func (s *NetworkMapAPIService) GetGenerators(ctx context.Context, networkUUID string, substationIDs []string) (model.ImplResponse, error) {
	return serve(ctx, s, "GetGenerators", topology.KindGenerator.String(), networkUUID, substationIDs, s.queries.Generators)
}

// GetBatteries - Returns the batteries of a network
func (s *NetworkMapAPIService) GetBatteries(ctx context.Context, networkUUID string, substationIDs []string) (model.ImplResponse, error) {
	return serve(ctx, s, "GetBatteries", topology.KindBattery.String(), networkUUID, substationIDs, s.queries.Batteries)
}

// GetDanglingLines - Returns the dangling lines of a network
func (s *NetworkMapAPIService) GetDanglingLines(ctx context.Context, networkUUID string, substationIDs []string) (model.ImplResponse, error) {
	return serve(ctx, s, "GetDanglingLines", topology.KindDanglingLine.String(), networkUUID, substationIDs, s.queries.DanglingLines)
}

// GetHvdcLines - Returns the HVDC lines of a network
func (s *NetworkMapAPIService) GetHvdcLines(ctx context.Context, networkUUID string, substationIDs []string) (model.ImplResponse, error) {
	return serve(ctx, s, "GetHvdcLines", topology.KindHvdcLine.String(), networkUUID, substationIDs, s.queries.HvdcLines)
}

// GetLccConverterStations - Returns the LCC converter stations of a network
func (s *NetworkMapAPIService) GetLccConverterStations(ctx context.Context, networkUUID string, substationIDs []string) (model.ImplResponse, error) {
	return serve(ctx, s, "GetLccConverterStations", topology.KindLccConverterStation.String(), networkUUID, substationIDs, s.queries.LccConverterStations)
}

// GetVscConverterStations - Returns the VSC converter stations of a network
func (s *NetworkMapAPIService) GetVscConverterStations(ctx context.Context, networkUUID string, substationIDs []string) (model.ImplResponse, error) {
	return serve(ctx, s, "GetVscConverterStations", topology.KindVscConverterStation.String(), networkUUID, substationIDs, s.queries.VscConverterStations)
}

// GetLoads - Returns the loads of a network
func (s *NetworkMapAPIService) GetLoads(ctx context.Context, networkUUID string, substationIDs []string) (model.ImplResponse, error) {
	return serve(ctx, s, "GetLoads", topology.KindLoad.String(), networkUUID, substationIDs, s.queries.Loads)
}

// GetShuntCompensators - Returns the shunt compensators of a network
func (s *NetworkMapAPIService) GetShuntCompensators(ctx context.Context, networkUUID string, substationIDs []string) (model.ImplResponse, error) {
	return serve(ctx, s, "GetShuntCompensators", topology.KindShuntCompensator.String(), networkUUID, substationIDs, s.queries.ShuntCompensators)
}

// GetStaticVarCompensators - Returns the static var compensators of a network
func (s *NetworkMapAPIService) GetStaticVarCompensators(ctx context.Context, networkUUID string, substationIDs []string) (model.ImplResponse, error) {
	return serve(ctx, s, "GetStaticVarCompensators", topology.KindStaticVarCompensator.String(), networkUUID, substationIDs, s.queries.StaticVarCompensators)
}

// GetAll - Returns every collection of a network in one response
func (s *NetworkMapAPIService) GetAll(ctx context.Context, networkUUID string, substationIDs []string) (model.ImplResponse, error) {
	return serve(ctx, s, "GetAll", networkmap.KindAll, networkUUID, substationIDs, s.queries.All)
}

// serve parses the network id, runs query and maps its outcome to a response.
// Client errors are returned as a response with a nil error; server errors
// carry the error as well so that the controller hands them to its error
// handler.
func serve[R any](ctx context.Context, s *NetworkMapAPIService, operation string, kind string, networkUUID string, substationIDs []string, query func(context.Context, uuid.UUID, []string) (R, error)) (model.ImplResponse, error) {
	start := time.Now()
	scope := metrics.ScopeOf(substationIDs)

	id, err := uuid.Parse(networkUUID)
	if err != nil {
		logger.LogWarning("invalid network uuid", "operation", operation, "networkUuid", networkUUID)
		s.metrics.ObserveQuery(kind, scope, metrics.OutcomeBadRequest, time.Since(start))
		return common.NewErrorResponse(nmerrors.ErrInvalidNetworkUUID, http.StatusBadRequest, componentName, operation, "BadRequest-NetworkUuid"), nil
	}

	out, err := query(ctx, id, substationIDs)
	if err != nil {
		switch {
		case common.IsErrNotFound(err):
			logger.LogDebug("network map query found nothing", "operation", operation, "network", networkUUID, "error", err)
			s.metrics.ObserveQuery(kind, scope, metrics.OutcomeNotFound, time.Since(start))
			return common.NewErrorResponse(err, http.StatusNotFound, componentName, operation, "NotFound"), nil
		case common.IsErrBadRequest(err):
			s.metrics.ObserveQuery(kind, scope, metrics.OutcomeBadRequest, time.Since(start))
			return common.NewErrorResponse(err, http.StatusBadRequest, componentName, operation, "BadRequest"), nil
		default:
			logger.LogError(componentName+"-"+operation, err, "network", networkUUID, "substationIds", substationIDs)
			s.metrics.ObserveQuery(kind, scope, metrics.OutcomeServerError, time.Since(start))
			return common.NewErrorResponse(err, http.StatusInternalServerError, componentName, operation, "Unhandled"), err
		}
	}

	s.metrics.ObserveQuery(kind, scope, metrics.OutcomeSuccess, time.Since(start))
	return model.Response(http.StatusOK, out), nil
}
