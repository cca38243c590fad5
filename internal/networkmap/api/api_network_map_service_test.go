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

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gridsuite/network-map-go/internal/common"
	"github.com/gridsuite/network-map-go/internal/common/model"
	"github.com/gridsuite/network-map-go/internal/networkmap"
	nmerrors "github.com/gridsuite/network-map-go/internal/networkmap/errors"
	"github.com/gridsuite/network-map-go/internal/networkmap/metrics"
	"github.com/gridsuite/network-map-go/internal/networkmap/persistence"
	"github.com/gridsuite/network-map-go/internal/networkmap/persistence/inmemory"
	"github.com/gridsuite/network-map-go/internal/networkmap/topology"
	"github.com/gridsuite/network-map-go/internal/networkmap/topology/topologytest"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type unavailableStore struct{}

func (unavailableStore) GetNetwork(context.Context, uuid.UUID, persistence.PreloadingStrategy) (topology.Network, error) {
	return nil, fmt.Errorf("%w: connection refused", nmerrors.ErrStoreUnavailable)
}

func newTestService(t *testing.T, store persistence.NetworkStore) (*NetworkMapAPIService, *metrics.Recorder) {
	t.Helper()
	recorder := metrics.NewRecorder()
	return NewNetworkMapAPIService(networkmap.NewQueryService(store), recorder), recorder
}

func eurostagStore(t *testing.T) persistence.NetworkStore {
	t.Helper()
	store := inmemory.NewInMemoryNetworkStore()
	require.NoError(t, store.PutNetwork(context.Background(), topologytest.EurostagDocument(t)))
	return store
}

func errorText(t *testing.T, res model.ImplResponse) string {
	t.Helper()
	body, ok := res.Body.(common.ErrorResult)
	require.True(t, ok, "unexpected body %T", res.Body)
	require.Len(t, body.Messages, 1)
	return body.Messages[0].Text
}

func TestGetLines(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t, eurostagStore(t))

	res, err := svc.GetLines(context.Background(), topologytest.NetworkUUID.String(), []string{"P1"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.Code)
	lines, ok := res.Body.([]model.LineMapData)
	require.True(t, ok)
	ids := make([]string, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.ID)
	}
	assert.ElementsMatch(t, []string{"NHV1_NHV2_1", "NHV1_NHV2_2", "LINE3"}, ids)
}

func TestInvalidNetworkUUID(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t, eurostagStore(t))

	res, err := svc.GetGenerators(context.Background(), "not-a-uuid", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.Contains(t, errorText(t, res), "networkUuid must be a UUID")
}

func TestUnknownNetworkIsNotFound(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t, eurostagStore(t))

	res, err := svc.GetAll(context.Background(), topologytest.UnknownNetworkUUID.String(), nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, res.Code)
	assert.Contains(t, errorText(t, res), topologytest.UnknownNetworkUUID.String())
}

func TestUnknownSubstationIsNotFound(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t, eurostagStore(t))

	res, err := svc.GetLoads(context.Background(), topologytest.NetworkUUID.String(), []string{"P2", "NOT_HERE"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, res.Code)
	assert.Contains(t, errorText(t, res), "NOT_HERE")
}

func TestStoreFailureIsServerError(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t, unavailableStore{})

	res, err := svc.GetBatteries(context.Background(), topologytest.NetworkUUID.String(), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, nmerrors.ErrStoreUnavailable))
	assert.Equal(t, http.StatusInternalServerError, res.Code)
	body := res.Body.(common.ErrorResult)
	assert.Equal(t, "500", body.Messages[0].Code)
	assert.Equal(t, "NETWORKMAP-GetBatteries-Unhandled", body.Messages[0].CorrelationId)
}

func TestEveryOperation(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t, eurostagStore(t))
	ops := map[string]func(context.Context, string, []string) (model.ImplResponse, error){
		"GetSubstations":               svc.GetSubstations,
		"GetLines":                     svc.GetLines,
		"GetTwoWindingsTransformers":   svc.GetTwoWindingsTransformers,
		"GetThreeWindingsTransformers": svc.GetThreeWindingsTransformers,
		"GetGenerators":                svc.GetGenerators,
		"GetBatteries":                 svc.GetBatteries,
		"GetDanglingLines":             svc.GetDanglingLines,
		"GetHvdcLines":                 svc.GetHvdcLines,
		"GetLccConverterStations":      svc.GetLccConverterStations,
		"GetVscConverterStations":      svc.GetVscConverterStations,
		"GetLoads":                     svc.GetLoads,
		"GetShuntCompensators":         svc.GetShuntCompensators,
		"GetStaticVarCompensators":     svc.GetStaticVarCompensators,
		"GetAll":                       svc.GetAll,
	}
	for name, op := range ops {
		res, err := op(context.Background(), topologytest.NetworkUUID.String(), nil)
		require.NoError(t, err, name)
		assert.Equal(t, http.StatusOK, res.Code, name)
		assert.NotNil(t, res.Body, name)
	}
}

func TestMetricsPerOutcome(t *testing.T) {
	t.Parallel()
	svc, recorder := newTestService(t, eurostagStore(t))
	ctx := context.Background()

	_, _ = svc.GetLines(ctx, topologytest.NetworkUUID.String(), nil)
	_, _ = svc.GetLines(ctx, topologytest.NetworkUUID.String(), []string{"P3"})
	_, _ = svc.GetLines(ctx, topologytest.UnknownNetworkUUID.String(), nil)
	_, _ = svc.GetLines(ctx, "x", nil)

	families, err := recorder.Registry().Gather()
	require.NoError(t, err)
	counts := map[string]float64{}
	for _, f := range families {
		if f.GetName() != "networkmap_queries_total" {
			continue
		}
		for _, m := range f.GetMetric() {
			labels := map[string]string{}
			for _, l := range m.GetLabel() {
				labels[l.GetName()] = l.GetValue()
			}
			counts[labels["scope"]+"/"+labels["outcome"]] += m.GetCounter().GetValue()
		}
	}
	assert.Equal(t, map[string]float64{
		"network/success":     1,
		"substations/success": 1,
		"network/not_found":   1,
		"network/bad_request": 1,
	}, counts)
}
