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
	"encoding/json"
	"errors"
	"testing"

	nmerrors "github.com/gridsuite/network-map-go/internal/networkmap/errors"
	"github.com/gridsuite/network-map-go/internal/networkmap/topology"
	"github.com/gridsuite/network-map-go/internal/networkmap/topology/topologytest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// idsOf extracts the "id" field of every serialized element.
func idsOf(t *testing.T, items any) []string {
	t.Helper()
	raw, err := json.Marshal(items)
	require.NoError(t, err)
	var decoded []struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	out := make([]string, 0, len(decoded))
	for _, d := range decoded {
		out = append(out, d.ID)
	}
	return out
}

func TestAllUnscoped(t *testing.T) {
	t.Parallel()
	g := topologytest.Eurostag(t)

	all, err := All(context.Background(), g, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"P1", "P2", "P3"}, idsOf(t, all.Substations))
	assert.Equal(t, []string{"NHV1_NHV2_1", "NHV1_NHV2_2", "LINE3"}, idsOf(t, all.Lines))
	assert.Equal(t, []string{"NGEN_NHV1", "NHV2_NLOAD"}, idsOf(t, all.TwoWindingsTransformers))
	assert.Equal(t, []string{"TWT"}, idsOf(t, all.ThreeWindingsTransformers))
	assert.Equal(t, []string{"GEN"}, idsOf(t, all.Generators))
	assert.Equal(t, []string{"BATTERY1", "BATTERY2"}, idsOf(t, all.Batteries))
	assert.Equal(t, []string{"DL1", "DL2"}, idsOf(t, all.DanglingLines))
	assert.Equal(t, []string{"HVDC1"}, idsOf(t, all.HvdcLines))
	assert.Equal(t, []string{"LCC1", "LCC2"}, idsOf(t, all.LccConverterStations))
	assert.Equal(t, []string{"VSC1", "VSC2"}, idsOf(t, all.VscConverterStations))
	assert.Equal(t, []string{"LOAD"}, idsOf(t, all.Loads))
	assert.Equal(t, []string{"SHUNT1", "SHUNT2"}, idsOf(t, all.ShuntCompensators))
	assert.Equal(t, []string{"SVC1", "SVC2"}, idsOf(t, all.StaticVarCompensators))
}

func TestAllScoped(t *testing.T) {
	t.Parallel()
	g := topologytest.Eurostag(t)

	all, err := All(context.Background(), g, []string{"P1"})
	require.NoError(t, err)

	assert.Equal(t, []string{"P1"}, idsOf(t, all.Substations))
	assert.Equal(t, []string{"LINE3", "NHV1_NHV2_1", "NHV1_NHV2_2"}, idsOf(t, all.Lines))
	assert.Equal(t, []string{"NGEN_NHV1"}, idsOf(t, all.TwoWindingsTransformers))
	assert.Equal(t, []string{"TWT"}, idsOf(t, all.ThreeWindingsTransformers))
	assert.Equal(t, []string{"GEN"}, idsOf(t, all.Generators))
	assert.Equal(t, []string{"BATTERY1"}, idsOf(t, all.Batteries))
	assert.Equal(t, []string{"DL1"}, idsOf(t, all.DanglingLines))
	assert.Equal(t, []string{"HVDC1"}, idsOf(t, all.HvdcLines))
	assert.Equal(t, []string{"LCC1", "LCC2"}, idsOf(t, all.LccConverterStations))
	assert.Equal(t, []string{"VSC1"}, idsOf(t, all.VscConverterStations))
	assert.Equal(t, []string{"SHUNT1"}, idsOf(t, all.ShuntCompensators))
	assert.Equal(t, []string{"SVC1", "SVC2"}, idsOf(t, all.StaticVarCompensators))

	require.NotNil(t, all.Loads)
	assert.Empty(t, all.Loads)
}

func TestAllEqualsPerKindQueries(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	g := topologytest.Eurostag(t)

	for _, scope := range [][]string{nil, {"P1"}, {"P2", "P3"}, {"P3", "P1", "P3"}} {
		all, err := All(ctx, g, scope)
		require.NoError(t, err)

		collections := map[topology.Kind]any{
			topology.KindSubstation:               all.Substations,
			topology.KindLine:                     all.Lines,
			topology.KindTwoWindingsTransformer:   all.TwoWindingsTransformers,
			topology.KindThreeWindingsTransformer: all.ThreeWindingsTransformers,
			topology.KindGenerator:                all.Generators,
			topology.KindBattery:                  all.Batteries,
			topology.KindDanglingLine:             all.DanglingLines,
			topology.KindHvdcLine:                 all.HvdcLines,
			topology.KindLccConverterStation:      all.LccConverterStations,
			topology.KindVscConverterStation:      all.VscConverterStations,
			topology.KindLoad:                     all.Loads,
			topology.KindShuntCompensator:         all.ShuntCompensators,
			topology.KindStaticVarCompensator:     all.StaticVarCompensators,
		}
		require.Len(t, collections, len(topology.Kinds))

		for _, kind := range topology.Kinds {
			perKind, err := Kind(ctx, g, kind, scope)
			require.NoError(t, err)

			want, err := json.Marshal(perKind)
			require.NoError(t, err)
			got, err := json.Marshal(collections[kind])
			require.NoError(t, err)
			assert.JSONEq(t, string(want), string(got), "kind %s scope %v", kind, scope)
		}
	}
}

func TestHvdcLineCrossReference(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	g := topologytest.SplitHvdc(t)

	// VSC1 in P1, LCC2 in P3.
	all, err := All(ctx, g, []string{"P1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"HVDC1"}, idsOf(t, all.HvdcLines))
	assert.Equal(t, []string{"VSC1"}, idsOf(t, all.VscConverterStations))
	assert.Equal(t, []string{"LCC1"}, idsOf(t, all.LccConverterStations))
	assert.Equal(t, []string{"P1"}, idsOf(t, all.Substations))

	lines, err := HvdcLines(ctx, g, []string{"P1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"HVDC1"}, idsOf(t, lines))

	all, err = All(ctx, g, []string{"P3"})
	require.NoError(t, err)
	assert.Equal(t, []string{"HVDC1"}, idsOf(t, all.HvdcLines))
	assert.Equal(t, []string{"LCC2"}, idsOf(t, all.LccConverterStations))
	assert.Equal(t, []string{"VSC2"}, idsOf(t, all.VscConverterStations))

	all, err = All(ctx, g, []string{"P1", "P3"})
	require.NoError(t, err)
	assert.Equal(t, []string{"HVDC1"}, idsOf(t, all.HvdcLines))
}

func TestUnattachedStationsYieldNoHvdcLine(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	g := topologytest.Eurostag(t)

	// HVDC1 joins VSC1 and LCC2, both in P1. P3 only sees unattached stations.
	lines, err := HvdcLines(ctx, g, []string{"P3"})
	require.NoError(t, err)
	assert.NotNil(t, lines)
	assert.Empty(t, lines)

	all, err := All(ctx, g, []string{"P3"})
	require.NoError(t, err)
	assert.Empty(t, all.HvdcLines)
	assert.Equal(t, []string{"VSC2"}, idsOf(t, all.VscConverterStations))
}

func TestAllScopedUnknownSubstation(t *testing.T) {
	t.Parallel()
	g := topologytest.Eurostag(t)

	_, err := All(context.Background(), g, []string{"P1", "P404"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, nmerrors.ErrSubstationNotFound))
}

func TestCollectorHandlesEveryConnectable(t *testing.T) {
	t.Parallel()
	g := topologytest.Eurostag(t)

	variants := []topology.Connectable{
		&topology.Line{Identifiable: topology.Identifiable{ID: "l"}},
		&topology.TwoWindingsTransformer{Identifiable: topology.Identifiable{ID: "t2"}},
		&topology.ThreeWindingsTransformer{Identifiable: topology.Identifiable{ID: "t3"}},
		&topology.Generator{Identifiable: topology.Identifiable{ID: "g"}},
		&topology.Battery{Identifiable: topology.Identifiable{ID: "b"}},
		&topology.Load{Identifiable: topology.Identifiable{ID: "ld"}},
		&topology.ShuntCompensator{Identifiable: topology.Identifiable{ID: "sh"}},
		&topology.StaticVarCompensator{Identifiable: topology.Identifiable{ID: "svc"}},
		&topology.DanglingLine{Identifiable: topology.Identifiable{ID: "dl"}},
		&topology.LccConverterStation{HvdcConverterStation: topology.HvdcConverterStation{Identifiable: topology.Identifiable{ID: "lcc"}}},
		&topology.VscConverterStation{HvdcConverterStation: topology.HvdcConverterStation{Identifiable: topology.Identifiable{ID: "vsc"}}},
	}

	seen := map[topology.Kind]bool{}
	c := newCollector(g)
	for _, v := range variants {
		require.NoError(t, c.add(context.Background(), v), "%T", v)
		seen[v.Kind()] = true
	}
	for _, k := range topology.ConnectableKinds {
		assert.True(t, seen[k], "no variant exercised for %s", k)
	}

	out := c.result()
	for name, n := range map[string]int{
		"lines":      len(out.Lines),
		"2wt":        len(out.TwoWindingsTransformers),
		"3wt":        len(out.ThreeWindingsTransformers),
		"generators": len(out.Generators),
		"batteries":  len(out.Batteries),
		"loads":      len(out.Loads),
		"shunts":     len(out.ShuntCompensators),
		"svcs":       len(out.StaticVarCompensators),
		"dangling":   len(out.DanglingLines),
		"lcc":        len(out.LccConverterStations),
		"vsc":        len(out.VscConverterStations),
	} {
		assert.Equal(t, 1, n, name)
	}
}

type foreignLine struct {
	*topology.Line
}

func TestCollectorRejectsUnknownType(t *testing.T) {
	t.Parallel()

	c := newCollector(topologytest.Eurostag(t))
	err := c.add(context.Background(), foreignLine{&topology.Line{Identifiable: topology.Identifiable{ID: "x"}}})
	assert.ErrorContains(t, err, "unsupported connectable")
}

type failingNetwork struct {
	*topology.Graph
	err error
}

func (f failingNetwork) Connectables(context.Context, topology.Kind) ([]topology.Connectable, error) {
	return nil, f.err
}

func TestAllUnscopedPropagatesErrors(t *testing.T) {
	t.Parallel()
	boom := errors.New("store down")
	n := failingNetwork{Graph: topologytest.Eurostag(t), err: boom}

	_, err := All(context.Background(), n, nil)
	assert.ErrorIs(t, err, boom)
}

func TestKindRejectsUnknown(t *testing.T) {
	t.Parallel()

	_, err := Kind(context.Background(), topologytest.Eurostag(t), topology.Kind("BUSBAR_SECTION"), nil)
	assert.Error(t, err)
}
