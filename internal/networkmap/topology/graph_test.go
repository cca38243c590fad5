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

package topology_test

import (
	"context"
	"testing"

	"github.com/gridsuite/network-map-go/internal/networkmap/topology"
	"github.com/gridsuite/network-map-go/internal/networkmap/topology/topologytest"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraphNavigation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	g := topologytest.Eurostag(t)

	assert.Equal(t, topologytest.NetworkUUID, g.UUID())

	substations, err := g.Substations(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"P1", "P2", "P3"}, topologytest.IDs(substations))

	p1, err := g.Substation(ctx, "P1")
	require.NoError(t, err)
	require.NotNil(t, p1)
	assert.Len(t, p1.VoltageLevels, 3)
	assert.Equal(t, "P1", p1.VoltageLevels[2].SubstationID)

	missing, err := g.Substation(ctx, "NOPE")
	require.NoError(t, err)
	assert.Nil(t, missing)

	lines, err := g.Connectables(ctx, topology.KindLine)
	require.NoError(t, err)
	assert.Equal(t, []string{"NHV1_NHV2_1", "NHV1_NHV2_2", "LINE3"}, topologytest.IDs(lines))

	vlgen, err := g.VoltageLevelConnectables(ctx, "VLGEN")
	require.NoError(t, err)
	assert.Equal(t, []string{"LINE3", "NGEN_NHV1", "TWT", "GEN", "DL1", "LCC1", "SVC1"}, topologytest.IDs(vlgen))

	injections, err := g.VoltageLevelConnectables(ctx, "VLGEN", topology.KindGenerator, topology.KindStaticVarCompensator)
	require.NoError(t, err)
	assert.Equal(t, []string{"GEN", "SVC1"}, topologytest.IDs(injections))

	hvdc, err := g.HvdcLine(ctx, "HVDC1")
	require.NoError(t, err)
	require.NotNil(t, hvdc)
	assert.Equal(t, "VSC1", hvdc.ConverterStationID1)

	none, err := g.HvdcLine(ctx, "HVDC9")
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestGraphFillsStationBackReference(t *testing.T) {
	t.Parallel()
	g := topology.NewGraph(uuid.New())
	require.NoError(t, g.AddSubstation(&topology.Substation{
		Identifiable:  topology.Identifiable{ID: "S"},
		VoltageLevels: []*topology.VoltageLevel{{Identifiable: topology.Identifiable{ID: "VL"}}},
	}))
	lcc := &topology.LccConverterStation{HvdcConverterStation: topology.HvdcConverterStation{
		Identifiable: topology.Identifiable{ID: "LCC"},
		Terminal:     topology.Terminal{VoltageLevelID: "VL"},
	}}
	vsc := &topology.VscConverterStation{HvdcConverterStation: topology.HvdcConverterStation{
		Identifiable: topology.Identifiable{ID: "VSC"},
		Terminal:     topology.Terminal{VoltageLevelID: "VL"},
	}}
	require.NoError(t, g.AddConnectable(lcc))
	require.NoError(t, g.AddConnectable(vsc))
	require.NoError(t, g.AddHvdcLine(&topology.HvdcLine{
		Identifiable:        topology.Identifiable{ID: "L"},
		ConverterStationID1: "LCC",
		ConverterStationID2: "VSC",
	}))
	assert.Equal(t, "L", topology.HvdcLineIDOf(lcc))
	assert.Equal(t, "L", topology.HvdcLineIDOf(vsc))

	err := g.AddHvdcLine(&topology.HvdcLine{
		Identifiable:        topology.Identifiable{ID: "L2"},
		ConverterStationID1: "LCC",
		ConverterStationID2: "VSC",
	})
	assert.ErrorContains(t, err, "already belongs to hvdc line")
	require.NoError(t, g.Validate())
}

func TestValidateRejectsStationClaimingForeignLine(t *testing.T) {
	t.Parallel()
	g := topology.NewGraph(uuid.New())
	require.NoError(t, g.AddSubstation(&topology.Substation{
		Identifiable:  topology.Identifiable{ID: "S"},
		VoltageLevels: []*topology.VoltageLevel{{Identifiable: topology.Identifiable{ID: "VL"}}},
	}))
	for _, id := range []string{"A", "B"} {
		require.NoError(t, g.AddConnectable(&topology.VscConverterStation{HvdcConverterStation: topology.HvdcConverterStation{
			Identifiable: topology.Identifiable{ID: id},
			Terminal:     topology.Terminal{VoltageLevelID: "VL"},
		}}))
	}
	require.NoError(t, g.AddConnectable(&topology.LccConverterStation{HvdcConverterStation: topology.HvdcConverterStation{
		Identifiable: topology.Identifiable{ID: "C"},
		Terminal:     topology.Terminal{VoltageLevelID: "VL"},
		HvdcLineID:   "L",
	}}))
	require.NoError(t, g.AddHvdcLine(&topology.HvdcLine{
		Identifiable:        topology.Identifiable{ID: "L"},
		ConverterStationID1: "A",
		ConverterStationID2: "B",
	}))

	assert.ErrorContains(t, g.Validate(), `converter station "C" claims hvdc line "L"`)
}

func TestGraphRejectsStructuralErrors(t *testing.T) {
	t.Parallel()
	g := topology.NewGraph(uuid.New())
	vl := &topology.VoltageLevel{Identifiable: topology.Identifiable{ID: "VL"}}
	require.NoError(t, g.AddSubstation(&topology.Substation{
		Identifiable:  topology.Identifiable{ID: "S1"},
		VoltageLevels: []*topology.VoltageLevel{vl},
	}))

	err := g.AddSubstation(&topology.Substation{
		Identifiable:  topology.Identifiable{ID: "S2"},
		VoltageLevels: []*topology.VoltageLevel{{Identifiable: topology.Identifiable{ID: "VL"}}},
	})
	assert.ErrorContains(t, err, "more than one substation")

	err = g.AddConnectable(&topology.Load{
		Identifiable: topology.Identifiable{ID: "LD"},
		Terminal:     topology.Terminal{VoltageLevelID: "UNKNOWN"},
	})
	assert.ErrorContains(t, err, "unknown voltage level")

	load := &topology.Load{Identifiable: topology.Identifiable{ID: "LD"}, Terminal: topology.Terminal{VoltageLevelID: "VL"}}
	require.NoError(t, g.AddConnectable(load))
	assert.ErrorContains(t, g.AddConnectable(load), "duplicate connectable")

	err = g.AddHvdcLine(&topology.HvdcLine{
		Identifiable:        topology.Identifiable{ID: "H"},
		ConverterStationID1: "LD",
		ConverterStationID2: "X",
	})
	assert.ErrorContains(t, err, "not a converter station")
}

func TestConnectableVariants(t *testing.T) {
	t.Parallel()
	variants := map[topology.Kind]topology.Connectable{
		topology.KindLine:                     &topology.Line{},
		topology.KindTwoWindingsTransformer:   &topology.TwoWindingsTransformer{},
		topology.KindThreeWindingsTransformer: &topology.ThreeWindingsTransformer{},
		topology.KindGenerator:                &topology.Generator{},
		topology.KindBattery:                  &topology.Battery{},
		topology.KindLoad:                     &topology.Load{},
		topology.KindShuntCompensator:         &topology.ShuntCompensator{},
		topology.KindStaticVarCompensator:     &topology.StaticVarCompensator{},
		topology.KindDanglingLine:             &topology.DanglingLine{},
		topology.KindLccConverterStation:      &topology.LccConverterStation{},
		topology.KindVscConverterStation:      &topology.VscConverterStation{},
	}
	require.Len(t, variants, len(topology.ConnectableKinds))
	for kind, c := range variants {
		assert.Equal(t, kind, c.Kind())
		assert.True(t, kind.IsConnectable())
	}
	assert.Len(t, (&topology.Line{}).Terminals(), 2)
	assert.Len(t, (&topology.ThreeWindingsTransformer{}).Terminals(), 3)
	assert.False(t, topology.KindHvdcLine.IsConnectable())
	assert.False(t, topology.KindSubstation.IsConnectable())

	k, err := topology.ParseKind("HVDC_LINE")
	require.NoError(t, err)
	assert.Equal(t, topology.KindHvdcLine, k)
	_, err = topology.ParseKind("SWITCH")
	assert.Error(t, err)
}

func TestNameOrID(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "GEN", topology.Identifiable{ID: "GEN"}.NameOrID())
	assert.Equal(t, "Generator", topology.Identifiable{ID: "GEN", Name: "Generator"}.NameOrID())
}
