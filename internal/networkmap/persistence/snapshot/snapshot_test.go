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

package snapshot

import (
	"math"
	"strings"
	"testing"

	"github.com/gridsuite/network-map-go/internal/networkmap/topology"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalDocument = `{
  "id": "0f4dbd2a-5a0e-4d39-8a0e-3f5c6b7e8a90",
  "substations": [
    {"id": "S1", "country": "FR", "voltageLevels": [
      {"id": "VL1", "nominalV": 400, "buses": [{"id": "VL1_0", "v": 401.5}]},
      {"id": "VL2", "nominalV": 225}
    ]},
    {"id": "S2", "voltageLevels": [{"id": "VL3", "nominalV": 400}]}
  ],
  "equipment": [
    {"type": "LINE", "id": "L1", "sides": [
      {"voltageLevelId": "VL1", "connected": true, "p": 0, "permanentLimit": 1000},
      {"voltageLevelId": "VL3", "connected": true}
    ]},
    {"type": "VSC_CONVERTER_STATION", "id": "VSC", "lossFactor": 0.5, "hvdcLineId": "H1",
     "sides": [{"voltageLevelId": "VL1", "connected": true}]},
    {"type": "LCC_CONVERTER_STATION", "id": "LCC", "powerFactor": 0.8, "hvdcLineId": "H1",
     "sides": [{"voltageLevelId": "VL3", "connected": false}]},
    {"type": "GENERATOR", "id": "G", "targetP": 10, "sides": [{"voltageLevelId": "VL2", "connected": true}]}
  ],
  "hvdcLines": [
    {"id": "H1", "convertersMode": "SIDE_1_RECTIFIER_SIDE_2_INVERTER", "converterStationId1": "VSC",
     "converterStationId2": "LCC", "r": 1, "nominalV": 400, "activePowerSetpoint": 100, "maxP": 200}
  ]
}`

func readMinimal(t *testing.T) *Document {
	t.Helper()
	doc, err := ReadDocument(strings.NewReader(minimalDocument))
	require.NoError(t, err)
	return doc
}

func TestReadDocumentRejectsBadInput(t *testing.T) {
	t.Parallel()

	_, err := ReadDocument(strings.NewReader(`{"substations": []}`))
	assert.ErrorContains(t, err, "missing network id")

	_, err = ReadDocument(strings.NewReader(`{"id": "0f4dbd2a-5a0e-4d39-8a0e-3f5c6b7e8a90", "unexpected": 1}`))
	assert.Error(t, err)
}

func TestBuildGraph(t *testing.T) {
	t.Parallel()
	doc := readMinimal(t)

	g, err := BuildGraph(doc)
	require.NoError(t, err)
	assert.Equal(t, doc.ID, g.UUID())

	line, err := DecodeEquipment(doc.Equipment[0])
	require.NoError(t, err)
	l := line.(*topology.Line)
	assert.True(t, l.Terminal1.P.IsDefined())
	assert.Equal(t, 0.0, l.Terminal1.P.OrElse(-1))
	assert.False(t, l.Terminal1.Q.IsDefined())
	require.NotNil(t, l.CurrentLimits1)
	assert.Equal(t, 1000.0, l.CurrentLimits1.PermanentLimit.OrElse(-1))
	assert.Nil(t, l.CurrentLimits2)

	lcc, err := g.VoltageLevelConnectables(t.Context(), "VL3", topology.KindLccConverterStation)
	require.NoError(t, err)
	require.Len(t, lcc, 1)
	assert.Equal(t, "H1", topology.HvdcLineIDOf(lcc[0]))

	s, err := g.Substation(t.Context(), "S1")
	require.NoError(t, err)
	require.Len(t, s.VoltageLevels, 2)
	assert.Equal(t, "S1", s.VoltageLevels[1].SubstationID)
	assert.Equal(t, 401.5, s.VoltageLevels[0].Buses[0].V.OrElse(-1))
}

func TestDecodeEquipmentChecksSides(t *testing.T) {
	t.Parallel()

	_, err := DecodeEquipment(Equipment{Type: "LINE", ID: "L", Sides: []Side{{VoltageLevelID: "VL1"}}})
	assert.ErrorContains(t, err, "expected 2")

	_, err = DecodeEquipment(Equipment{Type: "BUSBAR_SECTION", ID: "B", Sides: []Side{{VoltageLevelID: "VL1"}}})
	assert.ErrorContains(t, err, "unsupported type")
}

func TestDecodeTreatsNaNAsAbsent(t *testing.T) {
	t.Parallel()
	nan, q := math.NaN(), 12.0

	c, err := DecodeEquipment(Equipment{Type: "LOAD", ID: "LD", P0: &q, Sides: []Side{{VoltageLevelID: "VL1", P: &nan, Q: &q}}})
	require.NoError(t, err)
	load := c.(*topology.Load)
	assert.False(t, load.Terminal.P.IsDefined())
	assert.Equal(t, 12.0, load.Terminal.Q.OrElse(-1))
}

func TestBuildGraphRejectsDanglingReferences(t *testing.T) {
	t.Parallel()
	doc := readMinimal(t)
	doc.Equipment[0].Sides[1].VoltageLevelID = "NOWHERE"

	_, err := BuildGraph(doc)
	assert.ErrorContains(t, err, "unknown voltage level")

	doc = readMinimal(t)
	doc.HvdcLines = nil
	_, err = BuildGraph(doc)
	assert.ErrorContains(t, err, "unknown hvdc line")
}

func TestBuildGraphRejectsInconsistentHvdcReferences(t *testing.T) {
	t.Parallel()

	doc := readMinimal(t)
	doc.Equipment[2].HvdcLineID = ""
	_, err := BuildGraph(doc)
	assert.ErrorContains(t, err, `converter station "LCC" is named by hvdc line "H1" but declares ""`)

	doc = readMinimal(t)
	doc.Equipment[2].HvdcLineID = "H2"
	_, err = BuildGraph(doc)
	assert.ErrorContains(t, err, "unknown hvdc line")

	doc = readMinimal(t)
	doc.Equipment = append(doc.Equipment, Equipment{
		Type:       "VSC_CONVERTER_STATION",
		ID:         "VSC2",
		HvdcLineID: "H1",
		Sides:      []Side{{VoltageLevelID: "VL2"}},
	})
	_, err = BuildGraph(doc)
	assert.ErrorContains(t, err, `converter station "VSC2" claims hvdc line "H1"`)
}

func TestSelect(t *testing.T) {
	t.Parallel()
	doc := readMinimal(t)

	assert.Len(t, doc.SelectSubstations(nil), 2)
	assert.Empty(t, doc.SelectSubstations([]string{}))
	assert.Equal(t, "S2", doc.SelectSubstations([]string{"S2", "S9"})[0].ID)

	ids := func(records []Equipment) []string {
		out := []string{}
		for _, r := range records {
			out = append(out, r.ID)
		}
		return out
	}
	assert.Equal(t, []string{"L1", "VSC", "LCC", "G"}, ids(doc.SelectEquipment(nil, nil)))
	assert.Equal(t, []string{"L1", "VSC"}, ids(doc.SelectEquipment([]string{"VL1"}, nil)))
	assert.Equal(t, []string{"L1", "LCC"}, ids(doc.SelectEquipment([]string{"VL3"}, nil)))
	assert.Equal(t, []string{"LCC"}, ids(doc.SelectEquipment([]string{"VL3"}, []topology.Kind{topology.KindLccConverterStation})))
	assert.Equal(t, []string{"G"}, ids(doc.SelectEquipment(nil, []topology.Kind{topology.KindGenerator})))
	assert.Empty(t, doc.SelectEquipment(nil, []topology.Kind{}))

	assert.Len(t, doc.SelectHvdcLines([]string{"H1"}), 1)
	assert.Empty(t, doc.SelectHvdcLines([]string{"H2"}))
}
