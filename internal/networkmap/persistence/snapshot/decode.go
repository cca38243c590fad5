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
	"fmt"

	"github.com/gridsuite/network-map-go/internal/common/optional"
	"github.com/gridsuite/network-map-go/internal/networkmap/topology"
	"github.com/google/uuid"
)

// DecodeSubstation converts a substation record with its voltage levels.
func DecodeSubstation(rec Substation) *topology.Substation {
	s := &topology.Substation{
		Identifiable:  topology.Identifiable{ID: rec.ID, Name: rec.Name},
		Country:       rec.Country,
		VoltageLevels: make([]*topology.VoltageLevel, 0, len(rec.VoltageLevels)),
	}
	for _, vl := range rec.VoltageLevels {
		buses := make([]topology.Bus, 0, len(vl.Buses))
		for _, b := range vl.Buses {
			buses = append(buses, topology.Bus{ID: b.ID, V: optional.Float(b.V)})
		}
		s.VoltageLevels = append(s.VoltageLevels, &topology.VoltageLevel{
			Identifiable: topology.Identifiable{ID: vl.ID, Name: vl.Name},
			SubstationID: rec.ID,
			NominalV:     vl.NominalV,
			Buses:        buses,
		})
	}
	return s
}

// DecodeHvdcLine converts an HVDC line record.
func DecodeHvdcLine(rec HvdcLine) *topology.HvdcLine {
	return &topology.HvdcLine{
		Identifiable:        topology.Identifiable{ID: rec.ID, Name: rec.Name},
		ConvertersMode:      rec.ConvertersMode,
		ConverterStationID1: rec.ConverterStationID1,
		ConverterStationID2: rec.ConverterStationID2,
		R:                   rec.R,
		NominalV:            rec.NominalV,
		ActivePowerSetpoint: rec.ActivePowerSetpoint,
		MaxP:                rec.MaxP,
	}
}

var sideCounts = map[topology.Kind]int{
	topology.KindLine:                     2,
	topology.KindTwoWindingsTransformer:   2,
	topology.KindThreeWindingsTransformer: 3,
	topology.KindGenerator:                1,
	topology.KindBattery:                  1,
	topology.KindLoad:                     1,
	topology.KindShuntCompensator:         1,
	topology.KindStaticVarCompensator:     1,
	topology.KindDanglingLine:             1,
	topology.KindLccConverterStation:      1,
	topology.KindVscConverterStation:      1,
}

// DecodeEquipment converts an equipment record into its connectable variant.
func DecodeEquipment(rec Equipment) (topology.Connectable, error) {
	kind := topology.Kind(rec.Type)
	want, ok := sideCounts[kind]
	if !ok {
		return nil, fmt.Errorf("equipment %q has unsupported type %q", rec.ID, rec.Type)
	}
	if len(rec.Sides) != want {
		return nil, fmt.Errorf("equipment %q of type %s has %d sides, expected %d", rec.ID, rec.Type, len(rec.Sides), want)
	}
	id := topology.Identifiable{ID: rec.ID, Name: rec.Name}

	switch kind {
	case topology.KindLine:
		return &topology.Line{
			Identifiable:   id,
			Terminal1:      terminal(rec.Sides[0]),
			Terminal2:      terminal(rec.Sides[1]),
			CurrentLimits1: limits(rec.Sides[0]),
			CurrentLimits2: limits(rec.Sides[1]),
		}, nil
	case topology.KindTwoWindingsTransformer:
		// Tap changers of a two windings transformer are stored on side 1.
		return &topology.TwoWindingsTransformer{
			Identifiable:    id,
			Terminal1:       terminal(rec.Sides[0]),
			Terminal2:       terminal(rec.Sides[1]),
			CurrentLimits1:  limits(rec.Sides[0]),
			CurrentLimits2:  limits(rec.Sides[1]),
			RatioTapChanger: tapChanger(rec.Sides[0].RatioTapChanger),
			PhaseTapChanger: tapChanger(rec.Sides[0].PhaseTapChanger),
		}, nil
	case topology.KindThreeWindingsTransformer:
		t := &topology.ThreeWindingsTransformer{Identifiable: id}
		for i, side := range rec.Sides {
			t.Legs[i] = topology.Leg{
				Terminal:        terminal(side),
				CurrentLimits:   limits(side),
				RatioTapChanger: tapChanger(side.RatioTapChanger),
				PhaseTapChanger: tapChanger(side.PhaseTapChanger),
			}
		}
		return t, nil
	case topology.KindGenerator:
		return &topology.Generator{
			Identifiable:       id,
			Terminal:           terminal(rec.Sides[0]),
			EnergySource:       rec.EnergySource,
			TargetP:            value(rec.TargetP),
			TargetQ:            optional.Float(rec.TargetQ),
			TargetV:            optional.Float(rec.TargetV),
			MinP:               value(rec.MinP),
			MaxP:               value(rec.MaxP),
			VoltageRegulatorOn: rec.VoltageRegulatorOn,
		}, nil
	case topology.KindBattery:
		return &topology.Battery{
			Identifiable: id,
			Terminal:     terminal(rec.Sides[0]),
			P0:           value(rec.P0),
			Q0:           value(rec.Q0),
			MinP:         value(rec.MinP),
			MaxP:         value(rec.MaxP),
		}, nil
	case topology.KindLoad:
		return &topology.Load{
			Identifiable: id,
			Terminal:     terminal(rec.Sides[0]),
			LoadType:     rec.LoadType,
			P0:           value(rec.P0),
			Q0:           value(rec.Q0),
		}, nil
	case topology.KindShuntCompensator:
		return &topology.ShuntCompensator{
			Identifiable:        id,
			Terminal:            terminal(rec.Sides[0]),
			SectionCount:        rec.SectionCount,
			MaximumSectionCount: rec.MaximumSectionCount,
			BPerSection:         optional.Float(rec.BPerSection),
			VoltageRegulatorOn:  rec.VoltageRegulatorOn,
			TargetV:             optional.Float(rec.TargetV),
			TargetDeadband:      optional.Float(rec.TargetDeadband),
		}, nil
	case topology.KindStaticVarCompensator:
		return &topology.StaticVarCompensator{
			Identifiable:          id,
			Terminal:              terminal(rec.Sides[0]),
			RegulationMode:        rec.RegulationMode,
			VoltageSetpoint:       optional.Float(rec.VoltageSetpoint),
			ReactivePowerSetpoint: optional.Float(rec.ReactivePowerSetpoint),
			Bmin:                  value(rec.Bmin),
			Bmax:                  value(rec.Bmax),
		}, nil
	case topology.KindDanglingLine:
		return &topology.DanglingLine{
			Identifiable:  id,
			Terminal:      terminal(rec.Sides[0]),
			P0:            value(rec.P0),
			Q0:            value(rec.Q0),
			UcteXnodeCode: rec.UcteXnodeCode,
		}, nil
	case topology.KindLccConverterStation:
		return &topology.LccConverterStation{
			HvdcConverterStation: station(id, rec),
			PowerFactor:          rec.PowerFactor,
		}, nil
	case topology.KindVscConverterStation:
		return &topology.VscConverterStation{
			HvdcConverterStation:  station(id, rec),
			VoltageRegulatorOn:    rec.VoltageRegulatorOn,
			VoltageSetpoint:       optional.Float(rec.VoltageSetpoint),
			ReactivePowerSetpoint: optional.Float(rec.ReactivePowerSetpoint),
		}, nil
	}
	return nil, fmt.Errorf("equipment %q has unsupported type %q", rec.ID, rec.Type)
}

// BuildGraph decodes a whole document into an in-memory graph.
func BuildGraph(doc *Document) (*topology.Graph, error) {
	return BuildGraphFromRecords(doc.ID, doc.Substations, doc.Equipment, doc.HvdcLines)
}

// BuildGraphFromRecords decodes record collections into an in-memory graph.
// Converter station records must declare the HVDC line that names them: lazy
// reads resolve the line from the station record alone.
func BuildGraphFromRecords(id uuid.UUID, substations []Substation, equipment []Equipment, hvdcLines []HvdcLine) (*topology.Graph, error) {
	g := topology.NewGraph(id)
	for _, rec := range substations {
		if err := g.AddSubstation(DecodeSubstation(rec)); err != nil {
			return nil, err
		}
	}
	declared := make(map[string]string)
	for _, rec := range equipment {
		c, err := DecodeEquipment(rec)
		if err != nil {
			return nil, err
		}
		if err := g.AddConnectable(c); err != nil {
			return nil, err
		}
		if _, ok := c.(topology.ConverterStation); ok {
			declared[rec.ID] = rec.HvdcLineID
		}
	}
	for _, rec := range hvdcLines {
		if err := g.AddHvdcLine(DecodeHvdcLine(rec)); err != nil {
			return nil, err
		}
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	for _, rec := range hvdcLines {
		for _, stationID := range []string{rec.ConverterStationID1, rec.ConverterStationID2} {
			if declared[stationID] != rec.ID {
				return nil, fmt.Errorf("converter station %q is named by hvdc line %q but declares %q", stationID, rec.ID, declared[stationID])
			}
		}
	}
	return g, nil
}

func terminal(s Side) topology.Terminal {
	return topology.Terminal{
		VoltageLevelID: s.VoltageLevelID,
		Connected:      s.Connected,
		P:              optional.Float(s.P),
		Q:              optional.Float(s.Q),
		I:              optional.Float(s.I),
	}
}

func limits(s Side) *topology.CurrentLimits {
	if s.PermanentLimit == nil {
		return nil
	}
	return &topology.CurrentLimits{PermanentLimit: optional.Float(s.PermanentLimit)}
}

func tapChanger(t *TapChanger) *topology.TapChanger {
	if t == nil {
		return nil
	}
	return &topology.TapChanger{
		LowTapPosition:  t.LowTapPosition,
		HighTapPosition: t.HighTapPosition,
		TapPosition:     t.TapPosition,
	}
}

func station(id topology.Identifiable, rec Equipment) topology.HvdcConverterStation {
	return topology.HvdcConverterStation{
		Identifiable: id,
		Terminal:     terminal(rec.Sides[0]),
		LossFactor:   rec.LossFactor,
		HvdcLineID:   rec.HvdcLineID,
	}
}

func value(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
