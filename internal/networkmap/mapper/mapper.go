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

// Package mapper projects topology elements into their map-data presentation
// records. Every function is pure; optional fields are set only when the
// underlying value is defined, and values are carried at full precision.
package mapper

import (
	"github.com/gridsuite/network-map-go/internal/common/model"
	"github.com/gridsuite/network-map-go/internal/common/optional"
	"github.com/gridsuite/network-map-go/internal/networkmap/topology"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// CountryName returns the English display name of an ISO 3166 country code,
// the code itself when it is not a known region, or undefined when empty.
func CountryName(code string) optional.Value[string] {
	if code == "" {
		return optional.Empty[string]()
	}
	region, err := language.ParseRegion(code)
	if err != nil {
		return optional.Of(code)
	}
	if name := display.English.Regions().Name(region); name != "" {
		return optional.Of(name)
	}
	return optional.Of(code)
}

// ToSubstationMapData projects a substation with its voltage levels.
func ToSubstationMapData(s *topology.Substation) model.SubstationMapData {
	vls := make([]model.VoltageLevelMapData, 0, len(s.VoltageLevels))
	for _, vl := range s.VoltageLevels {
		vls = append(vls, ToVoltageLevelMapData(vl))
	}
	return model.SubstationMapData{
		ID:            s.ID,
		Name:          s.NameOrID(),
		CountryName:   CountryName(s.Country),
		VoltageLevels: vls,
	}
}

// ToVoltageLevelMapData projects a voltage level with its buses.
func ToVoltageLevelMapData(vl *topology.VoltageLevel) model.VoltageLevelMapData {
	buses := make([]model.BusMapData, 0, len(vl.Buses))
	for _, b := range vl.Buses {
		buses = append(buses, model.BusMapData{ID: b.ID, V: b.V})
	}
	return model.VoltageLevelMapData{
		ID:             vl.ID,
		Name:           vl.NameOrID(),
		SubstationID:   vl.SubstationID,
		NominalVoltage: vl.NominalV,
		Buses:          buses,
	}
}

// ToLineMapData projects a line.
func ToLineMapData(l *topology.Line) model.LineMapData {
	return model.LineMapData{
		ID:                 l.ID,
		Name:               l.NameOrID(),
		VoltageLevelID1:    l.Terminal1.VoltageLevelID,
		VoltageLevelID2:    l.Terminal2.VoltageLevelID,
		Terminal1Connected: l.Terminal1.Connected,
		Terminal2Connected: l.Terminal2.Connected,
		P1:                 l.Terminal1.P,
		Q1:                 l.Terminal1.Q,
		I1:                 l.Terminal1.I,
		P2:                 l.Terminal2.P,
		Q2:                 l.Terminal2.Q,
		I2:                 l.Terminal2.I,
		PermanentLimit1:    topology.PermanentLimitOf(l.CurrentLimits1),
		PermanentLimit2:    topology.PermanentLimitOf(l.CurrentLimits2),
	}
}

// ToTwoWindingsTransformerMapData projects a two windings transformer.
func ToTwoWindingsTransformerMapData(t *topology.TwoWindingsTransformer) model.TwoWindingsTransformerMapData {
	return model.TwoWindingsTransformerMapData{
		ID:                      t.ID,
		Name:                    t.NameOrID(),
		VoltageLevelID1:         t.Terminal1.VoltageLevelID,
		VoltageLevelID2:         t.Terminal2.VoltageLevelID,
		Terminal1Connected:      t.Terminal1.Connected,
		Terminal2Connected:      t.Terminal2.Connected,
		P1:                      t.Terminal1.P,
		Q1:                      t.Terminal1.Q,
		I1:                      t.Terminal1.I,
		P2:                      t.Terminal2.P,
		Q2:                      t.Terminal2.Q,
		I2:                      t.Terminal2.I,
		PermanentLimit1:         topology.PermanentLimitOf(t.CurrentLimits1),
		PermanentLimit2:         topology.PermanentLimitOf(t.CurrentLimits2),
		RatioTapChangerPosition: tapPosition(t.RatioTapChanger),
		PhaseTapChangerPosition: tapPosition(t.PhaseTapChanger),
		RatioTapChanger:         tapChangerData(t.RatioTapChanger),
		PhaseTapChanger:         tapChangerData(t.PhaseTapChanger),
	}
}

// ToThreeWindingsTransformerMapData projects a three windings transformer.
func ToThreeWindingsTransformerMapData(t *topology.ThreeWindingsTransformer) model.ThreeWindingsTransformerMapData {
	l1, l2, l3 := &t.Legs[0], &t.Legs[1], &t.Legs[2]
	return model.ThreeWindingsTransformerMapData{
		ID:                       t.ID,
		Name:                     t.NameOrID(),
		VoltageLevelID1:          l1.Terminal.VoltageLevelID,
		VoltageLevelID2:          l2.Terminal.VoltageLevelID,
		VoltageLevelID3:          l3.Terminal.VoltageLevelID,
		Terminal1Connected:       l1.Terminal.Connected,
		Terminal2Connected:       l2.Terminal.Connected,
		Terminal3Connected:       l3.Terminal.Connected,
		P1:                       l1.Terminal.P,
		Q1:                       l1.Terminal.Q,
		I1:                       l1.Terminal.I,
		P2:                       l2.Terminal.P,
		Q2:                       l2.Terminal.Q,
		I2:                       l2.Terminal.I,
		P3:                       l3.Terminal.P,
		Q3:                       l3.Terminal.Q,
		I3:                       l3.Terminal.I,
		PermanentLimit1:          topology.PermanentLimitOf(l1.CurrentLimits),
		PermanentLimit2:          topology.PermanentLimitOf(l2.CurrentLimits),
		PermanentLimit3:          topology.PermanentLimitOf(l3.CurrentLimits),
		RatioTapChanger1Position: tapPosition(l1.RatioTapChanger),
		RatioTapChanger2Position: tapPosition(l2.RatioTapChanger),
		RatioTapChanger3Position: tapPosition(l3.RatioTapChanger),
		PhaseTapChanger1Position: tapPosition(l1.PhaseTapChanger),
		PhaseTapChanger2Position: tapPosition(l2.PhaseTapChanger),
		PhaseTapChanger3Position: tapPosition(l3.PhaseTapChanger),
		RatioTapChanger1:         tapChangerData(l1.RatioTapChanger),
		RatioTapChanger2:         tapChangerData(l2.RatioTapChanger),
		RatioTapChanger3:         tapChangerData(l3.RatioTapChanger),
		PhaseTapChanger1:         tapChangerData(l1.PhaseTapChanger),
		PhaseTapChanger2:         tapChangerData(l2.PhaseTapChanger),
		PhaseTapChanger3:         tapChangerData(l3.PhaseTapChanger),
	}
}

// ToGeneratorMapData projects a generator.
func ToGeneratorMapData(g *topology.Generator) model.GeneratorMapData {
	return model.GeneratorMapData{
		ID:                 g.ID,
		Name:               g.NameOrID(),
		VoltageLevelID:     g.Terminal.VoltageLevelID,
		TerminalConnected:  g.Terminal.Connected,
		EnergySource:       g.EnergySource,
		TargetP:            g.TargetP,
		MinP:               g.MinP,
		MaxP:               g.MaxP,
		VoltageRegulatorOn: g.VoltageRegulatorOn,
		P:                  g.Terminal.P,
		Q:                  g.Terminal.Q,
		TargetQ:            g.TargetQ,
		TargetV:            g.TargetV,
	}
}

// ToBatteryMapData projects a battery.
func ToBatteryMapData(b *topology.Battery) model.BatteryMapData {
	return model.BatteryMapData{
		ID:                b.ID,
		Name:              b.NameOrID(),
		VoltageLevelID:    b.Terminal.VoltageLevelID,
		TerminalConnected: b.Terminal.Connected,
		P0:                b.P0,
		Q0:                b.Q0,
		MinP:              b.MinP,
		MaxP:              b.MaxP,
		P:                 b.Terminal.P,
		Q:                 b.Terminal.Q,
	}
}

// ToLoadMapData projects a load.
func ToLoadMapData(l *topology.Load) model.LoadMapData {
	return model.LoadMapData{
		ID:                l.ID,
		Name:              l.NameOrID(),
		VoltageLevelID:    l.Terminal.VoltageLevelID,
		TerminalConnected: l.Terminal.Connected,
		Type:              l.LoadType,
		P0:                l.P0,
		Q0:                l.Q0,
		P:                 l.Terminal.P,
		Q:                 l.Terminal.Q,
	}
}

// ToShuntCompensatorMapData projects a shunt compensator.
func ToShuntCompensatorMapData(s *topology.ShuntCompensator) model.ShuntCompensatorMapData {
	return model.ShuntCompensatorMapData{
		ID:                  s.ID,
		Name:                s.NameOrID(),
		VoltageLevelID:      s.Terminal.VoltageLevelID,
		TerminalConnected:   s.Terminal.Connected,
		SectionCount:        s.SectionCount,
		MaximumSectionCount: s.MaximumSectionCount,
		VoltageRegulatorOn:  s.VoltageRegulatorOn,
		Q:                   s.Terminal.Q,
		BPerSection:         s.BPerSection,
		TargetV:             s.TargetV,
		TargetDeadband:      s.TargetDeadband,
	}
}

// ToStaticVarCompensatorMapData projects a static var compensator.
func ToStaticVarCompensatorMapData(s *topology.StaticVarCompensator) model.StaticVarCompensatorMapData {
	return model.StaticVarCompensatorMapData{
		ID:                    s.ID,
		Name:                  s.NameOrID(),
		VoltageLevelID:        s.Terminal.VoltageLevelID,
		TerminalConnected:     s.Terminal.Connected,
		RegulationMode:        s.RegulationMode,
		P:                     s.Terminal.P,
		Q:                     s.Terminal.Q,
		VoltageSetpoint:       s.VoltageSetpoint,
		ReactivePowerSetpoint: s.ReactivePowerSetpoint,
	}
}

// ToDanglingLineMapData projects a dangling line.
func ToDanglingLineMapData(d *topology.DanglingLine) model.DanglingLineMapData {
	return model.DanglingLineMapData{
		ID:                d.ID,
		Name:              d.NameOrID(),
		VoltageLevelID:    d.Terminal.VoltageLevelID,
		TerminalConnected: d.Terminal.Connected,
		P0:                d.P0,
		Q0:                d.Q0,
		UcteXnodeCode:     nonEmpty(d.UcteXnodeCode),
		P:                 d.Terminal.P,
		Q:                 d.Terminal.Q,
	}
}

// ToHvdcLineMapData projects an HVDC line.
func ToHvdcLineMapData(l *topology.HvdcLine) model.HvdcLineMapData {
	return model.HvdcLineMapData{
		ID:                  l.ID,
		Name:                l.NameOrID(),
		ConvertersMode:      l.ConvertersMode,
		ConverterStationID1: l.ConverterStationID1,
		ConverterStationID2: l.ConverterStationID2,
		R:                   l.R,
		NominalV:            l.NominalV,
		ActivePowerSetpoint: l.ActivePowerSetpoint,
		MaxP:                l.MaxP,
	}
}

// ToLccConverterStationMapData projects an LCC converter station.
func ToLccConverterStationMapData(s *topology.LccConverterStation) model.LccConverterStationMapData {
	return model.LccConverterStationMapData{
		ID:                s.ID,
		Name:              s.NameOrID(),
		VoltageLevelID:    s.Terminal.VoltageLevelID,
		TerminalConnected: s.Terminal.Connected,
		PowerFactor:       s.PowerFactor,
		LossFactor:        s.LossFactor,
		HvdcLineID:        nonEmpty(s.HvdcLineID),
		P:                 s.Terminal.P,
		Q:                 s.Terminal.Q,
	}
}

// ToVscConverterStationMapData projects a VSC converter station.
func ToVscConverterStationMapData(s *topology.VscConverterStation) model.VscConverterStationMapData {
	return model.VscConverterStationMapData{
		ID:                    s.ID,
		Name:                  s.NameOrID(),
		VoltageLevelID:        s.Terminal.VoltageLevelID,
		TerminalConnected:     s.Terminal.Connected,
		LossFactor:            s.LossFactor,
		VoltageRegulatorOn:    s.VoltageRegulatorOn,
		HvdcLineID:            nonEmpty(s.HvdcLineID),
		P:                     s.Terminal.P,
		Q:                     s.Terminal.Q,
		VoltageSetpoint:       s.VoltageSetpoint,
		ReactivePowerSetpoint: s.ReactivePowerSetpoint,
	}
}

func tapPosition(t *topology.TapChanger) optional.Value[int] {
	if t == nil {
		return optional.Empty[int]()
	}
	return optional.Of(t.TapPosition)
}

func tapChangerData(t *topology.TapChanger) *model.TapChangerData {
	if t == nil {
		return nil
	}
	return &model.TapChangerData{LowTap: t.LowTapPosition, HighTap: t.HighTapPosition}
}

func nonEmpty(s string) optional.Value[string] {
	if s == "" {
		return optional.Empty[string]()
	}
	return optional.Of(s)
}
